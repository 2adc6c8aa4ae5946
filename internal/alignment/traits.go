package alignment

// Trait codes an athlete's assessment can surface
const (
	TraitLeadership     = "leadership"
	TraitTeamwork       = "teamwork"
	TraitResilience     = "resilience"
	TraitInnovation     = "innovation"
	TraitCreativity     = "creativity"
	TraitAmbition       = "ambition"
	TraitCompetition    = "competition"
	TraitDiscipline     = "discipline"
	TraitCommunityFocus = "community_focus"
	TraitAuthenticity   = "authenticity"
	TraitLoyalty        = "loyalty"
	TraitCharisma       = "charisma"
	TraitConsistency    = "consistency"
	TraitVersatility    = "versatility"
)

// brandValueTraits is the closed brand-value to trait-set table.
// Unrecognized brand values map to no traits rather than guessing
// from string similarity.
var brandValueTraits = map[string][]string{
	"sustainability":        {TraitCommunityFocus, TraitAuthenticity, TraitDiscipline},
	"diversity":             {TraitCommunityFocus, TraitTeamwork, TraitAuthenticity},
	"innovation":            {TraitInnovation, TraitCreativity, TraitAmbition},
	"performance":           {TraitCompetition, TraitDiscipline, TraitAmbition},
	"authenticity":          {TraitAuthenticity, TraitLoyalty, TraitCharisma},
	"community":             {TraitCommunityFocus, TraitTeamwork, TraitLoyalty},
	"health":                {TraitDiscipline, TraitResilience, TraitConsistency},
	"education":             {TraitLeadership, TraitDiscipline, TraitAmbition},
	"social_responsibility": {TraitCommunityFocus, TraitLeadership, TraitAuthenticity},
	"youth_empowerment":     {TraitLeadership, TraitCharisma, TraitCommunityFocus},
	"equality":              {TraitTeamwork, TraitCommunityFocus, TraitAuthenticity},
	"transparency":          {TraitAuthenticity, TraitLoyalty, TraitConsistency},
	"family_friendly":       {TraitLoyalty, TraitCommunityFocus, TraitCharisma},
	"local_first":           {TraitCommunityFocus, TraitLoyalty, TraitAuthenticity},
	"quality":               {TraitDiscipline, TraitConsistency, TraitAmbition},
}

// TraitsForBrandValue returns the trait set associated with a brand
// value tag, or nil for an unrecognized tag.
func TraitsForBrandValue(value string) []string {
	return brandValueTraits[value]
}

// KnownBrandValues returns every tag the table recognizes
func KnownBrandValues() []string {
	values := make([]string, 0, len(brandValueTraits))
	for value := range brandValueTraits {
		values = append(values, value)
	}
	return values
}
