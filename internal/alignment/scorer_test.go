package alignment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreNeutralCases(t *testing.T) {
	// Campaign with no brand values: "no preference" neutral
	result := Score([]string{TraitLeadership}, nil)
	assert.Equal(t, NeutralNoValues, result.Score)
	assert.Empty(t, result.MatchedTraits)

	// Athlete with no traits: "insufficient data" neutral
	result = Score(nil, []string{"innovation"})
	assert.Equal(t, NeutralNoTraits, result.Score)
	assert.Empty(t, result.MatchedTraits)

	// Both empty: campaign preference wins
	result = Score(nil, nil)
	assert.Equal(t, NeutralNoValues, result.Score)
}

func TestScoreStepFunction(t *testing.T) {
	tests := []struct {
		name    string
		traits  []string
		values  []string
		want    float64
		matched int
	}{
		{
			name:    "no overlap",
			traits:  []string{TraitResilience},
			values:  []string{"innovation"},
			want:    1,
			matched: 0,
		},
		{
			name:    "one match",
			traits:  []string{TraitInnovation, TraitResilience},
			values:  []string{"innovation"},
			want:    2,
			matched: 1,
		},
		{
			name:    "two matches",
			traits:  []string{TraitInnovation, TraitCreativity},
			values:  []string{"innovation"},
			want:    3,
			matched: 2,
		},
		{
			name:    "three matches",
			traits:  []string{TraitInnovation, TraitCreativity, TraitAmbition},
			values:  []string{"innovation"},
			want:    4,
			matched: 3,
		},
		{
			name:    "four matches cap",
			traits:  []string{TraitInnovation, TraitCreativity, TraitAmbition, TraitCompetition, TraitDiscipline},
			values:  []string{"innovation", "performance"},
			want:    5,
			matched: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Score(tt.traits, tt.values)
			assert.Equal(t, tt.want, result.Score)
			assert.Len(t, result.MatchedTraits, tt.matched)
		})
	}
}

func TestScoreMonotoneInMatches(t *testing.T) {
	// More matched traits never lowers the score
	prev := stepScore(0)
	for matches := 1; matches <= 6; matches++ {
		current := stepScore(matches)
		assert.GreaterOrEqual(t, current, prev, "matches=%d", matches)
		prev = current
	}
}

func TestScorePreservesTraitOrder(t *testing.T) {
	result := Score(
		[]string{TraitCharisma, TraitAuthenticity, TraitCharisma, TraitLoyalty},
		[]string{"authenticity"},
	)

	// Deduplicated, first-encountered order preserved
	assert.Equal(t, []string{TraitCharisma, TraitAuthenticity, TraitLoyalty}, result.MatchedTraits)
}

func TestScoreUnknownBrandValue(t *testing.T) {
	result := Score([]string{TraitLeadership}, []string{"synergy_maximization"})
	assert.Equal(t, 1.0, result.Score)
	assert.Empty(t, result.MatchedTraits)
}

func TestScoreNormalizesTags(t *testing.T) {
	result := Score([]string{"Community Focus"}, []string{" Community "})
	assert.Equal(t, 2.0, result.Score)
	assert.Equal(t, []string{TraitCommunityFocus}, result.MatchedTraits)
}

func TestNormalized100(t *testing.T) {
	assert.Equal(t, 0.0, Result{Score: 1}.Normalized100())
	assert.Equal(t, 50.0, Result{Score: 3}.Normalized100())
	assert.Equal(t, 100.0, Result{Score: 5}.Normalized100())
}

func TestTraitsForBrandValue(t *testing.T) {
	assert.NotEmpty(t, TraitsForBrandValue("sustainability"))
	assert.Nil(t, TraitsForBrandValue("unknown_tag"))
	assert.Len(t, KnownBrandValues(), 15)
}
