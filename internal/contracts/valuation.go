package contracts

import (
	"encoding/json"
	"fmt"
	"time"
)

// Tier is an ordered valuation band derived from the 0-100 score.
// The order is strict: Emerging < Developing < Established < Elite.
type Tier int

const (
	TierEmerging Tier = iota
	TierDeveloping
	TierEstablished
	TierElite
)

// tierBand maps one contiguous score interval to a tier.
// Bands are non-overlapping and cover 0-100 with no gaps.
type tierBand struct {
	Min  int
	Max  int
	Tier Tier
}

// TierBands is the single score-to-tier table. Every consumer derives
// tier from this table, never from ad-hoc comparisons.
var TierBands = []tierBand{
	{Min: 0, Max: 24, Tier: TierEmerging},
	{Min: 25, Max: 49, Tier: TierDeveloping},
	{Min: 50, Max: 74, Tier: TierEstablished},
	{Min: 75, Max: 100, Tier: TierElite},
}

// TierForScore maps a valuation score to its tier. Out-of-range scores
// are clamped into [0,100] first.
func TierForScore(score int) Tier {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	for _, band := range TierBands {
		if score >= band.Min && score <= band.Max {
			return band.Tier
		}
	}
	return TierEmerging
}

// String returns the lowercase tier name
func (t Tier) String() string {
	switch t {
	case TierEmerging:
		return "emerging"
	case TierDeveloping:
		return "developing"
	case TierEstablished:
		return "established"
	case TierElite:
		return "elite"
	default:
		return "unknown"
	}
}

// ParseTier converts a tier name to its Tier value
func ParseTier(s string) (Tier, error) {
	switch s {
	case "emerging":
		return TierEmerging, nil
	case "developing":
		return TierDeveloping, nil
	case "established":
		return TierEstablished, nil
	case "elite":
		return TierElite, nil
	default:
		return TierEmerging, fmt.Errorf("unknown tier: %q", s)
	}
}

// Distance returns the absolute band distance between two tiers
func (t Tier) Distance(other Tier) int {
	d := int(t) - int(other)
	if d < 0 {
		d = -d
	}
	return d
}

// MarshalJSON encodes the tier as its name
func (t Tier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a tier name
func (t *Tier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTier(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ValuationRecord holds an athlete's computed fair market value.
// DailyCalcCount and LastCalcDate belong to the recalculation rate
// limit; the scoring pipeline reads them but never enforces the limit.
type ValuationRecord struct {
	AthleteID     string    `json:"athlete_id"`
	Score         int       `json:"score"` // 0-100
	Tier          Tier      `json:"tier"`
	Percentile    float64   `json:"percentile"` // 0-100, rank within population
	DealValueLow  float64   `json:"deal_value_low"`
	DealValueHigh float64   `json:"deal_value_high"`
	CalculatedAt  time.Time `json:"calculated_at"`

	DailyCalcCount int       `json:"daily_calc_count"`
	LastCalcDate   time.Time `json:"last_calc_date"`
}

// IsStale reports whether the record is older than the given TTL
func (v *ValuationRecord) IsStale(ttl time.Duration, now time.Time) bool {
	if v.CalculatedAt.IsZero() {
		return true
	}
	return now.Sub(v.CalculatedAt) > ttl
}
