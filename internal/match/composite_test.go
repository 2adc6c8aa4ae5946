package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fairplay-nil/backend/internal/contracts"
)

func TestDefaultWeightsSumToOne(t *testing.T) {
	weights := DefaultWeightConfig()
	assert.True(t, weights.ValidateWeights())
}

func TestCompositeScoreBounds(t *testing.T) {
	weights := DefaultWeightConfig()

	allZero := &contracts.DimensionScores{}
	assert.Equal(t, 0, weights.CompositeScore(allZero))

	allFull := &contracts.DimensionScores{
		Sport: 100, Followers: 100, Geography: 100,
		Tier: 100, TraitAlignment: 100, Budget: 100,
	}
	assert.Equal(t, 100, weights.CompositeScore(allFull))
}

func TestCompositeScoreIsDeterministic(t *testing.T) {
	weights := DefaultWeightConfig()
	dims := &contracts.DimensionScores{
		Sport: 100, Followers: 73.5, Geography: 0,
		Tier: 50, TraitAlignment: 62.5, Budget: 88,
	}

	first := weights.CompositeScore(dims)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, weights.CompositeScore(dims))
	}
}

func TestCompositeScoreWeighting(t *testing.T) {
	weights := DefaultWeightConfig()

	// Only sport at 100 contributes exactly its weight
	sportOnly := &contracts.DimensionScores{Sport: 100}
	assert.Equal(t, 20, weights.CompositeScore(sportOnly))

	geoOnly := &contracts.DimensionScores{Geography: 100}
	assert.Equal(t, 10, weights.CompositeScore(geoOnly))
}

func TestConfidenceFor(t *testing.T) {
	tests := []struct {
		composite int
		want      contracts.Confidence
	}{
		{0, contracts.ConfidenceLow},
		{49, contracts.ConfidenceLow},
		{50, contracts.ConfidenceMedium}, // inclusive boundary
		{74, contracts.ConfidenceMedium},
		{75, contracts.ConfidenceHigh}, // inclusive boundary
		{100, contracts.ConfidenceHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ConfidenceFor(tt.composite), "composite=%d", tt.composite)
	}
}

func TestRationale(t *testing.T) {
	dims := &contracts.DimensionScores{
		Sport:          100, // strength
		Followers:      80,  // strength, inclusive boundary
		Geography:      39,  // concern
		Tier:           50,  // neither
		TraitAlignment: 0,   // concern
		Budget:         40,  // neither, inclusive boundary
	}

	strengths, concerns := Rationale(dims)
	assert.Len(t, strengths, 2)
	assert.Len(t, concerns, 2)

	// Order follows the fixed dimension order
	assert.Equal(t, "Sport matches campaign target", strengths[0])
	assert.Equal(t, "Follower count fits campaign range", strengths[1])
	assert.Equal(t, "Outside target regions", concerns[0])
	assert.Equal(t, "Weak brand-value alignment", concerns[1])
}

func TestRationaleAllBoundaries(t *testing.T) {
	// Every sub-score exactly at the strength threshold
	dims := &contracts.DimensionScores{
		Sport: 80, Followers: 80, Geography: 80,
		Tier: 80, TraitAlignment: 80, Budget: 80,
	}
	strengths, concerns := Rationale(dims)
	assert.Len(t, strengths, 6)
	assert.Empty(t, concerns)
}
