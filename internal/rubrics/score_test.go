package rubrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateWeightedScore(t *testing.T) {
	criteria := []ScoringCriterion{
		{Name: "Relevance", Weight: 0.4},
		{Name: "Clarity", Weight: 0.3},
		{Name: "Depth", Weight: 0.3},
	}

	score := CalculateWeightedScore(map[string]float64{
		"Relevance": 8,
		"Clarity":   6,
		"Depth":     7,
	}, criteria)

	assert.Equal(t, 7.1, score)
}

func TestCalculateWeightedScoreMissingCriterion(t *testing.T) {
	criteria := []ScoringCriterion{
		{Name: "Relevance", Weight: 0.5},
		{Name: "Depth", Weight: 0.5},
	}

	// A criterion the model did not score counts as 0.
	score := CalculateWeightedScore(map[string]float64{"Relevance": 8}, criteria)
	assert.Equal(t, 4.0, score)
}

func TestCalculateWeightedScoreZeroWeight(t *testing.T) {
	assert.Equal(t, 0.0, CalculateWeightedScore(map[string]float64{"Anything": 10}, nil))
	assert.Equal(t, 0.0, CalculateWeightedScore(nil, []ScoringCriterion{{Name: "X", Weight: 0}}))
}

func TestCalculateWeightedScoreRounding(t *testing.T) {
	criteria := []ScoringCriterion{
		{Name: "A", Weight: 0.3},
		{Name: "B", Weight: 0.7},
	}

	// 0.3*7 + 0.7*8 = 7.7
	score := CalculateWeightedScore(map[string]float64{"A": 7, "B": 8}, criteria)
	assert.Equal(t, 7.7, score)
}

func TestZeroScores(t *testing.T) {
	rubric := ForCategory("Introduction")

	scores := ZeroScores(rubric)
	assert.Len(t, scores, len(rubric.Criteria))
	for _, criterion := range rubric.Criteria {
		value, ok := scores[criterion.Name]
		assert.True(t, ok)
		assert.Equal(t, 0.0, value)
	}
}
