package rubrics

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForCategory(t *testing.T) {
	rubric := ForCategory("Clinical Judgement")
	assert.Equal(t, "Clinical Judgement", rubric.Category)
	require.Len(t, rubric.Criteria, 3)
	assert.Equal(t, "Clinical Accuracy", rubric.Criteria[1].Name)
}

func TestForCategoryUnknownFallsBackToDefault(t *testing.T) {
	rubric := ForCategory("Underwater Basket Weaving")
	assert.Equal(t, Default().Category, rubric.Category)
}

func TestRegisteredRubricWeightsSumToOne(t *testing.T) {
	rubrics := append(Registered(), Default())

	for _, rubric := range rubrics {
		total := 0.0
		for _, criterion := range rubric.Criteria {
			total += criterion.Weight
		}
		assert.InDelta(t, 1.0, total, 0.001, "weights for %q", rubric.Category)
	}
}

func TestFormatForPrompt(t *testing.T) {
	rubric := ForCategory("Introduction")
	text := FormatForPrompt(rubric)

	assert.Contains(t, text, "CATEGORY: Introduction")

	// Criteria render in order with their weight as a percentage.
	var previous int
	for i, criterion := range rubric.Criteria {
		heading := fmt.Sprintf("%d. %s (Weight: %.0f%%)", i+1, criterion.Name, criterion.Weight*100)
		index := strings.Index(text, heading)
		require.GreaterOrEqual(t, index, 0, "missing heading %q", heading)
		assert.Greater(t, index, previous)
		previous = index

		for _, band := range criterion.ScoringGuide {
			assert.Contains(t, text, band.Range)
			assert.Contains(t, text, band.Description)
		}
	}
}

func TestFormatForPromptAllRegistered(t *testing.T) {
	for _, rubric := range append(Registered(), Default()) {
		text := FormatForPrompt(rubric)
		for _, criterion := range rubric.Criteria {
			assert.Contains(t, text, criterion.Name, "rubric %q", rubric.Category)
		}
	}
}
