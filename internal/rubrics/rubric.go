package rubrics

import (
	"fmt"
	"strings"
)

// GuideBand describes what a score range looks like for one criterion.
// Bands are kept as an ordered slice so prompt rendering is deterministic.
type GuideBand struct {
	Range       string
	Description string
}

// ScoringCriterion is one weighted criterion within a category rubric.
// Weights are relative; they do not have to sum to 1.
type ScoringCriterion struct {
	Name         string
	Weight       float64
	Description  string
	ScoringGuide []GuideBand
}

// CategoryRubric is the set of criteria used to grade one answer for a
// specific interview category.
type CategoryRubric struct {
	Category string
	Criteria []ScoringCriterion
}

// ForCategory returns the rubric registered for the category, or the generic
// default rubric when the category is unknown. Unknown categories degrade
// gracefully instead of failing.
func ForCategory(category string) CategoryRubric {
	if rubric, ok := interviewRubrics[category]; ok {
		return rubric
	}
	return defaultRubric
}

// FormatForPrompt renders a rubric into the text embedded in the evaluation
// directive. The evaluator names criteria by these exact strings, so every
// criterion and every scoring band must appear, in order.
func FormatForPrompt(rubric CategoryRubric) string {
	var b strings.Builder

	fmt.Fprintf(&b, "CATEGORY: %s\n\n", rubric.Category)
	b.WriteString("Evaluate the candidate's response using these criteria:\n\n")

	for i, criterion := range rubric.Criteria {
		fmt.Fprintf(&b, "%d. %s (Weight: %.0f%%)\n", i+1, criterion.Name, criterion.Weight*100)
		fmt.Fprintf(&b, "   %s\n\n", criterion.Description)
		b.WriteString("   Scoring Guide:\n")
		for _, band := range criterion.ScoringGuide {
			fmt.Fprintf(&b, "   • %s: %s\n", band.Range, band.Description)
		}
		b.WriteString("\n")
	}

	return b.String()
}
