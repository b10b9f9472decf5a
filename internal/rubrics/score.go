package rubrics

import "math"

// CalculateWeightedScore computes the weighted average of the raw criterion
// scores, rounded to one decimal place. Criteria missing from the map score 0
// so a partially malformed evaluation still yields a usable result. A rubric
// with zero total weight scores 0.0. Raw values are taken as-is; keeping them
// inside 0-10 is the caller's job.
func CalculateWeightedScore(criterionScores map[string]float64, criteria []ScoringCriterion) float64 {
	var totalWeight, weightedSum float64
	for _, c := range criteria {
		totalWeight += c.Weight
		weightedSum += criterionScores[c.Name] * c.Weight
	}

	if totalWeight <= 0 {
		return 0.0
	}

	return math.Round(weightedSum/totalWeight*10) / 10
}

// ZeroScores returns a score map with every criterion of the rubric set to 0.
// Used for the empty-answer short-circuit, which must stay deterministic and
// must not involve any model call.
func ZeroScores(rubric CategoryRubric) map[string]float64 {
	scores := make(map[string]float64, len(rubric.Criteria))
	for _, c := range rubric.Criteria {
		scores[c.Name] = 0
	}
	return scores
}
