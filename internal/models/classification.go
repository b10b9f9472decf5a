package models

// Scenario is the classifier's verdict on how the candidate's answer related
// to the question asked.
type Scenario string

const (
	// ScenarioOnTopic covers any answer that engages with the question,
	// whether it is right, partially right, or wrong.
	ScenarioOnTopic Scenario = "ON_TOPIC"
	// ScenarioOffTopic covers answers that do not address the question at all.
	ScenarioOffTopic Scenario = "OFF_TOPIC"
	// ScenarioDoesNotKnow covers explicit admissions of not knowing.
	ScenarioDoesNotKnow Scenario = "DOES_NOT_KNOW"
)

// Answer quality labels attached to a classification.
const (
	QualityGood       = "good"
	QualityWeak       = "weak"
	QualityWrong      = "wrong"
	QualityIrrelevant = "irrelevant"
	QualityUnknown    = "unknown"
)

type AnswerClassification struct {
	Scenario  Scenario `json:"scenario"`
	Reasoning string   `json:"reasoning"`
	Quality   string   `json:"answer_quality"`
	IsOnTopic bool     `json:"is_on_topic"`
}

// DefaultClassification is the fixed fallback used whenever analysis fails.
// Defaulting to on-topic keeps the interview moving instead of accusing the
// candidate based on a broken analysis.
func DefaultClassification() AnswerClassification {
	return AnswerClassification{
		Scenario:  ScenarioOnTopic,
		Reasoning: "Analysis unavailable",
		Quality:   QualityUnknown,
		IsOnTopic: true,
	}
}
