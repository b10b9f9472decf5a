package services

import "fmt"

// InterviewCategories is the fixed, ordered list of the ten interview stages.
// Question N is always about category N; this slice is the single source of
// truth for that mapping and is never mutated.
var InterviewCategories = []string{
	"Introduction",
	"Clinical Judgement",
	"Technical Knowledge - Clinical Procedures",
	"Ethics, Consent & Communication",
	"Productivity & Efficiency",
	"Technical Knowledge - Advanced Applications",
	"Mentorship & Independence",
	"Technical Knowledge - Diagnosis & Treatment Planning",
	"Fit & Professional Maturity",
	"Insight & Authenticity",
}

// QuestionNumberError reports a question number outside the valid range.
// Handlers surface it as a client error.
type QuestionNumberError struct {
	Number int
}

func (e *QuestionNumberError) Error() string {
	return fmt.Sprintf("question number must be between 1 and %d, got %d", len(InterviewCategories), e.Number)
}

// CategoryForQuestion returns the interview category for a 1-based question
// number.
func CategoryForQuestion(number int) (string, error) {
	if number < 1 || number > len(InterviewCategories) {
		return "", &QuestionNumberError{Number: number}
	}
	return InterviewCategories[number-1], nil
}
