package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/interview-practice/internal/models"
)

func TestSystemPrompt(t *testing.T) {
	pb := NewPromptBuilder()

	for _, interviewType := range InterviewTypes {
		prompt, err := pb.SystemPrompt(interviewType)
		require.NoError(t, err)
		assert.NotEmpty(t, prompt)
	}

	_, err := pb.SystemPrompt("barista")
	assert.ErrorIs(t, err, ErrUnknownInterviewType)
}

func TestFirstQuestionDirective(t *testing.T) {
	pb := NewPromptBuilder()

	directive := pb.FirstQuestionDirective("Sarah", "Introduction")
	assert.Contains(t, directive, "Sarah")
	assert.Contains(t, directive, "Introduction")
	assert.Contains(t, directive, "first question")
}

func TestNextQuestionDirectiveOffTopic(t *testing.T) {
	pb := NewPromptBuilder()
	analysis := &models.AnswerClassification{
		Scenario:  models.ScenarioOffTopic,
		Reasoning: "The answer was about cooking, not dentistry.",
		Quality:   models.QualityIrrelevant,
	}

	directive := pb.NextQuestionDirective(3, "Technical Knowledge - Clinical Procedures", "Describe a root canal.", analysis)
	assert.Contains(t, directive, "irrelevant answer")
	assert.Contains(t, directive, "Describe a root canal.")
	assert.Contains(t, directive, "The answer was about cooking, not dentistry.")
	assert.Contains(t, directive, "Technical Knowledge - Clinical Procedures")
}

func TestNextQuestionDirectiveDoesNotKnow(t *testing.T) {
	pb := NewPromptBuilder()
	analysis := &models.AnswerClassification{
		Scenario:  models.ScenarioDoesNotKnow,
		Reasoning: "The candidate said they have no experience with this.",
		Quality:   models.QualityUnknown,
	}

	directive := pb.NextQuestionDirective(5, "Productivity & Efficiency", "How do you manage double bookings?", analysis)
	assert.Contains(t, directive, "don't know")
	assert.Contains(t, directive, "encouragement")
	assert.Contains(t, directive, "NEXT question for the Productivity & Efficiency category")
}

func TestNextQuestionDirectiveOnTopic(t *testing.T) {
	pb := NewPromptBuilder()
	analysis := &models.AnswerClassification{
		Scenario:  models.ScenarioOnTopic,
		Reasoning: "Directly addressed the question.",
		Quality:   models.QualityGood,
		IsOnTopic: true,
	}

	directive := pb.NextQuestionDirective(2, "Clinical Judgement", "Walk me through a difficult diagnosis.", analysis)
	assert.Contains(t, directive, "on-topic answer")
	assert.Contains(t, directive, "good")
	assert.Contains(t, directive, "Clinical Judgement")
}

func TestNextQuestionDirectiveNilAnalysis(t *testing.T) {
	pb := NewPromptBuilder()

	directive := pb.NextQuestionDirective(2, "Clinical Judgement", "", nil)
	assert.Contains(t, directive, "Clinical Judgement")
	assert.Contains(t, directive, "NEW, CREATIVE question")
}

func TestAnalysisDirective(t *testing.T) {
	pb := NewPromptBuilder()

	directive := pb.AnalysisDirective("What is your sterilization protocol?", "I follow CDC guidelines.")
	assert.Contains(t, directive, "What is your sterilization protocol?")
	assert.Contains(t, directive, "I follow CDC guidelines.")
	assert.Contains(t, directive, "THREE scenarios")
	assert.Contains(t, directive, `"scenario"`)
}

func TestTranscript(t *testing.T) {
	pb := NewPromptBuilder()

	transcript := pb.Transcript([]models.Message{
		{Role: models.RoleInterviewer, Content: "Question one"},
		{Role: models.RoleCandidate, Content: "Answer one"},
	})

	assert.Contains(t, transcript, "INTERVIEWER: Question one")
	assert.Contains(t, transcript, "CANDIDATE: Answer one")
}

func TestInterviewEvaluationDirective(t *testing.T) {
	pb := NewPromptBuilder()

	directive := pb.InterviewEvaluationDirective("Sarah", "dentist")
	assert.Contains(t, directive, "Sarah")

	for _, category := range InterviewCategories {
		assert.Contains(t, directive, category)
	}
}
