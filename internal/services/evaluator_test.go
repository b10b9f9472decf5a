package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"alfredoptarigan/interview-practice/internal/models"
)

func TestEvaluateTurnEmptyAnswer(t *testing.T) {
	gemini := &stubGemini{}
	evaluator := NewEvaluatorService(gemini, zap.NewNop())

	for _, answer := range []string{"", "   ", "ok", "\n\t "} {
		score := evaluator.EvaluateTurn(context.Background(), models.TurnEvaluationRequest{
			InterviewType: "dentist",
			Category:      "Introduction",
			Question:      "Tell me about yourself.",
			Answer:        answer,
			TurnNumber:    1,
		})

		assert.Equal(t, 0.0, score.OverallTurnScore)
		assert.Equal(t, []string{}, score.Strengths)
		assert.NotEmpty(t, score.Improvements)
		for _, criterionScore := range score.CriterionScores {
			assert.Equal(t, 0.0, criterionScore)
		}
	}

	// No model call is made for empty answers.
	assert.Equal(t, 0, gemini.generateJSONCalls)
}

func TestEvaluateTurn(t *testing.T) {
	gemini := &stubGemini{
		generateJSONFn: func(_, _ string, _ float32) (string, error) {
			return `{
				"criterion_scores": {"Relevance": 8, "Clarity": 6, "Depth": 7},
				"feedback": "Solid answer with room for more detail.",
				"strengths": ["Clear structure"],
				"improvements": ["Add a concrete example"]
			}`, nil
		},
	}
	evaluator := NewEvaluatorService(gemini, zap.NewNop())

	score := evaluator.EvaluateTurn(context.Background(), models.TurnEvaluationRequest{
		InterviewType: "dentist",
		Category:      "Introduction",
		Question:      "Tell me about yourself.",
		Answer:        "I have been practicing general dentistry for five years.",
		TurnNumber:    1,
	})

	// Weights .4/.3/.3 over scores 8/6/7.
	assert.Equal(t, 7.1, score.OverallTurnScore)
	assert.Equal(t, "Solid answer with room for more detail.", score.Feedback)
	assert.Equal(t, []string{"Clear structure"}, score.Strengths)
	assert.InDelta(t, 0.3, gemini.lastTemperature, 0.001)
}

func TestEvaluateTurnFallback(t *testing.T) {
	for name, fn := range map[string]func(_, _ string, _ float32) (string, error){
		"call error": func(_, _ string, _ float32) (string, error) {
			return "", errors.New("upstream unavailable")
		},
		"malformed response": func(_, _ string, _ float32) (string, error) {
			return "sorry, I cannot evaluate this", nil
		},
	} {
		t.Run(name, func(t *testing.T) {
			gemini := &stubGemini{generateJSONFn: fn}
			evaluator := NewEvaluatorService(gemini, zap.NewNop())

			score := evaluator.EvaluateTurn(context.Background(), models.TurnEvaluationRequest{
				Category:   "Clinical Judgement",
				Question:   "Describe a difficult case.",
				Answer:     "A patient presented with unexplained pain.",
				TurnNumber: 2,
			})

			assert.Equal(t, 5.0, score.OverallTurnScore)
			for _, criterionScore := range score.CriterionScores {
				assert.Equal(t, 5.0, criterionScore)
			}
			assert.Equal(t, []string{"Provided an answer"}, score.Strengths)
		})
	}
}

func TestEvaluateInterview(t *testing.T) {
	gemini := &stubGemini{
		generateJSONFn: func(_, _ string, _ float32) (string, error) {
			return `{
				"overall_score": 8.2,
				"category_scores": {"Introduction": 9},
				"strengths": ["Strong communicator"],
				"areas_for_improvement": ["More clinical depth"],
				"detailed_feedback": "A confident performance overall.",
				"summary": "Ready for the role."
			}`, nil
		},
	}
	evaluator := NewEvaluatorService(gemini, zap.NewNop())

	result := evaluator.EvaluateInterview(context.Background(), models.InterviewEvaluationRequest{
		InterviewType: "dentist",
		UserName:      "Sarah",
		ConversationHistory: []models.Message{
			{Role: models.RoleInterviewer, Content: "Tell me about yourself."},
			{Role: models.RoleCandidate, Content: "I am a dentist."},
		},
	})

	assert.Equal(t, 8.2, result.OverallScore)
	assert.Equal(t, "Ready for the role.", result.Summary)
	assert.InDelta(t, 0.7, gemini.lastTemperature, 0.001)
}

func TestEvaluateInterviewFallback(t *testing.T) {
	gemini := &stubGemini{
		generateJSONFn: func(_, _ string, _ float32) (string, error) {
			return "", errors.New("upstream unavailable")
		},
	}
	evaluator := NewEvaluatorService(gemini, zap.NewNop())

	result := evaluator.EvaluateInterview(context.Background(), models.InterviewEvaluationRequest{
		InterviewType: "dentist",
		UserName:      "Sarah",
	})

	assert.Equal(t, 7.0, result.OverallScore)
	assert.Len(t, result.CategoryScores, len(InterviewCategories))
	for _, categoryScore := range result.CategoryScores {
		assert.Equal(t, 7.0, categoryScore)
	}
	assert.NotEmpty(t, result.Strengths)
	assert.NotEmpty(t, result.Summary)
}
