package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"alfredoptarigan/interview-practice/internal/models"
	"alfredoptarigan/interview-practice/internal/rubrics"
)

// minAnswerLength is the trimmed length below which an answer counts as
// empty and is scored 0 without any model call.
const minAnswerLength = 5

// EvaluatorService grades answers against the category rubrics. Both
// operations always return a well-formed result: upstream failures degrade
// to fixed fallback scores instead of errors.
type EvaluatorService interface {
	EvaluateTurn(ctx context.Context, req models.TurnEvaluationRequest) models.TurnScore
	EvaluateInterview(ctx context.Context, req models.InterviewEvaluationRequest) models.InterviewEvaluationResponse
}

type evaluatorService struct {
	gemini  GeminiService
	prompts *PromptBuilder
	logger  *zap.Logger
}

func NewEvaluatorService(gemini GeminiService, logger *zap.Logger) EvaluatorService {
	return &evaluatorService{
		gemini:  gemini,
		prompts: NewPromptBuilder(),
		logger:  logger,
	}
}

var turnEvaluationSchema = mustCompileSchema("turn_evaluation.json", `{
	"type": "object",
	"required": ["criterion_scores", "feedback"],
	"properties": {
		"criterion_scores": {
			"type": "object",
			"additionalProperties": {"type": "number"}
		},
		"feedback": {"type": "string"},
		"strengths": {"type": "array", "items": {"type": "string"}},
		"improvements": {"type": "array", "items": {"type": "string"}}
	}
}`)

// EvaluateTurn implements EvaluatorService.
func (e *evaluatorService) EvaluateTurn(ctx context.Context, req models.TurnEvaluationRequest) models.TurnScore {
	rubric := rubrics.ForCategory(req.Category)

	// Empty or near-empty answers are scored 0 deterministically. No model
	// call is made for them.
	if len(strings.TrimSpace(req.Answer)) < minAnswerLength {
		e.logger.Info("empty answer detected, scoring turn as zero", zap.Int("turn_number", req.TurnNumber))

		return models.TurnScore{
			TurnNumber:       req.TurnNumber,
			Question:         req.Question,
			Answer:           req.Answer,
			Category:         req.Category,
			CriterionScores:  rubrics.ZeroScores(rubric),
			OverallTurnScore: 0.0,
			Feedback:         "No meaningful response provided. Please ensure you speak clearly into the microphone.",
			Strengths:        []string{},
			Improvements: []string{
				"Provide a verbal response to the question",
				"Speak clearly and ensure microphone is working",
			},
		}
	}

	system := e.prompts.TurnEvaluationDirective(rubrics.FormatForPrompt(rubric))
	turnText := e.prompts.TurnText(req.Question, req.Answer)

	response, err := e.gemini.GenerateJSON(ctx, system, turnText, 0.3)
	if err != nil {
		e.logger.Warn("turn evaluation failed, using fallback score", zap.Error(err))
		return e.fallbackTurnScore(req, rubric)
	}

	var wire struct {
		CriterionScores map[string]float64 `json:"criterion_scores"`
		Feedback        string             `json:"feedback"`
		Strengths       []string           `json:"strengths"`
		Improvements    []string           `json:"improvements"`
	}

	if err := parseValidatedJSON(response, turnEvaluationSchema, &wire); err != nil {
		e.logger.Warn("turn evaluation returned malformed result, using fallback score", zap.Error(err))
		return e.fallbackTurnScore(req, rubric)
	}

	overall := rubrics.CalculateWeightedScore(wire.CriterionScores, rubric.Criteria)

	e.logger.Info("turn evaluated",
		zap.Int("turn_number", req.TurnNumber),
		zap.String("category", req.Category),
		zap.Float64("overall_score", overall),
	)

	return models.TurnScore{
		TurnNumber:       req.TurnNumber,
		Question:         req.Question,
		Answer:           req.Answer,
		Category:         req.Category,
		CriterionScores:  wire.CriterionScores,
		OverallTurnScore: overall,
		Feedback:         wire.Feedback,
		Strengths:        wire.Strengths,
		Improvements:     wire.Improvements,
	}
}

// fallbackTurnScore is the fixed neutral result used when the evaluation
// collaborator fails. The caller always gets a usable score.
func (e *evaluatorService) fallbackTurnScore(req models.TurnEvaluationRequest, rubric rubrics.CategoryRubric) models.TurnScore {
	scores := make(map[string]float64, len(rubric.Criteria))
	for _, criterion := range rubric.Criteria {
		scores[criterion.Name] = 5.0
	}

	return models.TurnScore{
		TurnNumber:       req.TurnNumber,
		Question:         req.Question,
		Answer:           req.Answer,
		Category:         req.Category,
		CriterionScores:  scores,
		OverallTurnScore: 5.0,
		Feedback:         "Response received and recorded. Continue to the next question.",
		Strengths:        []string{"Provided an answer"},
		Improvements:     []string{"Could provide more detail"},
	}
}

// EvaluateInterview implements EvaluatorService.
func (e *evaluatorService) EvaluateInterview(ctx context.Context, req models.InterviewEvaluationRequest) models.InterviewEvaluationResponse {
	e.logger.Info("evaluating interview",
		zap.String("interview_type", req.InterviewType),
		zap.String("candidate", req.UserName),
		zap.Int("history_length", len(req.ConversationHistory)),
	)

	system := e.prompts.InterviewEvaluationDirective(req.UserName, req.InterviewType)
	transcript := "Here is the complete interview conversation:\n\n" + e.prompts.Transcript(req.ConversationHistory)

	response, err := e.gemini.GenerateJSON(ctx, system, transcript, 0.7)
	if err != nil {
		e.logger.Warn("interview evaluation failed, using fallback result", zap.Error(err))
		return fallbackInterviewEvaluation()
	}

	var result models.InterviewEvaluationResponse
	if err := parseValidatedJSON(response, nil, &result); err != nil {
		e.logger.Warn("interview evaluation returned malformed result, using fallback", zap.Error(err))
		return fallbackInterviewEvaluation()
	}

	e.logger.Info("interview evaluation completed", zap.Float64("overall_score", result.OverallScore))

	return result
}

func fallbackInterviewEvaluation() models.InterviewEvaluationResponse {
	categoryScores := make(map[string]float64, len(InterviewCategories))
	for _, category := range InterviewCategories {
		categoryScores[category] = 7.0
	}

	return models.InterviewEvaluationResponse{
		OverallScore:   7.0,
		CategoryScores: categoryScores,
		Strengths: []string{
			"Completed the interview",
			"Engaged with questions",
			"Professional demeanor",
		},
		AreasForImprovement: []string{
			"Provide more specific examples",
			"Elaborate on technical knowledge",
			"Strengthen communication skills",
		},
		DetailedFeedback: "Thank you for completing the interview practice session. Your responses showed engagement with the questions. To improve, focus on providing more detailed examples from your experience and demonstrating deeper technical knowledge.",
		Summary:          "Good effort in the practice interview with room for growth in several areas.",
	}
}
