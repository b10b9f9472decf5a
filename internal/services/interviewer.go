package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/interview-practice/internal/models"
)

// questionTemperature is deliberately high so questions stay varied across
// sessions.
const questionTemperature = 0.9

// InterviewerService drives the adaptive interview flow. It is stateless:
// every call re-derives its position from the question number and the
// caller-supplied history.
type InterviewerService interface {
	StartInterview(ctx context.Context, req models.StartInterviewRequest) (*models.QuestionResponse, error)
	NextQuestion(ctx context.Context, req models.QuestionRequest) (*models.QuestionResponse, error)
}

type interviewerService struct {
	gemini     GeminiService
	analyzer   AnswerAnalyzer
	prompts    *PromptBuilder
	maxRetries int
	logger     *zap.Logger
}

func NewInterviewerService(
	gemini GeminiService,
	analyzer AnswerAnalyzer,
	maxRetries int,
	logger *zap.Logger,
) InterviewerService {
	return &interviewerService{
		gemini:     gemini,
		analyzer:   analyzer,
		prompts:    NewPromptBuilder(),
		maxRetries: maxRetries,
		logger:     logger,
	}
}

// StartInterview implements InterviewerService.
func (s *interviewerService) StartInterview(ctx context.Context, req models.StartInterviewRequest) (*models.QuestionResponse, error) {
	system, err := s.prompts.SystemPrompt(req.InterviewType)
	if err != nil {
		return nil, err
	}

	category, err := CategoryForQuestion(1)
	if err != nil {
		return nil, err
	}

	s.logger.Info("starting interview",
		zap.String("interview_type", req.InterviewType),
		zap.String("candidate", req.UserName),
	)

	directive := s.prompts.FirstQuestionDirective(req.UserName, category)

	question, err := s.gemini.GenerateConversationWithRetry(ctx, system, nil, directive, questionTemperature, s.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate first question: %w", err)
	}

	return &models.QuestionResponse{
		InterviewID:    uuid.NewString(),
		Question:       strings.TrimSpace(question),
		Category:       category,
		QuestionNumber: 1,
	}, nil
}

// NextQuestion implements InterviewerService.
func (s *interviewerService) NextQuestion(ctx context.Context, req models.QuestionRequest) (*models.QuestionResponse, error) {
	category, err := CategoryForQuestion(req.QuestionNumber)
	if err != nil {
		return nil, err
	}

	system, err := s.prompts.SystemPrompt(req.InterviewType)
	if err != nil {
		return nil, err
	}

	var directive string
	if req.QuestionNumber == 1 {
		directive = s.prompts.FirstQuestionDirective(req.UserName, category)
	} else {
		var analysis *models.AnswerClassification

		// Classify only when a previous question and answer both exist.
		previousQuestion, answer, ok := LatestTurnPair(req.ConversationHistory)
		if ok {
			s.logger.Info("analyzing previous answer", zap.Int("question_number", req.QuestionNumber))
			result := s.analyzer.Classify(ctx, previousQuestion, answer)
			analysis = &result
		}

		directive = s.prompts.NextQuestionDirective(req.QuestionNumber, category, previousQuestion, analysis)
	}

	question, err := s.gemini.GenerateConversationWithRetry(ctx, system, req.ConversationHistory, directive, questionTemperature, s.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate question %d: %w", req.QuestionNumber, err)
	}

	s.logger.Info("question generated",
		zap.Int("question_number", req.QuestionNumber),
		zap.String("category", category),
	)

	return &models.QuestionResponse{
		Question:       strings.TrimSpace(question),
		Category:       category,
		QuestionNumber: req.QuestionNumber,
	}, nil
}
