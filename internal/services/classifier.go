package services

import (
	"context"

	"go.uber.org/zap"

	"alfredoptarigan/interview-practice/internal/models"
)

// AnswerAnalyzer classifies how a candidate's answer related to the question
// asked. Classification failures never reach the caller; the interview must
// keep moving no matter what the analysis call does.
type AnswerAnalyzer interface {
	Classify(ctx context.Context, previousQuestion, answer string) models.AnswerClassification
}

type answerAnalyzer struct {
	gemini  GeminiService
	prompts *PromptBuilder
	logger  *zap.Logger
}

func NewAnswerAnalyzer(gemini GeminiService, logger *zap.Logger) AnswerAnalyzer {
	return &answerAnalyzer{
		gemini:  gemini,
		prompts: NewPromptBuilder(),
		logger:  logger,
	}
}

const analysisSystemPrompt = "You are an expert interview analyst. Return only valid JSON."

var classificationSchema = mustCompileSchema("classification.json", `{
	"type": "object",
	"required": ["scenario", "reasoning", "answer_quality", "is_on_topic"],
	"properties": {
		"scenario": {"type": "string", "enum": ["A", "B", "C"]},
		"reasoning": {"type": "string"},
		"answer_quality": {"type": "string", "enum": ["good", "weak", "wrong", "irrelevant", "unknown"]},
		"is_on_topic": {"type": "boolean"}
	}
}`)

// scenarioCodes maps the wire codes the model answers with to scenarios.
var scenarioCodes = map[string]models.Scenario{
	"A": models.ScenarioOnTopic,
	"B": models.ScenarioOffTopic,
	"C": models.ScenarioDoesNotKnow,
}

// Classify implements AnswerAnalyzer.
func (a *answerAnalyzer) Classify(ctx context.Context, previousQuestion, answer string) models.AnswerClassification {
	prompt := a.prompts.AnalysisDirective(previousQuestion, answer)

	response, err := a.gemini.GenerateJSON(ctx, analysisSystemPrompt, prompt, 0.3)
	if err != nil {
		a.logger.Warn("answer analysis failed, using default classification", zap.Error(err))
		return models.DefaultClassification()
	}

	var wire struct {
		Scenario      string `json:"scenario"`
		Reasoning     string `json:"reasoning"`
		AnswerQuality string `json:"answer_quality"`
		IsOnTopic     bool   `json:"is_on_topic"`
	}

	if err := parseValidatedJSON(response, classificationSchema, &wire); err != nil {
		a.logger.Warn("answer analysis returned malformed result, using default classification", zap.Error(err))
		return models.DefaultClassification()
	}

	scenario, ok := scenarioCodes[wire.Scenario]
	if !ok {
		return models.DefaultClassification()
	}

	a.logger.Info("answer classified",
		zap.String("scenario", string(scenario)),
		zap.String("quality", wire.AnswerQuality),
		zap.Bool("on_topic", wire.IsOnTopic),
	)

	return models.AnswerClassification{
		Scenario:  scenario,
		Reasoning: wire.Reasoning,
		Quality:   wire.AnswerQuality,
		IsOnTopic: wire.IsOnTopic,
	}
}
