package services

import (
	"context"

	"alfredoptarigan/interview-practice/internal/models"
)

// stubGemini implements GeminiService for tests. Each method delegates to a
// function field when set and counts its calls.
type stubGemini struct {
	generateTextFn func(system, prompt string, temperature float32) (string, error)
	conversationFn func(system string, history []models.Message, directive string, temperature float32) (string, error)
	generateJSONFn func(system, prompt string, temperature float32) (string, error)
	transcribeFn   func(audio []byte, mimeType string) (string, error)

	generateTextCalls int
	conversationCalls int
	generateJSONCalls int

	lastDirective   string
	lastHistory     []models.Message
	lastTemperature float32
}

func (s *stubGemini) GenerateText(_ context.Context, system, prompt string, temperature float32) (string, error) {
	s.generateTextCalls++
	s.lastTemperature = temperature
	if s.generateTextFn != nil {
		return s.generateTextFn(system, prompt, temperature)
	}
	return "", nil
}

func (s *stubGemini) GenerateConversation(_ context.Context, system string, history []models.Message, directive string, temperature float32) (string, error) {
	s.conversationCalls++
	s.lastDirective = directive
	s.lastHistory = history
	s.lastTemperature = temperature
	if s.conversationFn != nil {
		return s.conversationFn(system, history, directive, temperature)
	}
	return "", nil
}

func (s *stubGemini) GenerateConversationWithRetry(ctx context.Context, system string, history []models.Message, directive string, temperature float32, _ int) (string, error) {
	return s.GenerateConversation(ctx, system, history, directive, temperature)
}

func (s *stubGemini) GenerateJSON(_ context.Context, system, prompt string, temperature float32) (string, error) {
	s.generateJSONCalls++
	s.lastTemperature = temperature
	if s.generateJSONFn != nil {
		return s.generateJSONFn(system, prompt, temperature)
	}
	return "{}", nil
}

func (s *stubGemini) TranscribeAudio(_ context.Context, audio []byte, mimeType string) (string, error) {
	if s.transcribeFn != nil {
		return s.transcribeFn(audio, mimeType)
	}
	return "", nil
}

// stubAnalyzer implements AnswerAnalyzer with a canned classification.
type stubAnalyzer struct {
	result models.AnswerClassification
	calls  int

	lastQuestion string
	lastAnswer   string
}

func (s *stubAnalyzer) Classify(_ context.Context, previousQuestion, answer string) models.AnswerClassification {
	s.calls++
	s.lastQuestion = previousQuestion
	s.lastAnswer = answer
	return s.result
}
