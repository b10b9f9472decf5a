package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"alfredoptarigan/interview-practice/internal/models"
)

type GeminiService interface {
	// GenerateText sends a single prompt and returns free text.
	GenerateText(ctx context.Context, system, prompt string, temperature float32) (string, error)
	// GenerateConversation sends the full interview history as context plus a
	// final directive and returns free text.
	GenerateConversation(ctx context.Context, system string, history []models.Message, directive string, temperature float32) (string, error)
	// GenerateConversationWithRetry retries transient generation failures.
	GenerateConversationWithRetry(ctx context.Context, system string, history []models.Message, directive string, temperature float32, maxRetries int) (string, error)
	// GenerateJSON asks the model for a JSON object response.
	GenerateJSON(ctx context.Context, system, prompt string, temperature float32) (string, error)
	// TranscribeAudio converts recorded speech to text.
	TranscribeAudio(ctx context.Context, audio []byte, mimeType string) (string, error)
}

type geminiService struct {
	client    *genai.Client
	modelName string
	logger    *zap.Logger
}

func NewGeminiService(apiKey, model string, logger *zap.Logger) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = "gemini-2.5-flash"
	}

	return &geminiService{
		client:    client,
		modelName: model,
		logger:    logger,
	}, nil
}

// GenerateText implements GeminiService.
func (g *geminiService) GenerateText(ctx context.Context, system, prompt string, temperature float32) (string, error) {
	config := g.baseConfig(system, temperature)
	return g.generate(ctx, genai.Text(prompt), config)
}

// GenerateConversation implements GeminiService.
func (g *geminiService) GenerateConversation(ctx context.Context, system string, history []models.Message, directive string, temperature float32) (string, error) {
	config := g.baseConfig(system, temperature)

	contents := make([]*genai.Content, 0, len(history)+1)
	for _, msg := range history {
		role := genai.RoleUser
		if msg.Role == models.RoleInterviewer {
			role = genai.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: msg.Content}},
		})
	}
	contents = append(contents, &genai.Content{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: directive}},
	})

	return g.generate(ctx, contents, config)
}

// GenerateConversationWithRetry implements GeminiService.
func (g *geminiService) GenerateConversationWithRetry(ctx context.Context, system string, history []models.Message, directive string, temperature float32, maxRetries int) (string, error) {
	return retryGenerate(ctx, maxRetries, g.logger, func() (string, error) {
		return g.GenerateConversation(ctx, system, history, directive, temperature)
	})
}

// retryGenerate runs generate up to maxRetries times, stopping early on
// success or context cancellation. Values below 1 mean a single attempt.
func retryGenerate(ctx context.Context, maxRetries int, logger *zap.Logger, generate func() (string, error)) (string, error) {
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		result, err := generate()
		if err == nil {
			return result, nil
		}

		lastErr = err

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		if attempt < maxRetries {
			logger.Warn("generation attempt failed, retrying",
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", maxRetries, lastErr)
}

// GenerateJSON implements GeminiService.
func (g *geminiService) GenerateJSON(ctx context.Context, system, prompt string, temperature float32) (string, error) {
	config := g.baseConfig(system, temperature)
	config.ResponseMIMEType = "application/json"
	return g.generate(ctx, genai.Text(prompt), config)
}

// TranscribeAudio implements GeminiService.
func (g *geminiService) TranscribeAudio(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("audio payload is empty")
	}
	if mimeType == "" {
		mimeType = "audio/wav"
	}

	contents := []*genai.Content{{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: audio}},
			{Text: "Transcribe this audio recording verbatim. Return only the transcribed text, nothing else."},
		},
	}}

	config := &genai.GenerateContentConfig{MaxOutputTokens: 2048}

	return g.generate(ctx, contents, config)
}

func (g *geminiService) baseConfig(system string, temperature float32) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 2048,
	}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}
	return config
}

func (g *geminiService) generate(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
