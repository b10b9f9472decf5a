package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/interview-practice/internal/models"
	"alfredoptarigan/interview-practice/internal/services"
)

type AudioHandler struct {
	speech services.SpeechService
	gemini services.GeminiService
	logger *zap.Logger
}

func NewAudioHandler(speech services.SpeechService, gemini services.GeminiService, logger *zap.Logger) *AudioHandler {
	return &AudioHandler{
		speech: speech,
		gemini: gemini,
		logger: logger,
	}
}

// HandleGenerate handles POST /api/audio/generate
func (h *AudioHandler) HandleGenerate(c *fiber.Ctx) error {
	var req struct {
		Text string `json:"text"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "text is required",
		})
	}

	audio, err := h.speech.Synthesize(c.UserContext(), req.Text)
	if err != nil {
		h.logger.Error("speech synthesis failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate audio",
		})
	}

	return c.JSON(models.AudioResponse{
		AudioBase64: audio,
		ContentType: "audio/mpeg",
	})
}

// HandleTranscribe handles POST /api/audio/transcribe
func (h *AudioHandler) HandleTranscribe(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "audio file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open uploaded file",
		})
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "audio/webm"
	}

	transcription, err := h.gemini.TranscribeAudio(c.UserContext(), audio, mimeType)
	if err != nil {
		h.logger.Error("transcription failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to transcribe audio",
		})
	}

	return c.JSON(models.TranscriptionResponse{
		Transcription: transcription,
		Success:       true,
	})
}
