package handlers

import (
	"errors"
	"net/mail"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/interview-practice/internal/models"
	"alfredoptarigan/interview-practice/internal/services"
)

type InterviewHandler struct {
	interviewer services.InterviewerService
	evaluator   services.EvaluatorService
	speech      services.SpeechService
	logger      *zap.Logger
}

func NewInterviewHandler(
	interviewer services.InterviewerService,
	evaluator services.EvaluatorService,
	speech services.SpeechService,
	logger *zap.Logger,
) *InterviewHandler {
	return &InterviewHandler{
		interviewer: interviewer,
		evaluator:   evaluator,
		speech:      speech,
		logger:      logger,
	}
}

// HandleStart handles POST /api/interview/start
func (h *InterviewHandler) HandleStart(c *fiber.Ctx) error {
	var req models.StartInterviewRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.InterviewType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "interview_type is required",
		})
	}

	if req.UserName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "user_name is required",
		})
	}

	if _, err := mail.ParseAddress(req.UserEmail); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "user_email must be a valid email address",
		})
	}

	resp, err := h.interviewer.StartInterview(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, services.ErrUnknownInterviewType) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unknown interview type: " + req.InterviewType,
			})
		}

		h.logger.Error("failed to start interview", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate the first question",
		})
	}

	h.attachAudio(c, resp)

	return c.JSON(resp)
}

// HandleQuestion handles POST /api/interview/question
func (h *InterviewHandler) HandleQuestion(c *fiber.Ctx) error {
	var req models.QuestionRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.InterviewType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "interview_type is required",
		})
	}

	resp, err := h.interviewer.NextQuestion(c.UserContext(), req)
	if err != nil {
		var rangeErr *services.QuestionNumberError
		if errors.As(err, &rangeErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": rangeErr.Error(),
			})
		}

		if errors.Is(err, services.ErrUnknownInterviewType) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unknown interview type: " + req.InterviewType,
			})
		}

		h.logger.Error("failed to generate question",
			zap.Int("question_number", req.QuestionNumber),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate the next question",
		})
	}

	h.attachAudio(c, resp)

	return c.JSON(resp)
}

// HandleEvaluateTurn handles POST /api/interview/evaluate-turn
func (h *InterviewHandler) HandleEvaluateTurn(c *fiber.Ctx) error {
	var req models.TurnEvaluationRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "question is required",
		})
	}

	score := h.evaluator.EvaluateTurn(c.UserContext(), req)

	return c.JSON(models.TurnEvaluationResponse{TurnScore: score})
}

// HandleEvaluate handles POST /api/interview/evaluate
func (h *InterviewHandler) HandleEvaluate(c *fiber.Ctx) error {
	var req models.InterviewEvaluationRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if len(req.ConversationHistory) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "conversation_history is required",
		})
	}

	result := h.evaluator.EvaluateInterview(c.UserContext(), req)

	return c.JSON(result)
}

// HandleCategories handles GET /api/categories
func (h *InterviewHandler) HandleCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"categories":      services.InterviewCategories,
		"total_questions": len(services.InterviewCategories),
	})
}

// HandleInterviewTypes handles GET /api/interview-types
func (h *InterviewHandler) HandleInterviewTypes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"interview_types": services.InterviewTypes,
	})
}

// attachAudio synthesizes speech for the generated question when the caller
// asked for it. Synthesis failures degrade to a text-only response.
func (h *InterviewHandler) attachAudio(c *fiber.Ctx, resp *models.QuestionResponse) {
	if !c.QueryBool("include_audio", true) {
		return
	}

	audio, err := h.speech.Synthesize(c.UserContext(), resp.Question)
	if err != nil {
		h.logger.Warn("speech synthesis failed, returning text only", zap.Error(err))
		return
	}

	resp.AudioBase64 = audio
}
