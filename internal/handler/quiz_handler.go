package handler

import (
	"studytrack/internal/dto"
	"studytrack/internal/middleware"
	"studytrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

type QuizHandler struct {
	quizService service.QuizService
}

func NewQuizHandler(quizService service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// SubmitAttempt scores and records a completed quiz session.
// @Summary Submit a quiz attempt
// @Description Validates and scores a completed quiz session, persists the attempt and returns the frozen scores and recommendation.
// @Tags attempts
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.SubmitAttemptRequest true "Completed quiz session"
// @Success 201 {object} dto.SubmitAttemptResponse
// @Failure 400 {object} middleware.ValidationErrorResponse "Validation failed"
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure 404 {object} middleware.ErrorResponse "Topic not found"
// @Router /attempts [post]
func (h *QuizHandler) SubmitAttempt(c *fiber.Ctx) error {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "User ID not found in context")
	}

	var req dto.SubmitAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	resp, err := h.quizService.SubmitAttempt(c.Context(), userID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetTopicQuestions serves the quiz questions for a topic.
// @Summary Get topic questions
// @Description Returns the quiz questions attached to a topic.
// @Tags attempts
// @Security ApiKeyAuth
// @Produce json
// @Param topicId path string true "Topic ID"
// @Success 200 {object} dto.QuestionsResponse
// @Failure 404 {object} middleware.ErrorResponse "Topic not found"
// @Router /topics/{topicId}/questions [get]
func (h *QuizHandler) GetTopicQuestions(c *fiber.Ctx) error {
	topicID := c.Params("topicId")
	if topicID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Topic ID is required")
	}

	resp, err := h.quizService.GetTopicQuestions(c.Context(), topicID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
