package handler

import (
	"strconv"
	"studytrack/internal/dto"
	"studytrack/internal/middleware"
	"studytrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService      service.UserService
	analyticsService service.AnalyticsService
}

func NewUserHandler(userService service.UserService, analyticsService service.AnalyticsService) *UserHandler {
	return &UserHandler{userService: userService, analyticsService: analyticsService}
}

func parsePagination(c *fiber.Ctx) dto.Pagination {
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit
	return dto.Pagination{Limit: limit, Offset: offset, Page: page}
}

func parseAttemptFilters(c *fiber.Ctx) dto.AttemptFilters {
	return dto.AttemptFilters{
		SubjectID: c.Query("subject_id"),
		TopicID:   c.Query("topic_id"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
}

func currentUserID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "User ID not found in context")
	}
	return userID, nil
}

// GetMyProfile retrieves the profile of the currently authenticated user.
// @Summary Get My Profile
// @Description Retrieves the profile information of the logged-in user.
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.UserProfileResponse
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure 404 {object} middleware.ErrorResponse "User not found"
// @Router /users/me [get]
func (h *UserHandler) GetMyProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.userService.GetUserProfile(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// GetMyAttempts lists the authenticated user's quiz attempts.
// @Summary Get My Attempts
// @Description Returns a filtered, paginated history of the user's quiz attempts.
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Param subject_id query string false "Filter by subject ID"
// @Param topic_id query string false "Filter by topic ID"
// @Param start_date query string false "Filter from date (YYYY-MM-DD)"
// @Param end_date query string false "Filter to date (YYYY-MM-DD)"
// @Param sort_by query string false "Sort field: attempted_at or marks"
// @Param sort_order query string false "ASC or DESC"
// @Param limit query int false "Items per page (default 10)"
// @Param page query int false "Page number (default 1)"
// @Success 200 {object} dto.AttemptsResponse
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Router /users/me/attempts [get]
func (h *UserHandler) GetMyAttempts(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	resp, err := h.analyticsService.GetUserAttempts(c.Context(), userID, parseAttemptFilters(c), parsePagination(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetMyTopicSummary returns the per-topic readiness summary for the user.
// @Summary Get My Topic Summary
// @Description Returns aggregate accuracy, trend, streaks and the current recommendation for one topic.
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Param topicId path string true "Topic ID"
// @Success 200 {object} dto.TopicSummaryResponse
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure 404 {object} middleware.ErrorResponse "Topic not found"
// @Router /users/me/topics/{topicId}/summary [get]
func (h *UserHandler) GetMyTopicSummary(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	topicID := c.Params("topicId")
	if topicID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Topic ID is required")
	}

	resp, err := h.analyticsService.GetTopicSummary(c.Context(), userID, topicID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
