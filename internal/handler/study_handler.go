package handler

import (
	"studytrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StudyHandler struct {
	studyService service.StudyService
}

func NewStudyHandler(studyService service.StudyService) *StudyHandler {
	return &StudyHandler{studyService: studyService}
}

// GetSubjects lists the catalog subjects.
// @Summary List subjects
// @Description Returns every subject in the curriculum catalog.
// @Tags study
// @Produce json
// @Success 200 {object} dto.SubjectsResponse
// @Router /subjects [get]
func (h *StudyHandler) GetSubjects(c *fiber.Ctx) error {
	resp, err := h.studyService.GetAllSubjects(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetTopics lists the topics of a subject.
// @Summary List topics
// @Description Returns the topics of a subject, looked up by subject name.
// @Tags study
// @Produce json
// @Param subject path string true "Subject name"
// @Success 200 {object} dto.TopicsResponse
// @Failure 404 {object} middleware.ErrorResponse "Subject not found"
// @Router /subjects/{subject}/topics [get]
func (h *StudyHandler) GetTopics(c *fiber.Ctx) error {
	subject := c.Params("subject")
	if subject == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Subject is required")
	}

	resp, err := h.studyService.GetTopicsBySubject(c.Context(), subject)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetMaterials lists the study material of a topic.
// @Summary List topic material
// @Description Returns the study material attached to a topic.
// @Tags study
// @Produce json
// @Param topicId path string true "Topic ID"
// @Success 200 {object} dto.MaterialsResponse
// @Failure 404 {object} middleware.ErrorResponse "Topic not found"
// @Router /topics/{topicId}/material [get]
func (h *StudyHandler) GetMaterials(c *fiber.Ctx) error {
	topicID := c.Params("topicId")
	if topicID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Topic ID is required")
	}

	resp, err := h.studyService.GetTopicMaterials(c.Context(), topicID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
