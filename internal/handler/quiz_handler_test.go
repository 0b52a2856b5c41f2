package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"studytrack/internal/domain"
	"studytrack/internal/dto"
	"studytrack/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockQuizService struct {
	mock.Mock
}

func (m *mockQuizService) SubmitAttempt(ctx context.Context, userID string, req *dto.SubmitAttemptRequest) (*dto.SubmitAttemptResponse, error) {
	args := m.Called(ctx, userID, req)
	var resp *dto.SubmitAttemptResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*dto.SubmitAttemptResponse)
	}
	return resp, args.Error(1)
}

func (m *mockQuizService) GetTopicQuestions(ctx context.Context, topicID string) (*dto.QuestionsResponse, error) {
	args := m.Called(ctx, topicID)
	var resp *dto.QuestionsResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*dto.QuestionsResponse)
	}
	return resp, args.Error(1)
}

// newTestApp wires the handler behind the real error middleware with a stub
// auth step that injects the user ID.
func newTestApp(h *QuizHandler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(middleware.UserIDKey, "user1")
		return c.Next()
	})
	app.Post("/api/attempts", h.SubmitAttempt)
	app.Get("/api/topics/:topicId/questions", h.GetTopicQuestions)
	return app
}

func TestSubmitAttemptHandler_Created(t *testing.T) {
	svc := new(mockQuizService)
	app := newTestApp(NewQuizHandler(svc))

	expected := &dto.SubmitAttemptResponse{
		AttemptID:    "attempt1",
		MarksPercent: 90,
		CorrectCount: 9,
		Total:        10,
		AttemptedAt:  time.Now(),
	}
	svc.On("SubmitAttempt", mock.Anything, "user1", mock.AnythingOfType("*dto.SubmitAttemptRequest")).
		Return(expected, nil)

	body, _ := json.Marshal(dto.SubmitAttemptRequest{
		SubjectID: "subj1",
		TopicID:   "topic1",
		Responses: []dto.SubmittedResponse{{Question: "q", Correct: true, TimeTaken: 5}},
	})
	req := httptest.NewRequest("POST", "/api/attempts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var got dto.SubmitAttemptResponse
	payload, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(payload, &got))
	assert.Equal(t, "attempt1", got.AttemptID)
	assert.Equal(t, 90.0, got.MarksPercent)
}

func TestSubmitAttemptHandler_ValidationErrorsMapTo400(t *testing.T) {
	svc := new(mockQuizService)
	app := newTestApp(NewQuizHandler(svc))

	svc.On("SubmitAttempt", mock.Anything, "user1", mock.Anything).
		Return(nil, domain.ValidationErrors{domain.NewMissingFieldError("responses")})

	body, _ := json.Marshal(dto.SubmitAttemptRequest{SubjectID: "subj1", TopicID: "topic1"})
	req := httptest.NewRequest("POST", "/api/attempts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errResp middleware.ValidationErrorResponse
	payload, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(payload, &errResp))
	assert.Equal(t, string(domain.CodeValidation), errResp.Code)
	require.Len(t, errResp.Errors, 1)
	assert.Equal(t, "responses", errResp.Errors[0].Field)
}

func TestSubmitAttemptHandler_TopicNotFoundMapsTo404(t *testing.T) {
	svc := new(mockQuizService)
	app := newTestApp(NewQuizHandler(svc))

	svc.On("SubmitAttempt", mock.Anything, "user1", mock.Anything).
		Return(nil, domain.NewTopicNotFoundError("missing"))

	body, _ := json.Marshal(dto.SubmitAttemptRequest{
		SubjectID: "subj1",
		TopicID:   "missing",
		Responses: []dto.SubmittedResponse{{Question: "q", Correct: true, TimeTaken: 5}},
	})
	req := httptest.NewRequest("POST", "/api/attempts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetTopicQuestionsHandler(t *testing.T) {
	svc := new(mockQuizService)
	app := newTestApp(NewQuizHandler(svc))

	svc.On("GetTopicQuestions", mock.Anything, "topic1").Return(&dto.QuestionsResponse{
		TopicID:   "topic1",
		Questions: []dto.QuestionItem{{ID: "q1", Text: "What is velocity?"}},
	}, nil)

	req := httptest.NewRequest("GET", "/api/topics/topic1/questions", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got dto.QuestionsResponse
	payload, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(payload, &got))
	require.Len(t, got.Questions, 1)
	assert.Equal(t, "q1", got.Questions[0].ID)
}
