package service

import (
	"context"
	"fmt"

	"studytrack/internal/config"
	"studytrack/internal/domain"
	"studytrack/internal/dto"
	"studytrack/internal/engine"
	"studytrack/internal/logger"
	"studytrack/internal/util"
	"studytrack/internal/validation"

	"go.uber.org/zap"
)

// SummaryInvalidator drops cached per-topic summaries when new history
// arrives. Implemented by the analytics service.
type SummaryInvalidator interface {
	InvalidateTopicSummary(ctx context.Context, userID, topicID string) error
}

// QuizService scores submitted quiz sessions and serves topic questions.
type QuizService interface {
	// SubmitAttempt validates, scores and persists a completed quiz session,
	// returning the frozen scores and decision.
	SubmitAttempt(ctx context.Context, userID string, req *dto.SubmitAttemptRequest) (*dto.SubmitAttemptResponse, error)

	// GetTopicQuestions returns the quiz questions for a topic.
	GetTopicQuestions(ctx context.Context, topicID string) (*dto.QuestionsResponse, error)
}

type quizServiceImpl struct {
	attemptRepo domain.AttemptRepository
	catalogRepo domain.CatalogRepository
	invalidator SummaryInvalidator
	engineCfg   config.EngineConfig
}

// NewQuizService creates a new instance of QuizService. invalidator may be nil
// when no summary cache is wired (e.g. in tests).
func NewQuizService(attemptRepo domain.AttemptRepository, catalogRepo domain.CatalogRepository, invalidator SummaryInvalidator, engineCfg config.EngineConfig) QuizService {
	return &quizServiceImpl{
		attemptRepo: attemptRepo,
		catalogRepo: catalogRepo,
		invalidator: invalidator,
		engineCfg:   engineCfg,
	}
}

// signals assembles the engine telemetry inputs: the trend comes from real
// per-topic history, the rest from configured defaults until a telemetry
// pipeline exists.
func (s *quizServiceImpl) signals(topicHistory []domain.QuizAttempt) engine.Signals {
	return engine.Signals{
		AccuracyTrend:     engine.AccuracyTrendFromHistory(topicHistory),
		LearningVelocity:  s.engineCfg.LearningVelocity,
		ReviewRecallRate:  s.engineCfg.ReviewRecallRate,
		EngagementLevel:   s.engineCfg.EngagementLevel,
		SessionRegularity: s.engineCfg.SessionRegularity,
	}
}

// SubmitAttempt runs the full submission pipeline: boundary validation, topic
// existence, history-derived engine inputs, scoring, decision mapping, and an
// append-only persist of the frozen result.
func (s *quizServiceImpl) SubmitAttempt(ctx context.Context, userID string, req *dto.SubmitAttemptRequest) (*dto.SubmitAttemptResponse, error) {
	appLogger := logger.Get()

	if err := validation.ValidateSubmitAttempt(req); err != nil {
		return nil, err
	}

	topic, err := s.catalogRepo.GetTopicByID(ctx, req.TopicID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up topic", err)
	}
	if topic == nil {
		return nil, domain.NewTopicNotFoundError(req.TopicID)
	}
	if topic.SubjectID != req.SubjectID {
		return nil, domain.NewInvalidInputError(
			fmt.Sprintf("topic %s does not belong to subject %s", req.TopicID, req.SubjectID))
	}

	topicHistory, err := s.attemptRepo.GetAttemptsByTopic(ctx, userID, req.TopicID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load topic history", err)
	}
	allAttempts, err := s.attemptRepo.GetAllAttemptsByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load attempt history", err)
	}

	responses := make([]domain.QuizResponse, len(req.Responses))
	for i, r := range req.Responses {
		responses[i] = domain.QuizResponse{
			Question:  r.Question,
			Subject:   r.Subject,
			Topic:     r.Topic,
			Correct:   r.Correct,
			TimeTaken: r.TimeTaken,
		}
	}

	input := engine.Input{
		PriorAttemptCount: len(topicHistory),
		GlobalAvgAccuracy: engine.OverallWeightedAccuracy(allAttempts),
		Signals:           s.signals(topicHistory),
	}

	scores := engine.ComputeScores(responses, input)
	decision := engine.Decide(scores)

	attempt := domain.NewQuizAttempt(userID, req.SubjectID, req.TopicID, responses, scores, decision)
	attempt.ID = util.NewULID()

	if err := s.attemptRepo.CreateAttempt(ctx, attempt); err != nil {
		return nil, domain.NewInternalError("failed to persist attempt", err)
	}

	if s.invalidator != nil {
		if err := s.invalidator.InvalidateTopicSummary(ctx, userID, req.TopicID); err != nil {
			// Stale summaries expire on their own TTL; log and move on.
			appLogger.Warn("Failed to invalidate topic summary cache",
				zap.String("userID", userID), zap.String("topicID", req.TopicID), zap.Error(err))
		}
	}

	appLogger.Info("Quiz attempt recorded",
		zap.String("attemptID", attempt.ID),
		zap.String("userID", userID),
		zap.String("topicID", req.TopicID),
		zap.Float64("marksPercent", attempt.MarksPercent),
		zap.String("decision", string(decision.Action)))

	return &dto.SubmitAttemptResponse{
		AttemptID:    attempt.ID,
		MarksPercent: attempt.MarksPercent,
		CorrectCount: attempt.CorrectCount,
		Total:        attempt.Total,
		Scores:       toScoreBundleDTO(scores),
		Decision:     toDecisionDTO(decision),
		AttemptedAt:  attempt.AttemptedAt,
	}, nil
}

// GetTopicQuestions returns the questions attached to a topic.
func (s *quizServiceImpl) GetTopicQuestions(ctx context.Context, topicID string) (*dto.QuestionsResponse, error) {
	topic, err := s.catalogRepo.GetTopicByID(ctx, topicID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up topic", err)
	}
	if topic == nil {
		return nil, domain.NewTopicNotFoundError(topicID)
	}

	questions, err := s.catalogRepo.GetQuestionsByTopic(ctx, topicID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load questions", err)
	}

	items := make([]dto.QuestionItem, len(questions))
	for i, q := range questions {
		items[i] = dto.QuestionItem{
			ID:            q.ID,
			Text:          q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			ExpectedTime:  q.ExpectedTime,
		}
	}

	return &dto.QuestionsResponse{
		TopicID:   topicID,
		Questions: items,
	}, nil
}

func toScoreBundleDTO(b domain.ScoreBundle) dto.ScoreBundleDTO {
	return dto.ScoreBundleDTO{
		TopicMastery:       b.TopicMastery,
		CognitiveReadiness: b.CognitiveReadiness,
		Stability:          b.Stability,
		Confidence:         b.Confidence,
		AccuracyTrend:      b.AccuracyTrend,
		ResponseTimeNorm:   b.ResponseTimeNorm,
		Pacing:             string(b.Pacing),
		Tone:               string(b.Tone),
	}
}

func toDecisionDTO(d domain.Decision) dto.DecisionDTO {
	return dto.DecisionDTO{
		Action:   string(d.Action),
		Strategy: string(d.Strategy),
		Pacing:   string(d.Pacing),
		Tone:     string(d.Tone),
		Goal:     string(d.Goal),
		Insight:  d.Insight,
	}
}
