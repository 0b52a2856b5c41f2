package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"studytrack/internal/cache"
	"studytrack/internal/domain"
	"studytrack/internal/dto"
	"studytrack/internal/engine"
	"studytrack/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const analyticsServiceName = "analytics"

// introInsight is shown before a learner has any history on a topic.
const introInsight = "No attempts on this topic yet. Start gently with the fundamentals and build from there."

// AnalyticsService reads attempt history and derives per-topic readiness
// summaries. It recomputes aggregates from stored attempts on every miss;
// stored attempt metrics are never mutated.
type AnalyticsService interface {
	// GetTopicSummary returns the per-topic readiness summary for a user.
	GetTopicSummary(ctx context.Context, userID, topicID string) (*dto.TopicSummaryResponse, error)

	// GetUserAttempts returns a filtered, paginated attempt history listing.
	GetUserAttempts(ctx context.Context, userID string, filters dto.AttemptFilters, pagination dto.Pagination) (*dto.AttemptsResponse, error)

	// InvalidateTopicSummary drops the cached summary after a new attempt.
	InvalidateTopicSummary(ctx context.Context, userID, topicID string) error
}

type analyticsServiceImpl struct {
	attemptRepo domain.AttemptRepository
	catalogRepo domain.CatalogRepository
	cache       domain.Cache
	cacheTTL    time.Duration
	group       singleflight.Group
}

// NewAnalyticsService creates a new instance of AnalyticsService. cache may be
// nil, in which case every call recomputes from the repository.
func NewAnalyticsService(attemptRepo domain.AttemptRepository, catalogRepo domain.CatalogRepository, summaryCache domain.Cache, cacheTTL time.Duration) AnalyticsService {
	return &analyticsServiceImpl{
		attemptRepo: attemptRepo,
		catalogRepo: catalogRepo,
		cache:       summaryCache,
		cacheTTL:    cacheTTL,
	}
}

func summaryCacheKey(userID, topicID string) string {
	return cache.GenerateCacheKey(analyticsServiceName, "topic_summary", topicID, userID)
}

// introDecision is the fixed recommendation for a topic with zero attempts.
// The decision table itself has no such row; this short-circuit lives here in
// the caller.
func introDecision() domain.Decision {
	return domain.Decision{
		Action:   domain.ActionNextTopic,
		Strategy: domain.StrategyConceptualBridge,
		Pacing:   domain.PacingExtraSlow,
		Tone:     domain.ToneEncouraging,
		Goal:     domain.GoalIntroduceConcept,
		Insight:  introInsight,
	}
}

// GetTopicSummary serves the summary from cache when possible. Concurrent
// misses for the same user+topic are collapsed into one recomputation.
func (s *analyticsServiceImpl) GetTopicSummary(ctx context.Context, userID, topicID string) (*dto.TopicSummaryResponse, error) {
	appLogger := logger.Get()
	key := summaryCacheKey(userID, topicID)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err == nil {
			var summary dto.TopicSummaryResponse
			if err := json.Unmarshal([]byte(cached), &summary); err == nil {
				return &summary, nil
			}
			appLogger.Warn("Corrupt cached topic summary, recomputing", zap.String("key", key))
		} else if !errors.Is(err, domain.ErrCacheMiss) {
			appLogger.Warn("Topic summary cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		summary, err := s.computeTopicSummary(ctx, userID, topicID)
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			if payload, err := json.Marshal(summary); err == nil {
				if err := s.cache.Set(ctx, key, string(payload), s.cacheTTL); err != nil {
					appLogger.Warn("Topic summary cache write failed", zap.String("key", key), zap.Error(err))
				}
			}
		}
		return summary, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*dto.TopicSummaryResponse), nil
}

func (s *analyticsServiceImpl) computeTopicSummary(ctx context.Context, userID, topicID string) (*dto.TopicSummaryResponse, error) {
	topic, err := s.catalogRepo.GetTopicByID(ctx, topicID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up topic", err)
	}
	if topic == nil {
		return nil, domain.NewTopicNotFoundError(topicID)
	}

	attempts, err := s.attemptRepo.GetAttemptsByTopic(ctx, userID, topicID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load topic history", err)
	}

	if len(attempts) == 0 {
		return &dto.TopicSummaryResponse{
			TopicID:          topicID,
			AttemptCount:     0,
			OverallAccuracy:  0.0,
			Recommendation:   toDecisionDTO(introDecision()),
			FirstEverAttempt: true,
		}, nil
	}

	current, best := engine.Streaks(attempts)
	latest := attempts[len(attempts)-1]
	latestScores := toScoreBundleDTO(latest.Metrics)
	lastAttemptedAt := latest.AttemptedAt

	// The recommendation re-derives the decision from the latest frozen
	// scores; the scores themselves are never recomputed.
	recommendation := engine.Decide(latest.Metrics)

	return &dto.TopicSummaryResponse{
		TopicID:         topicID,
		AttemptCount:    len(attempts),
		OverallAccuracy: engine.OverallWeightedAccuracy(attempts),
		AccuracyTrend:   engine.AccuracyTrendFromHistory(attempts),
		CurrentStreak:   current,
		BestStreak:      best,
		LatestScores:    &latestScores,
		Recommendation:  toDecisionDTO(recommendation),
		LastAttemptedAt: &lastAttemptedAt,
	}, nil
}

// GetUserAttempts returns a page of the user's attempt history.
func (s *analyticsServiceImpl) GetUserAttempts(ctx context.Context, userID string, filters dto.AttemptFilters, pagination dto.Pagination) (*dto.AttemptsResponse, error) {
	attempts, total, err := s.attemptRepo.GetAttemptsByUser(ctx, userID, filters, pagination)
	if err != nil {
		return nil, domain.NewInternalError("failed to load attempts", err)
	}

	items := make([]dto.AttemptItem, len(attempts))
	for i, a := range attempts {
		items[i] = dto.AttemptItem{
			AttemptID:    a.ID,
			SubjectID:    a.SubjectID,
			TopicID:      a.TopicID,
			MarksPercent: a.MarksPercent,
			CorrectCount: a.CorrectCount,
			Total:        a.Total,
			Decision:     string(a.Decision),
			Strategy:     string(a.Strategy),
			Scores:       toScoreBundleDTO(a.Metrics),
			AttemptedAt:  a.AttemptedAt,
		}
	}

	limit := pagination.Limit
	if limit <= 0 {
		limit = 10
	}
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	return &dto.AttemptsResponse{
		Attempts: items,
		PaginationInfo: dto.PaginationInfo{
			TotalItems:  total,
			Limit:       limit,
			Offset:      pagination.Offset,
			CurrentPage: pagination.Page,
			TotalPages:  totalPages,
		},
	}, nil
}

// InvalidateTopicSummary drops the cached summary for a user+topic pair.
func (s *analyticsServiceImpl) InvalidateTopicSummary(ctx context.Context, userID, topicID string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, summaryCacheKey(userID, topicID))
}
