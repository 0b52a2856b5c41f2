package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"studytrack/internal/cache"
	"studytrack/internal/domain"
	"studytrack/internal/dto"
	"studytrack/internal/logger"

	"go.uber.org/zap"
)

const studyServiceName = "study"

// StudyService serves the subjects/topics curriculum catalog and the study
// material attached to topics. The catalog changes only when re-seeded, so
// listings are cached aggressively.
type StudyService interface {
	GetAllSubjects(ctx context.Context) (*dto.SubjectsResponse, error)
	GetTopicsBySubject(ctx context.Context, subjectName string) (*dto.TopicsResponse, error)
	GetTopicMaterials(ctx context.Context, topicID string) (*dto.MaterialsResponse, error)
}

type studyServiceImpl struct {
	catalogRepo domain.CatalogRepository
	cache       domain.Cache
	cacheTTL    time.Duration
}

// NewStudyService creates a new instance of StudyService. cache may be nil.
func NewStudyService(catalogRepo domain.CatalogRepository, catalogCache domain.Cache, cacheTTL time.Duration) StudyService {
	return &studyServiceImpl{
		catalogRepo: catalogRepo,
		cache:       catalogCache,
		cacheTTL:    cacheTTL,
	}
}

// getCached fetches a cached JSON payload into out; returns false on any miss
// or failure so callers fall through to the repository.
func (s *studyServiceImpl) getCached(ctx context.Context, key string, out interface{}) bool {
	if s.cache == nil {
		return false
	}
	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Catalog cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	return json.Unmarshal([]byte(cached), out) == nil
}

func (s *studyServiceImpl) setCached(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(payload), s.cacheTTL); err != nil {
		logger.Get().Warn("Catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// GetAllSubjects lists every subject in the catalog.
func (s *studyServiceImpl) GetAllSubjects(ctx context.Context) (*dto.SubjectsResponse, error) {
	key := cache.GenerateCacheKey(studyServiceName, "subjects", "all")

	var cached dto.SubjectsResponse
	if s.getCached(ctx, key, &cached) {
		return &cached, nil
	}

	subjects, err := s.catalogRepo.GetAllSubjects(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to load subjects", err)
	}

	items := make([]dto.SubjectItem, len(subjects))
	for i, subject := range subjects {
		items[i] = dto.SubjectItem{
			ID:          subject.ID,
			Name:        subject.Name,
			Description: subject.Description,
		}
	}

	response := &dto.SubjectsResponse{Subjects: items}
	s.setCached(ctx, key, response)
	return response, nil
}

// GetTopicsBySubject lists the topics of a subject, looked up by name.
func (s *studyServiceImpl) GetTopicsBySubject(ctx context.Context, subjectName string) (*dto.TopicsResponse, error) {
	key := cache.GenerateCacheKey(studyServiceName, "topics", subjectName)

	var cached dto.TopicsResponse
	if s.getCached(ctx, key, &cached) {
		return &cached, nil
	}

	subject, err := s.catalogRepo.GetSubjectByName(ctx, subjectName)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up subject", err)
	}
	if subject == nil {
		return nil, domain.NewSubjectNotFoundError(subjectName)
	}

	topics, err := s.catalogRepo.GetTopicsBySubject(ctx, subject.ID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load topics", err)
	}

	items := make([]dto.TopicItem, len(topics))
	for i, topic := range topics {
		items[i] = dto.TopicItem{
			ID:             topic.ID,
			Title:          topic.Title,
			Description:    topic.Description,
			DifficultyTier: topic.DifficultyTier,
			EstimatedHours: topic.EstimatedHours,
			Prerequisites:  topic.Prerequisites,
		}
	}

	response := &dto.TopicsResponse{Subject: subject.Name, Topics: items}
	s.setCached(ctx, key, response)
	return response, nil
}

// GetTopicMaterials lists the study material attached to a topic.
func (s *studyServiceImpl) GetTopicMaterials(ctx context.Context, topicID string) (*dto.MaterialsResponse, error) {
	key := cache.GenerateCacheKey(studyServiceName, "materials", topicID)

	var cached dto.MaterialsResponse
	if s.getCached(ctx, key, &cached) {
		return &cached, nil
	}

	topic, err := s.catalogRepo.GetTopicByID(ctx, topicID)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up topic", err)
	}
	if topic == nil {
		return nil, domain.NewTopicNotFoundError(topicID)
	}

	materials, err := s.catalogRepo.GetMaterialsByTopic(ctx, topicID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load materials", err)
	}

	items := make([]dto.MaterialItem, len(materials))
	for i, m := range materials {
		items[i] = dto.MaterialItem{
			ID:          m.ID,
			ContentType: m.ContentType,
			Body:        m.Body,
		}
	}

	response := &dto.MaterialsResponse{TopicID: topicID, Materials: items}
	s.setCached(ctx, key, response)
	return response, nil
}
