package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"studytrack/internal/domain"
	"studytrack/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// sqlxCatalogRepository implements domain.CatalogRepository using sqlx. The
// catalog is read-mostly; rows are written by the seeder.
type sqlxCatalogRepository struct {
	db *sqlx.DB
}

// NewSQLXCatalogRepository creates a new instance of sqlxCatalogRepository.
func NewSQLXCatalogRepository(db *sqlx.DB) domain.CatalogRepository {
	return &sqlxCatalogRepository{db: db}
}

func toDomainSubject(m *models.Subject) *domain.Subject {
	if m == nil {
		return nil
	}
	return &domain.Subject{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description.String,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toDomainTopic(m *models.Topic) *domain.Topic {
	if m == nil {
		return nil
	}
	prerequisites := []string(m.Prerequisites)
	if prerequisites == nil {
		prerequisites = []string{}
	}
	return &domain.Topic{
		ID:             m.ID,
		SubjectID:      m.SubjectID,
		Title:          m.Title,
		Description:    m.Description.String,
		DifficultyTier: m.DifficultyTier,
		EstimatedHours: m.EstimatedHours,
		Prerequisites:  prerequisites,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toDomainMaterial(m *models.StudyMaterial) *domain.StudyMaterial {
	if m == nil {
		return nil
	}
	return &domain.StudyMaterial{
		ID:          m.ID,
		TopicID:     m.TopicID,
		ContentType: m.ContentType,
		Body:        m.Body,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toDomainQuestion(m *models.Question) *domain.Question {
	if m == nil {
		return nil
	}
	options := []string(m.Options)
	if options == nil {
		options = []string{}
	}
	return &domain.Question{
		ID:            m.ID,
		TopicID:       m.TopicID,
		Text:          m.Text,
		Options:       options,
		CorrectAnswer: m.CorrectAnswer,
		Explanation:   m.Explanation.String,
		ExpectedTime:  m.ExpectedTime,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// GetAllSubjects returns every subject in the catalog, name-ordered.
func (r *sqlxCatalogRepository) GetAllSubjects(ctx context.Context) ([]domain.Subject, error) {
	query := `SELECT * FROM subjects WHERE deleted_at IS NULL ORDER BY name ASC`

	var modelSubjects []models.Subject
	if err := r.db.SelectContext(ctx, &modelSubjects, query); err != nil {
		return nil, fmt.Errorf("failed to query subjects: %w", err)
	}

	subjects := make([]domain.Subject, len(modelSubjects))
	for i := range modelSubjects {
		subjects[i] = *toDomainSubject(&modelSubjects[i])
	}
	return subjects, nil
}

// GetSubjectByName retrieves a subject by its unique name. Not-found is
// (nil, nil).
func (r *sqlxCatalogRepository) GetSubjectByName(ctx context.Context, name string) (*domain.Subject, error) {
	var m models.Subject
	query := `SELECT * FROM subjects WHERE name = ? AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &m, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subject by name: %w", err)
	}
	return toDomainSubject(&m), nil
}

// GetTopicsBySubject returns a subject's topics ordered by difficulty tier
// then title.
func (r *sqlxCatalogRepository) GetTopicsBySubject(ctx context.Context, subjectID string) ([]domain.Topic, error) {
	query := `SELECT * FROM topics WHERE subject_id = ? AND deleted_at IS NULL
	          ORDER BY difficulty_tier ASC, title ASC`

	var modelTopics []models.Topic
	if err := r.db.SelectContext(ctx, &modelTopics, query, subjectID); err != nil {
		return nil, fmt.Errorf("failed to query topics for subject %s: %w", subjectID, err)
	}

	topics := make([]domain.Topic, len(modelTopics))
	for i := range modelTopics {
		topics[i] = *toDomainTopic(&modelTopics[i])
	}
	return topics, nil
}

// GetTopicByID retrieves a topic by its ID. Not-found is (nil, nil).
func (r *sqlxCatalogRepository) GetTopicByID(ctx context.Context, topicID string) (*domain.Topic, error) {
	var m models.Topic
	query := `SELECT * FROM topics WHERE id = ? AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &m, query, topicID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get topic by id: %w", err)
	}
	return toDomainTopic(&m), nil
}

// GetMaterialsByTopic returns the study material attached to a topic.
func (r *sqlxCatalogRepository) GetMaterialsByTopic(ctx context.Context, topicID string) ([]domain.StudyMaterial, error) {
	query := `SELECT * FROM study_materials WHERE topic_id = ? AND deleted_at IS NULL
	          ORDER BY created_at ASC`

	var modelMaterials []models.StudyMaterial
	if err := r.db.SelectContext(ctx, &modelMaterials, query, topicID); err != nil {
		return nil, fmt.Errorf("failed to query materials for topic %s: %w", topicID, err)
	}

	materials := make([]domain.StudyMaterial, len(modelMaterials))
	for i := range modelMaterials {
		materials[i] = *toDomainMaterial(&modelMaterials[i])
	}
	return materials, nil
}

// GetQuestionsByTopic returns the quiz questions for a topic.
func (r *sqlxCatalogRepository) GetQuestionsByTopic(ctx context.Context, topicID string) ([]domain.Question, error) {
	query := `SELECT * FROM questions WHERE topic_id = ? AND deleted_at IS NULL
	          ORDER BY created_at ASC`

	var modelQuestions []models.Question
	if err := r.db.SelectContext(ctx, &modelQuestions, query, topicID); err != nil {
		return nil, fmt.Errorf("failed to query questions for topic %s: %w", topicID, err)
	}

	questions := make([]domain.Question, len(modelQuestions))
	for i := range modelQuestions {
		questions[i] = *toDomainQuestion(&modelQuestions[i])
	}
	return questions, nil
}
