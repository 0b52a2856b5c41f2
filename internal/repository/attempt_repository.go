package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"studytrack/internal/domain"
	"studytrack/internal/dto"
	"studytrack/internal/repository/models"
	"studytrack/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxAttemptRepository implements domain.AttemptRepository using sqlx.
type sqlxAttemptRepository struct {
	db *sqlx.DB
}

// NewSQLXAttemptRepository creates a new instance of sqlxAttemptRepository.
func NewSQLXAttemptRepository(db *sqlx.DB) domain.AttemptRepository {
	return &sqlxAttemptRepository{db: db}
}

func toDomainAttempt(m *models.QuizAttempt) *domain.QuizAttempt {
	if m == nil {
		return nil
	}

	responses := make([]domain.QuizResponse, len(m.Responses))
	for i, r := range m.Responses {
		responses[i] = domain.QuizResponse{
			Question:  r.Question,
			Subject:   r.Subject,
			Topic:     r.Topic,
			Correct:   r.Correct,
			TimeTaken: r.TimeTaken,
		}
	}

	return &domain.QuizAttempt{
		ID:           m.ID,
		UserID:       m.UserID,
		SubjectID:    m.SubjectID,
		TopicID:      m.TopicID,
		MarksPercent: m.MarksPercent,
		CorrectCount: m.CorrectCount,
		Total:        m.Total,
		Decision:     domain.Action(m.Decision),
		Strategy:     domain.Strategy(m.Strategy),
		Metrics: domain.ScoreBundle{
			TopicMastery:       m.Metrics.TopicMastery,
			CognitiveReadiness: m.Metrics.CognitiveReadiness,
			Stability:          m.Metrics.Stability,
			Confidence:         m.Metrics.Confidence,
			AccuracyTrend:      m.Metrics.AccuracyTrend,
			ResponseTimeNorm:   m.Metrics.ResponseTimeNorm,
			Pacing:             domain.Pacing(m.Metrics.Pacing),
			Tone:               domain.Tone(m.Metrics.Tone),
		},
		Responses:   responses,
		AttemptedAt: m.AttemptedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   util.NullTimeToPtr(m.DeletedAt),
	}
}

func fromDomainAttempt(a *domain.QuizAttempt) *models.QuizAttempt {
	if a == nil {
		return nil
	}

	responses := make(models.ResponseSlice, len(a.Responses))
	for i, r := range a.Responses {
		responses[i] = models.ResponseRecord{
			Question:  r.Question,
			Subject:   r.Subject,
			Topic:     r.Topic,
			Correct:   r.Correct,
			TimeTaken: r.TimeTaken,
		}
	}

	m := &models.QuizAttempt{
		ID:           a.ID,
		UserID:       a.UserID,
		SubjectID:    a.SubjectID,
		TopicID:      a.TopicID,
		MarksPercent: a.MarksPercent,
		CorrectCount: a.CorrectCount,
		Total:        a.Total,
		Decision:     string(a.Decision),
		Strategy:     string(a.Strategy),
		Metrics: models.ScoreBundleJSON{
			TopicMastery:       a.Metrics.TopicMastery,
			CognitiveReadiness: a.Metrics.CognitiveReadiness,
			Stability:          a.Metrics.Stability,
			Confidence:         a.Metrics.Confidence,
			AccuracyTrend:      a.Metrics.AccuracyTrend,
			ResponseTimeNorm:   a.Metrics.ResponseTimeNorm,
			Pacing:             string(a.Metrics.Pacing),
			Tone:               string(a.Metrics.Tone),
		},
		Responses:   responses,
		AttemptedAt: a.AttemptedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.DeletedAt != nil {
		m.DeletedAt = util.TimeToNullTime(*a.DeletedAt)
	}
	return m
}

// CreateAttempt appends a new attempt row. Attempts are append-only history;
// there is no update path.
func (r *sqlxAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	m := fromDomainAttempt(attempt)

	if m.AttemptedAt.IsZero() {
		m.AttemptedAt = time.Now()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	m.UpdatedAt = time.Now()

	query := `INSERT INTO quiz_attempts (id, user_id, subject_id, topic_id, marks_percent, correct_count, total, decision, strategy, metrics, responses, attempted_at, created_at, updated_at, deleted_at)
	          VALUES (:id, :user_id, :subject_id, :topic_id, :marks_percent, :correct_count, :total, :decision, :strategy, :metrics, :responses, :attempted_at, :created_at, :updated_at, :deleted_at)`

	_, err := r.db.NamedExecContext(ctx, query, m)
	if err != nil {
		return fmt.Errorf("failed to create quiz attempt: %w", err)
	}
	return nil
}

// buildAttemptsQuery constructs the results and count queries for a filtered,
// paginated attempt listing.
func buildAttemptsQuery(userID string, filters dto.AttemptFilters, pagination dto.Pagination) (string, string, []interface{}) {
	var args []interface{}
	whereClauses := []string{"user_id = ?", "deleted_at IS NULL"}
	args = append(args, userID)

	if filters.SubjectID != "" {
		whereClauses = append(whereClauses, "subject_id = ?")
		args = append(args, filters.SubjectID)
	}
	if filters.TopicID != "" {
		whereClauses = append(whereClauses, "topic_id = ?")
		args = append(args, filters.TopicID)
	}
	if filters.StartDate != "" {
		whereClauses = append(whereClauses, "attempted_at >= ?")
		args = append(args, filters.StartDate)
	}
	if filters.EndDate != "" {
		whereClauses = append(whereClauses, "attempted_at <= ?")
		if parsedEndDate, err := time.Parse("2006-01-02", filters.EndDate); err == nil {
			args = append(args, parsedEndDate.Add(24*time.Hour-time.Nanosecond))
		} else {
			args = append(args, filters.EndDate)
		}
	}

	queryWhere := "WHERE " + strings.Join(whereClauses, " AND ")

	orderBy := "attempted_at DESC"
	if filters.SortBy != "" {
		allowedSortFields := map[string]string{"attempted_at": "attempted_at", "marks": "marks_percent"}
		if dbSortField, ok := allowedSortFields[filters.SortBy]; ok {
			orderBy = dbSortField
			if order := strings.ToUpper(filters.SortOrder); order == "ASC" || order == "DESC" {
				orderBy += " " + order
			} else {
				orderBy += " DESC"
			}
		}
	}

	limit := pagination.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := pagination.Offset
	if offset < 0 {
		offset = 0
	}

	resultsQuery := fmt.Sprintf(
		"SELECT * FROM quiz_attempts %s ORDER BY %s LIMIT %d OFFSET %d",
		queryWhere, orderBy, limit, offset,
	)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM quiz_attempts %s", queryWhere)

	return resultsQuery, countQuery, args
}

// GetAttemptsByUser retrieves a paginated list of quiz attempts for a user,
// with filters, plus the total count matching those filters.
func (r *sqlxAttemptRepository) GetAttemptsByUser(ctx context.Context, userID string, filters dto.AttemptFilters, pagination dto.Pagination) ([]domain.QuizAttempt, int, error) {
	resultsQuery, countQuery, args := buildAttemptsQuery(userID, filters, pagination)

	var modelAttempts []models.QuizAttempt
	if err := r.db.SelectContext(ctx, &modelAttempts, resultsQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to query attempts for user %s: %w", userID, err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count attempts for user %s: %w", userID, err)
	}

	domainAttempts := make([]domain.QuizAttempt, len(modelAttempts))
	for i := range modelAttempts {
		domainAttempts[i] = *toDomainAttempt(&modelAttempts[i])
	}
	return domainAttempts, total, nil
}

// GetAttemptsByTopic returns all of a user's attempts for one topic, oldest
// first. Trend and streak aggregation depend on this ordering.
func (r *sqlxAttemptRepository) GetAttemptsByTopic(ctx context.Context, userID, topicID string) ([]domain.QuizAttempt, error) {
	query := `SELECT * FROM quiz_attempts
	          WHERE user_id = ? AND topic_id = ? AND deleted_at IS NULL
	          ORDER BY attempted_at ASC`

	var modelAttempts []models.QuizAttempt
	if err := r.db.SelectContext(ctx, &modelAttempts, query, userID, topicID); err != nil {
		return nil, fmt.Errorf("failed to query attempts for topic %s: %w", topicID, err)
	}

	domainAttempts := make([]domain.QuizAttempt, len(modelAttempts))
	for i := range modelAttempts {
		domainAttempts[i] = *toDomainAttempt(&modelAttempts[i])
	}
	return domainAttempts, nil
}

// GetAllAttemptsByUser returns the user's entire attempt history. Overall
// accuracy is order-independent so no ORDER BY is needed here.
func (r *sqlxAttemptRepository) GetAllAttemptsByUser(ctx context.Context, userID string) ([]domain.QuizAttempt, error) {
	query := `SELECT * FROM quiz_attempts WHERE user_id = ? AND deleted_at IS NULL`

	var modelAttempts []models.QuizAttempt
	if err := r.db.SelectContext(ctx, &modelAttempts, query, userID); err != nil {
		return nil, fmt.Errorf("failed to query all attempts for user %s: %w", userID, err)
	}

	domainAttempts := make([]domain.QuizAttempt, len(modelAttempts))
	for i := range modelAttempts {
		domainAttempts[i] = *toDomainAttempt(&modelAttempts[i])
	}
	return domainAttempts, nil
}

// GetLatestByTopic returns the user's most recent attempt on the topic, or
// (nil, nil) when the user has no history there.
func (r *sqlxAttemptRepository) GetLatestByTopic(ctx context.Context, userID, topicID string) (*domain.QuizAttempt, error) {
	query := `SELECT * FROM quiz_attempts
	          WHERE user_id = ? AND topic_id = ? AND deleted_at IS NULL
	          ORDER BY attempted_at DESC LIMIT 1`

	var m models.QuizAttempt
	if err := r.db.GetContext(ctx, &m, query, userID, topicID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query latest attempt for topic %s: %w", topicID, err)
	}
	return toDomainAttempt(&m), nil
}

// CountByTopic returns how many attempts the user has recorded for the topic.
func (r *sqlxAttemptRepository) CountByTopic(ctx context.Context, userID, topicID string) (int, error) {
	query := `SELECT COUNT(*) FROM quiz_attempts
	          WHERE user_id = ? AND topic_id = ? AND deleted_at IS NULL`

	var count int
	if err := r.db.GetContext(ctx, &count, query, userID, topicID); err != nil {
		return 0, fmt.Errorf("failed to count attempts for topic %s: %w", topicID, err)
	}
	return count, nil
}
