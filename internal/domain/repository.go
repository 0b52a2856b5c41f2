package domain

import (
	"context"

	"studytrack/internal/dto"
)

// AttemptRepository is the port for the append-only quiz attempt log.
// Attempts are never edited or deleted through this interface; history is
// read-only once written.
type AttemptRepository interface {
	// CreateAttempt appends a new attempt to the log.
	CreateAttempt(ctx context.Context, attempt *QuizAttempt) error

	// GetAttemptsByUser returns a page of a user's attempts plus the total
	// count matching the filters.
	GetAttemptsByUser(ctx context.Context, userID string, filters dto.AttemptFilters, pagination dto.Pagination) ([]QuizAttempt, int, error)

	// GetAttemptsByTopic returns all of a user's attempts for one topic,
	// ordered by attempted_at ascending.
	GetAttemptsByTopic(ctx context.Context, userID, topicID string) ([]QuizAttempt, error)

	// GetAllAttemptsByUser returns the user's full attempt history across all
	// topics, unpaginated. Feeds overall-accuracy aggregation.
	GetAllAttemptsByUser(ctx context.Context, userID string) ([]QuizAttempt, error)

	// GetLatestByTopic returns the user's most recent attempt on the topic,
	// or (nil, nil) when there is none.
	GetLatestByTopic(ctx context.Context, userID, topicID string) (*QuizAttempt, error)

	// CountByTopic returns how many attempts the user has made on the topic.
	CountByTopic(ctx context.Context, userID, topicID string) (int, error)
}

// UserRepository is the port for the mock credential store.
// Not-found is reported as (nil, nil).
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
	UpdateUser(ctx context.Context, user *User) error
}

// CatalogRepository is the port for the subjects/topics curriculum catalog
// and its attached study material and questions.
type CatalogRepository interface {
	GetAllSubjects(ctx context.Context) ([]Subject, error)
	GetSubjectByName(ctx context.Context, name string) (*Subject, error)
	GetTopicsBySubject(ctx context.Context, subjectID string) ([]Topic, error)
	GetTopicByID(ctx context.Context, topicID string) (*Topic, error)
	GetMaterialsByTopic(ctx context.Context, topicID string) ([]StudyMaterial, error)
	GetQuestionsByTopic(ctx context.Context, topicID string) ([]Question, error)
}
