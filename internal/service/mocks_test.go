package service

import (
	"context"
	"time"

	"studytrack/internal/domain"
	"studytrack/internal/dto"

	"github.com/stretchr/testify/mock"
)

// MockAttemptRepository is a mock for domain.AttemptRepository.
type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.QuizAttempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockAttemptRepository) GetAttemptsByUser(ctx context.Context, userID string, filters dto.AttemptFilters, pagination dto.Pagination) ([]domain.QuizAttempt, int, error) {
	args := m.Called(ctx, userID, filters, pagination)
	var attempts []domain.QuizAttempt
	if args.Get(0) != nil {
		attempts = args.Get(0).([]domain.QuizAttempt)
	}
	return attempts, args.Int(1), args.Error(2)
}

func (m *MockAttemptRepository) GetAttemptsByTopic(ctx context.Context, userID, topicID string) ([]domain.QuizAttempt, error) {
	args := m.Called(ctx, userID, topicID)
	var attempts []domain.QuizAttempt
	if args.Get(0) != nil {
		attempts = args.Get(0).([]domain.QuizAttempt)
	}
	return attempts, args.Error(1)
}

func (m *MockAttemptRepository) GetAllAttemptsByUser(ctx context.Context, userID string) ([]domain.QuizAttempt, error) {
	args := m.Called(ctx, userID)
	var attempts []domain.QuizAttempt
	if args.Get(0) != nil {
		attempts = args.Get(0).([]domain.QuizAttempt)
	}
	return attempts, args.Error(1)
}

func (m *MockAttemptRepository) GetLatestByTopic(ctx context.Context, userID, topicID string) (*domain.QuizAttempt, error) {
	args := m.Called(ctx, userID, topicID)
	var attempt *domain.QuizAttempt
	if args.Get(0) != nil {
		attempt = args.Get(0).(*domain.QuizAttempt)
	}
	return attempt, args.Error(1)
}

func (m *MockAttemptRepository) CountByTopic(ctx context.Context, userID, topicID string) (int, error) {
	args := m.Called(ctx, userID, topicID)
	return args.Int(0), args.Error(1)
}

// MockCatalogRepository is a mock for domain.CatalogRepository.
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) GetAllSubjects(ctx context.Context) ([]domain.Subject, error) {
	args := m.Called(ctx)
	var subjects []domain.Subject
	if args.Get(0) != nil {
		subjects = args.Get(0).([]domain.Subject)
	}
	return subjects, args.Error(1)
}

func (m *MockCatalogRepository) GetSubjectByName(ctx context.Context, name string) (*domain.Subject, error) {
	args := m.Called(ctx, name)
	var subject *domain.Subject
	if args.Get(0) != nil {
		subject = args.Get(0).(*domain.Subject)
	}
	return subject, args.Error(1)
}

func (m *MockCatalogRepository) GetTopicsBySubject(ctx context.Context, subjectID string) ([]domain.Topic, error) {
	args := m.Called(ctx, subjectID)
	var topics []domain.Topic
	if args.Get(0) != nil {
		topics = args.Get(0).([]domain.Topic)
	}
	return topics, args.Error(1)
}

func (m *MockCatalogRepository) GetTopicByID(ctx context.Context, topicID string) (*domain.Topic, error) {
	args := m.Called(ctx, topicID)
	var topic *domain.Topic
	if args.Get(0) != nil {
		topic = args.Get(0).(*domain.Topic)
	}
	return topic, args.Error(1)
}

func (m *MockCatalogRepository) GetMaterialsByTopic(ctx context.Context, topicID string) ([]domain.StudyMaterial, error) {
	args := m.Called(ctx, topicID)
	var materials []domain.StudyMaterial
	if args.Get(0) != nil {
		materials = args.Get(0).([]domain.StudyMaterial)
	}
	return materials, args.Error(1)
}

func (m *MockCatalogRepository) GetQuestionsByTopic(ctx context.Context, topicID string) ([]domain.Question, error) {
	args := m.Called(ctx, topicID)
	var questions []domain.Question
	if args.Get(0) != nil {
		questions = args.Get(0).([]domain.Question)
	}
	return questions, args.Error(1)
}

// MockUserRepository is a mock for domain.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockCache is a mock for domain.Cache.
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
