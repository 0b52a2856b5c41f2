package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"studytrack/internal/domain"
	"studytrack/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

// setupUserTestDB creates a new sqlx.DB instance and sqlmock for user repository testing.
func setupUserTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func TestToDomainUser(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	modelUser := &models.User{
		ID:           "user1",
		Email:        "test@example.com",
		Name:         "Test User",
		PasswordHash: "abc123",
		PasswordSalt: "salt",
		CreatedAt:    now,
		UpdatedAt:    now,
		DeletedAt:    sql.NullTime{},
	}

	domainUser := toDomainUser(modelUser)
	assert.NotNil(t, domainUser)
	assert.Equal(t, modelUser.ID, domainUser.ID)
	assert.Equal(t, modelUser.Email, domainUser.Email)
	assert.Equal(t, modelUser.Name, domainUser.Name)
	assert.Equal(t, modelUser.PasswordHash, domainUser.PasswordHash)
	assert.Equal(t, modelUser.PasswordSalt, domainUser.PasswordSalt)
	assert.Nil(t, domainUser.DeletedAt)

	deletedTime := now.Add(-time.Hour)
	modelUser.DeletedAt = sql.NullTime{Time: deletedTime, Valid: true}
	domainUser = toDomainUser(modelUser)
	assert.NotNil(t, domainUser.DeletedAt)
	assert.True(t, deletedTime.Equal(*domainUser.DeletedAt))

	assert.Nil(t, toDomainUser(nil))
}

func TestFromDomainUser(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	domainUser := &domain.User{
		ID:           "user1",
		Email:        "test@example.com",
		Name:         "Test User",
		PasswordHash: "abc123",
		PasswordSalt: "salt",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	modelUser := fromDomainUser(domainUser)
	assert.NotNil(t, modelUser)
	assert.Equal(t, domainUser.ID, modelUser.ID)
	assert.Equal(t, domainUser.Email, modelUser.Email)
	assert.Equal(t, domainUser.PasswordHash, modelUser.PasswordHash)
	assert.False(t, modelUser.DeletedAt.Valid)

	assert.Nil(t, fromDomainUser(nil))
}

func TestCreateUser(t *testing.T) {
	db, mock := setupUserTestDB(t)
	defer db.Close()
	repo := NewSQLXUserRepository(db)

	user := &domain.User{
		ID:           "user1",
		Email:        "test@example.com",
		Name:         "Test User",
		PasswordHash: "abc123",
		PasswordSalt: "salt",
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateUser(context.Background(), user)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail(t *testing.T) {
	db, mock := setupUserTestDB(t)
	defer db.Close()
	repo := NewSQLXUserRepository(db)
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "password_salt", "created_at", "updated_at", "deleted_at"}).
			AddRow("user1", "test@example.com", "Test User", "abc123", "salt", now, now, nil)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM users WHERE email = ?")).
			WithArgs("test@example.com").
			WillReturnRows(rows)

		user, err := repo.GetUserByEmail(context.Background(), "test@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "user1", user.ID)
		assert.Equal(t, "test@example.com", user.Email)
	})

	t.Run("not found returns nil, nil", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM users WHERE email = ?")).
			WithArgs("missing@example.com").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByEmail(context.Background(), "missing@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByID(t *testing.T) {
	db, mock := setupUserTestDB(t)
	defer db.Close()
	repo := NewSQLXUserRepository(db)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "password_salt", "created_at", "updated_at", "deleted_at"}).
		AddRow("user1", "test@example.com", "Test User", "abc123", "salt", now, now, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM users WHERE id = ?")).
		WithArgs("user1").
		WillReturnRows(rows)

	user, err := repo.GetUserByID(context.Background(), "user1")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "Test User", user.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUser(t *testing.T) {
	db, mock := setupUserTestDB(t)
	defer db.Close()
	repo := NewSQLXUserRepository(db)

	user := &domain.User{
		ID:           "user1",
		Email:        "test@example.com",
		Name:         "Renamed User",
		PasswordHash: "abc123",
		PasswordSalt: "salt",
	}

	t.Run("updates existing user", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateUser(context.Background(), user)
		assert.NoError(t, err)
	})

	t.Run("missing user is an error", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateUser(context.Background(), user)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
