package models

import (
	"database/sql"
	"time"
)

// Subject represents a subject row.
type Subject struct {
	ID          string         `db:"id"` // ULID
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	DeletedAt   sql.NullTime   `db:"deleted_at"`
}

// Topic represents a topic row within a subject.
type Topic struct {
	ID             string         `db:"id"` // ULID
	SubjectID      string         `db:"subject_id"`
	Title          string         `db:"title"`
	Description    sql.NullString `db:"description"`
	DifficultyTier string         `db:"difficulty_tier"`
	EstimatedHours float64        `db:"estimated_hours"`
	Prerequisites  StringSlice    `db:"prerequisites"` // topic IDs, JSON
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
	DeletedAt      sql.NullTime   `db:"deleted_at"`
}

// StudyMaterial represents study material attached to a topic.
type StudyMaterial struct {
	ID          string       `db:"id"` // ULID
	TopicID     string       `db:"topic_id"`
	ContentType string       `db:"content_type"`
	Body        string       `db:"body"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
	DeletedAt   sql.NullTime `db:"deleted_at"`
}

// Question represents a quiz question for a topic.
type Question struct {
	ID            string         `db:"id"` // ULID
	TopicID       string         `db:"topic_id"`
	Text          string         `db:"text"`
	Options       StringSlice    `db:"options"` // JSON
	CorrectAnswer string         `db:"correct_answer"`
	Explanation   sql.NullString `db:"explanation"`
	ExpectedTime  float64        `db:"expected_time"` // seconds
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	DeletedAt     sql.NullTime   `db:"deleted_at"`
}
