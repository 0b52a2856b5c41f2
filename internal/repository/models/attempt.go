package models

import (
	"database/sql"
	"time"
)

// QuizAttempt represents a completed, scored quiz session. Metrics and the
// decision are frozen at submission time.
type QuizAttempt struct {
	ID           string          `db:"id"` // ULID
	UserID       string          `db:"user_id"`
	SubjectID    string          `db:"subject_id"`
	TopicID      string          `db:"topic_id"`
	MarksPercent float64         `db:"marks_percent"` // 0..100
	CorrectCount int             `db:"correct_count"`
	Total        int             `db:"total"`
	Decision     string          `db:"decision"`
	Strategy     string          `db:"strategy"`
	Metrics      ScoreBundleJSON `db:"metrics"`
	Responses    ResponseSlice   `db:"responses"`
	AttemptedAt  time.Time       `db:"attempted_at"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
	DeletedAt    sql.NullTime    `db:"deleted_at"`
}
