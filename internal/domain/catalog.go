package domain

import "time"

// Subject is a top-level study area (e.g. Physics).
type Subject struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Topic is a unit of study under a subject. DifficultyTier and
// EstimatedHours come from the curriculum catalog and drive ordering in the
// UI, not scoring.
type Topic struct {
	ID             string
	SubjectID      string
	Title          string
	Description    string
	DifficultyTier string // "base", "level_1", "level_2"
	EstimatedHours float64
	Prerequisites  []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate validates the topic.
func (t *Topic) Validate() error {
	if t.SubjectID == "" {
		return NewInvalidInputError("subject ID is required")
	}
	if t.Title == "" {
		return NewInvalidInputError("title is required")
	}
	return nil
}

// StudyMaterial is static or templated study content attached to a topic.
type StudyMaterial struct {
	ID          string
	TopicID     string
	ContentType string // "text", "video", "summary"
	Body        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Question is a quiz question belonging to a topic.
type Question struct {
	ID            string
	TopicID       string
	Text          string
	Options       []string
	CorrectAnswer string
	Explanation   string
	ExpectedTime  float64 // seconds
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate validates the question.
func (q *Question) Validate() error {
	if q.TopicID == "" {
		return NewInvalidInputError("topic ID is required")
	}
	if q.Text == "" {
		return NewInvalidInputError("question text is required")
	}
	if len(q.Options) < 2 {
		return NewInvalidInputError("at least two options are required")
	}
	return nil
}
