package dto

import "time"

// SubmittedResponse is one answered question in a submitted quiz session.
type SubmittedResponse struct {
	Question  string  `json:"question"`
	Subject   string  `json:"subject"`
	Topic     string  `json:"topic"`
	Correct   bool    `json:"correct"`
	TimeTaken float64 `json:"time_taken"` // seconds
}

// SubmitAttemptRequest is the request body for submitting a completed quiz
// session.
// @Description Request body for submitting a quiz session
type SubmitAttemptRequest struct {
	SubjectID string              `json:"subject_id" validate:"required"`
	TopicID   string              `json:"topic_id" validate:"required"`
	Responses []SubmittedResponse `json:"responses" validate:"required"`
}

// ScoreBundleDTO mirrors the engine's score bundle for transport.
type ScoreBundleDTO struct {
	TopicMastery       float64 `json:"topic_mastery"`
	CognitiveReadiness float64 `json:"cognitive_readiness"`
	Stability          float64 `json:"stability"`
	Confidence         float64 `json:"confidence"`
	AccuracyTrend      float64 `json:"accuracy_trend"`
	ResponseTimeNorm   float64 `json:"response_time_norm"`
	Pacing             string  `json:"pacing"`
	Tone               string  `json:"tone"`
}

// DecisionDTO mirrors the engine's decision for transport.
type DecisionDTO struct {
	Action   string `json:"action"`
	Strategy string `json:"strategy"`
	Pacing   string `json:"pacing"`
	Tone     string `json:"tone"`
	Goal     string `json:"goal"`
	Insight  string `json:"insight"`
}

// SubmitAttemptResponse is returned after a quiz session is scored and
// persisted.
type SubmitAttemptResponse struct {
	AttemptID    string         `json:"attempt_id"`
	MarksPercent float64        `json:"marks_percent"`
	CorrectCount int            `json:"correct_count"`
	Total        int            `json:"total"`
	Scores       ScoreBundleDTO `json:"scores"`
	Decision     DecisionDTO    `json:"decision"`
	AttemptedAt  time.Time      `json:"attempted_at"`
}

// AttemptItem represents a single quiz attempt in a history listing.
type AttemptItem struct {
	AttemptID    string         `json:"attempt_id"`
	SubjectID    string         `json:"subject_id"`
	TopicID      string         `json:"topic_id"`
	MarksPercent float64        `json:"marks_percent"`
	CorrectCount int            `json:"correct_count"`
	Total        int            `json:"total"`
	Decision     string         `json:"decision"`
	Strategy     string         `json:"strategy"`
	Scores       ScoreBundleDTO `json:"scores"`
	AttemptedAt  time.Time      `json:"attempted_at"`
}

// AttemptsResponse is the response for listing a user's quiz attempts.
type AttemptsResponse struct {
	Attempts       []AttemptItem  `json:"attempts"`
	PaginationInfo PaginationInfo `json:"pagination_info"`
}

// TopicSummaryResponse is the per-topic analytics summary: aggregate accuracy
// over history plus the most recent scores and recommendation.
type TopicSummaryResponse struct {
	TopicID          string          `json:"topic_id"`
	AttemptCount     int             `json:"attempt_count"`
	OverallAccuracy  float64         `json:"overall_accuracy"`
	AccuracyTrend    float64         `json:"accuracy_trend"`
	CurrentStreak    int             `json:"current_streak"`
	BestStreak       int             `json:"best_streak"`
	LatestScores     *ScoreBundleDTO `json:"latest_scores,omitempty"`
	Recommendation   DecisionDTO     `json:"recommendation"`
	LastAttemptedAt  *time.Time      `json:"last_attempted_at,omitempty"`
	FirstEverAttempt bool            `json:"first_ever_attempt"`
}

// SubjectItem represents a subject in the catalog listing.
type SubjectItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// SubjectsResponse is the response for listing subjects.
type SubjectsResponse struct {
	Subjects []SubjectItem `json:"subjects"`
}

// TopicItem represents a topic in the catalog listing.
type TopicItem struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	DifficultyTier string   `json:"difficulty_tier"`
	EstimatedHours float64  `json:"estimated_hours"`
	Prerequisites  []string `json:"prerequisites,omitempty"`
}

// TopicsResponse is the response for listing a subject's topics.
type TopicsResponse struct {
	Subject string      `json:"subject"`
	Topics  []TopicItem `json:"topics"`
}

// MaterialItem represents study material attached to a topic.
type MaterialItem struct {
	ID          string `json:"id"`
	ContentType string `json:"content_type"`
	Body        string `json:"body"`
}

// MaterialsResponse is the response for listing a topic's study material.
type MaterialsResponse struct {
	TopicID   string         `json:"topic_id"`
	Materials []MaterialItem `json:"materials"`
}

// QuestionItem represents a quiz question served for a topic. The correct
// answer is included because grading happens client-side in the study app;
// the server only records completed sessions.
type QuestionItem struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
	ExpectedTime  float64  `json:"expected_time"`
}

// QuestionsResponse is the response for listing a topic's questions.
type QuestionsResponse struct {
	TopicID   string         `json:"topic_id"`
	Questions []QuestionItem `json:"questions"`
}
