package domain

import (
	"math"
	"time"
)

// Pacing is the recommended instructional speed tier.
type Pacing string

const (
	PacingExtraSlow Pacing = "EXTRA_SLOW"
	PacingSlow      Pacing = "SLOW"
	PacingNormal    Pacing = "NORMAL"
	PacingFast      Pacing = "FAST"
)

// Tone is the recommended messaging affect for feedback delivery.
type Tone string

const (
	ToneEncouraging   Tone = "ENCOURAGING"
	ToneBalancedGuide Tone = "BALANCED_GUIDE"
	ToneCelebratory   Tone = "CELEBRATORY"
	ToneConfident     Tone = "CONFIDENT"
)

// Action is the instructional action recommended after a quiz session.
type Action string

const (
	ActionReteach   Action = "RETEACH"
	ActionNextTopic Action = "NEXT_TOPIC"
)

// Strategy is the instructional approach label driving content downstream.
type Strategy string

const (
	StrategyFoundationalRebuild  Strategy = "FOUNDATIONAL_REBUILD"
	StrategyConceptualBridge     Strategy = "CONCEPTUAL_BRIDGE"
	StrategyChallengeApplication Strategy = "CHALLENGE_APPLICATION"
)

// Goal is the learning goal attached to a recommendation.
type Goal string

const (
	GoalRebuildConfidence   Goal = "REBUILD_CONFIDENCE"
	GoalAdvanceMastery      Goal = "ADVANCE_MASTERY"
	GoalDeepenUnderstanding Goal = "DEEPEN_UNDERSTANDING"
	GoalIntroduceConcept    Goal = "INTRODUCE_CONCEPT"
)

// QuizResponse is one answered question within a quiz session. The identifying
// fields are carried through for display and history; only Correct and
// TimeTaken participate in scoring.
type QuizResponse struct {
	Question  string  `json:"question"`
	Subject   string  `json:"subject"`
	Topic     string  `json:"topic"`
	Correct   bool    `json:"correct"`
	TimeTaken float64 `json:"time_taken"` // seconds, positive
}

// ScoreBundle holds the normalized scores derived from one quiz session.
// Every numeric field is clamped to [0,1]; AccuracyTrend is stored after the
// (trend+1)/2 transform so it shares the same range.
type ScoreBundle struct {
	TopicMastery       float64 `json:"topic_mastery"`
	CognitiveReadiness float64 `json:"cognitive_readiness"`
	Stability          float64 `json:"stability"`
	Confidence         float64 `json:"confidence"`
	AccuracyTrend      float64 `json:"accuracy_trend"`
	ResponseTimeNorm   float64 `json:"response_time_norm"`
	Pacing             Pacing  `json:"pacing"`
	Tone               Tone    `json:"tone"`
}

// Decision is the discrete instructional recommendation mapped from a
// ScoreBundle. Its Pacing/Tone are decision-level recommendations and may
// differ from the bundle's own Pacing/Tone; both are surfaced.
type Decision struct {
	Action   Action   `json:"action"`
	Strategy Strategy `json:"strategy"`
	Pacing   Pacing   `json:"pacing"`
	Tone     Tone     `json:"tone"`
	Goal     Goal     `json:"goal"`
	Insight  string   `json:"insight"`
}

// QuizAttempt is the persisted record of one completed quiz session. It is
// created exactly once at submission and treated as immutable history; the
// decision, strategy and metrics are frozen at that point and never
// recomputed.
type QuizAttempt struct {
	ID           string
	UserID       string
	SubjectID    string
	TopicID      string
	MarksPercent float64 // [0,100], rounded to a whole number at submission
	CorrectCount int
	Total        int
	Decision     Action
	Strategy     Strategy
	Metrics      ScoreBundle
	Responses    []QuizResponse
	AttemptedAt  time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// NewQuizAttempt builds an attempt record from a scored session. MarksPercent
// is rounded to a whole percentage for display stability.
func NewQuizAttempt(userID, subjectID, topicID string, responses []QuizResponse, scores ScoreBundle, decision Decision) *QuizAttempt {
	correct := 0
	for _, r := range responses {
		if r.Correct {
			correct++
		}
	}
	marks := 0.0
	if len(responses) > 0 {
		marks = math.Round(float64(correct) / float64(len(responses)) * 100)
	}
	now := time.Now()
	return &QuizAttempt{
		UserID:       userID,
		SubjectID:    subjectID,
		TopicID:      topicID,
		MarksPercent: marks,
		CorrectCount: correct,
		Total:        len(responses),
		Decision:     decision.Action,
		Strategy:     decision.Strategy,
		Metrics:      scores,
		Responses:    responses,
		AttemptedAt:  now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Accuracy returns the attempt's accuracy in [0,1].
func (a *QuizAttempt) Accuracy() float64 {
	return a.MarksPercent / 100
}
