// Package engine computes normalized performance scores from a quiz session
// and maps them to a discrete instructional recommendation. Every function in
// this package is pure: no I/O, no clock, no randomness. Callers own boundary
// validation (negative times, inconsistent counts); the engine assumes inputs
// are in contract and never returns an error.
package engine

import (
	"math"

	"studytrack/internal/domain"
)

// Policy constants. These are tuning values, not algorithm structure; adjust
// them here rather than inline.
const (
	// ConfidenceTimeThreshold is the per-question time bound (seconds) under
	// which a correct answer counts toward the confidence score.
	ConfidenceTimeThreshold = 8.0

	// ExpectedResponseTime is the baseline (seconds) for normalizing average
	// response time: faster trends toward 1, slower toward 0.
	ExpectedResponseTime = 10.0

	// Topic mastery weights. They sum to 1.00. The first-attempt term reuses
	// session accuracy because no distinct first-attempt signal exists yet,
	// and the error-pattern term is a fixed placeholder signal.
	weightAccuracy     = 0.50
	weightFirstAttempt = 0.10
	weightTrend        = 0.15
	weightResponseTime = 0.10
	weightAttempts     = 0.05
	weightErrorPattern = 0.10

	// errorPatternSignal stands in for error-pattern telemetry this module
	// does not have access to. The mastery formula uses (1 - signal).
	errorPatternSignal = 0.1

	// Cognitive readiness weights.
	weightGlobalAccuracy    = 0.25
	weightReadinessRespTime = 0.15
	weightReviewRecall      = 0.15
	weightEngagement        = 0.10
	weightRegularity        = 0.10
	weightVelocity          = 0.10
	weightConfidence        = 0.10

	// Stability blend.
	weightStabilityMastery = 0.7
	weightStabilityTrend   = 0.3

	// Pacing blend and tier cut points.
	weightPacingReadiness = 0.6
	weightPacingVelocity  = 0.4
	pacingExtraSlowBelow  = 0.4
	pacingSlowBelow       = 0.6
	pacingNormalUpTo      = 0.8
)

// attemptFactor is fixed under the one-attempt-per-session assumption:
// clamp(min(1, ln(1+1)/ln(1+3)), 0, 1). Multi-attempt tracking would replace
// this with a real count.
var attemptFactor = math.Log(2) / math.Log(4)

// Signals are telemetry inputs the engine cannot derive from a single
// session. The reference behavior randomized these per render; here they are
// caller-supplied so the engine stays deterministic. DefaultSignals returns
// the midpoints of the reference ranges.
type Signals struct {
	// AccuracyTrend is the short-term improvement/decline signal in [-1,1].
	// Zero means no trend information.
	AccuracyTrend float64

	// LearningVelocity in [0,1], reference range [0.4,0.8].
	LearningVelocity float64

	// ReviewRecallRate in [0,1], reference range [0.6,0.9].
	ReviewRecallRate float64

	// EngagementLevel in [0,1], reference range [0.5,0.9].
	EngagementLevel float64

	// SessionRegularity in [0,1], reference range [0.3,0.8].
	SessionRegularity float64
}

// DefaultSignals returns neutral signal values: zero trend and the midpoint
// of each reference range.
func DefaultSignals() Signals {
	return Signals{
		AccuracyTrend:     0,
		LearningVelocity:  0.6,
		ReviewRecallRate:  0.75,
		EngagementLevel:   0.7,
		SessionRegularity: 0.55,
	}
}

// Input carries the session-external inputs to ComputeScores.
type Input struct {
	// PriorAttemptCount is the number of attempts the learner has already
	// recorded for this topic. Must be >= 0.
	PriorAttemptCount int

	// GlobalAvgAccuracy is the learner's weighted accuracy across all past
	// attempts, pre-clamped by the caller to [0,1].
	GlobalAvgAccuracy float64

	Signals Signals
}

// ComputeScores derives the normalized score bundle for one quiz session.
// An empty response set returns the fixed default bundle: all numeric scores
// zero, NORMAL pacing, BALANCED_GUIDE tone.
func ComputeScores(responses []domain.QuizResponse, in Input) domain.ScoreBundle {
	if len(responses) == 0 {
		return domain.ScoreBundle{
			Pacing: domain.PacingNormal,
			Tone:   domain.ToneBalancedGuide,
		}
	}

	total := float64(len(responses))
	correct := 0.0
	fastCorrect := 0.0
	timeSum := 0.0
	for _, r := range responses {
		timeSum += r.TimeTaken
		if r.Correct {
			correct++
			if r.TimeTaken < ConfidenceTimeThreshold {
				fastCorrect++
			}
		}
	}

	accuracy := correct / total
	avgTime := timeSum / total
	confidence := clamp(fastCorrect/total, 0, 1)
	responseTimeNorm := clamp(1-avgTime/ExpectedResponseTime, 0, 1)
	trendFactor := clamp((in.Signals.AccuracyTrend+1)/2, 0, 1)

	mastery := clamp(
		weightAccuracy*accuracy+
			weightFirstAttempt*accuracy+
			weightTrend*trendFactor+
			weightResponseTime*responseTimeNorm+
			weightAttempts*attemptFactor+
			weightErrorPattern*(1-errorPatternSignal),
		0, 1)

	readiness := clamp(
		weightGlobalAccuracy*in.GlobalAvgAccuracy+
			weightReadinessRespTime*responseTimeNorm+
			weightReviewRecall*in.Signals.ReviewRecallRate+
			weightEngagement*in.Signals.EngagementLevel+
			weightRegularity*in.Signals.SessionRegularity+
			weightVelocity*in.Signals.LearningVelocity+
			weightConfidence*confidence,
		0, 1)

	stability := clamp(weightStabilityMastery*mastery+weightStabilityTrend*trendFactor, 0, 1)

	pacingScore := weightPacingReadiness*readiness + weightPacingVelocity*in.Signals.LearningVelocity

	return domain.ScoreBundle{
		TopicMastery:       round3(mastery),
		CognitiveReadiness: round3(readiness),
		Stability:          round3(stability),
		Confidence:         round3(confidence),
		AccuracyTrend:      round3(trendFactor),
		ResponseTimeNorm:   round3(responseTimeNorm),
		Pacing:             pacingTier(pacingScore),
		Tone:               selectTone(confidence, in.Signals.AccuracyTrend, mastery, readiness),
	}
}

// pacingTier maps the blended pacing score to a discrete tier.
func pacingTier(score float64) domain.Pacing {
	switch {
	case score < pacingExtraSlowBelow:
		return domain.PacingExtraSlow
	case score < pacingSlowBelow:
		return domain.PacingSlow
	case score <= pacingNormalUpTo:
		return domain.PacingNormal
	default:
		return domain.PacingFast
	}
}

// selectTone picks the messaging tone; first match wins.
func selectTone(confidence, accuracyTrend, mastery, readiness float64) domain.Tone {
	switch {
	case confidence < 0.5:
		return domain.ToneEncouraging
	case accuracyTrend > 0.15 && mastery > 0.8:
		return domain.ToneCelebratory
	case readiness > 0.75:
		return domain.ToneConfident
	default:
		return domain.ToneBalancedGuide
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// round3 rounds to three fractional digits for display stability. Internal
// computation stays at full precision until this final step.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
