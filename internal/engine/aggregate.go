package engine

import "studytrack/internal/domain"

// PassThresholdPercent is the marks percentage at or above which an attempt
// counts toward a streak.
const PassThresholdPercent = 70.0

// trendWindow is how many recent attempts form each half of the trend
// comparison.
const trendWindow = 3

// OverallWeightedAccuracy returns the mean accuracy across attempts, weighted
// by each attempt's question count. An empty history returns 0.0; that is a
// boundary case, not an error. Input order does not matter and repeated calls
// with the same input produce the same output.
func OverallWeightedAccuracy(attempts []domain.QuizAttempt) float64 {
	totalQuestions := 0
	weighted := 0.0
	for _, a := range attempts {
		totalQuestions += a.Total
		weighted += a.Accuracy() * float64(a.Total)
	}
	if totalQuestions == 0 {
		return 0.0
	}
	return clamp(weighted/float64(totalQuestions), 0, 1)
}

// AccuracyTrendFromHistory derives the short-term trend signal in [-1,1] from
// real attempt history, replacing the reference behavior's random draw.
// Attempts must be ordered by attempted_at ascending. It compares the mean
// accuracy of the most recent window against the window before it; fewer than
// two attempts yield a neutral 0.
func AccuracyTrendFromHistory(attempts []domain.QuizAttempt) float64 {
	if len(attempts) < 2 {
		return 0
	}

	recent := attempts
	if len(recent) > trendWindow {
		recent = recent[len(recent)-trendWindow:]
	}
	prior := attempts[:len(attempts)-len(recent)]
	if len(prior) == 0 {
		// Not enough history for two full windows; compare last against the
		// rest.
		recent = attempts[len(attempts)-1:]
		prior = attempts[:len(attempts)-1]
	}
	if len(prior) > trendWindow {
		prior = prior[len(prior)-trendWindow:]
	}

	return clamp(meanAccuracy(recent)-meanAccuracy(prior), -1, 1)
}

// Streaks returns the current and best runs of consecutive passing attempts.
// Attempts must be ordered by attempted_at ascending.
func Streaks(attempts []domain.QuizAttempt) (current, best int) {
	run := 0
	for _, a := range attempts {
		if a.MarksPercent >= PassThresholdPercent {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return run, best
}

func meanAccuracy(attempts []domain.QuizAttempt) float64 {
	if len(attempts) == 0 {
		return 0
	}
	sum := 0.0
	for _, a := range attempts {
		sum += a.Accuracy()
	}
	return sum / float64(len(attempts))
}
