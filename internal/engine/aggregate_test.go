package engine

import (
	"testing"

	"studytrack/internal/domain"

	"github.com/stretchr/testify/assert"
)

func attempt(marksPercent float64, total int) domain.QuizAttempt {
	return domain.QuizAttempt{MarksPercent: marksPercent, Total: total}
}

func TestOverallWeightedAccuracy_Empty(t *testing.T) {
	assert.Equal(t, 0.0, OverallWeightedAccuracy(nil))
	assert.Equal(t, 0.0, OverallWeightedAccuracy([]domain.QuizAttempt{}))
}

func TestOverallWeightedAccuracy_SingleAttempt(t *testing.T) {
	got := OverallWeightedAccuracy([]domain.QuizAttempt{attempt(80, 10)})
	assert.InDelta(t, 0.8, got, 1e-9)
}

func TestOverallWeightedAccuracy_WeightsByQuestionCount(t *testing.T) {
	// (1.0*5 + 0.5*15) / 20 = 0.625; a plain mean would give 0.75.
	attempts := []domain.QuizAttempt{
		attempt(100, 5),
		attempt(50, 15),
	}
	got := OverallWeightedAccuracy(attempts)
	assert.InDelta(t, 0.625, got, 1e-9)
}

func TestOverallWeightedAccuracy_OrderIndependent(t *testing.T) {
	a := []domain.QuizAttempt{attempt(100, 5), attempt(50, 15), attempt(70, 10)}
	b := []domain.QuizAttempt{attempt(70, 10), attempt(100, 5), attempt(50, 15)}
	assert.Equal(t, OverallWeightedAccuracy(a), OverallWeightedAccuracy(b))
}

func TestAccuracyTrendFromHistory_TooFewAttempts(t *testing.T) {
	assert.Equal(t, 0.0, AccuracyTrendFromHistory(nil))
	assert.Equal(t, 0.0, AccuracyTrendFromHistory([]domain.QuizAttempt{attempt(90, 10)}))
}

func TestAccuracyTrendFromHistory_Improving(t *testing.T) {
	attempts := []domain.QuizAttempt{
		attempt(40, 10),
		attempt(50, 10),
		attempt(60, 10),
		attempt(80, 10),
		attempt(85, 10),
		attempt(90, 10),
	}
	// Recent window mean 0.85 vs prior window mean 0.50.
	got := AccuracyTrendFromHistory(attempts)
	assert.InDelta(t, 0.35, got, 1e-9)
}

func TestAccuracyTrendFromHistory_Declining(t *testing.T) {
	attempts := []domain.QuizAttempt{
		attempt(90, 10),
		attempt(85, 10),
		attempt(80, 10),
		attempt(60, 10),
		attempt(50, 10),
		attempt(40, 10),
	}
	got := AccuracyTrendFromHistory(attempts)
	assert.InDelta(t, -0.35, got, 1e-9)
}

func TestAccuracyTrendFromHistory_ShortHistoryComparesLastToRest(t *testing.T) {
	attempts := []domain.QuizAttempt{
		attempt(50, 10),
		attempt(90, 10),
	}
	got := AccuracyTrendFromHistory(attempts)
	assert.InDelta(t, 0.4, got, 1e-9)
}

func TestStreaks(t *testing.T) {
	tests := []struct {
		name    string
		marks   []float64
		current int
		best    int
	}{
		{"empty history", nil, 0, 0},
		{"all passing", []float64{80, 90, 75}, 3, 3},
		{"pass threshold is inclusive", []float64{70, 70}, 2, 2},
		{"broken streak resets current", []float64{80, 90, 60, 75}, 1, 2},
		{"all failing", []float64{10, 50, 69.9}, 0, 0},
		{"best in the middle", []float64{80, 90, 95, 60, 75, 50}, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attempts := make([]domain.QuizAttempt, len(tt.marks))
			for i, m := range tt.marks {
				attempts[i] = attempt(m, 10)
			}
			current, best := Streaks(attempts)
			assert.Equal(t, tt.current, current)
			assert.Equal(t, tt.best, best)
		})
	}
}
