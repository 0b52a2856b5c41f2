package engine

import (
	"testing"

	"studytrack/internal/domain"

	"github.com/stretchr/testify/assert"
)

func bundle(tms, crs float64) domain.ScoreBundle {
	return domain.ScoreBundle{
		TopicMastery:       tms,
		CognitiveReadiness: crs,
		Stability:          0.5,
		Confidence:         0.5,
		AccuracyTrend:      0.5,
		ResponseTimeNorm:   0.5,
		Pacing:             domain.PacingNormal,
		Tone:               domain.ToneBalancedGuide,
	}
}

func TestDecide_RuleTable(t *testing.T) {
	tests := []struct {
		name     string
		tms      float64
		crs      float64
		action   domain.Action
		strategy domain.Strategy
	}{
		{"low mastery reteaches", 0.30, 0.90, domain.ActionReteach, domain.StrategyFoundationalRebuild},
		{"marginal mastery with low readiness reteaches", 0.60, 0.64, domain.ActionReteach, domain.StrategyFoundationalRebuild},
		{"marginal mastery with enough readiness bridges", 0.60, 0.65, domain.ActionNextTopic, domain.StrategyConceptualBridge},
		{"mid mastery bridges", 0.78, 0.65, domain.ActionNextTopic, domain.StrategyConceptualBridge},
		{"high mastery low readiness still bridges", 0.95, 0.69, domain.ActionNextTopic, domain.StrategyConceptualBridge},
		{"high mastery and readiness advances", 0.95, 0.80, domain.ActionNextTopic, domain.StrategyChallengeApplication},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(bundle(tt.tms, tt.crs))
			assert.Equal(t, tt.action, d.Action)
			assert.Equal(t, tt.strategy, d.Strategy)
		})
	}
}

func TestDecide_ReteachBoundaryIsStrict(t *testing.T) {
	// Exactly 0.55 mastery does not trip the strict less-than reteach rule.
	d := Decide(bundle(0.55, 0.90))
	assert.Equal(t, domain.ActionNextTopic, d.Action)
	assert.Equal(t, domain.StrategyConceptualBridge, d.Strategy)

	d = Decide(bundle(0.5499, 0.90))
	assert.Equal(t, domain.ActionReteach, d.Action)
}

func TestDecide_AdvanceBoundaryIsInclusive(t *testing.T) {
	d := Decide(bundle(0.90, 0.70))
	assert.Equal(t, domain.ActionNextTopic, d.Action)
	assert.Equal(t, domain.StrategyChallengeApplication, d.Strategy)
	assert.Equal(t, domain.PacingFast, d.Pacing)
	assert.Equal(t, domain.ToneCelebratory, d.Tone)
	assert.Equal(t, domain.GoalAdvanceMastery, d.Goal)

	d = Decide(bundle(0.8999, 0.70))
	assert.Equal(t, domain.StrategyConceptualBridge, d.Strategy)

	d = Decide(bundle(0.90, 0.6999))
	assert.Equal(t, domain.StrategyConceptualBridge, d.Strategy)
}

func TestDecide_FullDecisionShape(t *testing.T) {
	d := Decide(bundle(0.30, 0.30))
	assert.Equal(t, domain.ActionReteach, d.Action)
	assert.Equal(t, domain.StrategyFoundationalRebuild, d.Strategy)
	assert.Equal(t, domain.PacingExtraSlow, d.Pacing)
	assert.Equal(t, domain.ToneEncouraging, d.Tone)
	assert.Equal(t, domain.GoalRebuildConfidence, d.Goal)
	assert.NotEmpty(t, d.Insight)
}

func TestDecide_Deterministic(t *testing.T) {
	b := bundle(0.72, 0.68)
	assert.Equal(t, Decide(b), Decide(b))
}
