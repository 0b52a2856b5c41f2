package engine

import "studytrack/internal/domain"

// Decision thresholds on (TopicMastery, CognitiveReadiness). The reteach row
// uses strict less-than; the advance row is inclusive.
const (
	reteachMasteryBelow     = 0.55
	reteachMasteryMarginal  = 0.70
	reteachReadinessBelow   = 0.65
	advanceMasteryAtLeast   = 0.90
	advanceReadinessAtLeast = 0.70
)

// Fixed insight strings, one per decision branch.
const (
	insightReteach = "Core gaps remain in this topic. Rebuilding the fundamentals at a gentler pace will make the next pass stick."
	insightAdvance = "Strong command of this topic with the readiness to match. Time to move on and apply it to harder problems."
	insightBridge  = "Solid footing with room to consolidate. Moving forward while bridging related concepts will deepen understanding."
)

// Decide maps a score bundle to an instructional recommendation. It is total
// and deterministic: the same bundle always yields the same decision. First
// matching row wins.
//
// Decide has no branch for a learner with zero prior attempts on a topic;
// callers short-circuit to an introductory recommendation before invoking it.
func Decide(scores domain.ScoreBundle) domain.Decision {
	tms := scores.TopicMastery
	crs := scores.CognitiveReadiness

	switch {
	case tms < reteachMasteryBelow || (tms < reteachMasteryMarginal && crs < reteachReadinessBelow):
		return domain.Decision{
			Action:   domain.ActionReteach,
			Strategy: domain.StrategyFoundationalRebuild,
			Pacing:   domain.PacingExtraSlow,
			Tone:     domain.ToneEncouraging,
			Goal:     domain.GoalRebuildConfidence,
			Insight:  insightReteach,
		}
	case tms >= advanceMasteryAtLeast && crs >= advanceReadinessAtLeast:
		return domain.Decision{
			Action:   domain.ActionNextTopic,
			Strategy: domain.StrategyChallengeApplication,
			Pacing:   domain.PacingFast,
			Tone:     domain.ToneCelebratory,
			Goal:     domain.GoalAdvanceMastery,
			Insight:  insightAdvance,
		}
	default:
		return domain.Decision{
			Action:   domain.ActionNextTopic,
			Strategy: domain.StrategyConceptualBridge,
			Pacing:   domain.PacingNormal,
			Tone:     domain.ToneBalancedGuide,
			Goal:     domain.GoalDeepenUnderstanding,
			Insight:  insightBridge,
		}
	}
}
