package engine

import "github.com/mathquest/backend/internal/bank"

const (
	// MinLevel and MaxLevel are hard clamps on any level transition.
	MinLevel = 1
	MaxLevel = bank.MaxLevel

	// PromotionStreak is the consecutive-correct count that forces a
	// promotion regardless of the predicted probability.
	PromotionStreak = 4

	// PromoteThreshold and DemoteThreshold bound the model-driven
	// transitions. Both comparisons are strict: a probability sitting
	// exactly on a threshold leaves the level unchanged.
	PromoteThreshold = 0.75
	DemoteThreshold  = 0.40
)

// NextLevel decides a player's next level from the predicted probability of
// continued success and their consecutive-correct streak. First match wins:
// a sustained streak promotes even when the model is pessimistic.
func NextLevel(probability float64, currentLevel, streak int) int {
	switch {
	case streak >= PromotionStreak:
		return clampLevel(currentLevel + 1)
	case probability > PromoteThreshold:
		return clampLevel(currentLevel + 1)
	case probability < DemoteThreshold:
		return clampLevel(currentLevel - 1)
	default:
		return clampLevel(currentLevel)
	}
}

func clampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
