// Package scoring holds the pure point-calculation rules. Functions here have
// no state and no side effects; inputs are assumed to be validated at the
// boundary, but results are still floored so a malformed duration can never
// yield negative points.
package scoring

import "github.com/jwinters/stint/internal/constants"

// basePoints awards one point per ten minutes worked, capped.
func basePoints(durationMin int) int {
	points := durationMin / constants.MinutesPerBasePoint
	if points > constants.MaxBasePoints {
		return constants.MaxBasePoints
	}
	if points < 0 {
		return 0
	}
	return points
}

// focusAdjustment maps a 1-5 focus rating to a bonus or penalty. Levels 1 and
// 2 penalize, levels 3 through 5 reward.
func focusAdjustment(focusLevel int) int {
	if focusLevel <= 2 {
		return -constants.FocusPenaltyStep * (3 - focusLevel)
	}
	return (focusLevel - 2) * constants.FocusBonusStep
}

// StudySessionPoints computes the score for a completed or abandoned study
// session from its duration and quality ratings. Never returns a negative
// value.
func StudySessionPoints(durationMin, focusLevel, confidenceLevel int, completed bool) int {
	points := basePoints(durationMin)
	points += focusAdjustment(focusLevel)
	points += confidenceLevel * constants.ConfidenceBonusStep
	if completed {
		points += constants.StudyCompletionBonus
	}

	if points < 0 {
		return 0
	}
	return points
}

// ProjectSessionPoints computes the score for a project session. All terms
// are non-negative, so no floor is needed.
func ProjectSessionPoints(durationMin int, completed, hasProgressNotes, hasNotes bool) int {
	points := basePoints(durationMin)
	if completed {
		points += constants.ProjectCompletionBonus
	}
	if hasProgressNotes {
		points += constants.ProgressNotesBonus
	}
	if hasNotes {
		points += constants.NotesBonus
	}
	return points
}

// GoalDelayPenalty computes the points deducted for a goal that has been
// delayed the given number of days: a flat first-day penalty plus a smaller
// amount for every additional day. Both the per-goal computation and the
// daily reconciliation pass must go through this function.
func GoalDelayPenalty(daysDelayed int) int {
	if daysDelayed <= 0 {
		return 0
	}
	return constants.FirstDayDelayPenalty + (daysDelayed-1)*constants.ExtraDayDelayPenalty
}
