package quiz

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	// AnswerTolerance is the absolute tolerance for a submission to count as
	// correct. It accommodates the 4-digit rounding of irrational answers.
	AnswerTolerance = 0.01

	// CorrectPointsPerLevel scales the reward with difficulty.
	CorrectPointsPerLevel = 10

	// WrongPenalty is deducted on an incorrect answer; score floors at zero.
	WrongPenalty = 5
)

// ErrNotNumeric marks a submission that cannot be parsed as a number. It is a
// soft failure: the game responds with an explanatory message instead of an
// HTTP error, and the pending question stays open.
var ErrNotNumeric = errors.New("answer is not numeric")

// ParseAnswer parses a submitted answer. A non-numeric submission returns
// ErrNotNumeric rather than being graded as wrong.
func ParseAnswer(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, ErrNotNumeric
	}
	return v, nil
}

// IsCorrect reports whether a submitted value matches the pending answer
// within the fixed tolerance.
func IsCorrect(pending, submitted float64) bool {
	return math.Abs(submitted-pending) < AnswerTolerance
}

// ScoreAfter returns the player's score after grading one answer at the
// given level.
func ScoreAfter(score, level int, correct bool) int {
	if correct {
		return score + CorrectPointsPerLevel*level
	}
	score -= WrongPenalty
	if score < 0 {
		score = 0
	}
	return score
}
