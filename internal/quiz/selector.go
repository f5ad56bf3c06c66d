package quiz

import (
	"math"
	"math/rand"

	"github.com/mathquest/backend/internal/bank"
)

// SelectQuestion picks a question for the level that the player has not seen
// yet, appending the chosen expression to the asked history. An unknown level
// falls back to level 1. Once the history covers the whole level the history
// resets and the full level becomes selectable again, so a player is never
// left without a question. Selection among candidates is uniformly random.
//
// The returned answer is rounded to 4 decimal digits; a question with no
// defined answer (tan(90°)) yields 0.0. That keeps grading a plain numeric
// comparison at the cost of one not-literally-correct trigonometric value.
func SelectQuestion(level int, asked []string) (expression string, answer float64, updated []string) {
	questions := bank.Level(level)
	if questions == nil {
		questions = bank.Level(1)
	}

	seen := make(map[string]struct{}, len(asked))
	for _, a := range asked {
		seen[a] = struct{}{}
	}

	candidates := make([]bank.Question, 0, len(questions))
	for _, q := range questions {
		if _, ok := seen[q.Expression]; !ok {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		asked = nil
		candidates = questions
	}

	pick := candidates[rand.Intn(len(candidates))]

	answer = 0.0
	if pick.Answer != nil {
		answer = round4(*pick.Answer)
	}
	return pick.Expression, answer, append(asked, pick.Expression)
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
