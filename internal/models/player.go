package models

// Player is the persisted per-player game record. Streaks and the predictor's
// training set live in the difficulty engine, not here, and do not survive a
// restart even though score and level do.
type Player struct {
	Name             string   `json:"player"`
	Level            int      `json:"current_level"`
	Score            int      `json:"current_score"`
	PendingAnswer    *float64 `json:"-"`
	AskedQuestions   []string `json:"-"`
	QuestionIssuedAt *int64   `json:"-"` // unix seconds, set when a question is issued
	CreatedAt        int64    `json:"-"`
	UpdatedAt        int64    `json:"-"`
}

// HasPendingQuestion reports whether a question has been issued and not yet graded.
func (p *Player) HasPendingQuestion() bool {
	return p.PendingAnswer != nil
}
