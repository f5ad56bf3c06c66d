package quiz

import (
	"log"
	"math"
	"time"

	"github.com/mathquest/backend/internal/engine"
	"github.com/mathquest/backend/internal/models"
)

// Service runs the question/answer cycle: it loads the player record, asks
// the selector and the difficulty engine for the next state, and writes the
// record back.
type Service struct {
	store  *Store
	engine *engine.Engine
}

func NewService(store *Store, eng *engine.Engine) *Service {
	return &Service{store: store, engine: eng}
}

// Register creates the player on first call and returns the existing record
// on every later one.
func (s *Service) Register(name string) (*models.RegisterResponse, error) {
	p, err := s.store.GetOrCreate(name)
	if err != nil {
		return nil, err
	}
	return &models.RegisterResponse{
		Player:       p.Name,
		CurrentScore: p.Score,
		CurrentLevel: p.Level,
	}, nil
}

// NextQuestion issues a new question for the player's current level and
// stores the expected answer until grading.
func (s *Service) NextQuestion(name string) (*models.QuestionResponse, error) {
	var expression string
	p, err := s.store.WithPlayer(name, func(p *models.Player) error {
		expr, answer, asked := SelectQuestion(p.Level, p.AskedQuestions)
		now := time.Now().Unix()
		expression = expr
		p.PendingAnswer = &answer
		p.AskedQuestions = asked
		p.QuestionIssuedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &models.QuestionResponse{
		MathQuestion: expression,
		CurrentLevel: p.Level,
		AIPrediction: round2(s.engine.Predict(p.Score, p.Level)),
		Streak:       s.engine.Streak(name),
	}, nil
}

// SubmitAnswer grades a submission against the player's pending answer,
// updates score and streak, records the outcome into the predictor, and
// recomputes the level through the adaptive rule.
//
// A non-numeric submission is a soft failure: the pending question stays
// open and the response carries a message instead of an HTTP error.
func (s *Service) SubmitAnswer(req models.AnswerRequest) (*models.AnswerResponse, error) {
	p, err := s.store.Get(req.Player)
	if err != nil {
		return nil, err
	}
	if !p.HasPendingQuestion() {
		return nil, ErrNoPendingQuestion
	}

	submitted, err := ParseAnswer(req.UserAnswer)
	if err != nil {
		return &models.AnswerResponse{
			IsCorrect:    false,
			NewLevel:     p.Level,
			Score:        p.Score,
			Progress:     progress(p.Level),
			AIPrediction: round2(s.engine.Predict(p.Score, p.Level)),
			Streak:       s.engine.Streak(req.Player),
			Message:      "The answer must be a number.",
		}, nil
	}

	var (
		correct       bool
		correctAnswer float64
		streak        int
		prob          float64
		elapsed       float64
	)
	p, err = s.store.WithPlayer(req.Player, func(p *models.Player) error {
		if !p.HasPendingQuestion() {
			return ErrNoPendingQuestion
		}
		correctAnswer = *p.PendingAnswer
		correct = IsCorrect(correctAnswer, submitted)

		p.Score = ScoreAfter(p.Score, p.Level, correct)
		streak = s.engine.UpdateStreak(p.Name, correct)

		s.engine.RecordOutcome(p.Score, p.Level, correct)
		prob = s.engine.Predict(p.Score, p.Level)
		p.Level = engine.NextLevel(prob, p.Level, streak)

		if p.QuestionIssuedAt != nil {
			elapsed = time.Since(time.Unix(*p.QuestionIssuedAt, 0)).Seconds()
		}
		p.PendingAnswer = nil
		p.QuestionIssuedAt = nil
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[quiz] %s answered %q correct=%v — level %d | prediction %.2f | streak %d",
		req.Player, req.Question, correct, p.Level, prob, streak)

	return &models.AnswerResponse{
		IsCorrect:      correct,
		CorrectAnswer:  &correctAnswer,
		NewLevel:       p.Level,
		Score:          p.Score,
		Progress:       progress(p.Level),
		AIPrediction:   round2(prob),
		Streak:         streak,
		ElapsedSeconds: elapsed,
	}, nil
}

// Leaderboard returns the top 10 players by score.
func (s *Service) Leaderboard() ([]models.LeaderboardEntry, error) {
	entries, err := s.store.Leaderboard(10)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}
	return entries, nil
}

func progress(level int) int {
	return level * 100 / engine.MaxLevel
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
