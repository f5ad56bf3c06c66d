package quiz

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mathquest/backend/internal/models"
)

// ErrPlayerNotFound is returned for any operation naming an unregistered player.
var ErrPlayerNotFound = errors.New("player not found")

// ErrNoPendingQuestion is returned when an answer arrives before a question
// was fetched.
var ErrNoPendingQuestion = errors.New("no pending question for player")

// Store persists player records. Read-modify-write cycles run inside a
// transaction so a question fetch and an answer submission for the same
// player cannot interleave on stale state.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// GetOrCreate registers the player on first use and returns the record.
// Registration is idempotent.
func (s *Store) GetOrCreate(name string) (*models.Player, error) {
	now := time.Now().Unix()
	_, err := s.db.Exec(
		`INSERT INTO players (name, level, score, asked_questions, created_at, updated_at)
		 VALUES ($1, 1, 0, '[]', $2, $2)
		 ON CONFLICT (name) DO NOTHING`,
		name, now,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert player: %w", err)
	}
	return s.Get(name)
}

// Get loads one player record.
func (s *Store) Get(name string) (*models.Player, error) {
	return scanPlayer(s.db.QueryRow(selectPlayer, name))
}

// WithPlayer loads the player inside a transaction, applies fn to the record,
// and writes the mutated record back. fn returning an error rolls back.
func (s *Store) WithPlayer(name string, fn func(p *models.Player) error) (*models.Player, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	p, err := scanPlayer(tx.QueryRow(selectPlayer, name))
	if err != nil {
		return nil, err
	}

	if err := fn(p); err != nil {
		return nil, err
	}

	asked, err := json.Marshal(p.AskedQuestions)
	if err != nil {
		return nil, fmt.Errorf("marshal asked questions: %w", err)
	}
	_, err = tx.Exec(
		`UPDATE players SET
		    level = $2, score = $3, pending_answer = $4,
		    asked_questions = $5, question_issued_at = $6, updated_at = $7
		 WHERE name = $1`,
		name, p.Level, p.Score, p.PendingAnswer,
		string(asked), p.QuestionIssuedAt, time.Now().Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("update player: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return p, nil
}

// Leaderboard returns the top players by score, descending. Ties break on
// name ascending so the order is deterministic within a call.
func (s *Store) Leaderboard(limit int) ([]models.LeaderboardEntry, error) {
	rows, err := s.db.Query(
		`SELECT name, score FROM players
		 ORDER BY score DESC, name ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("get leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []models.LeaderboardEntry
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.Player, &e.Score); err != nil {
			return nil, fmt.Errorf("scan leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountPlayers returns the number of registered players.
func (s *Store) CountPlayers() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM players`).Scan(&n)
	return n, err
}

const selectPlayer = `SELECT name, level, score, pending_answer, asked_questions, question_issued_at
	FROM players WHERE name = $1`

func scanPlayer(row *sql.Row) (*models.Player, error) {
	var p models.Player
	var asked string
	err := row.Scan(&p.Name, &p.Level, &p.Score, &p.PendingAnswer, &asked, &p.QuestionIssuedAt)
	if err == sql.ErrNoRows {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan player: %w", err)
	}
	if err := json.Unmarshal([]byte(asked), &p.AskedQuestions); err != nil {
		return nil, fmt.Errorf("unmarshal asked questions: %w", err)
	}
	return &p, nil
}
