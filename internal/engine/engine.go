// Package engine is the adaptive difficulty engine: a global training set of
// graded attempts, a logistic classifier predicting the probability of
// continued success, per-player streak counters, and the level transition
// rule combining both.
//
// All engine state is in-memory and process-wide. Score and level persist in
// the player store, but streaks and training data reset on restart.
package engine

import (
	"log"
	"sync"
)

const (
	// DefaultProbability is the uninformative prior returned before the
	// classifier has enough data, and whenever a fit fails.
	DefaultProbability = 0.5

	// minTrainingSamples gates the first fit: the classifier retrains on
	// every recorded outcome only once more than this many samples exist.
	minTrainingSamples = 5
)

// Engine owns the shared mutable training and streak state. A single mutex
// serializes all access; the original design left these structures
// unsynchronized across concurrent requests.
type Engine struct {
	mu      sync.Mutex
	samples []sample
	model   *logisticModel
	streaks map[string]int
}

func New() *Engine {
	return &Engine{streaks: make(map[string]int)}
}

// RecordOutcome appends one graded attempt to the training set and retrains
// the classifier on the full set once enough samples exist. A failed fit is
// logged and the previous model (or the prior) stays in effect.
func (e *Engine) RecordOutcome(score, level int, correct bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	label := 0.0
	if correct {
		label = 1.0
	}
	e.samples = append(e.samples, sample{
		score: float64(score),
		level: float64(level),
		label: label,
	})

	if len(e.samples) <= minTrainingSamples {
		return
	}

	model, err := fitLogistic(e.samples)
	if err != nil {
		log.Printf("[engine] classifier fit failed (%d samples): %v — keeping fallback probability", len(e.samples), err)
		return
	}
	e.model = model
}

// Predict returns the probability that a player at (score, level) keeps
// answering correctly. Until the classifier has been fit it returns the
// uninformative prior.
func (e *Engine) Predict(score, level int) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.model == nil || len(e.samples) < minTrainingSamples {
		return DefaultProbability
	}
	return e.model.probability(float64(score), float64(level))
}

// UpdateStreak increments the player's consecutive-correct counter or resets
// it to zero, and returns the new value.
func (e *Engine) UpdateStreak(player string, correct bool) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if correct {
		e.streaks[player]++
	} else {
		e.streaks[player] = 0
	}
	return e.streaks[player]
}

// Streak returns the player's current consecutive-correct count.
func (e *Engine) Streak(player string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.streaks[player]
}

// Stats reports the training-set size and whether a classifier has been fit.
func (e *Engine) Stats() (samples int, trained bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.samples), e.model != nil
}

// Reset drops all training data, the fitted model, and every streak counter,
// returning the predictor to its prior.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.samples = nil
	e.model = nil
	e.streaks = make(map[string]int)
}
