package engine

import (
	"math"
	"testing"
)

func TestPredictReturnsPriorBeforeTraining(t *testing.T) {
	e := New()

	inputs := [][2]int{{0, 1}, {50, 3}, {1000, 10}}
	for i := 0; i < 5; i++ {
		for _, in := range inputs {
			if got := e.Predict(in[0], in[1]); got != DefaultProbability {
				t.Fatalf("Predict(%d, %d) with %d samples = %v, want %v",
					in[0], in[1], i, got, DefaultProbability)
			}
		}
		e.RecordOutcome(10*i, 1+i%3, i%2 == 0)
	}

	// Fifth sample recorded, still at the gate: prior holds.
	if got := e.Predict(100, 5); got != DefaultProbability {
		t.Fatalf("Predict with 5 samples = %v, want %v", got, DefaultProbability)
	}
}

func TestPredictSeparatesAfterTraining(t *testing.T) {
	e := New()

	// High scores at high levels succeed, low scores at low levels fail.
	for i := 0; i < 10; i++ {
		e.RecordOutcome(200+10*i, 8, true)
		e.RecordOutcome(5+i, 1, false)
	}

	if samples, trained := e.Stats(); samples != 20 || !trained {
		t.Fatalf("Stats() = (%d, %v), want (20, true)", samples, trained)
	}

	high := e.Predict(250, 8)
	low := e.Predict(5, 1)
	if high <= low {
		t.Errorf("Predict(250, 8) = %v should exceed Predict(5, 1) = %v", high, low)
	}
	for _, p := range []float64{high, low} {
		if p < 0 || p > 1 || math.IsNaN(p) {
			t.Errorf("probability %v outside [0, 1]", p)
		}
	}
}

func TestSingleClassFitFallsBackToPrior(t *testing.T) {
	e := New()

	// Ten all-correct outcomes: no decision boundary to learn, so every
	// recording attempt fails the fit and the prior stays in effect.
	for i := 0; i < 10; i++ {
		e.RecordOutcome(10*(i+1), 1, true)
	}

	if got := e.Predict(50, 1); got != DefaultProbability {
		t.Errorf("Predict after single-class training = %v, want %v", got, DefaultProbability)
	}
	if _, trained := e.Stats(); trained {
		t.Error("Stats() reports trained model after single-class fits")
	}
}

func TestUpdateStreak(t *testing.T) {
	e := New()

	for i := 1; i <= 3; i++ {
		if got := e.UpdateStreak("alice", true); got != i {
			t.Fatalf("streak after %d correct = %d, want %d", i, got, i)
		}
	}
	if got := e.UpdateStreak("alice", false); got != 0 {
		t.Errorf("streak after incorrect = %d, want 0", got)
	}
	if got := e.Streak("bob"); got != 0 {
		t.Errorf("streak for unseen player = %d, want 0", got)
	}

	// Streaks are per-player.
	e.UpdateStreak("bob", true)
	if got := e.Streak("alice"); got != 0 {
		t.Errorf("alice streak after bob's answer = %d, want 0", got)
	}
}

func TestResetReturnsEngineToPrior(t *testing.T) {
	e := New()
	for i := 0; i < 10; i++ {
		e.RecordOutcome(200+10*i, 8, true)
		e.RecordOutcome(5+i, 1, false)
	}
	e.UpdateStreak("alice", true)

	e.Reset()

	if samples, trained := e.Stats(); samples != 0 || trained {
		t.Errorf("Stats() after reset = (%d, %v), want (0, false)", samples, trained)
	}
	if got := e.Predict(250, 8); got != DefaultProbability {
		t.Errorf("Predict after reset = %v, want %v", got, DefaultProbability)
	}
	if got := e.Streak("alice"); got != 0 {
		t.Errorf("Streak after reset = %d, want 0", got)
	}
}
