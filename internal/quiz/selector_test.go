package quiz

import (
	"testing"

	"github.com/mathquest/backend/internal/bank"
)

func expressions(level int) map[string]struct{} {
	set := make(map[string]struct{})
	for _, q := range bank.Level(level) {
		set[q.Expression] = struct{}{}
	}
	return set
}

func TestSelectQuestionStaysInBank(t *testing.T) {
	for level := 1; level <= bank.MaxLevel; level++ {
		valid := expressions(level)
		var asked []string
		for i := 0; i < 50; i++ {
			expr, _, updated := SelectQuestion(level, asked)
			if _, ok := valid[expr]; !ok {
				t.Fatalf("level %d: selected %q, not in bank", level, expr)
			}
			asked = updated
		}
	}
}

func TestSelectQuestionSkipsAskedQuestions(t *testing.T) {
	level := 1
	all := bank.Level(level)

	// Everything asked except the last question: it must be selected.
	var asked []string
	for _, q := range all[:len(all)-1] {
		asked = append(asked, q.Expression)
	}

	want := all[len(all)-1].Expression
	for i := 0; i < 10; i++ {
		expr, _, _ := SelectQuestion(level, asked)
		if expr != want {
			t.Fatalf("SelectQuestion with one unseen question returned %q, want %q", expr, want)
		}
	}
}

func TestSelectQuestionResetsWhenExhausted(t *testing.T) {
	level := 2
	var asked []string
	for _, q := range bank.Level(level) {
		asked = append(asked, q.Expression)
	}

	expr, _, updated := SelectQuestion(level, asked)
	if _, ok := expressions(level)[expr]; !ok {
		t.Fatalf("post-reset selection %q not in bank", expr)
	}
	if len(updated) != 1 {
		t.Errorf("asked history after reset has %d entries, want 1", len(updated))
	}
	if updated[0] != expr {
		t.Errorf("asked history %v does not record the selection %q", updated, expr)
	}
}

func TestSelectQuestionInvalidLevelFallsBack(t *testing.T) {
	valid := expressions(1)
	for _, level := range []int{0, -3, 11, 99} {
		expr, _, _ := SelectQuestion(level, nil)
		if _, ok := valid[expr]; !ok {
			t.Errorf("level %d: selected %q, want a level-1 question", level, expr)
		}
	}
}

func TestSelectQuestionNormalizesUndefinedAnswer(t *testing.T) {
	// Ask everything at level 6 except tan(90°), forcing its selection.
	level := 6
	var asked []string
	for _, q := range bank.Level(level) {
		if q.Expression != "tan(90°)" {
			asked = append(asked, q.Expression)
		}
	}

	expr, answer, _ := SelectQuestion(level, asked)
	if expr != "tan(90°)" {
		t.Fatalf("selected %q, want tan(90°)", expr)
	}
	if answer != 0.0 {
		t.Errorf("undefined answer normalized to %v, want 0.0", answer)
	}
}
