package bank

import "testing"

func TestTableShape(t *testing.T) {
	if len(Table) != MaxLevel {
		t.Fatalf("bank has %d levels, want %d", len(Table), MaxLevel)
	}
	for level := 1; level <= MaxLevel; level++ {
		questions := Level(level)
		if len(questions) != 20 {
			t.Errorf("level %d has %d questions, want 20", level, len(questions))
		}

		seen := make(map[string]struct{}, len(questions))
		for _, q := range questions {
			if q.Expression == "" {
				t.Errorf("level %d has a question with an empty expression", level)
			}
			if _, dup := seen[q.Expression]; dup {
				t.Errorf("level %d repeats %q", level, q.Expression)
			}
			seen[q.Expression] = struct{}{}
		}
	}
}

func TestOnlyUndefinedEntryIsTan90(t *testing.T) {
	for level := 1; level <= MaxLevel; level++ {
		for _, q := range Level(level) {
			if q.Answer == nil && q.Expression != "tan(90°)" {
				t.Errorf("level %d: %q has no answer", level, q.Expression)
			}
		}
	}
}

func TestUnknownLevelReturnsNil(t *testing.T) {
	if got := Level(99); got != nil {
		t.Errorf("Level(99) = %v, want nil", got)
	}
}
