package scoring

import (
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestScoreEmptyAnswerIsSkip(t *testing.T) {
	got := Score("", "Paris", 2, 0.5)
	if got.Attempted || got.IsCorrect || got.MarksDelta != 0 {
		t.Fatalf("empty answer must score zero, got %+v", got)
	}
}

func TestScoreExactEquality(t *testing.T) {
	got := Score("Paris", "Paris", 2, 0.5)
	if !got.Attempted || !got.IsCorrect || got.MarksDelta != 2 {
		t.Fatalf("correct answer: got %+v", got)
	}

	// Comparison is case sensitive exact text match.
	got = Score("paris", "Paris", 2, 0.5)
	if !got.Attempted || got.IsCorrect {
		t.Fatalf("case mismatch must be incorrect, got %+v", got)
	}
}

func TestScoreNegativeMarking(t *testing.T) {
	got := Score("London", "Paris", 2, 0.5)
	if got.MarksDelta != -1 {
		t.Fatalf("incorrect with ratio 0.5 must cost -1, got %v", got.MarksDelta)
	}

	// ratio 0 means no penalty
	got = Score("London", "Paris", 2, 0)
	if got.MarksDelta != 0 {
		t.Fatalf("incorrect with ratio 0 must cost 0, got %v", got.MarksDelta)
	}
}

func TestScoreNetExample(t *testing.T) {
	// one correct, one wrong, one skipped at 2 marks and 0.25 ratio: 2 - 0.5 + 0 = 1.5
	total := 0.0
	total += Score("A", "A", 2, 0.25).MarksDelta
	total += Score("B", "A", 2, 0.25).MarksDelta
	total += Score("", "A", 2, 0.25).MarksDelta
	if total != 1.5 {
		t.Fatalf("net marks = %v, want 1.5", total)
	}
}

func TestCountsAccumulate(t *testing.T) {
	var c Counts
	c.Accumulate(Score("A", "A", 1, 0))
	c.Accumulate(Score("B", "A", 1, 0))
	c.Accumulate(Score("", "A", 1, 0))

	if c.Total != 3 || c.Attempted != 2 || c.Correct != 1 || c.Incorrect != 1 || c.Skipped != 1 {
		t.Fatalf("counts = %+v", c)
	}
	if c.Attempted+c.Skipped != c.Total {
		t.Fatalf("attempted+skipped must equal total: %+v", c)
	}
	if got := c.Percentage(); got < 33.3 || got > 33.4 {
		t.Fatalf("percentage = %v", got)
	}
}

func TestCountsPercentageEmpty(t *testing.T) {
	var c Counts
	if c.Percentage() != 0 {
		t.Fatalf("empty counts must yield 0 percent")
	}
}

func TestSampleWithoutReplacement(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	got := SampleWithoutReplacement(pool, 5)
	if len(got) != 5 {
		t.Fatalf("sample size = %d, want 5", len(got))
	}
	seen := map[string]bool{}
	for _, id := range got {
		if seen[id] {
			t.Fatalf("duplicate id %q in sample", id)
		}
		seen[id] = true
	}

	// n >= len(pool) returns every element exactly once
	all := SampleWithoutReplacement(pool, 20)
	if len(all) != len(pool) {
		t.Fatalf("oversized sample returned %d ids, want %d", len(all), len(pool))
	}
	sort.Strings(all)
	for i, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		if all[i] != id {
			t.Fatalf("oversized sample missing %q", id)
		}
	}

	// original pool order untouched
	if pool[0] != "a" || pool[7] != "h" {
		t.Fatalf("pool mutated: %v", pool)
	}
}

func TestShuffleInPlaceKeepsElements(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	ShuffleInPlace(items)
	sort.Ints(items)
	for i, v := range items {
		if v != i+1 {
			t.Fatalf("shuffle lost elements: %v", items)
		}
	}
}

func TestEnsureInProgress(t *testing.T) {
	if err := EnsureInProgress(StatusInProgress, "Practice"); err != nil {
		t.Fatalf("in_progress must pass the guard, got %v", err)
	}

	for _, status := range []string{StatusNotStarted, StatusCompleted, StatusAbandoned} {
		err := EnsureInProgress(status, "Exam")
		if err == nil {
			t.Fatalf("status %q must be rejected", status)
		}
		fe, ok := err.(*fiber.Error)
		if !ok || fe.Code != fiber.StatusConflict {
			t.Fatalf("status %q: got %v, want a 409", status, err)
		}
		if fe.Message != "Exam session is not in progress" {
			t.Fatalf("status %q: message %q", status, fe.Message)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(StatusNotStarted) || IsTerminal(StatusInProgress) {
		t.Fatal("active statuses must not be terminal")
	}
	if !IsTerminal(StatusCompleted) || !IsTerminal(StatusAbandoned) {
		t.Fatal("completed and abandoned must be terminal")
	}
}
