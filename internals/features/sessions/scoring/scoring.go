package scoring

import (
	"math/rand"

	"github.com/gofiber/fiber/v2"
)

// Session lifecycle states, shared by practice and exam sessions.
const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusAbandoned  = "abandoned"
)

// IsTerminal reports whether a status allows no further mutation.
func IsTerminal(status string) bool {
	return status == StatusCompleted || status == StatusAbandoned
}

// EnsureInProgress guards the mutating transitions: only an in_progress
// session may take answers, complete, or abandon. Anything else is a 409.
func EnsureInProgress(status, sessionKind string) error {
	if status != StatusInProgress {
		return fiber.NewError(fiber.StatusConflict, sessionKind+" session is not in progress")
	}
	return nil
}

// ScoredAttempt is the outcome of scoring one answer. Practice sessions use
// marks=1, ratio=0 so MarksDelta degenerates to +1/0; exams pass their
// per-category marks and negative-marking ratio.
type ScoredAttempt struct {
	Attempted  bool
	IsCorrect  bool
	MarksDelta float64
}

// Score applies the answer-equality rule: exact string equality against the
// canonical answer text. Matching by text rather than option id mirrors the
// stored data files; duplicated option texts therefore all count as correct.
func Score(userAnswer, correctAnswer string, marksPerQuestion, negativeRatio float64) ScoredAttempt {
	if userAnswer == "" {
		return ScoredAttempt{}
	}
	if userAnswer == correctAnswer {
		return ScoredAttempt{Attempted: true, IsCorrect: true, MarksDelta: marksPerQuestion}
	}
	return ScoredAttempt{Attempted: true, IsCorrect: false, MarksDelta: -marksPerQuestion * negativeRatio}
}

// Counts are the aggregate tallies recomputed from a full attempt list.
type Counts struct {
	Total     int
	Attempted int
	Correct   int
	Incorrect int
	Skipped   int
}

// Accumulate folds one scored attempt into the counts.
func (c *Counts) Accumulate(s ScoredAttempt) {
	c.Total++
	if !s.Attempted {
		c.Skipped++
		return
	}
	c.Attempted++
	if s.IsCorrect {
		c.Correct++
	} else {
		c.Incorrect++
	}
}

// Percentage is correct/total * 100; zero totals yield zero.
func (c Counts) Percentage() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Correct) / float64(c.Total) * 100
}

// SampleWithoutReplacement draws n distinct ids uniformly from pool
// (shuffle-then-slice). The pool itself is left untouched.
func SampleWithoutReplacement(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

// ShuffleInPlace randomizes order so per-category grouping is not revealed.
func ShuffleInPlace[T any](items []T) {
	rand.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
