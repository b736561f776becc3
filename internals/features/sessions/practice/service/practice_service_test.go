package service

import (
	"testing"

	"examprep_backend/internals/features/sessions/practice/model"
	"examprep_backend/internals/features/sessions/scoring"
)

// Answering three questions correctly, one wrongly, and leaving one blank
// must finalize at 60 percent with the tallies a completion feeds into the
// statistics aggregator.
func TestRecomputeFiveQuestionSession(t *testing.T) {
	correct := "Paris"
	attempts := []model.PracticeAttempt{}
	for i := 0; i < 3; i++ {
		scored := scoring.Score(correct, correct, 1, 0)
		attempts = append(attempts, model.PracticeAttempt{
			QuestionID: "q", UserAnswer: correct, IsCorrect: scored.IsCorrect, TimeSpentSeconds: 30,
		})
	}
	scored := scoring.Score("London", correct, 1, 0)
	attempts = append(attempts, model.PracticeAttempt{
		QuestionID: "q", UserAnswer: "London", IsCorrect: scored.IsCorrect, TimeSpentSeconds: 45,
	})
	attempts = append(attempts, model.PracticeAttempt{QuestionID: "q"})

	counts, timeSpent := recompute(attempts)
	if counts.Total != 5 || counts.Attempted != 4 || counts.Correct != 3 || counts.Incorrect != 1 || counts.Skipped != 1 {
		t.Fatalf("counts = %+v", counts)
	}
	if got := counts.Percentage(); got != 60 {
		t.Fatalf("percentage = %v, want 60", got)
	}
	if timeSpent != 135 {
		t.Fatalf("time spent = %d, want 135", timeSpent)
	}
}

// Resubmitting overwrites the attempt; recomputing from the full list must
// not double count.
func TestRecomputeAfterOverwrite(t *testing.T) {
	attempts := []model.PracticeAttempt{
		{QuestionID: "q1", UserAnswer: "wrong", IsCorrect: false, TimeSpentSeconds: 20},
		{QuestionID: "q2"},
	}
	counts, _ := recompute(attempts)
	if counts.Incorrect != 1 || counts.Correct != 0 {
		t.Fatalf("before overwrite: %+v", counts)
	}

	attempts[0].UserAnswer = "right"
	attempts[0].IsCorrect = true
	attempts[0].TimeSpentSeconds = 35

	counts, timeSpent := recompute(attempts)
	if counts.Total != 2 || counts.Attempted != 1 || counts.Correct != 1 || counts.Incorrect != 0 || counts.Skipped != 1 {
		t.Fatalf("after overwrite: %+v", counts)
	}
	if timeSpent != 35 {
		t.Fatalf("time spent = %d, want 35", timeSpent)
	}
}
