package service

import (
	"testing"
)

func TestSessionTallyAddAssociative(t *testing.T) {
	a := SessionTally{Questions: 5, Attempted: 4, Correct: 3, Incorrect: 1, Skipped: 1, TimeSpentSeconds: 300}
	b := SessionTally{Questions: 10, Attempted: 10, Correct: 7, Incorrect: 3, TimeSpentSeconds: 900}
	c := SessionTally{Questions: 3, Attempted: 1, Correct: 1, Skipped: 2, TimeSpentSeconds: 60}

	left := a.Add(b).Add(c)
	right := a.Add(b.Add(c))
	if left != right {
		t.Fatalf("(a+b)+c = %+v, a+(b+c) = %+v", left, right)
	}
	if swapped := c.Add(a).Add(b); swapped != left {
		t.Fatalf("fold order changed the total: %+v vs %+v", swapped, left)
	}

	if left.Questions != 18 || left.Attempted != 15 || left.Correct != 11 ||
		left.Incorrect != 4 || left.Skipped != 3 || left.TimeSpentSeconds != 1260 {
		t.Fatalf("summed tally = %+v", left)
	}
}

// The derived fields are functions of the summed counters, so the profile a
// user ends up with cannot depend on completion order.
func TestDerivedFieldsOrderIndependent(t *testing.T) {
	a := SessionTally{Questions: 5, Attempted: 5, Correct: 4, Incorrect: 1, TimeSpentSeconds: 250}
	b := SessionTally{Questions: 5, Attempted: 3, Correct: 1, Incorrect: 2, Skipped: 2, TimeSpentSeconds: 400}

	derive := func(total SessionTally, sessions int) (float64, int) {
		acc := Accuracy(total.Correct, total.Attempted)
		points := ComputeRankingPoints(RankingInputs{
			PracticeSessions:       sessions,
			OverallAccuracyPercent: acc,
			QuestionsAttempted:     total.Attempted,
			TimeSpentSeconds:       total.TimeSpentSeconds,
		})
		return acc, points
	}

	accAB, pointsAB := derive(a.Add(b), 2)
	accBA, pointsBA := derive(b.Add(a), 2)
	if accAB != accBA || pointsAB != pointsBA {
		t.Fatalf("order dependent: %v/%d vs %v/%d", accAB, pointsAB, accBA, pointsBA)
	}

	if accAB != 62.5 {
		t.Fatalf("accuracy = %v, want 62.5", accAB)
	}
}
