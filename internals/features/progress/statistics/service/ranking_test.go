package service

import (
	"testing"
)

func TestComputeRankingPointsZeroProfile(t *testing.T) {
	// A fresh profile still earns the full speed bonus since avg time is 0.
	got := ComputeRankingPoints(RankingInputs{})
	if got != 50 {
		t.Fatalf("zero profile = %d points, want 50", got)
	}
}

func TestComputeRankingPointsFormula(t *testing.T) {
	in := RankingInputs{
		PracticeSessions:       3,  // 30
		ExamSessions:           2,  // 40
		OverallAccuracyPercent: 75, // round(150) = 150
		CurrentStreak:          4,  // 20
		QuestionsAttempted:     25, // 2*floor(25/10) = 4
		TimeSpentSeconds:       25 * 60 * 2,
	}
	// avg 2 min/question: speed bonus 50 - 2 = 48
	want := 30 + 40 + 150 + 20 + 4 + 48
	if got := ComputeRankingPoints(in); got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
}

func TestComputeRankingPointsSpeedBonusFloorsAtZero(t *testing.T) {
	slow := RankingInputs{
		QuestionsAttempted: 1,
		TimeSpentSeconds:   100 * 60, // 100 minutes per question
	}
	if got := ComputeRankingPoints(slow); got != 0 {
		t.Fatalf("slow profile = %d, want 0 (no negative speed term)", got)
	}
}

func TestComputeRankingPointsAccuracyRounds(t *testing.T) {
	a := ComputeRankingPoints(RankingInputs{OverallAccuracyPercent: 33.4})
	b := ComputeRankingPoints(RankingInputs{OverallAccuracyPercent: 33.1})
	// round(66.8)=67 vs round(66.2)=66
	if a-b != 1 {
		t.Fatalf("rounding difference = %d, want 1", a-b)
	}
}

func TestComputeRankingPointsDeterministic(t *testing.T) {
	in := RankingInputs{PracticeSessions: 5, ExamSessions: 1, OverallAccuracyPercent: 80, CurrentStreak: 2, QuestionsAttempted: 40, TimeSpentSeconds: 2400}
	first := ComputeRankingPoints(in)
	for i := 0; i < 10; i++ {
		if got := ComputeRankingPoints(in); got != first {
			t.Fatalf("score changed between calls: %d vs %d", got, first)
		}
	}
}

func TestAccuracy(t *testing.T) {
	if got := Accuracy(0, 0); got != 0 {
		t.Fatalf("zero attempts must yield 0, got %v", got)
	}
	if got := Accuracy(3, 4); got != 75 {
		t.Fatalf("3/4 = %v, want 75", got)
	}
}
