package service

import (
	"math"
)

// RankingInputs are the stored counters the score formula reads. The score
// is a pure function of these — no clock, no randomness.
type RankingInputs struct {
	PracticeSessions       int
	ExamSessions           int
	OverallAccuracyPercent float64
	CurrentStreak          int
	QuestionsAttempted     int
	TimeSpentSeconds       int
}

// ComputeRankingPoints derives the composite leaderboard score:
//
//	10*practiceSessions + 20*examSessions
//	+ round(2 * overallAccuracyPercent)
//	+ 5*currentStreak
//	+ 2*floor(questionsAttempted/10)
//	+ max(0, 50 - floor(avgTimePerQuestionMinutes))
//
// Subject-scoped rows pass CurrentStreak=0 since streaks are per-user only.
func ComputeRankingPoints(in RankingInputs) int {
	points := 10*in.PracticeSessions + 20*in.ExamSessions
	points += int(math.Round(2 * in.OverallAccuracyPercent))
	points += 5 * in.CurrentStreak
	points += 2 * (in.QuestionsAttempted / 10)

	avgMinutes := 0.0
	if in.QuestionsAttempted > 0 {
		avgMinutes = float64(in.TimeSpentSeconds) / 60.0 / float64(in.QuestionsAttempted)
	}
	if speedBonus := 50 - int(math.Floor(avgMinutes)); speedBonus > 0 {
		points += speedBonus
	}

	return points
}

// Accuracy is correct/attempted as a percentage; zero attempts yield zero.
func Accuracy(correct, attempted int) float64 {
	if attempted == 0 {
		return 0
	}
	return float64(correct) / float64(attempted) * 100
}
