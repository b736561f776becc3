package dto

import (
	"time"

	"examprep_backend/internals/features/progress/statistics/model"
)

type UserStatisticsDTO struct {
	UserID string `json:"user_id"`

	PracticeSessions  int `json:"practice_sessions"`
	PracticeQuestions int `json:"practice_questions"`
	PracticeAttempted int `json:"practice_attempted"`
	PracticeCorrect   int `json:"practice_correct"`
	PracticeIncorrect int `json:"practice_incorrect"`
	PracticeSkipped   int `json:"practice_skipped"`

	ExamSessions  int `json:"exam_sessions"`
	ExamQuestions int `json:"exam_questions"`
	ExamAttempted int `json:"exam_attempted"`
	ExamCorrect   int `json:"exam_correct"`
	ExamIncorrect int `json:"exam_incorrect"`

	CurrentStreak    int        `json:"current_streak"`
	LongestStreak    int        `json:"longest_streak"`
	LastActivityDate *time.Time `json:"last_activity_date"`

	TimeSpentSeconds int `json:"time_spent_seconds"`

	PracticeAccuracy float64 `json:"practice_accuracy"`
	ExamAccuracy     float64 `json:"exam_accuracy"`
	OverallAccuracy  float64 `json:"overall_accuracy"`
	RankingPoints    int     `json:"ranking_points"`

	LastUpdated time.Time `json:"last_updated"`
}

type SubjectStatisticsDTO struct {
	CategoryID string `json:"category_id"`

	PracticeSessions  int `json:"practice_sessions"`
	PracticeQuestions int `json:"practice_questions"`
	PracticeAttempted int `json:"practice_attempted"`
	PracticeCorrect   int `json:"practice_correct"`
	PracticeIncorrect int `json:"practice_incorrect"`
	PracticeSkipped   int `json:"practice_skipped"`

	ExamSessions  int `json:"exam_sessions"`
	ExamQuestions int `json:"exam_questions"`
	ExamAttempted int `json:"exam_attempted"`
	ExamCorrect   int `json:"exam_correct"`
	ExamIncorrect int `json:"exam_incorrect"`

	TimeSpentSeconds int `json:"time_spent_seconds"`

	PracticeAccuracy float64 `json:"practice_accuracy"`
	ExamAccuracy     float64 `json:"exam_accuracy"`
	OverallAccuracy  float64 `json:"overall_accuracy"`
	RankingPoints    int     `json:"ranking_points"`

	LastUpdated time.Time `json:"last_updated"`
}

// LeaderboardEntryDTO is one ranked row. Rank is positional within the
// returned page, starting at 1.
type LeaderboardEntryDTO struct {
	Rank            int     `json:"rank"`
	UserID          string  `json:"user_id"`
	RankingPoints   int     `json:"ranking_points"`
	TotalSessions   int     `json:"total_sessions"`
	CurrentStreak   int     `json:"current_streak"`
	OverallAccuracy float64 `json:"overall_accuracy"`
}

func ToUserStatisticsDTO(m *model.UserStatisticsModel) UserStatisticsDTO {
	return UserStatisticsDTO{
		UserID:            m.UserStatsUserID,
		PracticeSessions:  m.UserStatsPracticeSessions,
		PracticeQuestions: m.UserStatsPracticeQuestions,
		PracticeAttempted: m.UserStatsPracticeAttempted,
		PracticeCorrect:   m.UserStatsPracticeCorrect,
		PracticeIncorrect: m.UserStatsPracticeIncorrect,
		PracticeSkipped:   m.UserStatsPracticeSkipped,
		ExamSessions:      m.UserStatsExamSessions,
		ExamQuestions:     m.UserStatsExamQuestions,
		ExamAttempted:     m.UserStatsExamAttempted,
		ExamCorrect:       m.UserStatsExamCorrect,
		ExamIncorrect:     m.UserStatsExamIncorrect,
		CurrentStreak:     m.UserStatsCurrentStreak,
		LongestStreak:     m.UserStatsLongestStreak,
		LastActivityDate:  (*time.Time)(m.UserStatsLastActivityDate),
		TimeSpentSeconds:  m.UserStatsTimeSpentSeconds,
		PracticeAccuracy:  m.UserStatsPracticeAccuracy,
		ExamAccuracy:      m.UserStatsExamAccuracy,
		OverallAccuracy:   m.UserStatsOverallAccuracy,
		RankingPoints:     m.UserStatsRankingPoints,
		LastUpdated:       m.UserStatsLastUpdated,
	}
}

func ToSubjectStatisticsDTO(m *model.SubjectStatisticsModel) SubjectStatisticsDTO {
	return SubjectStatisticsDTO{
		CategoryID:        m.SubjectStatsCategoryID,
		PracticeSessions:  m.SubjectStatsPracticeSessions,
		PracticeQuestions: m.SubjectStatsPracticeQuestions,
		PracticeAttempted: m.SubjectStatsPracticeAttempted,
		PracticeCorrect:   m.SubjectStatsPracticeCorrect,
		PracticeIncorrect: m.SubjectStatsPracticeIncorrect,
		PracticeSkipped:   m.SubjectStatsPracticeSkipped,
		ExamSessions:      m.SubjectStatsExamSessions,
		ExamQuestions:     m.SubjectStatsExamQuestions,
		ExamAttempted:     m.SubjectStatsExamAttempted,
		ExamCorrect:       m.SubjectStatsExamCorrect,
		ExamIncorrect:     m.SubjectStatsExamIncorrect,
		TimeSpentSeconds:  m.SubjectStatsTimeSpentSeconds,
		PracticeAccuracy:  m.SubjectStatsPracticeAccuracy,
		ExamAccuracy:      m.SubjectStatsExamAccuracy,
		OverallAccuracy:   m.SubjectStatsOverallAccuracy,
		RankingPoints:     m.SubjectStatsRankingPoints,
		LastUpdated:       m.SubjectStatsLastUpdated,
	}
}

func ToLeaderboardEntryDTO(rank int, m *model.UserStatisticsModel) LeaderboardEntryDTO {
	return LeaderboardEntryDTO{
		Rank:            rank,
		UserID:          m.UserStatsUserID,
		RankingPoints:   m.UserStatsRankingPoints,
		TotalSessions:   m.UserStatsPracticeSessions + m.UserStatsExamSessions,
		CurrentStreak:   m.UserStatsCurrentStreak,
		OverallAccuracy: m.UserStatsOverallAccuracy,
	}
}
