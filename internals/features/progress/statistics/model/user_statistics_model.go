package model

import (
	"time"

	"gorm.io/datatypes"
)

type UserStatisticsModel struct {
	UserStatsUserID string `gorm:"column:user_stats_user_id;primaryKey;type:uuid" json:"user_stats_user_id"`

	UserStatsPracticeSessions  int `gorm:"column:user_stats_practice_sessions;default:0" json:"user_stats_practice_sessions"`
	UserStatsPracticeQuestions int `gorm:"column:user_stats_practice_questions;default:0" json:"user_stats_practice_questions"`
	UserStatsPracticeAttempted int `gorm:"column:user_stats_practice_attempted;default:0" json:"user_stats_practice_attempted"`
	UserStatsPracticeCorrect   int `gorm:"column:user_stats_practice_correct;default:0" json:"user_stats_practice_correct"`
	UserStatsPracticeIncorrect int `gorm:"column:user_stats_practice_incorrect;default:0" json:"user_stats_practice_incorrect"`
	UserStatsPracticeSkipped   int `gorm:"column:user_stats_practice_skipped;default:0" json:"user_stats_practice_skipped"`

	UserStatsExamSessions  int `gorm:"column:user_stats_exam_sessions;default:0" json:"user_stats_exam_sessions"`
	UserStatsExamQuestions int `gorm:"column:user_stats_exam_questions;default:0" json:"user_stats_exam_questions"`
	UserStatsExamAttempted int `gorm:"column:user_stats_exam_attempted;default:0" json:"user_stats_exam_attempted"`
	UserStatsExamCorrect   int `gorm:"column:user_stats_exam_correct;default:0" json:"user_stats_exam_correct"`
	UserStatsExamIncorrect int `gorm:"column:user_stats_exam_incorrect;default:0" json:"user_stats_exam_incorrect"`

	UserStatsCurrentStreak    int        `gorm:"column:user_stats_current_streak;default:0" json:"user_stats_current_streak"`
	UserStatsLongestStreak    int        `gorm:"column:user_stats_longest_streak;default:0" json:"user_stats_longest_streak"`
	UserStatsLastActivityDate *datatypes.Date `gorm:"column:user_stats_last_activity_date;type:date" json:"user_stats_last_activity_date"`

	UserStatsTimeSpentSeconds int `gorm:"column:user_stats_time_spent_seconds;default:0" json:"user_stats_time_spent_seconds"`

	// Derived, recomputed from the totals on every update — never incremented
	UserStatsPracticeAccuracy float64 `gorm:"column:user_stats_practice_accuracy;default:0" json:"user_stats_practice_accuracy"`
	UserStatsExamAccuracy     float64 `gorm:"column:user_stats_exam_accuracy;default:0" json:"user_stats_exam_accuracy"`
	UserStatsOverallAccuracy  float64 `gorm:"column:user_stats_overall_accuracy;default:0" json:"user_stats_overall_accuracy"`
	UserStatsRankingPoints    int     `gorm:"column:user_stats_ranking_points;default:0;index" json:"user_stats_ranking_points"`

	UserStatsLastUpdated time.Time `gorm:"column:user_stats_last_updated;autoUpdateTime" json:"user_stats_last_updated"`
	UserStatsCreatedAt   time.Time `gorm:"column:user_stats_created_at;autoCreateTime" json:"user_stats_created_at"`
}

func (UserStatisticsModel) TableName() string {
	return "user_statistics"
}
