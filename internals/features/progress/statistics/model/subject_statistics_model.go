package model

import (
	"time"
)

// SubjectStatisticsModel mirrors UserStatisticsModel scoped to one
// (user, category) pair. Streaks are tracked per user only, so the subject
// row carries none and its ranking score omits the streak term.
type SubjectStatisticsModel struct {
	SubjectStatsID         string `gorm:"column:subject_stats_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"subject_stats_id"`
	SubjectStatsUserID     string `gorm:"column:subject_stats_user_id;type:uuid;not null;uniqueIndex:idx_subject_stats_user_category" json:"subject_stats_user_id"`
	SubjectStatsCategoryID string `gorm:"column:subject_stats_category_id;type:uuid;not null;uniqueIndex:idx_subject_stats_user_category" json:"subject_stats_category_id"`

	SubjectStatsPracticeSessions  int `gorm:"column:subject_stats_practice_sessions;default:0" json:"subject_stats_practice_sessions"`
	SubjectStatsPracticeQuestions int `gorm:"column:subject_stats_practice_questions;default:0" json:"subject_stats_practice_questions"`
	SubjectStatsPracticeAttempted int `gorm:"column:subject_stats_practice_attempted;default:0" json:"subject_stats_practice_attempted"`
	SubjectStatsPracticeCorrect   int `gorm:"column:subject_stats_practice_correct;default:0" json:"subject_stats_practice_correct"`
	SubjectStatsPracticeIncorrect int `gorm:"column:subject_stats_practice_incorrect;default:0" json:"subject_stats_practice_incorrect"`
	SubjectStatsPracticeSkipped   int `gorm:"column:subject_stats_practice_skipped;default:0" json:"subject_stats_practice_skipped"`

	SubjectStatsExamSessions  int `gorm:"column:subject_stats_exam_sessions;default:0" json:"subject_stats_exam_sessions"`
	SubjectStatsExamQuestions int `gorm:"column:subject_stats_exam_questions;default:0" json:"subject_stats_exam_questions"`
	SubjectStatsExamAttempted int `gorm:"column:subject_stats_exam_attempted;default:0" json:"subject_stats_exam_attempted"`
	SubjectStatsExamCorrect   int `gorm:"column:subject_stats_exam_correct;default:0" json:"subject_stats_exam_correct"`
	SubjectStatsExamIncorrect int `gorm:"column:subject_stats_exam_incorrect;default:0" json:"subject_stats_exam_incorrect"`

	SubjectStatsTimeSpentSeconds int `gorm:"column:subject_stats_time_spent_seconds;default:0" json:"subject_stats_time_spent_seconds"`

	SubjectStatsPracticeAccuracy float64 `gorm:"column:subject_stats_practice_accuracy;default:0" json:"subject_stats_practice_accuracy"`
	SubjectStatsExamAccuracy     float64 `gorm:"column:subject_stats_exam_accuracy;default:0" json:"subject_stats_exam_accuracy"`
	SubjectStatsOverallAccuracy  float64 `gorm:"column:subject_stats_overall_accuracy;default:0" json:"subject_stats_overall_accuracy"`
	SubjectStatsRankingPoints    int     `gorm:"column:subject_stats_ranking_points;default:0" json:"subject_stats_ranking_points"`

	SubjectStatsLastUpdated time.Time `gorm:"column:subject_stats_last_updated;autoUpdateTime" json:"subject_stats_last_updated"`
	SubjectStatsCreatedAt   time.Time `gorm:"column:subject_stats_created_at;autoCreateTime" json:"subject_stats_created_at"`
}

func (SubjectStatisticsModel) TableName() string {
	return "subject_statistics"
}
