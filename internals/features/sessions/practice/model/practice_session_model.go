package model

import (
	"time"
)

// PracticeAttempt is one per-question record embedded in the session row.
// The list is pre-populated with empty answers at session creation and
// mutated in place as answers arrive.
type PracticeAttempt struct {
	QuestionID       string `json:"question_id"`
	UserAnswer       string `json:"user_answer"`
	IsCorrect        bool   `json:"is_correct"`
	TimeSpentSeconds int    `json:"time_spent_seconds"`
}

type PracticeSessionModel struct {
	PracticeSessionID         string            `gorm:"column:practice_session_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"practice_session_id"`
	PracticeSessionUserID     string            `gorm:"column:practice_session_user_id;type:uuid;not null;index" json:"practice_session_user_id"`
	PracticeSessionCategoryID string            `gorm:"column:practice_session_category_id;type:uuid;not null" json:"practice_session_category_id"`
	PracticeSessionStatus     string            `gorm:"column:practice_session_status;type:varchar(20);not null;default:'in_progress'" json:"practice_session_status"`
	PracticeSessionTotalQuestions int           `gorm:"column:practice_session_total_questions;not null" json:"practice_session_total_questions"`
	PracticeSessionTimeLimitMinutes int         `gorm:"column:practice_session_time_limit_minutes" json:"practice_session_time_limit_minutes"`
	PracticeSessionQuestions  []PracticeAttempt `gorm:"column:practice_session_questions;type:jsonb;serializer:json" json:"practice_session_questions"`
	PracticeSessionAttempted  int               `gorm:"column:practice_session_attempted;default:0" json:"practice_session_attempted"`
	PracticeSessionCorrect    int               `gorm:"column:practice_session_correct;default:0" json:"practice_session_correct"`
	PracticeSessionIncorrect  int               `gorm:"column:practice_session_incorrect;default:0" json:"practice_session_incorrect"`
	PracticeSessionSkipped    int               `gorm:"column:practice_session_skipped;default:0" json:"practice_session_skipped"`
	PracticeSessionPercentage float64           `gorm:"column:practice_session_percentage;default:0" json:"practice_session_percentage"`
	PracticeSessionTimeSpentSeconds int         `gorm:"column:practice_session_time_spent_seconds;default:0" json:"practice_session_time_spent_seconds"`
	PracticeSessionStartedAt  time.Time         `gorm:"column:practice_session_started_at;autoCreateTime" json:"practice_session_started_at"`
	PracticeSessionCompletedAt *time.Time       `gorm:"column:practice_session_completed_at" json:"practice_session_completed_at"`
	PracticeSessionCreatedAt  time.Time         `gorm:"column:practice_session_created_at;autoCreateTime" json:"practice_session_created_at"`
	PracticeSessionUpdatedAt  time.Time         `gorm:"column:practice_session_updated_at;autoUpdateTime" json:"practice_session_updated_at"`
}

func (PracticeSessionModel) TableName() string {
	return "practice_sessions"
}
