package model

import (
	"time"
)

// ExamDistributionEntry is one per-category slice of the exam blueprint.
// CategoryRef preserves the reference exactly as the caller supplied it
// (id or slug); CategoryID is the resolved key used for drawing.
type ExamDistributionEntry struct {
	CategoryRef      string  `json:"category_ref"`
	CategoryID       string  `json:"category_id"`
	Count            int     `json:"count"`
	MarksPerQuestion float64 `json:"marks_per_question"`
}

// ExamAttempt is one assigned question with its mutable answer state.
// It snapshots the canonical answer and the drawing category's mark value at
// generation time, so scoring never depends on later question edits.
type ExamAttempt struct {
	QuestionID       string  `json:"question_id"`
	CategoryID       string  `json:"category_id"`
	MarksPerQuestion float64 `json:"marks_per_question"`
	CorrectAnswer    string  `json:"correct_answer"`
	UserAnswer       string  `json:"user_answer"`
	IsCorrect        bool    `json:"is_correct"`
	MarksObtained    float64 `json:"marks_obtained"`
	TimeSpentSeconds int     `json:"time_spent_seconds"`
}

type ExamSessionModel struct {
	ExamSessionID             string                  `gorm:"column:exam_session_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"exam_session_id"`
	ExamSessionUserID         string                  `gorm:"column:exam_session_user_id;type:uuid;not null;index" json:"exam_session_user_id"`
	ExamSessionName           string                  `gorm:"column:exam_session_name;type:varchar(255);not null" json:"exam_session_name"`
	ExamSessionStatus         string                  `gorm:"column:exam_session_status;type:varchar(20);not null;default:'not_started'" json:"exam_session_status"`
	ExamSessionTotalMarks     float64                 `gorm:"column:exam_session_total_marks;not null" json:"exam_session_total_marks"`
	ExamSessionDurationMinutes int                    `gorm:"column:exam_session_duration_minutes;not null" json:"exam_session_duration_minutes"`
	ExamSessionTotalQuestions int                     `gorm:"column:exam_session_total_questions;not null" json:"exam_session_total_questions"`
	ExamSessionNegativeMarking bool                   `gorm:"column:exam_session_negative_marking;default:false" json:"exam_session_negative_marking"`
	ExamSessionNegativeRatio  float64                 `gorm:"column:exam_session_negative_ratio;default:0" json:"exam_session_negative_ratio"`
	ExamSessionDistribution   []ExamDistributionEntry `gorm:"column:exam_session_distribution;type:jsonb;serializer:json" json:"exam_session_distribution"`
	ExamSessionQuestionsData  []ExamAttempt           `gorm:"column:exam_session_questions_data;type:jsonb;serializer:json" json:"exam_session_questions_data"`
	ExamSessionAttempted      int                     `gorm:"column:exam_session_attempted;default:0" json:"exam_session_attempted"`
	ExamSessionCorrect        int                     `gorm:"column:exam_session_correct;default:0" json:"exam_session_correct"`
	ExamSessionIncorrect      int                     `gorm:"column:exam_session_incorrect;default:0" json:"exam_session_incorrect"`
	ExamSessionSkipped        int                     `gorm:"column:exam_session_skipped;default:0" json:"exam_session_skipped"`
	ExamSessionMarksObtained  float64                 `gorm:"column:exam_session_marks_obtained;default:0" json:"exam_session_marks_obtained"`
	ExamSessionPercentage     float64                 `gorm:"column:exam_session_percentage;default:0" json:"exam_session_percentage"`
	ExamSessionTimeSpentSeconds int                   `gorm:"column:exam_session_time_spent_seconds;default:0" json:"exam_session_time_spent_seconds"`
	ExamSessionStartedAt      *time.Time              `gorm:"column:exam_session_started_at" json:"exam_session_started_at"`
	ExamSessionCompletedAt    *time.Time              `gorm:"column:exam_session_completed_at" json:"exam_session_completed_at"`
	ExamSessionCreatedAt      time.Time               `gorm:"column:exam_session_created_at;autoCreateTime" json:"exam_session_created_at"`
	ExamSessionUpdatedAt      time.Time               `gorm:"column:exam_session_updated_at;autoUpdateTime" json:"exam_session_updated_at"`
}

func (ExamSessionModel) TableName() string {
	return "exam_sessions"
}
