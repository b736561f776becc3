package dto

import (
	"time"

	"examprep_backend/internals/features/sessions/practice/model"
)

// ============================
// Request DTOs
// ============================
type CreatePracticeSessionRequest struct {
	Category         string `json:"category" validate:"required"` // id or slug
	QuestionCount    int    `json:"question_count" validate:"omitempty,min=1,max=200"`
	TimeLimitMinutes int    `json:"time_limit_minutes" validate:"omitempty,min=1,max=600"`
}

type SubmitPracticeAnswerRequest struct {
	QuestionID       string `json:"question_id" validate:"required,uuid"`
	UserAnswer       string `json:"user_answer" validate:"required"`
	TimeSpentSeconds int    `json:"time_spent_seconds" validate:"omitempty,min=0"`
}

// ============================
// Response DTO
// ============================
type PracticeSessionDTO struct {
	PracticeSessionID         string                  `json:"practice_session_id"`
	PracticeSessionCategoryID string                  `json:"practice_session_category_id"`
	PracticeSessionStatus     string                  `json:"practice_session_status"`
	PracticeSessionTotalQuestions int                 `json:"practice_session_total_questions"`
	PracticeSessionTimeLimitMinutes int               `json:"practice_session_time_limit_minutes"`
	PracticeSessionQuestions  []model.PracticeAttempt `json:"practice_session_questions"`
	PracticeSessionAttempted  int                     `json:"practice_session_attempted"`
	PracticeSessionCorrect    int                     `json:"practice_session_correct"`
	PracticeSessionIncorrect  int                     `json:"practice_session_incorrect"`
	PracticeSessionSkipped    int                     `json:"practice_session_skipped"`
	PracticeSessionPercentage float64                 `json:"practice_session_percentage"`
	PracticeSessionTimeSpentSeconds int               `json:"practice_session_time_spent_seconds"`
	PracticeSessionStartedAt  time.Time               `json:"practice_session_started_at"`
	PracticeSessionCompletedAt *time.Time             `json:"practice_session_completed_at,omitempty"`
}

func ToPracticeSessionDTO(m model.PracticeSessionModel) PracticeSessionDTO {
	return PracticeSessionDTO{
		PracticeSessionID:               m.PracticeSessionID,
		PracticeSessionCategoryID:       m.PracticeSessionCategoryID,
		PracticeSessionStatus:           m.PracticeSessionStatus,
		PracticeSessionTotalQuestions:   m.PracticeSessionTotalQuestions,
		PracticeSessionTimeLimitMinutes: m.PracticeSessionTimeLimitMinutes,
		PracticeSessionQuestions:        m.PracticeSessionQuestions,
		PracticeSessionAttempted:        m.PracticeSessionAttempted,
		PracticeSessionCorrect:          m.PracticeSessionCorrect,
		PracticeSessionIncorrect:        m.PracticeSessionIncorrect,
		PracticeSessionSkipped:          m.PracticeSessionSkipped,
		PracticeSessionPercentage:       m.PracticeSessionPercentage,
		PracticeSessionTimeSpentSeconds: m.PracticeSessionTimeSpentSeconds,
		PracticeSessionStartedAt:        m.PracticeSessionStartedAt,
		PracticeSessionCompletedAt:      m.PracticeSessionCompletedAt,
	}
}
