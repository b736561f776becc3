package dto

import (
	"time"

	"examprep_backend/internals/features/sessions/exams/model"
	"examprep_backend/internals/features/sessions/scoring"
)

// ============================
// Request DTOs
// ============================
type ExamDistributionRequest struct {
	Category         string  `json:"category" validate:"required"` // id or slug
	Count            int     `json:"count" validate:"required,min=1,max=200"`
	MarksPerQuestion float64 `json:"marks_per_question" validate:"required,gt=0"`
}

type CreateExamSessionRequest struct {
	ExamName        string                    `json:"exam_name" validate:"required,min=2,max=255"`
	TotalMarks      float64                   `json:"total_marks" validate:"required,gt=0"`
	DurationMinutes int                       `json:"duration_minutes" validate:"required,min=1,max=600"`
	Distribution    []ExamDistributionRequest `json:"distribution" validate:"required,min=1,dive"`
	NegativeMarking bool                      `json:"negative_marking"`
	NegativeRatio   float64                   `json:"negative_ratio" validate:"omitempty,gte=0,lte=1"`
}

type SubmitExamAnswerRequest struct {
	QuestionID       string `json:"question_id" validate:"required,uuid"`
	UserAnswer       string `json:"user_answer" validate:"required"`
	TimeSpentSeconds int    `json:"time_spent_seconds" validate:"omitempty,min=0"`
}

// ============================
// Response DTOs
// ============================

// ExamAttemptDTO hides the snapshotted correct answer while the exam is
// live; it is filled in once the session reaches a terminal state.
type ExamAttemptDTO struct {
	QuestionID       string  `json:"question_id"`
	CategoryID       string  `json:"category_id"`
	MarksPerQuestion float64 `json:"marks_per_question"`
	CorrectAnswer    string  `json:"correct_answer,omitempty"`
	UserAnswer       string  `json:"user_answer"`
	IsCorrect        bool    `json:"is_correct"`
	MarksObtained    float64 `json:"marks_obtained"`
	TimeSpentSeconds int     `json:"time_spent_seconds"`
}

type ExamSessionDTO struct {
	ExamSessionID              string                        `json:"exam_session_id"`
	ExamSessionName            string                        `json:"exam_session_name"`
	ExamSessionStatus          string                        `json:"exam_session_status"`
	ExamSessionTotalMarks      float64                       `json:"exam_session_total_marks"`
	ExamSessionDurationMinutes int                           `json:"exam_session_duration_minutes"`
	ExamSessionTotalQuestions  int                           `json:"exam_session_total_questions"`
	ExamSessionNegativeMarking bool                          `json:"exam_session_negative_marking"`
	ExamSessionNegativeRatio   float64                       `json:"exam_session_negative_ratio"`
	ExamSessionDistribution    []model.ExamDistributionEntry `json:"exam_session_distribution"`
	ExamSessionQuestionsData   []ExamAttemptDTO              `json:"exam_session_questions_data"`
	ExamSessionAttempted       int                           `json:"exam_session_attempted"`
	ExamSessionCorrect         int                           `json:"exam_session_correct"`
	ExamSessionIncorrect       int                           `json:"exam_session_incorrect"`
	ExamSessionSkipped         int                           `json:"exam_session_skipped"`
	ExamSessionMarksObtained   float64                       `json:"exam_session_marks_obtained"`
	ExamSessionPercentage      float64                       `json:"exam_session_percentage"`
	ExamSessionTimeSpentSeconds int                          `json:"exam_session_time_spent_seconds"`
	ExamSessionStartedAt       *time.Time                    `json:"exam_session_started_at,omitempty"`
	ExamSessionCompletedAt     *time.Time                    `json:"exam_session_completed_at,omitempty"`
	ExamSessionCreatedAt       time.Time                     `json:"exam_session_created_at"`
}

func ToExamSessionDTO(m model.ExamSessionModel) ExamSessionDTO {
	revealAnswers := scoring.IsTerminal(m.ExamSessionStatus)

	attempts := make([]ExamAttemptDTO, 0, len(m.ExamSessionQuestionsData))
	for _, a := range m.ExamSessionQuestionsData {
		d := ExamAttemptDTO{
			QuestionID:       a.QuestionID,
			CategoryID:       a.CategoryID,
			MarksPerQuestion: a.MarksPerQuestion,
			UserAnswer:       a.UserAnswer,
			IsCorrect:        a.IsCorrect,
			MarksObtained:    a.MarksObtained,
			TimeSpentSeconds: a.TimeSpentSeconds,
		}
		if revealAnswers {
			d.CorrectAnswer = a.CorrectAnswer
		}
		attempts = append(attempts, d)
	}

	return ExamSessionDTO{
		ExamSessionID:               m.ExamSessionID,
		ExamSessionName:             m.ExamSessionName,
		ExamSessionStatus:           m.ExamSessionStatus,
		ExamSessionTotalMarks:       m.ExamSessionTotalMarks,
		ExamSessionDurationMinutes:  m.ExamSessionDurationMinutes,
		ExamSessionTotalQuestions:   m.ExamSessionTotalQuestions,
		ExamSessionNegativeMarking:  m.ExamSessionNegativeMarking,
		ExamSessionNegativeRatio:    m.ExamSessionNegativeRatio,
		ExamSessionDistribution:     m.ExamSessionDistribution,
		ExamSessionQuestionsData:    attempts,
		ExamSessionAttempted:        m.ExamSessionAttempted,
		ExamSessionCorrect:          m.ExamSessionCorrect,
		ExamSessionIncorrect:        m.ExamSessionIncorrect,
		ExamSessionSkipped:          m.ExamSessionSkipped,
		ExamSessionMarksObtained:    m.ExamSessionMarksObtained,
		ExamSessionPercentage:       m.ExamSessionPercentage,
		ExamSessionTimeSpentSeconds: m.ExamSessionTimeSpentSeconds,
		ExamSessionStartedAt:        m.ExamSessionStartedAt,
		ExamSessionCompletedAt:      m.ExamSessionCompletedAt,
		ExamSessionCreatedAt:        m.ExamSessionCreatedAt,
	}
}
