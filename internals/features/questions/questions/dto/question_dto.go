package dto

import (
	"examprep_backend/internals/features/questions/questions/model"
	"time"
)

// ============================
// Response DTOs
// ============================

// Full view, for admins and post-session review.
type QuestionDTO struct {
	QuestionID            string                 `json:"question_id"`
	QuestionCategoryID    string                 `json:"question_category_id"`
	QuestionText          string                 `json:"question_text"`
	QuestionOptions       []model.QuestionOption `json:"question_options"`
	QuestionCorrectOption int                    `json:"question_correct_option"`
	QuestionCorrectAnswer string                 `json:"question_correct_answer"`
	QuestionExplanation   string                 `json:"question_explanation"`
	QuestionDifficulty    string                 `json:"question_difficulty"`
	QuestionTopicSlug     string                 `json:"question_topic_slug"`
	QuestionSource        string                 `json:"question_source"`
	QuestionIsActive      bool                   `json:"question_is_active"`
	QuestionCreatedAt     time.Time              `json:"question_created_at"`
}

// Public view, served while a session is live (no answer leak).
type QuestionPublicDTO struct {
	QuestionID         string                 `json:"question_id"`
	QuestionCategoryID string                 `json:"question_category_id"`
	QuestionText       string                 `json:"question_text"`
	QuestionOptions    []model.QuestionOption `json:"question_options"`
	QuestionDifficulty string                 `json:"question_difficulty"`
	QuestionTopicSlug  string                 `json:"question_topic_slug"`
}

// ============================
// Create Request DTO
// ============================
type CreateQuestionRequest struct {
	QuestionCategoryID    string                 `json:"question_category_id" validate:"required,uuid"`
	QuestionText          string                 `json:"question_text" validate:"required,min=3"`
	QuestionOptions       []model.QuestionOption `json:"question_options" validate:"required,min=2,max=10,dive"`
	QuestionCorrectOption int                    `json:"question_correct_option" validate:"required,min=1"`
	QuestionExplanation   string                 `json:"question_explanation" validate:"omitempty"`
	QuestionDifficulty    string                 `json:"question_difficulty" validate:"omitempty,oneof=easy medium hard"`
	QuestionTopicSlug     string                 `json:"question_topic_slug" validate:"omitempty,max=100"`
	QuestionSource        string                 `json:"question_source" validate:"omitempty,max=100"`
}

// ============================
// Update Request DTO
// ============================
type UpdateQuestionRequest struct {
	QuestionText          *string                 `json:"question_text" validate:"omitempty,min=3"`
	QuestionOptions       *[]model.QuestionOption `json:"question_options" validate:"omitempty,min=2,max=10,dive"`
	QuestionCorrectOption *int                    `json:"question_correct_option" validate:"omitempty,min=1"`
	QuestionExplanation   *string                 `json:"question_explanation" validate:"omitempty"`
	QuestionDifficulty    *string                 `json:"question_difficulty" validate:"omitempty,oneof=easy medium hard"`
	QuestionTopicSlug     *string                 `json:"question_topic_slug" validate:"omitempty,max=100"`
	QuestionIsActive      *bool                   `json:"question_is_active" validate:"omitempty"`
}

// ============================
// Converters
// ============================
func ToQuestionDTO(m model.QuestionModel) QuestionDTO {
	return QuestionDTO{
		QuestionID:            m.QuestionID,
		QuestionCategoryID:    m.QuestionCategoryID,
		QuestionText:          m.QuestionText,
		QuestionOptions:       m.QuestionOptions,
		QuestionCorrectOption: m.QuestionCorrectOption,
		QuestionCorrectAnswer: m.QuestionCorrectAnswer,
		QuestionExplanation:   m.QuestionExplanation,
		QuestionDifficulty:    m.QuestionDifficulty,
		QuestionTopicSlug:     m.QuestionTopicSlug,
		QuestionSource:        m.QuestionSource,
		QuestionIsActive:      m.QuestionIsActive,
		QuestionCreatedAt:     m.QuestionCreatedAt,
	}
}

func ToQuestionPublicDTO(m model.QuestionModel) QuestionPublicDTO {
	return QuestionPublicDTO{
		QuestionID:         m.QuestionID,
		QuestionCategoryID: m.QuestionCategoryID,
		QuestionText:       m.QuestionText,
		QuestionOptions:    m.QuestionOptions,
		QuestionDifficulty: m.QuestionDifficulty,
		QuestionTopicSlug:  m.QuestionTopicSlug,
	}
}
