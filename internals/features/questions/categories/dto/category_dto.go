package dto

import (
	"examprep_backend/internals/features/questions/categories/model"
	"time"
)

// ============================
// Response DTO
// ============================
type CategoryDTO struct {
	CategoryID                   string    `json:"category_id"`
	CategorySlug                 string    `json:"category_slug"`
	CategoryName                 string    `json:"category_name"`
	CategoryDescription          string    `json:"category_description"`
	CategoryDefaultQuestionCount int       `json:"category_default_question_count"`
	CategoryDefaultTimeLimit     int       `json:"category_default_time_limit_minutes"`
	CategoryQuestionCount        int       `json:"category_question_count"`
	CategoryIsActive             bool      `json:"category_is_active"`
	CategoryCreatedAt            time.Time `json:"category_created_at"`
}

// ============================
// Create Request DTO
// ============================
type CreateCategoryRequest struct {
	CategoryName                 string `json:"category_name" validate:"required,min=2,max=255"`
	CategorySlug                 string `json:"category_slug" validate:"omitempty,max=100"`
	CategoryDescription          string `json:"category_description" validate:"omitempty"`
	CategoryDefaultQuestionCount int    `json:"category_default_question_count" validate:"omitempty,min=1,max=200"`
	CategoryDefaultTimeLimit     int    `json:"category_default_time_limit_minutes" validate:"omitempty,min=1,max=600"`
}

// ============================
// Update Request DTO
// ============================
type UpdateCategoryRequest struct {
	CategoryName                 *string `json:"category_name" validate:"omitempty,min=2,max=255"`
	CategoryDescription          *string `json:"category_description" validate:"omitempty"`
	CategoryDefaultQuestionCount *int    `json:"category_default_question_count" validate:"omitempty,min=1,max=200"`
	CategoryDefaultTimeLimit     *int    `json:"category_default_time_limit_minutes" validate:"omitempty,min=1,max=600"`
	CategoryIsActive             *bool   `json:"category_is_active" validate:"omitempty"`
}

// ============================
// Converter
// ============================
func ToCategoryDTO(m model.CategoryModel) CategoryDTO {
	return CategoryDTO{
		CategoryID:                   m.CategoryID,
		CategorySlug:                 m.CategorySlug,
		CategoryName:                 m.CategoryName,
		CategoryDescription:          m.CategoryDescription,
		CategoryDefaultQuestionCount: m.CategoryDefaultQuestionCount,
		CategoryDefaultTimeLimit:     m.CategoryDefaultTimeLimit,
		CategoryQuestionCount:        m.CategoryQuestionCount,
		CategoryIsActive:             m.CategoryIsActive,
		CategoryCreatedAt:            m.CategoryCreatedAt,
	}
}
