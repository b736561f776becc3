package model

import (
	"time"
)

type CategoryModel struct {
	CategoryID                  string    `gorm:"column:category_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"category_id"`
	CategorySlug                string    `gorm:"column:category_slug;type:varchar(100);uniqueIndex;not null" json:"category_slug"`
	CategoryName                string    `gorm:"column:category_name;type:varchar(255);not null" json:"category_name"`
	CategoryDescription         string    `gorm:"column:category_description;type:text" json:"category_description"`
	CategoryDefaultQuestionCount int      `gorm:"column:category_default_question_count;default:10" json:"category_default_question_count"`
	CategoryDefaultTimeLimit    int       `gorm:"column:category_default_time_limit_minutes;default:15" json:"category_default_time_limit_minutes"`
	CategoryQuestionCount       int       `gorm:"column:category_question_count;default:0" json:"category_question_count"`
	CategoryIsActive            bool      `gorm:"column:category_is_active;default:true" json:"category_is_active"`
	CategoryCreatedAt           time.Time `gorm:"column:category_created_at;autoCreateTime" json:"category_created_at"`
	CategoryUpdatedAt           time.Time `gorm:"column:category_updated_at;autoUpdateTime" json:"category_updated_at"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
