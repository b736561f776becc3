package model

import (
	"time"

	"github.com/lib/pq"
)

// QuestionOption is one selectable answer. IDs are 1..N within a question.
type QuestionOption struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

type QuestionModel struct {
	QuestionID            string           `gorm:"column:question_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"question_id"`
	QuestionCategoryID    string           `gorm:"column:question_category_id;type:uuid;not null;index" json:"question_category_id"`
	QuestionText          string           `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionOptions       []QuestionOption `gorm:"column:question_options;type:jsonb;serializer:json" json:"question_options"`
	QuestionOptionTexts   pq.StringArray   `gorm:"column:question_option_texts;type:text[]" json:"question_option_texts"`
	QuestionCorrectOption int              `gorm:"column:question_correct_option;not null" json:"question_correct_option"`
	QuestionCorrectAnswer string           `gorm:"column:question_correct_answer;type:text;not null" json:"question_correct_answer"`
	QuestionExplanation   string           `gorm:"column:question_explanation;type:text" json:"question_explanation"`
	QuestionDifficulty    string           `gorm:"column:question_difficulty;type:varchar(20);default:'medium'" json:"question_difficulty"`
	QuestionTopicSlug     string           `gorm:"column:question_topic_slug;type:varchar(100)" json:"question_topic_slug"`
	QuestionSource        string           `gorm:"column:question_source;type:varchar(100)" json:"question_source"`
	QuestionIsActive      bool             `gorm:"column:question_is_active;default:true" json:"question_is_active"`
	QuestionCreatedAt     time.Time        `gorm:"column:question_created_at;autoCreateTime" json:"question_created_at"`
	QuestionUpdatedAt     time.Time        `gorm:"column:question_updated_at;autoUpdateTime" json:"question_updated_at"`
}

func (QuestionModel) TableName() string {
	return "questions"
}
