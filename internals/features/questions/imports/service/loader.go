package service

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	categoryModel "examprep_backend/internals/features/questions/categories/model"
	questionModel "examprep_backend/internals/features/questions/questions/model"
)

// RawQuestion is one record of the category-partitioned corpus files.
// Field names follow the data files; JSON matching is case-insensitive so
// "Question"/"question" etc. land on the same field. Options may be plain
// strings or {id,text,label,value} objects; the answer may live under
// several spellings.
type RawQuestion struct {
	Question      string        `json:"question"`
	Options       []interface{} `json:"options"`
	CorrectAnswer string        `json:"correctAnswer"`
	Answer        string        `json:"answer"`
	CorrectOption interface{}   `json:"correctOption"`
	Explanation   string        `json:"explanation"`
	Difficulty    string        `json:"difficulty"`
	Category      string        `json:"category"`
	Topic         string        `json:"topic"`
}

// ImportResult is the per-batch observability summary.
type ImportResult struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

var optionNumberRe = regexp.MustCompile(`Option\s*(\d+)`)

// NormalizeOptions turns heterogeneous raw options into the canonical
// {id, text} list. String entries get id = position+1; object entries keep an
// explicit id or default to position+1, and resolve text from text, then
// label, then stringified value.
func NormalizeOptions(raw []interface{}) []questionModel.QuestionOption {
	out := make([]questionModel.QuestionOption, 0, len(raw))
	for i, entry := range raw {
		switch v := entry.(type) {
		case string:
			out = append(out, questionModel.QuestionOption{ID: i + 1, Text: v})
		case map[string]interface{}:
			id := i + 1
			if rawID, ok := v["id"]; ok {
				if n, ok := toInt(rawID); ok && n > 0 {
					id = n
				}
			}
			text := ""
			if t, ok := v["text"].(string); ok && t != "" {
				text = t
			} else if l, ok := v["label"].(string); ok && l != "" {
				text = l
			} else if val, ok := v["value"]; ok {
				text = fmt.Sprintf("%v", val)
			}
			out = append(out, questionModel.QuestionOption{ID: id, Text: text})
		}
	}
	return out
}

// rawAnswer picks the first non-empty answer field, preserving the fallback
// order of the data files.
func (r RawQuestion) rawAnswer() string {
	if strings.TrimSpace(r.CorrectAnswer) != "" {
		return r.CorrectAnswer
	}
	return r.Answer
}

// ResolveCorrectOption finds the canonical correct option id and answer text.
// Resolution order: explicit numeric correctOption; "Option N" pattern inside
// the answer text; case-insensitive exact match of the answer text against
// the option texts. A non-empty answer that matches no option still resolves,
// keeping the raw answer text verbatim with the option id left unset.
func ResolveCorrectOption(r RawQuestion, options []questionModel.QuestionOption) (int, string, bool) {
	// (a) explicit numeric field
	if r.CorrectOption != nil {
		if n, ok := toInt(r.CorrectOption); ok && n > 0 {
			for _, opt := range options {
				if opt.ID == n {
					return n, opt.Text, true
				}
			}
		}
	}

	answer := strings.TrimSpace(r.rawAnswer())
	if answer == "" {
		return 0, "", false
	}

	// (b) "Option N" reference inside the answer text
	if m := optionNumberRe.FindStringSubmatch(answer); m != nil {
		if n, ok := toInt(m[1]); ok {
			for _, opt := range options {
				if opt.ID == n {
					return n, opt.Text, true
				}
			}
		}
	}

	// (c) exact text match, case-insensitive
	for _, opt := range options {
		if strings.EqualFold(strings.TrimSpace(opt.Text), answer) {
			return opt.ID, opt.Text, true
		}
	}

	// (d) no option matched: keep the answer text verbatim, id unset
	return 0, answer, true
}

func toInt(v interface{}) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	case string:
		n := 0
		for _, ch := range strings.TrimSpace(t) {
			if ch < '0' || ch > '9' {
				return 0, false
			}
			n = n*10 + int(ch-'0')
		}
		if t == "" {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// ImportBatch normalizes and stores one corpus batch for a category.
// Per-record failures never abort the batch: records missing text, options,
// or any answer at all count as skipped; storage errors count as failed.
// Reimport is idempotent via exact question-text dedup within the category.
func ImportBatch(db *gorm.DB, category categoryModel.CategoryModel, raws []RawQuestion, source string) (ImportResult, error) {
	var result ImportResult

	for _, raw := range raws {
		text := strings.TrimSpace(raw.Question)
		if text == "" || len(raw.Options) == 0 {
			result.Skipped++
			continue
		}

		options := NormalizeOptions(raw.Options)
		correctID, correctText, ok := ResolveCorrectOption(raw, options)
		if !ok {
			result.Skipped++
			continue
		}

		// Dedup: same question text in the same category = already imported
		var existing int64
		if err := db.Model(&questionModel.QuestionModel{}).
			Where("question_category_id = ? AND question_text = ?", category.CategoryID, text).
			Count(&existing).Error; err != nil {
			log.Println("[ERROR] import dedup check:", err)
			result.Failed++
			continue
		}
		if existing > 0 {
			result.Skipped++
			continue
		}

		topicSlug := strings.TrimSpace(raw.Topic)
		if topicSlug == "" {
			if slug, ok := ClassifyTopic(text, raw.Explanation); ok {
				topicSlug = slug
			}
		}

		difficulty := strings.ToLower(strings.TrimSpace(raw.Difficulty))
		switch difficulty {
		case "easy", "medium", "hard":
		default:
			difficulty = "medium"
		}

		texts := make(pq.StringArray, 0, len(options))
		for _, opt := range options {
			texts = append(texts, opt.Text)
		}

		q := questionModel.QuestionModel{
			QuestionCategoryID:    category.CategoryID,
			QuestionText:          text,
			QuestionOptions:       options,
			QuestionOptionTexts:   texts,
			QuestionCorrectOption: correctID,
			QuestionCorrectAnswer: correctText,
			QuestionExplanation:   raw.Explanation,
			QuestionDifficulty:    difficulty,
			QuestionTopicSlug:     topicSlug,
			QuestionSource:        source,
			QuestionIsActive:      true,
		}
		if err := db.Create(&q).Error; err != nil {
			log.Println("[ERROR] import insert:", err)
			result.Failed++
			continue
		}
		result.Inserted++
	}

	// Keep the category's running total in step, as a relative update
	if result.Inserted > 0 {
		if err := db.Model(&categoryModel.CategoryModel{}).
			Where("category_id = ?", category.CategoryID).
			Update("category_question_count", gorm.Expr("category_question_count + ?", result.Inserted)).Error; err != nil {
			log.Println("[ERROR] import count update:", err)
			return result, err
		}
	}

	log.Printf("[SERVICE] ImportBatch category=%s inserted=%d skipped=%d failed=%d",
		category.CategorySlug, result.Inserted, result.Skipped, result.Failed)
	return result, nil
}
