package service

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	categoryModel "examprep_backend/internals/features/questions/categories/model"
	questionModel "examprep_backend/internals/features/questions/questions/model"
	"examprep_backend/internals/features/sessions/exams/model"
	"examprep_backend/internals/features/sessions/scoring"
)

// ExamConfig is the validated blueprint for one exam instance.
type ExamConfig struct {
	Name            string
	TotalMarks      float64
	DurationMinutes int
	Distribution    []DistributionInput
	NegativeMarking bool
	NegativeRatio   float64
}

type DistributionInput struct {
	Category         string // id or slug, persisted verbatim
	Count            int
	MarksPerQuestion float64
}

// CreateSession validates the config against the question pools and persists
// a not_started session. Categories resolve by id or slug; a count larger
// than the category's active pool fails naming the deficient category.
func CreateSession(db *gorm.DB, userID uuid.UUID, cfg ExamConfig) (*model.ExamSessionModel, error) {
	if len(cfg.Distribution) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Distribution must not be empty")
	}

	entries := make([]model.ExamDistributionEntry, 0, len(cfg.Distribution))
	totalQuestions := 0
	for _, d := range cfg.Distribution {
		var category categoryModel.CategoryModel
		err := db.
			Where("(category_slug = ? OR category_id::text = ?) AND category_is_active = ?", d.Category, d.Category, true).
			First(&category).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fiber.NewError(fiber.StatusNotFound, "Category not found: "+d.Category)
			}
			return nil, err
		}

		var available int64
		if err := db.Model(&questionModel.QuestionModel{}).
			Where("question_category_id = ? AND question_is_active = ?", category.CategoryID, true).
			Count(&available).Error; err != nil {
			return nil, err
		}
		if int64(d.Count) > available {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity,
				"Not enough active questions in category "+category.CategorySlug)
		}

		entries = append(entries, model.ExamDistributionEntry{
			CategoryRef:      d.Category,
			CategoryID:       category.CategoryID,
			Count:            d.Count,
			MarksPerQuestion: d.MarksPerQuestion,
		})
		totalQuestions += d.Count
	}

	ratio := cfg.NegativeRatio
	if !cfg.NegativeMarking {
		ratio = 0
	}

	session := model.ExamSessionModel{
		ExamSessionUserID:          userID.String(),
		ExamSessionName:            cfg.Name,
		ExamSessionStatus:          scoring.StatusNotStarted,
		ExamSessionTotalMarks:      cfg.TotalMarks,
		ExamSessionDurationMinutes: cfg.DurationMinutes,
		ExamSessionTotalQuestions:  totalQuestions,
		ExamSessionNegativeMarking: cfg.NegativeMarking,
		ExamSessionNegativeRatio:   ratio,
		ExamSessionDistribution:    entries,
		ExamSessionQuestionsData:   []model.ExamAttempt{},
		ExamSessionSkipped:         totalQuestions,
	}
	if err := db.Create(&session).Error; err != nil {
		return nil, err
	}

	log.Printf("[SERVICE] exam session created id=%s user=%s questions=%d",
		session.ExamSessionID, userID, totalQuestions)
	return &session, nil
}

// GenerateQuestions draws the question set and starts the session. Per
// distribution entry: a uniform sample without replacement from that
// category's active pool; the concatenation is shuffled so category order is
// not revealed. Generation happens once: the draw is cached in the session
// row and a started session never regenerates.
func GenerateQuestions(db *gorm.DB, sessionID string, userID uuid.UUID) (*model.ExamSessionModel, error) {
	session, err := GetByID(db, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.ExamSessionStatus != scoring.StatusNotStarted {
		return nil, fiber.NewError(fiber.StatusConflict, "Exam session has already been started")
	}

	attempts := make([]model.ExamAttempt, 0, session.ExamSessionTotalQuestions)
	for _, entry := range session.ExamSessionDistribution {
		var pool []string
		if err := db.Model(&questionModel.QuestionModel{}).
			Where("question_category_id = ? AND question_is_active = ?", entry.CategoryID, true).
			Pluck("question_id", &pool).Error; err != nil {
			return nil, err
		}
		if len(pool) < entry.Count {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity,
				"Not enough active questions in category "+entry.CategoryRef)
		}

		sample := scoring.SampleWithoutReplacement(pool, entry.Count)

		var questions []questionModel.QuestionModel
		if err := db.
			Select("question_id", "question_correct_answer").
			Where("question_id IN ?", sample).
			Find(&questions).Error; err != nil {
			return nil, err
		}
		answerByID := make(map[string]string, len(questions))
		for _, q := range questions {
			answerByID[q.QuestionID] = q.QuestionCorrectAnswer
		}

		for _, qid := range sample {
			attempts = append(attempts, model.ExamAttempt{
				QuestionID:       qid,
				CategoryID:       entry.CategoryID,
				MarksPerQuestion: entry.MarksPerQuestion,
				CorrectAnswer:    answerByID[qid],
			})
		}
	}

	scoring.ShuffleInPlace(attempts)

	now := time.Now()
	session.ExamSessionQuestionsData = attempts
	session.ExamSessionStatus = scoring.StatusInProgress
	session.ExamSessionStartedAt = &now

	if err := db.Model(session).Updates(map[string]interface{}{
		"exam_session_questions_data": session.ExamSessionQuestionsData,
		"exam_session_status":         session.ExamSessionStatus,
		"exam_session_started_at":     session.ExamSessionStartedAt,
	}).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// GetByID is ownership-scoped: foreign sessions read as not found.
func GetByID(db *gorm.DB, sessionID string, userID uuid.UUID) (*model.ExamSessionModel, error) {
	var session model.ExamSessionModel
	err := db.
		Where("exam_session_id = ? AND exam_session_user_id = ?", sessionID, userID.String()).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Exam session not found")
		}
		return nil, err
	}
	return &session, nil
}
