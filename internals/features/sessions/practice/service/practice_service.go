package service

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	statsService "examprep_backend/internals/features/progress/statistics/service"
	categoryModel "examprep_backend/internals/features/questions/categories/model"
	questionModel "examprep_backend/internals/features/questions/questions/model"
	"examprep_backend/internals/features/sessions/practice/model"
	"examprep_backend/internals/features/sessions/scoring"
)

// CreateSession builds a single-category practice session: draws a uniform
// random sample of active questions and pre-populates the attempt list with
// empty answers. Zero count / time limit fall back to the category defaults.
func CreateSession(db *gorm.DB, userID uuid.UUID, categoryRef string, questionCount, timeLimitMinutes int) (*model.PracticeSessionModel, error) {
	var category categoryModel.CategoryModel
	err := db.
		Where("(category_slug = ? OR category_id::text = ?) AND category_is_active = ?", categoryRef, categoryRef, true).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Category not found")
		}
		return nil, err
	}

	if questionCount <= 0 {
		questionCount = category.CategoryDefaultQuestionCount
	}
	if timeLimitMinutes <= 0 {
		timeLimitMinutes = category.CategoryDefaultTimeLimit
	}

	var pool []string
	if err := db.Model(&questionModel.QuestionModel{}).
		Where("question_category_id = ? AND question_is_active = ?", category.CategoryID, true).
		Pluck("question_id", &pool).Error; err != nil {
		return nil, err
	}
	if len(pool) < questionCount {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity,
			"Not enough active questions in category "+category.CategorySlug)
	}

	sample := scoring.SampleWithoutReplacement(pool, questionCount)
	attempts := make([]model.PracticeAttempt, 0, len(sample))
	for _, qid := range sample {
		attempts = append(attempts, model.PracticeAttempt{QuestionID: qid})
	}

	session := model.PracticeSessionModel{
		PracticeSessionUserID:           userID.String(),
		PracticeSessionCategoryID:       category.CategoryID,
		PracticeSessionStatus:           scoring.StatusInProgress,
		PracticeSessionTotalQuestions:   questionCount,
		PracticeSessionTimeLimitMinutes: timeLimitMinutes,
		PracticeSessionQuestions:        attempts,
		PracticeSessionSkipped:          questionCount,
	}
	if err := db.Create(&session).Error; err != nil {
		return nil, err
	}

	log.Printf("[SERVICE] practice session created id=%s user=%s category=%s n=%d",
		session.PracticeSessionID, userID, category.CategorySlug, questionCount)
	return &session, nil
}

// GetByID is an ownership-scoped read: a foreign session reads as not found,
// never as forbidden.
func GetByID(db *gorm.DB, sessionID string, userID uuid.UUID) (*model.PracticeSessionModel, error) {
	var session model.PracticeSessionModel
	err := db.
		Where("practice_session_id = ? AND practice_session_user_id = ?", sessionID, userID.String()).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Practice session not found")
		}
		return nil, err
	}
	return &session, nil
}

// SubmitAnswer upserts one attempt and recomputes every count from the full
// embedded list, so retried or out-of-order submissions overwrite instead of
// duplicating.
func SubmitAnswer(db *gorm.DB, sessionID string, userID uuid.UUID, questionID, userAnswer string, timeSpentSeconds int) (*model.PracticeSessionModel, error) {
	session, err := GetByID(db, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if err := scoring.EnsureInProgress(session.PracticeSessionStatus, "Practice"); err != nil {
		return nil, err
	}

	idx := -1
	for i := range session.PracticeSessionQuestions {
		if session.PracticeSessionQuestions[i].QuestionID == questionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Question is not part of this session")
	}

	var question questionModel.QuestionModel
	if err := db.First(&question, "question_id = ?", questionID).Error; err != nil {
		return nil, err
	}

	scored := scoring.Score(userAnswer, question.QuestionCorrectAnswer, 1, 0)
	session.PracticeSessionQuestions[idx].UserAnswer = userAnswer
	session.PracticeSessionQuestions[idx].IsCorrect = scored.IsCorrect
	session.PracticeSessionQuestions[idx].TimeSpentSeconds = timeSpentSeconds

	counts, timeSpent := recompute(session.PracticeSessionQuestions)
	session.PracticeSessionAttempted = counts.Attempted
	session.PracticeSessionCorrect = counts.Correct
	session.PracticeSessionIncorrect = counts.Incorrect
	session.PracticeSessionSkipped = counts.Skipped
	session.PracticeSessionTimeSpentSeconds = timeSpent

	if err := db.Model(session).Updates(map[string]interface{}{
		"practice_session_questions":          session.PracticeSessionQuestions,
		"practice_session_attempted":          session.PracticeSessionAttempted,
		"practice_session_correct":            session.PracticeSessionCorrect,
		"practice_session_incorrect":          session.PracticeSessionIncorrect,
		"practice_session_skipped":            session.PracticeSessionSkipped,
		"practice_session_time_spent_seconds": session.PracticeSessionTimeSpentSeconds,
	}).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// Complete finalizes the session and folds its tally into the statistics
// aggregator. This is the only transition that touches statistics.
func Complete(db *gorm.DB, sessionID string, userID uuid.UUID) (*model.PracticeSessionModel, error) {
	session, err := GetByID(db, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if err := scoring.EnsureInProgress(session.PracticeSessionStatus, "Practice"); err != nil {
		return nil, err
	}

	counts, timeSpent := recompute(session.PracticeSessionQuestions)
	now := time.Now()
	session.PracticeSessionStatus = scoring.StatusCompleted
	session.PracticeSessionCompletedAt = &now
	session.PracticeSessionAttempted = counts.Attempted
	session.PracticeSessionCorrect = counts.Correct
	session.PracticeSessionIncorrect = counts.Incorrect
	session.PracticeSessionSkipped = counts.Skipped
	session.PracticeSessionPercentage = counts.Percentage()
	session.PracticeSessionTimeSpentSeconds = timeSpent

	tally := statsService.SessionTally{
		Questions:        session.PracticeSessionTotalQuestions,
		Attempted:        counts.Attempted,
		Correct:          counts.Correct,
		Incorrect:        counts.Incorrect,
		Skipped:          counts.Skipped,
		TimeSpentSeconds: timeSpent,
	}

	// Finalize and aggregate atomically: a failed stats update rolls the
	// status back so the completion can be retried.
	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(session).Updates(map[string]interface{}{
			"practice_session_status":             session.PracticeSessionStatus,
			"practice_session_completed_at":       session.PracticeSessionCompletedAt,
			"practice_session_attempted":          session.PracticeSessionAttempted,
			"practice_session_correct":            session.PracticeSessionCorrect,
			"practice_session_incorrect":          session.PracticeSessionIncorrect,
			"practice_session_skipped":            session.PracticeSessionSkipped,
			"practice_session_percentage":         session.PracticeSessionPercentage,
			"practice_session_time_spent_seconds": session.PracticeSessionTimeSpentSeconds,
		}).Error; err != nil {
			return err
		}

		if err := statsService.RecordPracticeCompletion(tx, userID, tally); err != nil {
			log.Println("[ERROR] practice stats update:", err)
			return err
		}
		if categoryID, err := uuid.Parse(session.PracticeSessionCategoryID); err == nil {
			if err := statsService.RecordPracticeCompletionForSubject(tx, userID, categoryID, tally); err != nil {
				log.Println("[ERROR] practice subject stats update:", err)
				return err
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return session, nil
}

// Abandon finalizes without feeding statistics.
func Abandon(db *gorm.DB, sessionID string, userID uuid.UUID) (*model.PracticeSessionModel, error) {
	session, err := GetByID(db, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if err := scoring.EnsureInProgress(session.PracticeSessionStatus, "Practice"); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := db.Model(session).Updates(map[string]interface{}{
		"practice_session_status":       scoring.StatusAbandoned,
		"practice_session_completed_at": now,
	}).Error; err != nil {
		return nil, err
	}
	session.PracticeSessionStatus = scoring.StatusAbandoned
	session.PracticeSessionCompletedAt = &now
	return session, nil
}

func recompute(attempts []model.PracticeAttempt) (scoring.Counts, int) {
	var counts scoring.Counts
	timeSpent := 0
	for _, a := range attempts {
		counts.Accumulate(scoring.ScoredAttempt{
			Attempted: a.UserAnswer != "",
			IsCorrect: a.IsCorrect,
		})
		timeSpent += a.TimeSpentSeconds
	}
	return counts, timeSpent
}
