package service

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	statsService "examprep_backend/internals/features/progress/statistics/service"
	"examprep_backend/internals/features/sessions/exams/model"
	"examprep_backend/internals/features/sessions/scoring"
)

// SubmitAnswer upserts one attempt and recomputes all tallies from the full
// embedded list. Negative marking subtracts marks*ratio for an incorrect
// attempted answer; unattempted questions contribute zero either way.
func SubmitAnswer(db *gorm.DB, sessionID string, userID uuid.UUID, questionID, userAnswer string, timeSpentSeconds int) (*model.ExamSessionModel, error) {
	session, err := GetByID(db, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if err := scoring.EnsureInProgress(session.ExamSessionStatus, "Exam"); err != nil {
		return nil, err
	}

	idx := -1
	for i := range session.ExamSessionQuestionsData {
		if session.ExamSessionQuestionsData[i].QuestionID == questionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Question is not part of this session")
	}

	attempt := &session.ExamSessionQuestionsData[idx]
	scored := scoring.Score(userAnswer, attempt.CorrectAnswer, attempt.MarksPerQuestion, session.ExamSessionNegativeRatio)
	attempt.UserAnswer = userAnswer
	attempt.IsCorrect = scored.IsCorrect
	attempt.MarksObtained = scored.MarksDelta
	attempt.TimeSpentSeconds = timeSpentSeconds

	applyTallies(session)

	if err := db.Model(session).Updates(map[string]interface{}{
		"exam_session_questions_data":     session.ExamSessionQuestionsData,
		"exam_session_attempted":          session.ExamSessionAttempted,
		"exam_session_correct":            session.ExamSessionCorrect,
		"exam_session_incorrect":          session.ExamSessionIncorrect,
		"exam_session_skipped":            session.ExamSessionSkipped,
		"exam_session_marks_obtained":     session.ExamSessionMarksObtained,
		"exam_session_time_spent_seconds": session.ExamSessionTimeSpentSeconds,
	}).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// Complete finalizes the exam and feeds the aggregator: once for the user,
// and once per distinct category for subject statistics. The only transition
// that touches statistics.
func Complete(db *gorm.DB, sessionID string, userID uuid.UUID) (*model.ExamSessionModel, error) {
	session, err := GetByID(db, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if err := scoring.EnsureInProgress(session.ExamSessionStatus, "Exam"); err != nil {
		return nil, err
	}

	applyTallies(session)
	now := time.Now()
	session.ExamSessionStatus = scoring.StatusCompleted
	session.ExamSessionCompletedAt = &now

	userTally := statsService.SessionTally{
		Questions:        session.ExamSessionTotalQuestions,
		Attempted:        session.ExamSessionAttempted,
		Correct:          session.ExamSessionCorrect,
		Incorrect:        session.ExamSessionIncorrect,
		Skipped:          session.ExamSessionSkipped,
		TimeSpentSeconds: session.ExamSessionTimeSpentSeconds,
	}

	// Finalize and aggregate atomically: a failed stats update rolls the
	// status back so the completion can be retried.
	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(session).Updates(map[string]interface{}{
			"exam_session_status":             session.ExamSessionStatus,
			"exam_session_completed_at":       session.ExamSessionCompletedAt,
			"exam_session_questions_data":     session.ExamSessionQuestionsData,
			"exam_session_attempted":          session.ExamSessionAttempted,
			"exam_session_correct":            session.ExamSessionCorrect,
			"exam_session_incorrect":          session.ExamSessionIncorrect,
			"exam_session_skipped":            session.ExamSessionSkipped,
			"exam_session_marks_obtained":     session.ExamSessionMarksObtained,
			"exam_session_percentage":         session.ExamSessionPercentage,
			"exam_session_time_spent_seconds": session.ExamSessionTimeSpentSeconds,
		}).Error; err != nil {
			return err
		}

		if err := statsService.RecordExamCompletion(tx, userID, userTally); err != nil {
			log.Println("[ERROR] exam stats update:", err)
			return err
		}
		for categoryID, tally := range talliesByCategory(session) {
			cid, err := uuid.Parse(categoryID)
			if err != nil {
				continue
			}
			if err := statsService.RecordExamCompletionForSubject(tx, userID, cid, tally); err != nil {
				log.Println("[ERROR] exam subject stats update:", err)
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
func Abandon(db *gorm.DB, sessionID string, userID uuid.UUID) (*model.ExamSessionModel, error) {
	session, err := GetByID(db, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if err := scoring.EnsureInProgress(session.ExamSessionStatus, "Exam"); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := db.Model(session).Updates(map[string]interface{}{
		"exam_session_status":       scoring.StatusAbandoned,
		"exam_session_completed_at": now,
	}).Error; err != nil {
		return nil, err
	}
	session.ExamSessionStatus = scoring.StatusAbandoned
	session.ExamSessionCompletedAt = &now
	return session, nil
}

// applyTallies recomputes every aggregate from the embedded attempt list.
func applyTallies(session *model.ExamSessionModel) {
	var counts scoring.Counts
	marks := 0.0
	timeSpent := 0
	for _, a := range session.ExamSessionQuestionsData {
		counts.Accumulate(scoring.ScoredAttempt{
			Attempted: a.UserAnswer != "",
			IsCorrect: a.IsCorrect,
		})
		marks += a.MarksObtained
		timeSpent += a.TimeSpentSeconds
	}

	session.ExamSessionAttempted = counts.Attempted
	session.ExamSessionCorrect = counts.Correct
	session.ExamSessionIncorrect = counts.Incorrect
	session.ExamSessionSkipped = counts.Skipped
	session.ExamSessionMarksObtained = marks
	session.ExamSessionTimeSpentSeconds = timeSpent
	if session.ExamSessionTotalQuestions > 0 {
		session.ExamSessionPercentage = float64(counts.Correct) / float64(session.ExamSessionTotalQuestions) * 100
	}
}

// talliesByCategory splits the session outcome per drawing category.
func talliesByCategory(session *model.ExamSessionModel) map[string]statsService.SessionTally {
	out := make(map[string]statsService.SessionTally)
	for _, a := range session.ExamSessionQuestionsData {
		one := statsService.SessionTally{Questions: 1, TimeSpentSeconds: a.TimeSpentSeconds}
		if a.UserAnswer != "" {
			one.Attempted = 1
			if a.IsCorrect {
				one.Correct = 1
			} else {
				one.Incorrect = 1
			}
		} else {
			one.Skipped = 1
		}
		out[a.CategoryID] = out[a.CategoryID].Add(one)
	}
	return out
}
