package service

import (
	"time"

	"examprep_backend/internals/features/progress/statistics/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SessionTally is the per-completion delta a session feeds into the rolling
// counters. The exam record paths ignore Skipped since exam statistics carry
// no skipped counter.
type SessionTally struct {
	Questions        int
	Attempted        int
	Correct          int
	Incorrect        int
	Skipped          int
	TimeSpentSeconds int
}

// Add folds another tally in. All counters are relative deltas, so folding
// is commutative and associative and the stored totals do not depend on the
// order sessions complete in.
func (t SessionTally) Add(o SessionTally) SessionTally {
	t.Questions += o.Questions
	t.Attempted += o.Attempted
	t.Correct += o.Correct
	t.Incorrect += o.Incorrect
	t.Skipped += o.Skipped
	t.TimeSpentSeconds += o.TimeSpentSeconds
	return t
}

// RecordPracticeCompletion folds one completed practice session into the
// user's rolling statistics. Counters are bumped atomically, then the
// derived fields (streak, accuracies, ranking points) are recomputed from
// the updated row.
func RecordPracticeCompletion(db *gorm.DB, userID uuid.UUID, tally SessionTally) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := ensureUserRow(tx, userID); err != nil {
			return err
		}

		if err := tx.Model(&model.UserStatisticsModel{}).
			Where("user_stats_user_id = ?", userID.String()).
			Updates(map[string]interface{}{
				"user_stats_practice_sessions":   gorm.Expr("user_stats_practice_sessions + ?", 1),
				"user_stats_practice_questions":  gorm.Expr("user_stats_practice_questions + ?", tally.Questions),
				"user_stats_practice_attempted":  gorm.Expr("user_stats_practice_attempted + ?", tally.Attempted),
				"user_stats_practice_correct":    gorm.Expr("user_stats_practice_correct + ?", tally.Correct),
				"user_stats_practice_incorrect":  gorm.Expr("user_stats_practice_incorrect + ?", tally.Incorrect),
				"user_stats_practice_skipped":    gorm.Expr("user_stats_practice_skipped + ?", tally.Skipped),
				"user_stats_time_spent_seconds":  gorm.Expr("user_stats_time_spent_seconds + ?", tally.TimeSpentSeconds),
			}).Error; err != nil {
			return err
		}

		return refreshUserDerived(tx, userID, time.Now())
	})
}

// RecordExamCompletion is the exam counterpart of RecordPracticeCompletion.
func RecordExamCompletion(db *gorm.DB, userID uuid.UUID, tally SessionTally) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := ensureUserRow(tx, userID); err != nil {
			return err
		}

		if err := tx.Model(&model.UserStatisticsModel{}).
			Where("user_stats_user_id = ?", userID.String()).
			Updates(map[string]interface{}{
				"user_stats_exam_sessions":      gorm.Expr("user_stats_exam_sessions + ?", 1),
				"user_stats_exam_questions":     gorm.Expr("user_stats_exam_questions + ?", tally.Questions),
				"user_stats_exam_attempted":     gorm.Expr("user_stats_exam_attempted + ?", tally.Attempted),
				"user_stats_exam_correct":       gorm.Expr("user_stats_exam_correct + ?", tally.Correct),
				"user_stats_exam_incorrect":     gorm.Expr("user_stats_exam_incorrect + ?", tally.Incorrect),
				"user_stats_time_spent_seconds": gorm.Expr("user_stats_time_spent_seconds + ?", tally.TimeSpentSeconds),
			}).Error; err != nil {
			return err
		}

		return refreshUserDerived(tx, userID, time.Now())
	})
}

// RecordPracticeCompletionForSubject folds a practice completion into the
// (user, category) scoped row.
func RecordPracticeCompletionForSubject(db *gorm.DB, userID, categoryID uuid.UUID, tally SessionTally) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := ensureSubjectRow(tx, userID, categoryID); err != nil {
			return err
		}

		if err := tx.Model(&model.SubjectStatisticsModel{}).
			Where("subject_stats_user_id = ? AND subject_stats_category_id = ?", userID.String(), categoryID.String()).
			Updates(map[string]interface{}{
				"subject_stats_practice_sessions":  gorm.Expr("subject_stats_practice_sessions + ?", 1),
				"subject_stats_practice_questions": gorm.Expr("subject_stats_practice_questions + ?", tally.Questions),
				"subject_stats_practice_attempted": gorm.Expr("subject_stats_practice_attempted + ?", tally.Attempted),
				"subject_stats_practice_correct":   gorm.Expr("subject_stats_practice_correct + ?", tally.Correct),
				"subject_stats_practice_incorrect": gorm.Expr("subject_stats_practice_incorrect + ?", tally.Incorrect),
				"subject_stats_practice_skipped":   gorm.Expr("subject_stats_practice_skipped + ?", tally.Skipped),
				"subject_stats_time_spent_seconds": gorm.Expr("subject_stats_time_spent_seconds + ?", tally.TimeSpentSeconds),
			}).Error; err != nil {
			return err
		}

		return refreshSubjectDerived(tx, userID, categoryID)
	})
}

// RecordExamCompletionForSubject folds one category's slice of a completed
// exam into the (user, category) scoped row.
func RecordExamCompletionForSubject(db *gorm.DB, userID, categoryID uuid.UUID, tally SessionTally) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := ensureSubjectRow(tx, userID, categoryID); err != nil {
			return err
		}

		if err := tx.Model(&model.SubjectStatisticsModel{}).
			Where("subject_stats_user_id = ? AND subject_stats_category_id = ?", userID.String(), categoryID.String()).
			Updates(map[string]interface{}{
				"subject_stats_exam_sessions":      gorm.Expr("subject_stats_exam_sessions + ?", 1),
				"subject_stats_exam_questions":     gorm.Expr("subject_stats_exam_questions + ?", tally.Questions),
				"subject_stats_exam_attempted":     gorm.Expr("subject_stats_exam_attempted + ?", tally.Attempted),
				"subject_stats_exam_correct":       gorm.Expr("subject_stats_exam_correct + ?", tally.Correct),
				"subject_stats_exam_incorrect":     gorm.Expr("subject_stats_exam_incorrect + ?", tally.Incorrect),
				"subject_stats_time_spent_seconds": gorm.Expr("subject_stats_time_spent_seconds + ?", tally.TimeSpentSeconds),
			}).Error; err != nil {
			return err
		}

		return refreshSubjectDerived(tx, userID, categoryID)
	})
}

func ensureUserRow(tx *gorm.DB, userID uuid.UUID) error {
	return tx.Where("user_stats_user_id = ?", userID.String()).
		FirstOrCreate(&model.UserStatisticsModel{UserStatsUserID: userID.String()}).Error
}

func ensureSubjectRow(tx *gorm.DB, userID, categoryID uuid.UUID) error {
	return tx.Where("subject_stats_user_id = ? AND subject_stats_category_id = ?", userID.String(), categoryID.String()).
		FirstOrCreate(&model.SubjectStatisticsModel{
			SubjectStatsUserID:     userID.String(),
			SubjectStatsCategoryID: categoryID.String(),
		}).Error
}

// refreshUserDerived re-reads the bumped counters and rewrites everything
// computed from them: streak, accuracies, and the ranking score.
func refreshUserDerived(tx *gorm.DB, userID uuid.UUID, now time.Time) error {
	var stats model.UserStatisticsModel
	if err := tx.Where("user_stats_user_id = ?", userID.String()).First(&stats).Error; err != nil {
		return err
	}

	streak, longest := NextStreak(stats.UserStatsCurrentStreak, stats.UserStatsLongestStreak, (*time.Time)(stats.UserStatsLastActivityDate), now)
	activityDate := datatypes.Date(startOfDay(now))

	practiceAcc := Accuracy(stats.UserStatsPracticeCorrect, stats.UserStatsPracticeAttempted)
	examAcc := Accuracy(stats.UserStatsExamCorrect, stats.UserStatsExamAttempted)
	overallAcc := Accuracy(
		stats.UserStatsPracticeCorrect+stats.UserStatsExamCorrect,
		stats.UserStatsPracticeAttempted+stats.UserStatsExamAttempted,
	)

	points := ComputeRankingPoints(RankingInputs{
		PracticeSessions:       stats.UserStatsPracticeSessions,
		ExamSessions:           stats.UserStatsExamSessions,
		OverallAccuracyPercent: overallAcc,
		CurrentStreak:          streak,
		QuestionsAttempted:     stats.UserStatsPracticeAttempted + stats.UserStatsExamAttempted,
		TimeSpentSeconds:       stats.UserStatsTimeSpentSeconds,
	})

	return tx.Model(&model.UserStatisticsModel{}).
		Where("user_stats_user_id = ?", userID.String()).
		Updates(map[string]interface{}{
			"user_stats_current_streak":     streak,
			"user_stats_longest_streak":     longest,
			"user_stats_last_activity_date": activityDate,
			"user_stats_practice_accuracy":  practiceAcc,
			"user_stats_exam_accuracy":      examAcc,
			"user_stats_overall_accuracy":   overallAcc,
			"user_stats_ranking_points":     points,
		}).Error
}

func refreshSubjectDerived(tx *gorm.DB, userID, categoryID uuid.UUID) error {
	var stats model.SubjectStatisticsModel
	if err := tx.Where("subject_stats_user_id = ? AND subject_stats_category_id = ?", userID.String(), categoryID.String()).
		First(&stats).Error; err != nil {
		return err
	}

	practiceAcc := Accuracy(stats.SubjectStatsPracticeCorrect, stats.SubjectStatsPracticeAttempted)
	examAcc := Accuracy(stats.SubjectStatsExamCorrect, stats.SubjectStatsExamAttempted)
	overallAcc := Accuracy(
		stats.SubjectStatsPracticeCorrect+stats.SubjectStatsExamCorrect,
		stats.SubjectStatsPracticeAttempted+stats.SubjectStatsExamAttempted,
	)

	// Subject score carries no streak term.
	points := ComputeRankingPoints(RankingInputs{
		PracticeSessions:       stats.SubjectStatsPracticeSessions,
		ExamSessions:           stats.SubjectStatsExamSessions,
		OverallAccuracyPercent: overallAcc,
		CurrentStreak:          0,
		QuestionsAttempted:     stats.SubjectStatsPracticeAttempted + stats.SubjectStatsExamAttempted,
		TimeSpentSeconds:       stats.SubjectStatsTimeSpentSeconds,
	})

	return tx.Model(&model.SubjectStatisticsModel{}).
		Where("subject_stats_user_id = ? AND subject_stats_category_id = ?", userID.String(), categoryID.String()).
		Updates(map[string]interface{}{
			"subject_stats_practice_accuracy": practiceAcc,
			"subject_stats_exam_accuracy":     examAcc,
			"subject_stats_overall_accuracy":  overallAcc,
			"subject_stats_ranking_points":    points,
		}).Error
}
