package service

import (
	"time"

	"examprep_backend/internals/features/progress/statistics/model"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// LeaderboardQuery selects which score column to rank on and how far back
// the activity window reaches. Period filters on the row's last update, so
// "today" lists users who completed a session since midnight UTC.
type LeaderboardQuery struct {
	Period        string // today | week | month | all
	ScoreCategory string // points | sessions | streak | accuracy
	Limit         int
}

// Score columns are whitelisted. "sessions" ranks on the combined session
// count across both modes.
var leaderboardColumns = map[string]string{
	"points":   "user_stats_ranking_points",
	"sessions": "(user_stats_practice_sessions + user_stats_exam_sessions)",
	"streak":   "user_stats_current_streak",
	"accuracy": "user_stats_overall_accuracy",
}

func GetLeaderboard(db *gorm.DB, q LeaderboardQuery) ([]model.UserStatisticsModel, error) {
	column, ok := leaderboardColumns[q.ScoreCategory]
	if !ok {
		return nil, fiber.NewError(fiber.StatusBadRequest, "unknown score category: "+q.ScoreCategory)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	tx := db.Model(&model.UserStatisticsModel{})
	if cutoff, ok := periodCutoff(q.Period, time.Now()); ok {
		tx = tx.Where("user_stats_last_updated >= ?", cutoff)
	} else if q.Period != "" && q.Period != "all" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "unknown period: "+q.Period)
	}

	var rows []model.UserStatisticsModel
	if err := tx.Order(column + " DESC, user_stats_user_id ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to load leaderboard")
	}
	return rows, nil
}

// Calendar anchors in UTC: "today" is midnight, "month" is the first of the
// current month. "week" stays a rolling seven days.
func periodCutoff(period string, now time.Time) (time.Time, bool) {
	switch period {
	case "today":
		return startOfDay(now), true
	case "week":
		return now.AddDate(0, 0, -7), true
	case "month":
		u := now.UTC()
		return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC), true
	default:
		return time.Time{}, false
	}
}
