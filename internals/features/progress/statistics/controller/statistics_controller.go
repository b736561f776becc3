package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"examprep_backend/internals/features/progress/statistics/dto"
	"examprep_backend/internals/features/progress/statistics/model"
	"examprep_backend/internals/features/progress/statistics/service"
	helper "examprep_backend/internals/helpers"
)

type StatisticsController struct {
	DB *gorm.DB
}

func NewStatisticsController(db *gorm.DB) *StatisticsController {
	return &StatisticsController{DB: db}
}

// =============================
// 📊 My Statistics
// =============================
// Users who never completed a session get a zero-valued profile instead of 404.
func (ctrl *StatisticsController) GetMyStatistics(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var stats model.UserStatisticsModel
	if err := ctrl.DB.Where("user_stats_user_id = ?", userID.String()).First(&stats).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			stats = model.UserStatisticsModel{UserStatsUserID: userID.String()}
			return helper.Success(c, "User statistics fetched", dto.ToUserStatisticsDTO(&stats))
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch statistics")
	}

	return helper.Success(c, "User statistics fetched", dto.ToUserStatisticsDTO(&stats))
}

// =============================
// 📚 My Subject Statistics
// =============================
func (ctrl *StatisticsController) GetMySubjectStatistics(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var rows []model.SubjectStatisticsModel
	if err := ctrl.DB.Where("subject_stats_user_id = ?", userID.String()).
		Order("subject_stats_ranking_points DESC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch subject statistics")
	}

	out := make([]dto.SubjectStatisticsDTO, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToSubjectStatisticsDTO(&rows[i]))
	}
	return helper.Success(c, "Subject statistics fetched", out)
}

// =============================
// 📚 My Statistics For One Subject
// =============================
func (ctrl *StatisticsController) GetMySubjectStatisticsByCategory(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	categoryID, err := helper.ParseUUIDParam(c, "categoryId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid category id")
	}

	var stats model.SubjectStatisticsModel
	if err := ctrl.DB.Where("subject_stats_user_id = ? AND subject_stats_category_id = ?", userID.String(), categoryID.String()).
		First(&stats).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			stats = model.SubjectStatisticsModel{
				SubjectStatsUserID:     userID.String(),
				SubjectStatsCategoryID: categoryID.String(),
			}
			return helper.Success(c, "Subject statistics fetched", dto.ToSubjectStatisticsDTO(&stats))
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch subject statistics")
	}

	return helper.Success(c, "Subject statistics fetched", dto.ToSubjectStatisticsDTO(&stats))
}

// =============================
// 🏆 Leaderboard
// =============================
// Query params: period (today|week|month|all), score_category
// (points|sessions|streak|accuracy), limit (default 10, max 100).
func (ctrl *StatisticsController) GetLeaderboard(c *fiber.Ctx) error {
	q := service.LeaderboardQuery{
		Period:        c.Query("period", "all"),
		ScoreCategory: c.Query("score_category", "points"),
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid limit")
		}
		q.Limit = n
	}

	rows, err := service.GetLeaderboard(ctrl.DB, q)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	out := make([]dto.LeaderboardEntryDTO, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToLeaderboardEntryDTO(i+1, &rows[i]))
	}
	return helper.Success(c, "Leaderboard fetched", out)
}
