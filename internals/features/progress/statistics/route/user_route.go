package route

import (
	statscontroller "examprep_backend/internals/features/progress/statistics/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func StatisticsUserRoutes(user fiber.Router, db *gorm.DB) {
	statsCtrl := statscontroller.NewStatisticsController(db)

	stats := user.Group("/statistics")
	stats.Get("/", statsCtrl.GetMyStatistics)                          // 📊 My profile
	stats.Get("/subjects", statsCtrl.GetMySubjectStatistics)           // 📚 All subjects
	stats.Get("/:categoryId", statsCtrl.GetMySubjectStatisticsByCategory) // 📚 One subject

	user.Get("/leaderboard", statsCtrl.GetLeaderboard) // 🏆 Ranked users
}
