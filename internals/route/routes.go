package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	categoryRoute "examprep_backend/internals/features/questions/categories/route"
	importRoute "examprep_backend/internals/features/questions/imports/route"
	questionRoute "examprep_backend/internals/features/questions/questions/route"

	examRoute "examprep_backend/internals/features/sessions/exams/route"
	practiceRoute "examprep_backend/internals/features/sessions/practice/route"

	statsRoute "examprep_backend/internals/features/progress/statistics/route"

	"examprep_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the three route surfaces:
//
//	/api          → public catalog reads, no token
//	/api/u        → authenticated user features
//	/api/a        → admin management, token + admin role
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// 🌐 Public
	public := app.Group("/api")
	categoryRoute.CategoryUserRoutes(public, db)

	// 👤 User (authenticated)
	user := app.Group("/api/u", auth.AuthMiddleware())
	practiceRoute.PracticeUserRoutes(user, db)
	examRoute.ExamUserRoutes(user, db)
	statsRoute.StatisticsUserRoutes(user, db)

	// 🛡️ Admin
	admin := app.Group("/api/a",
		auth.AuthMiddleware(),
		auth.OnlyRoles("Admin access required", "admin", "owner"),
	)
	categoryRoute.CategoryAdminRoutes(admin, db)
	questionRoute.QuestionAdminRoutes(admin, db)
	importRoute.ImportAdminRoutes(admin, db)
}
