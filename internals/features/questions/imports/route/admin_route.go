package route

import (
	importcontroller "examprep_backend/internals/features/questions/imports/controller"
	middlewares "examprep_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ImportAdminRoutes(admin fiber.Router, db *gorm.DB) {
	importCtrl := importcontroller.NewImportController(db)

	imports := admin.Group("/imports", middlewares.ImportRateLimiter())
	imports.Post("/:categorySlug", importCtrl.ImportCategoryBatch) // 📥 Import corpus batch
}
