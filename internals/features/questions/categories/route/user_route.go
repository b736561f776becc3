package route

import (
	categorycontroller "examprep_backend/internals/features/questions/categories/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CategoryUserRoutes(user fiber.Router, db *gorm.DB) {
	categoryCtrl := categorycontroller.NewCategoryController(db)

	categories := user.Group("/categories")
	categories.Get("/", categoryCtrl.GetActiveCategories) // 📄 Active categories
	categories.Get("/:ref", categoryCtrl.GetCategory)     // 🔍 Detail by slug or id
}
