package route

import (
	categorycontroller "examprep_backend/internals/features/questions/categories/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CategoryAdminRoutes(admin fiber.Router, db *gorm.DB) {
	categoryCtrl := categorycontroller.NewCategoryController(db)

	categories := admin.Group("/categories")
	categories.Post("/", categoryCtrl.CreateCategory)            // ➕ Create category
	categories.Get("/", categoryCtrl.GetAllCategories)           // 📄 All categories (incl. inactive)
	categories.Get("/:ref", categoryCtrl.GetCategory)            // 🔍 Detail
	categories.Put("/:id", categoryCtrl.UpdateCategory)          // ✏️ Update
	categories.Delete("/:id", categoryCtrl.DeactivateCategory)   // ❌ Soft deactivate
}
