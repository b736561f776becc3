package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	categoryModel "examprep_backend/internals/features/questions/categories/model"
	"examprep_backend/internals/features/questions/imports/service"
	helper "examprep_backend/internals/helpers"
)

type ImportController struct {
	DB *gorm.DB
}

func NewImportController(db *gorm.DB) *ImportController {
	return &ImportController{DB: db}
}

// =============================
// 📥 Import corpus batch for a category
// =============================
// Body is the raw corpus JSON array itself; upload plumbing stays outside.
func (ctrl *ImportController) ImportCategoryBatch(c *fiber.Ctx) error {
	slug := c.Params("categorySlug")

	var category categoryModel.CategoryModel
	if err := ctrl.DB.First(&category, "category_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Category not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to resolve category")
	}

	var raws []service.RawQuestion
	if err := c.BodyParser(&raws); err != nil {
		// A corpus that is not an array is batch-fatal
		return helper.Error(c, fiber.StatusBadRequest, "Body must be a JSON array of questions")
	}
	if len(raws) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Empty question batch")
	}

	source := c.Query("source", "import")
	result, err := service.ImportBatch(ctrl.DB, category, raws, source)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Import finished with storage errors")
	}

	return helper.Success(c, "Import finished", result)
}
