package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"examprep_backend/internals/features/questions/categories/dto"
	"examprep_backend/internals/features/questions/categories/model"
	helper "examprep_backend/internals/helpers"
)

var validate = validator.New()

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

// =============================
// ➕ Create Category (admin)
// =============================
func (ctrl *CategoryController) CreateCategory(c *fiber.Ctx) error {
	var body dto.CreateCategoryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
		Table:       "categories",
		SlugColumn:  "category_slug",
		DefaultBase: "category",
	}, firstNonEmpty(body.CategorySlug, body.CategoryName))
	if err != nil {
		log.Println("[ERROR] slug generation failed:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create category")
	}

	data := model.CategoryModel{
		CategorySlug:                 slug,
		CategoryName:                 body.CategoryName,
		CategoryDescription:          body.CategoryDescription,
		CategoryDefaultQuestionCount: body.CategoryDefaultQuestionCount,
		CategoryDefaultTimeLimit:     body.CategoryDefaultTimeLimit,
		CategoryIsActive:             true,
	}
	if data.CategoryDefaultQuestionCount == 0 {
		data.CategoryDefaultQuestionCount = 10
	}
	if data.CategoryDefaultTimeLimit == 0 {
		data.CategoryDefaultTimeLimit = 15
	}

	if err := ctrl.DB.Create(&data).Error; err != nil {
		log.Println("[ERROR] create category:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create category")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Category created", dto.ToCategoryDTO(data))
}

// =============================
// 📄 List Categories (public: active only)
// =============================
func (ctrl *CategoryController) GetActiveCategories(c *fiber.Ctx) error {
	var categories []model.CategoryModel
	if err := ctrl.DB.
		Where("category_is_active = ?", true).
		Order("category_name ASC").
		Find(&categories).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch categories")
	}

	dtos := make([]dto.CategoryDTO, 0, len(categories))
	for _, m := range categories {
		dtos = append(dtos, dto.ToCategoryDTO(m))
	}
	return helper.Success(c, "Categories fetched", dtos)
}

// =============================
// 📄 List All Categories (admin, incl. inactive)
// =============================
func (ctrl *CategoryController) GetAllCategories(c *fiber.Ctx) error {
	var categories []model.CategoryModel
	if err := ctrl.DB.Order("category_created_at DESC").Find(&categories).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch categories")
	}

	dtos := make([]dto.CategoryDTO, 0, len(categories))
	for _, m := range categories {
		dtos = append(dtos, dto.ToCategoryDTO(m))
	}
	return helper.Success(c, "Categories fetched", dtos)
}

// =============================
// 🔍 Get Category by slug or id
// =============================
func (ctrl *CategoryController) GetCategory(c *fiber.Ctx) error {
	ref := c.Params("ref")

	var category model.CategoryModel
	err := ctrl.DB.
		Where("category_slug = ? OR category_id::text = ?", ref, ref).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Category not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch category")
	}

	return helper.Success(c, "Category fetched", dto.ToCategoryDTO(category))
}

// =============================
// ✏️ Update Category (admin)
// =============================
func (ctrl *CategoryController) UpdateCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateCategoryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var category model.CategoryModel
	if err := ctrl.DB.First(&category, "category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Category not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch category")
	}

	updates := map[string]interface{}{}
	if body.CategoryName != nil {
		updates["category_name"] = *body.CategoryName
	}
	if body.CategoryDescription != nil {
		updates["category_description"] = *body.CategoryDescription
	}
	if body.CategoryDefaultQuestionCount != nil {
		updates["category_default_question_count"] = *body.CategoryDefaultQuestionCount
	}
	if body.CategoryDefaultTimeLimit != nil {
		updates["category_default_time_limit_minutes"] = *body.CategoryDefaultTimeLimit
	}
	if body.CategoryIsActive != nil {
		updates["category_is_active"] = *body.CategoryIsActive
	}
	if len(updates) == 0 {
		return helper.Success(c, "Nothing to update", dto.ToCategoryDTO(category))
	}

	if err := ctrl.DB.Model(&category).Updates(updates).Error; err != nil {
		log.Println("[ERROR] update category:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update category")
	}

	return helper.Success(c, "Category updated", dto.ToCategoryDTO(category))
}

// =============================
// ❌ Deactivate Category (admin, soft)
// =============================
func (ctrl *CategoryController) DeactivateCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Model(&model.CategoryModel{}).
		Where("category_id = ?", id).
		Update("category_is_active", false)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to deactivate category")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Category not found")
	}

	return helper.Success(c, "Category deactivated", nil)
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
