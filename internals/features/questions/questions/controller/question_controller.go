package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	categoryModel "examprep_backend/internals/features/questions/categories/model"
	"examprep_backend/internals/features/questions/questions/dto"
	"examprep_backend/internals/features/questions/questions/model"
	helper "examprep_backend/internals/helpers"
)

var validate = validator.New()

type QuestionController struct {
	DB *gorm.DB
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{DB: db}
}

// optionTexts flattens options for the denormalized text[] column.
func optionTexts(options []model.QuestionOption) pq.StringArray {
	out := make(pq.StringArray, 0, len(options))
	for _, opt := range options {
		out = append(out, opt.Text)
	}
	return out
}

// findCorrectText resolves the text of the option with the given id.
func findCorrectText(options []model.QuestionOption, correctID int) (string, bool) {
	for _, opt := range options {
		if opt.ID == correctID {
			return opt.Text, true
		}
	}
	return "", false
}

// =============================
// ➕ Create Question (admin)
// =============================
func (ctrl *QuestionController) CreateQuestion(c *fiber.Ctx) error {
	var body dto.CreateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	// Correct option must reference an existing option id
	correctText, ok := findCorrectText(body.QuestionOptions, body.QuestionCorrectOption)
	if !ok {
		return helper.Error(c, fiber.StatusBadRequest, "question_correct_option does not match any option id")
	}

	var category categoryModel.CategoryModel
	if err := ctrl.DB.First(&category, "category_id = ?", body.QuestionCategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Category not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to resolve category")
	}

	data := model.QuestionModel{
		QuestionCategoryID:    category.CategoryID,
		QuestionText:          strings.TrimSpace(body.QuestionText),
		QuestionOptions:       body.QuestionOptions,
		QuestionOptionTexts:   optionTexts(body.QuestionOptions),
		QuestionCorrectOption: body.QuestionCorrectOption,
		QuestionCorrectAnswer: correctText,
		QuestionExplanation:   body.QuestionExplanation,
		QuestionDifficulty:    body.QuestionDifficulty,
		QuestionTopicSlug:     body.QuestionTopicSlug,
		QuestionSource:        body.QuestionSource,
		QuestionIsActive:      true,
	}
	if data.QuestionDifficulty == "" {
		data.QuestionDifficulty = "medium"
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&data).Error; err != nil {
			return err
		}
		return tx.Model(&categoryModel.CategoryModel{}).
			Where("category_id = ?", category.CategoryID).
			Update("category_question_count", gorm.Expr("category_question_count + ?", 1)).Error
	})
	if err != nil {
		log.Println("[ERROR] create question:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create question")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Question created", dto.ToQuestionDTO(data))
}

// =============================
// 📄 List Questions (admin, paginated)
// =============================
func (ctrl *QuestionController) GetQuestions(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	query := ctrl.DB.Model(&model.QuestionModel{})
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("question_category_id = ?", categoryID)
	}
	if topic := c.Query("topic"); topic != "" {
		query = query.Where("question_topic_slug = ?", topic)
	}
	if difficulty := c.Query("difficulty"); difficulty != "" {
		query = query.Where("question_difficulty = ?", difficulty)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count questions")
	}

	orderClause, err := p.SafeOrderClause(map[string]string{
		"created_at": "question_created_at",
		"difficulty": "question_difficulty",
	}, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid sort key")
	}

	var questions []model.QuestionModel
	if err := query.
		Order(strings.TrimPrefix(orderClause, "ORDER BY ")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&questions).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	dtos := make([]dto.QuestionDTO, 0, len(questions))
	for _, q := range questions {
		dtos = append(dtos, dto.ToQuestionDTO(q))
	}

	return helper.Success(c, "Questions fetched", fiber.Map{
		"items": dtos,
		"meta":  helper.BuildMeta(total, p),
	})
}

// =============================
// 🔍 Get Question by ID (admin)
// =============================
func (ctrl *QuestionController) GetQuestionByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var question model.QuestionModel
	if err := ctrl.DB.First(&question, "question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch question")
	}

	return helper.Success(c, "Question fetched", dto.ToQuestionDTO(question))
}

// =============================
// ✏️ Update Question (admin)
// =============================
func (ctrl *QuestionController) UpdateQuestion(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var question model.QuestionModel
	if err := ctrl.DB.First(&question, "question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch question")
	}

	if body.QuestionText != nil {
		question.QuestionText = strings.TrimSpace(*body.QuestionText)
	}
	if body.QuestionOptions != nil {
		question.QuestionOptions = *body.QuestionOptions
		question.QuestionOptionTexts = optionTexts(question.QuestionOptions)
	}
	if body.QuestionCorrectOption != nil {
		question.QuestionCorrectOption = *body.QuestionCorrectOption
	}
	// Keep answer text in sync with (possibly updated) options + correct id
	if body.QuestionOptions != nil || body.QuestionCorrectOption != nil {
		text, ok := findCorrectText(question.QuestionOptions, question.QuestionCorrectOption)
		if !ok {
			return helper.Error(c, fiber.StatusBadRequest, "question_correct_option does not match any option id")
		}
		question.QuestionCorrectAnswer = text
	}
	if body.QuestionExplanation != nil {
		question.QuestionExplanation = *body.QuestionExplanation
	}
	if body.QuestionDifficulty != nil {
		question.QuestionDifficulty = *body.QuestionDifficulty
	}
	if body.QuestionTopicSlug != nil {
		question.QuestionTopicSlug = *body.QuestionTopicSlug
	}
	if body.QuestionIsActive != nil {
		question.QuestionIsActive = *body.QuestionIsActive
	}

	if err := ctrl.DB.Save(&question).Error; err != nil {
		log.Println("[ERROR] update question:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update question")
	}

	return helper.Success(c, "Question updated", dto.ToQuestionDTO(question))
}

// =============================
// ❌ Deactivate Question (admin, soft — history stays intact)
// =============================
func (ctrl *QuestionController) DeactivateQuestion(c *fiber.Ctx) error {
	id := c.Params("id")

	var question model.QuestionModel
	if err := ctrl.DB.First(&question, "question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch question")
	}
	if !question.QuestionIsActive {
		return helper.Success(c, "Question already inactive", nil)
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&question).Update("question_is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&categoryModel.CategoryModel{}).
			Where("category_id = ?", question.QuestionCategoryID).
			Update("category_question_count", gorm.Expr("category_question_count - ?", 1)).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to deactivate question")
	}

	return helper.Success(c, "Question deactivated", nil)
}
