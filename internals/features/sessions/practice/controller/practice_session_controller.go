package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"examprep_backend/internals/features/sessions/practice/dto"
	"examprep_backend/internals/features/sessions/practice/model"
	"examprep_backend/internals/features/sessions/practice/service"
	helper "examprep_backend/internals/helpers"
)

var validate = validator.New()

type PracticeSessionController struct {
	DB *gorm.DB
}

func NewPracticeSessionController(db *gorm.DB) *PracticeSessionController {
	return &PracticeSessionController{DB: db}
}

// =============================
// ➕ Start Practice Session
// =============================
func (ctrl *PracticeSessionController) CreatePracticeSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var body dto.CreatePracticeSessionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	session, err := service.CreateSession(ctrl.DB, userID, body.Category, body.QuestionCount, body.TimeLimitMinutes)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Practice session started", dto.ToPracticeSessionDTO(*session))
}

// =============================
// 🔍 Get Practice Session (ownership-scoped)
// =============================
func (ctrl *PracticeSessionController) GetPracticeSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	session, err := service.GetByID(ctrl.DB, c.Params("id"), userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Practice session fetched", dto.ToPracticeSessionDTO(*session))
}

// =============================
// 📄 Practice History (paginated)
// =============================
func (ctrl *PracticeSessionController) GetPracticeHistory(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	p := helper.ParseFiber(c, "started_at", "desc", helper.DefaultOpts)

	query := ctrl.DB.Model(&model.PracticeSessionModel{}).
		Where("practice_session_user_id = ?", userID.String())
	if status := c.Query("status"); status != "" {
		query = query.Where("practice_session_status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count sessions")
	}

	var sessions []model.PracticeSessionModel
	if err := query.
		Order("practice_session_started_at DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&sessions).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch sessions")
	}

	dtos := make([]dto.PracticeSessionDTO, 0, len(sessions))
	for _, s := range sessions {
		dtos = append(dtos, dto.ToPracticeSessionDTO(s))
	}

	return helper.Success(c, "Practice history fetched", fiber.Map{
		"items": dtos,
		"meta":  helper.BuildMeta(total, p),
	})
}

// =============================
// ✏️ Submit / Update One Answer
// =============================
func (ctrl *PracticeSessionController) SubmitAnswer(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var body dto.SubmitPracticeAnswerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	session, err := service.SubmitAnswer(ctrl.DB, c.Params("id"), userID, body.QuestionID, body.UserAnswer, body.TimeSpentSeconds)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Answer recorded", dto.ToPracticeSessionDTO(*session))
}

// =============================
// ✅ Complete Practice Session
// =============================
func (ctrl *PracticeSessionController) CompletePracticeSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	session, err := service.Complete(ctrl.DB, c.Params("id"), userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Practice session completed", dto.ToPracticeSessionDTO(*session))
}

// =============================
// 🚪 Abandon Practice Session
// =============================
func (ctrl *PracticeSessionController) AbandonPracticeSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	session, err := service.Abandon(ctrl.DB, c.Params("id"), userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Practice session abandoned", dto.ToPracticeSessionDTO(*session))
}
