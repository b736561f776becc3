package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"examprep_backend/internals/features/sessions/exams/dto"
	"examprep_backend/internals/features/sessions/exams/model"
	"examprep_backend/internals/features/sessions/exams/service"
	helper "examprep_backend/internals/helpers"
)

var validate = validator.New()

type ExamSessionController struct {
	DB *gorm.DB
}

func NewExamSessionController(db *gorm.DB) *ExamSessionController {
	return &ExamSessionController{DB: db}
}

// =============================
// ➕ Create Exam Session
// =============================
func (ctrl *ExamSessionController) CreateExamSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var body dto.CreateExamSessionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	cfg := service.ExamConfig{
		Name:            body.ExamName,
		TotalMarks:      body.TotalMarks,
		DurationMinutes: body.DurationMinutes,
		NegativeMarking: body.NegativeMarking,
		NegativeRatio:   body.NegativeRatio,
	}
	for _, d := range body.Distribution {
		cfg.Distribution = append(cfg.Distribution, service.DistributionInput{
			Category:         d.Category,
			Count:            d.Count,
			MarksPerQuestion: d.MarksPerQuestion,
		})
	}

	session, err := service.CreateSession(ctrl.DB, userID, cfg)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Exam session created", dto.ToExamSessionDTO(*session))
}

// =============================
// ▶️ Start Exam (generate question set once)
// =============================
func (ctrl *ExamSessionController) StartExamSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	session, err := service.GenerateQuestions(ctrl.DB, c.Params("id"), userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Exam started", dto.ToExamSessionDTO(*session))
}

// =============================
// 🔍 Get Exam Session (ownership-scoped)
// =============================
func (ctrl *ExamSessionController) GetExamSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	session, err := service.GetByID(ctrl.DB, c.Params("id"), userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Exam session fetched", dto.ToExamSessionDTO(*session))
}

// =============================
// 📄 Exam History (paginated)
// =============================
func (ctrl *ExamSessionController) GetExamHistory(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	query := ctrl.DB.Model(&model.ExamSessionModel{}).
		Where("exam_session_user_id = ?", userID.String())
	if status := c.Query("status"); status != "" {
		query = query.Where("exam_session_status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count sessions")
	}

	var sessions []model.ExamSessionModel
	if err := query.
		Order("exam_session_created_at DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&sessions).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch sessions")
	}

	dtos := make([]dto.ExamSessionDTO, 0, len(sessions))
	for _, s := range sessions {
		dtos = append(dtos, dto.ToExamSessionDTO(s))
	}

	return helper.Success(c, "Exam history fetched", fiber.Map{
		"items": dtos,
		"meta":  helper.BuildMeta(total, p),
	})
}

// =============================
// ✏️ Submit / Update One Answer
// =============================
func (ctrl *ExamSessionController) SubmitAnswer(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	var body dto.SubmitExamAnswerRequest
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

	return helper.Success(c, "Answer recorded", dto.ToExamSessionDTO(*session))
}

// =============================
// ✅ Complete Exam Session
// =============================
func (ctrl *ExamSessionController) CompleteExamSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	session, err := service.Complete(ctrl.DB, c.Params("id"), userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Exam completed", dto.ToExamSessionDTO(*session))
}

// =============================
// 🚪 Abandon Exam Session
// =============================
func (ctrl *ExamSessionController) AbandonExamSession(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	session, err := service.Abandon(ctrl.DB, c.Params("id"), userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Exam abandoned", dto.ToExamSessionDTO(*session))
}
