package route

import (
	questioncontroller "examprep_backend/internals/features/questions/questions/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func QuestionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	questionCtrl := questioncontroller.NewQuestionController(db)

	questions := admin.Group("/questions")
	questions.Post("/", questionCtrl.CreateQuestion)          // ➕ Create question
	questions.Get("/", questionCtrl.GetQuestions)             // 📄 Paginated list
	questions.Get("/:id", questionCtrl.GetQuestionByID)       // 🔍 Detail (with answer)
	questions.Put("/:id", questionCtrl.UpdateQuestion)        // ✏️ Update
	questions.Delete("/:id", questionCtrl.DeactivateQuestion) // ❌ Soft deactivate
}
