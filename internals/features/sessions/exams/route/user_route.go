package route

import (
	examcontroller "examprep_backend/internals/features/sessions/exams/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ExamUserRoutes(user fiber.Router, db *gorm.DB) {
	examCtrl := examcontroller.NewExamSessionController(db)

	exams := user.Group("/exams")
	exams.Post("/", examCtrl.CreateExamSession)            // ➕ Create from config
	exams.Get("/", examCtrl.GetExamHistory)                // 📄 History
	exams.Get("/:id", examCtrl.GetExamSession)             // 🔍 Detail
	exams.Post("/:id/start", examCtrl.StartExamSession)    // ▶️ Generate + start
	exams.Patch("/:id/answer", examCtrl.SubmitAnswer)      // ✏️ One answer
	exams.Post("/:id/complete", examCtrl.CompleteExamSession) // ✅ Finalize
	exams.Post("/:id/abandon", examCtrl.AbandonExamSession)   // 🚪 Abandon
}
