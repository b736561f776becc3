package route

import (
	practicecontroller "examprep_backend/internals/features/sessions/practice/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PracticeUserRoutes(user fiber.Router, db *gorm.DB) {
	practiceCtrl := practicecontroller.NewPracticeSessionController(db)

	practice := user.Group("/practice")
	practice.Post("/", practiceCtrl.CreatePracticeSession)          // ➕ Start session
	practice.Get("/", practiceCtrl.GetPracticeHistory)              // 📄 History
	practice.Get("/:id", practiceCtrl.GetPracticeSession)           // 🔍 Detail
	practice.Patch("/:id/answer", practiceCtrl.SubmitAnswer)        // ✏️ One answer
	practice.Post("/:id/complete", practiceCtrl.CompletePracticeSession) // ✅ Finalize
	practice.Post("/:id/abandon", practiceCtrl.AbandonPracticeSession)   // 🚪 Abandon
}
