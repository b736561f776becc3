package service

import (
	"testing"

	"examprep_backend/internals/features/sessions/exams/model"
	"examprep_backend/internals/features/sessions/scoring"
)

func answeredAttempt(questionID, categoryID, correct, given string, marks, ratio float64) model.ExamAttempt {
	scored := scoring.Score(given, correct, marks, ratio)
	return model.ExamAttempt{
		QuestionID:       questionID,
		CategoryID:       categoryID,
		MarksPerQuestion: marks,
		CorrectAnswer:    correct,
		UserAnswer:       given,
		IsCorrect:        scored.IsCorrect,
		MarksObtained:    scored.MarksDelta,
		TimeSpentSeconds: 60,
	}
}

// Walks the answer-then-finalize tally flow with negative marking: three
// correct, one wrong, one blank at 2 marks each and ratio 0.25 nets
// 6 - 0.5 = 5.5 marks and 60 percent.
func TestApplyTalliesWithNegativeMarking(t *testing.T) {
	session := &model.ExamSessionModel{
		ExamSessionTotalQuestions: 5,
		ExamSessionNegativeRatio:  0.25,
		ExamSessionQuestionsData: []model.ExamAttempt{
			answeredAttempt("q1", "cat-a", "A", "A", 2, 0.25),
			answeredAttempt("q2", "cat-a", "B", "B", 2, 0.25),
			answeredAttempt("q3", "cat-b", "C", "C", 2, 0.25),
			answeredAttempt("q4", "cat-b", "D", "X", 2, 0.25),
			{QuestionID: "q5", CategoryID: "cat-b", MarksPerQuestion: 2, CorrectAnswer: "E"},
		},
	}

	applyTallies(session)

	if session.ExamSessionAttempted != 4 || session.ExamSessionCorrect != 3 ||
		session.ExamSessionIncorrect != 1 || session.ExamSessionSkipped != 1 {
		t.Fatalf("tallies = attempted=%d correct=%d incorrect=%d skipped=%d",
			session.ExamSessionAttempted, session.ExamSessionCorrect,
			session.ExamSessionIncorrect, session.ExamSessionSkipped)
	}
	if session.ExamSessionMarksObtained != 5.5 {
		t.Fatalf("marks = %v, want 5.5", session.ExamSessionMarksObtained)
	}
	if session.ExamSessionPercentage != 60 {
		t.Fatalf("percentage = %v, want 60", session.ExamSessionPercentage)
	}
}

// Re-answering the same question replaces its attempt; the recompute must
// reflect only the latest answer.
func TestApplyTalliesAfterReanswer(t *testing.T) {
	session := &model.ExamSessionModel{
		ExamSessionTotalQuestions: 2,
		ExamSessionQuestionsData: []model.ExamAttempt{
			answeredAttempt("q1", "cat-a", "A", "X", 1, 0),
			{QuestionID: "q2", CategoryID: "cat-a", MarksPerQuestion: 1, CorrectAnswer: "B"},
		},
	}
	applyTallies(session)
	if session.ExamSessionCorrect != 0 || session.ExamSessionIncorrect != 1 {
		t.Fatalf("before re-answer: correct=%d incorrect=%d", session.ExamSessionCorrect, session.ExamSessionIncorrect)
	}

	session.ExamSessionQuestionsData[0] = answeredAttempt("q1", "cat-a", "A", "A", 1, 0)
	applyTallies(session)
	if session.ExamSessionCorrect != 1 || session.ExamSessionIncorrect != 0 || session.ExamSessionMarksObtained != 1 {
		t.Fatalf("after re-answer: correct=%d incorrect=%d marks=%v",
			session.ExamSessionCorrect, session.ExamSessionIncorrect, session.ExamSessionMarksObtained)
	}
}

func TestTalliesByCategorySplit(t *testing.T) {
	session := &model.ExamSessionModel{
		ExamSessionQuestionsData: []model.ExamAttempt{
			answeredAttempt("q1", "cat-a", "A", "A", 2, 0),
			answeredAttempt("q2", "cat-a", "B", "X", 2, 0),
			answeredAttempt("q3", "cat-b", "C", "C", 1, 0),
			{QuestionID: "q4", CategoryID: "cat-b", MarksPerQuestion: 1, CorrectAnswer: "D"},
		},
	}

	byCat := talliesByCategory(session)
	if len(byCat) != 2 {
		t.Fatalf("got %d categories", len(byCat))
	}

	a := byCat["cat-a"]
	if a.Questions != 2 || a.Attempted != 2 || a.Correct != 1 || a.Incorrect != 1 || a.Skipped != 0 {
		t.Fatalf("cat-a tally = %+v", a)
	}
	b := byCat["cat-b"]
	if b.Questions != 2 || b.Attempted != 1 || b.Correct != 1 || b.Skipped != 1 {
		t.Fatalf("cat-b tally = %+v", b)
	}

	// category tallies must sum to the session totals
	if a.Questions+b.Questions != len(session.ExamSessionQuestionsData) {
		t.Fatal("per-category questions do not sum to the session total")
	}
	if a.TimeSpentSeconds+b.TimeSpentSeconds != 180 {
		t.Fatalf("time split = %d + %d", a.TimeSpentSeconds, b.TimeSpentSeconds)
	}
}
