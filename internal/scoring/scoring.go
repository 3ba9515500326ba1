// Package scoring decides whether an answer is correct and records it against the
// user's running result for the quiz.
package scoring

import (
	"context"
	"fmt"

	"quizapi/internal/models"
)

// Recorder persists one scored submission. The result update must be a single
// atomic update-or-insert keyed on (user, quiz).
type Recorder interface {
	RecordAnswer(ctx context.Context, sub models.Submission) error
}

type Outcome struct {
	IsCorrect bool
	Message   string
	Label     string
}

// Evaluate compares the selected option with the correct one.
func Evaluate(selected, correct string) Outcome {
	if selected == correct {
		return Outcome{IsCorrect: true, Message: "Your answer is Correct", Label: models.LabelCorrect}
	}
	return Outcome{
		IsCorrect: false,
		Message:   fmt.Sprintf("Your answer is Incorrect, The correct answer is: %s", correct),
		Label:     models.LabelIncorrect,
	}
}

type Engine struct {
	recorder Recorder
}

func NewEngine(recorder Recorder) *Engine {
	return &Engine{recorder: recorder}
}

// Submit scores option against question and records it for userID.
func (e *Engine) Submit(ctx context.Context, question models.Question, option string, userID int64) (Outcome, error) {
	outcome := Evaluate(option, question.Correct_option)

	increase := 0
	if outcome.IsCorrect {
		increase = 1
	}

	sub := models.Submission{
		UserID: userID,
		QuizID: question.QuizID,
		Entry: models.AnswerEntry{
			Question:   question.Text,
			UserAnswer: option,
			Result:     outcome.Label,
		},
		Answer: models.Answer{
			QuestionID:      question.ID,
			Selected_option: option,
			UserID:          userID,
			Is_correct:      outcome.IsCorrect,
		},
		Increase: increase,
	}

	if err := e.recorder.RecordAnswer(ctx, sub); err != nil {
		return Outcome{}, fmt.Errorf("record answer: %w", err)
	}
	return outcome, nil
}
