package validation

import (
	"encoding/json"
	"strconv"
	"strings"

	"quizapi/internal/models"
)

type CreateQuizRequest struct {
	Title     string               `json:"title" validate:"required"`
	Questions []models.NewQuestion `json:"questions" validate:"required,min=1,dive"`
}

type FetchQuizRequest struct {
	QuizID string `json:"quizId" validate:"required"`
}

type SubmitAnswerRequest struct {
	QuestionID string      `json:"questionid" validate:"required"`
	Option     string      `json:"option" validate:"required,oneof=a b c d"`
	UserID     json.Number `json:"userId" validate:"required,integer"`
}

type FetchResultRequest struct {
	UserID string `json:"userid" validate:"required,integer"`
	QuizID string `json:"quizId" validate:"required"`
}

// Answer is a validated answer submission.
type Answer struct {
	QuestionID string
	Option     string
	UserID     int64
}

// ResultQuery is a validated result lookup.
type ResultQuery struct {
	UserID int64
	QuizID string
}

// CreateQuiz trims and checks a quiz creation payload.
func CreateQuiz(req CreateQuizRequest) (CreateQuizRequest, error) {
	out := CreateQuizRequest{Title: strings.TrimSpace(req.Title)}
	if req.Questions != nil {
		out.Questions = make([]models.NewQuestion, 0, len(req.Questions))
	}
	for _, q := range req.Questions {
		out.Questions = append(out.Questions, models.NewQuestion{
			Text: strings.TrimSpace(q.Text),
			Options: models.Options{
				A: strings.TrimSpace(q.Options.A),
				B: strings.TrimSpace(q.Options.B),
				C: strings.TrimSpace(q.Options.C),
				D: strings.TrimSpace(q.Options.D),
			},
			Correct_option: strings.TrimSpace(q.Correct_option),
		})
	}

	if err := Struct(out); err != nil {
		return CreateQuizRequest{}, err
	}
	return out, nil
}

func FetchQuiz(req FetchQuizRequest) (string, error) {
	req.QuizID = strings.TrimSpace(req.QuizID)
	if err := Struct(req); err != nil {
		return "", err
	}
	return req.QuizID, nil
}

func SubmitAnswer(req SubmitAnswerRequest) (Answer, error) {
	req.QuestionID = strings.TrimSpace(req.QuestionID)
	req.Option = strings.TrimSpace(req.Option)
	req.UserID = json.Number(strings.TrimSpace(req.UserID.String()))
	if err := Struct(req); err != nil {
		return Answer{}, err
	}

	userID, err := strconv.ParseInt(req.UserID.String(), 10, 64)
	if err != nil {
		return Answer{}, &Error{Field: "userId", Message: `"userId" must be a number`}
	}
	return Answer{QuestionID: req.QuestionID, Option: req.Option, UserID: userID}, nil
}

func FetchResult(req FetchResultRequest) (ResultQuery, error) {
	req.UserID = strings.TrimSpace(req.UserID)
	req.QuizID = strings.TrimSpace(req.QuizID)
	if err := Struct(req); err != nil {
		return ResultQuery{}, err
	}

	userID, err := strconv.ParseInt(req.UserID, 10, 64)
	if err != nil {
		return ResultQuery{}, &Error{Field: "userid", Message: `"userid" must be a number`}
	}
	return ResultQuery{UserID: userID, QuizID: req.QuizID}, nil
}
