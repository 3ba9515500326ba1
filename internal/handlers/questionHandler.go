package handlers

import (
	"errors"
	"net/http"

	"quizapi/internal/models"
	httpClient "quizapi/internal/utility/http"
	"quizapi/internal/validation"
)

// FetchQuiz lists a quiz's questions without their correct options.
func (h *Handler) FetchQuiz(w http.ResponseWriter, r *http.Request) {
	quizID, err := validation.FetchQuiz(validation.FetchQuizRequest{
		QuizID: r.URL.Query().Get("quizId"),
	})
	if err != nil {
		httpClient.RespondInvalid(w, err.Error())
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	questions, err := h.store.FetchQuizQuestions(ctx, quizID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if len(questions) == 0 {
		httpClient.RespondData(w, http.StatusNotFound, "Quiz not found", []models.QuestionView{})
		return
	}
	httpClient.RespondData(w, http.StatusOK, "Data fetched successfully", questions)
}

// SubmitAnswer scores one answer and adds it to the user's result for the quiz.
func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var body validation.SubmitAnswerRequest
	if err := validation.DecodeBody(r.Body, &body); err != nil {
		httpClient.RespondInvalid(w, err.Error())
		return
	}
	answer, err := validation.SubmitAnswer(body)
	if err != nil {
		httpClient.RespondInvalid(w, err.Error())
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	question, err := h.store.FetchQuestionByID(ctx, answer.QuestionID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			httpClient.RespondMessage(w, http.StatusNotFound, "Question not found")
			return
		}
		writeStoreError(w, err)
		return
	}

	outcome, err := h.engine.Submit(ctx, question, answer.Option, answer.UserID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	httpClient.RespondMessage(w, http.StatusOK, outcome.Message)
}
