package handlers

import (
	"net/http"

	httpClient "quizapi/internal/utility/http"
	"quizapi/internal/validation"
)

type createQuizResponse struct {
	Message string `json:"message"`
	QuizID  string `json:"quizId"`
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var body validation.CreateQuizRequest
	if err := validation.DecodeBody(r.Body, &body); err != nil {
		httpClient.RespondInvalid(w, err.Error())
		return
	}
	req, err := validation.CreateQuiz(body)
	if err != nil {
		httpClient.RespondInvalid(w, err.Error())
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	quizID, err := h.store.CreateQuiz(ctx, req.Title, req.Questions)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	httpClient.RespondJSON(w, http.StatusCreated, createQuizResponse{
		Message: "Quiz created successfully",
		QuizID:  quizID.Hex(),
	})
}
