package handlers

import (
	"net/http"

	"quizapi/internal/models"
	httpClient "quizapi/internal/utility/http"
	"quizapi/internal/validation"
)

func (h *Handler) FetchResult(w http.ResponseWriter, r *http.Request) {
	query, err := validation.FetchResult(validation.FetchResultRequest{
		UserID: r.URL.Query().Get("userid"),
		QuizID: r.URL.Query().Get("quizId"),
	})
	if err != nil {
		httpClient.RespondInvalid(w, err.Error())
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	results, err := h.store.FetchResult(ctx, query.UserID, query.QuizID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if len(results) == 0 {
		httpClient.RespondData(w, http.StatusNotFound, "User result not found", []models.Result{})
		return
	}
	httpClient.RespondData(w, http.StatusOK, "Data fetched successfully", results)
}
