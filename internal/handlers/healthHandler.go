package handlers

import (
	"net/http"

	httpClient "quizapi/internal/utility/http"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		httpClient.RespondError(w, http.StatusServiceUnavailable, "Store unavailable", err)
		return
	}
	httpClient.RespondMessage(w, http.StatusOK, "OK")
}
