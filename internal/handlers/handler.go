package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"quizapi/internal/models"
	"quizapi/internal/scoring"
	httpClient "quizapi/internal/utility/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultTimeout = 10 * time.Second

// Store is the data access the handlers need.
type Store interface {
	CreateQuiz(ctx context.Context, title string, questions []models.NewQuestion) (primitive.ObjectID, error)
	FetchQuizQuestions(ctx context.Context, quizID string) ([]models.QuestionView, error)
	FetchQuestionByID(ctx context.Context, questionID string) (models.Question, error)
	FetchResult(ctx context.Context, userID int64, quizID string) ([]models.Result, error)
	Ping(ctx context.Context) error
}

// Handler serves the quiz endpoints. It holds no per-request state.
type Handler struct {
	store   Store
	engine  *scoring.Engine
	timeout time.Duration
}

func New(store Store, engine *scoring.Engine, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Handler{
		store:   store,
		engine:  engine,
		timeout: timeout,
	}
}

func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.timeout)
}

// writeStoreError maps store failures that are not handled by the caller.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrQuizExists):
		httpClient.RespondMessage(w, http.StatusConflict, "Quiz already exists")
	default:
		httpClient.RespondError(w, http.StatusInternalServerError, fmt.Sprintf("Error occurred: %s", err.Error()), err)
	}
}
