package handlers

import (
	"context"
	"sync"

	"quizapi/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type resultKey struct {
	userID int64
	quizID primitive.ObjectID
}

// memoryStore mimics the Mongo store: unique titles, one result per
// (user, quiz) updated atomically, append-only answers.
type memoryStore struct {
	mu        sync.Mutex
	quizzes   []models.Quiz
	questions []models.Question
	answers   []models.Answer
	results   map[resultKey]*models.Result

	calls   int
	err     error
	pingErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{results: make(map[resultKey]*models.Result)}
}

func (m *memoryStore) CreateQuiz(_ context.Context, title string, questions []models.NewQuestion) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}

	for _, quiz := range m.quizzes {
		if quiz.Title == title {
			return primitive.NilObjectID, models.ErrQuizExists
		}
	}

	quiz := models.Quiz{ID: primitive.NewObjectID(), Title: title}
	for i, q := range questions {
		quiz.Questions = append(quiz.Questions, models.QuizQuestion{Question: q.Text})
		m.questions = append(m.questions, models.Question{
			ID:             primitive.NewObjectID(),
			Text:           q.Text,
			Options:        q.Options,
			Correct_option: q.Correct_option,
			QuizID:         quiz.ID,
			Position:       i,
		})
	}
	m.quizzes = append(m.quizzes, quiz)
	return quiz.ID, nil
}

func (m *memoryStore) FetchQuizQuestions(_ context.Context, quizID string) ([]models.QuestionView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}

	views := []models.QuestionView{}
	for _, q := range m.questions {
		if q.QuizID.Hex() == quizID {
			views = append(views, models.QuestionView{Text: q.Text, Options: q.Options, QuestionID: q.ID})
		}
	}
	return views, nil
}

func (m *memoryStore) FetchQuestionByID(_ context.Context, questionID string) (models.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return models.Question{}, m.err
	}

	for _, q := range m.questions {
		if q.ID.Hex() == questionID {
			return q, nil
		}
	}
	return models.Question{}, models.ErrNotFound
}

func (m *memoryStore) FetchResult(_ context.Context, userID int64, quizID string) ([]models.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}

	results := []models.Result{}
	for key, result := range m.results {
		if key.userID == userID && key.quizID.Hex() == quizID {
			results = append(results, *result)
		}
	}
	return results, nil
}

func (m *memoryStore) RecordAnswer(_ context.Context, sub models.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return m.err
	}

	key := resultKey{userID: sub.UserID, quizID: sub.QuizID}
	result, ok := m.results[key]
	if !ok {
		result = &models.Result{User_id: sub.UserID, Quiz_id: sub.QuizID}
		m.results[key] = result
	}
	result.Score += sub.Increase
	result.Answers = append(result.Answers, sub.Entry)

	m.answers = append(m.answers, sub.Answer)
	return nil
}

func (m *memoryStore) Ping(context.Context) error {
	return m.pingErr
}
