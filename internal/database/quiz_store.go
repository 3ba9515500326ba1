package database

import (
	"context"
	"errors"
	"fmt"

	"quizapi/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// QuizStore keeps quizzes, questions, answers and results in MongoDB.
//
// Without transactions the two-step writes are not atomic: a failed question
// insert leaves a quiz with no questions, and a failed answer insert leaves a
// result that was already updated.
type QuizStore struct {
	db           *mongo.Database
	quizzes      *mongo.Collection
	questions    *mongo.Collection
	answers      *mongo.Collection
	results      *mongo.Collection
	transactions bool
}

// NewQuizStore wraps db. With transactions set, quiz creation and answer
// recording run inside one multi-document transaction (replica sets only).
func NewQuizStore(db *mongo.Database, transactions bool) *QuizStore {
	return &QuizStore{
		db:           db,
		quizzes:      OpenCollection(db, QuizCollection),
		questions:    OpenCollection(db, QuestionCollection),
		answers:      OpenCollection(db, AnswerCollection),
		results:      OpenCollection(db, ResultCollection),
		transactions: transactions,
	}
}

func (s *QuizStore) withTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if !s.transactions {
		return fn(ctx)
	}

	session, err := s.db.Client().StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// CreateQuiz stores a quiz titled title and its questions, in order.
func (s *QuizStore) CreateQuiz(ctx context.Context, title string, questions []models.NewQuestion) (primitive.ObjectID, error) {
	quiz := models.Quiz{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Questions: make([]models.QuizQuestion, 0, len(questions)),
	}
	docs := make([]interface{}, 0, len(questions))
	for i, q := range questions {
		quiz.Questions = append(quiz.Questions, models.QuizQuestion{Question: q.Text})
		docs = append(docs, models.Question{
			ID:             primitive.NewObjectID(),
			Text:           q.Text,
			Options:        q.Options,
			Correct_option: q.Correct_option,
			QuizID:         quiz.ID,
			Position:       i,
		})
	}

	err := s.withTransaction(ctx, func(ctx context.Context) error {
		// Checking if quiz already exists
		alreadyExists, err := s.quizzes.CountDocuments(ctx, bson.M{"title": title})
		if err != nil {
			return fmt.Errorf("count quizzes: %w", err)
		}
		if alreadyExists > 0 {
			return models.ErrQuizExists
		}

		if _, err := s.quizzes.InsertOne(ctx, quiz); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return models.ErrQuizExists
			}
			return fmt.Errorf("insert quiz: %w", err)
		}
		if len(docs) == 0 {
			return nil
		}
		if _, err := s.questions.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("insert questions: %w", err)
		}
		return nil
	})
	if err != nil {
		return primitive.NilObjectID, err
	}
	return quiz.ID, nil
}

// FetchQuizQuestions returns the public view of a quiz's questions in creation
// order. An unknown or malformed quiz id yields an empty slice.
func (s *QuizStore) FetchQuizQuestions(ctx context.Context, quizID string) ([]models.QuestionView, error) {
	views := []models.QuestionView{}
	oid, err := primitive.ObjectIDFromHex(quizID)
	if err != nil {
		return views, nil
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "position", Value: 1}}).
		SetProjection(bson.D{{Key: "_id", Value: 1}, {Key: "text", Value: 1}, {Key: "options", Value: 1}})

	cur, err := s.questions.Find(ctx, bson.M{"quizId": oid}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find questions: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var question models.Question
		if err := cur.Decode(&question); err != nil {
			return nil, fmt.Errorf("decode question: %w", err)
		}
		views = append(views, models.QuestionView{
			Text:       question.Text,
			Options:    question.Options,
			QuestionID: question.ID,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return views, nil
}

// FetchQuestionByID returns the question with its correct option and owning quiz.
func (s *QuizStore) FetchQuestionByID(ctx context.Context, questionID string) (models.Question, error) {
	oid, err := primitive.ObjectIDFromHex(questionID)
	if err != nil {
		return models.Question{}, models.ErrNotFound
	}

	projection := bson.D{
		{Key: "_id", Value: 1},
		{Key: "text", Value: 1},
		{Key: "correct_option", Value: 1},
		{Key: "quizId", Value: 1},
	}

	var question models.Question
	err = s.questions.FindOne(ctx, bson.M{"_id": oid}, options.FindOne().SetProjection(projection)).Decode(&question)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Question{}, models.ErrNotFound
		}
		return models.Question{}, fmt.Errorf("find question: %w", err)
	}
	return question, nil
}

// FetchResult returns the result documents for the (userID, quizID) pair.
func (s *QuizStore) FetchResult(ctx context.Context, userID int64, quizID string) ([]models.Result, error) {
	results := []models.Result{}
	oid, err := primitive.ObjectIDFromHex(quizID)
	if err != nil {
		return results, nil
	}

	projection := bson.D{
		{Key: "_id", Value: 0},
		{Key: "user_id", Value: 1},
		{Key: "quiz_id", Value: 1},
		{Key: "score", Value: 1},
		{Key: "answers", Value: 1},
	}
	cur, err := s.results.Find(ctx, bson.M{"user_id": userID, "quiz_id": oid}, options.Find().SetProjection(projection))
	if err != nil {
		return nil, fmt.Errorf("find results: %w", err)
	}
	if err := cur.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode results: %w", err)
	}
	return results, nil
}

// RecordAnswer applies the score increment and history entry to the caller's
// result in one upsert, then logs the answer.
func (s *QuizStore) RecordAnswer(ctx context.Context, sub models.Submission) error {
	return s.withTransaction(ctx, func(ctx context.Context) error {
		filter := bson.D{{Key: "user_id", Value: sub.UserID}, {Key: "quiz_id", Value: sub.QuizID}}
		update := bson.D{
			{Key: "$inc", Value: bson.D{{Key: "score", Value: sub.Increase}}},
			{Key: "$push", Value: bson.D{{Key: "answers", Value: sub.Entry}}},
		}
		if _, err := s.results.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			return fmt.Errorf("upsert result: %w", err)
		}

		answer := sub.Answer
		if answer.ID.IsZero() {
			answer.ID = primitive.NewObjectID()
		}
		if _, err := s.answers.InsertOne(ctx, answer); err != nil {
			return fmt.Errorf("insert answer: %w", err)
		}
		return nil
	})
}

func (s *QuizStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}
