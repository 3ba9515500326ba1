package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	QuizCollection     = "Quiz"
	QuestionCollection = "Question"
	AnswerCollection   = "Answer"
	ResultCollection   = "Result"
)

// Connect opens a client against uri and checks the primary is reachable.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	log.Println("Mongo connection successful")
	return client, nil
}

func OpenCollection(db *mongo.Database, collectionName string) *mongo.Collection {
	return db.Collection(collectionName)
}

// EnsureIndexes creates the indexes the quiz invariants rely on: unique quiz
// titles, a single result per (user_id, quiz_id) and ordered question lookups.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{
			collection: QuizCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "title", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		{
			collection: ResultCollection,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "quiz_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		{
			collection: QuestionCollection,
			model: mongo.IndexModel{
				Keys: bson.D{{Key: "quizId", Value: 1}, {Key: "position", Value: 1}},
			},
		},
	}

	for _, idx := range indexes {
		if _, err := OpenCollection(db, idx.collection).Indexes().CreateOne(ctx, idx.model); err != nil {
			return fmt.Errorf("create index on %s: %w", idx.collection, err)
		}
	}
	return nil
}
