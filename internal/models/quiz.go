package models

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrQuizExists = errors.New("quiz already exists")
	ErrNotFound   = errors.New("not found")
)

// QuizQuestion is the per-question projection kept on the quiz document.
type QuizQuestion struct {
	Question string `bson:"question" json:"question"`
}

type Quiz struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"quizId"`
	Title     string             `bson:"title" json:"title"`
	Questions []QuizQuestion     `bson:"questions" json:"questions"`
}

// NewQuestion is a question as submitted on quiz creation.
type NewQuestion struct {
	Text           string  `json:"text" validate:"required"`
	Options        Options `json:"options"`
	Correct_option string  `json:"correct_option" validate:"required,oneof=a b c d"`
}
