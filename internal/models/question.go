package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Options holds the four labelled choices of a question.
type Options struct {
	A string `bson:"a" json:"a" validate:"required"`
	B string `bson:"b" json:"b" validate:"required"`
	C string `bson:"c" json:"c" validate:"required"`
	D string `bson:"d" json:"d" validate:"required"`
}

// OptionKeys lists the accepted option labels in display order.
var OptionKeys = []string{"a", "b", "c", "d"}

type Question struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Text           string             `bson:"text" json:"text"`
	Options        Options            `bson:"options" json:"options"`
	Correct_option string             `bson:"correct_option" json:"correct_option"`
	QuizID         primitive.ObjectID `bson:"quizId" json:"quizId"`
	Position       int                `bson:"position" json:"-"`
}

// QuestionView is the public projection of a question, without the correct option.
type QuestionView struct {
	Text       string             `bson:"text" json:"text"`
	Options    Options            `bson:"options" json:"options"`
	QuestionID primitive.ObjectID `bson:"questionId" json:"questionId"`
}
