package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	LabelCorrect   = "Correct"
	LabelIncorrect = "InCorrect"
)

// AnswerEntry is one line of a user's answer history on a result.
type AnswerEntry struct {
	Question   string `bson:"question" json:"question"`
	UserAnswer string `bson:"userAnswer" json:"userAnswer"`
	Result     string `bson:"result" json:"result"`
}

type Result struct {
	User_id int64              `bson:"user_id" json:"user_id"`
	Quiz_id primitive.ObjectID `bson:"quiz_id" json:"quiz_id"`
	Score   int                `bson:"score" json:"score"`
	Answers []AnswerEntry      `bson:"answers" json:"answers"`
}

// Answer is the append-only log record of a single submission.
type Answer struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	QuestionID      primitive.ObjectID `bson:"questionid" json:"questionid"`
	Selected_option string             `bson:"selected_option" json:"selected_option"`
	UserID          int64              `bson:"userId" json:"userId"`
	Is_correct      bool               `bson:"is_correct" json:"is_correct"`
}

// Submission carries everything needed to persist one scored answer.
type Submission struct {
	UserID   int64
	QuizID   primitive.ObjectID
	Entry    AnswerEntry
	Answer   Answer
	Increase int
}
