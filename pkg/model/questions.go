package model

import "time"

// QuizQuestion is one multiple-choice question. CorrectAnswer indexes Options.
type QuizQuestion struct {
	Question      string   `json:"question" bson:"question"`
	Options       []string `json:"options" bson:"options"`
	CorrectAnswer int      `json:"correctAnswer" bson:"correctAnswer"`
}

// AnsweredQuestion is a quiz question together with the answer the user picked.
type AnsweredQuestion struct {
	QuizQuestion `bson:",inline"`
	UserAnswer   *int `json:"userAnswer,omitempty" bson:"userAnswer,omitempty"`
}

type GenerateQuizReq struct {
	Topic string `json:"topic"`
}

type GenerateQuizRes struct {
	Success   bool           `json:"success"`
	Questions []QuizQuestion `json:"questions"`
	Topic     string         `json:"topic"`
}

type SaveQuizResultReq struct {
	UserID         string             `json:"userId"`
	Topic          string             `json:"topic"`
	Score          int                `json:"score"`
	TotalQuestions int                `json:"totalQuestions"`
	Questions      []AnsweredQuestion `json:"questions"`
}

type QuizResultEntry struct {
	ID             string             `json:"id" bson:"id"`
	Timestamp      time.Time          `json:"timestamp" bson:"timestamp"`
	Topic          string             `json:"topic" bson:"topic"`
	Score          int                `json:"score" bson:"score"`
	TotalQuestions int                `json:"totalQuestions" bson:"totalQuestions"`
	Questions      []AnsweredQuestion `json:"questions" bson:"questions"`
}
