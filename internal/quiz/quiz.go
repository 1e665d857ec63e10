// Package quiz turns free-form LLM output into a fixed-size multiple-choice quiz.
//
// The generator is asked for JSON but may wrap it in prose or markdown, cut it
// short, or return the wrong number of questions. Normalize always yields
// exactly Size well-formed questions, filling gaps from a built-in set.
package quiz

import (
	"github.com/Surabhi222005/MentorMe/pkg/model"
)

const (
	// Size is the number of questions in every normalized quiz.
	Size = 5
	// OptionCount is the number of choices each question carries.
	OptionCount = 4
)

var fallbackQuestions = [Size]model.QuizQuestion{
	{
		Question:      "What is the main concept of Java?",
		Options:       []string{"Object-Oriented Programming", "Procedural Programming", "Functional Programming", "Logic Programming"},
		CorrectAnswer: 0,
	},
	{
		Question:      "Which company originally developed Java?",
		Options:       []string{"Microsoft", "Sun Microsystems", "Apple", "Google"},
		CorrectAnswer: 1,
	},
	{
		Question:      "Which keyword is used to inherit a class in Java?",
		Options:       []string{"this", "super", "extends", "implements"},
		CorrectAnswer: 2,
	},
	{
		Question:      "Which method is the entry point of a Java program?",
		Options:       []string{"start()", "main()", "run()", "init()"},
		CorrectAnswer: 1,
	},
	{
		Question:      "Which of these is NOT a Java primitive type?",
		Options:       []string{"int", "float", "String", "boolean"},
		CorrectAnswer: 2,
	},
}

// Fallback returns a fresh copy of the built-in question set.
func Fallback() []model.QuizQuestion {
	out := make([]model.QuizQuestion, 0, Size)
	for i := range fallbackQuestions {
		out = append(out, fallbackAt(i))
	}
	return out
}

func fallbackAt(i int) model.QuizQuestion {
	q := fallbackQuestions[i%len(fallbackQuestions)]
	q.Options = append([]string(nil), q.Options...)
	return q
}

// Valid reports whether q has text, exactly OptionCount options and an
// answer index inside them.
func Valid(q model.QuizQuestion) bool {
	return q.Question != "" &&
		len(q.Options) == OptionCount &&
		q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options)
}
