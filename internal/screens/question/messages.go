package question

import "github.com/abhisek/quizline/internal/store"

// questionReadyMsg carries the first question (nil for an empty quiz).
type questionReadyMsg struct {
	Question *store.Question
	Err      error
}

// answerSavedMsg reports that an answer was recorded and which question
// comes next (nil once the quiz is finished).
type answerSavedMsg struct {
	Next *store.Question
	Err  error
}

// summaryReadyMsg carries the user's answers once the quiz is finished.
type summaryReadyMsg struct {
	Pairs []store.AnswerPair
	Err   error
}
