package quiz

import (
	"context"
	"errors"

	"github.com/abhisek/quizline/internal/store"
)

var (
	// ErrAlreadyStarted is returned by Start once the flow has left NotStarted.
	ErrAlreadyStarted = errors.New("quiz already started")

	// ErrOutOfOrder is returned by Submit when the answer is not for the
	// question currently being shown, or when no question is being shown.
	ErrOutOfOrder = errors.New("answer is not for the current question")
)

// Sequencer picks the next question in ascending ID order.
type Sequencer interface {
	NextQuestion(ctx context.Context, current *int64) (*store.Question, error)
}

// Responses records answers and reads them back for the summary.
type Responses interface {
	RecordAnswer(ctx context.Context, questionID, userID int64, text string) error
	AnswersForUser(ctx context.Context, userID int64) ([]store.AnswerPair, error)
}

// Phase represents where a user is in the quiz.
type Phase int

const (
	PhaseNotStarted Phase = iota // No question shown yet
	PhaseInProgress              // Showing Current()
	PhaseFinished                // No questions left; summary only
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseInProgress:
		return "in progress"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}
