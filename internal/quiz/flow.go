package quiz

import (
	"context"
	"fmt"

	"github.com/abhisek/quizline/internal/store"
)

// Flow drives one user through the quiz: NotStarted, then InProgress for
// each question in ascending ID order, then Finished. A Flow is not safe for
// concurrent use; one request at a time per user is assumed.
type Flow struct {
	seq       Sequencer
	responses Responses
	userID    int64
	phase     Phase
	current   *store.Question
	answered  int
}

// NewFlow creates a flow for userID in the NotStarted phase.
func NewFlow(seq Sequencer, responses Responses, userID int64) *Flow {
	return &Flow{
		seq:       seq,
		responses: responses,
		userID:    userID,
		phase:     PhaseNotStarted,
	}
}

// UserID returns the user this flow records answers for.
func (f *Flow) UserID() int64 { return f.userID }

// Phase returns the current phase.
func (f *Flow) Phase() Phase { return f.phase }

// Current returns the question being shown, or nil outside InProgress.
func (f *Flow) Current() *store.Question { return f.current }

// Answered returns the number of answers submitted through this flow.
func (f *Flow) Answered() int { return f.answered }

// Start moves the flow to the first question. An empty quiz goes straight
// to Finished and Start returns nil.
func (f *Flow) Start(ctx context.Context) (*store.Question, error) {
	if f.phase != PhaseNotStarted {
		return nil, ErrAlreadyStarted
	}

	q, err := f.seq.NextQuestion(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("first question: %w", err)
	}
	f.moveTo(q)
	return q, nil
}

// Submit records text as the answer to the current question and advances.
// It returns the next question, or nil when the quiz is finished. On error
// the flow stays on the current question.
func (f *Flow) Submit(ctx context.Context, questionID int64, text string) (*store.Question, error) {
	if f.phase != PhaseInProgress || f.current == nil || f.current.ID != questionID {
		return nil, fmt.Errorf("submit question %d: %w", questionID, ErrOutOfOrder)
	}

	next, err := Advance(ctx, f.seq, f.responses, f.userID, questionID, text)
	if err != nil {
		return nil, err
	}
	f.answered++
	f.moveTo(next)
	return next, nil
}

// Summary returns the user's question/answer pairs. It has no side effects
// and may be called any number of times.
func (f *Flow) Summary(ctx context.Context) ([]store.AnswerPair, error) {
	pairs, err := f.responses.AnswersForUser(ctx, f.userID)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	return pairs, nil
}

func (f *Flow) moveTo(q *store.Question) {
	f.current = q
	if q == nil {
		f.phase = PhaseFinished
		return
	}
	f.phase = PhaseInProgress
}

// Advance records an answer and returns the question that follows
// questionID, or nil if questionID was the last one. It holds no state, so
// page handlers that carry the question ID in the URL can call it directly.
func Advance(ctx context.Context, seq Sequencer, responses Responses, userID, questionID int64, text string) (*store.Question, error) {
	if err := responses.RecordAnswer(ctx, questionID, userID, text); err != nil {
		return nil, fmt.Errorf("record answer: %w", err)
	}

	next, err := seq.NextQuestion(ctx, &questionID)
	if err != nil {
		return nil, fmt.Errorf("next question: %w", err)
	}
	return next, nil
}
