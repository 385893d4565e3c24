package store

import "context"

// Question is an immutable prompt. Quiz order is ascending ID; IDs need not
// be contiguous.
type Question struct {
	ID   int64
	Text string
}

// AnswerPair is one row of a user's summary: a question and the answer the
// user gave to it.
type AnswerPair struct {
	QuestionID int64
	Question   string
	Answer     string
}

// QuestionRepo provides read access to the seeded questions.
type QuestionRepo interface {
	// NextQuestion returns the question with the smallest ID strictly greater
	// than *current, or the first question when current is nil. It returns
	// nil, nil when there is no such question.
	NextQuestion(ctx context.Context, current *int64) (*Question, error)

	// Question returns the question with the given ID, or ErrNotFound.
	Question(ctx context.Context, id int64) (*Question, error)

	// List returns every question in ascending ID order.
	List(ctx context.Context) ([]Question, error)

	// Count returns the number of questions.
	Count(ctx context.Context) (int, error)

	// Seed inserts questions whose IDs are not present yet. Existing
	// questions are never modified. It returns the number inserted.
	Seed(ctx context.Context, questions []Question) (int, error)
}

// AnswerRepo owns the lifecycle of answers.
type AnswerRepo interface {
	// RecordAnswer writes or overwrites the answer for (questionID, userID).
	// It fails with ErrReferentialViolation if the question does not exist.
	RecordAnswer(ctx context.Context, questionID, userID int64, text string) error

	// AnswersForUser returns the user's answers joined with their questions,
	// ordered by question ID. It returns an empty slice if there are none.
	AnswersForUser(ctx context.Context, userID int64) ([]AnswerPair, error)

	// DeleteForUser removes every answer recorded by userID and returns how
	// many were removed.
	DeleteForUser(ctx context.Context, userID int64) (int64, error)
}
