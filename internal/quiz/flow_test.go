package quiz

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizline/internal/store"
)

// mockQuestions implements Sequencer over an in-memory question set.
type mockQuestions struct {
	questions []store.Question
	err       error
}

func (m *mockQuestions) NextQuestion(_ context.Context, current *int64) (*store.Question, error) {
	if m.err != nil {
		return nil, m.err
	}
	qs := append([]store.Question(nil), m.questions...)
	sort.Slice(qs, func(i, j int) bool { return qs[i].ID < qs[j].ID })
	for _, q := range qs {
		if current == nil || q.ID > *current {
			q := q
			return &q, nil
		}
	}
	return nil, nil
}

// mockResponses implements Responses and records every write.
type mockResponses struct {
	questions *mockQuestions
	answers   map[int64]map[int64]string
	writes    int
}

func newMockResponses(questions *mockQuestions) *mockResponses {
	return &mockResponses{questions: questions, answers: make(map[int64]map[int64]string)}
}

func (m *mockResponses) RecordAnswer(_ context.Context, questionID, userID int64, text string) error {
	found := false
	for _, q := range m.questions.questions {
		if q.ID == questionID {
			found = true
		}
	}
	if !found {
		return store.ErrReferentialViolation
	}
	if m.answers[userID] == nil {
		m.answers[userID] = make(map[int64]string)
	}
	m.answers[userID][questionID] = text
	m.writes++
	return nil
}

func (m *mockResponses) AnswersForUser(_ context.Context, userID int64) ([]store.AnswerPair, error) {
	pairs := []store.AnswerPair{}
	for _, q := range m.questions.questions {
		if a, ok := m.answers[userID][q.ID]; ok {
			pairs = append(pairs, store.AnswerPair{QuestionID: q.ID, Question: q.Text, Answer: a})
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].QuestionID < pairs[j].QuestionID })
	return pairs, nil
}

func testFlow(userID int64, questions ...store.Question) (*Flow, *mockResponses) {
	mq := &mockQuestions{questions: questions}
	mr := newMockResponses(mq)
	return NewFlow(mq, mr, userID), mr
}

func TestFlow_EmptyQuizFinishesImmediately(t *testing.T) {
	f, _ := testFlow(1)
	q, err := f.Start(context.Background())
	require.NoError(t, err)
	assert.Nil(t, q)
	assert.Equal(t, PhaseFinished, f.Phase())

	pairs, err := f.Summary(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestFlow_StartTwice(t *testing.T) {
	f, _ := testFlow(1, store.Question{ID: 5, Text: "five"})
	_, err := f.Start(context.Background())
	require.NoError(t, err)

	_, err = f.Start(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyStarted)
}

func TestFlow_SubmitOutOfOrder(t *testing.T) {
	ctx := context.Background()
	f, mr := testFlow(1,
		store.Question{ID: 1, Text: "one"},
		store.Question{ID: 2, Text: "two"},
	)

	_, err := f.Submit(ctx, 1, "early")
	assert.ErrorIs(t, err, ErrOutOfOrder)

	_, err = f.Start(ctx)
	require.NoError(t, err)

	_, err = f.Submit(ctx, 2, "skip ahead")
	assert.ErrorIs(t, err, ErrOutOfOrder)
	assert.Equal(t, 0, mr.writes)
	assert.Equal(t, int64(1), f.Current().ID)
}

func TestFlow_NonContiguousOrder(t *testing.T) {
	ctx := context.Background()
	f, _ := testFlow(9,
		store.Question{ID: 30, Text: "c"},
		store.Question{ID: 4, Text: "a"},
		store.Question{ID: 11, Text: "b"},
	)

	q, err := f.Start(ctx)
	require.NoError(t, err)

	var seen []int64
	for q != nil {
		seen = append(seen, q.ID)
		q, err = f.Submit(ctx, q.ID, "x")
		require.NoError(t, err)
	}
	assert.Equal(t, []int64{4, 11, 30}, seen)
	assert.Equal(t, PhaseFinished, f.Phase())
	assert.Equal(t, 3, f.Answered())

	_, err = f.Submit(ctx, 30, "again")
	assert.ErrorIs(t, err, ErrOutOfOrder)
}

func TestFlow_SequencerErrorKeepsState(t *testing.T) {
	ctx := context.Background()
	mq := &mockQuestions{err: errors.New("disk gone")}
	f := NewFlow(mq, newMockResponses(mq), 1)

	_, err := f.Start(ctx)
	require.Error(t, err)
	assert.Equal(t, PhaseNotStarted, f.Phase())
}

func TestAdvance_ReferentialViolation(t *testing.T) {
	mq := &mockQuestions{questions: []store.Question{{ID: 1, Text: "one"}}}
	mr := newMockResponses(mq)

	next, err := Advance(context.Background(), mq, mr, 1, 77, "ghost")
	assert.Nil(t, next)
	assert.ErrorIs(t, err, store.ErrReferentialViolation)
	assert.Equal(t, 0, mr.writes)
}

func TestAdvance_LastQuestion(t *testing.T) {
	mq := &mockQuestions{questions: []store.Question{{ID: 1, Text: "one"}, {ID: 2, Text: "two"}}}
	mr := newMockResponses(mq)

	next, err := Advance(context.Background(), mq, mr, 1, 2, "done")
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "not started", PhaseNotStarted.String())
	assert.Equal(t, "in progress", PhaseInProgress.String())
	assert.Equal(t, "finished", PhaseFinished.String())
	assert.Equal(t, "unknown", Phase(42).String())
}

// TestFlow_EndToEnd runs the full quiz for user 42 against a real store.
func TestFlow_EndToEnd(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(filepath.Join(t.TempDir(), "quizline.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	questions := st.QuestionRepo()
	_, err = questions.Seed(ctx, []store.Question{
		{ID: 1, Text: "What is your name?"},
		{ID: 2, Text: "What is your favorite food?"},
		{ID: 3, Text: "Do you have a nickname?"},
	})
	require.NoError(t, err)

	f := NewFlow(questions, st.AnswerRepo(), 42)

	q, err := f.Start(ctx)
	require.NoError(t, err)
	require.NotNil(t, q)
	assert.Equal(t, store.Question{ID: 1, Text: "What is your name?"}, *q)

	for _, step := range []struct {
		id     int64
		answer string
		next   int64
	}{
		{1, "Ada", 2},
		{2, "Pie", 3},
		{3, "Ace", 0},
	} {
		q, err = f.Submit(ctx, step.id, step.answer)
		require.NoError(t, err)
		if step.next == 0 {
			assert.Nil(t, q)
			continue
		}
		require.NotNil(t, q)
		assert.Equal(t, step.next, q.ID)
	}
	assert.Equal(t, PhaseFinished, f.Phase())

	want := []store.AnswerPair{
		{QuestionID: 1, Question: "What is your name?", Answer: "Ada"},
		{QuestionID: 2, Question: "What is your favorite food?", Answer: "Pie"},
		{QuestionID: 3, Question: "Do you have a nickname?", Answer: "Ace"},
	}
	pairs, err := f.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, pairs)

	// Revisiting the summary is side-effect free.
	pairs, err = f.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, pairs)
}
