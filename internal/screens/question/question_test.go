package question

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizline/internal/quiz"
	"github.com/abhisek/quizline/internal/router"
	"github.com/abhisek/quizline/internal/screen"
	"github.com/abhisek/quizline/internal/screens/summary"
	"github.com/abhisek/quizline/internal/store"
)

// memQuiz implements quiz.Sequencer and quiz.Responses in memory.
type memQuiz struct {
	questions []store.Question // ascending IDs
	answers   map[int64]string
	recordErr error
}

func (m *memQuiz) NextQuestion(_ context.Context, current *int64) (*store.Question, error) {
	for _, q := range m.questions {
		if current == nil || q.ID > *current {
			q := q
			return &q, nil
		}
	}
	return nil, nil
}

func (m *memQuiz) RecordAnswer(_ context.Context, questionID, _ int64, text string) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.answers[questionID] = text
	return nil
}

func (m *memQuiz) AnswersForUser(_ context.Context, _ int64) ([]store.AnswerPair, error) {
	var pairs []store.AnswerPair
	for _, q := range m.questions {
		if a, ok := m.answers[q.ID]; ok {
			pairs = append(pairs, store.AnswerPair{QuestionID: q.ID, Question: q.Text, Answer: a})
		}
	}
	return pairs, nil
}

func newMemQuiz(questions ...store.Question) *memQuiz {
	return &memQuiz{questions: questions, answers: make(map[int64]string)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// started returns a screen that has already received its first question.
func started(t *testing.T, m *memQuiz) *QuestionScreen {
	t.Helper()
	s := New(quiz.NewFlow(m, m, 42), len(m.questions))
	s.busy = true
	scr, _ := s.Update(s.start()())
	return scr.(*QuestionScreen)
}

func TestQuestionScreen_ShowsFirstQuestion(t *testing.T) {
	s := started(t, newMemQuiz(
		store.Question{ID: 5, Text: "What is your name?"},
		store.Question{ID: 9, Text: "What is your favorite food?"},
	))

	require.NotNil(t, s.question)
	assert.Equal(t, int64(5), s.question.ID)
	assert.Equal(t, "Question 1", s.Title())
	assert.Contains(t, s.View(80, 20), "What is your name?")
}

func TestQuestionScreen_SubmitAdvances(t *testing.T) {
	m := newMemQuiz(
		store.Question{ID: 1, Text: "What is your name?"},
		store.Question{ID: 2, Text: "What is your favorite food?"},
	)
	s := started(t, m)

	s.input.Model.SetValue("Ada")
	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)

	// A second Enter while the save is in flight does nothing.
	_, again := scr.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, again)

	scr, _ = scr.Update(cmd())
	ss := scr.(*QuestionScreen)

	assert.Equal(t, "Ada", m.answers[1])
	assert.Equal(t, int64(2), ss.question.ID)
	assert.Equal(t, 1, ss.answered)
	assert.Equal(t, "", ss.input.Value())
}

func TestQuestionScreen_LastAnswerShowsSummary(t *testing.T) {
	m := newMemQuiz(store.Question{ID: 1, Text: "What is your name?"})
	s := started(t, m)

	s.input.Model.SetValue("Ada")
	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	scr, cmd = scr.Update(cmd()) // answer saved, quiz finished
	require.NotNil(t, cmd)
	assert.Nil(t, scr.(*QuestionScreen).question)

	_, cmd = scr.Update(cmd()) // summary loaded
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok, "expected a screen replacement")
	_, ok = msg.Screen.(*summary.SummaryScreen)
	assert.True(t, ok)
}

func TestQuestionScreen_EmptyQuizGoesToSummary(t *testing.T) {
	s := New(quiz.NewFlow(newMemQuiz(), newMemQuiz(), 1), 0)
	_, cmd := s.Update(s.start()())
	require.NotNil(t, cmd)

	_, ok := cmd().(summaryReadyMsg)
	assert.True(t, ok)
}

func TestQuestionScreen_SaveErrorStays(t *testing.T) {
	m := newMemQuiz(store.Question{ID: 1, Text: "What is your name?"})
	m.recordErr = errors.New("disk full")
	s := started(t, m)

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(cmd())
	ss := scr.(*QuestionScreen)

	assert.Equal(t, int64(1), ss.question.ID)
	assert.Contains(t, ss.errMsg, "disk full")
	assert.False(t, ss.busy)
	assert.Contains(t, ss.View(80, 20), "Could not save your answer")
}

func TestQuestionScreen_EscQuits(t *testing.T) {
	s := started(t, newMemQuiz(store.Question{ID: 1, Text: "q"}))
	_, cmd := s.Update(specialKey(tea.KeyEscape))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestQuestionScreen_KeyHints(t *testing.T) {
	assert.Len(t, New(nil, 0).KeyHints(), 2)
}
