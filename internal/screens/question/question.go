package question

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizline/internal/quiz"
	"github.com/abhisek/quizline/internal/router"
	"github.com/abhisek/quizline/internal/screen"
	"github.com/abhisek/quizline/internal/screens/summary"
	"github.com/abhisek/quizline/internal/store"
	"github.com/abhisek/quizline/internal/ui/components"
	"github.com/abhisek/quizline/internal/ui/layout"
	"github.com/abhisek/quizline/internal/ui/theme"
)

// QuestionScreen shows one question at a time and submits answers through
// the quiz flow. The flow is only touched from commands, one at a time;
// the screen keeps its own copy of what to render.
type QuestionScreen struct {
	flow     *quiz.Flow
	total    int
	question *store.Question
	answered int
	input    components.AnswerInput
	busy     bool
	errMsg   string
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)

// New creates a QuestionScreen for flow. total is the number of questions,
// used for the progress bar.
func New(flow *quiz.Flow, total int) *QuestionScreen {
	return &QuestionScreen{
		flow:  flow,
		total: total,
		input: components.NewAnswerInput("Type your answer...", 500),
	}
}

func (s *QuestionScreen) Init() tea.Cmd {
	s.busy = true
	return tea.Batch(s.start(), s.input.Init())
}

func (s *QuestionScreen) Title() string {
	if s.question == nil {
		return "Quiz"
	}
	return fmt.Sprintf("Question %d", s.answered+1)
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = fmt.Sprintf("Could not load the quiz: %v", msg.Err)
			return s, nil
		}
		return s, s.show(msg.Question)

	case answerSavedMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = fmt.Sprintf("Could not save your answer: %v", msg.Err)
			return s, nil
		}
		s.answered++
		s.errMsg = ""
		s.input.Reset()
		return s, s.show(msg.Next)

	case summaryReadyMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = fmt.Sprintf("Could not load your answers: %v", msg.Err)
			return s, nil
		}
		next := summary.New(msg.Pairs, s.total)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, tea.Quit
		case "enter":
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// show displays q, or fetches the summary when q is nil (quiz finished).
func (s *QuestionScreen) show(q *store.Question) tea.Cmd {
	s.question = q
	if q != nil {
		return nil
	}
	s.busy = true
	flow := s.flow
	return func() tea.Msg {
		pairs, err := flow.Summary(context.Background())
		return summaryReadyMsg{Pairs: pairs, Err: err}
	}
}

func (s *QuestionScreen) start() tea.Cmd {
	flow := s.flow
	return func() tea.Msg {
		q, err := flow.Start(context.Background())
		return questionReadyMsg{Question: q, Err: err}
	}
}

func (s *QuestionScreen) submit() tea.Cmd {
	if s.busy || s.question == nil {
		return nil
	}
	s.busy = true
	flow := s.flow
	id := s.question.ID
	text := s.input.Value()
	return func() tea.Msg {
		next, err := flow.Submit(context.Background(), id, text)
		return answerSavedMsg{Next: next, Err: err}
	}
}

func (s *QuestionScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.NewProgressBar(s.answered, s.total, min(width-8, 50)).View()))
	b.WriteString("\n\n")

	switch {
	case s.question != nil:
		b.WriteString(theme.Question.Width(width).Render(s.question.Text))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	case s.busy:
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("Loading..."))
	}

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorText.Width(width).Align(lipgloss.Center).Render(s.errMsg))
	}
	return b.String()
}
