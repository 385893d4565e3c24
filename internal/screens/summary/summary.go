package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizline/internal/screen"
	"github.com/abhisek/quizline/internal/store"
	"github.com/abhisek/quizline/internal/ui/layout"
	"github.com/abhisek/quizline/internal/ui/theme"
)

// SummaryScreen lists every question the user answered with their answer.
// It is the last screen; any of its keys end the program.
type SummaryScreen struct {
	pairs []store.AnswerPair
	total int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. total is the number of questions in the quiz.
func New(pairs []store.AnswerPair, total int) *SummaryScreen {
	return &SummaryScreen{pairs: pairs, total: total}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Your Answers"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Done"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Quiz complete!"))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(
		fmt.Sprintf("%d of %d answered", len(s.pairs), s.total)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	answerStyle := lipgloss.NewStyle().Foreground(theme.Text)
	for _, p := range s.pairs {
		b.WriteString("  " + questionStyle.Render(p.Question) + "\n")
		b.WriteString("    " + answerStyle.Render(p.Answer) + "\n\n")
	}
	return b.String()
}
