// Package report formats a user's quiz answers as plain text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/quizline/internal/store"
)

// WriteSummary writes the question/answer pairs for userID to w, one
// numbered question per block with the answer indented beneath it.
// total is the number of questions in the quiz; it drives the progress line.
func WriteSummary(w io.Writer, userID int64, total int, pairs []store.AnswerPair) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Answers for user %d (%d of %d answered)\n", userID, len(pairs), total)
	if len(pairs) == 0 {
		b.WriteString("\n  No answers recorded yet.\n")
	}

	for i, p := range pairs {
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %d. %s\n", i+1, p.Question)
		answer := p.Answer
		if strings.TrimSpace(answer) == "" {
			answer = "(blank)"
		}
		for _, line := range strings.Split(answer, "\n") {
			fmt.Fprintf(&b, "     %s\n", line)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
