package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizline/internal/store"
)

func TestDefault(t *testing.T) {
	qs, err := Default()
	require.NoError(t, err)
	assert.Equal(t, []store.Question{
		{ID: 1, Text: "What is your name?"},
		{ID: 2, Text: "What is your favorite food?"},
		{ID: 3, Text: "Do you have a nickname? If so, what is it?"},
	}, qs)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []store.Question
		wantErr string
	}{
		{
			name:  "non-contiguous ids keep file order",
			input: "questions:\n  - id: 10\n    text: ten\n  - id: 2\n    text: two\n",
			want: []store.Question{
				{ID: 10, Text: "ten"},
				{ID: 2, Text: "two"},
			},
		},
		{
			name:  "empty list",
			input: "questions: []\n",
			want:  []store.Question{},
		},
		{
			name:    "missing questions key",
			input:   "items: []\n",
			wantErr: "invalid question file",
		},
		{
			name:    "zero id",
			input:   "questions:\n  - id: 0\n    text: zero\n",
			wantErr: "invalid question file",
		},
		{
			name:    "empty text",
			input:   "questions:\n  - id: 1\n    text: \"\"\n",
			wantErr: "invalid question file",
		},
		{
			name:    "unknown field",
			input:   "questions:\n  - id: 1\n    text: one\n    answer: two\n",
			wantErr: "invalid question file",
		},
		{
			name:    "duplicate id",
			input:   "questions:\n  - id: 1\n    text: one\n  - id: 1\n    text: again\n",
			wantErr: "duplicate question id 1",
		},
		{
			name:    "not yaml",
			input:   "questions: [\n",
			wantErr: "decode question file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
