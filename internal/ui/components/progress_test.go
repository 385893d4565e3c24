package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBarPercent(t *testing.T) {
	tests := []struct {
		name        string
		done, total int
		want        float64
	}{
		{"empty quiz", 0, 0, 0},
		{"not started", 0, 3, 0},
		{"partway", 1, 4, 0.25},
		{"complete", 3, 3, 1},
		{"overshoot clamps", 5, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NewProgressBar(tt.done, tt.total, 40).Percent(), 1e-9)
		})
	}
}

func TestProgressBarViewShowsCount(t *testing.T) {
	assert.Contains(t, NewProgressBar(2, 3, 40).View(), "2/3")
}

func TestAnswerInputTrims(t *testing.T) {
	in := NewAnswerInput("Type your answer...", 0)
	in.Model.SetValue("  Ada  ")
	assert.Equal(t, "Ada", in.Value())

	in.Reset()
	assert.Equal(t, "", in.Value())
}
