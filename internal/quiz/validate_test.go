package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuizValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Quiz)
		wantErr bool
	}{
		{"valid", func(*Quiz) {}, false},
		{"zero weight", func(q *Quiz) { q.Questions[0].Weight = 0 }, true},
		{"threshold above 100", func(q *Quiz) { q.PassThreshold = 101 }, true},
		{"negative time limit", func(q *Quiz) { q.TimeLimitMinutes = -1 }, true},
		{"unknown kind", func(q *Quiz) { q.Questions[0].Kind = "essay" }, true},
		{"missing options", func(q *Quiz) { q.Questions[0].Options = nil }, true},
		{"fill blank without options", func(q *Quiz) { q.Questions[2].Options = nil }, false},
		{"sequence answer for text kind", func(q *Quiz) { q.Questions[0].CorrectAnswer = Sequence{"1"} }, true},
		{"ordering answer length", func(q *Quiz) { q.Questions[3].CorrectAnswer = Sequence{"x"} }, true},
		{"duplicate ids", func(q *Quiz) { q.Questions[1].ID = "a" }, true},
		{"no questions", func(q *Quiz) { q.Questions = nil }, true},
		{"missing answer", func(q *Quiz) { q.Questions[0].CorrectAnswer = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := weightedQuiz()
			for i := range q.Questions {
				q.Questions[i].Prompt = "prompt"
			}
			tt.mutate(&q)
			err := q.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMatchingValidateOddPairs(t *testing.T) {
	q := matchingQuiz()
	q.Questions[0].CorrectAnswer = Sequence{"Recall", "Memory", "Spacing"}
	assert.Error(t, q.Validate())

	assert.NoError(t, matchingQuiz().Validate())
}
