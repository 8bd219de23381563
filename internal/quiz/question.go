// Package quiz holds the question model, answer evaluation and the state
// machine that drives a single quiz attempt. It has no transport or storage
// dependencies.
package quiz

// Kind identifies how a question is answered and graded.
type Kind string

const (
	KindSingleChoice Kind = "single-choice"
	KindTrueFalse    Kind = "true-false"
	KindFillBlank    Kind = "fill-in-blank"
	KindMatching     Kind = "matching-pairs"
	KindOrdering     Kind = "ordered-sequence"
)

// Kinds lists every supported question kind.
var Kinds = []Kind{KindSingleChoice, KindTrueFalse, KindFillBlank, KindMatching, KindOrdering}

// Sequential reports whether answers to questions of this kind are ordered
// lists of strings rather than a single string.
func (k Kind) Sequential() bool {
	return k == KindMatching || k == KindOrdering
}

type Question struct {
	ID            string   `json:"id" validate:"required"`
	Kind          Kind     `json:"kind" validate:"required,oneof=single-choice true-false fill-in-blank matching-pairs ordered-sequence"`
	Prompt        string   `json:"prompt" validate:"required"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer Answer   `json:"correctAnswer" validate:"required"`
	Explanation   string   `json:"explanation"`
	Weight        int      `json:"weight" validate:"gt=0"`
}

type Quiz struct {
	ID               string     `json:"id" validate:"required"`
	Title            string     `json:"title" validate:"required"`
	Description      string     `json:"description"`
	Questions        []Question `json:"questions" validate:"required,min=1,dive"`
	PassThreshold    int        `json:"passThreshold" validate:"min=0,max=100"`
	TimeLimitMinutes int        `json:"timeLimitMinutes,omitempty" validate:"min=0"`
}

// Question returns the question with the given id.
func (q Quiz) Question(id string) (Question, bool) {
	for _, qq := range q.Questions {
		if qq.ID == id {
			return qq, true
		}
	}
	return Question{}, false
}

// TotalWeight is the number of points available in the quiz.
func (q Quiz) TotalWeight() int {
	total := 0
	for _, qq := range q.Questions {
		total += qq.Weight
	}
	return total
}

// TimeLimitSeconds returns the countdown length, or 0 when the quiz is untimed.
func (q Quiz) TimeLimitSeconds() int {
	if q.TimeLimitMinutes <= 0 {
		return 0
	}
	return q.TimeLimitMinutes * 60
}
