package quiz

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(questionRules, Question{})
	v.RegisterStructValidation(quizRules, Quiz{})
	return v
}

// Validate checks struct tags and the per-kind rules: options present for
// every kind except fill-in-blank, answer shape matching the kind, an even
// number of matching entries and unique question ids.
func (q Quiz) Validate() error {
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("invalid quiz %q: %w", q.ID, err)
	}
	return nil
}

func questionRules(sl validator.StructLevel) {
	q := sl.Current().Interface().(Question)

	if q.Kind != KindFillBlank && len(q.Options) == 0 {
		sl.ReportError(q.Options, "options", "Options", "required_for_kind", string(q.Kind))
	}

	switch ans := q.CorrectAnswer.(type) {
	case Text:
		if q.Kind.Sequential() || ans == "" {
			sl.ReportError(q.CorrectAnswer, "correctAnswer", "CorrectAnswer", "answer_shape", string(q.Kind))
		}
	case Sequence:
		if !q.Kind.Sequential() || len(ans) == 0 {
			sl.ReportError(q.CorrectAnswer, "correctAnswer", "CorrectAnswer", "answer_shape", string(q.Kind))
			return
		}
		if q.Kind == KindMatching && len(ans)%2 != 0 {
			sl.ReportError(q.CorrectAnswer, "correctAnswer", "CorrectAnswer", "even_pairs", "")
		}
		if q.Kind == KindOrdering && len(ans) != len(q.Options) {
			sl.ReportError(q.CorrectAnswer, "correctAnswer", "CorrectAnswer", "len_options", "")
		}
	}
}

func quizRules(sl validator.StructLevel) {
	q := sl.Current().Interface().(Quiz)

	seen := make(map[string]bool, len(q.Questions))
	for _, qq := range q.Questions {
		if seen[qq.ID] {
			sl.ReportError(q.Questions, "questions", "Questions", "unique_ids", qq.ID)
			return
		}
		seen[qq.ID] = true
	}
}
