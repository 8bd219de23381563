package quiz

import (
	"math"
	"slices"
	"strings"
)

// IsCorrect reports whether a answers q correctly. A nil answer or one whose
// shape does not fit the question kind is incorrect.
func IsCorrect(q Question, a Answer) bool {
	if a == nil || q.CorrectAnswer == nil {
		return false
	}

	switch q.Kind {
	case KindSingleChoice, KindTrueFalse:
		got, ok := a.(Text)
		want, wok := q.CorrectAnswer.(Text)
		return ok && wok && got == want

	case KindFillBlank:
		got, ok := a.(Text)
		want, wok := q.CorrectAnswer.(Text)
		return ok && wok && strings.EqualFold(
			strings.TrimSpace(string(got)),
			strings.TrimSpace(string(want)),
		)

	case KindMatching:
		got, ok := a.(Sequence)
		want, wok := q.CorrectAnswer.(Sequence)
		return ok && wok && samePairs(got, want)

	case KindOrdering:
		got, ok := a.(Sequence)
		want, wok := q.CorrectAnswer.(Sequence)
		return ok && wok && slices.Equal(got, want)
	}
	return false
}

type pair struct{ left, right string }

// pairsOf groups seq two-at-a-time. An odd-length sequence is a half-built
// answer and yields false.
func pairsOf(seq Sequence) (map[pair]int, bool) {
	if len(seq)%2 != 0 {
		return nil, false
	}
	out := make(map[pair]int, len(seq)/2)
	for i := 0; i < len(seq); i += 2 {
		out[pair{seq[i], seq[i+1]}]++
	}
	return out, true
}

func samePairs(got, want Sequence) bool {
	g, ok := pairsOf(got)
	if !ok {
		return false
	}
	w, ok := pairsOf(want)
	if !ok || len(got) != len(want) {
		return false
	}
	for p, n := range w {
		if g[p] != n {
			return false
		}
	}
	return len(g) == len(w)
}

// QuestionResult is the reveal-time view of one question.
type QuestionResult struct {
	QuestionID    string `json:"questionId"`
	Kind          Kind   `json:"kind"`
	Prompt        string `json:"prompt"`
	Answer        Answer `json:"answer,omitempty"`
	CorrectAnswer Answer `json:"correctAnswer"`
	Answered      bool   `json:"answered"`
	Correct       bool   `json:"correct"`
	Explanation   string `json:"explanation"`
	Weight        int    `json:"weight"`
}

// Result is the graded outcome of a quiz attempt.
type Result struct {
	Score     int              `json:"score"`
	Passed    bool             `json:"passed"`
	Threshold int              `json:"passThreshold"`
	Earned    int              `json:"earned"`
	Total     int              `json:"total"`
	Questions []QuestionResult `json:"questions"`
}

// Score returns the weighted percentage of correctly answered questions.
func Score(q Quiz, r Record) int {
	return Grade(q, r).Score
}

// Grade evaluates every question of q against r.
func Grade(q Quiz, r Record) Result {
	res := Result{
		Threshold: q.PassThreshold,
		Questions: make([]QuestionResult, 0, len(q.Questions)),
	}
	for _, qq := range q.Questions {
		a, answered := r[qq.ID]
		correct := answered && IsCorrect(qq, a)
		res.Total += qq.Weight
		if correct {
			res.Earned += qq.Weight
		}
		res.Questions = append(res.Questions, QuestionResult{
			QuestionID:    qq.ID,
			Kind:          qq.Kind,
			Prompt:        qq.Prompt,
			Answer:        a,
			CorrectAnswer: qq.CorrectAnswer,
			Answered:      answered,
			Correct:       correct,
			Explanation:   qq.Explanation,
			Weight:        qq.Weight,
		})
	}
	res.Score = percent(res.Earned, res.Total)
	res.Passed = res.Score >= q.PassThreshold
	return res
}

func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}
