package quiz

import (
	"bytes"
	"encoding/json"
	"errors"
	"maps"
	"slices"
)

// Answer is a learner's value for one question. It is either Text or
// Sequence; no other implementations exist.
type Answer interface {
	isAnswer()
}

// Text answers single-choice, true-false and fill-in-blank questions.
type Text string

// Sequence answers matching-pairs (alternating left, right entries) and
// ordered-sequence questions.
type Sequence []string

func (Text) isAnswer()     {}
func (Sequence) isAnswer() {}

var ErrInvalidAnswer = errors.New("answer must be a string or an array of strings")

// IsEmpty reports whether a carries no value. Empty answers are never stored.
func IsEmpty(a Answer) bool {
	switch v := a.(type) {
	case Text:
		return v == ""
	case Sequence:
		return len(v) == 0
	}
	return true
}

// DecodeAnswer parses a JSON string into Text and a JSON array of strings
// into Sequence.
func DecodeAnswer(raw json.RawMessage) (Answer, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, ErrInvalidAnswer
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, ErrInvalidAnswer
		}
		return Text(s), nil
	case '[':
		var seq []string
		if err := json.Unmarshal(raw, &seq); err != nil {
			return nil, ErrInvalidAnswer
		}
		return Sequence(seq), nil
	}
	return nil, ErrInvalidAnswer
}

func cloneAnswer(a Answer) Answer {
	if seq, ok := a.(Sequence); ok {
		return slices.Clone(seq)
	}
	return a
}

// Record maps question ids to answers. Unanswered questions are absent.
type Record map[string]Answer

func (r Record) Clone() Record {
	out := maps.Clone(r)
	if out == nil {
		return Record{}
	}
	for id, a := range out {
		out[id] = cloneAnswer(a)
	}
	return out
}
