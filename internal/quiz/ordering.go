package quiz

import (
	"errors"
	"slices"
)

var ErrOutOfRange = errors.New("position out of range")

// Move returns a copy of items with the entry at from moved to position to.
func Move(items []string, from, to int) ([]string, error) {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) {
		return nil, ErrOutOfRange
	}
	out := slices.Clone(items)
	item := out[from]
	out = slices.Delete(out, from, from+1)
	out = slices.Insert(out, to, item)
	return out, nil
}

// order returns the learner's current order for an ordered-sequence question:
// the recorded answer if any, otherwise the session's proposal.
func (s *Session) order(q Question) Sequence {
	if seq, ok := s.answers[q.ID].(Sequence); ok {
		return seq
	}
	return s.proposal(q)
}

// proposal is a shuffle of the options, fixed for the lifetime of the session.
func (s *Session) proposal(q Question) Sequence {
	if p, ok := s.orders[q.ID]; ok {
		return p
	}
	p := slices.Clone(Sequence(q.Options))
	s.shuffle(p)
	s.orders[q.ID] = p
	return p
}

// presentLocked records the proposal as the answer when the current question
// is an unanswered ordered-sequence question. Leaving the order as shown is a
// valid answer.
func (s *Session) presentLocked() {
	if s.open() != nil || s.index >= len(s.quiz.Questions) {
		return
	}
	q := s.quiz.Questions[s.index]
	if q.Kind != KindOrdering {
		return
	}
	if _, ok := s.answers[q.ID]; ok {
		return
	}
	s.store(q.ID, s.proposal(q))
}

// Order returns the current order of an ordered-sequence question.
func (s *Session) Order(questionID string) (Sequence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, err := s.question(questionID)
	if err != nil {
		return nil, err
	}
	if q.Kind != KindOrdering {
		return nil, ErrWrongKind
	}
	return slices.Clone(s.order(q)), nil
}

// MoveItem moves one entry of an ordered-sequence question and records the
// resulting order as the answer.
func (s *Session) MoveItem(questionID string, from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.open(); err != nil {
		return err
	}
	q, err := s.question(questionID)
	if err != nil {
		return err
	}
	if q.Kind != KindOrdering {
		return ErrWrongKind
	}
	next, err := Move(s.order(q), from, to)
	if err != nil {
		return err
	}
	s.store(q.ID, Sequence(next))
	return nil
}
