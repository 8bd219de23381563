package quiz

import (
	"errors"
	"slices"
)

var ErrUnknownOption = errors.New("option is not on this side of the board")

// SplitOptions partitions matching options into the left column (the first
// ceil(n/2) entries) and the right column.
func SplitOptions(options []string) (left, right []string) {
	mid := (len(options) + 1) / 2
	return slices.Clone(options[:mid]), slices.Clone(options[mid:])
}

// MatchBoard holds the learner's pairings for one matching question.
type MatchBoard struct {
	Left  []string
	Right []string

	pairs map[string]string
	order []string
}

func newMatchBoard(q Question, existing Answer) *MatchBoard {
	b := &MatchBoard{pairs: make(map[string]string)}
	b.Left, b.Right = SplitOptions(q.Options)

	if seq, ok := existing.(Sequence); ok {
		for i := 0; i+1 < len(seq); i += 2 {
			if seq[i] != "" && seq[i+1] != "" {
				b.set(seq[i], seq[i+1])
			}
		}
	}
	return b
}

func (b *MatchBoard) set(left, right string) {
	if _, ok := b.pairs[left]; !ok {
		b.order = append(b.order, left)
	}
	b.pairs[left] = right
}

func (b *MatchBoard) unset(left string) {
	if _, ok := b.pairs[left]; !ok {
		return
	}
	delete(b.pairs, left)
	b.order = slices.DeleteFunc(b.order, func(l string) bool { return l == left })
}

// Pair matches left with right. Any pairing either item already had is
// dropped first.
func (b *MatchBoard) Pair(left, right string) error {
	if !slices.Contains(b.Left, left) || !slices.Contains(b.Right, right) {
		return ErrUnknownOption
	}
	for l, r := range b.pairs {
		if r == right {
			b.unset(l)
		}
	}
	b.unset(left)
	b.set(left, right)
	return nil
}

func (b *MatchBoard) Unpair(left string) {
	b.unset(left)
}

func (b *MatchBoard) Clear() {
	clear(b.pairs)
	b.order = nil
}

// Matched returns the number of left items that have a partner.
func (b *MatchBoard) Matched() int {
	return len(b.pairs)
}

// Answer flattens the pairings into alternating left, right entries.
func (b *MatchBoard) Answer() Sequence {
	out := make(Sequence, 0, 2*len(b.order))
	for _, l := range b.order {
		out = append(out, l, b.pairs[l])
	}
	return out
}

// board returns the question's board, creating it on first use only.
func (s *Session) board(q Question) *MatchBoard {
	if b, ok := s.boards[q.ID]; ok {
		return b
	}
	b := newMatchBoard(q, s.answers[q.ID])
	s.boards[q.ID] = b
	return b
}

func (s *Session) matchingQuestion(id string) (Question, error) {
	if err := s.open(); err != nil {
		return Question{}, err
	}
	q, err := s.question(id)
	if err != nil {
		return Question{}, err
	}
	if q.Kind != KindMatching {
		return Question{}, ErrWrongKind
	}
	return q, nil
}

// Match pairs left with right on the question's board and records the board
// as the question's answer.
func (s *Session) Match(questionID, left, right string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, err := s.matchingQuestion(questionID)
	if err != nil {
		return err
	}
	b := s.board(q)
	if err := b.Pair(left, right); err != nil {
		return err
	}
	s.store(q.ID, b.Answer())
	return nil
}

func (s *Session) Unmatch(questionID, left string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, err := s.matchingQuestion(questionID)
	if err != nil {
		return err
	}
	b := s.board(q)
	b.Unpair(left)
	s.store(q.ID, b.Answer())
	return nil
}

func (s *Session) ClearMatches(questionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, err := s.matchingQuestion(questionID)
	if err != nil {
		return err
	}
	b := s.board(q)
	b.Clear()
	s.store(q.ID, b.Answer())
	return nil
}

// BoardView is a copy of a matching board for display.
type BoardView struct {
	Left    []string `json:"left"`
	Right   []string `json:"right"`
	Pairs   Sequence `json:"pairs"`
	Matched int      `json:"matched"`
}

// Board returns the board of a matching question.
func (s *Session) Board(questionID string) (BoardView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, err := s.question(questionID)
	if err != nil {
		return BoardView{}, err
	}
	if q.Kind != KindMatching {
		return BoardView{}, ErrWrongKind
	}
	b := s.board(q)
	return BoardView{
		Left:    slices.Clone(b.Left),
		Right:   slices.Clone(b.Right),
		Pairs:   b.Answer(),
		Matched: b.Matched(),
	}, nil
}
