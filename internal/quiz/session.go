package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"
)

var (
	ErrRevealed        = errors.New("quiz already revealed")
	ErrClosed          = errors.New("quiz session closed")
	ErrNotAnswered     = errors.New("current question has no answer")
	ErrFirstQuestion   = errors.New("already at the first question")
	ErrUnknownQuestion = errors.New("unknown question")
	ErrWrongKind       = errors.New("operation does not apply to this question kind")
)

type Phase string

const (
	PhaseAnswering Phase = "answering"
	PhaseRevealed  Phase = "revealed"
)

// Option configures a Session.
type Option func(*Session)

// OnReveal registers fn to run exactly once, when the session is revealed.
func OnReveal(fn func(Result)) Option {
	return func(s *Session) { s.onReveal = fn }
}

// OnTick registers fn to run after every countdown tick with the seconds left.
func OnTick(fn func(remaining int)) Option {
	return func(s *Session) { s.onTick = fn }
}

// WithShuffle replaces the function used to propose an initial order for
// ordered-sequence questions.
func WithShuffle(fn func([]string)) Option {
	return func(s *Session) { s.shuffle = fn }
}

// Session is one attempt at a quiz. It starts answering question 0 and ends
// in the revealed phase, which is terminal.
//
// Hooks run while the session is locked and must not call back into it.
type Session struct {
	quiz     Quiz
	onReveal func(Result)
	onTick   func(int)
	shuffle  func([]string)

	mu        sync.Mutex
	index     int
	answers   Record
	revealed  bool
	closed    bool
	remaining int
	result    Result
	boards    map[string]*MatchBoard
	orders    map[string]Sequence

	stop     chan struct{}
	stopOnce sync.Once
}

func NewSession(q Quiz, opts ...Option) *Session {
	s := &Session{
		quiz:      q,
		answers:   Record{},
		remaining: q.TimeLimitSeconds(),
		boards:    make(map[string]*MatchBoard),
		orders:    make(map[string]Sequence),
		stop:      make(chan struct{}),
		shuffle: func(items []string) {
			rand.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
		},
	}
	for _, o := range opts {
		o(s)
	}
	s.presentLocked()
	return s
}

// Start runs the countdown once per second until the session is revealed or
// closed. Untimed quizzes have nothing to run.
func (s *Session) Start() {
	if s.quiz.TimeLimitSeconds() == 0 {
		return
	}
	go s.run(time.NewTicker(time.Second))
}

func (s *Session) run(t *time.Ticker) {
	defer t.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-t.C:
			if !s.Tick() {
				return
			}
		}
	}
}

// Tick advances the countdown by one second, revealing the session when it
// reaches zero. It reports whether the countdown is still running.
func (s *Session) Tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.revealed || s.closed || s.remaining <= 0 {
		return false
	}
	s.remaining--
	if s.onTick != nil {
		s.onTick(s.remaining)
	}
	if s.remaining == 0 {
		s.revealLocked()
		return false
	}
	return true
}

// Close discards the session without revealing it and stops its countdown.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.halt()
}

func (s *Session) halt() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// open reports why the session can no longer change, if it cannot.
func (s *Session) open() error {
	switch {
	case s.closed:
		return ErrClosed
	case s.revealed:
		return ErrRevealed
	}
	return nil
}

func (s *Session) revealLocked() {
	if s.revealed || s.closed {
		return
	}
	s.revealed = true
	s.halt()
	s.result = Grade(s.quiz, s.answers.Clone())
	if s.onReveal != nil {
		s.onReveal(s.result)
	}
}

func (s *Session) question(id string) (Question, error) {
	q, ok := s.quiz.Question(id)
	if !ok {
		return Question{}, fmt.Errorf("%w: %s", ErrUnknownQuestion, id)
	}
	return q, nil
}

func (s *Session) store(id string, a Answer) {
	if a == nil || IsEmpty(a) {
		delete(s.answers, id)
		return
	}
	s.answers[id] = cloneAnswer(a)
}

// Answer records a for the question, replacing any earlier value. An empty
// value clears the answer. A matching board for the question is rebuilt from
// the new value the next time it is used.
func (s *Session) Answer(questionID string, a Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.question(questionID); err != nil {
		return err
	}
	s.store(questionID, a)
	delete(s.boards, questionID)
	s.presentLocked()
	return nil
}

// Next advances to the following question, or reveals the session when the
// current question is the last one. The current question must be answered.
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.open(); err != nil {
		return err
	}
	last := len(s.quiz.Questions) - 1
	if last < 0 {
		s.revealLocked()
		return nil
	}
	if _, ok := s.answers[s.quiz.Questions[s.index].ID]; !ok {
		return ErrNotAnswered
	}
	if s.index == last {
		s.revealLocked()
		return nil
	}
	s.index++
	s.presentLocked()
	return nil
}

// Previous moves back one question. Answers are kept.
func (s *Session) Previous() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.open(); err != nil {
		return err
	}
	if s.index == 0 {
		return ErrFirstQuestion
	}
	s.index--
	s.presentLocked()
	return nil
}

// Finish reveals the session regardless of how many questions are answered.
func (s *Session) Finish() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.open(); err != nil {
		return err
	}
	s.revealLocked()
	return nil
}

// State is a point-in-time copy of a session.
type State struct {
	Phase     Phase
	Index     int
	Total     int
	Answers   Record
	Remaining int
	Timed     bool
	Result    *Result
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		Phase:     PhaseAnswering,
		Index:     s.index,
		Total:     len(s.quiz.Questions),
		Answers:   s.answers.Clone(),
		Remaining: s.remaining,
		Timed:     s.quiz.TimeLimitSeconds() > 0,
	}
	if s.revealed {
		st.Phase = PhaseRevealed
		res := s.result
		res.Questions = slices.Clone(s.result.Questions)
		st.Result = &res
	}
	return st
}

func (s *Session) Quiz() Quiz {
	return s.quiz
}

// FormatRemaining renders seconds as m:ss.
func FormatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
