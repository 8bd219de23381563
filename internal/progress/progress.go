// Package progress keeps the learner's position in the course and persists it
// after every change.
package progress

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"maps"
	"math"
	"slices"
	"sync"
	"time"
)

// TotalSteps is the fixed length of the course.
const TotalSteps = 4

// Namespace is the key the state is stored under.
const Namespace = "course-progress"

var ErrNoState = errors.New("no saved progress")

type State struct {
	CurrentStep    int         `json:"currentStep"`
	CompletedSteps []int       `json:"completedSteps"`
	QuizScores     map[int]int `json:"quizScores"`
	TotalSteps     int         `json:"totalSteps"`
}

func Defaults() State {
	return State{
		CurrentStep:    1,
		CompletedSteps: []int{},
		QuizScores:     map[int]int{},
		TotalSteps:     TotalSteps,
	}
}

func (s State) clone() State {
	out := s
	out.CompletedSteps = slices.Clone(s.CompletedSteps)
	if out.CompletedSteps == nil {
		out.CompletedSteps = []int{}
	}
	out.QuizScores = maps.Clone(s.QuizScores)
	if out.QuizScores == nil {
		out.QuizScores = map[int]int{}
	}
	return out
}

// Decode parses a stored record. Anything that is not a well-formed state is
// reported as an error so callers can fall back to Defaults.
func Decode(data []byte) (State, error) {
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, err
	}
	if st.CurrentStep < 1 {
		return State{}, errors.New("currentStep must be at least 1")
	}
	st.TotalSteps = TotalSteps
	slices.Sort(st.CompletedSteps)
	st.CompletedSteps = slices.Compact(st.CompletedSteps)
	return st.clone(), nil
}

// Persister stores the serialized state under Namespace.
type Persister interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// Store is the single source of truth for course progress. All mutations go
// through its methods; each one is followed by a best-effort save.
type Store struct {
	persist Persister
	logger  *slog.Logger

	mu    sync.RWMutex
	state State

	saveMu sync.Mutex
}

// Open rehydrates the saved state. Missing or unreadable state yields the
// defaults; Open itself never fails.
func Open(ctx context.Context, p Persister, logger *slog.Logger) *Store {
	s := &Store{persist: p, logger: logger, state: Defaults()}

	data, err := p.Load(ctx)
	switch {
	case errors.Is(err, ErrNoState):
		logger.Info("no saved progress, using defaults")
	case err != nil:
		logger.Warn("loading progress failed, using defaults", "error", err)
	default:
		st, err := Decode(data)
		if err != nil {
			logger.Warn("saved progress is malformed, using defaults", "error", err)
			break
		}
		s.state = st
	}
	return s
}

// Snapshot returns a copy of the current state with completed steps sorted.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state.clone()
	slices.Sort(st.CompletedSteps)
	return st
}

// Percent is the share of completed steps, rounded to a whole percentage.
func (s *Store) Percent() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int(math.Round(100 * float64(len(s.state.CompletedSteps)) / float64(s.state.TotalSteps)))
}

// SetCurrentStep stores n as given; callers are trusted to pass a valid step.
func (s *Store) SetCurrentStep(ctx context.Context, n int) {
	s.mutate(ctx, func(st *State) { st.CurrentStep = n })
}

// CompleteStep adds n to the completed set. Repeated calls are no-ops.
func (s *Store) CompleteStep(ctx context.Context, n int) {
	s.mutate(ctx, func(st *State) {
		if !slices.Contains(st.CompletedSteps, n) {
			st.CompletedSteps = append(st.CompletedSteps, n)
		}
	})
}

// SetQuizScore overwrites the score recorded for step n.
func (s *Store) SetQuizScore(ctx context.Context, n, score int) {
	s.mutate(ctx, func(st *State) { st.QuizScores[n] = score })
}

// Reset returns to step 1 and forgets completions and scores.
func (s *Store) Reset(ctx context.Context) {
	s.mutate(ctx, func(st *State) {
		st.CurrentStep = 1
		st.CompletedSteps = []int{}
		st.QuizScores = map[int]int{}
	})
}

func (s *Store) mutate(ctx context.Context, fn func(*State)) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	fn(&s.state)
	data, err := json.Marshal(s.state)
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("encoding progress failed", "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
	defer cancel()
	if err := s.persist.Save(ctx, data); err != nil {
		s.logger.Error("saving progress failed", "error", err)
	}
}
