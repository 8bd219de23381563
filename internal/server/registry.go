package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/playperu/minicourse/internal/progress"
	"github.com/playperu/minicourse/internal/quiz"
)

type liveSession struct {
	id   string
	step int
	sess *quiz.Session
}

// Registry owns the live quiz sessions. Each quiz step has at most one; opening
// the step again closes the previous attempt.
type Registry struct {
	progress *progress.Store
	broker   *Broker
	logger   *slog.Logger
	shuffle  func([]string)

	mu     sync.Mutex
	byID   map[string]*liveSession
	byStep map[int]string
}

func NewRegistry(p *progress.Store, broker *Broker, logger *slog.Logger) *Registry {
	return &Registry{
		progress: p,
		broker:   broker,
		logger:   logger,
		byID:     make(map[string]*liveSession),
		byStep:   make(map[int]string),
	}
}

// Open starts a fresh session for the quiz of step.
func (r *Registry) Open(step int, q quiz.Quiz) *liveSession {
	id := uuid.NewString()

	opts := []quiz.Option{
		quiz.OnReveal(func(res quiz.Result) { r.revealed(id, step, res) }),
		quiz.OnTick(func(remaining int) {
			r.broker.Publish(id, Event{
				Type:           eventTick,
				Remaining:      remaining,
				RemainingLabel: quiz.FormatRemaining(remaining),
			})
		}),
	}
	if r.shuffle != nil {
		opts = append(opts, quiz.WithShuffle(r.shuffle))
	}
	sess := quiz.NewSession(q, opts...)

	r.mu.Lock()
	prev, hadPrev := r.byStep[step]
	if hadPrev {
		r.dropLocked(prev)
	}
	ls := &liveSession{id: id, step: step, sess: sess}
	r.byID[id] = ls
	r.byStep[step] = id
	r.mu.Unlock()

	if hadPrev {
		r.logger.Info("quiz session replaced", "step", step, "previous", prev, "session", id)
	}
	sess.Start()
	return ls
}

func (r *Registry) Get(id string) (*liveSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ls, ok := r.byID[id]
	return ls, ok
}

// Close discards the session and stops its countdown.
func (r *Registry) Close(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false
	}
	r.dropLocked(id)
	return true
}

func (r *Registry) CloseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id := range r.byID {
		r.dropLocked(id)
	}
}

func (r *Registry) dropLocked(id string) {
	ls, ok := r.byID[id]
	if !ok {
		return
	}
	ls.sess.Close()
	delete(r.byID, id)
	if r.byStep[ls.step] == id {
		delete(r.byStep, ls.step)
	}
	r.broker.Publish(id, Event{Type: eventClosed})
}

// revealed runs inside the session lock, so it only touches the progress
// store and the broker.
func (r *Registry) revealed(id string, step int, res quiz.Result) {
	ctx := context.Background()
	r.progress.SetQuizScore(ctx, step, res.Score)
	if res.Passed {
		r.progress.CompleteStep(ctx, step)
	}
	r.logger.Info("quiz revealed", "session", id, "step", step, "score", res.Score, "passed", res.Passed)
	r.broker.Publish(id, Event{Type: eventRevealed, Score: res.Score, Passed: res.Passed})
}
