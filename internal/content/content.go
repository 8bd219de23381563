// Package content serves the static payload of each course step. Every call
// waits a configurable delay first, standing in for a remote fetch.
package content

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/playperu/minicourse/internal/course"
	"github.com/playperu/minicourse/internal/quiz"
)

var ErrNotFound = errors.New("content not found")

type Video struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	MediaURL      string `json:"mediaUrl"`
	DurationLabel string `json:"durationLabel"`
	ThumbnailURL  string `json:"thumbnailUrl"`
	Transcript    string `json:"transcript"`
}

type SectionKind string

const (
	SectionText  SectionKind = "text"
	SectionList  SectionKind = "list"
	SectionCode  SectionKind = "code"
	SectionImage SectionKind = "image"
)

type Section struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Kind     SectionKind `json:"kind"`
	Body     string      `json:"body"`
	Code     string      `json:"code,omitempty"`
	ImageURL string      `json:"imageUrl,omitempty"`
}

type Article struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	Sections             []Section `json:"sections"`
	EstimatedReadMinutes int       `json:"estimatedReadMinutes"`
}

type Delays struct {
	Video   time.Duration
	Quiz    time.Duration
	Article time.Duration
}

func DefaultDelays() Delays {
	return Delays{
		Video:   1500 * time.Millisecond,
		Quiz:    800 * time.Millisecond,
		Article: 600 * time.Millisecond,
	}
}

type Provider struct {
	delays Delays
}

// New returns a provider after checking that every bundled quiz is well formed.
func New(d Delays) (*Provider, error) {
	for step, q := range quizzes {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", step, err)
		}
	}
	return &Provider{delays: d}, nil
}

func (p *Provider) Video(ctx context.Context, step int) (Video, error) {
	if err := expect(step, course.StepVideo); err != nil {
		return Video{}, err
	}
	if err := wait(ctx, p.delays.Video); err != nil {
		return Video{}, err
	}
	return videos[step], nil
}

// Quiz returns a copy of the step's quiz; callers may keep it for the
// lifetime of a session.
func (p *Provider) Quiz(ctx context.Context, step int) (quiz.Quiz, error) {
	if err := expect(step, course.StepQuiz); err != nil {
		return quiz.Quiz{}, err
	}
	if err := wait(ctx, p.delays.Quiz); err != nil {
		return quiz.Quiz{}, err
	}
	q := quizzes[step]
	q.Questions = slices.Clone(q.Questions)
	return q, nil
}

func (p *Provider) Article(ctx context.Context, step int) (Article, error) {
	if err := expect(step, course.StepArticle); err != nil {
		return Article{}, err
	}
	if err := wait(ctx, p.delays.Article); err != nil {
		return Article{}, err
	}
	a := articles[step]
	a.Sections = slices.Clone(a.Sections)
	return a, nil
}

func expect(step int, want course.StepKind) error {
	kind, err := course.KindOf(step)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if kind != want {
		return fmt.Errorf("step %d is a %s step, not %s: %w", step, kind, want, ErrNotFound)
	}
	return nil
}

// wait blocks for d unless ctx ends first, in which case the payload is
// dropped and ctx.Err is returned.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
