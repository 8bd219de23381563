// Package course defines the fixed step table of the mini course and the
// navigation derived from it. It has no external dependencies.
package course

import (
	"errors"
	"fmt"
	"math"
)

type StepKind string

const (
	StepVideo   StepKind = "video"
	StepQuiz    StepKind = "quiz"
	StepArticle StepKind = "article"
)

var ErrStepNotFound = errors.New("step not found")

// steps is indexed by step number minus one.
var steps = [...]StepKind{StepVideo, StepQuiz, StepArticle, StepQuiz}

// Total is the number of steps in the course.
const Total = len(steps)

func KindOf(n int) (StepKind, error) {
	if n < 1 || n > Total {
		return "", fmt.Errorf("step %d: %w", n, ErrStepNotFound)
	}
	return steps[n-1], nil
}

type Nav struct {
	Step        int  `json:"step"`
	Total       int  `json:"total"`
	HasPrevious bool `json:"hasPrevious"`
	HasNext     bool `json:"hasNext"`
	IsLast      bool `json:"isLast"`
	Previous    int  `json:"previous,omitempty"`
	Next        int  `json:"next,omitempty"`
}

func NavFor(n int) Nav {
	nav := Nav{
		Step:        n,
		Total:       Total,
		HasPrevious: n > 1,
		HasNext:     n < Total,
		IsLast:      n == Total,
	}
	if nav.HasPrevious {
		nav.Previous = n - 1
	}
	if nav.HasNext {
		nav.Next = n + 1
	}
	return nav
}

type Status string

const (
	StatusCompleted Status = "completed"
	StatusCurrent   Status = "current"
	StatusUpcoming  Status = "upcoming"
)

type TrackerStep struct {
	Number int      `json:"number"`
	Kind   StepKind `json:"kind"`
	Status Status   `json:"status"`
}

type Tracker struct {
	CurrentStep int           `json:"currentStep"`
	Total       int           `json:"total"`
	Percent     int           `json:"percent"`
	Steps       []TrackerStep `json:"steps"`
}

// TrackerFor positions every step relative to current. Steps before current
// count as done whether or not they were explicitly completed.
func TrackerFor(current int) Tracker {
	t := Tracker{
		CurrentStep: current,
		Total:       Total,
		Percent:     int(math.Round(100 * float64(current-1) / float64(Total))),
		Steps:       make([]TrackerStep, 0, Total),
	}
	for i, k := range steps {
		n := i + 1
		st := StatusUpcoming
		switch {
		case n < current:
			st = StatusCompleted
		case n == current:
			st = StatusCurrent
		}
		t.Steps = append(t.Steps, TrackerStep{Number: n, Kind: k, Status: st})
	}
	return t
}
