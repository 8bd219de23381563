package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/playperu/minicourse/internal/course"
	"github.com/playperu/minicourse/internal/progress"
)

func stepParam(r *http.Request) (int, course.StepKind, bool) {
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		return 0, "", false
	}
	kind, err := course.KindOf(n)
	if err != nil {
		return 0, "", false
	}
	return n, kind, true
}

func handleCourse(p *progress.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, CourseResponse{
			Progress: progressResponse(p),
			Tracker:  course.TrackerFor(p.Snapshot().CurrentStep),
		})
	}
}

// handleReset also discards live quiz sessions so a late reveal cannot write
// a score into the fresh progress.
func handleReset(p *progress.Store, reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reg.CloseAll()
		p.Reset(r.Context())
		writeJSON(w, http.StatusOK, progressResponse(p))
	}
}

func handleCompleteStep(p *progress.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, kind, ok := stepParam(r)
		if !ok {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		if kind == course.StepQuiz {
			writeError(w, http.StatusConflict, "quiz steps are completed by passing the quiz")
			return
		}
		p.CompleteStep(r.Context(), n)
		writeJSON(w, http.StatusOK, progressResponse(p))
	}
}
