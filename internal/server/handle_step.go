package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/playperu/minicourse/internal/content"
	"github.com/playperu/minicourse/internal/course"
	"github.com/playperu/minicourse/internal/progress"
	"github.com/playperu/minicourse/internal/quiz"
)

// Content supplies the payload of each step.
type Content interface {
	Video(ctx context.Context, step int) (content.Video, error)
	Quiz(ctx context.Context, step int) (quiz.Quiz, error)
	Article(ctx context.Context, step int) (content.Article, error)
}

func handleStep(logger *slog.Logger, p *progress.Store, c Content, reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, kind, ok := stepParam(r)
		if !ok {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		ctx := r.Context()
		p.SetCurrentStep(ctx, n)

		resp := StepResponse{
			Step:    n,
			Kind:    kind,
			Nav:     course.NavFor(n),
			Tracker: course.TrackerFor(n),
		}

		switch kind {
		case course.StepVideo:
			v, err := c.Video(ctx, n)
			if err != nil {
				contentError(w, r, logger, n, err)
				return
			}
			resp.Video = &v
		case course.StepArticle:
			a, err := c.Article(ctx, n)
			if err != nil {
				contentError(w, r, logger, n, err)
				return
			}
			resp.Article = &a
		case course.StepQuiz:
			q, err := c.Quiz(ctx, n)
			if err != nil {
				contentError(w, r, logger, n, err)
				return
			}
			sv := sessionResponse(reg.Open(n, q))
			resp.Session = &sv
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// contentError maps a provider failure to the learner-facing message. A
// request abandoned by the client gets no response body.
func contentError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, step int, err error) {
	switch {
	case errors.Is(err, content.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case r.Context().Err() != nil:
		logger.Info("step load abandoned", "step", step, "error", err)
	default:
		logger.Error("loading step content", "step", step, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load, try refreshing")
	}
}
