package server

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/playperu/minicourse/internal/quiz"
)

func addRoutes(r chi.Router, logger *slog.Logger, app App, reg *Registry, broker *Broker) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Mini Course API", "/openapi.json", "/docs"))

	r.Get("/api/course", handleCourse(app.Progress))
	r.Post("/api/progress/reset", handleReset(app.Progress, reg))
	r.Post("/api/progress/steps/{n}/complete", handleCompleteStep(app.Progress))
	r.Get("/api/steps/{n}", handleStep(logger, app.Progress, app.Content, reg))

	r.Route("/api/sessions/{id}", func(r chi.Router) {
		r.Use(sessionMiddleware(reg))
		r.Get("/", handleGetSession())
		r.Delete("/", handleDeleteSession(reg))
		r.Put("/answers/{questionID}", handleAnswerQuestion())
		r.Post("/next", handleSessionAction((*quiz.Session).Next))
		r.Post("/previous", handleSessionAction((*quiz.Session).Previous))
		r.Post("/finish", handleSessionAction((*quiz.Session).Finish))
		r.Post("/matches/{questionID}", handleMatch())
		r.Delete("/matches/{questionID}", handleUnmatch())
		r.Post("/order/{questionID}", handleMove())
		r.Get("/events", handleEvents(broker))
		r.Get("/ws", handleSocket(logger, broker))
	})

	if app.Mount != nil {
		app.Mount(r)
	}

	if app.SPADir != "" {
		if info, err := os.Stat(app.SPADir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", app.SPADir)
			r.NotFound(handleSPA(app.SPADir))
		}
	}
}
