package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type ctxKey int

const ctxKeySession ctxKey = iota

// sessionMiddleware resolves {id} to a live quiz session.
func sessionMiddleware(reg *Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ls, ok := reg.Get(chi.URLParam(r, "id"))
			if !ok {
				writeError(w, http.StatusNotFound, "session not found")
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeySession, ls)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFrom(r *http.Request) *liveSession {
	return r.Context().Value(ctxKeySession).(*liveSession)
}
