package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/playperu/minicourse/internal/quiz"
)

func handleGetSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sessionResponse(sessionFrom(r)))
	}
}

func handleDeleteSession(reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reg.Close(sessionFrom(r).id)
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleAnswerQuestion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AnswerRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		a, err := quiz.DecodeAnswer(req.Answer)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		ls := sessionFrom(r)
		if err := ls.sess.Answer(chi.URLParam(r, "questionID"), a); err != nil {
			sessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sessionResponse(ls))
	}
}

// handleSessionAction runs a body-less state transition such as next or
// finish and answers with the resulting session view.
func handleSessionAction(action func(*quiz.Session) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ls := sessionFrom(r)
		if err := action(ls.sess); err != nil {
			sessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sessionResponse(ls))
	}
}

func handleMatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MatchRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		ls := sessionFrom(r)
		if err := ls.sess.Match(chi.URLParam(r, "questionID"), req.Left, req.Right); err != nil {
			sessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sessionResponse(ls))
	}
}

// handleUnmatch removes the pairing of ?left=, or every pairing when left is
// omitted.
func handleUnmatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ls := sessionFrom(r)
		id := chi.URLParam(r, "questionID")

		var err error
		if left := r.URL.Query().Get("left"); left != "" {
			err = ls.sess.Unmatch(id, left)
		} else {
			err = ls.sess.ClearMatches(id)
		}
		if err != nil {
			sessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sessionResponse(ls))
	}
}

func handleMove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MoveRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		ls := sessionFrom(r)
		if err := ls.sess.MoveItem(chi.URLParam(r, "questionID"), req.From, req.To); err != nil {
			sessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sessionResponse(ls))
	}
}

func sessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quiz.ErrUnknownQuestion):
		writeError(w, http.StatusNotFound, "question not found")
	case errors.Is(err, quiz.ErrClosed):
		writeError(w, http.StatusNotFound, "session not found")
	case errors.Is(err, quiz.ErrRevealed),
		errors.Is(err, quiz.ErrNotAnswered),
		errors.Is(err, quiz.ErrFirstQuestion):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, quiz.ErrWrongKind),
		errors.Is(err, quiz.ErrUnknownOption),
		errors.Is(err, quiz.ErrOutOfRange):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
