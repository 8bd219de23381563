package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/playperu/minicourse/internal/quiz"
)

// handleEvents streams tick and revealed events for one session. The stream
// opens with the current session view and ends when the session is revealed
// or closed.
func handleEvents(broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ls := sessionFrom(r)

		flusher, ok := w.(http.Flusher)
		if !ok {
			writeError(w, http.StatusInternalServerError, "streaming not supported")
			return
		}

		ch := broker.Subscribe(ls.id)
		defer broker.Unsubscribe(ls.id, ch)

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")

		view := sessionResponse(ls)
		state, _ := json.Marshal(view)
		fmt.Fprintf(w, "event: state\ndata: %s\n\n", state)
		flusher.Flush()
		if view.Phase == quiz.PhaseRevealed {
			return
		}

		ping := time.NewTicker(30 * time.Second)
		defer ping.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case ev := <-ch:
				data, _ := json.Marshal(ev)
				fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, data)
				flusher.Flush()
				if ev.Type == eventRevealed || ev.Type == eventClosed {
					return
				}
			case <-ping.C:
				fmt.Fprintf(w, ": ping\n\n")
				flusher.Flush()
			}
		}
	}
}
