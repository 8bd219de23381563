package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/playperu/minicourse/internal/quiz"
)

const (
	socketWriteWait  = 10 * time.Second
	socketPongWait   = 60 * time.Second
	socketPingPeriod = (socketPongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

type socketState struct {
	Type    string          `json:"type"`
	Session SessionResponse `json:"session"`
}

// handleSocket pushes the same events as handleEvents over a websocket. The
// first frame carries the session view; inbound frames are ignored.
func handleSocket(logger *slog.Logger, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ls := sessionFrom(r)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Error("websocket upgrade failed", "error", err)
			return
		}
		defer conn.Close()

		ch := broker.Subscribe(ls.id)
		defer broker.Unsubscribe(ls.id, ch)

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()
		go readSocket(conn, cancel)

		view := sessionResponse(ls)
		if err := writeSocket(conn, socketState{Type: "state", Session: view}); err != nil {
			logger.Debug("websocket write failed", "error", err)
			return
		}
		if view.Phase == quiz.PhaseRevealed {
			closeSocket(conn)
			return
		}

		ping := time.NewTicker(socketPingPeriod)
		defer ping.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case ev := <-ch:
				if err := writeSocket(conn, ev); err != nil {
					logger.Debug("websocket write failed", "error", err)
					return
				}
				if ev.Type == eventRevealed || ev.Type == eventClosed {
					closeSocket(conn)
					return
				}
			case <-ping.C:
				conn.SetWriteDeadline(time.Now().Add(socketWriteWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}
}

// readSocket drains inbound frames so pongs and close frames are processed.
func readSocket(conn *websocket.Conn, done context.CancelFunc) {
	defer done()
	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(socketPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(socketPongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writeSocket(conn *websocket.Conn, v any) error {
	conn.SetWriteDeadline(time.Now().Add(socketWriteWait))
	return conn.WriteJSON(v)
}

func closeSocket(conn *websocket.Conn) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session ended")
	conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(socketWriteWait))
}
