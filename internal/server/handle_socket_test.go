package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionSocket(t *testing.T) {
	a := setupApp(t, nil)
	srv := httptest.NewServer(a.h)
	defer srv.Close()

	sess := openQuiz(t, a, 2)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/sessions/" + sess.ID + "/ws"
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var state socketState
	require.NoError(t, conn.ReadJSON(&state))
	assert.Equal(t, "state", state.Type)
	assert.Equal(t, sess.ID, state.Session.ID)

	ls, ok := a.reg.Get(sess.ID)
	require.True(t, ok)
	require.NoError(t, ls.sess.Finish())

	for {
		var ev Event
		require.NoError(t, conn.ReadJSON(&ev))
		if ev.Type == eventTick {
			continue
		}
		assert.Equal(t, eventRevealed, ev.Type)
		break
	}

	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}

func TestSessionSocketClosedByReset(t *testing.T) {
	a := setupApp(t, nil)
	srv := httptest.NewServer(a.h)
	defer srv.Close()

	sess := openQuiz(t, a, 4)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/sessions/" + sess.ID + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var state socketState
	require.NoError(t, conn.ReadJSON(&state))

	w := a.do(t, http.MethodPost, "/api/progress/reset", nil)
	expectStatus(t, w, http.StatusOK)

	for {
		var ev Event
		require.NoError(t, conn.ReadJSON(&ev))
		if ev.Type == eventClosed {
			break
		}
	}
}
