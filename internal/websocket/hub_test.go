package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"lessonplan-review-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	h := NewHub(nil, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go h.Run(ctx)
	return h
}

func TestHub_SendReachesOnlyTargetSession(t *testing.T) {
	h := startHub(t)
	target, other := uuid.New(), uuid.New()

	a := &Client{Hub: h, SessionID: target, Send: make(chan []byte, 4)}
	b := &Client{Hub: h, SessionID: target, Send: make(chan []byte, 4)}
	c := &Client{Hub: h, SessionID: other, Send: make(chan []byte, 4)}
	for _, cl := range []*Client{a, b, c} {
		h.register <- cl
	}
	require.Eventually(t, func() bool { return h.ConnectedClients(target) == 2 }, time.Second, 5*time.Millisecond)

	h.Send(target, Frame{Type: "notification", Data: map[string]string{"message": "記事已新增"}})

	for _, cl := range []*Client{a, b} {
		select {
		case raw := <-cl.Send:
			var f struct {
				Type string            `json:"type"`
				Data map[string]string `json:"data"`
			}
			require.NoError(t, json.Unmarshal(raw, &f))
			assert.Equal(t, "notification", f.Type)
			assert.Equal(t, "記事已新增", f.Data["message"])
		case <-time.After(time.Second):
			t.Fatal("frame not delivered")
		}
	}
	assert.Empty(t, c.Send)
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	h := startHub(t)
	sid := uuid.New()
	cl := &Client{Hub: h, SessionID: sid, Send: make(chan []byte, 1)}

	h.register <- cl
	h.unregister <- cl

	require.Eventually(t, func() bool { return h.ConnectedClients(sid) == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-cl.Send
	assert.False(t, open)
}

func TestHub_FullBufferDrops(t *testing.T) {
	h := startHub(t)
	sid := uuid.New()
	cl := &Client{Hub: h, SessionID: sid, Send: make(chan []byte, 1)}
	h.register <- cl
	require.Eventually(t, func() bool { return h.ConnectedClients(sid) == 1 }, time.Second, 5*time.Millisecond)

	h.Send(sid, Frame{Type: "notification", Data: 1})
	h.Send(sid, Frame{Type: "notification", Data: 2})

	assert.Len(t, cl.Send, 1)
	assert.Equal(t, 1, h.ConnectedClients(sid))
}

func TestHub_RedisSubscriberStopsWithContext(t *testing.T) {
	// Nothing listens on this port; the subscriber keeps retrying until cancelled.
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { rdb.Close() })
	h := NewHub(rdb, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.subscribeToRedis(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("redis subscriber still running after cancel")
	}
}
