package websocket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegisterReplacesPreviousConnection(t *testing.T) {
	m := NewManager()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Start(ctx)

	first := &Client{UserID: "u1", Send: make(chan []byte, 1)}
	second := &Client{UserID: "u1", Send: make(chan []byte, 1)}

	m.Register <- first
	m.Register <- second

	// The replaced connection's send channel closes so its write loop exits.
	select {
	case _, open := <-first.Send:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("replaced client's send channel was not closed")
	}

	m.SendToUser("u1", []byte("hello"))
	select {
	case msg := <-second.Send:
		assert.Equal(t, "hello", string(msg))
	case <-time.After(time.Second):
		t.Fatal("message was not delivered to the current connection")
	}
}

func TestStaleUnregisterKeepsCurrentConnection(t *testing.T) {
	m := NewManager()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Start(ctx)

	first := &Client{UserID: "u1", Send: make(chan []byte, 1)}
	second := &Client{UserID: "u1", Send: make(chan []byte, 1)}

	m.Register <- first
	m.Register <- second

	// The old connection's read loop reports its death after the reconnect;
	// the current connection must survive it.
	m.Unregister <- first

	m.SendToUser("u1", []byte("still here"))
	select {
	case msg, open := <-second.Send:
		assert.True(t, open)
		assert.Equal(t, "still here", string(msg))
	case <-time.After(time.Second):
		t.Fatal("current connection lost after stale unregister")
	}
}
