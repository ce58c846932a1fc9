package connection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManager_RegisterUnregister(t *testing.T) {
	m := NewManager()
	go m.Start()

	client := &Client{ID: "client-1", Send: make(chan []byte, 1)}
	m.Register <- client
	assert.Eventually(t, func() bool { return m.IsConnected("client-1") }, time.Second, time.Millisecond)
	assert.Equal(t, 1, m.Count())

	m.Unregister <- client
	assert.Eventually(t, func() bool { return m.Count() == 0 }, time.Second, time.Millisecond)

	_, open := <-client.Send
	assert.False(t, open, "unregistering closes the send channel")

	// a second unregister is ignored
	m.Unregister <- client
	assert.False(t, m.IsConnected("client-1"))
}
