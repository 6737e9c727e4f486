package ws

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPublishDoesNotBlock(t *testing.T) {
	h := NewHub()

	done := make(chan struct{})
	go func() {
		h.Publish([]byte(`{"type":"store_update"}`))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked without a running hub")
	}

	select {
	case msg := <-h.Broadcast:
		assert.JSONEq(t, `{"type":"store_update"}`, string(msg))
	case <-time.After(time.Second):
		t.Fatal("message never reached the broadcast channel")
	}
}

func TestPublishKeepsOrder(t *testing.T) {
	h := NewHub()
	for i := 0; i < 50; i++ {
		h.Publish([]byte(fmt.Sprintf(`{"seq":%d}`, i)))
	}
	for i := 0; i < 50; i++ {
		assert.JSONEq(t, fmt.Sprintf(`{"seq":%d}`, i), string(<-h.Broadcast))
	}
}

func TestPublishDropsWhenQueueFull(t *testing.T) {
	h := NewHub()
	for i := 0; i < broadcastBuffer+10; i++ {
		h.Publish([]byte(`{}`))
	}
	assert.Len(t, h.Broadcast, broadcastBuffer)
}
