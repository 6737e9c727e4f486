package handler

import (
	"context"
	"log"

	"go-baki-pos/internal/voice"
	"go-baki-pos/internal/ws"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// RequireUpgrade rejects plain HTTP requests on websocket routes
func RequireUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return c.SendStatus(fiber.StatusUpgradeRequired)
}

// Subscribe registers a view for store_update broadcasts
func Subscribe(hub *ws.Hub) fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		hub.Register <- c
		defer func() { hub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	})
}

// Voice runs one speech session per connection. Each browser recognition
// event is answered with a notice.
func Voice(proc voice.Processor) fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		defer c.Close()
		serveVoice(c, voice.NewSession(proc))
	})
}

// jsonConn is the part of *websocket.Conn the voice loop uses
type jsonConn interface {
	ReadJSON(v interface{}) error
	WriteJSON(v interface{}) error
}

const voiceQueue = 8

// serveVoice reads on its own goroutine so a dropped socket cancels the
// context of whatever submit is pending or queued.
func serveVoice(conn jsonConn, session *voice.Session) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan voice.Event, voiceQueue)
	go func() {
		defer close(events)
		defer cancel()
		for {
			var ev voice.Event
			if err := conn.ReadJSON(&ev); err != nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for ev := range events {
		notice := session.Handle(ctx, ev)
		if err := conn.WriteJSON(notice); err != nil {
			log.Printf("Warning: voice notice not delivered: %v", err)
			return
		}
	}
}
