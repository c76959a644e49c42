package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/studiobela/salon-booking/internal/events"
)

type EventsHandler struct {
	hub *events.Hub
}

func NewEventsHandler(hub *events.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Stream mantém a conexão aberta e entrega eventos "confirmation" via SSE.
// Cada conexão é um assinante independente do hub; quem conecta depois de
// uma confirmação não a recebe.
func (h *EventsHandler) Stream(c *gin.Context) {
	id, ch := h.hub.Subscribe()
	defer h.hub.Unsubscribe(id)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	ctx := c.Request.Context()

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("confirmation", ev)
			return true
		case <-ctx.Done():
			return false
		}
	})
}
