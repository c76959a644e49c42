package events

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Event é o payload emitido para todos os assinantes quando uma reserva
// é confirmada.
type Event struct {
	Customer string `json:"customer"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// Publisher é a capacidade consumida pelo caso de uso de reserva. O caso de
// uso não conhece o transporte (SSE, websocket, etc).
type Publisher interface {
	Publish(ev Event)
}

const subscriberBuffer = 16

// Hub entrega eventos de confirmação para todos os assinantes conectados.
// Entrega é fire-and-forget: quem conecta depois não recebe eventos antigos
// e assinante lento tem eventos descartados em vez de bloquear o publisher.
type Hub struct {
	mu          sync.Mutex
	subscribers map[string]chan Event
	logger      *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		subscribers: make(map[string]chan Event),
		logger:      logger,
	}
}

func (h *Hub) Subscribe() (string, <-chan Event) {
	id := uuid.NewString()
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	h.subscribers[id] = ch
	h.mu.Unlock()

	return id, ch
}

func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subscribers[id]; ok {
		delete(h.subscribers, id)
		close(ch)
	}
}

// Publish envia o evento para cada assinante conectado. O envio acontece
// sob o lock do hub, então cada assinante observa os eventos na ordem em
// que foram publicados.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.subscribers {
		select {
		case ch <- ev:
		default:
			// assinante lento: descarta em vez de segurar a reserva
			if h.logger != nil {
				h.logger.Warn("dropping confirmation event",
					zap.String("subscriber", id),
				)
			}
		}
	}
}

func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

var _ Publisher = (*Hub)(nil)
