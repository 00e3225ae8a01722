package event

import (
	"chat-dispatch/errors"
	"log/slog"
	"sync"
)

// CensoredHandler keeps a hit count per censored word.
type CensoredHandler struct {
	mu      sync.Mutex
	log     *slog.Logger
	counter uint64
	hit     map[string]uint64
}

func NewCensoredHandler(log *slog.Logger) *CensoredHandler {
	return &CensoredHandler{
		log: log,
		hit: make(map[string]uint64),
	}
}

func (h *CensoredHandler) Handle(event Event) {
	if event.Type != CensorshipHitType {
		return
	}
	payload, ok := event.Payload.(Censored)
	if !ok {
		h.log.Error(errors.ErrInvalidPayload.Error())
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.counter++
	for _, w := range payload.Words {
		h.hit[w]++
	}
}

// Hits returns how many times a word was censored.
func (h *CensoredHandler) Hits(word string) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hit[word]
}

// Total returns how many messages were censored.
func (h *CensoredHandler) Total() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.counter
}
