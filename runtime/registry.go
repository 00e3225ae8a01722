package runtime

import (
	"chat-dispatch/contract"
	"chat-dispatch/domain/chat"
	"chat-dispatch/errors"
	"context"
	"fmt"
	"log/slog"
	"sync"
)

var _ contract.Transport = (*Registry)(nil)

type session struct {
	conn contract.Session
	tier chat.Security
}

// Registry maps connected players to their session and security tier.
// It is the Transport the dispatch engine writes to.
type Registry struct {
	mu       sync.RWMutex
	log      *slog.Logger
	sessions map[chat.GUID]session
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		log:      log,
		sessions: make(map[chat.GUID]session),
	}
}

// Subscribe registers a player's active connection. A previous connection of
// the same player is replaced and closed.
func (r *Registry) Subscribe(guid chat.GUID, tier chat.Security, conn contract.Session) {
	r.mu.Lock()
	previous, existed := r.sessions[guid]
	r.sessions[guid] = session{conn: conn, tier: tier}
	r.mu.Unlock()

	if existed && previous.conn != conn {
		r.close(guid, previous.conn)
	}
}

// Unsubscribe forgets the player's connection if it is still the registered
// one. The connection itself is left open.
func (r *Registry) Unsubscribe(guid chat.GUID, conn contract.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[guid]; ok && s.conn == conn {
		delete(r.sessions, guid)
	}
}

// Connected reports whether the player has a live session.
func (r *Registry) Connected(guid chat.GUID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.sessions[guid]
	return ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *Registry) Send(ctx context.Context, to chat.GUID, payload []byte) error {
	r.mu.RLock()
	s, ok := r.sessions[to]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %d", errors.ErrSessionNotFound, to)
	}
	return s.conn.Send(ctx, payload)
}

// SecurityTier defaults to SecPlayer for unknown players.
func (r *Registry) SecurityTier(guid chat.GUID) chat.Security {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.sessions[guid]; ok {
		return s.tier
	}
	return chat.SecPlayer
}

// Disconnect removes the player and closes the connection.
func (r *Registry) Disconnect(guid chat.GUID) {
	r.mu.Lock()
	s, ok := r.sessions[guid]
	delete(r.sessions, guid)
	r.mu.Unlock()

	if ok {
		r.close(guid, s.conn)
	}
}

func (r *Registry) close(guid chat.GUID, conn contract.Session) {
	if err := conn.Close(); err != nil {
		r.log.Debug("Closing session failed", "guid", guid, "error", err)
	}
}
