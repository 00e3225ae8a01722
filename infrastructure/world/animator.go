package world

import (
	"chat-dispatch/contract"
	"chat-dispatch/domain/chat"
	"log/slog"
	"sync"
)

var _ contract.Animator = (*Animator)(nil)

// Animator records the last animation of each unit. The render side of the
// server reads it through Current.
type Animator struct {
	mu      sync.RWMutex
	log     *slog.Logger
	current map[chat.GUID]chat.EmoteID
}

func NewAnimator(log *slog.Logger) *Animator {
	return &Animator{log: log, current: make(map[chat.GUID]chat.EmoteID)}
}

func (a *Animator) PlayEmote(sender chat.GUID, emote chat.EmoteID) {
	a.mu.Lock()
	a.current[sender] = emote
	a.mu.Unlock()
	a.log.Debug("Emote played", "unit", sender, "emote", emote)
}

func (a *Animator) Current(guid chat.GUID) (chat.EmoteID, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	e, ok := a.current[guid]
	return e, ok
}
