package sink

import (
	"chat-dispatch/contract"
	"chat-dispatch/domain/event"
	"chat-dispatch/errors"
	"context"
	"fmt"
	"log/slog"
)

// MuteSink persists flood mutes so they survive a restart.
type MuteSink struct {
	store contract.MuteStore
	log   *slog.Logger
}

func NewMuteSink(store contract.MuteStore, log *slog.Logger) MuteSink {
	return MuteSink{store: store, log: log}
}

func (m MuteSink) Consume(ctx context.Context, e event.Event) error {
	if e.Type != event.FloodMutedType {
		return nil
	}
	payload, ok := e.Payload.(event.FloodMuted)
	if !ok {
		return errors.ErrInvalidPayload
	}
	if err := m.store.Save(ctx, payload.Sender, payload.Until); err != nil {
		return fmt.Errorf("failed to persist mute of %d: %w", payload.Sender, err)
	}
	m.log.Debug("Mute persisted", "guid", payload.Sender, "until", payload.Until)
	return nil
}
