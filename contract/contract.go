//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-dispatch/domain/chat"
	"chat-dispatch/domain/event"
	"context"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes, avoiding the need
// for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}

// Session is one connected client. Send must not block on a slow peer.
type Session interface {
	Send(ctx context.Context, payload []byte) error
	Close() error
}

// Transport is the session layer. Send must not block on a slow peer.
type Transport interface {
	Send(ctx context.Context, to chat.GUID, payload []byte) error
	SecurityTier(guid chat.GUID) chat.Security
	// Connected reports whether the player has a live session.
	Connected(guid chat.GUID) bool
	Disconnect(guid chat.GUID)
}

// SpatialIndex visits every world entity within radius of the origin, in no particular order.
type SpatialIndex interface {
	Visit(origin chat.GUID, radius float32, visit func(chat.WorldEntity))
}

type PlayerStore interface {
	Player(guid chat.GUID) (*chat.Player, bool)
	PlayerByName(name string) (*chat.Player, bool)
}

type GroupStore interface {
	Group(id chat.GroupID) (*chat.Group, bool)
}

type GuildStore interface {
	Guild(id chat.GuildID) (*chat.GuildRoster, bool)
}

type ChannelStore interface {
	ChannelManager(team chat.Team) (ChannelManager, bool)
}

type ChannelManager interface {
	Channel(name string, sender chat.GUID) (Channel, bool)
}

// Channel owns its membership and moderation. The engine only hands over the screened text.
type Channel interface {
	Say(ctx context.Context, sender chat.GUID, text string, lang chat.Language) error
}

// Directory groups every read accessor the resolver needs.
type Directory interface {
	PlayerStore
	GroupStore
	GuildStore
	ChannelStore
}

type SkillSystem interface {
	KnowsLanguage(guid chat.GUID, lang chat.Language) bool
	// ActiveLanguageOverride returns the first registered override effect.
	ActiveLanguageOverride(guid chat.GUID) (chat.Language, bool)
}

// CommandParser returns true when the text was consumed as a command.
type CommandParser interface {
	TryParseAsCommand(ctx context.Context, sender chat.GUID, text string) bool
}

type Animator interface {
	PlayEmote(sender chat.GUID, emote chat.EmoteID)
}

type UnitLookup interface {
	Unit(sender chat.GUID, target chat.GUID) (chat.Unit, bool)
}

type EmoteStore interface {
	TextEmote(id chat.TextEmoteID) (chat.TextEmoteEntry, bool)
}

// MuteStore persists mute expiries so they survive a restart.
type MuteStore interface {
	Save(ctx context.Context, guid chat.GUID, until time.Time) error
	Load(ctx context.Context, guid chat.GUID) (time.Time, bool, error)
}

// AccountStore keeps the password hash of each player account.
type AccountStore interface {
	// CreatePassword fails with ErrAccountExists when a hash is already stored.
	CreatePassword(guid chat.GUID, hash string) error
	// PasswordHash fails with ErrAccountNotFound when none is stored.
	PasswordHash(guid chat.GUID) (string, error)
}
