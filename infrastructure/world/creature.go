package world

import (
	"chat-dispatch/domain/chat"
	"sync"
)

// Creature is a non-player unit with localized names and an optional
// scripted reaction to text emotes.
type Creature struct {
	guid  chat.GUID
	name  string
	names map[chat.Locale]string

	mu      sync.Mutex
	onEmote func(sender chat.GUID, emote chat.TextEmoteID)
}

func NewCreature(guid chat.GUID, name string, names map[chat.Locale]string) *Creature {
	return &Creature{guid: guid, name: name, names: names}
}

func (c *Creature) GUID() chat.GUID { return c.guid }

// NameForLocale falls back to the default name.
func (c *Creature) NameForLocale(locale chat.Locale) string {
	if n, ok := c.names[locale]; ok && n != "" {
		return n
	}
	return c.name
}

// OnEmote installs the reaction script.
func (c *Creature) OnEmote(react func(sender chat.GUID, emote chat.TextEmoteID)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEmote = react
}

func (c *Creature) ReceiveEmote(sender chat.GUID, emote chat.TextEmoteID) {
	c.mu.Lock()
	react := c.onEmote
	c.mu.Unlock()
	if react != nil {
		react(sender, emote)
	}
}
