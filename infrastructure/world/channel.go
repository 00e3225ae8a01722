package world

import (
	"chat-dispatch/contract"
	"chat-dispatch/domain/chat"
	"chat-dispatch/errors"
	"chat-dispatch/localization"
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/samber/lo"
)

var (
	_ contract.ChannelManager = (*ChannelManager)(nil)
	_ contract.Channel        = (*Channel)(nil)
)

// ChannelManager owns the custom channels of one team.
type ChannelManager struct {
	mu        sync.RWMutex
	log       *slog.Logger
	transport contract.Transport
	players   contract.PlayerStore
	channels  map[string]*Channel
}

func NewChannelManager(log *slog.Logger, transport contract.Transport, players contract.PlayerStore) *ChannelManager {
	return &ChannelManager{
		log:       log,
		transport: transport,
		players:   players,
		channels:  make(map[string]*Channel),
	}
}

// Join adds the player to the channel, creating it on first join.
func (m *ChannelManager) Join(name string, guid chat.GUID) *Channel {
	key := strings.ToLower(name)
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.channels[key]
	if !ok {
		c = &Channel{name: name, manager: m}
		m.channels[key] = c
	}
	c.join(guid)
	return c
}

// Leave removes the player. An emptied channel is deleted.
func (m *ChannelManager) Leave(name string, guid chat.GUID) {
	key := strings.ToLower(name)
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.channels[key]
	if !ok {
		return
	}
	if c.leave(guid) == 0 {
		delete(m.channels, key)
	}
}

// Channel looks the channel up by case-insensitive name. Membership of the
// sender is checked by Say.
func (m *ChannelManager) Channel(name string, _ chat.GUID) (contract.Channel, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.channels[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return c, true
}

type Channel struct {
	name    string
	manager *ChannelManager

	mu      sync.RWMutex
	members []chat.GUID
}

func (c *Channel) Name() string { return c.name }

func (c *Channel) Members() []chat.GUID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]chat.GUID, len(c.members))
	copy(out, c.members)
	return out
}

func (c *Channel) join(guid chat.GUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !lo.Contains(c.members, guid) {
		c.members = append(c.members, guid)
	}
}

func (c *Channel) leave(guid chat.GUID) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.members = lo.Without(c.members, guid)
	return len(c.members)
}

// Say sends the text to every member, the sender included. A sender outside
// the channel gets the not-member notice instead.
func (c *Channel) Say(ctx context.Context, sender chat.GUID, text string, lang chat.Language) error {
	members := c.Members()
	if !lo.Contains(members, sender) {
		if err := c.manager.transport.Send(ctx, sender, localization.ChannelNotMember(c.name)); err != nil {
			c.manager.log.Debug("Channel notice failed", "channel", c.name, "recipient", sender, "error", err)
		}
		return errors.ErrNotChannelMember
	}
	var tag chat.ChatTag
	if p, ok := c.manager.players.Player(sender); ok {
		tag = p.ChatTag()
	}
	payload := localization.Chat(localization.ChatMessage{
		Category: chat.Channel,
		Language: lang,
		Channel:  c.name,
		Sender:   sender,
		Text:     text,
		Tag:      tag,
	})
	for _, member := range members {
		if err := c.manager.transport.Send(ctx, member, payload); err != nil {
			c.manager.log.Debug("Channel delivery failed", "channel", c.name, "recipient", member, "error", err)
		}
	}
	return nil
}
