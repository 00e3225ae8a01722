// Package world is an in-memory rendition of the server state the chat
// engine reads: players, groups, guilds, channels and positions.
package world

import (
	"chat-dispatch/contract"
	"chat-dispatch/domain/chat"
	"chat-dispatch/recipient"
	"log/slog"
	"sync"
)

var (
	_ contract.Directory    = (*World)(nil)
	_ contract.SpatialIndex = (*World)(nil)
	_ contract.UnitLookup   = (*World)(nil)
)

type World struct {
	mu        sync.RWMutex
	log       *slog.Logger
	players   map[chat.GUID]*chat.Player
	byName    map[string]chat.GUID
	groups    map[chat.GroupID]*chat.Group
	guilds    map[chat.GuildID]*chat.GuildRoster
	creatures map[chat.GUID]*Creature
	channels  map[chat.Team]*ChannelManager
	grid      *grid
}

func New(log *slog.Logger, cellSize float32) *World {
	return &World{
		log:       log,
		players:   make(map[chat.GUID]*chat.Player),
		byName:    make(map[string]chat.GUID),
		groups:    make(map[chat.GroupID]*chat.Group),
		guilds:    make(map[chat.GuildID]*chat.GuildRoster),
		creatures: make(map[chat.GUID]*Creature),
		channels:  make(map[chat.Team]*ChannelManager),
		grid:      newGrid(cellSize),
	}
}

// AddPlayer places a player in the world. A player with the same GUID is replaced.
func (w *World) AddPlayer(p *chat.Player, pos Position) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if old, ok := w.players[p.GUID()]; ok {
		w.forgetName(old)
	}
	w.players[p.GUID()] = p
	if name, ok := recipient.NormalizeName(p.Name()); ok {
		w.byName[name] = p.GUID()
	}
	w.grid.place(chat.WorldEntity{GUID: p.GUID(), IsPlayer: true, Locale: p.Locale()}, pos)
}

func (w *World) RemovePlayer(guid chat.GUID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if p, ok := w.players[guid]; ok {
		w.forgetName(p)
		delete(w.players, guid)
	}
	w.grid.remove(guid)
}

func (w *World) forgetName(p *chat.Player) {
	if name, ok := recipient.NormalizeName(p.Name()); ok && w.byName[name] == p.GUID() {
		delete(w.byName, name)
	}
}

// AddCreature places a non-player unit. Creatures can be emote targets and
// hear proximity chat, but never receive payloads.
func (w *World) AddCreature(c *Creature, pos Position) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.creatures[c.GUID()] = c
	w.grid.place(chat.WorldEntity{GUID: c.GUID()}, pos)
}

// Move updates the position of a player or creature already in the world.
func (w *World) Move(guid chat.GUID, pos Position) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.grid.move(guid, pos)
}

func (w *World) AddGroup(g *chat.Group) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.groups[g.ID()] = g
}

func (w *World) RemoveGroup(id chat.GroupID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.groups, id)
}

func (w *World) AddGuild(g *chat.GuildRoster) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.guilds[g.ID()] = g
}

// SetChannels installs the channel manager of a team.
func (w *World) SetChannels(team chat.Team, m *ChannelManager) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.channels[team] = m
}

func (w *World) Player(guid chat.GUID) (*chat.Player, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	p, ok := w.players[guid]
	return p, ok
}

// PlayerByName expects a name already normalized by recipient.NormalizeName.
func (w *World) PlayerByName(name string) (*chat.Player, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	guid, ok := w.byName[name]
	if !ok {
		return nil, false
	}
	p, ok := w.players[guid]
	return p, ok
}

func (w *World) Group(id chat.GroupID) (*chat.Group, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	g, ok := w.groups[id]
	return g, ok
}

func (w *World) Guild(id chat.GuildID) (*chat.GuildRoster, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	g, ok := w.guilds[id]
	return g, ok
}

func (w *World) ChannelManager(team chat.Team) (contract.ChannelManager, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	m, ok := w.channels[team]
	if !ok {
		return nil, false
	}
	return m, true
}

// Visit calls visit for every entity on the origin's map within radius,
// the origin included. The callback runs outside the world lock.
func (w *World) Visit(origin chat.GUID, radius float32, visit func(chat.WorldEntity)) {
	w.mu.RLock()
	found := w.grid.around(origin, radius)
	w.mu.RUnlock()
	for _, e := range found {
		visit(e)
	}
}

// Unit resolves an emote target: a player or a creature.
func (w *World) Unit(_ chat.GUID, target chat.GUID) (chat.Unit, bool) {
	if target == 0 {
		return nil, false
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	if p, ok := w.players[target]; ok {
		return playerUnit{p}, true
	}
	if c, ok := w.creatures[target]; ok {
		return c, true
	}
	return nil, false
}

type playerUnit struct {
	*chat.Player
}

// NameForLocale returns the character name, which is never translated.
func (u playerUnit) NameForLocale(chat.Locale) string { return u.Name() }
