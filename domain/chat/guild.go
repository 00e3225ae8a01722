package chat

import (
	"sync"

	"github.com/samber/lo"
)

// GuildRights is the chat part of a guild rank's rights.
type GuildRights uint32

const (
	RightGuildChatListen GuildRights = 1 << iota
	RightGuildChatSpeak
	RightOfficerChatListen
	RightOfficerChatSpeak

	RightsMember  = RightGuildChatListen | RightGuildChatSpeak
	RightsOfficer = RightsMember | RightOfficerChatListen | RightOfficerChatSpeak
)

type RankID uint8

type Rank struct {
	Name   string
	Rights GuildRights
}

type guildMember struct {
	guid GUID
	rank RankID
}

// GuildRoster holds the ranks and roster a guild broadcast is scoped by.
type GuildRoster struct {
	mu      sync.RWMutex
	id      GuildID
	name    string
	ranks   []Rank
	members []guildMember
}

// NewGuildRoster creates a guild. Rank 0 is the guild master.
func NewGuildRoster(id GuildID, name string, ranks []Rank) *GuildRoster {
	return &GuildRoster{id: id, name: name, ranks: ranks}
}

func (g *GuildRoster) ID() GuildID { return g.id }

func (g *GuildRoster) Name() string { return g.name }

// AddMember puts a member at a rank, or moves an existing member.
func (g *GuildRoster) AddMember(guid GUID, rank RankID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.members {
		if g.members[i].guid == guid {
			g.members[i].rank = rank
			return
		}
	}
	g.members = append(g.members, guildMember{guid: guid, rank: rank})
}

func (g *GuildRoster) RemoveMember(guid GUID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.members = lo.Reject(g.members, func(m guildMember, _ int) bool { return m.guid == guid })
}

// HasRight reports whether a member's rank grants the right.
func (g *GuildRoster) HasRight(guid GUID, right GuildRights) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	m, ok := lo.Find(g.members, func(m guildMember) bool { return m.guid == guid })
	return ok && g.rights(m.rank)&right != 0
}

// Listeners returns the members whose rank grants the right, in roster order.
func (g *GuildRoster) Listeners(right GuildRights) []GUID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return lo.FilterMap(g.members, func(m guildMember, _ int) (GUID, bool) {
		return m.guid, g.rights(m.rank)&right != 0
	})
}

func (g *GuildRoster) rights(rank RankID) GuildRights {
	if int(rank) >= len(g.ranks) {
		return 0
	}
	return g.ranks[rank].Rights
}
