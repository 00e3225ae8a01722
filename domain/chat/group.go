package chat

import (
	"sync"

	"github.com/samber/lo"
)

// GroupFlags describes the kind of a group.
type GroupFlags uint8

const (
	GroupRaid GroupFlags = 1 << iota
	GroupBattleground
)

// MaxSubgroups is the number of subgroups of a raid.
const MaxSubgroups = 8

// Member is one roster entry of a group.
type Member struct {
	GUID      GUID
	Subgroup  uint8
	Assistant bool
}

// Group is a party, raid or battleground raid. The roster may change while
// chat is being resolved, so every accessor returns a snapshot.
type Group struct {
	mu      sync.RWMutex
	id      GroupID
	flags   GroupFlags
	leader  GUID
	members []Member
}

func NewGroup(id GroupID, leader GUID, flags GroupFlags) *Group {
	return &Group{
		id:      id,
		flags:   flags,
		leader:  leader,
		members: []Member{{GUID: leader}},
	}
}

func (g *Group) ID() GroupID { return g.id }

func (g *Group) IsRaid() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.flags&GroupRaid != 0
}

func (g *Group) IsBattleground() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.flags&GroupBattleground != 0
}

// ConvertToRaid sets the raid flag.
func (g *Group) ConvertToRaid() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.flags |= GroupRaid
}

func (g *Group) IsLeader(guid GUID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.leader == guid
}

func (g *Group) SetLeader(guid GUID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.leader = guid
}

func (g *Group) IsAssistant(guid GUID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	m, ok := g.find(guid)
	return ok && m.Assistant
}

func (g *Group) SetAssistant(guid GUID, assistant bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.members {
		if g.members[i].GUID == guid {
			g.members[i].Assistant = assistant
		}
	}
}

// Join adds a member to a subgroup. Joining twice moves the member.
func (g *Group) Join(guid GUID, subgroup uint8) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.members {
		if g.members[i].GUID == guid {
			g.members[i].Subgroup = subgroup
			return
		}
	}
	g.members = append(g.members, Member{GUID: guid, Subgroup: subgroup})
}

func (g *Group) Leave(guid GUID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.members = lo.Reject(g.members, func(m Member, _ int) bool {
		return m.GUID == guid
	})
}

// Subgroup returns the subgroup of a member.
func (g *Group) Subgroup(guid GUID) (uint8, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	m, ok := g.find(guid)
	return m.Subgroup, ok
}

// Members returns the roster in join order.
func (g *Group) Members() []GUID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return lo.Map(g.members, func(m Member, _ int) GUID { return m.GUID })
}

// SubgroupMembers returns the members of one subgroup in join order.
func (g *Group) SubgroupMembers(subgroup uint8) []GUID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return lo.FilterMap(g.members, func(m Member, _ int) (GUID, bool) {
		return m.GUID, m.Subgroup == subgroup
	})
}

func (g *Group) find(guid GUID) (Member, bool) {
	return lo.Find(g.members, func(m Member) bool { return m.GUID == guid })
}
