// Package recipient computes who receives a chat request.
package recipient

import (
	"chat-dispatch/contract"
	"chat-dispatch/domain/chat"
	"chat-dispatch/errors"
	"fmt"
)

// Resolution is the target population of one request. Target is set for
// whispers and Channel for channel chat, which the channel delivers itself.
type Resolution struct {
	chat.RecipientSet
	Target  *chat.Player
	Channel contract.Channel
}

type Resolver struct {
	dir       contract.Directory
	transport contract.Transport
	policy    chat.Policy
}

func NewResolver(dir contract.Directory, transport contract.Transport, policy chat.Policy) *Resolver {
	return &Resolver{dir: dir, transport: transport, policy: policy}
}

// Resolve picks the rule matching the request variant.
func (r *Resolver) Resolve(req chat.Request, sender *chat.Player) (Resolution, error) {
	switch req := req.(type) {
	case chat.ProximityRequest:
		return r.proximity(req), nil
	case chat.WhisperRequest:
		return r.whisper(req, sender)
	case chat.GroupRequest:
		return r.group(req, sender)
	case chat.GuildRequest:
		return r.guild(req, sender)
	case chat.ChannelRequest:
		return r.channel(req, sender)
	default:
		return Resolution{}, fmt.Errorf("%w: no recipients for %T", errors.ErrUnknownCategory, req)
	}
}

func (r *Resolver) proximity(req chat.ProximityRequest) Resolution {
	radius := r.policy.ListenRangeSay
	switch req.Category {
	case chat.Yell:
		radius = r.policy.ListenRangeYell
	case chat.Emote:
		radius = r.policy.ListenRangeTextEmote
	}
	return Resolution{RecipientSet: chat.RecipientSet{Kind: chat.RecipientsProximity, Radius: radius}}
}

func (r *Resolver) whisper(req chat.WhisperRequest, sender *chat.Player) (Resolution, error) {
	name, ok := NormalizeName(req.Target)
	if !ok {
		return Resolution{}, &errors.NotFoundError{Name: req.Target}
	}
	target, ok := r.dir.PlayerByName(name)
	if !ok || !r.transport.Connected(target.GUID()) {
		return Resolution{}, &errors.NotFoundError{Name: name}
	}

	senderTier := r.transport.SecurityTier(sender.GUID())
	targetTier := r.transport.SecurityTier(target.GUID())
	// staff refusing whispers look offline to players
	if senderTier == chat.SecPlayer && targetTier > chat.SecPlayer && !target.AcceptsWhispers() {
		return Resolution{}, &errors.NotFoundError{Name: name}
	}
	if !r.policy.AllowTwoSideChat && senderTier == chat.SecPlayer && targetTier == chat.SecPlayer &&
		sender.Team() != target.Team() {
		return Resolution{}, errors.ErrWrongFaction
	}
	return Resolution{
		RecipientSet: chat.RecipientSet{Kind: chat.RecipientsSingle, Targets: []chat.GUID{target.GUID()}},
		Target:       target,
	}, nil
}

func (r *Resolver) group(req chat.GroupRequest, sender *chat.Player) (Resolution, error) {
	guid := sender.GUID()
	var (
		group *chat.Group
		err   error
	)
	switch req.Category {
	case chat.Party:
		group, err = r.eligibleGroup(sender, true, notBattleground)
	case chat.Raid, chat.RaidLeader:
		group, err = r.eligibleGroup(sender, true, func(g *chat.Group) bool {
			return !g.IsBattleground() && g.IsRaid()
		})
	case chat.RaidWarning:
		group, err = r.eligibleGroup(sender, false, func(g *chat.Group) bool {
			return g.IsRaid() && (g.IsLeader(guid) || g.IsAssistant(guid))
		})
	case chat.Battleground:
		group, err = r.eligibleGroup(sender, false, (*chat.Group).IsBattleground)
	case chat.BattlegroundLeader:
		group, err = r.eligibleGroup(sender, false, func(g *chat.Group) bool {
			return g.IsBattleground() && g.IsLeader(guid)
		})
	default:
		return Resolution{}, fmt.Errorf("%w: %s is not group chat", errors.ErrUnknownCategory, req.Category)
	}
	if err != nil {
		return Resolution{}, err
	}

	members := group.Members()
	if req.Category == chat.Party {
		subgroup, ok := group.Subgroup(guid)
		if !ok {
			return Resolution{}, fmt.Errorf("%w: sender left group %d", errors.ErrNoEligibleGroup, group.ID())
		}
		members = group.SubgroupMembers(subgroup)
	}
	return Resolution{RecipientSet: chat.RecipientSet{Kind: chat.RecipientsMembers, Targets: members}}, nil
}

func notBattleground(g *chat.Group) bool { return !g.IsBattleground() }

// eligibleGroup resolves the group a group chat goes to. With preferOriginal
// the group the sender had before entering a battleground wins over the
// current one. The resolved group must satisfy accept.
func (r *Resolver) eligibleGroup(sender *chat.Player, preferOriginal bool, accept func(*chat.Group) bool) (*chat.Group, error) {
	var group *chat.Group
	if preferOriginal {
		if id := sender.OriginalGroupID(); id != 0 {
			group, _ = r.dir.Group(id)
		}
	}
	if group == nil {
		if id := sender.GroupID(); id != 0 {
			group, _ = r.dir.Group(id)
		}
	}
	if group == nil {
		return nil, errors.ErrNoEligibleGroup
	}
	if !accept(group) {
		return nil, fmt.Errorf("%w: group %d rejected", errors.ErrNoEligibleGroup, group.ID())
	}
	return group, nil
}

func (r *Resolver) guild(req chat.GuildRequest, sender *chat.Player) (Resolution, error) {
	id := sender.GuildID()
	if id == 0 {
		return Resolution{}, errors.ErrNotInGuild
	}
	guild, ok := r.dir.Guild(id)
	if !ok {
		return Resolution{}, fmt.Errorf("%w: guild %d is gone", errors.ErrNotInGuild, id)
	}

	speak, listen := chat.RightGuildChatSpeak, chat.RightGuildChatListen
	if req.Category == chat.Officer {
		speak, listen = chat.RightOfficerChatSpeak, chat.RightOfficerChatListen
	}
	if !guild.HasRight(sender.GUID(), speak) {
		return Resolution{}, errors.ErrGuildPermission
	}
	return Resolution{RecipientSet: chat.RecipientSet{Kind: chat.RecipientsMembers, Targets: guild.Listeners(listen)}}, nil
}

func (r *Resolver) channel(req chat.ChannelRequest, sender *chat.Player) (Resolution, error) {
	manager, ok := r.dir.ChannelManager(sender.Team())
	if !ok {
		return Resolution{}, fmt.Errorf("%w: no channels for team %d", errors.ErrChannelNotFound, sender.Team())
	}
	channel, ok := manager.Channel(req.Channel, sender.GUID())
	if !ok {
		return Resolution{}, fmt.Errorf("%w: %q", errors.ErrChannelNotFound, req.Channel)
	}
	return Resolution{RecipientSet: chat.RecipientSet{Kind: chat.RecipientsChannel}, Channel: channel}, nil
}
