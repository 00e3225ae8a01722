package recipient

import (
	"chat-dispatch/contract"
	"chat-dispatch/domain/chat"
	"chat-dispatch/errors"
	"chat-dispatch/mocks"
	stdErrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type world struct {
	players map[chat.GUID]*chat.Player
	tiers   map[chat.GUID]chat.Security
	groups  map[chat.GroupID]*chat.Group
	guilds  map[chat.GuildID]*chat.GuildRoster
	offline map[chat.GUID]bool
}

func newWorld() *world {
	return &world{
		players: map[chat.GUID]*chat.Player{},
		tiers:   map[chat.GUID]chat.Security{},
		groups:  map[chat.GroupID]*chat.Group{},
		guilds:  map[chat.GuildID]*chat.GuildRoster{},
		offline: map[chat.GUID]bool{},
	}
}

func (w *world) add(info chat.PlayerInfo) *chat.Player {
	p := chat.NewPlayer(info)
	w.players[info.GUID] = p
	return p
}

func (w *world) resolver(t *testing.T, policy chat.Policy) (*Resolver, *mocks.MockDirectory) {
	ctrl := gomock.NewController(t)
	dir := mocks.NewMockDirectory(ctrl)
	dir.EXPECT().PlayerByName(gomock.Any()).DoAndReturn(func(name string) (*chat.Player, bool) {
		for _, p := range w.players {
			if p.Name() == name {
				return p, true
			}
		}
		return nil, false
	}).AnyTimes()
	dir.EXPECT().Group(gomock.Any()).DoAndReturn(func(id chat.GroupID) (*chat.Group, bool) {
		g, ok := w.groups[id]
		return g, ok
	}).AnyTimes()
	dir.EXPECT().Guild(gomock.Any()).DoAndReturn(func(id chat.GuildID) (*chat.GuildRoster, bool) {
		g, ok := w.guilds[id]
		return g, ok
	}).AnyTimes()
	transport := mocks.NewMockTransport(ctrl)
	transport.EXPECT().SecurityTier(gomock.Any()).DoAndReturn(func(guid chat.GUID) chat.Security {
		return w.tiers[guid]
	}).AnyTimes()
	transport.EXPECT().Connected(gomock.Any()).DoAndReturn(func(guid chat.GUID) bool {
		return !w.offline[guid]
	}).AnyTimes()
	return NewResolver(dir, transport, policy), dir
}

func groupReq(c chat.Category) chat.GroupRequest {
	return chat.GroupRequest{Header: chat.Header{Category: c, Language: chat.LangCommon}, Body: "inc"}
}

func TestNormalizeName(t *testing.T) {
	req := require.New(t)

	name, ok := NormalizeName("tHRALL")
	req.True(ok)
	req.Equal("Thrall", name)

	name, ok = NormalizeName("  élise ")
	req.True(ok)
	req.Equal("Élise", name)

	_, ok = NormalizeName("")
	req.False(ok)

	_, ok = NormalizeName("Abcdefghijklm")
	req.False(ok)
}

func TestResolve_Proximity(t *testing.T) {
	req := require.New(t)
	w := newWorld()
	sender := w.add(chat.PlayerInfo{GUID: 1, Name: "Anduin"})
	resolver, _ := w.resolver(t, chat.DefaultPolicy())

	for category, radius := range map[chat.Category]float32{chat.Say: 25, chat.Yell: 300, chat.Emote: 25} {
		res, err := resolver.Resolve(chat.ProximityRequest{Header: chat.Header{Category: category}}, sender)
		req.NoError(err)
		req.Equal(chat.RecipientsProximity, res.Kind)
		req.Equal(radius, res.Radius)
	}
}

func TestResolve_Whisper(t *testing.T) {
	whisper := func(to string) chat.WhisperRequest {
		return chat.WhisperRequest{Header: chat.Header{Category: chat.Whisper, Language: chat.LangCommon}, Target: to, Body: "psst"}
	}

	t.Run("unknown name yields player not found", func(t *testing.T) {
		req := require.New(t)
		w := newWorld()
		sender := w.add(chat.PlayerInfo{GUID: 1, Name: "Anduin", Team: chat.TeamAlliance})
		resolver, _ := w.resolver(t, chat.DefaultPolicy())

		_, err := resolver.Resolve(whisper("nobody"), sender)

		var notFound *errors.NotFoundError
		req.True(stdErrors.As(err, &notFound))
		req.Equal("Nobody", notFound.Name)
	})

	t.Run("target is found by normalized name", func(t *testing.T) {
		req := require.New(t)
		w := newWorld()
		sender := w.add(chat.PlayerInfo{GUID: 1, Name: "Anduin", Team: chat.TeamAlliance})
		target := w.add(chat.PlayerInfo{GUID: 2, Name: "Jaina", Team: chat.TeamAlliance})
		resolver, _ := w.resolver(t, chat.DefaultPolicy())

		res, err := resolver.Resolve(whisper("jAINA"), sender)

		req.NoError(err)
		req.Equal(chat.RecipientsSingle, res.Kind)
		req.Equal([]chat.GUID{2}, res.Targets)
		req.Same(target, res.Target)
	})

	t.Run("target without a session yields player not found", func(t *testing.T) {
		req := require.New(t)
		w := newWorld()
		sender := w.add(chat.PlayerInfo{GUID: 1, Name: "Thrall", Team: chat.TeamHorde})
		w.add(chat.PlayerInfo{GUID: 2, Name: "Garrosh", Team: chat.TeamHorde})
		w.offline[2] = true
		resolver, _ := w.resolver(t, chat.DefaultPolicy())

		_, err := resolver.Resolve(whisper("garrosh"), sender)

		var notFound *errors.NotFoundError
		req.True(stdErrors.As(err, &notFound))
		req.Equal("Garrosh", notFound.Name)
	})

	t.Run("staff refusing whispers is hidden from players", func(t *testing.T) {
		req := require.New(t)
		w := newWorld()
		sender := w.add(chat.PlayerInfo{GUID: 1, Name: "Anduin", Team: chat.TeamAlliance})
		w.add(chat.PlayerInfo{GUID: 2, Name: "Gamemaster", AcceptWhispers: false})
		w.tiers[2] = chat.SecGameMaster
		resolver, _ := w.resolver(t, chat.DefaultPolicy())

		_, err := resolver.Resolve(whisper("gamemaster"), sender)

		req.ErrorIs(err, errors.ErrPlayerNotFound)
	})

	t.Run("staff refusing whispers still hears other staff", func(t *testing.T) {
		req := require.New(t)
		w := newWorld()
		sender := w.add(chat.PlayerInfo{GUID: 1, Name: "Moderator"})
		w.tiers[1] = chat.SecModerator
		w.add(chat.PlayerInfo{GUID: 2, Name: "Gamemaster"})
		w.tiers[2] = chat.SecGameMaster
		resolver, _ := w.resolver(t, chat.DefaultPolicy())

		_, err := resolver.Resolve(whisper("gamemaster"), sender)

		req.NoError(err)
	})

	t.Run("cross faction between players", func(t *testing.T) {
		req := require.New(t)
		w := newWorld()
		sender := w.add(chat.PlayerInfo{GUID: 1, Name: "Anduin", Team: chat.TeamAlliance})
		w.add(chat.PlayerInfo{GUID: 2, Name: "Thrall", Team: chat.TeamHorde})
		resolver, _ := w.resolver(t, chat.DefaultPolicy())

		_, err := resolver.Resolve(whisper("thrall"), sender)
		req.ErrorIs(err, errors.ErrWrongFaction)

		policy := chat.DefaultPolicy()
		policy.AllowTwoSideChat = true
		resolver, _ = w.resolver(t, policy)
		_, err = resolver.Resolve(whisper("thrall"), sender)
		req.NoError(err)
	})
}

func TestResolve_PartyBroadcastsToSubgroupOfOriginalGroup(t *testing.T) {
	req := require.New(t)
	w := newWorld()
	// Given a raid of 5 the sender had before joining a battleground
	raid := chat.NewGroup(10, 100, chat.GroupRaid)
	raid.Join(1, 0)
	raid.Join(101, 0)
	raid.Join(102, 1)
	raid.Join(103, 1)
	w.groups[10] = raid
	w.groups[20] = chat.NewGroup(20, 1, chat.GroupBattleground|chat.GroupRaid)
	sender := w.add(chat.PlayerInfo{GUID: 1, Name: "Anduin", GroupID: 20, OriginalGroupID: 10})
	resolver, _ := w.resolver(t, chat.DefaultPolicy())

	// When
	res, err := resolver.Resolve(groupReq(chat.Party), sender)

	// Then only the sender's subgroup hears it
	req.NoError(err)
	req.Equal(chat.RecipientsMembers, res.Kind)
	req.Equal([]chat.GUID{100, 1, 101}, res.Targets)
}

func TestResolve_PartyInBattlegroundOnlyIsDropped(t *testing.T) {
	req := require.New(t)
	w := newWorld()
	w.groups[20] = chat.NewGroup(20, 1, chat.GroupBattleground)
	sender := w.add(chat.PlayerInfo{GUID: 1, Name: "Anduin", GroupID: 20})
	resolver, _ := w.resolver(t, chat.DefaultPolicy())

	_, err := resolver.Resolve(groupReq(chat.Party), sender)

	req.ErrorIs(err, errors.ErrNoEligibleGroup)
}

func TestResolve_PartyWithoutGroup(t *testing.T) {
	req := require.New(t)
	w := newWorld()
	sender := w.add(chat.PlayerInfo{GUID: 1, Name: "Anduin"})
	resolver, _ := w.resolver(t, chat.DefaultPolicy())

	_, err := resolver.Resolve(groupReq(chat.Party), sender)

	req.ErrorIs(err, errors.ErrNoEligibleGroup)
}

func TestResolve_Raid(t *testing.T) {
	tests := []struct {
		name     string
		flags    chat.GroupFlags
		category chat.Category
		leader   bool
		assist   bool
		ok       bool
	}{
		{name: "raid from member", flags: chat.GroupRaid, category: chat.Raid, ok: true},
		{name: "raid leader from member", flags: chat.GroupRaid, category: chat.RaidLeader, ok: true},
		{name: "raid in a party", flags: 0, category: chat.Raid},
		{name: "raid in a battleground", flags: chat.GroupRaid | chat.GroupBattleground, category: chat.Raid},
		{name: "raid warning from plain member", flags: chat.GroupRaid, category: chat.RaidWarning},
		{name: "raid warning from assistant", flags: chat.GroupRaid, category: chat.RaidWarning, assist: true, ok: true},
		{name: "raid warning from leader", flags: chat.GroupRaid, category: chat.RaidWarning, leader: true, ok: true},
		{name: "raid warning from party leader", flags: 0, category: chat.RaidWarning, leader: true},
		{name: "battleground", flags: chat.GroupBattleground, category: chat.Battleground, ok: true},
		{name: "battleground outside one", flags: chat.GroupRaid, category: chat.Battleground},
		{name: "battleground leader from member", flags: chat.GroupBattleground, category: chat.BattlegroundLeader},
		{name: "battleground leader from leader", flags: chat.GroupBattleground, category: chat.BattlegroundLeader, leader: true, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			w := newWorld()
			leader := chat.GUID(100)
			if tt.leader {
				leader = 1
			}
			group := chat.NewGroup(7, leader, tt.flags)
			for guid := chat.GUID(1); guid <= 5; guid++ {
				group.Join(guid, uint8(guid%2))
			}
			group.SetAssistant(1, tt.assist)
			w.groups[7] = group
			sender := w.add(chat.PlayerInfo{GUID: 1, Name: "Anduin", GroupID: 7})
			resolver, _ := w.resolver(t, chat.DefaultPolicy())

			res, err := resolver.Resolve(groupReq(tt.category), sender)

			if !tt.ok {
				req.ErrorIs(err, errors.ErrNoEligibleGroup)
				return
			}
			req.NoError(err)
			req.ElementsMatch(group.Members(), res.Targets)
		})
	}
}

func TestResolve_RaidWarningIgnoresOriginalGroup(t *testing.T) {
	req := require.New(t)
	w := newWorld()
	original := chat.NewGroup(10, 1, chat.GroupRaid)
	w.groups[10] = original
	w.groups[20] = chat.NewGroup(20, 1, chat.GroupBattleground)
	sender := w.add(chat.PlayerInfo{GUID: 1, Name: "Anduin", GroupID: 20, OriginalGroupID: 10})
	resolver, _ := w.resolver(t, chat.DefaultPolicy())

	_, err := resolver.Resolve(groupReq(chat.RaidWarning), sender)

	req.ErrorIs(err, errors.ErrNoEligibleGroup)
}

func TestResolve_Guild(t *testing.T) {
	ranks := []chat.Rank{
		{Name: "Master", Rights: chat.RightsOfficer},
		{Name: "Member", Rights: chat.RightsMember},
		{Name: "Initiate", Rights: chat.RightGuildChatListen},
	}
	guildReq := func(c chat.Category) chat.GuildRequest {
		return chat.GuildRequest{Header: chat.Header{Category: c, Language: chat.LangCommon}, Body: "gz"}
	}

	setup := func(t *testing.T, senderRank chat.RankID) (*Resolver, *chat.Player) {
		w := newWorld()
		guild := chat.NewGuildRoster(3, "Wardens", ranks)
		guild.AddMember(1, senderRank)
		guild.AddMember(2, 0)
		guild.AddMember(3, 1)
		guild.AddMember(4, 2)
		w.guilds[3] = guild
		sender := w.add(chat.PlayerInfo{GUID: 1, Name: "Anduin", GuildID: 3})
		resolver, _ := w.resolver(t, chat.DefaultPolicy())
		return resolver, sender
	}

	t.Run("guild chat reaches every listener", func(t *testing.T) {
		req := require.New(t)
		resolver, sender := setup(t, 1)

		res, err := resolver.Resolve(guildReq(chat.Guild), sender)

		req.NoError(err)
		req.Equal([]chat.GUID{1, 2, 3, 4}, res.Targets)
	})

	t.Run("officer chat reaches officers only", func(t *testing.T) {
		req := require.New(t)
		resolver, sender := setup(t, 0)

		res, err := resolver.Resolve(guildReq(chat.Officer), sender)

		req.NoError(err)
		req.Equal([]chat.GUID{1, 2}, res.Targets)
	})

	t.Run("member cannot speak in officer chat", func(t *testing.T) {
		req := require.New(t)
		resolver, sender := setup(t, 1)

		_, err := resolver.Resolve(guildReq(chat.Officer), sender)

		req.ErrorIs(err, errors.ErrGuildPermission)
	})

	t.Run("initiate cannot speak", func(t *testing.T) {
		req := require.New(t)
		resolver, sender := setup(t, 2)

		_, err := resolver.Resolve(guildReq(chat.Guild), sender)

		req.ErrorIs(err, errors.ErrGuildPermission)
	})

	t.Run("no guild", func(t *testing.T) {
		req := require.New(t)
		w := newWorld()
		sender := w.add(chat.PlayerInfo{GUID: 1, Name: "Anduin"})
		resolver, _ := w.resolver(t, chat.DefaultPolicy())

		_, err := resolver.Resolve(guildReq(chat.Guild), sender)

		req.ErrorIs(err, errors.ErrNotInGuild)
	})
}

func TestResolve_Channel(t *testing.T) {
	channelReq := chat.ChannelRequest{Header: chat.Header{Category: chat.Channel, Language: chat.LangCommon}, Channel: "Trade", Body: "wts"}

	t.Run("unknown channel is dropped", func(t *testing.T) {
		req := require.New(t)
		w := newWorld()
		sender := w.add(chat.PlayerInfo{GUID: 1, Name: "Anduin", Team: chat.TeamAlliance})
		resolver, dir := w.resolver(t, chat.DefaultPolicy())
		ctrl := gomock.NewController(t)
		manager := mocks.NewMockChannelManager(ctrl)
		dir.EXPECT().ChannelManager(chat.TeamAlliance).Return(manager, true)
		manager.EXPECT().Channel("Trade", chat.GUID(1)).Return(nil, false)

		_, err := resolver.Resolve(channelReq, sender)

		req.ErrorIs(err, errors.ErrChannelNotFound)
	})

	t.Run("missing manager is dropped", func(t *testing.T) {
		req := require.New(t)
		w := newWorld()
		sender := w.add(chat.PlayerInfo{GUID: 1, Name: "Thrall", Team: chat.TeamHorde})
		resolver, dir := w.resolver(t, chat.DefaultPolicy())
		dir.EXPECT().ChannelManager(chat.TeamHorde).Return(nil, false)

		_, err := resolver.Resolve(channelReq, sender)

		req.ErrorIs(err, errors.ErrChannelNotFound)
	})

	t.Run("channel found", func(t *testing.T) {
		req := require.New(t)
		w := newWorld()
		sender := w.add(chat.PlayerInfo{GUID: 1, Name: "Anduin", Team: chat.TeamAlliance})
		resolver, dir := w.resolver(t, chat.DefaultPolicy())
		ctrl := gomock.NewController(t)
		manager := mocks.NewMockChannelManager(ctrl)
		channel := mocks.NewMockChannel(ctrl)
		dir.EXPECT().ChannelManager(chat.TeamAlliance).Return(manager, true)
		manager.EXPECT().Channel("Trade", chat.GUID(1)).Return(channel, true)

		res, err := resolver.Resolve(channelReq, sender)

		req.NoError(err)
		req.Equal(chat.RecipientsChannel, res.Kind)
		req.Equal(contract.Channel(channel), res.Channel)
	})
}
