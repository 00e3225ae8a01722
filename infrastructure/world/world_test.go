package world

import (
	"chat-dispatch/domain/chat"
	"chat-dispatch/errors"
	"chat-dispatch/localization"
	"chat-dispatch/mocks"
	"context"
	"log/slog"
	"testing"
	"testing/fstest"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPlayer(guid chat.GUID, name string) *chat.Player {
	return chat.NewPlayer(chat.PlayerInfo{GUID: guid, Name: name, Alive: true, AcceptWhispers: true})
}

func visited(w *World, origin chat.GUID, radius float32) []chat.GUID {
	var out []chat.GUID
	w.Visit(origin, radius, func(e chat.WorldEntity) { out = append(out, e.GUID) })
	return out
}

func TestWorld_PlayerByName(t *testing.T) {
	req := require.New(t)
	w := New(logs.GetLoggerFromLevel(slog.LevelDebug), 50)

	w.AddPlayer(newPlayer(1, "thrall"), Position{})

	p, ok := w.PlayerByName("Thrall")
	req.True(ok)
	req.Equal(chat.GUID(1), p.GUID())

	// When the player leaves, the name is released
	w.RemovePlayer(1)
	_, ok = w.PlayerByName("Thrall")
	req.False(ok)
}

func TestWorld_Visit_Radius(t *testing.T) {
	req := require.New(t)
	w := New(logs.GetLoggerFromLevel(slog.LevelDebug), 10)

	// Given players around the origin, across cell borders and on another map
	w.AddPlayer(newPlayer(1, "Origin"), Position{X: 5, Y: 5})
	w.AddPlayer(newPlayer(2, "Near"), Position{X: 14, Y: 5})
	w.AddPlayer(newPlayer(3, "Diagonal"), Position{X: -2, Y: -2})
	w.AddPlayer(newPlayer(4, "Far"), Position{X: 60, Y: 5})
	w.AddPlayer(newPlayer(5, "Elsewhere"), Position{MapID: 1, X: 5, Y: 5})
	w.AddCreature(NewCreature(100, "Hogger", nil), Position{X: 6, Y: 6})

	// Then only the entities within radius on the same map are visited
	req.ElementsMatch([]chat.GUID{1, 2, 3, 100}, visited(w, 1, 10))

	// When the far player walks closer
	req.True(w.Move(4, Position{X: 10, Y: 10}))
	req.Contains(visited(w, 1, 10), chat.GUID(4))
	req.False(w.Move(99, Position{}))
}

func TestWorld_Visit_UnknownOrigin(t *testing.T) {
	req := require.New(t)
	w := New(logs.GetLoggerFromLevel(slog.LevelDebug), 10)

	req.Empty(visited(w, 42, 100))
}

func TestWorld_Unit(t *testing.T) {
	req := require.New(t)
	w := New(logs.GetLoggerFromLevel(slog.LevelDebug), 50)
	w.AddPlayer(newPlayer(1, "Jaina"), Position{})
	w.AddCreature(NewCreature(100, "Hogger", map[chat.Locale]string{chat.LocaleFrFR: "Lardeur"}), Position{})

	unit, ok := w.Unit(1, 100)
	req.True(ok)
	req.Equal("Lardeur", unit.NameForLocale(chat.LocaleFrFR))
	req.Equal("Hogger", unit.NameForLocale(chat.LocaleDeDE))

	unit, ok = w.Unit(100, 1)
	req.True(ok)
	req.Equal("Jaina", unit.NameForLocale(chat.LocaleFrFR))

	_, ok = w.Unit(1, 0)
	req.False(ok)
	_, ok = w.Unit(1, 55)
	req.False(ok)
}

func TestCreature_ReceiveEmote(t *testing.T) {
	req := require.New(t)
	c := NewCreature(100, "Hogger", nil)

	// No script: nothing happens
	c.ReceiveEmote(1, 101)

	var got []chat.TextEmoteID
	c.OnEmote(func(_ chat.GUID, emote chat.TextEmoteID) { got = append(got, emote) })
	c.ReceiveEmote(1, 101)

	req.Equal([]chat.TextEmoteID{101}, got)
}

func TestSkills(t *testing.T) {
	req := require.New(t)
	s := NewSkills()

	s.TeachFaction(1, chat.TeamHorde)
	s.Teach(1, chat.LangTaurahe)
	req.True(s.KnowsLanguage(1, chat.LangOrcish))
	req.True(s.KnowsLanguage(1, chat.LangTaurahe))
	req.False(s.KnowsLanguage(1, chat.LangCommon))

	// Given two overrides, the first registered one wins
	s.AddOverride(1, chat.LangDemonic)
	s.AddOverride(1, chat.LangTitan)
	lang, ok := s.ActiveLanguageOverride(1)
	req.True(ok)
	req.Equal(chat.LangDemonic, lang)

	s.RemoveOverride(1, chat.LangDemonic)
	lang, ok = s.ActiveLanguageOverride(1)
	req.True(ok)
	req.Equal(chat.LangTitan, lang)

	s.Forget(1)
	_, ok = s.ActiveLanguageOverride(1)
	req.False(ok)
	req.False(s.KnowsLanguage(1, chat.LangOrcish))
}

func TestEmoteTable(t *testing.T) {
	req := require.New(t)

	table, err := LoadEmotes()
	req.NoError(err)
	req.Positive(table.Len())

	wave, ok := table.TextEmote(101)
	req.True(ok)
	req.Equal("wave", wave.Name)
	req.Equal(chat.EmoteID(3), wave.Emote)

	_, ok = table.TextEmote(9999)
	req.False(ok)
}

func TestEmoteTable_Duplicate(t *testing.T) {
	req := require.New(t)
	fsys := fstest.MapFS{"emotes.yaml": {Data: []byte("- {id: 1, name: a, emote: 1}\n- {id: 1, name: b, emote: 2}\n")}}

	_, err := LoadEmotesFromFS(fsys, "emotes.yaml")

	req.ErrorContains(err, "duplicate")
}

func TestChannel_Say(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	transport := mocks.NewMockTransport(ctrl)
	w := New(log, 50)
	w.AddPlayer(newPlayer(1, "Anduin"), Position{})
	manager := NewChannelManager(log, transport, w)
	w.SetChannels(chat.TeamAlliance, manager)

	manager.Join("Trade", 1)
	manager.Join("trade", 2)
	manager.Join("Trade", 2)

	cm, ok := w.ChannelManager(chat.TeamAlliance)
	req.True(ok)
	channel, ok := cm.Channel("TRADE", 1)
	req.True(ok)

	// Then every member gets the same payload
	expected := localization.Chat(localization.ChatMessage{
		Category: chat.Channel, Language: chat.LangCommon, Channel: "Trade", Sender: 1, Text: "wts sword",
	})
	var sent []chat.GUID
	transport.EXPECT().Send(gomock.Any(), gomock.Any(), expected).
		DoAndReturn(func(_ context.Context, to chat.GUID, _ []byte) error {
			sent = append(sent, to)
			return nil
		}).Times(2)

	req.NoError(channel.Say(context.Background(), 1, "wts sword", chat.LangCommon))
	req.Equal([]chat.GUID{1, 2}, sent)

	// And a stranger is refused with the not-member notice
	transport.EXPECT().Send(gomock.Any(), chat.GUID(3), localization.ChannelNotMember("Trade")).Return(nil)
	req.ErrorIs(channel.Say(context.Background(), 3, "hi", chat.LangCommon), errors.ErrNotChannelMember)
}

func TestChannelManager_LeaveDeletesEmptyChannel(t *testing.T) {
	req := require.New(t)
	manager := NewChannelManager(logs.GetLoggerFromLevel(slog.LevelDebug), nil, nil)

	c := manager.Join("LookingForGroup", 1)
	manager.Join("LookingForGroup", 2)
	manager.Leave("lookingforgroup", 1)
	req.Equal([]chat.GUID{2}, c.Members())

	manager.Leave("LookingForGroup", 2)
	_, ok := manager.Channel("LookingForGroup", 2)
	req.False(ok)
	// Leaving an unknown channel is a no-op
	manager.Leave("Nope", 2)
}

func TestAnimator(t *testing.T) {
	req := require.New(t)
	a := NewAnimator(logs.GetLoggerFromLevel(slog.LevelDebug))

	_, ok := a.Current(1)
	req.False(ok)

	a.PlayEmote(1, chat.EmoteStateSit)
	emote, ok := a.Current(1)
	req.True(ok)
	req.Equal(chat.EmoteStateSit, emote)
}

type commandsHarness struct {
	world     *World
	transport *mocks.MockTransport
	mutes     *mocks.MockMuteStore
	commands  *Commands
	tiers     map[chat.GUID]chat.Security
	replies   map[chat.GUID][][]byte
}

func newCommandsHarness(t *testing.T) *commandsHarness {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	h := &commandsHarness{
		world:     New(log, 50),
		transport: mocks.NewMockTransport(ctrl),
		mutes:     mocks.NewMockMuteStore(ctrl),
		tiers:     make(map[chat.GUID]chat.Security),
		replies:   make(map[chat.GUID][][]byte),
	}
	h.transport.EXPECT().SecurityTier(gomock.Any()).DoAndReturn(func(guid chat.GUID) chat.Security {
		return h.tiers[guid]
	}).AnyTimes()
	h.transport.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, to chat.GUID, payload []byte) error {
			h.replies[to] = append(h.replies[to], payload)
			return nil
		}).AnyTimes()
	h.commands = NewCommands(log, h.world, h.transport, h.mutes)
	return h
}

func system(text string) []byte {
	return localization.Chat(localization.ChatMessage{Category: chat.System, Text: text})
}

func TestCommands_PlainChatIsNotConsumed(t *testing.T) {
	req := require.New(t)
	h := newCommandsHarness(t)
	h.world.AddPlayer(newPlayer(1, "Player"), Position{})
	ctx := context.Background()

	req.False(h.commands.TryParseAsCommand(ctx, 1, "hello"))
	req.False(h.commands.TryParseAsCommand(ctx, 1, "."))
	req.False(h.commands.TryParseAsCommand(ctx, 1, "...right"))
	req.False(h.commands.TryParseAsCommand(ctx, 1, "!!!"))
	// Unknown command from a player is just chat
	req.False(h.commands.TryParseAsCommand(ctx, 1, ".dance"))
	// Known command above the player's tier too
	req.False(h.commands.TryParseAsCommand(ctx, 1, ".gm on"))
	req.Empty(h.replies)
}

func TestCommands_UnknownCommandFromModerator(t *testing.T) {
	req := require.New(t)
	h := newCommandsHarness(t)
	h.world.AddPlayer(newPlayer(1, "Mod"), Position{})
	h.tiers[1] = chat.SecModerator

	req.True(h.commands.TryParseAsCommand(context.Background(), 1, ".teleport"))
	req.Equal([][]byte{system("There is no such command.")}, h.replies[1])
}

func TestCommands_GameMaster(t *testing.T) {
	req := require.New(t)
	h := newCommandsHarness(t)
	gm := newPlayer(1, "Gm")
	h.world.AddPlayer(gm, Position{})
	h.tiers[1] = chat.SecGameMaster

	req.True(h.commands.TryParseAsCommand(context.Background(), 1, "!gm on"))
	req.True(gm.IsGameMaster())
	req.True(h.commands.TryParseAsCommand(context.Background(), 1, ".GM off"))
	req.False(gm.IsGameMaster())
	req.Equal([][]byte{system("GM mode is ON"), system("GM mode is OFF")}, h.replies[1])
}

func TestCommands_MuteAndUnmute(t *testing.T) {
	req := require.New(t)
	h := newCommandsHarness(t)
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	h.commands.WithClock(func() time.Time { return now })
	h.world.AddPlayer(newPlayer(1, "Mod"), Position{})
	target := newPlayer(2, "Spammer")
	h.world.AddPlayer(target, Position{})
	h.tiers[1] = chat.SecModerator
	until := now.Add(15 * time.Minute)

	// Then the mute is applied and persisted
	h.mutes.EXPECT().Save(gomock.Any(), chat.GUID(2), until).Return(nil).Times(1)
	req.True(h.commands.TryParseAsCommand(context.Background(), 1, ".mute spammer 15"))
	req.Equal(until, target.MuteExpiry())

	h.mutes.EXPECT().Save(gomock.Any(), chat.GUID(2), time.Time{}).Return(nil).Times(1)
	req.True(h.commands.TryParseAsCommand(context.Background(), 1, ".unmute Spammer"))
	req.True(target.MuteExpiry().IsZero())

	req.Equal([][]byte{
		system("Spammer is muted for 15 minutes."),
		system("Spammer is no longer muted."),
	}, h.replies[1])
}

func TestCommands_MuteRefusesEqualTier(t *testing.T) {
	req := require.New(t)
	h := newCommandsHarness(t)
	h.world.AddPlayer(newPlayer(1, "Mod"), Position{})
	h.world.AddPlayer(newPlayer(2, "Othermod"), Position{})
	h.tiers[1] = chat.SecModerator
	h.tiers[2] = chat.SecModerator

	req.True(h.commands.TryParseAsCommand(context.Background(), 1, ".mute othermod 5"))
	req.Equal([][]byte{system(errors.ErrInsufficientTier.Error())}, h.replies[1])
}

func TestCommands_Help(t *testing.T) {
	req := require.New(t)
	h := newCommandsHarness(t)
	h.world.AddPlayer(newPlayer(1, "Player"), Position{})

	req.True(h.commands.TryParseAsCommand(context.Background(), 1, ".help"))
	req.Len(h.replies[1], 1)
	req.Equal(system(".help: list the commands you may use"), h.replies[1][0])
}
