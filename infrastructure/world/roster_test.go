package world

import (
	"chat-dispatch/domain/chat"
	"chat-dispatch/mocks"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoster_Apply(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	w := New(log, 50)
	skills := NewSkills()
	transport := mocks.NewMockTransport(ctrl)
	horde := NewChannelManager(log, transport, w)
	alliance := NewChannelManager(log, transport, w)

	// Given the shipped roster
	roster, err := LoadRoster()
	req.NoError(err)

	// When it is applied
	req.NoError(roster.Apply(w, skills, map[chat.Team]*ChannelManager{
		chat.TeamHorde:    horde,
		chat.TeamAlliance: alliance,
	}))

	// Then players, guilds and groups are in place
	thrall, ok := w.PlayerByName("Thrall")
	req.True(ok)
	req.Equal(chat.TeamHorde, thrall.Team())
	req.Equal(chat.GroupID(1), thrall.GroupID())
	req.Equal(chat.SecAdministrator, roster.Tiers()[1])
	req.Equal(chat.SecPlayer, roster.Tiers()[2])
	_, creatureHasTier := roster.Tiers()[448]
	req.False(creatureHasTier)

	group, ok := w.Group(1)
	req.True(ok)
	req.ElementsMatch([]chat.GUID{1, 2}, group.Members())

	guild, ok := w.Guild(1)
	req.True(ok)
	req.True(guild.HasRight(1, chat.RightOfficerChatSpeak))
	req.False(guild.HasRight(2, chat.RightOfficerChatSpeak))

	anduin, ok := w.Player(5)
	req.True(ok)
	req.False(anduin.AcceptsWhispers())
	req.Equal(chat.LocaleDeDE, anduin.Locale())

	// And languages are taught by faction plus the listed extras
	req.True(skills.KnowsLanguage(1, chat.LangOrcish))
	req.False(skills.KnowsLanguage(1, chat.LangCommon))
	req.True(skills.KnowsLanguage(3, chat.LangGutterspeak))
	req.True(skills.KnowsLanguage(4, chat.LangThalassian))

	// And channels are per team
	general, ok := horde.Channel("general", 1)
	req.True(ok)
	req.ElementsMatch([]chat.GUID{1, 2, 3}, general.(*Channel).Members())
	general, ok = alliance.Channel("General", 4)
	req.True(ok)
	req.ElementsMatch([]chat.GUID{4}, general.(*Channel).Members())

	// And the creature answers to its localized name
	unit, ok := w.Unit(1, 448)
	req.True(ok)
	req.Equal("Lardeur", unit.NameForLocale(chat.LocaleFrFR))
}

func TestRoster_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "duplicate guid", data: "players:\n  - {guid: 1, name: a}\n  - {guid: 1, name: b}\n"},
		{name: "unknown team", data: "players:\n  - {guid: 1, name: a, team: scourge}\n"},
		{name: "unknown tier", data: "players:\n  - {guid: 1, name: a, tier: king}\n"},
		{name: "not yaml", data: "players: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"roster.yaml": {Data: []byte(tt.data)}}
			_, err := LoadRosterFromFS(fsys, "roster.yaml")
			require.Error(t, err)
		})
	}
}

func TestRoster_UnknownGuild(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	fsys := fstest.MapFS{"roster.yaml": {Data: []byte("players:\n  - {guid: 1, name: a, guild: 9}\n")}}

	roster, err := LoadRosterFromFS(fsys, "roster.yaml")
	req.NoError(err)
	req.Error(roster.Apply(New(log, 50), NewSkills(), nil))
}
