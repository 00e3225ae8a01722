package world

import (
	"chat-dispatch/domain/chat"
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed data/roster.yaml
var rosterData embed.FS

type rankRow struct {
	Name    string `yaml:"name"`
	Officer bool   `yaml:"officer"`
}

type guildRow struct {
	ID    uint32    `yaml:"id"`
	Name  string    `yaml:"name"`
	Ranks []rankRow `yaml:"ranks"`
}

type memberRow struct {
	GUID      uint64 `yaml:"guid"`
	Subgroup  uint8  `yaml:"subgroup"`
	Assistant bool   `yaml:"assistant"`
}

type groupRow struct {
	ID           uint32      `yaml:"id"`
	Leader       uint64      `yaml:"leader"`
	Raid         bool        `yaml:"raid"`
	Battleground bool        `yaml:"battleground"`
	Members      []memberRow `yaml:"members"`
}

type playerRow struct {
	GUID      uint64            `yaml:"guid"`
	Name      string            `yaml:"name"`
	Team      string            `yaml:"team"`
	Locale    string            `yaml:"locale"`
	Tier      string            `yaml:"tier"`
	Map       uint32            `yaml:"map"`
	X         float32           `yaml:"x"`
	Y         float32           `yaml:"y"`
	Guild     uint32            `yaml:"guild"`
	Rank      uint8             `yaml:"rank"`
	Languages []uint32          `yaml:"languages"`
	Channels  []string          `yaml:"channels"`
	Whispers  *bool             `yaml:"whispers"`
	Creature  bool              `yaml:"creature"`
	Names     map[string]string `yaml:"names"`
}

type rosterFile struct {
	Guilds  []guildRow  `yaml:"guilds"`
	Groups  []groupRow  `yaml:"groups"`
	Players []playerRow `yaml:"players"`
}

// Roster is a parsed world seed. Apply places it into a world.
type Roster struct {
	file  rosterFile
	tiers map[chat.GUID]chat.Security
}

var tierNames = map[string]chat.Security{
	"":              chat.SecPlayer,
	"player":        chat.SecPlayer,
	"moderator":     chat.SecModerator,
	"gamemaster":    chat.SecGameMaster,
	"administrator": chat.SecAdministrator,
}

var teamNames = map[string]chat.Team{
	"":         chat.TeamNone,
	"horde":    chat.TeamHorde,
	"alliance": chat.TeamAlliance,
}

// LoadRoster reads the development roster shipped with the binary.
func LoadRoster() (*Roster, error) {
	return LoadRosterFromFS(rosterData, "data/roster.yaml")
}

func LoadRosterFromFS(fsys fs.FS, path string) (*Roster, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	var file rosterFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	r := &Roster{file: file, tiers: make(map[chat.GUID]chat.Security)}
	seen := make(map[uint64]bool)
	for _, p := range file.Players {
		if seen[p.GUID] {
			return nil, fmt.Errorf("duplicate guid %d in %s", p.GUID, path)
		}
		seen[p.GUID] = true
		if _, ok := teamNames[strings.ToLower(p.Team)]; !ok {
			return nil, fmt.Errorf("unknown team %q for %s", p.Team, p.Name)
		}
		tier, ok := tierNames[strings.ToLower(p.Tier)]
		if !ok {
			return nil, fmt.Errorf("unknown tier %q for %s", p.Tier, p.Name)
		}
		if !p.Creature {
			r.tiers[chat.GUID(p.GUID)] = tier
		}
	}
	return r, nil
}

// Tiers maps every seeded player to its security tier.
func (r *Roster) Tiers() map[chat.GUID]chat.Security {
	return r.tiers
}

// Apply places guilds, groups, players and creatures into the world, teaches
// languages and joins the listed channels of each player's team.
func (r *Roster) Apply(w *World, skills *Skills, channels map[chat.Team]*ChannelManager) error {
	for _, g := range r.file.Guilds {
		ranks := lo.Map(g.Ranks, func(row rankRow, _ int) chat.Rank {
			rights := chat.RightsMember
			if row.Officer {
				rights = chat.RightsOfficer
			}
			return chat.Rank{Name: row.Name, Rights: rights}
		})
		w.AddGuild(chat.NewGuildRoster(chat.GuildID(g.ID), g.Name, ranks))
	}

	groupOf := make(map[chat.GUID]chat.GroupID)
	for _, g := range r.file.Groups {
		var flags chat.GroupFlags
		if g.Raid {
			flags |= chat.GroupRaid
		}
		if g.Battleground {
			flags |= chat.GroupBattleground
		}
		group := chat.NewGroup(chat.GroupID(g.ID), chat.GUID(g.Leader), flags)
		groupOf[chat.GUID(g.Leader)] = group.ID()
		for _, m := range g.Members {
			group.Join(chat.GUID(m.GUID), m.Subgroup)
			group.SetAssistant(chat.GUID(m.GUID), m.Assistant)
			groupOf[chat.GUID(m.GUID)] = group.ID()
		}
		w.AddGroup(group)
	}

	for _, p := range r.file.Players {
		guid := chat.GUID(p.GUID)
		pos := Position{MapID: p.Map, X: p.X, Y: p.Y}
		if p.Creature {
			names := lo.MapKeys(p.Names, func(_ string, locale string) chat.Locale {
				return chat.Locale(locale)
			})
			w.AddCreature(NewCreature(guid, p.Name, names), pos)
			continue
		}

		team := teamNames[strings.ToLower(p.Team)]
		player := chat.NewPlayer(chat.PlayerInfo{
			GUID:            guid,
			Name:            p.Name,
			Locale:          chat.Locale(p.Locale),
			Team:            team,
			Alive:           true,
			AcceptWhispers:  p.Whispers == nil || *p.Whispers,
			GroupID:         groupOf[guid],
			OriginalGroupID: groupOf[guid],
			GuildID:         chat.GuildID(p.Guild),
		})
		w.AddPlayer(player, pos)

		if p.Guild != 0 {
			guild, ok := w.Guild(chat.GuildID(p.Guild))
			if !ok {
				return fmt.Errorf("player %s references unknown guild %d", p.Name, p.Guild)
			}
			guild.AddMember(guid, chat.RankID(p.Rank))
		}

		skills.TeachFaction(guid, team)
		skills.Teach(guid, lo.Map(p.Languages, func(l uint32, _ int) chat.Language {
			return chat.Language(l)
		})...)

		if manager, ok := channels[team]; ok {
			for _, name := range p.Channels {
				manager.Join(name, guid)
			}
		}
	}
	return nil
}
