package chat

import "fmt"

// Category is the kind of chat request. Each inbound category has its own
// recipient resolution rule.
type Category uint8

const (
	Say Category = iota
	Emote
	Yell
	Whisper
	Party
	Guild
	Officer
	Raid
	RaidLeader
	RaidWarning
	Battleground
	BattlegroundLeader
	Channel
	Away
	DoNotDisturb

	// Outbound only.
	WhisperInform
	Ignored
	System
)

// maxInbound is the first category a client is not allowed to send.
const maxInbound = WhisperInform

var categoryNames = map[Category]string{
	Say:                "say",
	Emote:              "emote",
	Yell:               "yell",
	Whisper:            "whisper",
	Party:              "party",
	Guild:              "guild",
	Officer:            "officer",
	Raid:               "raid",
	RaidLeader:         "raid_leader",
	RaidWarning:        "raid_warning",
	Battleground:       "battleground",
	BattlegroundLeader: "battleground_leader",
	Channel:            "channel",
	Away:               "afk",
	DoNotDisturb:       "dnd",
	WhisperInform:      "whisper_inform",
	Ignored:            "ignored",
	System:             "system",
}

// Valid reports whether a client may send this category.
func (c Category) Valid() bool {
	return c < maxInbound
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// ParseCategory maps a category name back to its value.
func ParseCategory(name string) (Category, bool) {
	for c, n := range categoryNames {
		if n == name {
			return c, true
		}
	}
	return 0, false
}

// IsGroupChat reports the categories affected by the two-side group policy.
func (c Category) IsGroupChat() bool {
	switch c {
	case Party, Raid, RaidLeader, RaidWarning:
		return true
	}
	return false
}

// IsGuildChat reports the categories affected by the two-side guild policy.
func (c Category) IsGuildChat() bool {
	return c == Guild || c == Officer
}

// IsMoodToggle reports away and do-not-disturb toggles, which are exempt
// from the mute gate and never refresh the speak time.
func (c Category) IsMoodToggle() bool {
	return c == Away || c == DoNotDisturb
}

// AcceptsCommands reports whether a body of this category is first offered
// to the command parser.
func (c Category) AcceptsCommands() bool {
	switch c {
	case Say, Emote, Yell, Party, Guild, Officer, Raid, RaidLeader:
		return true
	}
	return false
}
