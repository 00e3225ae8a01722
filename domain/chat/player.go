// Package chat contains the core concepts of the chat dispatch engine.
// This file defines the participant state the engine reads and mutates.
// The state is owned by the player store; the engine only holds references.
package chat

import (
	"sync"
	"time"
)

// GUID identifies a participant or any world entity.
type GUID uint64

// Security is the account tier of a participant.
type Security uint8

const (
	SecPlayer Security = iota
	SecModerator
	SecGameMaster
	SecAdministrator
	SecConsole
)

// Team is the faction a participant belongs to.
type Team uint32

const (
	TeamNone     Team = 0
	TeamHorde    Team = 67
	TeamAlliance Team = 469
)

// Locale is a client locale identifier such as "enUS".
type Locale string

const (
	LocaleEnUS Locale = "enUS"
	LocaleKoKR Locale = "koKR"
	LocaleFrFR Locale = "frFR"
	LocaleDeDE Locale = "deDE"
	LocaleZhCN Locale = "zhCN"
	LocaleZhTW Locale = "zhTW"
	LocaleEsES Locale = "esES"
	LocaleEsMX Locale = "esMX"
	LocaleRuRU Locale = "ruRU"
)

// ChatTag is the marker attached to outbound chat describing the sender.
type ChatTag uint8

const (
	TagNone ChatTag = iota
	TagAway
	TagDoNotDisturb
	TagGameMaster
)

type GroupID uint32

type GuildID uint32

// PlayerInfo is the initial state of a Player.
type PlayerInfo struct {
	GUID            GUID
	Name            string
	Locale          Locale
	Team            Team
	GameMaster      bool
	Alive           bool
	InCombat        bool
	FeignDeath      bool
	AcceptWhispers  bool
	MuteExpiry      time.Time
	GroupID         GroupID
	OriginalGroupID GroupID
	GuildID         GuildID
}

// Mood is a snapshot of the away and do-not-disturb flags.
type Mood struct {
	Away                bool
	AwayMessage         string
	DoNotDisturb        bool
	DoNotDisturbMessage string
}

// Player is the mutable state of one connected participant.
// Every read-modify-write happens under its own lock, inside a single method.
type Player struct {
	mu sync.RWMutex

	guid            GUID
	name            string
	locale          Locale
	team            Team
	gameMaster      bool
	alive           bool
	inCombat        bool
	feignDeath      bool
	acceptWhispers  bool
	muteExpiry      time.Time
	speakTime       time.Time
	speakCount      int
	mood            Mood
	groupID         GroupID
	originalGroupID GroupID
	guildID         GuildID
}

func NewPlayer(info PlayerInfo) *Player {
	locale := info.Locale
	if locale == "" {
		locale = LocaleEnUS
	}
	return &Player{
		guid:            info.GUID,
		name:            info.Name,
		locale:          locale,
		team:            info.Team,
		gameMaster:      info.GameMaster,
		alive:           info.Alive,
		inCombat:        info.InCombat,
		feignDeath:      info.FeignDeath,
		acceptWhispers:  info.AcceptWhispers,
		muteExpiry:      info.MuteExpiry,
		groupID:         info.GroupID,
		originalGroupID: info.OriginalGroupID,
		guildID:         info.GuildID,
	}
}

func (p *Player) GUID() GUID { return p.guid }

func (p *Player) Name() string { return p.name }

func (p *Player) Locale() Locale { return p.locale }

func (p *Player) Team() Team { return p.team }

func (p *Player) IsGameMaster() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.gameMaster
}

func (p *Player) SetGameMaster(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gameMaster = on
}

func (p *Player) IsAlive() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.alive
}

func (p *Player) SetAlive(alive bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alive = alive
}

func (p *Player) IsInCombat() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.inCombat
}

func (p *Player) SetInCombat(inCombat bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inCombat = inCombat
}

// IsFeigningDeath reports the incapacitated "died" unit state.
func (p *Player) IsFeigningDeath() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.feignDeath
}

func (p *Player) SetFeignDeath(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.feignDeath = on
}

func (p *Player) AcceptsWhispers() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.acceptWhispers
}

func (p *Player) SetAcceptWhispers(accept bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.acceptWhispers = accept
}

func (p *Player) GroupID() GroupID {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.groupID
}

// OriginalGroupID is the group the player belonged to before entering a battleground.
func (p *Player) OriginalGroupID() GroupID {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.originalGroupID
}

// SetGroups updates current and original group membership together.
func (p *Player) SetGroups(current, original GroupID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.groupID = current
	p.originalGroupID = original
}

func (p *Player) GuildID() GuildID {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.guildID
}

func (p *Player) SetGuild(id GuildID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.guildID = id
}

func (p *Player) Mood() Mood {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.mood
}

// ChatTag returns the tag attached to this player's outbound chat.
func (p *Player) ChatTag() ChatTag {
	p.mu.RLock()
	defer p.mu.RUnlock()
	switch {
	case p.gameMaster:
		return TagGameMaster
	case p.mood.DoNotDisturb:
		return TagDoNotDisturb
	case p.mood.Away:
		return TagAway
	default:
		return TagNone
	}
}

// MuteExpiry returns the instant the current mute ends.
func (p *Player) MuteExpiry() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.muteExpiry
}

// MuteUntil sets the mute expiry. A zero time lifts the mute.
func (p *Player) MuteUntil(expiry time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muteExpiry = expiry
}

// MuteRemaining returns how long the player is still muted at now, zero when
// the player can speak.
func (p *Player) MuteRemaining(now time.Time) time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if now.Before(p.muteExpiry) {
		return p.muteExpiry.Sub(now)
	}
	return 0
}

// SpeakTime returns the flood window end recorded by the last accepted message.
func (p *Player) SpeakTime() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.speakTime
}

// UpdateSpeakTime records an accepted message and runs the flood counter.
// Exempt senders are never counted. It returns the new mute expiry and true
// when the message tripped the flood limit.
func (p *Player) UpdateSpeakTime(now time.Time, flood FloodPolicy, exempt bool) (time.Time, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if exempt {
		return time.Time{}, false
	}

	muted := false
	if p.speakTime.After(now) {
		if flood.MessageCount == 0 {
			return time.Time{}, false
		}
		p.speakCount++
		if p.speakCount >= flood.MessageCount {
			expiry := now.Add(flood.MuteDuration)
			// never shorten a mute set by a moderator
			if p.muteExpiry.Before(expiry) {
				p.muteExpiry = expiry
				muted = true
			}
			p.speakCount = 0
		}
	} else {
		p.speakCount = 0
	}
	p.speakTime = now.Add(flood.MessageDelay)
	return p.muteExpiry, muted
}

// ToggleAway applies an away request. It is ignored while in combat and
// reports whether the state changed.
//
// A non-empty message replaces the away message and forces away on. An empty
// message flips away, using defaultMessage when turning it on. Turning away on
// clears do-not-disturb.
func (p *Player) ToggleAway(message, defaultMessage string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.inCombat {
		return false
	}
	before := p.mood
	if message != "" || !p.mood.Away {
		if message == "" {
			p.mood.AwayMessage = defaultMessage
		} else {
			p.mood.AwayMessage = message
		}
	}
	if message == "" || !p.mood.Away {
		p.mood.Away = !p.mood.Away
		if p.mood.Away {
			p.mood.DoNotDisturb = false
		}
	}
	return before != p.mood
}

// ToggleDoNotDisturb is the do-not-disturb twin of ToggleAway, without the
// combat gate. Turning do-not-disturb on clears away.
func (p *Player) ToggleDoNotDisturb(message, defaultMessage string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	before := p.mood
	if message != "" || !p.mood.DoNotDisturb {
		if message == "" {
			p.mood.DoNotDisturbMessage = defaultMessage
		} else {
			p.mood.DoNotDisturbMessage = message
		}
	}
	if message == "" || !p.mood.DoNotDisturb {
		p.mood.DoNotDisturb = !p.mood.DoNotDisturb
		if p.mood.DoNotDisturb {
			p.mood.Away = false
		}
	}
	return before != p.mood
}
