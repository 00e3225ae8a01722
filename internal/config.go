package internal

import (
	"chat-dispatch/domain/chat"
	"fmt"
	"time"
)

type Config struct {
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	ListenAddr      string        `env:"LISTEN_ADDR,default=:8085"`
	DebugAddr       string        `env:"DEBUG_ADDR,default=:8086"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	NumberOfWorkers int           `env:"NUMBER_OF_WORKERS,default=4"`
	BufferSize      int           `env:"BUFFER_SIZE,default=256"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=1s"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=30s"`
	SinkTimeout     time.Duration `env:"SINK_TIMEOUT,default=2s"`
	CharReplacement string        `env:"CHARACTER_REPLACEMENT,default=*"`

	LatencyThreshold     time.Duration `env:"LATENCY_THRESHOLD,default=50ms"`
	LowCapacityThreshold int           `env:"LOW_CAPACITY_THRESHOLD,default=10"`

	DeliveryConcurrency int `env:"DELIVERY_CONCURRENCY,default=8"`

	AllowTwoSideChat  bool `env:"ALLOW_TWO_SIDE_INTERACTION_CHAT,default=false"`
	AllowTwoSideGroup bool `env:"ALLOW_TWO_SIDE_INTERACTION_GROUP,default=false"`
	AllowTwoSideGuild bool `env:"ALLOW_TWO_SIDE_INTERACTION_GUILD,default=false"`
	AddonChannel      bool `env:"ADDON_CHANNEL,default=true"`

	FakeMessagePreventing bool `env:"CHAT_FAKE_MESSAGE_PREVENTING,default=true"`
	StrictLinkSeverity    int  `env:"CHAT_STRICT_LINK_CHECKING_SEVERITY,default=0"`
	StrictLinkKick        bool `env:"CHAT_STRICT_LINK_CHECKING_KICK,default=false"`
	CensorProfanity       bool `env:"CHAT_CENSOR_PROFANITY,default=false"`

	FloodMessageCount int           `env:"CHATFLOOD_MESSAGE_COUNT,default=10"`
	FloodMessageDelay time.Duration `env:"CHATFLOOD_MESSAGE_DELAY,default=1s"`
	FloodMuteTime     time.Duration `env:"CHATFLOOD_MUTE_TIME,default=10s"`

	ListenRangeSay       float64 `env:"LISTEN_RANGE_SAY,default=25"`
	ListenRangeYell      float64 `env:"LISTEN_RANGE_YELL,default=300"`
	ListenRangeTextEmote float64 `env:"LISTEN_RANGE_TEXTEMOTE,default=25"`

	// An empty secret keeps the guid query login used in development.
	AuthSecret        string        `env:"AUTH_SECRET"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
}

// Policy snapshots the chat toggles for the engine.
func (c Config) Policy() chat.Policy {
	return chat.Policy{
		AllowTwoSideChat:   c.AllowTwoSideChat,
		AllowTwoSideGroup:  c.AllowTwoSideGroup,
		AllowTwoSideGuild:  c.AllowTwoSideGuild,
		AddonChannel:       c.AddonChannel,
		StripInvisible:     c.FakeMessagePreventing,
		StrictLinkChecking: c.StrictLinkSeverity > 0,
		KickOnInvalidLink:  c.StrictLinkKick,
		CensorProfanity:    c.CensorProfanity,
		Flood: chat.FloodPolicy{
			MessageCount: c.FloodMessageCount,
			MessageDelay: c.FloodMessageDelay,
			MuteDuration: c.FloodMuteTime,
		},
		ListenRangeSay:       float32(c.ListenRangeSay),
		ListenRangeYell:      float32(c.ListenRangeYell),
		ListenRangeTextEmote: float32(c.ListenRangeTextEmote),
		DeliveryConcurrency:  c.DeliveryConcurrency,
	}
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
