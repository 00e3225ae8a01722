package chat

import "time"

// FloodPolicy drives the automatic mute of senders posting too fast.
// A zero MessageCount disables it.
type FloodPolicy struct {
	MessageCount int
	MessageDelay time.Duration
	MuteDuration time.Duration
}

// Policy is an immutable snapshot of the server chat toggles. It is handed to
// the engine at construction and never read from global state.
type Policy struct {
	AllowTwoSideChat  bool
	AllowTwoSideGroup bool
	AllowTwoSideGuild bool
	AddonChannel      bool

	StripInvisible     bool
	StrictLinkChecking bool
	KickOnInvalidLink  bool
	CensorProfanity    bool

	Flood FloodPolicy

	ListenRangeSay       float32
	ListenRangeYell      float32
	ListenRangeTextEmote float32

	DeliveryConcurrency int
}

// DefaultPolicy mirrors the stock server configuration.
func DefaultPolicy() Policy {
	return Policy{
		AddonChannel:       true,
		StripInvisible:     true,
		StrictLinkChecking: false,
		Flood: FloodPolicy{
			MessageCount: 10,
			MessageDelay: time.Second,
			MuteDuration: 10 * time.Second,
		},
		ListenRangeSay:       25,
		ListenRangeYell:      300,
		ListenRangeTextEmote: 25,
		DeliveryConcurrency:  8,
	}
}
