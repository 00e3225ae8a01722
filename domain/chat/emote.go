package chat

// EmoteID is an animation played by a unit.
type EmoteID uint32

const (
	EmoteOneshotNone EmoteID = 0
	EmoteStateSleep  EmoteID = 12
	EmoteStateSit    EmoteID = 13
	EmoteStateKneel  EmoteID = 68
)

// IsPassive reports the emotes that carry no combat implication and may be
// played whatever the state of the sender.
func (e EmoteID) IsPassive() bool {
	switch e {
	case EmoteOneshotNone, EmoteStateSleep, EmoteStateSit, EmoteStateKneel:
		return true
	}
	return false
}

// TextEmoteID identifies an entry of the text emote table (/wave, /bow...).
type TextEmoteID uint32

// TextEmoteEntry links a text emote to the animation it plays.
type TextEmoteEntry struct {
	ID    TextEmoteID
	Name  string
	Emote EmoteID
}

// TextEmoteRequest is a /wave style emote, optionally aimed at a target.
type TextEmoteRequest struct {
	TextEmote TextEmoteID
	EmoteNum  uint32
	Target    GUID
}
