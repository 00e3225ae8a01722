package chat

import (
	"chat-dispatch/errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Frame is the flat shape of one inbound chat frame before it is typed.
type Frame struct {
	Category Category
	Language Language
	Body     string `validate:"max=255"`
	Target   string `validate:"max=48"`
	Channel  string `validate:"max=64"`
}

// Header is shared by every request variant.
type Header struct {
	Category Category
	Language Language
}

// Request is one inbound chat request. Concrete types are matched with a
// type switch, one resolver per variant.
type Request interface {
	Head() Header
	Text() string
}

// ProximityRequest is a say, emote or yell heard around the sender.
type ProximityRequest struct {
	Header
	Body string
}

type WhisperRequest struct {
	Header
	Target string
	Body   string
}

// GroupRequest covers party, raid, raid leader, raid warning and both battleground categories.
type GroupRequest struct {
	Header
	Body string
}

// GuildRequest covers guild and officer chat.
type GuildRequest struct {
	Header
	Body string
}

type ChannelRequest struct {
	Header
	Channel string
	Body    string
}

// MoodRequest toggles away or do-not-disturb. Message may be empty.
type MoodRequest struct {
	Header
	Message string
}

func (r ProximityRequest) Head() Header { return r.Header }
func (r ProximityRequest) Text() string { return r.Body }
func (r WhisperRequest) Head() Header   { return r.Header }
func (r WhisperRequest) Text() string   { return r.Body }
func (r GroupRequest) Head() Header     { return r.Header }
func (r GroupRequest) Text() string     { return r.Body }
func (r GuildRequest) Head() Header     { return r.Header }
func (r GuildRequest) Text() string     { return r.Body }
func (r ChannelRequest) Head() Header   { return r.Header }
func (r ChannelRequest) Text() string   { return r.Body }
func (r MoodRequest) Head() Header      { return r.Header }
func (r MoodRequest) Text() string      { return r.Message }

// Decode types a frame. Unknown categories fail with ErrUnknownCategory.
func Decode(f Frame) (Request, error) {
	if !f.Category.Valid() {
		return nil, fmt.Errorf("%w: %d", errors.ErrUnknownCategory, f.Category)
	}
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedRequest, err)
	}
	h := Header{Category: f.Category, Language: f.Language}
	switch f.Category {
	case Say, Emote, Yell:
		return ProximityRequest{Header: h, Body: f.Body}, nil
	case Whisper:
		return WhisperRequest{Header: h, Target: f.Target, Body: f.Body}, nil
	case Party, Raid, RaidLeader, RaidWarning, Battleground, BattlegroundLeader:
		return GroupRequest{Header: h, Body: f.Body}, nil
	case Guild, Officer:
		return GuildRequest{Header: h, Body: f.Body}, nil
	case Channel:
		return ChannelRequest{Header: h, Channel: f.Channel, Body: f.Body}, nil
	case Away, DoNotDisturb:
		return MoodRequest{Header: h, Message: f.Body}, nil
	default:
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownCategory, f.Category)
	}
}
