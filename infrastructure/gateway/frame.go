package gateway

import (
	"chat-dispatch/dispatch"
	"chat-dispatch/domain/chat"
	"chat-dispatch/errors"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const (
	OpChat      = "chat"
	OpEmote     = "emote"
	OpTextEmote = "text_emote"
	OpIgnored   = "ignored"
)

// Frame is one inbound JSON frame.
type Frame struct {
	Op        string `json:"op" validate:"required,oneof=chat emote text_emote ignored"`
	Category  string `json:"category,omitempty" validate:"required_if=Op chat"`
	Language  uint32 `json:"language,omitempty"`
	Body      string `json:"body,omitempty"`
	Target    string `json:"target,omitempty"`
	Channel   string `json:"channel,omitempty"`
	Emote     uint32 `json:"emote,omitempty"`
	TextEmote uint32 `json:"text_emote,omitempty"`
	EmoteNum  uint32 `json:"emote_num,omitempty"`
	Unit      uint64 `json:"unit,omitempty"`
}

// ToJob decodes a raw frame into the job of the sender.
func ToJob(sender chat.GUID, raw []byte) (dispatch.Job, error) {
	var f Frame
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedRequest, err)
	}
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedRequest, err)
	}

	switch f.Op {
	case OpEmote:
		return dispatch.EmoteJob{Sender: sender, Emote: chat.EmoteID(f.Emote)}, nil
	case OpTextEmote:
		return dispatch.TextEmoteJob{Sender: sender, Request: chat.TextEmoteRequest{
			TextEmote: chat.TextEmoteID(f.TextEmote),
			EmoteNum:  f.EmoteNum,
			Target:    chat.GUID(f.Unit),
		}}, nil
	case OpIgnored:
		return dispatch.IgnoredJob{Sender: sender, Ignored: chat.GUID(f.Unit)}, nil
	}

	category, ok := chat.ParseCategory(f.Category)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownCategory, f.Category)
	}
	request, err := chat.Decode(chat.Frame{
		Category: category,
		Language: chat.Language(f.Language),
		Body:     f.Body,
		Target:   f.Target,
		Channel:  f.Channel,
	})
	if err != nil {
		return nil, err
	}
	return dispatch.ChatJob{Sender: sender, Request: request}, nil
}
