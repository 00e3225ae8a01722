package moderation

import (
	"chat-dispatch/domain/chat"
	"chat-dispatch/errors"
	"log/slog"

	"github.com/abadojack/whatlanggo"
)

// Screened is the text a filter let through.
type Screened struct {
	Text string
	// Detected is the ISO 639-1 code of the text, empty when the guess is unreliable.
	Detected string
	Censored []string
}

// Filter screens free text before it is dispatched. Never used for addon messages.
type Filter struct {
	policy    chat.Policy
	moderator *Moderator
	log       *slog.Logger
}

// NewFilter builds a filter. The moderator may be nil when profanity censoring is off.
func NewFilter(policy chat.Policy, moderator *Moderator, log *slog.Logger) *Filter {
	return &Filter{policy: policy, moderator: moderator, log: log}
}

func (f *Filter) Screen(text string, tier chat.Security) (Screened, error) {
	if f.policy.StripInvisible {
		text = StripInvisible(text)
	}
	if f.policy.StrictLinkChecking && tier < chat.SecModerator {
		if err := ValidateLinks(text); err != nil {
			return Screened{}, &errors.LinkError{Reason: err.Error(), Kick: f.policy.KickOnInvalidLink}
		}
	}
	if text == "" {
		return Screened{}, nil
	}

	screened := Screened{Text: text}
	if info := whatlanggo.Detect(text); info.IsReliable() {
		screened.Detected = info.Lang.Iso6391()
		f.log.Debug("Detected chat language", "lang", screened.Detected, "confidence", info.Confidence)
	}
	if f.policy.CensorProfanity && f.moderator != nil {
		screened.Text, screened.Censored = f.moderator.Censor(text)
	}
	return screened, nil
}
