// Package policy decides the effective language of a chat request and
// whether its sender may speak right now.
package policy

import (
	"chat-dispatch/contract"
	"chat-dispatch/domain/chat"
	"chat-dispatch/errors"
	"fmt"
	"time"
)

type Resolver struct {
	skills contract.SkillSystem
	policy chat.Policy
}

func NewResolver(skills contract.SkillSystem, policy chat.Policy) *Resolver {
	return &Resolver{skills: skills, policy: policy}
}

// Resolve returns the language the message is sent in.
// Addon messages keep their language; when the addon channel is disabled they
// fail with ErrAddonDisabled and must be dropped without notice.
func (r *Resolver) Resolve(req chat.Request, sender *chat.Player) (chat.Language, error) {
	head := req.Head()
	desc, ok := chat.LookupLanguage(head.Language)
	if !ok {
		return 0, fmt.Errorf("%w: %d", errors.ErrUnknownLanguage, head.Language)
	}
	if desc.RequiresSkill() && !r.skills.KnowsLanguage(sender.GUID(), head.Language) {
		return 0, fmt.Errorf("%w: %d", errors.ErrLanguageNotLearned, head.Language)
	}
	if head.Language == chat.LangAddon {
		if !r.policy.AddonChannel {
			return 0, errors.ErrAddonDisabled
		}
		return chat.LangAddon, nil
	}

	// game masters ignore every language effect
	if sender.IsGameMaster() {
		return chat.LangUniversal, nil
	}
	lang := head.Language
	switch {
	case r.policy.AllowTwoSideChat:
		lang = chat.LangUniversal
	case head.Category.IsGroupChat() && r.policy.AllowTwoSideGroup:
		lang = chat.LangUniversal
	case head.Category.IsGuildChat() && r.policy.AllowTwoSideGuild:
		lang = chat.LangUniversal
	}
	if override, ok := r.skills.ActiveLanguageOverride(sender.GUID()); ok {
		lang = override
	}
	return lang, nil
}

// Admission is the outcome of a successful Gate.
type Admission struct {
	// FloodMuted is set when this message tripped the flood limit. The
	// message itself is still delivered.
	FloodMuted bool
	MuteExpiry time.Time
}

// Gate applies the mute check and records the speak time.
// Mood toggles and addon messages always pass and leave the speak time untouched.
// A muted sender fails with *errors.MutedError and nothing is mutated.
func (r *Resolver) Gate(req chat.Request, sender *chat.Player, tier chat.Security, now time.Time) (Admission, error) {
	head := req.Head()
	if head.Language == chat.LangAddon || head.Category.IsMoodToggle() {
		return Admission{}, nil
	}
	if err := CanSpeak(sender, now); err != nil {
		return Admission{}, err
	}
	expiry, flooded := sender.UpdateSpeakTime(now, r.policy.Flood, tier > chat.SecPlayer)
	return Admission{FloodMuted: flooded, MuteExpiry: expiry}, nil
}

// CanSpeak only checks the mute, without recording anything.
func CanSpeak(sender *chat.Player, now time.Time) error {
	if remaining := sender.MuteRemaining(now); remaining > 0 {
		return &errors.MutedError{Remaining: remaining}
	}
	return nil
}
