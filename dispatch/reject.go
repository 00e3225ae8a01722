package dispatch

import (
	"chat-dispatch/domain/chat"
	"chat-dispatch/domain/event"
	"chat-dispatch/errors"
	"chat-dispatch/localization"
	"context"
	stdErrors "errors"
	"fmt"
)

func unknownCategory(c chat.Category) error {
	return fmt.Errorf("%w: %d", errors.ErrUnknownCategory, c)
}

// reject turns a typed rejection into a notice to the sender or a silent drop.
func (e *Engine) reject(ctx context.Context, sender *chat.Player, head chat.Header, err error) {
	var (
		muted    *errors.MutedError
		link     *errors.LinkError
		notFound *errors.NotFoundError
		reason   string
		silent   bool
	)
	guid := sender.GUID()

	switch {
	case stdErrors.As(err, &muted):
		reason = "muted"
		e.notify(ctx, sender, localization.KeyWaitBeforeSpeaking, localization.Wait(muted.Remaining))
	case stdErrors.Is(err, errors.ErrUnknownLanguage):
		reason = "unknown_language"
		e.notify(ctx, sender, localization.KeyUnknownLanguage)
	case stdErrors.Is(err, errors.ErrLanguageNotLearned):
		reason = "language_not_learned"
		e.notify(ctx, sender, localization.KeyLanguageNotLearned)
	case stdErrors.As(err, &notFound):
		reason = "player_not_found"
		e.send(ctx, guid, localization.PlayerNotFound(notFound.Name))
	case stdErrors.Is(err, errors.ErrWrongFaction):
		reason = "wrong_faction"
		e.send(ctx, guid, localization.WrongFaction())
	case stdErrors.As(err, &link):
		reason, silent = "invalid_link", true
		e.log.Error("Invalid chat link", "sender", guid, "reason", link.Reason, "kick", link.Kick)
		if link.Kick {
			e.deps.Transport.Disconnect(guid)
			e.emit(event.SessionKickedType, event.SessionKicked{Sender: guid, Reason: link.Reason})
		}
	case stdErrors.Is(err, errors.ErrAddonDisabled):
		reason, silent = "addon_disabled", true
	case stdErrors.Is(err, errors.ErrNoEligibleGroup):
		reason, silent = "no_eligible_group", true
	case stdErrors.Is(err, errors.ErrNotInGuild), stdErrors.Is(err, errors.ErrGuildPermission):
		reason, silent = "guild", true
	case stdErrors.Is(err, errors.ErrChannelNotFound):
		reason, silent = "channel_not_found", true
	case stdErrors.Is(err, errors.ErrUnknownCategory):
		reason, silent = "unknown_category", true
		e.log.Warn("Unknown chat category", "sender", guid, "error", err)
	default:
		reason, silent = "internal", true
		e.log.Error("Chat request failed", "sender", guid, "category", head.Category.String(), "error", err)
	}

	if silent {
		e.log.Debug("Chat dropped", "sender", guid, "category", head.Category.String(), "reason", reason)
	}
	e.emit(event.RequestRejectedType, event.RequestRejected{
		Sender:   guid,
		Category: head.Category,
		Reason:   reason,
		Silent:   silent,
	})
}
