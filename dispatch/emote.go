package dispatch

import (
	"chat-dispatch/domain/chat"
	"chat-dispatch/localization"
	"chat-dispatch/policy"
	"context"
)

// HandleEmote plays an animation. Passive emotes are allowed whatever the
// state of the sender.
func (e *Engine) HandleEmote(_ context.Context, senderGUID chat.GUID, emote chat.EmoteID) {
	defer e.recoverRequest(senderGUID)
	sender, ok := e.deps.Directory.Player(senderGUID)
	if !ok {
		return
	}
	if !emote.IsPassive() && (!sender.IsAlive() || sender.IsFeigningDeath()) {
		return
	}
	e.deps.Animator.PlayEmote(senderGUID, emote)
}

// HandleTextEmote broadcasts a /wave style emote around the sender. The
// target name is localized per listener and the target's reaction hook, if
// any, runs once.
func (e *Engine) HandleTextEmote(ctx context.Context, senderGUID chat.GUID, req chat.TextEmoteRequest) {
	defer e.recoverRequest(senderGUID)
	sender, ok := e.deps.Directory.Player(senderGUID)
	if !ok || !sender.IsAlive() {
		return
	}
	if err := policy.CanSpeak(sender, e.now()); err != nil {
		e.reject(ctx, sender, chat.Header{Category: chat.Emote}, err)
		return
	}
	entry, ok := e.deps.Emotes.TextEmote(req.TextEmote)
	if !ok {
		e.log.Debug("Unknown text emote", "sender", senderGUID, "text_emote", req.TextEmote)
		return
	}

	// feigning death only allows the text
	if !entry.Emote.IsPassive() && !sender.IsFeigningDeath() {
		e.deps.Animator.PlayEmote(senderGUID, entry.Emote)
	}

	var target chat.Unit
	if unit, ok := e.deps.Units.Unit(senderGUID, req.Target); ok {
		target = unit
	}
	payload := localization.TextEmote(senderGUID, req.TextEmote, req.EmoteNum, target)
	e.deliver(ctx, senderGUID, e.listeners(senderGUID, e.policy.ListenRangeTextEmote), func(listener chat.WorldEntity) []byte {
		return payload.For(listener.Locale)
	})

	if reactor, ok := target.(chat.EmoteReactor); ok {
		reactor.ReceiveEmote(senderGUID, req.TextEmote)
	}
}

// HandleChatIgnored tells a player that the sender ignores them.
func (e *Engine) HandleChatIgnored(ctx context.Context, senderGUID chat.GUID, ignored chat.GUID) {
	defer e.recoverRequest(senderGUID)
	sender, ok := e.deps.Directory.Player(senderGUID)
	if !ok {
		return
	}
	if _, ok := e.deps.Directory.Player(ignored); !ok {
		return
	}
	e.send(ctx, ignored, localization.Chat(localization.ChatMessage{
		Category: chat.Ignored,
		Language: chat.LangUniversal,
		Sender:   senderGUID,
		Text:     sender.Name(),
	}))
}
