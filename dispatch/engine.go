// Package dispatch runs one inbound chat request through the language and
// mute policy, the abuse filter and the recipient resolver, then hands the
// rendered payloads to the transport.
package dispatch

import (
	"chat-dispatch/contract"
	"chat-dispatch/domain/chat"
	"chat-dispatch/domain/event"
	"chat-dispatch/localization"
	"chat-dispatch/moderation"
	"chat-dispatch/policy"
	"chat-dispatch/recipient"
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Deps are the collaborators owned by the rest of the server.
type Deps struct {
	Directory contract.Directory
	Transport contract.Transport
	Spatial   contract.SpatialIndex
	Skills    contract.SkillSystem
	Commands  contract.CommandParser
	Animator  contract.Animator
	Units     contract.UnitLookup
	Emotes    contract.EmoteStore
}

type Engine struct {
	deps       Deps
	policy     chat.Policy
	languages  *policy.Resolver
	filter     *moderation.Filter
	recipients *recipient.Resolver
	catalog    *localization.Catalog
	events     chan<- event.Event
	log        *slog.Logger
	now        func() time.Time
}

// NewEngine builds an engine bound to one policy snapshot. Events are
// published without blocking; events may be nil.
func NewEngine(
	deps Deps,
	pol chat.Policy,
	filter *moderation.Filter,
	catalog *localization.Catalog,
	events chan<- event.Event,
	log *slog.Logger) *Engine {
	return &Engine{
		deps:       deps,
		policy:     pol,
		languages:  policy.NewResolver(deps.Skills, pol),
		filter:     filter,
		recipients: recipient.NewResolver(deps.Directory, deps.Transport, pol),
		catalog:    catalog,
		events:     events,
		log:        log,
		now:        time.Now,
	}
}

// WithClock replaces the clock used for mute and flood decisions.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Handle processes one chat request. It never returns an error: every
// rejection becomes a notice to the sender or a silent drop.
func (e *Engine) Handle(ctx context.Context, senderGUID chat.GUID, req chat.Request) {
	defer e.recoverRequest(senderGUID)
	receivedAt := e.now()

	sender, ok := e.deps.Directory.Player(senderGUID)
	if !ok {
		e.log.Debug("Chat from unknown sender", "sender", senderGUID)
		return
	}
	head := req.Head()
	if !head.Category.Valid() {
		e.reject(ctx, sender, head, unknownCategory(head.Category))
		return
	}

	lang, err := e.languages.Resolve(req, sender)
	if err != nil {
		e.reject(ctx, sender, head, err)
		return
	}
	tier := e.deps.Transport.SecurityTier(senderGUID)
	admission, err := e.languages.Gate(req, sender, tier, receivedAt)
	if err != nil {
		e.reject(ctx, sender, head, err)
		return
	}
	if admission.FloodMuted {
		e.floodMuted(ctx, sender, admission.MuteExpiry.Sub(receivedAt))
	}

	if mood, ok := req.(chat.MoodRequest); ok {
		e.toggleMood(sender, mood)
		return
	}

	text := req.Text()
	if text == "" {
		e.log.Debug("Empty chat dropped", "sender", senderGUID, "category", head.Category.String())
		return
	}
	// commands are parsed on the raw text
	if head.Category.AcceptsCommands() && e.deps.Commands.TryParseAsCommand(ctx, senderGUID, text) {
		return
	}

	var detected string
	if lang != chat.LangAddon {
		screened, err := e.filter.Screen(text, tier)
		if err != nil {
			e.reject(ctx, sender, head, err)
			return
		}
		if len(screened.Censored) > 0 {
			e.emit(event.CensorshipHitType, event.Censored{Sender: senderGUID, Words: screened.Censored})
		}
		text = screened.Text
		detected = screened.Detected
	}
	if text == "" {
		e.log.Debug("Chat emptied by the filter", "sender", senderGUID, "category", head.Category.String())
		return
	}

	res, err := e.recipients.Resolve(req, sender)
	if err != nil {
		e.reject(ctx, sender, head, err)
		return
	}

	// guild chat is understood by every member whatever their race
	if head.Category.IsGuildChat() && lang != chat.LangAddon {
		lang = chat.LangUniversal
	}
	msg := localization.ChatMessage{
		Category: head.Category,
		Language: lang,
		Sender:   senderGUID,
		Text:     text,
		Tag:      sender.ChatTag(),
	}

	var delivered int
	switch res.Kind {
	case chat.RecipientsProximity:
		payload := localization.Chat(msg)
		delivered = e.deliver(ctx, senderGUID, e.listeners(senderGUID, res.Radius), func(chat.WorldEntity) []byte {
			return payload
		})
	case chat.RecipientsSingle:
		delivered = e.whisper(ctx, sender, res.Target, msg)
	case chat.RecipientsMembers:
		payload := localization.Chat(msg)
		online := lo.Filter(lo.Uniq(res.Targets), func(guid chat.GUID, _ int) bool {
			return e.deps.Transport.Connected(guid)
		})
		members := lo.Map(online, func(guid chat.GUID, _ int) chat.WorldEntity {
			return chat.WorldEntity{GUID: guid, IsPlayer: true}
		})
		delivered = e.deliver(ctx, senderGUID, members, func(chat.WorldEntity) []byte { return payload })
	case chat.RecipientsChannel:
		if err := res.Channel.Say(ctx, senderGUID, text, lang); err != nil {
			e.log.Debug("Channel refused message", "sender", senderGUID, "channel", req.(chat.ChannelRequest).Channel, "error", err)
			return
		}
		delivered = 1
	}

	e.emit(event.MessageDeliveredType, event.MessageDelivered{
		Sender:     senderGUID,
		Category:   head.Category,
		Language:   lang,
		Recipients: delivered,
		Detected:   detected,
		ReceivedAt: receivedAt,
	})
}

// whisper sends to the target, echoes an inform to the sender and the
// target's auto-reply when away or busy.
func (e *Engine) whisper(ctx context.Context, sender, target *chat.Player, msg localization.ChatMessage) int {
	senderGUID := sender.GUID()
	delivered := 0
	if err := e.deps.Transport.Send(ctx, target.GUID(), localization.Chat(msg)); err != nil {
		e.deliveryFailed(senderGUID, target.GUID(), err)
	} else {
		delivered++
	}

	// a busy player whispering someone must be able to read the answer
	if sender.Mood().DoNotDisturb && !target.IsGameMaster() {
		sender.ToggleDoNotDisturb("", "")
	}

	inform := msg
	inform.Category = chat.WhisperInform
	inform.Sender = target.GUID()
	inform.Tag = target.ChatTag()
	e.send(ctx, senderGUID, localization.Chat(inform))

	mood := target.Mood()
	reply := localization.ChatMessage{Language: chat.LangUniversal, Sender: target.GUID(), Tag: target.ChatTag()}
	switch {
	case mood.Away:
		reply.Category, reply.Text = chat.Away, mood.AwayMessage
	case mood.DoNotDisturb:
		reply.Category, reply.Text = chat.DoNotDisturb, mood.DoNotDisturbMessage
	default:
		return delivered
	}
	e.send(ctx, senderGUID, localization.Chat(reply))
	return delivered
}

func (e *Engine) toggleMood(sender *chat.Player, req chat.MoodRequest) {
	var changed bool
	switch req.Category {
	case chat.Away:
		changed = sender.ToggleAway(req.Message, e.catalog.Text(sender.Locale(), localization.KeyAwayDefault))
	case chat.DoNotDisturb:
		changed = sender.ToggleDoNotDisturb(req.Message, e.catalog.Text(sender.Locale(), localization.KeyDoNotDisturbDefault))
	}
	e.log.Debug("Mood toggled", "sender", sender.GUID(), "category", req.Category.String(), "changed", changed)
}

// listeners collects the connected players around the sender, the sender included.
func (e *Engine) listeners(origin chat.GUID, radius float32) []chat.WorldEntity {
	var out []chat.WorldEntity
	e.deps.Spatial.Visit(origin, radius, func(entity chat.WorldEntity) {
		if entity.IsPlayer && e.deps.Transport.Connected(entity.GUID) {
			out = append(out, entity)
		}
	})
	return out
}

// deliver sends a payload to every target with bounded concurrency. A failed
// recipient is reported and never stops the others. It returns the number of
// successful sends.
func (e *Engine) deliver(ctx context.Context, sender chat.GUID, targets []chat.WorldEntity, payload func(chat.WorldEntity) []byte) int {
	limit := e.policy.DeliveryConcurrency
	if limit < 1 {
		limit = 1
	}
	var (
		g         errgroup.Group
		delivered atomic.Int64
	)
	g.SetLimit(limit)
	for _, target := range targets {
		g.Go(func() error {
			if err := e.deps.Transport.Send(ctx, target.GUID, payload(target)); err != nil {
				e.deliveryFailed(sender, target.GUID, err)
				return nil
			}
			delivered.Add(1)
			return nil
		})
	}
	_ = g.Wait()
	return int(delivered.Load())
}

func (e *Engine) deliveryFailed(sender, recipient chat.GUID, err error) {
	e.log.Error("Delivery failed", "sender", sender, "recipient", recipient, "error", err)
	e.emit(event.DeliveryFailedType, event.DeliveryFailed{Sender: sender, Recipient: recipient, Reason: err.Error()})
}

// send delivers a notice to one participant.
func (e *Engine) send(ctx context.Context, to chat.GUID, payload []byte) {
	if err := e.deps.Transport.Send(ctx, to, payload); err != nil {
		e.log.Warn("Notice not delivered", "to", to, "error", err)
	}
}

func (e *Engine) notify(ctx context.Context, to *chat.Player, key localization.Key, args ...any) {
	e.send(ctx, to.GUID(), localization.Notification(e.catalog.Text(to.Locale(), key, args...)))
}

func (e *Engine) floodMuted(ctx context.Context, sender *chat.Player, d time.Duration) {
	until := sender.MuteExpiry()
	e.log.Warn("Sender muted for flooding", "sender", sender.GUID(), "until", until)
	e.emit(event.FloodMutedType, event.FloodMuted{Sender: sender.GUID(), Until: until})
	e.notify(ctx, sender, localization.KeyFloodMuted, localization.Wait(d))
}

func (e *Engine) emit(t event.Type, payload any) {
	if e.events == nil {
		return
	}
	select {
	case e.events <- event.New(t, payload):
	default:
		e.log.Debug("Telemetry channel full, event dropped", "type", t)
	}
}

func (e *Engine) recoverRequest(sender chat.GUID) {
	if r := recover(); r != nil {
		e.log.Error("Chat request panicked", "sender", sender, "panic", r)
	}
}
