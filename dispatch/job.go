package dispatch

import (
	"chat-dispatch/domain/chat"
	"context"
)

// Job is one inbound operation of a sender, queued until a worker runs it.
type Job interface {
	SenderGUID() chat.GUID
	Apply(ctx context.Context, e *Engine)
}

type ChatJob struct {
	Sender  chat.GUID
	Request chat.Request
}

func (j ChatJob) SenderGUID() chat.GUID { return j.Sender }

func (j ChatJob) Apply(ctx context.Context, e *Engine) { e.Handle(ctx, j.Sender, j.Request) }

type EmoteJob struct {
	Sender chat.GUID
	Emote  chat.EmoteID
}

func (j EmoteJob) SenderGUID() chat.GUID { return j.Sender }

func (j EmoteJob) Apply(ctx context.Context, e *Engine) { e.HandleEmote(ctx, j.Sender, j.Emote) }

type TextEmoteJob struct {
	Sender  chat.GUID
	Request chat.TextEmoteRequest
}

func (j TextEmoteJob) SenderGUID() chat.GUID { return j.Sender }

func (j TextEmoteJob) Apply(ctx context.Context, e *Engine) {
	e.HandleTextEmote(ctx, j.Sender, j.Request)
}

type IgnoredJob struct {
	Sender  chat.GUID
	Ignored chat.GUID
}

func (j IgnoredJob) SenderGUID() chat.GUID { return j.Sender }

func (j IgnoredJob) Apply(ctx context.Context, e *Engine) {
	e.HandleChatIgnored(ctx, j.Sender, j.Ignored)
}
