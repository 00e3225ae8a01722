package sink

import (
	"chat-dispatch/domain/chat"
	"chat-dispatch/domain/event"
	"chat-dispatch/errors"
	"chat-dispatch/mocks"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMuteSink_PersistsFloodMute(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockMuteStore(ctrl)
	sink := NewMuteSink(store, logs.GetLoggerFromLevel(slog.LevelDebug))
	until := time.Now().Add(time.Minute)

	// Then the expiry reaches the store
	store.EXPECT().Save(gomock.Any(), chat.GUID(12), until).Return(nil).Times(1)

	// When a flood mute is consumed
	err := sink.Consume(context.Background(), event.New(event.FloodMutedType, event.FloodMuted{Sender: 12, Until: until}))

	req.NoError(err)
}

func TestMuteSink_IgnoresOtherEvents(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockMuteStore(ctrl)
	sink := NewMuteSink(store, logs.GetLoggerFromLevel(slog.LevelDebug))

	err := sink.Consume(context.Background(), event.New(event.MessageDeliveredType, event.MessageDelivered{}))

	req.NoError(err)
}

func TestMuteSink_Errors(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockMuteStore(ctrl)
	sink := NewMuteSink(store, logs.GetLoggerFromLevel(slog.LevelDebug))

	// Given a payload of the wrong shape
	err := sink.Consume(context.Background(), event.New(event.FloodMutedType, "oops"))
	req.ErrorIs(err, errors.ErrInvalidPayload)

	// Given a failing store
	store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(fmt.Errorf("disk full"))
	err = sink.Consume(context.Background(), event.New(event.FloodMutedType, event.FloodMuted{Sender: 1}))
	req.ErrorContains(err, "disk full")
}

func TestTimeline_KeepsLatestModerationActions(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline(2)
	ctx := context.Background()

	req.NoError(timeline.Consume(ctx, event.New(event.MessageDeliveredType, event.MessageDelivered{})))
	req.NoError(timeline.Consume(ctx, event.New(event.FloodMutedType, event.FloodMuted{Sender: 1})))
	req.NoError(timeline.Consume(ctx, event.New(event.SessionKickedType, event.SessionKicked{Sender: 2})))
	req.NoError(timeline.Consume(ctx, event.New(event.CensorshipHitType, event.Censored{Sender: 3})))

	recent := timeline.Recent()
	req.Len(recent, 2)
	req.Equal(event.SessionKickedType, recent[0].Type)
	req.Equal(event.CensorshipHitType, recent[1].Type)
}
