// Package gateway accepts websocket clients, turns their JSON frames into
// dispatch jobs and writes the binary chat payloads back.
package gateway

import (
	"chat-dispatch/contract"
	"chat-dispatch/dispatch"
	"chat-dispatch/domain/chat"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/websocket"
)

// Dispatcher is the runtime side of the gateway.
type Dispatcher interface {
	Submit(job dispatch.Job) error
	RegisterSession(guid chat.GUID, tier chat.Security, session contract.Session)
	UnregisterSession(guid chat.GUID, session contract.Session)
}

// Authenticator maps an upgrade request to the player it speaks for.
type Authenticator interface {
	Authenticate(r *http.Request) (chat.GUID, chat.Security, error)
}

type Gateway struct {
	log        *slog.Logger
	dispatcher Dispatcher
	auth       Authenticator
	players    contract.PlayerStore
	mutes      contract.MuteStore
	upgrader   websocket.Upgrader
	bufferSize int
}

// New builds a gateway. mutes may be nil, in which case mutes are not restored on login.
func New(log *slog.Logger, dispatcher Dispatcher, auth Authenticator,
	players contract.PlayerStore, mutes contract.MuteStore, bufferSize int) *Gateway {
	return &Gateway{
		log:        log,
		dispatcher: dispatcher,
		auth:       auth,
		players:    players,
		mutes:      mutes,
		bufferSize: bufferSize,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	guid, tier, err := g.auth.Authenticate(r)
	if err != nil {
		g.log.Debug("Rejected connection", "remote", r.RemoteAddr, "error", err)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	g.restoreMute(r.Context(), guid)

	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Error("Upgrade failed", "guid", guid, "error", err)
		return
	}
	client := NewClient(guid, conn, g.log, g.bufferSize)
	g.dispatcher.RegisterSession(guid, tier, client)
	g.log.Info("Player connected", "guid", guid, "tier", tier)

	go client.WritePump()
	go func() {
		defer g.dispatcher.UnregisterSession(guid, client)
		client.ReadPump(func(raw []byte) { g.handleFrame(guid, raw) })
	}()
}

func (g *Gateway) handleFrame(guid chat.GUID, raw []byte) {
	job, err := ToJob(guid, raw)
	if err != nil {
		g.log.Debug("Dropping invalid frame", "guid", guid, "error", err)
		return
	}
	if err := g.dispatcher.Submit(job); err != nil {
		g.log.Debug("Frame not queued", "guid", guid, "error", err)
	}
}

// restoreMute applies a persisted mute if it outlasts the one already set.
func (g *Gateway) restoreMute(ctx context.Context, guid chat.GUID) {
	if g.mutes == nil {
		return
	}
	player, ok := g.players.Player(guid)
	if !ok {
		return
	}
	until, ok, err := g.mutes.Load(ctx, guid)
	if err != nil {
		g.log.Warn("Mute lookup failed", "guid", guid, "error", err)
		return
	}
	if ok && until.After(player.MuteExpiry()) {
		player.MuteUntil(until)
		g.log.Debug("Mute restored", "guid", guid, "until", until)
	}
}

// QueryAuthenticator trusts the guid query parameter of players already in
// the world. Tiers default to SecPlayer. Meant for development and tests.
type QueryAuthenticator struct {
	players contract.PlayerStore
	tiers   map[chat.GUID]chat.Security
}

func NewQueryAuthenticator(players contract.PlayerStore, tiers map[chat.GUID]chat.Security) *QueryAuthenticator {
	return &QueryAuthenticator{players: players, tiers: tiers}
}

func (a *QueryAuthenticator) Authenticate(r *http.Request) (chat.GUID, chat.Security, error) {
	raw, err := strconv.ParseUint(r.URL.Query().Get("guid"), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid guid: %w", err)
	}
	guid := chat.GUID(raw)
	if _, ok := a.players.Player(guid); !ok {
		return 0, 0, fmt.Errorf("unknown player %d", guid)
	}
	return guid, a.tiers[guid], nil
}
