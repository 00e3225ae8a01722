package world

import (
	"chat-dispatch/contract"
	"chat-dispatch/domain/chat"
	"chat-dispatch/errors"
	"chat-dispatch/localization"
	"chat-dispatch/recipient"
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

var _ contract.CommandParser = (*Commands)(nil)

// CommandFunc runs one command. The returned text, if any, is sent back to the sender.
type CommandFunc func(ctx context.Context, sender *chat.Player, args []string) (string, error)

type command struct {
	minTier chat.Security
	help    string
	run     CommandFunc
}

// Commands parses '.' and '!' prefixed chat as server commands.
type Commands struct {
	mu        sync.RWMutex
	log       *slog.Logger
	players   contract.PlayerStore
	transport contract.Transport
	mutes     contract.MuteStore
	now       func() time.Time
	commands  map[string]command
}

// NewCommands registers the built-in commands. mutes may be nil.
func NewCommands(log *slog.Logger, players contract.PlayerStore, transport contract.Transport, mutes contract.MuteStore) *Commands {
	c := &Commands{
		log:       log,
		players:   players,
		transport: transport,
		mutes:     mutes,
		now:       time.Now,
		commands:  make(map[string]command),
	}
	c.Register("help", chat.SecPlayer, "list the commands you may use", c.help)
	c.Register("gm", chat.SecGameMaster, "gm on|off", c.gameMaster)
	c.Register("mute", chat.SecModerator, "mute <name> <minutes>", c.mute)
	c.Register("unmute", chat.SecModerator, "unmute <name>", c.unmute)
	return c
}

func (c *Commands) WithClock(now func() time.Time) *Commands {
	c.now = now
	return c
}

func (c *Commands) Register(name string, minTier chat.Security, help string, run CommandFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.commands[strings.ToLower(name)] = command{minTier: minTier, help: help, run: run}
}

// TryParseAsCommand consumes the text when it is a command. Text starting
// with a doubled prefix is plain chat. A player typing an unknown command
// is chatting; a higher tier is told the command does not exist.
func (c *Commands) TryParseAsCommand(ctx context.Context, senderGUID chat.GUID, text string) bool {
	if len(text) < 2 || (text[0] != '.' && text[0] != '!') || text[1] == text[0] {
		return false
	}
	sender, ok := c.players.Player(senderGUID)
	if !ok {
		return false
	}
	fields := strings.Fields(text[1:])
	if len(fields) == 0 {
		return false
	}
	tier := c.transport.SecurityTier(senderGUID)

	c.mu.RLock()
	cmd, ok := c.commands[strings.ToLower(fields[0])]
	c.mu.RUnlock()
	if !ok || tier < cmd.minTier {
		if tier == chat.SecPlayer {
			return false
		}
		c.reply(ctx, senderGUID, "There is no such command.")
		return true
	}

	out, err := cmd.run(ctx, sender, fields[1:])
	if err != nil {
		c.log.Debug("Command failed", "sender", senderGUID, "command", fields[0], "error", err)
		out = err.Error()
	}
	if out != "" {
		c.reply(ctx, senderGUID, out)
	}
	return true
}

func (c *Commands) reply(ctx context.Context, to chat.GUID, text string) {
	payload := localization.Chat(localization.ChatMessage{Category: chat.System, Text: text})
	if err := c.transport.Send(ctx, to, payload); err != nil {
		c.log.Debug("Command reply lost", "to", to, "error", err)
	}
}

func (c *Commands) help(_ context.Context, sender *chat.Player, _ []string) (string, error) {
	tier := c.transport.SecurityTier(sender.GUID())
	c.mu.RLock()
	defer c.mu.RUnlock()
	var lines []string
	for name, cmd := range c.commands {
		if tier >= cmd.minTier {
			lines = append(lines, fmt.Sprintf(".%s: %s", name, cmd.help))
		}
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n"), nil
}

func (c *Commands) gameMaster(_ context.Context, sender *chat.Player, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: .gm on|off")
	}
	switch strings.ToLower(args[0]) {
	case "on":
		sender.SetGameMaster(true)
		return "GM mode is ON", nil
	case "off":
		sender.SetGameMaster(false)
		return "GM mode is OFF", nil
	}
	return "", fmt.Errorf("usage: .gm on|off")
}

func (c *Commands) mute(ctx context.Context, sender *chat.Player, args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("usage: .mute <name> <minutes>")
	}
	target, err := c.target(sender, args[0])
	if err != nil {
		return "", err
	}
	minutes, err := strconv.Atoi(args[1])
	if err != nil || minutes <= 0 {
		return "", fmt.Errorf("invalid duration %q", args[1])
	}
	until := c.now().Add(time.Duration(minutes) * time.Minute)
	target.MuteUntil(until)
	if c.mutes != nil {
		if err := c.mutes.Save(ctx, target.GUID(), until); err != nil {
			c.log.Error("Mute not persisted", "guid", target.GUID(), "error", err)
		}
	}
	return fmt.Sprintf("%s is muted for %d minutes.", target.Name(), minutes), nil
}

func (c *Commands) unmute(ctx context.Context, sender *chat.Player, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: .unmute <name>")
	}
	target, err := c.target(sender, args[0])
	if err != nil {
		return "", err
	}
	target.MuteUntil(time.Time{})
	if c.mutes != nil {
		if err := c.mutes.Save(ctx, target.GUID(), time.Time{}); err != nil {
			c.log.Error("Unmute not persisted", "guid", target.GUID(), "error", err)
		}
	}
	return fmt.Sprintf("%s is no longer muted.", target.Name()), nil
}

// target refuses to act on an account of the same or a higher tier.
func (c *Commands) target(sender *chat.Player, name string) (*chat.Player, error) {
	normalized, ok := recipient.NormalizeName(name)
	if !ok {
		return nil, fmt.Errorf("player %q not found", name)
	}
	target, ok := c.players.PlayerByName(normalized)
	if !ok {
		return nil, fmt.Errorf("player %q not found", normalized)
	}
	if c.transport.SecurityTier(target.GUID()) >= c.transport.SecurityTier(sender.GUID()) {
		return nil, errors.ErrInsufficientTier
	}
	return target, nil
}
