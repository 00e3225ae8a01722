package errors

import (
	"fmt"
	"time"
)

var (
	ErrWorkerPanic    = fmt.Errorf("worker panic")
	ErrEmptyWords     = fmt.Errorf("no words have been found")
	ErrInvalidPayload = fmt.Errorf("invalid event payload")

	ErrUnknownCategory    = fmt.Errorf("unknown chat category")
	ErrMalformedRequest   = fmt.Errorf("malformed chat request")
	ErrUnknownLanguage    = fmt.Errorf("unknown language")
	ErrLanguageNotLearned = fmt.Errorf("language not learned")
	ErrAddonDisabled      = fmt.Errorf("addon channel disabled")
	ErrMuted              = fmt.Errorf("sender is muted")
	ErrInvalidLink        = fmt.Errorf("invalid chat link")
	ErrPlayerNotFound     = fmt.Errorf("player not found")
	ErrWrongFaction       = fmt.Errorf("wrong faction")
	ErrNoEligibleGroup    = fmt.Errorf("no eligible group")
	ErrNotInGuild         = fmt.Errorf("not in a guild")
	ErrGuildPermission    = fmt.Errorf("missing guild chat right")
	ErrChannelNotFound    = fmt.Errorf("channel not found")
	ErrSenderNotFound     = fmt.Errorf("sender not found")
	ErrShardFull          = fmt.Errorf("dispatch shard full")
	ErrSessionNotFound    = fmt.Errorf("session not found")
	ErrSessionClosed      = fmt.Errorf("session closed")
	ErrNotChannelMember   = fmt.Errorf("not a channel member")
	ErrInsufficientTier   = fmt.Errorf("insufficient security tier")

	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity requirements")
	ErrInvalidCredentials = fmt.Errorf("invalid name or password")
	ErrAccountExists      = fmt.Errorf("account already has a password")
	ErrAccountNotFound    = fmt.Errorf("account not found")
	ErrTokenGeneration    = fmt.Errorf("failed to generate token")
	ErrInvalidToken       = fmt.Errorf("invalid or expired token")
)

// MutedError carries the time left before the sender may speak again.
type MutedError struct {
	Remaining time.Duration
}

func (e *MutedError) Error() string {
	return fmt.Sprintf("%s for %s", ErrMuted, e.Remaining)
}

func (e *MutedError) Unwrap() error { return ErrMuted }

// LinkError reports a malformed link. Kick asks the caller to terminate the session.
type LinkError struct {
	Reason string
	Kick   bool
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidLink, e.Reason)
}

func (e *LinkError) Unwrap() error { return ErrInvalidLink }

// NotFoundError names the whisper target that could not be reached.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrPlayerNotFound, e.Name)
}

func (e *NotFoundError) Unwrap() error { return ErrPlayerNotFound }
