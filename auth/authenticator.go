package auth

import (
	"chat-dispatch/contract"
	"chat-dispatch/domain/chat"
	"chat-dispatch/errors"
	"fmt"
	"net/http"
	"strings"
)

// TokenAuthenticator accepts a session token from the Authorization header
// or, for browsers that cannot set headers on an upgrade, the token query
// parameter.
type TokenAuthenticator struct {
	issuer  *Issuer
	players contract.PlayerStore
}

func NewTokenAuthenticator(issuer *Issuer, players contract.PlayerStore) *TokenAuthenticator {
	return &TokenAuthenticator{issuer: issuer, players: players}
}

func (a *TokenAuthenticator) Authenticate(r *http.Request) (chat.GUID, chat.Security, error) {
	token := r.URL.Query().Get("token")
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return 0, 0, errors.ErrInvalidToken
		}
		token = parts[1]
	}
	if token == "" {
		return 0, 0, errors.ErrInvalidToken
	}

	claims, err := a.issuer.Validate(token)
	if err != nil {
		return 0, 0, err
	}
	guid := chat.GUID(claims.GUID)
	if _, ok := a.players.Player(guid); !ok {
		return 0, 0, fmt.Errorf("unknown player %d", guid)
	}
	return guid, chat.Security(claims.Tier), nil
}
