package auth

import (
	"chat-dispatch/contract"
	"chat-dispatch/domain/chat"
	"chat-dispatch/errors"
	"chat-dispatch/recipient"
	"fmt"
	"log/slog"
)

type Token string

// Service lets a character already present in the world set a password
// once and then trade it for a session token.
type Service struct {
	log      *slog.Logger
	accounts contract.AccountStore
	players  contract.PlayerStore
	tiers    map[chat.GUID]chat.Security
	issuer   *Issuer
}

func NewService(log *slog.Logger, accounts contract.AccountStore, players contract.PlayerStore,
	tiers map[chat.GUID]chat.Security, issuer *Issuer) *Service {
	return &Service{log: log, accounts: accounts, players: players, tiers: tiers, issuer: issuer}
}

func (s *Service) Register(req RegisterRequest) (Token, error) {
	// Validate before any expensive hashing
	if err := ValidateRegister(req); err != nil {
		return "", err
	}
	player, ok := s.lookup(req.Name)
	if !ok {
		return "", errors.ErrAccountNotFound
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("hashing failed: %w", err)
	}
	if err := s.accounts.CreatePassword(player.GUID(), hashed); err != nil {
		return "", err
	}
	return s.issue(player.GUID())
}

// Login answers ErrInvalidCredentials for unknown names and wrong passwords alike.
func (s *Service) Login(c Credentials) (Token, error) {
	if err := ValidateLogin(c); err != nil {
		return "", err
	}
	player, ok := s.lookup(c.Name)
	if !ok {
		return "", errors.ErrInvalidCredentials
	}
	hash, err := s.accounts.PasswordHash(player.GUID())
	if err != nil {
		return "", errors.ErrInvalidCredentials
	}
	match, err := ComparePassword(c.Password, hash)
	if err != nil || !match {
		s.log.Debug("Login refused", "guid", player.GUID())
		return "", errors.ErrInvalidCredentials
	}
	return s.issue(player.GUID())
}

func (s *Service) lookup(name string) (*chat.Player, bool) {
	normalized, ok := recipient.NormalizeName(name)
	if !ok {
		return nil, false
	}
	return s.players.PlayerByName(normalized)
}

func (s *Service) issue(guid chat.GUID) (Token, error) {
	tier, ok := s.tiers[guid]
	if !ok {
		tier = chat.SecPlayer
	}
	token, err := s.issuer.Generate(guid, tier)
	if err != nil {
		return "", err
	}
	return Token(token), nil
}
