package auth_test

import (
	"bytes"
	"chat-dispatch/auth"
	"chat-dispatch/domain/chat"
	"chat-dispatch/errors"
	"chat-dispatch/infrastructure/storage"
	"chat-dispatch/infrastructure/world"
	"chat-dispatch/mocks"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const password = "For-The-Horde-1"

func newWorld() *world.World {
	w := world.New(logs.GetLoggerFromLevel(slog.LevelDebug), 25)
	w.AddPlayer(chat.NewPlayer(chat.PlayerInfo{GUID: 1, Name: "Thrall", Team: chat.TeamHorde, Alive: true}), world.Position{})
	w.AddPlayer(chat.NewPlayer(chat.PlayerInfo{GUID: 2, Name: "Garrosh", Team: chat.TeamHorde, Alive: true}), world.Position{})
	return w
}

func TestService_RegisterThenLogin(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountStore(ctrl)
	issuer := auth.NewIssuer("secret", time.Hour)
	service := auth.NewService(logs.GetLoggerFromLevel(slog.LevelDebug), accounts, newWorld(),
		map[chat.GUID]chat.Security{1: chat.SecAdministrator}, issuer)

	// Given Thrall registering a password
	var stored string
	accounts.EXPECT().CreatePassword(chat.GUID(1), gomock.Any()).
		DoAndReturn(func(_ chat.GUID, hash string) error {
			stored = hash
			return nil
		})
	token, err := service.Register(auth.RegisterRequest{Name: "thrall", Password: password})
	req.NoError(err)
	claims, err := issuer.Validate(string(token))
	req.NoError(err)
	req.Equal(uint64(1), claims.GUID)
	req.Equal(uint8(chat.SecAdministrator), claims.Tier)

	// When logging in with the right and the wrong password
	accounts.EXPECT().PasswordHash(chat.GUID(1)).Return(stored, nil).Times(2)
	_, err = service.Login(auth.Credentials{Name: "Thrall", Password: password})
	req.NoError(err)
	_, err = service.Login(auth.Credentials{Name: "Thrall", Password: "For-The-Horde-2"})

	// Then only the right one is accepted
	req.ErrorIs(err, errors.ErrInvalidCredentials)
}

func TestService_UnknownNames(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountStore(ctrl)
	service := auth.NewService(logs.GetLoggerFromLevel(slog.LevelDebug), accounts, newWorld(), nil,
		auth.NewIssuer("secret", time.Hour))

	_, err := service.Register(auth.RegisterRequest{Name: "Jaina", Password: password})
	req.ErrorIs(err, errors.ErrAccountNotFound)

	_, err = service.Login(auth.Credentials{Name: "Jaina", Password: password})
	req.ErrorIs(err, errors.ErrInvalidCredentials)

	// Garrosh exists but never registered
	accounts.EXPECT().PasswordHash(chat.GUID(2)).Return("", errors.ErrAccountNotFound)
	_, err = service.Login(auth.Credentials{Name: "Garrosh", Password: password})
	req.ErrorIs(err, errors.ErrInvalidCredentials)
}

func TestRoutesAndTokenAuthenticator(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	req.NoError(err)
	defer db.Close()

	w := newWorld()
	issuer := auth.NewIssuer("secret", time.Hour)
	service := auth.NewService(log, storage.NewAccountRepository(db, log), w,
		map[chat.GUID]chat.Security{2: chat.SecModerator}, issuer)
	mux := http.NewServeMux()
	auth.Routes(mux, service, log)

	post := func(path string, body any) *httptest.ResponseRecorder {
		raw, err := json.Marshal(body)
		req.NoError(err)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw)))
		return rec
	}

	// Given Garrosh registered through HTTP
	rec := post("/register", auth.RegisterRequest{Name: "Garrosh", Password: password})
	req.Equal(http.StatusOK, rec.Code)

	// Then registering again conflicts and weak passwords are refused
	req.Equal(http.StatusConflict, post("/register", auth.RegisterRequest{Name: "Garrosh", Password: password}).Code)
	req.Equal(http.StatusBadRequest, post("/register", auth.RegisterRequest{Name: "Thrall", Password: "weak"}).Code)
	req.Equal(http.StatusUnauthorized, post("/login", auth.Credentials{Name: "Garrosh", Password: "nope"}).Code)

	// When logging in
	rec = post("/login", auth.Credentials{Name: "Garrosh", Password: password})
	req.Equal(http.StatusOK, rec.Code)
	var body struct {
		Token string `json:"token"`
	}
	req.NoError(json.NewDecoder(rec.Body).Decode(&body))

	// Then the token authenticates an upgrade request both ways
	authenticator := auth.NewTokenAuthenticator(issuer, w)
	r := httptest.NewRequest(http.MethodGet, "/ws", nil)
	r.Header.Set("Authorization", "Bearer "+body.Token)
	guid, tier, err := authenticator.Authenticate(r)
	req.NoError(err)
	req.Equal(chat.GUID(2), guid)
	req.Equal(chat.SecModerator, tier)

	guid, _, err = authenticator.Authenticate(httptest.NewRequest(http.MethodGet, "/ws?token="+body.Token, nil))
	req.NoError(err)
	req.Equal(chat.GUID(2), guid)

	_, _, err = authenticator.Authenticate(httptest.NewRequest(http.MethodGet, "/ws", nil))
	req.ErrorIs(err, errors.ErrInvalidToken)
	r.Header.Set("Authorization", "Basic abc")
	_, _, err = authenticator.Authenticate(r)
	req.ErrorIs(err, errors.ErrInvalidToken)
}
