package auth

import (
	"chat-dispatch/errors"
	"encoding/json"
	stdErrors "errors"
	"log/slog"
	"net/http"
)

type tokenResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Routes mounts POST /login and POST /register.
func Routes(mux *http.ServeMux, service *Service, log *slog.Logger) {
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		var c Credentials
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed body"})
			return
		}
		token, err := service.Login(c)
		respond(w, log, token, err)
	})
	mux.HandleFunc("POST /register", func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed body"})
			return
		}
		token, err := service.Register(req)
		respond(w, log, token, err)
	})
}

func respond(w http.ResponseWriter, log *slog.Logger, token Token, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, tokenResponse{Token: string(token)})
	case stdErrors.Is(err, errors.ErrInvalidPassword):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: errors.ErrInvalidPassword.Error()})
	case stdErrors.Is(err, errors.ErrInvalidCredentials), stdErrors.Is(err, errors.ErrAccountNotFound):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: errors.ErrInvalidCredentials.Error()})
	case stdErrors.Is(err, errors.ErrAccountExists):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		log.Error("Authentication failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
