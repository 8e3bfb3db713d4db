package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/baki-2025/learning-server-10/internal/auth"
)

type AuthHandler struct {
	tokens *auth.TokenManager
	log    zerolog.Logger
}

func NewAuthHandler(tokens *auth.TokenManager, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{tokens: tokens, log: log}
}

// IssueToken mints a bearer token for the posted email. The email is the
// identity; there is no password step.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if body.Email == "" {
		writeMessage(w, http.StatusBadRequest, "Email is required")
		return
	}

	token, err := h.tokens.Generate(body.Email)
	if err != nil {
		h.log.Error().Err(err).Msg("issue token")
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
