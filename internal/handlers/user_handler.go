package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/baki-2025/learning-server-10/internal/models"
	"github.com/baki-2025/learning-server-10/internal/service"
)

type UserHandler struct {
	service *service.UserService
	log     zerolog.Logger
}

func NewUserHandler(s *service.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{service: s, log: log}
}

// Register handles user registration. Registering an existing email is a
// successful no-op, not an error.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var newUser models.User
	if err := json.NewDecoder(r.Body).Decode(&newUser); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if newUser.Email == "" {
		writeMessage(w, http.StatusBadRequest, "Email is required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, existed, err := h.service.Register(ctx, newUser)
	if err != nil {
		h.log.Error().Err(err).Msg("register user")
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	if existed {
		writeMessage(w, http.StatusOK, "User already exists")
		return
	}

	writeJSON(w, http.StatusOK, res)
}
