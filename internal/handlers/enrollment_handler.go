package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/baki-2025/learning-server-10/internal/middleware"
	"github.com/baki-2025/learning-server-10/internal/models"
	"github.com/baki-2025/learning-server-10/internal/service"
)

type EnrollmentHandler struct {
	service *service.EnrollmentService
	log     zerolog.Logger
}

func NewEnrollmentHandler(s *service.EnrollmentService, log zerolog.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{service: s, log: log}
}

// Enroll records the posted enrollment; a duplicate (courseId, studentEmail)
// pair is a conflict.
func (h *EnrollmentHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	var enrollment models.Enrollment
	if err := json.NewDecoder(r.Body).Decode(&enrollment); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := h.service.Enroll(ctx, enrollment)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		writeMessage(w, http.StatusBadRequest, "Course ID and student email are required")
	case errors.Is(err, service.ErrAlreadyEnrolled):
		writeMessage(w, http.StatusConflict, "Already enrolled")
	case err != nil:
		h.log.Error().Err(err).Msg("enroll")
		writeMessage(w, http.StatusInternalServerError, "Server error")
	default:
		writeJSON(w, http.StatusOK, res)
	}
}

// ListForStudent returns the caller's enrollments. The email query parameter
// must match the authenticated principal.
func (h *EnrollmentHandler) ListForStudent(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	principal, ok := middleware.Principal(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	enrollments, err := h.service.ListForStudent(ctx, email, principal)
	switch {
	case errors.Is(err, service.ErrForbidden):
		writeMessage(w, http.StatusForbidden, "Forbidden")
	case err != nil:
		h.log.Error().Err(err).Msg("list enrollments")
		writeMessage(w, http.StatusInternalServerError, "Server error")
	default:
		writeJSON(w, http.StatusOK, enrollments)
	}
}
