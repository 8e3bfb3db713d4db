package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/baki-2025/learning-server-10/internal/models"
	"github.com/baki-2025/learning-server-10/internal/service"
)

type InstructorHandler struct {
	service *service.InstructorService
	log     zerolog.Logger
}

func NewInstructorHandler(s *service.InstructorService, log zerolog.Logger) *InstructorHandler {
	return &InstructorHandler{service: s, log: log}
}

// Create inserts the posted instructor with server-stamped role and
// createdAt. A duplicate email is a successful no-op.
func (h *InstructorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var newInstructor models.Instructor
	if err := json.NewDecoder(r.Body).Decode(&newInstructor); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if newInstructor.Email == "" {
		writeMessage(w, http.StatusBadRequest, "Email is required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, existed, err := h.service.Create(ctx, newInstructor)
	if err != nil {
		h.log.Error().Err(err).Msg("create instructor")
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}
	if existed {
		writeMessage(w, http.StatusOK, "Instructor already exists")
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *InstructorHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	instructors, err := h.service.List(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("list instructors")
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, instructors)
}

// Get looks up a single instructor by the path key, which is an ObjectID hex
// when it parses as one and an email otherwise. An absent instructor is a
// null body, not an error.
func (h *InstructorHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var inst *models.Instructor
	var err error
	if _, idErr := primitive.ObjectIDFromHex(key); idErr == nil {
		inst, err = h.service.GetByID(ctx, key)
	} else {
		inst, err = h.service.GetByEmail(ctx, key)
	}
	if err != nil {
		h.log.Error().Err(err).Msg("get instructor")
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, inst)
}

// Update applies the posted body as a partial field merge.
func (h *InstructorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var patch bson.M
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := h.service.Update(ctx, id, patch)
	switch {
	case errors.Is(err, service.ErrInvalidID):
		writeMessage(w, http.StatusBadRequest, "Invalid instructor ID")
	case err != nil:
		h.log.Error().Err(err).Msg("update instructor")
		writeMessage(w, http.StatusInternalServerError, "Server error")
	default:
		writeJSON(w, http.StatusOK, res)
	}
}

func (h *InstructorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := h.service.Delete(ctx, id)
	switch {
	case errors.Is(err, service.ErrInvalidID):
		writeMessage(w, http.StatusBadRequest, "Invalid instructor ID")
	case err != nil:
		h.log.Error().Err(err).Msg("delete instructor")
		writeMessage(w, http.StatusInternalServerError, "Server error")
	default:
		writeJSON(w, http.StatusOK, res)
	}
}
