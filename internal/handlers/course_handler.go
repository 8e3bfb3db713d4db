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

	"github.com/baki-2025/learning-server-10/internal/models"
	"github.com/baki-2025/learning-server-10/internal/service"
)

type CourseHandler struct {
	service *service.CourseService
	log     zerolog.Logger
}

func NewCourseHandler(s *service.CourseService, log zerolog.Logger) *CourseHandler {
	return &CourseHandler{service: s, log: log}
}

// Create inserts the posted course as given.
func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var newCourse models.Course
	if err := json.NewDecoder(r.Body).Decode(&newCourse); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := h.service.Create(ctx, newCourse)
	if err != nil {
		h.log.Error().Err(err).Msg("create course")
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// List returns all courses. Order is store-native and not guaranteed.
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	courses, err := h.service.List(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("list courses")
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, courses)
}

func (h *CourseHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	course, err := h.service.GetByID(ctx, id)
	switch {
	case errors.Is(err, service.ErrInvalidID):
		writeMessage(w, http.StatusBadRequest, "Invalid course ID")
	case errors.Is(err, service.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "Course not found")
	case err != nil:
		h.log.Error().Err(err).Msg("get course")
		writeMessage(w, http.StatusInternalServerError, "Server error")
	default:
		writeJSON(w, http.StatusOK, course)
	}
}

// Update applies the posted body as a partial field merge.
func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
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
		writeMessage(w, http.StatusBadRequest, "Invalid course ID")
	case err != nil:
		h.log.Error().Err(err).Msg("update course")
		writeMessage(w, http.StatusInternalServerError, "Server error")
	default:
		writeJSON(w, http.StatusOK, res)
	}
}

func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := h.service.Delete(ctx, id)
	switch {
	case errors.Is(err, service.ErrInvalidID):
		writeMessage(w, http.StatusBadRequest, "Invalid course ID")
	case err != nil:
		h.log.Error().Err(err).Msg("delete course")
		writeMessage(w, http.StatusInternalServerError, "Server error")
	default:
		writeJSON(w, http.StatusOK, res)
	}
}

// ByInstructor lists the courses taught by the instructor email in the path.
func (h *CourseHandler) ByInstructor(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	courses, err := h.service.ListByInstructor(ctx, email)
	if err != nil {
		h.log.Error().Err(err).Msg("list courses by instructor")
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, courses)
}

// ByEnrolledUser lists the courses the email in the path is enrolled in.
func (h *CourseHandler) ByEnrolledUser(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	courses, err := h.service.ListByEnrolledUser(ctx, email)
	if err != nil {
		h.log.Error().Err(err).Msg("list courses by enrolled user")
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, courses)
}
