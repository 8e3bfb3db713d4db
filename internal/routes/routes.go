package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/baki-2025/learning-server-10/internal/auth"
	"github.com/baki-2025/learning-server-10/internal/handlers"
	"github.com/baki-2025/learning-server-10/internal/middleware"
	"github.com/baki-2025/learning-server-10/internal/service"
)

// Deps carries the constructed collaborators the router wires together.
type Deps struct {
	Log         zerolog.Logger
	Verifier    auth.Verifier
	Tokens      *auth.TokenManager
	Users       *service.UserService
	Courses     *service.CourseService
	Instructors *service.InstructorService
	Enrollments *service.EnrollmentService
}

// SetupRouter wires every route. Mutating routes sit behind the access
// guard, except registration and token issuance, which must be reachable
// before the caller holds a token.
func SetupRouter(d Deps) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger(d.Log))

	authHandler := handlers.NewAuthHandler(d.Tokens, d.Log)
	userHandler := handlers.NewUserHandler(d.Users, d.Log)
	courseHandler := handlers.NewCourseHandler(d.Courses, d.Log)
	instructorHandler := handlers.NewInstructorHandler(d.Instructors, d.Log)
	enrollmentHandler := handlers.NewEnrollmentHandler(d.Enrollments, d.Log)

	// Liveness endpoints
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Learning Server running"))
	}).Methods("GET")
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Server is healthy"))
	}).Methods("GET")

	// Open routes
	router.HandleFunc("/users", userHandler.Register).Methods("POST")
	router.HandleFunc("/jwt", authHandler.IssueToken).Methods("POST")
	router.HandleFunc("/courses", courseHandler.List).Methods("GET")
	router.HandleFunc("/courses/{id}", courseHandler.GetByID).Methods("GET")
	router.HandleFunc("/my-courses/{email}", courseHandler.ByInstructor).Methods("GET")
	router.HandleFunc("/enrolled-courses/{email}", courseHandler.ByEnrolledUser).Methods("GET")
	router.HandleFunc("/instructors", instructorHandler.List).Methods("GET")
	router.HandleFunc("/instructors/{key}", instructorHandler.Get).Methods("GET")

	// Guarded routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.Auth(d.Verifier))
	protected.HandleFunc("/courses", courseHandler.Create).Methods("POST")
	protected.HandleFunc("/courses/{id}", courseHandler.Update).Methods("PUT")
	protected.HandleFunc("/courses/{id}", courseHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/enroll", enrollmentHandler.Enroll).Methods("POST")
	protected.HandleFunc("/enroll", enrollmentHandler.ListForStudent).Methods("GET")
	protected.HandleFunc("/instructors", instructorHandler.Create).Methods("POST")
	protected.HandleFunc("/instructors/{id}", instructorHandler.Update).Methods("PUT")
	protected.HandleFunc("/instructors/{id}", instructorHandler.Delete).Methods("DELETE")

	return router
}
