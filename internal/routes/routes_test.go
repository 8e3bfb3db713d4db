package routes_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baki-2025/learning-server-10/internal/auth"
	"github.com/baki-2025/learning-server-10/internal/routes"
	"github.com/baki-2025/learning-server-10/internal/service"
	"github.com/baki-2025/learning-server-10/internal/store"
)

type fixture struct {
	router http.Handler
	tokens *auth.TokenManager

	users       *store.MemoryCollection
	courses     *store.MemoryCollection
	instructors *store.MemoryCollection
	enrollments *store.MemoryCollection
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		tokens:      auth.NewTokenManager("test-secret", time.Hour),
		users:       store.NewMemoryCollection(),
		courses:     store.NewMemoryCollection(),
		instructors: store.NewMemoryCollection(),
		enrollments: store.NewMemoryCollection(),
	}

	f.router = routes.SetupRouter(routes.Deps{
		Log:         zerolog.Nop(),
		Verifier:    f.tokens,
		Tokens:      f.tokens,
		Users:       service.NewUserService(f.users),
		Courses:     service.NewCourseService(f.courses),
		Instructors: service.NewInstructorService(f.instructors),
		Enrollments: service.NewEnrollmentService(f.enrollments),
	})
	return f
}

func (f *fixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) token(t *testing.T, email string) string {
	t.Helper()
	token, err := f.tokens.Generate(email)
	require.NoError(t, err)
	return token
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func TestLiveness(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Learning Server running")
}

func TestRegisterUser_Twice(t *testing.T) {
	f := newFixture(t)
	user := map[string]string{"name": "A", "email": "a@x.com"}

	rec := f.do(t, http.MethodPost, "/users", "", user)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["acknowledged"])

	rec = f.do(t, http.MethodPost, "/users", "", user)
	assert.Equal(t, http.StatusOK, rec.Code, "second registration is still a success")
	assert.Equal(t, "User already exists", decodeBody(t, rec)["message"])
	assert.Equal(t, 1, f.users.Len())
}

func TestCreateCourse_RequiresToken(t *testing.T) {
	f := newFixture(t)
	course := map[string]any{"title": "Go Basics", "price": 49.99, "instructorEmail": "teach@x.com"}

	rec := f.do(t, http.MethodPost, "/courses", "", course)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, f.courses.Len())

	rec = f.do(t, http.MethodPost, "/courses", f.token(t, "teach@x.com"), course)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, f.courses.Len())
}

func TestGetCourse_InvalidAndAbsentID(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/courses/not-an-objectid", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid course ID", decodeBody(t, rec)["message"])

	rec = f.do(t, http.MethodGet, "/courses/65f000000000000000000000", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Course not found", decodeBody(t, rec)["message"])
}

func TestCourseLifecycle(t *testing.T) {
	f := newFixture(t)
	token := f.token(t, "teach@x.com")

	rec := f.do(t, http.MethodPost, "/courses", token, map[string]any{
		"title":           "Go Basics",
		"price":           49.99,
		"instructorEmail": "teach@x.com",
		"enrolledUsers":   []string{"s@x.com"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	courseID := decodeBody(t, rec)["insertedId"].(string)

	rec = f.do(t, http.MethodGet, "/courses/"+courseID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Go Basics", decodeBody(t, rec)["title"])

	// update without a token is rejected
	rec = f.do(t, http.MethodPut, "/courses/"+courseID, "", map[string]any{"price": 9.99})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodPut, "/courses/"+courseID, token, map[string]any{"price": 9.99})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decodeBody(t, rec)["matchedCount"])

	rec = f.do(t, http.MethodGet, "/courses/"+courseID, "", nil)
	body := decodeBody(t, rec)
	assert.EqualValues(t, 9.99, body["price"])
	assert.Equal(t, "Go Basics", body["title"], "partial merge keeps other keys")

	rec = f.do(t, http.MethodGet, "/my-courses/teach@x.com", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Go Basics")

	rec = f.do(t, http.MethodGet, "/enrolled-courses/s@x.com", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Go Basics")

	rec = f.do(t, http.MethodDelete, "/courses/"+courseID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decodeBody(t, rec)["deletedCount"])

	rec = f.do(t, http.MethodGet, "/courses/"+courseID, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEnroll_DuplicateIsConflict(t *testing.T) {
	f := newFixture(t)
	token := f.token(t, "s@x.com")
	enrollment := map[string]string{"courseId": "c1", "studentEmail": "s@x.com"}

	rec := f.do(t, http.MethodPost, "/enroll", token, enrollment)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPost, "/enroll", token, enrollment)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Already enrolled", decodeBody(t, rec)["message"])
	assert.Equal(t, 1, f.enrollments.Len())
}

func TestListEnrollments_OwnershipCheck(t *testing.T) {
	f := newFixture(t)
	token := f.token(t, "s@x.com")

	rec := f.do(t, http.MethodPost, "/enroll", token, map[string]string{"courseId": "c1", "studentEmail": "s@x.com"})
	require.Equal(t, http.StatusOK, rec.Code)

	// querying someone else's enrollments
	rec = f.do(t, http.MethodGet, "/enroll?email=s@x.com", f.token(t, "other@x.com"), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Forbidden", decodeBody(t, rec)["message"])

	// querying one's own
	rec = f.do(t, http.MethodGet, "/enroll?email=s@x.com", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "s@x.com", list[0]["studentEmail"])

	// no token at all
	rec = f.do(t, http.MethodGet, "/enroll?email=s@x.com", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInstructorCreate_StampsAndDedupes(t *testing.T) {
	f := newFixture(t)
	token := f.token(t, "a@x.com")

	rec := f.do(t, http.MethodPost, "/instructors", token, map[string]string{
		"email": "a@x.com",
		"name":  "A",
		"role":  "admin", // must be overridden
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["acknowledged"])

	rec = f.do(t, http.MethodGet, "/instructors/a@x.com", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "instructor", body["role"])
	assert.NotEmpty(t, body["createdAt"])

	rec = f.do(t, http.MethodPost, "/instructors", token, map[string]string{"email": "a@x.com", "name": "A"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Instructor already exists", decodeBody(t, rec)["message"])
	assert.Equal(t, 1, f.instructors.Len())
}

func TestInstructorGet_AbsentIsNullBody(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/instructors/missing@x.com", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", string(bytes.TrimSpace(rec.Body.Bytes())))
}

func TestInstructorMutations_RequireToken(t *testing.T) {
	f := newFixture(t)
	token := f.token(t, "a@x.com")

	rec := f.do(t, http.MethodPost, "/instructors", token, map[string]string{"email": "a@x.com", "name": "A"})
	require.Equal(t, http.StatusOK, rec.Code)
	id := decodeBody(t, rec)["insertedId"].(string)

	rec = f.do(t, http.MethodPut, "/instructors/"+id, "", map[string]string{"skill": "Go"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodPut, "/instructors/"+id, token, map[string]string{"skill": "Go"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodDelete, "/instructors/"+id, "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodDelete, "/instructors/"+id, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decodeBody(t, rec)["deletedCount"])
}

func TestIssuedTokenOpensGuardedRoutes(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/jwt", "", map[string]string{"email": "s@x.com"})
	require.Equal(t, http.StatusOK, rec.Code)
	token := decodeBody(t, rec)["token"].(string)
	require.NotEmpty(t, token)

	rec = f.do(t, http.MethodGet, "/enroll?email=s@x.com", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
