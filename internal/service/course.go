package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/baki-2025/learning-server-10/internal/models"
	"github.com/baki-2025/learning-server-10/internal/store"
)

// CourseService stores course documents as submitted. Authorization for
// mutations is enforced upstream by the access guard; no ownership check is
// applied here.
type CourseService struct {
	courses store.Collection
}

func NewCourseService(courses store.Collection) *CourseService {
	return &CourseService{courses: courses}
}

// Create inserts the course as given and returns the insert acknowledgement.
func (s *CourseService) Create(ctx context.Context, c models.Course) (*store.InsertResult, error) {
	res, err := s.courses.InsertOne(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("insert course: %w", err)
	}
	return res, nil
}

// List returns every course in store-native order.
func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	courses := make([]models.Course, 0)
	if err := s.courses.Find(ctx, bson.M{}, &courses); err != nil {
		return nil, fmt.Errorf("find courses: %w", err)
	}
	return courses, nil
}

// GetByID rejects a malformed id with ErrInvalidID before any store access,
// and reports a well-formed but absent id as ErrNotFound.
func (s *CourseService) GetByID(ctx context.Context, id string) (*models.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var course models.Course
	err = s.courses.FindOne(ctx, bson.M{"_id": oid}, &course)
	if errors.Is(err, store.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find course: %w", err)
	}
	return &course, nil
}

// Update applies patch as a partial field merge: keys in patch overwrite the
// same-named stored keys, everything else is untouched.
func (s *CourseService) Update(ctx context.Context, id string, patch bson.M) (*store.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	res, err := s.courses.UpdateOne(ctx, bson.M{"_id": oid}, patch)
	if err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}
	return res, nil
}

func (s *CourseService) Delete(ctx context.Context, id string) (*store.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	res, err := s.courses.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("delete course: %w", err)
	}
	return res, nil
}

// ListByInstructor returns the courses taught by the given instructor email.
func (s *CourseService) ListByInstructor(ctx context.Context, email string) ([]models.Course, error) {
	courses := make([]models.Course, 0)
	if err := s.courses.Find(ctx, bson.M{"instructorEmail": email}, &courses); err != nil {
		return nil, fmt.Errorf("find courses by instructor: %w", err)
	}
	return courses, nil
}

// ListByEnrolledUser returns the courses whose enrolled-users list contains
// the given email.
func (s *CourseService) ListByEnrolledUser(ctx context.Context, email string) ([]models.Course, error) {
	courses := make([]models.Course, 0)
	if err := s.courses.Find(ctx, bson.M{"enrolledUsers": email}, &courses); err != nil {
		return nil, fmt.Errorf("find courses by enrolled user: %w", err)
	}
	return courses, nil
}
