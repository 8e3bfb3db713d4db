package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/baki-2025/learning-server-10/internal/models"
	"github.com/baki-2025/learning-server-10/internal/store"
)

// EnrollmentService tracks course enrollments, unique per
// (courseId, studentEmail) pair.
type EnrollmentService struct {
	enrollments store.Collection
}

func NewEnrollmentService(enrollments store.Collection) *EnrollmentService {
	return &EnrollmentService{enrollments: enrollments}
}

// Enroll inserts e unless the (courseId, studentEmail) pair is already
// enrolled, in which case it fails with ErrAlreadyEnrolled. Unlike the user
// and instructor duplicate handling, this is a true error.
func (s *EnrollmentService) Enroll(ctx context.Context, e models.Enrollment) (*store.InsertResult, error) {
	if e.CourseID == "" || e.StudentEmail == "" {
		return nil, ErrMissingFields
	}

	filter := bson.M{"courseId": e.CourseID, "studentEmail": e.StudentEmail}
	var existing models.Enrollment
	err := s.enrollments.FindOne(ctx, filter, &existing)
	if err == nil {
		return nil, ErrAlreadyEnrolled
	}
	if !errors.Is(err, store.ErrNoDocuments) {
		return nil, fmt.Errorf("check enrollment existence: %w", err)
	}

	res, err := s.enrollments.InsertOne(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("insert enrollment: %w", err)
	}
	return res, nil
}

// ListForStudent returns the enrollments for email, provided the querying
// principal is that same student; any mismatch fails with ErrForbidden.
func (s *EnrollmentService) ListForStudent(ctx context.Context, email, principal string) ([]models.Enrollment, error) {
	if email != principal {
		return nil, ErrForbidden
	}

	enrollments := make([]models.Enrollment, 0)
	if err := s.enrollments.Find(ctx, bson.M{"studentEmail": email}, &enrollments); err != nil {
		return nil, fmt.Errorf("find enrollments: %w", err)
	}
	return enrollments, nil
}
