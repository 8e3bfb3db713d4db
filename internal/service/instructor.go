package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/baki-2025/learning-server-10/internal/models"
	"github.com/baki-2025/learning-server-10/internal/store"
)

// InstructorService stores instructor profiles, keyed by email. Absent
// single-document lookups return a nil instructor rather than an error;
// call sites depend on that, in contrast to CourseService.GetByID.
type InstructorService struct {
	instructors store.Collection
	now         func() time.Time
}

func NewInstructorService(instructors store.Collection) *InstructorService {
	return &InstructorService{instructors: instructors, now: time.Now}
}

// Create inserts the instructor unless one with the same email exists; the
// bool reports whether it did. Role and CreatedAt are stamped by the server,
// overriding any caller-supplied values.
func (s *InstructorService) Create(ctx context.Context, inst models.Instructor) (*store.InsertResult, bool, error) {
	var existing models.Instructor
	err := s.instructors.FindOne(ctx, bson.M{"email": inst.Email}, &existing)
	if err == nil {
		return nil, true, nil
	}
	if !errors.Is(err, store.ErrNoDocuments) {
		return nil, false, fmt.Errorf("check instructor existence: %w", err)
	}

	inst.Role = models.RoleInstructor
	inst.CreatedAt = s.now()

	res, err := s.instructors.InsertOne(ctx, inst)
	if err != nil {
		return nil, false, fmt.Errorf("insert instructor: %w", err)
	}
	return res, false, nil
}

// List returns every instructor, unordered.
func (s *InstructorService) List(ctx context.Context) ([]models.Instructor, error) {
	instructors := make([]models.Instructor, 0)
	if err := s.instructors.Find(ctx, bson.M{}, &instructors); err != nil {
		return nil, fmt.Errorf("find instructors: %w", err)
	}
	return instructors, nil
}

// GetByEmail returns nil when no instructor matches.
func (s *InstructorService) GetByEmail(ctx context.Context, email string) (*models.Instructor, error) {
	var inst models.Instructor
	err := s.instructors.FindOne(ctx, bson.M{"email": email}, &inst)
	if errors.Is(err, store.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find instructor: %w", err)
	}
	return &inst, nil
}

// GetByID returns nil when no instructor matches the well-formed id.
func (s *InstructorService) GetByID(ctx context.Context, id string) (*models.Instructor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var inst models.Instructor
	err = s.instructors.FindOne(ctx, bson.M{"_id": oid}, &inst)
	if errors.Is(err, store.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find instructor: %w", err)
	}
	return &inst, nil
}

// Update applies patch as a partial field merge on the matching document.
func (s *InstructorService) Update(ctx context.Context, id string, patch bson.M) (*store.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	res, err := s.instructors.UpdateOne(ctx, bson.M{"_id": oid}, patch)
	if err != nil {
		return nil, fmt.Errorf("update instructor: %w", err)
	}
	return res, nil
}

func (s *InstructorService) Delete(ctx context.Context, id string) (*store.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	res, err := s.instructors.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("delete instructor: %w", err)
	}
	return res, nil
}
