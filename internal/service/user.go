package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/baki-2025/learning-server-10/internal/models"
	"github.com/baki-2025/learning-server-10/internal/store"
)

// UserService registers platform accounts, keyed by email.
type UserService struct {
	users store.Collection
}

func NewUserService(users store.Collection) *UserService {
	return &UserService{users: users}
}

// Register inserts u unless a user with the same email already exists. The
// bool reports whether the user existed; a repeated registration is a no-op
// acknowledgement, not an error.
func (s *UserService) Register(ctx context.Context, u models.User) (*store.InsertResult, bool, error) {
	var existing models.User
	err := s.users.FindOne(ctx, bson.M{"email": u.Email}, &existing)
	if err == nil {
		return nil, true, nil
	}
	if !errors.Is(err, store.ErrNoDocuments) {
		return nil, false, fmt.Errorf("check user existence: %w", err)
	}

	res, err := s.users.InsertOne(ctx, u)
	if err != nil {
		return nil, false, fmt.Errorf("insert user: %w", err)
	}
	return res, false, nil
}
