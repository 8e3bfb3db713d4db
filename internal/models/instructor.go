package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleInstructor is stamped onto every instructor document at creation,
// overriding any caller-supplied role.
const RoleInstructor = "instructor"

type Instructor struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Skill     string             `json:"skill,omitempty" bson:"skill,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Image     string             `json:"image,omitempty" bson:"image,omitempty"`
	Role      string             `json:"role,omitempty" bson:"role,omitempty"`
	CreatedAt time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}
