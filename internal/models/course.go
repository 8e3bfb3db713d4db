package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course is stored as submitted by its creator; no field is server-stamped.
// EnrolledUsers holds the emails of students enrolled in the course.
type Course struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Description     string             `json:"description,omitempty" bson:"description,omitempty"`
	Image           string             `json:"image,omitempty" bson:"image,omitempty"`
	Price           float64            `json:"price" bson:"price"`
	Category        string             `json:"category,omitempty" bson:"category,omitempty"`
	Duration        string             `json:"duration,omitempty" bson:"duration,omitempty"`
	InstructorName  string             `json:"instructorName,omitempty" bson:"instructorName,omitempty"`
	InstructorEmail string             `json:"instructorEmail" bson:"instructorEmail"`
	EnrolledUsers   []string           `json:"enrolledUsers,omitempty" bson:"enrolledUsers,omitempty"`
}
