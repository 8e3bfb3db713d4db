package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enrollment links a student to a course. The (CourseID, StudentEmail) pair
// is unique; CourseID is the hex form of the course document id.
type Enrollment struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	CourseID     string             `json:"courseId" bson:"courseId"`
	StudentEmail string             `json:"studentEmail" bson:"studentEmail"`
	CourseTitle  string             `json:"courseTitle,omitempty" bson:"courseTitle,omitempty"`
	Instructor   string             `json:"instructor,omitempty" bson:"instructor,omitempty"`
	Price        float64            `json:"price,omitempty" bson:"price,omitempty"`
	EnrolledAt   time.Time          `json:"enrolledAt,omitempty" bson:"enrolledAt,omitempty"`
}
