package class

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Class struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ClassName        string             `bson:"className" json:"className"`
	ClassPhotoURL    string             `bson:"classPhotoURL" json:"classPhotoURL"`
	InstructorName   string             `bson:"instructorName" json:"instructorName"`
	InstructorEmail  string             `bson:"instructorEmail" json:"instructorEmail"`
	AvailableSeats   int64              `bson:"availableSeats" json:"availableSeats"`
	EnrolledStudents int64              `bson:"enrolledStudents" json:"enrolledStudents"`
	Price            float64            `bson:"price" json:"price"`
	Status           string             `bson:"status" json:"status"`
	Feedback         string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
	CreateTime       time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime       time.Time          `bson:"update_time" json:"updateTime"`
}
