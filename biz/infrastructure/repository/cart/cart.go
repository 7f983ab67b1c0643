package cart

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartItem struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ClassItemID    string             `bson:"classItemId" json:"classItemId"`
	Email          string             `bson:"email" json:"email"`
	ClassName      string             `bson:"className,omitempty" json:"className,omitempty"`
	ClassPhotoURL  string             `bson:"classPhotoURL,omitempty" json:"classPhotoURL,omitempty"`
	InstructorName string             `bson:"instructorName,omitempty" json:"instructorName,omitempty"`
	Price          float64            `bson:"price" json:"price"`
	CreateTime     time.Time          `bson:"create_time" json:"createTime"`
}
