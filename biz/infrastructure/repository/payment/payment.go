package payment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment 支付流水, 写入后不再修改
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email         string             `bson:"email" json:"email"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Price         float64            `bson:"price" json:"price"`
	Quantity      int64              `bson:"quantity" json:"quantity"`
	CartItems     []string           `bson:"cartItems" json:"cartItems"`
	ClassItems    []string           `bson:"classItems" json:"classItems"`
	ClassNames    []string           `bson:"classNames,omitempty" json:"classNames,omitempty"`
	Status        string             `bson:"status" json:"status"`
	Date          time.Time          `bson:"date" json:"date"`
}
