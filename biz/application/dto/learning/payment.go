package learning

import "time"

type PaymentIntentReq struct {
	Price any `json:"price"`
}

type PaymentIntentResp struct {
	ClientSecret string `json:"clientSecret"`
}

type RecordPaymentReq struct {
	Email         string   `json:"email" vd:"len($)>0"`
	TransactionID string   `json:"transactionId"`
	Price         any      `json:"price"`
	Quantity      int64    `json:"quantity"`
	CartItems     []string `json:"cartItems"`
	ClassItems    []string `json:"classItems"`
	ClassNames    []string `json:"classNames"`
	Status        string   `json:"status"`
}

type RecordPaymentResp struct {
	InsertResult InsertResp `json:"insertResult"`
	DeleteResult DeleteResp `json:"deleteResult"`
}

type PaymentInfo struct {
	ID            string    `json:"_id"`
	Email         string    `json:"email"`
	TransactionID string    `json:"transactionId"`
	Price         float64   `json:"price"`
	Quantity      int64     `json:"quantity"`
	CartItems     []string  `json:"cartItems"`
	ClassItems    []string  `json:"classItems"`
	ClassNames    []string  `json:"classNames,omitempty"`
	Status        string    `json:"status"`
	Date          time.Time `json:"date"`
}
