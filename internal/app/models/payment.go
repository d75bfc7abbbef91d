package models

import "time"

// Payment is an immutable record of a completed checkout
type Payment struct {
	ID            int64     `json:"id" db:"id" example:"11"`
	Email         string    `json:"email" db:"email" example:"member@classbook.app"`
	ClassID       int64     `json:"classId" db:"class_id" example:"7"`
	CartItemID    *int64    `json:"cartItemId,omitempty" db:"cart_item_id" example:"3"`
	TransactionID string    `json:"transactionId" db:"transaction_id" example:"pi_3Nx..."`
	Amount        float64   `json:"amount" db:"amount" example:"29.99"`
	Currency      string    `json:"currency" db:"currency" example:"usd"`
	CreatedAt     time.Time `json:"date" db:"created_at"`
}

// Enrollment pairs a payment with the class it paid for. It is derived, never stored.
type Enrollment struct {
	Payment Payment       `json:"payment"`
	Class   ClassOffering `json:"class"`
}
