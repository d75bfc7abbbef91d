package models

import "time"

// CartItem is a class staged by a user before payment. Price is a snapshot taken when the
// item was added.
type CartItem struct {
	ID        int64     `json:"id" db:"id" example:"3"`
	Email     string    `json:"email" db:"email" example:"member@classbook.app"`
	ClassID   int64     `json:"classId" db:"class_id" example:"7"`
	Name      string    `json:"name" db:"name" example:"Morning Vinyasa"`
	Image     string    `json:"image" db:"image"`
	Price     float64   `json:"price" db:"price" example:"29.99"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
