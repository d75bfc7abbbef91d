package models

import "time"

// Instructor is a public catalog entry shown on the instructors page
type Instructor struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	Name         string    `json:"name" db:"name" example:"Anika Rao"`
	Email        string    `json:"email" db:"email" example:"anika@classbook.app"`
	Image        string    `json:"image" db:"image"`
	ClassesTaken int       `json:"classesTaken" db:"classes_taken" example:"12"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Review is a testimonial shown on the landing page
type Review struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Name      string    `json:"name" db:"name" example:"Sam"`
	Image     string    `json:"image" db:"image"`
	Rating    float64   `json:"rating" db:"rating" example:"4.5"`
	Details   string    `json:"details" db:"details"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
