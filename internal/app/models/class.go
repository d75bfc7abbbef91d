package models

import "time"

// ClassOffering is a bookable class submitted by an instructor
type ClassOffering struct {
	ID              int64       `json:"id" db:"id" example:"7"`
	Name            string      `json:"name" db:"name" example:"Morning Vinyasa"`
	Image           string      `json:"image" db:"image"`
	InstructorName  string      `json:"instructorName" db:"instructor_name" example:"Anika Rao"`
	InstructorEmail string      `json:"instructorEmail" db:"instructor_email" example:"anika@classbook.app"`
	Seats           int         `json:"seats" db:"seats" example:"20"`
	Enrolled        int         `json:"enrolled" db:"enrolled" example:"4"`
	Price           float64     `json:"price" db:"price" example:"29.99"`
	Status          ClassStatus `json:"status" db:"status" example:"approved"`
	Feedback        string      `json:"feedback,omitempty" db:"feedback"`
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
}

// AvailableSeats returns the number of seats not yet paid for
func (c *ClassOffering) AvailableSeats() int {
	if c.Enrolled >= c.Seats {
		return 0
	}
	return c.Seats - c.Enrolled
}
