package dto

// CreateClassRequest is an instructor's class submission
type CreateClassRequest struct {
	Name           string  `json:"name" binding:"required,max=200" example:"Morning Vinyasa"`
	Image          string  `json:"image" binding:"omitempty,url" example:"https://img.classbook.app/vinyasa.jpg"`
	InstructorName string  `json:"instructorName" binding:"max=120" example:"Anika Rao"`
	Seats          int     `json:"seats" binding:"required,min=1" example:"20"`
	Price          float64 `json:"price" binding:"min=0,max=99999999.99" example:"29.99"`
}

// UpdateClassStatusRequest moves a class between pending, approved and denied
type UpdateClassStatusRequest struct {
	Status   string `json:"status" binding:"required" example:"approved"`
	Feedback string `json:"feedback,omitempty" binding:"max=1000" example:"Please add a clearer description"`
}
