package dto

// CreateUserRequest is the signup payload
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email" example:"member@classbook.app"`
	Name     string `json:"name" binding:"max=120" example:"Jane Doe"`
	PhotoURL string `json:"photoUrl" binding:"omitempty,url" example:"https://i.pravatar.cc/150"`
}

// SetRoleRequest changes a user's role
type SetRoleRequest struct {
	Role string `json:"role" binding:"required" example:"instructor"`
}

// AdminCheckResponse answers the admin check
type AdminCheckResponse struct {
	Admin bool `json:"admin" example:"false"`
}

// InstructorCheckResponse answers the instructor check
type InstructorCheckResponse struct {
	Instructor bool `json:"instructor" example:"true"`
}
