package dto

// TokenRequest is the login payload exchanged for a bearer token
type TokenRequest struct {
	Email string `json:"email" binding:"required,email" example:"member@classbook.app"`
	Name  string `json:"name,omitempty" binding:"max=120" example:"Jane Doe"`
}

// TokenResponse carries the signed bearer token
type TokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
