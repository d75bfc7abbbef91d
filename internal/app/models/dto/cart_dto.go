package dto

// AddCartItemRequest stages a class in the caller's cart. Email is optional; when present it
// must match the authenticated identity. A nil price is filled from the catalog.
type AddCartItemRequest struct {
	Email   string   `json:"email" binding:"omitempty,email" example:"member@classbook.app"`
	ClassID int64    `json:"classId" binding:"required,min=1" example:"7"`
	Price   *float64 `json:"price,omitempty" binding:"omitempty,min=0,max=99999999.99" example:"29.99"`
}
