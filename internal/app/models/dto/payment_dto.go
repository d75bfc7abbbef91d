package dto

// MaxPrice is the largest amount a NUMERIC(10,2) price column holds
const MaxPrice = 99999999.99

// PaymentIntentRequest asks the processor for a client secret. Price is a decimal amount in the
// configured currency.
type PaymentIntentRequest struct {
	Price *float64 `json:"price" example:"29.99"`
}

// PaymentIntentResponse carries the opaque processor secret for the client SDK
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret" example:"pi_3Nx_secret_abc"`
}

// RecordPaymentRequest is the client's proof of a completed payment
type RecordPaymentRequest struct {
	Email         string  `json:"email" binding:"required,email" example:"member@classbook.app"`
	ClassID       int64   `json:"classId" binding:"required,min=1" example:"7"`
	CartItemID    *int64  `json:"cartItemId,omitempty" binding:"omitempty,min=1" example:"3"`
	TransactionID string  `json:"transactionId" binding:"required,max=255" example:"pi_3Nx..."`
	Amount        float64 `json:"amount" binding:"min=0,max=99999999.99" example:"29.99"`
	Currency      string  `json:"currency,omitempty" binding:"omitempty,len=3" example:"usd"`
}

// RecordPaymentResponse reports the stored payment and the cart item it consumed
type RecordPaymentResponse struct {
	InsertResult InsertResult `json:"insertResult"`
	DeleteResult DeleteResult `json:"deleteResult"`
}
