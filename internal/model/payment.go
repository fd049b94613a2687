package model

import "time"

// Payment records a completed pro-user purchase
type Payment struct {
	ID            string    `json:"_id"`
	Email         string    `json:"email"`
	Name          string    `json:"name,omitempty"`
	Amount        float64   `json:"amount"`
	TransactionID string    `json:"transactionId"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreatePaymentRequest is the payload of POST /payments. The payer is the
// authenticated user, never a body field.
type CreatePaymentRequest struct {
	Name          string  `json:"name"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transactionId"`
}

// PaymentIntentRequest asks the gateway for a client secret. Price is in major units.
type PaymentIntentRequest struct {
	Price *float64 `json:"price" binding:"required"`
}

// PaymentResult is returned by POST /payments: the payment insert and the role update.
type PaymentResult struct {
	Result         InsertResult `json:"result"`
	UpdateUserRole UpdateResult `json:"updateUserRole"`
}
