package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. Checkout only ever writes "created"; the remaining
// transitions belong to a payment webhook handler outside this service.
const (
	OrderStatusCreated  = "created"
	OrderStatusPaid     = "paid"
	OrderStatusCanceled = "canceled"
	OrderStatusFailed   = "failed"
)

// Order records a checkout attempt and its computed total. ProductID holds
// only the first cart line's product; Quantity aggregates the whole cart.
type Order struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProductID         string             `json:"product_id" bson:"product_id"`
	Quantity          int                `json:"quantity" bson:"quantity"`
	AmountTotalCents  int64              `json:"amount_total_cents" bson:"amount_total_cents"`
	Currency          string             `json:"currency" bson:"currency"`
	Status            string             `json:"status" bson:"status"`
	CustomerEmail     string             `json:"customer_email,omitempty" bson:"customer_email,omitempty"`
	CheckoutSessionID string             `json:"checkout_session_id,omitempty" bson:"checkout_session_id,omitempty"`
	CreatedAt         *time.Time         `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt         *time.Time         `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// CheckoutItem is a single cart line in a checkout request.
type CheckoutItem struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// CheckoutRequest is the POST /api/checkout/create-session payload. Items may
// be empty at the binding layer; the checkout service rejects empty carts so
// the error message stays consistent.
type CheckoutRequest struct {
	Items         []CheckoutItem `json:"items"`
	CustomerEmail string         `json:"customer_email" binding:"omitempty,email"`
}
