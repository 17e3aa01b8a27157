package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Lead is a contact captured from the storefront. Leads are written once at
// intake and never updated or deleted by this service.
type Lead struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Email    string             `json:"email" bson:"email"`
	Phone    string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Interest string             `json:"interest,omitempty" bson:"interest,omitempty"`
	Source   string             `json:"source" bson:"source"`
	Notes    string             `json:"notes,omitempty" bson:"notes,omitempty"`
}

// LeadRequest is the POST /api/leads payload.
type LeadRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Interest string `json:"interest"`
	Source   string `json:"source"`
	Notes    string `json:"notes"`
}
