package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is a catalog entry. Products are read-only from this service's
// perspective; only the seeder ever inserts them.
type Product struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	PriceCents  int64              `json:"price_cents" bson:"price_cents"`
	Currency    string             `json:"currency" bson:"currency"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	InStock     bool               `json:"in_stock" bson:"in_stock"`
	Tags        []string           `json:"tags,omitempty" bson:"tags,omitempty"`
}
