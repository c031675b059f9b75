package models

// DefaultBusinessImage is stored when a business is created without an image URL.
const DefaultBusinessImage = "https://via.placeholder.com/400x250?text=No+Image+Available"

// BusinessDB represents a business row in the database
// swagger:model Business
type BusinessDB struct {
	BusinessID  int64    `json:"id" db:"id"`
	UserID      *int64   `json:"userId" db:"user_id"` // Owner, null for seeded rows
	Name        string   `json:"name" db:"name"`
	Category    string   `json:"category" db:"category"`
	Location    string   `json:"location" db:"location"`
	Description string   `json:"description" db:"description"`
	Phone       string   `json:"phone" db:"phone"`
	Email       string   `json:"email" db:"email"`
	Website     string   `json:"website" db:"website"`
	Hours       string   `json:"hours" db:"hours"`
	Image       string   `json:"image" db:"image"`
	Latitude    *float64 `json:"latitude" db:"latitude"`
	Longitude   *float64 `json:"longitude" db:"longitude"`
	Rating      float64  `json:"rating" db:"rating"` // Mean of review ratings, 0 without reviews
}

// BusinessInput holds the client-supplied fields of a new business.
type BusinessInput struct {
	Name        string `validate:"required"`
	Category    string `validate:"required"`
	Location    string `validate:"required"`
	Description string `validate:"required"`
	Phone       string
	Email       string
	Website     string
	Hours       string
	Image       string
	Latitude    *float64
	Longitude   *float64
}
