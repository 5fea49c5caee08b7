package model

import "time"

// Game represents a catalog entry
type Game struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Rating      *float64  `json:"rating,omitempty"` // Pointer for optional field
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// GameRequest is used for creating or updating a game. Price is a pointer
// so that an explicit 0 is distinguishable from a missing field; Rating is
// a pointer because it is optional.
type GameRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Rating      *float64 `json:"rating"`
}
