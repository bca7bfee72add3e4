package domain

import (
	"encoding/json"
	"time"
)

// DishRecord is the persisted shape of a dish in the menu file.
// Description is an ordered rich-text payload owned by the client;
// the backend stores and returns it without looking inside.
type DishRecord struct {
	Name        string             `json:"name"`
	ImagePath   string             `json:"image_path"`
	Description []json.RawMessage  `json:"description,omitempty"`
	Ratings     map[string]float64 `json:"ratings"`
}

// DishView is the client-facing projection of a DishRecord.
type DishView struct {
	Name          string            `json:"name"`
	ImagePath     string            `json:"image_path"`
	Description   []json.RawMessage `json:"description,omitempty"`
	AverageRating float64           `json:"average_rating"`
	YourRating    *float64          `json:"your_rating,omitempty"`
}

// DishInput carries the fields accepted by the add and edit operations.
type DishInput struct {
	Name        string
	ImageBytes  []byte
	Description []json.RawMessage
}

type RateRequest struct {
	UserID string  `json:"user_id"`
	Rating float64 `json:"rating"`
}

const (
	EventDishAdded   = "dish_added"
	EventDishUpdated = "dish_updated"
	EventDishDeleted = "dish_deleted"
	EventDishRated   = "dish_rated"
)

type DishEvent struct {
	Type      string    `json:"type"`
	DishName  string    `json:"dish_name"`
	UserID    string    `json:"user_id,omitempty"`
	Rating    float64   `json:"rating,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
