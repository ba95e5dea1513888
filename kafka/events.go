package kafka

import "time"

// Event types
const (
	EventTypeCarDeleted      = "car.deleted"
	EventTypeFavoriteAdded   = "favorite.added"
	EventTypeFavoriteRemoved = "favorite.removed"
)

// Kafka topics
const (
	TopicCatalogue = "electric-cars-catalogue"
	TopicFavorites = "electric-cars-favorites"
)

// Event is the envelope of every message published by the service
type Event struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	CarID     uint      `json:"car_id"`
	UserID    string    `json:"user_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
