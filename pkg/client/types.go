package client

import "time"

// Car mirrors an electric_cars row as served by the API
type Car struct {
	ID             uint    `json:"id"`
	Brand          string  `json:"brand"`
	Model          string  `json:"model"`
	AccelSec       float64 `json:"accel_sec"`
	TopSpeedKmh    int     `json:"top_speed_kmh"`
	RangeKm        int     `json:"range_km"`
	EfficiencyWhKm int     `json:"efficiency_whkm"`
	FastChargeKmh  *int    `json:"fast_charge_kmh"`
	RapidCharge    string  `json:"rapid_charge"`
	PowerTrain     string  `json:"power_train"`
	PlugType       string  `json:"plug_type"`
	BodyStyle      string  `json:"body_style"`
	Segment        string  `json:"segment"`
	Seats          int     `json:"seats"`
	PriceEuro      float64 `json:"price_euro"`
	Date           string  `json:"date"`
}

// FavoriteCar is a car with the time it was favorited
type FavoriteCar struct {
	Car
	FavoritedAt time.Time `json:"favorited_at"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// CarPage is one page of the catalogue
type CarPage struct {
	Cars       []Car
	Pagination Pagination
}

// Filter is one server-side filter descriptor. Value may be a string or a
// number.
type Filter struct {
	Field    string      `json:"field"`
	Operator string      `json:"operator"`
	Value    interface{} `json:"value"`
}

// Health is the liveness payload
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
