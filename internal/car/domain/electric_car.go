package domain

import (
	"context"
	"time"
)

// ElectricCar represents one vehicle of the catalogue
type ElectricCar struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Brand          string    `json:"brand" gorm:"size:100"`
	Model          string    `json:"model" gorm:"size:150"`
	AccelSec       float64   `json:"accel_sec"`
	TopSpeedKmh    int       `json:"top_speed_kmh"`
	RangeKm        int       `json:"range_km"`
	EfficiencyWhkm int       `json:"efficiency_whkm"`
	FastChargeKmh  *int      `json:"fast_charge_kmh"`
	RapidCharge    string    `json:"rapid_charge" gorm:"size:10"`
	PowerTrain     string    `json:"power_train" gorm:"size:20"`
	PlugType       string    `json:"plug_type" gorm:"size:50"`
	BodyStyle      string    `json:"body_style" gorm:"size:50"`
	Segment        string    `json:"segment" gorm:"size:10"`
	Seats          int       `json:"seats"`
	PriceEuro      float64   `json:"price_euro"`
	Date           time.Time `json:"date" gorm:"type:date"`
}

// TableName specifies the table name
func (ElectricCar) TableName() string {
	return "electric_cars"
}

// Columns lists the electric_cars columns in table order.
var Columns = []string{
	"id",
	"brand",
	"model",
	"accel_sec",
	"top_speed_kmh",
	"range_km",
	"efficiency_whkm",
	"fast_charge_kmh",
	"rapid_charge",
	"power_train",
	"plug_type",
	"body_style",
	"segment",
	"seats",
	"price_euro",
	"date",
}

// FilterableColumns is the closed set of columns a filter descriptor may name.
var FilterableColumns = Columns

// SearchColumns are matched by the free-text search.
var SearchColumns = []string{"brand", "model", "body_style", "segment", "power_train"}

// Values returns the row values in the order of Columns. A missing fast
// charge figure is returned as nil.
func (c ElectricCar) Values() []interface{} {
	var fastCharge interface{}
	if c.FastChargeKmh != nil {
		fastCharge = *c.FastChargeKmh
	}
	var date interface{}
	if !c.Date.IsZero() {
		date = c.Date.Format("2006-01-02")
	}
	return []interface{}{
		c.ID,
		c.Brand,
		c.Model,
		c.AccelSec,
		c.TopSpeedKmh,
		c.RangeKm,
		c.EfficiencyWhkm,
		fastCharge,
		c.RapidCharge,
		c.PowerTrain,
		c.PlugType,
		c.BodyStyle,
		c.Segment,
		c.Seats,
		c.PriceEuro,
		date,
	}
}

// Predicate is a parameterized WHERE fragment with its positional arguments.
type Predicate struct {
	Clause string
	Args   []interface{}
}

// IsEmpty reports whether the predicate selects every row.
func (p Predicate) IsEmpty() bool {
	return p.Clause == ""
}

// CarRepository defines the contract for electric car data access
type CarRepository interface {
	Page(ctx context.Context, limit, offset int) ([]ElectricCar, int64, error)
	FindByID(ctx context.Context, id uint) (*ElectricCar, error)
	Search(ctx context.Context, term string) ([]ElectricCar, error)
	Filter(ctx context.Context, predicate Predicate) ([]ElectricCar, error)
	FindAll(ctx context.Context) ([]ElectricCar, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
