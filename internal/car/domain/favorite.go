package domain

import (
	"context"
	"time"
)

// DefaultUserID is the placeholder identity used when a caller names no user.
const DefaultUserID = "default_user"

// Favorite marks a car as favorited by a user
type Favorite struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	CarID     uint        `json:"car_id" gorm:"not null;uniqueIndex:unique_favorite,priority:1"`
	UserID    string      `json:"user_id" gorm:"size:100;not null;default:'default_user';uniqueIndex:unique_favorite,priority:2"`
	CreatedAt time.Time   `json:"created_at"`
	Car       ElectricCar `json:"-" gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name
func (Favorite) TableName() string {
	return "favorites"
}

// FavoriteCar is a car row joined with the time it was favorited
type FavoriteCar struct {
	ElectricCar
	FavoritedAt time.Time `json:"favorited_at"`
}

// FavoriteRepository defines the contract for favorites data access
type FavoriteRepository interface {
	Add(ctx context.Context, favorite *Favorite) error
	Remove(ctx context.Context, carID uint, userID string) error
	Exists(ctx context.Context, carID uint, userID string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]FavoriteCar, error)
}
