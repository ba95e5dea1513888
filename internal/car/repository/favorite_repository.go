package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/electric-cars/internal/car/domain"
)

type GormFavoriteRepository struct {
	db *gorm.DB
}

func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// Add inserts the pair. A duplicate pair yields domain.ErrFavoriteExists and
// an unknown car yields domain.ErrCarNotFound.
func (r *GormFavoriteRepository) Add(ctx context.Context, favorite *domain.Favorite) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(favorite).Error
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrFavoriteExists
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrCarNotFound
	}
	return err
}

func (r *GormFavoriteRepository) Remove(ctx context.Context, carID uint, userID string) error {
	res := r.db.WithContext(ctx).
		Where("car_id = ? AND user_id = ?", carID, userID).
		Delete(&domain.Favorite{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrFavoriteNotFound
	}
	return nil
}

func (r *GormFavoriteRepository) Exists(ctx context.Context, carID uint, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("car_id = ? AND user_id = ?", carID, userID).
		Count(&count).Error
	return count > 0, err
}

// ListByUser returns the user's favorited cars, newest favorite first.
func (r *GormFavoriteRepository) ListByUser(ctx context.Context, userID string) ([]domain.FavoriteCar, error) {
	var cars []domain.FavoriteCar
	err := r.db.WithContext(ctx).
		Table("favorites AS f").
		Select("c.*, f.created_at AS favorited_at").
		Joins("JOIN electric_cars AS c ON f.car_id = c.id").
		Where("f.user_id = ?", userID).
		Order("f.created_at DESC").
		Scan(&cars).Error
	return cars, err
}
