package car

import (
	"gorm.io/gorm"

	"github.com/tair/electric-cars/internal/car/delivery/http"
	"github.com/tair/electric-cars/internal/car/domain"
	"github.com/tair/electric-cars/internal/car/repository"
)

// ProvideCarRepository provides the traced gorm car repository
func ProvideCarRepository(db *gorm.DB) domain.CarRepository {
	return repository.NewTracingCarRepository(repository.NewGormCarRepository(db))
}

// ProvideFavoriteRepository provides the traced gorm favorite repository
func ProvideFavoriteRepository(db *gorm.DB) domain.FavoriteRepository {
	return repository.NewTracingFavoriteRepository(repository.NewGormFavoriteRepository(db))
}

// ProvidePinger exposes the pool behind db for readiness checks
func ProvidePinger(db *gorm.DB) (http.Pinger, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return sqlDB, nil
}
