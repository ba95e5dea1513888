package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/tair/electric-cars/internal/car/domain"
)

// AutoMigrate creates or updates the catalogue tables. favorites depends
// on electric_cars through a cascading foreign key.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.ElectricCar{}, &domain.Favorite{})
}

type GormCarRepository struct {
	db *gorm.DB
}

func NewGormCarRepository(db *gorm.DB) *GormCarRepository {
	return &GormCarRepository{db: db}
}

// Page returns one page ordered by id together with the table size. Both
// reads share a read-only repeatable-read transaction so the total matches
// the page.
func (r *GormCarRepository) Page(ctx context.Context, limit, offset int) ([]domain.ElectricCar, int64, error) {
	var (
		cars  []domain.ElectricCar
		total int64
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.ElectricCar{}).Count(&total).Error; err != nil {
			return err
		}
		return tx.Order("id").Limit(limit).Offset(offset).Find(&cars).Error
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, 0, err
	}
	return cars, total, nil
}

func (r *GormCarRepository) FindByID(ctx context.Context, id uint) (*domain.ElectricCar, error) {
	var car domain.ElectricCar
	err := r.db.WithContext(ctx).First(&car, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCarNotFound
	}
	if err != nil {
		return nil, err
	}
	return &car, nil
}

// Search matches term as a substring of any of the search columns.
func (r *GormCarRepository) Search(ctx context.Context, term string) ([]domain.ElectricCar, error) {
	conditions := make([]string, len(domain.SearchColumns))
	args := make([]interface{}, len(domain.SearchColumns))
	pattern := "%" + term + "%"
	for i, col := range domain.SearchColumns {
		conditions[i] = col + " LIKE ?"
		args[i] = pattern
	}

	var cars []domain.ElectricCar
	err := r.db.WithContext(ctx).
		Where(strings.Join(conditions, " OR "), args...).
		Order("id").
		Find(&cars).Error
	return cars, err
}

func (r *GormCarRepository) Filter(ctx context.Context, predicate domain.Predicate) ([]domain.ElectricCar, error) {
	q := r.db.WithContext(ctx)
	if !predicate.IsEmpty() {
		q = q.Where(predicate.Clause, predicate.Args...)
	}

	var cars []domain.ElectricCar
	err := q.Order("id").Find(&cars).Error
	return cars, err
}

func (r *GormCarRepository) FindAll(ctx context.Context) ([]domain.ElectricCar, error) {
	var cars []domain.ElectricCar
	err := r.db.WithContext(ctx).Order("id").Find(&cars).Error
	return cars, err
}

func (r *GormCarRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.ElectricCar{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCarNotFound
	}
	return nil
}

func (r *GormCarRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.ElectricCar{}).Count(&count).Error
	return count, err
}
