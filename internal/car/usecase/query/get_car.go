package query

import (
	"context"
	"errors"

	"github.com/tair/electric-cars/internal/car/domain"
	"github.com/tair/electric-cars/pkg/apperror"
)

// GetCarQuery represents the query to get a car by id
type GetCarQuery struct {
	ID uint
}

type GetCarHandler struct {
	repo domain.CarRepository
}

func NewGetCarHandler(repo domain.CarRepository) *GetCarHandler {
	return &GetCarHandler{repo: repo}
}

func (h *GetCarHandler) Handle(ctx context.Context, q GetCarQuery) (*domain.ElectricCar, error) {
	car, err := h.repo.FindByID(ctx, q.ID)
	if errors.Is(err, domain.ErrCarNotFound) {
		return nil, apperror.NotFound("Electric car not found")
	}
	if err != nil {
		return nil, apperror.Store("Error fetching data", err)
	}
	return car, nil
}
