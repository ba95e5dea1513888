package query

import (
	"context"

	"github.com/tair/electric-cars/internal/car/domain"
	"github.com/tair/electric-cars/pkg/apperror"
)

// ExportCarsQuery selects the whole catalogue for download
type ExportCarsQuery struct{}

type ExportCarsHandler struct {
	repo domain.CarRepository
}

func NewExportCarsHandler(repo domain.CarRepository) *ExportCarsHandler {
	return &ExportCarsHandler{repo: repo}
}

func (h *ExportCarsHandler) Handle(ctx context.Context, _ ExportCarsQuery) ([]domain.ElectricCar, error) {
	cars, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Store("Error exporting data", err)
	}
	return nonNil(cars), nil
}
