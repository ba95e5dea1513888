package query

import (
	"context"
	"errors"

	"github.com/tair/electric-cars/internal/car/domain"
	"github.com/tair/electric-cars/internal/car/filter"
	"github.com/tair/electric-cars/pkg/apperror"
)

// FilterCarsQuery carries the client filter descriptors
type FilterCarsQuery struct {
	Filters []filter.Descriptor
}

type FilterCarsHandler struct {
	repo       domain.CarRepository
	translator *filter.Translator
}

func NewFilterCarsHandler(repo domain.CarRepository, translator *filter.Translator) *FilterCarsHandler {
	return &FilterCarsHandler{repo: repo, translator: translator}
}

func (h *FilterCarsHandler) Handle(ctx context.Context, q FilterCarsQuery) ([]domain.ElectricCar, error) {
	if len(q.Filters) == 0 {
		return nil, apperror.Validation("Filters array is required")
	}

	predicate, err := h.translator.Translate(q.Filters)
	if err != nil {
		var fieldErr *filter.FieldError
		if errors.As(err, &fieldErr) {
			return nil, apperror.Validation("Invalid filter field: " + fieldErr.Field)
		}
		return nil, apperror.InvalidInput("Invalid filters", err)
	}

	cars, err := h.repo.Filter(ctx, predicate)
	if err != nil {
		return nil, apperror.Store("Error filtering data", err)
	}
	return nonNil(cars), nil
}
