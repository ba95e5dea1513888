package query

import (
	"context"
	"strings"

	"github.com/tair/electric-cars/internal/car/domain"
	"github.com/tair/electric-cars/pkg/apperror"
)

// SearchCarsQuery represents a free-text search over brand, model, body
// style, segment and power train
type SearchCarsQuery struct {
	Term string
}

type SearchCarsHandler struct {
	repo domain.CarRepository
}

func NewSearchCarsHandler(repo domain.CarRepository) *SearchCarsHandler {
	return &SearchCarsHandler{repo: repo}
}

func (h *SearchCarsHandler) Handle(ctx context.Context, q SearchCarsQuery) ([]domain.ElectricCar, error) {
	if strings.TrimSpace(q.Term) == "" {
		return nil, apperror.Validation("Search query is required")
	}

	cars, err := h.repo.Search(ctx, q.Term)
	if err != nil {
		return nil, apperror.Store("Error searching data", err)
	}
	return nonNil(cars), nil
}
