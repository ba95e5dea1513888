package query

import (
	"context"
	"math"

	"github.com/tair/electric-cars/internal/car/domain"
	"github.com/tair/electric-cars/pkg/apperror"
)

const (
	DefaultPage  = 1
	DefaultLimit = 50
)

// ListCarsQuery represents the query to list one page of cars
type ListCarsQuery struct {
	Page  int
	Limit int
}

// Pagination describes the position of a page within the whole table
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPagination derives page counts; totalPages is ceil(total/limit).
func NewPagination(page, limit int, total int64) Pagination {
	l := int64(limit)
	totalPages := total / l
	if total%l != 0 {
		totalPages++
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    int64(page) < totalPages,
		HasPrev:    page > 1,
	}
}

// CarPage is one page of cars
type CarPage struct {
	Cars       []domain.ElectricCar
	Pagination Pagination
}

// ListCarsHandler handles list cars query
type ListCarsHandler struct {
	repo domain.CarRepository
}

func NewListCarsHandler(repo domain.CarRepository) *ListCarsHandler {
	return &ListCarsHandler{repo: repo}
}

// Handle executes the list cars query. Non-positive page or limit values
// fall back to the defaults.
func (h *ListCarsHandler) Handle(ctx context.Context, q ListCarsQuery) (*CarPage, error) {
	if q.Page <= 0 {
		q.Page = DefaultPage
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}

	cars, total, err := h.repo.Page(ctx, q.Limit, pageOffset(q.Page, q.Limit))
	if err != nil {
		return nil, apperror.Store("Error fetching data", err)
	}

	return &CarPage{
		Cars:       nonNil(cars),
		Pagination: NewPagination(q.Page, q.Limit, total),
	}, nil
}

// pageOffset is (page-1)*limit, clamped to math.MaxInt when the product
// would overflow.
func pageOffset(page, limit int) int {
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
