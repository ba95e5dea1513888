package query

import (
	"context"
	"errors"
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/electric-cars/internal/car/cartest"
	"github.com/tair/electric-cars/internal/car/domain"
	"github.com/tair/electric-cars/internal/car/filter"
	"github.com/tair/electric-cars/pkg/apperror"
)

func requireStatus(t *testing.T, err error, status int) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, status, appErr.StatusCode)
	return appErr
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int64
		totalPages int64
		hasNext    bool
		hasPrev    bool
	}{
		{name: "two rows", page: 1, limit: 50, total: 2, totalPages: 1},
		{name: "empty table", page: 1, limit: 50, total: 0, totalPages: 0},
		{name: "exact multiple", page: 2, limit: 10, total: 30, totalPages: 3, hasNext: true, hasPrev: true},
		{name: "last partial page", page: 4, limit: 10, total: 31, totalPages: 4, hasPrev: true},
		{name: "past the end", page: 9, limit: 10, total: 31, totalPages: 4, hasPrev: true},
		{name: "max limit", page: 1, limit: math.MaxInt, total: 2, totalPages: 1},
		{name: "max limit empty", page: 1, limit: math.MaxInt, total: 0, totalPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)

			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.hasNext, p.HasNext)
			assert.Equal(t, tt.hasPrev, p.HasPrev)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}

func TestListCars_Defaults(t *testing.T) {
	store := cartest.NewStore(cartest.Car(1, "Tesla", "Model 3", 46380, 450), cartest.Car(2, "Kia", "EV6", 48000, 510))
	h := NewListCarsHandler(store.Cars())

	page, err := h.Handle(context.Background(), ListCarsQuery{Page: 0, Limit: -3})

	require.NoError(t, err)
	assert.Len(t, page.Cars, 2)
	assert.Equal(t, Pagination{Page: 1, Limit: 50, Total: 2, TotalPages: 1}, page.Pagination)
}

func TestListCars_SecondPage(t *testing.T) {
	store := cartest.NewStore(
		cartest.Car(1, "A", "a", 1, 1),
		cartest.Car(2, "B", "b", 1, 1),
		cartest.Car(3, "C", "c", 1, 1),
	)
	h := NewListCarsHandler(store.Cars())

	page, err := h.Handle(context.Background(), ListCarsQuery{Page: 2, Limit: 2})

	require.NoError(t, err)
	require.Len(t, page.Cars, 1)
	assert.Equal(t, uint(3), page.Cars[0].ID)
	assert.False(t, page.Pagination.HasNext)
	assert.True(t, page.Pagination.HasPrev)
}

func TestListCars_HugePageAndLimit(t *testing.T) {
	store := cartest.NewStore(cartest.Car(1, "Tesla", "Model 3", 46380, 450), cartest.Car(2, "Kia", "EV6", 48000, 510))
	h := NewListCarsHandler(store.Cars())

	page, err := h.Handle(context.Background(), ListCarsQuery{Page: 1, Limit: math.MaxInt})
	require.NoError(t, err)
	assert.Len(t, page.Cars, 2)
	assert.Equal(t, int64(1), page.Pagination.TotalPages)

	page, err = h.Handle(context.Background(), ListCarsQuery{Page: math.MaxInt, Limit: math.MaxInt})
	require.NoError(t, err)
	assert.Empty(t, page.Cars)
	assert.Equal(t, int64(1), page.Pagination.TotalPages)
	assert.True(t, page.Pagination.HasPrev)
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, pageOffset(1, math.MaxInt))
	assert.Equal(t, 20, pageOffset(3, 10))
	assert.Equal(t, math.MaxInt, pageOffset(3, math.MaxInt))
	assert.Equal(t, math.MaxInt, pageOffset(math.MaxInt, 2))
}

func TestListCars_StoreError(t *testing.T) {
	store := cartest.NewStore()
	store.Err = errors.New("too many connections")

	_, err := NewListCarsHandler(store.Cars()).Handle(context.Background(), ListCarsQuery{})

	appErr := requireStatus(t, err, http.StatusInternalServerError)
	assert.Equal(t, "Error fetching data", appErr.Message)
	assert.Equal(t, "too many connections", appErr.Cause())
}

func TestGetCar(t *testing.T) {
	store := cartest.NewStore(cartest.Car(1, "Tesla", "Model 3", 46380, 450))
	h := NewGetCarHandler(store.Cars())

	car, err := h.Handle(context.Background(), GetCarQuery{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, "Model 3", car.Model)

	_, err = h.Handle(context.Background(), GetCarQuery{ID: 999})
	appErr := requireStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "Electric car not found", appErr.Message)
}

func TestSearchCars(t *testing.T) {
	store := cartest.NewStore(cartest.Car(1, "Tesla", "Model 3", 46380, 450), cartest.Car(2, "Kia", "EV6", 48000, 510))
	h := NewSearchCarsHandler(store.Cars())

	cars, err := h.Handle(context.Background(), SearchCarsQuery{Term: "Tes"})
	require.NoError(t, err)
	assert.Len(t, cars, 1)

	cars, err = h.Handle(context.Background(), SearchCarsQuery{Term: "Nothing"})
	require.NoError(t, err)
	assert.NotNil(t, cars)
	assert.Empty(t, cars)
}

func TestSearchCars_RequiresTerm(t *testing.T) {
	h := NewSearchCarsHandler(cartest.NewStore().Cars())

	for _, term := range []string{"", "   "} {
		_, err := h.Handle(context.Background(), SearchCarsQuery{Term: term})
		appErr := requireStatus(t, err, http.StatusBadRequest)
		assert.Equal(t, "Search query is required", appErr.Message)
	}
}

func TestFilterCars_PassesPredicate(t *testing.T) {
	store := cartest.NewStore(cartest.Car(1, "Tesla", "Model 3", 46380, 450))
	h := NewFilterCarsHandler(store.Cars(), filter.NewCarTranslator())

	cars, err := h.Handle(context.Background(), FilterCarsQuery{Filters: []filter.Descriptor{
		{Field: "price_euro", Operator: filter.LessThan, Value: "50000"},
		{Field: "brand", Operator: filter.Contains, Value: "Tesla"},
	}})

	require.NoError(t, err)
	assert.Len(t, cars, 1)
	assert.Equal(t, domain.Predicate{
		Clause: "price_euro < ? AND brand LIKE ?",
		Args:   []interface{}{"50000", "%Tesla%"},
	}, store.LastPredicate)
}

func TestFilterCars_Validation(t *testing.T) {
	h := NewFilterCarsHandler(cartest.NewStore().Cars(), filter.NewCarTranslator())

	_, err := h.Handle(context.Background(), FilterCarsQuery{})
	appErr := requireStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, "Filters array is required", appErr.Message)

	_, err = h.Handle(context.Background(), FilterCarsQuery{Filters: []filter.Descriptor{
		{Field: "password", Operator: filter.Equals, Value: "x"},
	}})
	appErr = requireStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, "Invalid filter field: password", appErr.Message)
}

func TestFilterCars_StoreError(t *testing.T) {
	store := cartest.NewStore()
	store.Err = errors.New("operator does not exist")
	h := NewFilterCarsHandler(store.Cars(), filter.NewCarTranslator())

	_, err := h.Handle(context.Background(), FilterCarsQuery{Filters: []filter.Descriptor{
		{Field: "price_euro", Operator: filter.Contains, Value: "5"},
	}})

	appErr := requireStatus(t, err, http.StatusInternalServerError)
	assert.Equal(t, "Error filtering data", appErr.Message)
}

func TestExportCars(t *testing.T) {
	store := cartest.NewStore(cartest.Car(2, "Kia", "EV6", 48000, 510), cartest.Car(1, "Tesla", "Model 3", 46380, 450))

	cars, err := NewExportCarsHandler(store.Cars()).Handle(context.Background(), ExportCarsQuery{})

	require.NoError(t, err)
	require.Len(t, cars, 2)
	assert.Equal(t, uint(1), cars[0].ID)
}

func TestFavoritesQueries(t *testing.T) {
	store := cartest.NewStore(cartest.Car(1, "Tesla", "Model 3", 46380, 450), cartest.Car(2, "Kia", "EV6", 48000, 510))
	favs := store.Favorites()
	require.NoError(t, favs.Add(context.Background(), &domain.Favorite{CarID: 1, UserID: domain.DefaultUserID}))
	require.NoError(t, favs.Add(context.Background(), &domain.Favorite{CarID: 2, UserID: domain.DefaultUserID}))
	require.NoError(t, favs.Add(context.Background(), &domain.Favorite{CarID: 2, UserID: "alice"}))

	list, err := NewListFavoritesHandler(favs).Handle(context.Background(), ListFavoritesQuery{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, uint(2), list[0].ID, "newest favorite first")

	check := NewCheckFavoriteHandler(favs)
	ok, err := check.Handle(context.Background(), CheckFavoriteQuery{CarID: 1, UserID: "alice"})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = check.Handle(context.Background(), CheckFavoriteQuery{CarID: 2, UserID: "alice"})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFavoritesQueries_StoreError(t *testing.T) {
	store := cartest.NewStore()
	store.Err = errors.New("down")

	_, err := NewListFavoritesHandler(store.Favorites()).Handle(context.Background(), ListFavoritesQuery{})
	assert.Equal(t, "Error fetching favorites", requireStatus(t, err, http.StatusInternalServerError).Message)

	_, err = NewCheckFavoriteHandler(store.Favorites()).Handle(context.Background(), CheckFavoriteQuery{CarID: 1})
	assert.Equal(t, "Error checking favorite status", requireStatus(t, err, http.StatusInternalServerError).Message)
}
