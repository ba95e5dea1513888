package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tair/electric-cars/internal/car/domain"
	"github.com/tair/electric-cars/pkg/database"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), database.GormConfig(zerolog.Nop()))
	require.NoError(t, err)
	return db, mock
}

var carColumns = []string{"id", "brand", "model", "range_km", "fast_charge_kmh", "price_euro", "date"}

func TestCarRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormCarRepository(db)
	date := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "electric_cars" WHERE "electric_cars"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows(carColumns).AddRow(1, "Tesla", "Model 3", 450, nil, 46380.0, date))

	car, err := repo.FindByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Tesla", car.Brand)
	assert.Equal(t, 450, car.RangeKm)
	assert.Nil(t, car.FastChargeKmh)
	assert.Equal(t, date, car.Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepository_FindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormCarRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "electric_cars"`)).
		WillReturnRows(sqlmock.NewRows(carColumns))

	_, err := repo.FindByID(context.Background(), 999)

	assert.ErrorIs(t, err, domain.ErrCarNotFound)
}

func TestCarRepository_Page(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormCarRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "electric_cars"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "electric_cars" ORDER BY id LIMIT`)).
		WillReturnRows(sqlmock.NewRows(carColumns).
			AddRow(1, "Tesla", "Model 3", 450, 820, 46380.0, time.Now()).
			AddRow(2, "Kia", "EV6", 510, 900, 48000.0, time.Now()))
	mock.ExpectCommit()

	cars, total, err := repo.Page(context.Background(), 50, 0)

	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, cars, 2)
	require.NotNil(t, cars[0].FastChargeKmh)
	assert.Equal(t, 820, *cars[0].FastChargeKmh)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepository_PageRollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormCarRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*)`)).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, _, err := repo.Page(context.Background(), 50, 0)

	assert.ErrorContains(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepository_Filter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormCarRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "electric_cars" WHERE price_euro < $1 AND brand LIKE $2 ORDER BY id`)).
		WithArgs("50000", "%Tesla%").
		WillReturnRows(sqlmock.NewRows(carColumns).AddRow(1, "Tesla", "Model 3", 450, 820, 46380.0, time.Now()))

	cars, err := repo.Filter(context.Background(), domain.Predicate{
		Clause: "price_euro < ? AND brand LIKE ?",
		Args:   []interface{}{"50000", "%Tesla%"},
	})

	require.NoError(t, err)
	assert.Len(t, cars, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepository_FilterEmptyPredicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormCarRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "electric_cars" ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows(carColumns))

	cars, err := repo.Filter(context.Background(), domain.Predicate{})

	require.NoError(t, err)
	assert.Empty(t, cars)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepository_Search(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormCarRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE brand LIKE $1 OR model LIKE $2 OR body_style LIKE $3 OR segment LIKE $4 OR power_train LIKE $5 ORDER BY id`)).
		WithArgs("%SUV%", "%SUV%", "%SUV%", "%SUV%", "%SUV%").
		WillReturnRows(sqlmock.NewRows(carColumns).AddRow(3, "Kia", "EV6", 510, 900, 48000.0, time.Now()))

	cars, err := repo.Search(context.Background(), "SUV")

	require.NoError(t, err)
	assert.Len(t, cars, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormCarRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "electric_cars" WHERE "electric_cars"."id" = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "electric_cars"`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), 7))
	assert.ErrorIs(t, repo.Delete(context.Background(), 7), domain.ErrCarNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepository_Add(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormFavoriteRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "favorites"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	fav := &domain.Favorite{CarID: 1, UserID: "alice"}
	require.NoError(t, repo.Add(context.Background(), fav))
	assert.Equal(t, uint(11), fav.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepository_AddTranslatesConstraintErrors(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected error
	}{
		{name: "duplicate pair", code: "23505", expected: domain.ErrFavoriteExists},
		{name: "unknown car", code: "23503", expected: domain.ErrCarNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewGormFavoriteRepository(db)

			mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "favorites"`)).
				WillReturnError(&pgconn.PgError{Code: tt.code})

			err := repo.Add(context.Background(), &domain.Favorite{CarID: 1, UserID: "alice"})

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestFavoriteRepository_Remove(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormFavoriteRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "favorites" WHERE car_id = $1 AND user_id = $2`)).
		WithArgs(1, "alice").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Remove(context.Background(), 1, "alice")

	assert.ErrorIs(t, err, domain.ErrFavoriteNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepository_Exists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormFavoriteRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "favorites" WHERE car_id = $1 AND user_id = $2`)).
		WithArgs(5, "default_user").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.Exists(context.Background(), 5, "default_user")

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFavoriteRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormFavoriteRepository(db)
	favoritedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT c.*, f.created_at AS favorited_at FROM favorites AS f JOIN electric_cars AS c ON f.car_id = c.id WHERE f.user_id = $1 ORDER BY f.created_at DESC`)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "brand", "model", "favorited_at"}).
			AddRow(2, "Kia", "EV6", favoritedAt))

	cars, err := repo.ListByUser(context.Background(), "alice")

	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, uint(2), cars[0].ID)
	assert.Equal(t, "EV6", cars[0].Model)
	assert.Equal(t, favoritedAt, cars[0].FavoritedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
