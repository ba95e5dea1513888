package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/electric-cars/internal/car/domain"
)

var tracer = otel.Tracer("electric-cars-repository")

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// TracingCarRepository wraps a CarRepository with spans
type TracingCarRepository struct {
	next domain.CarRepository
}

func NewTracingCarRepository(next domain.CarRepository) *TracingCarRepository {
	return &TracingCarRepository{next: next}
}

func (r *TracingCarRepository) Page(ctx context.Context, limit, offset int) (cars []domain.ElectricCar, total int64, err error) {
	ctx, span := tracer.Start(ctx, "repository.Page",
		trace.WithAttributes(
			attribute.Int("page.limit", limit),
			attribute.Int("page.offset", offset),
		),
	)
	defer func() { endSpan(span, err) }()

	cars, total, err = r.next.Page(ctx, limit, offset)
	span.SetAttributes(attribute.Int("result.count", len(cars)), attribute.Int64("result.total", total))
	return cars, total, err
}

func (r *TracingCarRepository) FindByID(ctx context.Context, id uint) (car *domain.ElectricCar, err error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("car.id", int(id))),
	)
	defer func() { endSpan(span, err) }()

	car, err = r.next.FindByID(ctx, id)
	if car != nil {
		span.SetAttributes(attribute.String("car.brand", car.Brand), attribute.String("car.model", car.Model))
	}
	return car, err
}

func (r *TracingCarRepository) Search(ctx context.Context, term string) (cars []domain.ElectricCar, err error) {
	ctx, span := tracer.Start(ctx, "repository.Search",
		trace.WithAttributes(attribute.String("search.term", term)),
	)
	defer func() { endSpan(span, err) }()

	cars, err = r.next.Search(ctx, term)
	span.SetAttributes(attribute.Int("result.count", len(cars)))
	return cars, err
}

func (r *TracingCarRepository) Filter(ctx context.Context, predicate domain.Predicate) (cars []domain.ElectricCar, err error) {
	ctx, span := tracer.Start(ctx, "repository.Filter",
		trace.WithAttributes(
			attribute.String("filter.clause", predicate.Clause),
			attribute.Int("filter.params", len(predicate.Args)),
		),
	)
	defer func() { endSpan(span, err) }()

	cars, err = r.next.Filter(ctx, predicate)
	span.SetAttributes(attribute.Int("result.count", len(cars)))
	return cars, err
}

func (r *TracingCarRepository) FindAll(ctx context.Context) (cars []domain.ElectricCar, err error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll")
	defer func() { endSpan(span, err) }()

	cars, err = r.next.FindAll(ctx)
	span.SetAttributes(attribute.Int("result.count", len(cars)))
	return cars, err
}

func (r *TracingCarRepository) Delete(ctx context.Context, id uint) (err error) {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.Int("car.id", int(id))),
	)
	defer func() { endSpan(span, err) }()

	return r.next.Delete(ctx, id)
}

func (r *TracingCarRepository) Count(ctx context.Context) (count int64, err error) {
	ctx, span := tracer.Start(ctx, "repository.Count")
	defer func() { endSpan(span, err) }()

	count, err = r.next.Count(ctx)
	span.SetAttributes(attribute.Int64("result.total", count))
	return count, err
}

// TracingFavoriteRepository wraps a FavoriteRepository with spans
type TracingFavoriteRepository struct {
	next domain.FavoriteRepository
}

func NewTracingFavoriteRepository(next domain.FavoriteRepository) *TracingFavoriteRepository {
	return &TracingFavoriteRepository{next: next}
}

func favoriteAttrs(carID uint, userID string) trace.SpanStartOption {
	return trace.WithAttributes(
		attribute.Int("favorite.car_id", int(carID)),
		attribute.String("favorite.user_id", userID),
	)
}

func (r *TracingFavoriteRepository) Add(ctx context.Context, favorite *domain.Favorite) (err error) {
	ctx, span := tracer.Start(ctx, "repository.AddFavorite", favoriteAttrs(favorite.CarID, favorite.UserID))
	defer func() { endSpan(span, err) }()

	err = r.next.Add(ctx, favorite)
	if err == nil {
		span.SetAttributes(attribute.Int("favorite.id", int(favorite.ID)))
	}
	return err
}

func (r *TracingFavoriteRepository) Remove(ctx context.Context, carID uint, userID string) (err error) {
	ctx, span := tracer.Start(ctx, "repository.RemoveFavorite", favoriteAttrs(carID, userID))
	defer func() { endSpan(span, err) }()

	return r.next.Remove(ctx, carID, userID)
}

func (r *TracingFavoriteRepository) Exists(ctx context.Context, carID uint, userID string) (exists bool, err error) {
	ctx, span := tracer.Start(ctx, "repository.FavoriteExists", favoriteAttrs(carID, userID))
	defer func() { endSpan(span, err) }()

	exists, err = r.next.Exists(ctx, carID, userID)
	span.SetAttributes(attribute.Bool("favorite.exists", exists))
	return exists, err
}

func (r *TracingFavoriteRepository) ListByUser(ctx context.Context, userID string) (cars []domain.FavoriteCar, err error) {
	ctx, span := tracer.Start(ctx, "repository.ListFavorites",
		trace.WithAttributes(attribute.String("favorite.user_id", userID)),
	)
	defer func() { endSpan(span, err) }()

	cars, err = r.next.ListByUser(ctx, userID)
	span.SetAttributes(attribute.Int("result.count", len(cars)))
	return cars, err
}
