// Package cartest provides an in-memory catalogue for tests.
package cartest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/tair/electric-cars/internal/car/domain"
)

// Store keeps cars and favorites in memory. Deleting a car removes its
// favorites, like the cascading foreign key of the real schema.
type Store struct {
	mu        sync.Mutex
	cars      map[uint]domain.ElectricCar
	favorites []domain.Favorite
	nextFavID uint
	now       func() time.Time

	// Err, when set, is returned by every operation.
	Err error
	// LastPredicate records the predicate of the latest Filter call.
	LastPredicate domain.Predicate
}

func NewStore(cars ...domain.ElectricCar) *Store {
	s := &Store{cars: make(map[uint]domain.ElectricCar), now: time.Now}
	for _, c := range cars {
		s.cars[c.ID] = c
	}
	return s
}

func (s *Store) Cars() *CarRepository { return &CarRepository{s} }

func (s *Store) Favorites() *FavoriteRepository { return &FavoriteRepository{s} }

func (s *Store) sorted() []domain.ElectricCar {
	out := make([]domain.ElectricCar, 0, len(s.cars))
	for _, c := range s.cars {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CarRepository is the car side of a Store
type CarRepository struct{ s *Store }

func (r *CarRepository) Page(_ context.Context, limit, offset int) ([]domain.ElectricCar, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, 0, r.s.Err
	}
	all := r.s.sorted()
	if offset >= len(all) {
		return []domain.ElectricCar{}, int64(len(all)), nil
	}
	end := len(all)
	if limit < end-offset {
		end = offset + limit
	}
	return all[offset:end], int64(len(all)), nil
}

func (r *CarRepository) FindByID(_ context.Context, id uint) (*domain.ElectricCar, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	c, ok := r.s.cars[id]
	if !ok {
		return nil, domain.ErrCarNotFound
	}
	return &c, nil
}

func (r *CarRepository) Search(_ context.Context, term string) ([]domain.ElectricCar, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	var out []domain.ElectricCar
	for _, c := range r.s.sorted() {
		for _, v := range []string{c.Brand, c.Model, c.BodyStyle, c.Segment, c.PowerTrain} {
			if strings.Contains(v, term) {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

// Filter records the predicate and returns every car; the predicate is not
// evaluated.
func (r *CarRepository) Filter(_ context.Context, predicate domain.Predicate) ([]domain.ElectricCar, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.LastPredicate = predicate
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return r.s.sorted(), nil
}

func (r *CarRepository) FindAll(_ context.Context) ([]domain.ElectricCar, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return r.s.sorted(), nil
}

func (r *CarRepository) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.cars[id]; !ok {
		return domain.ErrCarNotFound
	}
	delete(r.s.cars, id)
	kept := r.s.favorites[:0]
	for _, f := range r.s.favorites {
		if f.CarID != id {
			kept = append(kept, f)
		}
	}
	r.s.favorites = kept
	return nil
}

func (r *CarRepository) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	return int64(len(r.s.cars)), nil
}

// FavoriteRepository is the favorites side of a Store
type FavoriteRepository struct{ s *Store }

func (r *FavoriteRepository) Add(_ context.Context, favorite *domain.Favorite) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.cars[favorite.CarID]; !ok {
		return domain.ErrCarNotFound
	}
	for _, f := range r.s.favorites {
		if f.CarID == favorite.CarID && f.UserID == favorite.UserID {
			return domain.ErrFavoriteExists
		}
	}
	r.s.nextFavID++
	favorite.ID = r.s.nextFavID
	favorite.CreatedAt = r.s.now().Add(time.Duration(r.s.nextFavID) * time.Millisecond)
	r.s.favorites = append(r.s.favorites, *favorite)
	return nil
}

func (r *FavoriteRepository) Remove(_ context.Context, carID uint, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for i, f := range r.s.favorites {
		if f.CarID == carID && f.UserID == userID {
			r.s.favorites = append(r.s.favorites[:i], r.s.favorites[i+1:]...)
			return nil
		}
	}
	return domain.ErrFavoriteNotFound
}

func (r *FavoriteRepository) Exists(_ context.Context, carID uint, userID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return false, r.s.Err
	}
	for _, f := range r.s.favorites {
		if f.CarID == carID && f.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *FavoriteRepository) ListByUser(_ context.Context, userID string) ([]domain.FavoriteCar, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	var out []domain.FavoriteCar
	for _, f := range r.s.favorites {
		if f.UserID == userID {
			out = append(out, domain.FavoriteCar{ElectricCar: r.s.cars[f.CarID], FavoritedAt: f.CreatedAt})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FavoritedAt.After(out[j].FavoritedAt) })
	return out, nil
}

// Car builds a catalogue row with the fields most tests look at.
func Car(id uint, brand, model string, priceEuro float64, rangeKm int) domain.ElectricCar {
	return domain.ElectricCar{
		ID:        id,
		Brand:     brand,
		Model:     model,
		PriceEuro: priceEuro,
		RangeKm:   rangeKm,
		Date:      time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// RecordingPublisher collects published events
type RecordingPublisher struct {
	mu     sync.Mutex
	Events []string
	Err    error
}

func (p *RecordingPublisher) record(event string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, event)
	return p.Err
}

func (p *RecordingPublisher) PublishCarDeleted(context.Context, uint) error {
	return p.record("car.deleted")
}

func (p *RecordingPublisher) PublishFavoriteAdded(context.Context, uint, string) error {
	return p.record("favorite.added")
}

func (p *RecordingPublisher) PublishFavoriteRemoved(context.Context, uint, string) error {
	return p.record("favorite.removed")
}
