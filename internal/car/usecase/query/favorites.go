package query

import (
	"context"

	"github.com/tair/electric-cars/internal/car/domain"
	"github.com/tair/electric-cars/pkg/apperror"
)

// ListFavoritesQuery lists the cars favorited by one user
type ListFavoritesQuery struct {
	UserID string
}

type ListFavoritesHandler struct {
	repo domain.FavoriteRepository
}

func NewListFavoritesHandler(repo domain.FavoriteRepository) *ListFavoritesHandler {
	return &ListFavoritesHandler{repo: repo}
}

func (h *ListFavoritesHandler) Handle(ctx context.Context, q ListFavoritesQuery) ([]domain.FavoriteCar, error) {
	cars, err := h.repo.ListByUser(ctx, userOrDefault(q.UserID))
	if err != nil {
		return nil, apperror.Store("Error fetching favorites", err)
	}
	return nonNil(cars), nil
}

// CheckFavoriteQuery asks whether a user favorited a car
type CheckFavoriteQuery struct {
	CarID  uint
	UserID string
}

type CheckFavoriteHandler struct {
	repo domain.FavoriteRepository
}

func NewCheckFavoriteHandler(repo domain.FavoriteRepository) *CheckFavoriteHandler {
	return &CheckFavoriteHandler{repo: repo}
}

func (h *CheckFavoriteHandler) Handle(ctx context.Context, q CheckFavoriteQuery) (bool, error) {
	exists, err := h.repo.Exists(ctx, q.CarID, userOrDefault(q.UserID))
	if err != nil {
		return false, apperror.Store("Error checking favorite status", err)
	}
	return exists, nil
}

func userOrDefault(userID string) string {
	if userID == "" {
		return domain.DefaultUserID
	}
	return userID
}
