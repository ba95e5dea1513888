package command

import (
	"context"
	"errors"

	"github.com/tair/electric-cars/internal/car/domain"
	"github.com/tair/electric-cars/pkg/apperror"
	"github.com/tair/electric-cars/pkg/logger"
)

// AddFavoriteCommand favorites a car for a user
type AddFavoriteCommand struct {
	CarID  uint
	UserID string
}

type AddFavoriteHandler struct {
	repo      domain.FavoriteRepository
	publisher EventPublisher
}

func NewAddFavoriteHandler(repo domain.FavoriteRepository, publisher EventPublisher) *AddFavoriteHandler {
	return &AddFavoriteHandler{repo: repo, publisher: publisher}
}

// Handle checks for an existing pair before inserting. Two concurrent adds
// that both pass the check are resolved by the unique index and the loser
// gets the same conflict.
func (h *AddFavoriteHandler) Handle(ctx context.Context, cmd AddFavoriteCommand) error {
	userID := userOrDefault(cmd.UserID)

	exists, err := h.repo.Exists(ctx, cmd.CarID, userID)
	if err != nil {
		return apperror.Store("Error adding favorite", err)
	}
	if exists {
		return apperror.Conflict("Car is already in favorites")
	}

	err = h.repo.Add(ctx, &domain.Favorite{CarID: cmd.CarID, UserID: userID})
	switch {
	case errors.Is(err, domain.ErrFavoriteExists):
		return apperror.Conflict("Car is already in favorites")
	case errors.Is(err, domain.ErrCarNotFound):
		return apperror.NotFound("Electric car not found")
	case err != nil:
		return apperror.Store("Error adding favorite", err)
	}

	if err := h.publisher.PublishFavoriteAdded(ctx, cmd.CarID, userID); err != nil {
		logger.Warn(ctx).Err(err).Uint("car_id", cmd.CarID).Msg("Failed to publish favorite added event")
	}
	return nil
}

// RemoveFavoriteCommand removes a favorite of a user
type RemoveFavoriteCommand struct {
	CarID  uint
	UserID string
}

type RemoveFavoriteHandler struct {
	repo      domain.FavoriteRepository
	publisher EventPublisher
}

func NewRemoveFavoriteHandler(repo domain.FavoriteRepository, publisher EventPublisher) *RemoveFavoriteHandler {
	return &RemoveFavoriteHandler{repo: repo, publisher: publisher}
}

func (h *RemoveFavoriteHandler) Handle(ctx context.Context, cmd RemoveFavoriteCommand) error {
	userID := userOrDefault(cmd.UserID)

	err := h.repo.Remove(ctx, cmd.CarID, userID)
	if errors.Is(err, domain.ErrFavoriteNotFound) {
		return apperror.NotFound("Favorite not found")
	}
	if err != nil {
		return apperror.Store("Error removing favorite", err)
	}

	if err := h.publisher.PublishFavoriteRemoved(ctx, cmd.CarID, userID); err != nil {
		logger.Warn(ctx).Err(err).Uint("car_id", cmd.CarID).Msg("Failed to publish favorite removed event")
	}
	return nil
}

func userOrDefault(userID string) string {
	if userID == "" {
		return domain.DefaultUserID
	}
	return userID
}
