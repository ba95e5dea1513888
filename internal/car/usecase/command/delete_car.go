package command

import (
	"context"
	"errors"

	"github.com/tair/electric-cars/internal/car/domain"
	"github.com/tair/electric-cars/pkg/apperror"
	"github.com/tair/electric-cars/pkg/logger"
)

// DeleteCarCommand represents the command to delete a car. Favorites of
// the car are removed by the store's cascading foreign key.
type DeleteCarCommand struct {
	ID uint
}

type DeleteCarHandler struct {
	repo      domain.CarRepository
	publisher EventPublisher
}

func NewDeleteCarHandler(repo domain.CarRepository, publisher EventPublisher) *DeleteCarHandler {
	return &DeleteCarHandler{repo: repo, publisher: publisher}
}

func (h *DeleteCarHandler) Handle(ctx context.Context, cmd DeleteCarCommand) error {
	err := h.repo.Delete(ctx, cmd.ID)
	if errors.Is(err, domain.ErrCarNotFound) {
		return apperror.NotFound("Electric car not found")
	}
	if err != nil {
		return apperror.Store("Error deleting data", err)
	}

	if err := h.publisher.PublishCarDeleted(ctx, cmd.ID); err != nil {
		logger.Warn(ctx).Err(err).Uint("car_id", cmd.ID).Msg("Failed to publish car deleted event")
	}
	return nil
}
