package command

import "context"

// EventPublisher announces catalogue changes to other systems
type EventPublisher interface {
	PublishCarDeleted(ctx context.Context, carID uint) error
	PublishFavoriteAdded(ctx context.Context, carID uint, userID string) error
	PublishFavoriteRemoved(ctx context.Context, carID uint, userID string) error
}

// NoopPublisher discards every event
type NoopPublisher struct{}

func (NoopPublisher) PublishCarDeleted(context.Context, uint) error { return nil }

func (NoopPublisher) PublishFavoriteAdded(context.Context, uint, string) error { return nil }

func (NoopPublisher) PublishFavoriteRemoved(context.Context, uint, string) error { return nil }
