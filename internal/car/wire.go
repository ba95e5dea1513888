//go:build wireinject
// +build wireinject

package car

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/electric-cars/internal/car/delivery/http"
	"github.com/tair/electric-cars/internal/car/filter"
	"github.com/tair/electric-cars/internal/car/usecase/command"
	"github.com/tair/electric-cars/internal/car/usecase/query"
	"github.com/tair/electric-cars/pkg/auth"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCarRepository,
	ProvideFavoriteRepository,
)

var QuerySet = wire.NewSet(
	filter.NewCarTranslator,
	query.NewListCarsHandler,
	query.NewGetCarHandler,
	query.NewSearchCarsHandler,
	query.NewFilterCarsHandler,
	query.NewExportCarsHandler,
	query.NewListFavoritesHandler,
	query.NewCheckFavoriteHandler,
)

var CommandSet = wire.NewSet(
	command.NewDeleteCarHandler,
	command.NewAddFavoriteHandler,
	command.NewRemoveFavoriteHandler,
)

var HTTPSet = wire.NewSet(
	ProvidePinger,
	http.NewCarHandler,
	http.NewFavoriteHandler,
	http.NewHealthHandler,
	http.NewHandlers,
)

// InitializeHandlers builds every HTTP handler of the service
func InitializeHandlers(
	db *gorm.DB,
	publisher command.EventPublisher,
	identity auth.IdentityProvider,
	metrics *http.Metrics,
) (*http.Handlers, error) {
	wire.Build(RepositorySet, QuerySet, CommandSet, HTTPSet)
	return nil, nil
}
