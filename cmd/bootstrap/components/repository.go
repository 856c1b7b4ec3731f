package components

import (
	"rehearsal-rooms/internal/infra/readstore"
	repo_impl "rehearsal-rooms/internal/infra/repository"
	"rehearsal-rooms/internal/infra/uow"
	"rehearsal-rooms/internal/usecase/commands"
	"rehearsal-rooms/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		uow.NewPgxTxRunner,
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repo_impl.NewBlackoutRepository,
			fx.As(new(commands.BlackoutRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		readstore.NewCampusReadStore,
		readstore.NewCachedCampusReadStore,
		fx.Annotate(
			readstore.NewCachedCampusReadStore,
			fx.As(new(queries.CampusReadStore)),
		),
		fx.Annotate(
			readstore.NewCampusReaderAdapter,
			fx.As(new(commands.CampusReader)),
		),
		fx.Annotate(
			readstore.NewBlackoutReadStore,
			fx.As(new(queries.BlackoutReadStore)),
			fx.As(new(commands.BlackoutRulesReader)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(commands.UserReader)),
		),
	),
)
