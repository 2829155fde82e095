package components

import (
	"go.uber.org/fx"

	"cosme-store/internal/infra/readstore"
	"cosme-store/internal/infra/writerepo"
	"cosme-store/internal/usecase/commands"
	"cosme-store/internal/usecase/queries"
	"cosme-store/internal/usecase/shared"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		fx.Annotate(
			writerepo.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			writerepo.NewCampaignRepository,
			fx.As(new(commands.CampaignRepository)),
			fx.As(new(shared.CampaignFinder)),
		),
		// Read side
		fx.Annotate(
			readstore.NewCampaignReadStore,
			fx.As(new(queries.CampaignReadStore)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewSettingsReadStore,
			fx.As(new(shared.ShippingRatesStore)),
		),
	),
)
