package components

import (
	"go.uber.org/fx"

	"cosme-store/internal/pkg/clock"
	"cosme-store/internal/usecase/commands"
	"cosme-store/internal/usecase/queries"
	"cosme-store/internal/usecase/shared"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	shared.NewCartPricer,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCheckoutCommands,
		commands.NewCampaignCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCampaignQueries,
		queries.NewOrderQueries,
		queries.NewQuoteQueries,
	),
)
