package components

import (
	"go.uber.org/fx"

	"cosme-store/internal/handler"
	"cosme-store/internal/handler/api"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		api.NewOrderHandler,
		api.NewCampaignHandler,
	),
	fx.Invoke(handler.NewRouter),
)
