package components

import (
	"courier-admin/internal/handler"
	"courier-admin/internal/handler/api"
	"courier-admin/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAccountHandler,
		api.NewItemHandler,
		api.NewQuoteHandler,
		api.NewDeliveryHandler,
		api.NewWebhookHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
