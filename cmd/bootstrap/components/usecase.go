package components

import (
	"courier-admin/internal/pkg/clock"
	"courier-admin/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
		usecase.NewAccountUseCase,
		usecase.NewItemUseCase,
		usecase.NewQuoteUseCase,
		usecase.NewDeliveryUseCase,
		usecase.NewWebhookUseCase,
	),
)
