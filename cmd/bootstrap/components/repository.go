package components

import (
	repo_impl "courier-admin/internal/infra/repository"
	"courier-admin/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewAccountRepository,
			fx.As(new(usecase.AccountRepository)),
		),
		fx.Annotate(
			repo_impl.NewItemRepository,
			fx.As(new(usecase.ItemRepository)),
		),
		fx.Annotate(
			repo_impl.NewQuoteRepository,
			fx.As(new(usecase.QuoteRepository)),
		),
		fx.Annotate(
			repo_impl.NewDeliveryRepository,
			fx.As(new(usecase.DeliveryRepository)),
		),
		fx.Annotate(
			repo_impl.NewWebhookEventRepository,
			fx.As(new(usecase.WebhookEventRepository)),
		),
	),
)
