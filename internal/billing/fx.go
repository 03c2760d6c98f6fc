package billing

import (
	"github.com/tirtadata/tirtabill/internal/billing/repository"
	"github.com/tirtadata/tirtabill/internal/billing/service"
	"go.uber.org/fx"
)

var Module = fx.Module("billing.service",
	fx.Provide(repository.Provide),
	fx.Provide(repository.ProvideRaw),
	fx.Provide(service.New),
)
