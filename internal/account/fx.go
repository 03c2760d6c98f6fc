package account

import (
	"github.com/tirtadata/tirtabill/internal/account/repository"
	"github.com/tirtadata/tirtabill/internal/account/service"
	"go.uber.org/fx"
)

var Module = fx.Module("account.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
