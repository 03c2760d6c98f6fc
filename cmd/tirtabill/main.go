package main

import (
	"github.com/tirtadata/tirtabill/internal/account"
	"github.com/tirtadata/tirtabill/internal/billing"
	"github.com/tirtadata/tirtabill/internal/config"
	"github.com/tirtadata/tirtabill/internal/idcodec"
	"github.com/tirtadata/tirtabill/internal/logger"
	"github.com/tirtadata/tirtabill/internal/observability"
	"github.com/tirtadata/tirtabill/internal/satker"
	"github.com/tirtadata/tirtabill/internal/server"
	"github.com/tirtadata/tirtabill/pkg/db"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		config.Module,
		logger.Module,
		db.Module,
		idcodec.Module,
		observability.Module,
		satker.Module,
		account.Module,
		billing.Module,
		server.Module,
	).Run()
}
