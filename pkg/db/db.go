package db

import (
	"time"

	"github.com/tirtadata/tirtabill/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BillingDB is the raw source store (rekair, master_tni, cust).
type BillingDB struct {
	*gorm.DB
}

// CoklitDB is the reconciliation store (rekening_tni, sync_log, satker).
type CoklitDB struct {
	*gorm.DB
}

// Module provides the two gorm handles. Each request-scoped session comes
// from WithContext on these shared handles; the pool releases connections
// when the request's statements finish.
var Module = fx.Module("db",
	fx.Provide(NewBilling, NewCoklit),
)

func NewBilling(cfg config.Config, log *zap.Logger) (*BillingDB, error) {
	g, err := open(cfg.Billing, log.Named("db.billing"))
	if err != nil {
		return nil, err
	}
	return &BillingDB{g}, nil
}

func NewCoklit(cfg config.Config, log *zap.Logger) (*CoklitDB, error) {
	g, err := open(cfg.Coklit, log.Named("db.coklit"))
	if err != nil {
		return nil, err
	}
	return &CoklitDB{g}, nil
}

func open(cfg config.DBConfig, log *zap.Logger) (*gorm.DB, error) {
	dialect, err := Dialect(cfg)
	if err != nil {
		return nil, err
	}

	g, err := gorm.Open(dialect, &gorm.Config{
		Logger: NewGormLogger(log),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := g.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConn)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConn)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	return g, nil
}
