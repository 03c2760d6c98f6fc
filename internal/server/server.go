package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	accountdomain "github.com/tirtadata/tirtabill/internal/account/domain"
	billingdomain "github.com/tirtadata/tirtabill/internal/billing/domain"
	"github.com/tirtadata/tirtabill/internal/config"
	"github.com/tirtadata/tirtabill/internal/observability/metrics"
	satkerdomain "github.com/tirtadata/tirtabill/internal/satker/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(*Server) {}),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, log *zap.Logger, httpMetrics *metrics.HTTPMetrics) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(metrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	log        *zap.Logger
	accountSvc accountdomain.Service
	billingSvc billingdomain.Service
	satkerSvc  satkerdomain.Service
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	Log        *zap.Logger
	AccountSvc accountdomain.Service
	BillingSvc billingdomain.Service
	SatkerSvc  satkerdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		log:        p.Log.Named("server"),
		accountSvc: p.AccountSvc,
		billingSvc: p.BillingSvc,
		satkerSvc:  p.SatkerSvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	api.GET("/satker", s.ListSatker)

	// -------- Master TNI --------
	api.GET("/master_tni", s.ListMasterAccounts)
	api.POST("/master_tni", s.CreateMasterAccount)
	api.GET("/master_tni/:nosamw", s.GetMasterAccount)
	api.PUT("/master_tni/:nosamw", s.UpdateMasterAccount)
	api.DELETE("/master_tni/:nosamw", s.DeleteMasterAccount)
	api.GET("/master_tni/export/xlsx", s.ExportMasterAccountsXLSX)
	api.GET("/master_tni/export/csv", s.ExportMasterAccountsCSV)

	// -------- Raw readings --------
	api.GET("/rekair/:periode", s.ListRawReadings)
	api.GET("/rekair/:periode/:nosamw", s.GetRawReading)

	// -------- Rekening TNI --------
	// The first segment is registered as :periode on every route; the detail
	// and update handlers read the opaque record id out of it.
	api.GET("/tni/:periode", s.ListBills)
	api.GET("/tni/:periode/detail", s.GetBill)
	api.PUT("/tni/:periode", s.UpdateBill)
	api.GET("/tni/:periode/sync", s.SyncPeriode)
	api.GET("/tni/:periode/:satker_id/csv", s.ExportBillsCSV)
	api.GET("/tni/:periode/:satker_id/xlsx", s.ExportBillsXLSX)
}

func run(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
