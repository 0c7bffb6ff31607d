package server

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	mwecho "github.com/labstack/echo/v4/middleware"
	mwsvc "github.com/achuth-0908/scgateway/internal/middleware"

	"github.com/achuth-0908/scgateway/internal/backup"
	"github.com/achuth-0908/scgateway/internal/config"
	"github.com/achuth-0908/scgateway/internal/customer"
	"github.com/achuth-0908/scgateway/internal/database"
	"github.com/achuth-0908/scgateway/internal/demodata"
	"github.com/achuth-0908/scgateway/internal/manufacturer"
	"github.com/achuth-0908/scgateway/internal/report"
	"github.com/achuth-0908/scgateway/internal/sqlite"
	"github.com/achuth-0908/scgateway/internal/supplier"

	apihttp "github.com/achuth-0908/scgateway/internal/http/api"
)

type Server struct {
	Echo     *echo.Echo
	HTTP     *http.Server
	Gateway  *database.Gateway
	Registry *prometheus.Registry
	Reports  *report.Service
}

func Build(cfg *config.Config) (*Server, error) {
	logger := log.Logger.With().Str("component", "server").Logger()

	//
	// Embedded store provisioning
	//
	if cfg.Database.Driver == database.DriverSQLite && (cfg.InitSchema || cfg.DemoMode) {
		var seed func(*sql.DB) error
		if cfg.DemoMode {
			seed = demodata.Load
		}
		created, err := sqlite.Provision(cfg.Database.Address, seed)
		if err != nil {
			return nil, fmt.Errorf("provision sqlite: %w", err)
		}
		if created {
			logger.Info().Str("path", sqlite.FilePath(cfg.Database.Address)).Bool("demo", cfg.DemoMode).Msg("Created database")
		} else {
			logger.Info().Str("path", sqlite.FilePath(cfg.Database.Address)).Msg("Opened database")
		}
	}

	//
	// Gateway
	//
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	g, err := database.New(cfg.Database, database.WithMetrics(database.NewMetrics(registry)))
	if err != nil {
		return nil, err
	}
	logger.Info().Stringer("database", cfg.Database).Msg("Gateway configured")

	//
	// Domain services
	//
	supplierSvc := supplier.NewService(g)
	manufacturerSvc := manufacturer.NewService(g)
	customerSvc := customer.NewService(g)
	reportSvc := report.NewService(g)

	var backupSvc *backup.Service
	if g.Driver() == database.DriverSQLite {
		backupSvc, err = backup.NewService(g, cfg.Database.Address)
		if err != nil {
			return nil, err
		}
	}

	//
	// Handlers
	//
	apiHandler := apihttp.NewHandler(supplierSvc, manufacturerSvc, customerSvc, reportSvc, backupSvc)

	//
	// Echo
	//
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Health endpoints
	e.GET("/livez", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/readyz", func(c echo.Context) error {
		if err := g.Ping(c.Request().Context()); err != nil {
			return c.String(http.StatusServiceUnavailable, "DB not ready")
		}
		return c.String(http.StatusOK, "Ready")
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	// Middleware
	e.Use(mwsvc.RequestID())
	e.Use(mwsvc.Logger(log.Logger))
	e.Use(mwsvc.Version())
	e.Use(mwecho.RequestLoggerWithConfig(mwecho.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v mwecho.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("request_id", mwsvc.GetRequestID(c.Request().Context())).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))
	e.Use(mwecho.Recover())

	// Gateway API
	apiGroup := e.Group("/api")
	apihttp.RegisterRoutes(apiGroup, apiHandler, mwsvc.APIKeyAuth(cfg.APIKey))

	if cfg.APIKey == "" {
		logger.Warn().Msg("API_KEY not set; write endpoints will reject every request")
	}

	//
	// HTTP server
	//
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &Server{
		Echo:     e,
		HTTP:     srv,
		Gateway:  g,
		Registry: registry,
		Reports:  reportSvc,
	}, nil
}

// Close releases the gateway's shared pool, if any.
func (s *Server) Close() error {
	return s.Gateway.Close()
}
