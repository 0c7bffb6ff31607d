package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/achuth-0908/scgateway/internal/config"
	"github.com/achuth-0908/scgateway/internal/logging"
	"github.com/achuth-0908/scgateway/internal/server"
	"github.com/achuth-0908/scgateway/internal/sqlite"
	"github.com/achuth-0908/scgateway/internal/version"
)

func main() {
	fmt.Println(version.Banner())

	//
	// Flags
	//
	configPath := flag.String("config", "config.yaml", "path to config file")
	routesFlag := flag.Bool("routes", false, "print routes and exit")
	demoFlag := flag.Bool("demo", false, "create the SQLite database with sample data if it does not exist")
	initFlag := flag.Bool("init-schema", false, "create or migrate the SQLite schema on startup")
	schemaFlag := flag.Bool("schema", false, "print the SQLite schema and exit")
	reportFlag := flag.String("report", "", "print one report as a table and exit")
	flag.Parse()

	if *schemaFlag {
		fmt.Print(sqlite.Schema())
		os.Exit(0)
	}

	//
	// Load configuration
	//
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	cfg.DemoMode = *demoFlag
	cfg.InitSchema = *initFlag

	logging.Apply(cfg.Log)

	//
	// Build server (Echo, gateway, services, etc.)
	//
	srv, err := server.Build(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build server")
	}
	defer srv.Close()

	//
	// Routes inspection mode
	//
	if *routesFlag {
		routes := srv.Echo.Routes()
		sort.Slice(routes, func(i, j int) bool {
			return routes[i].Path < routes[j].Path
		})

		for _, r := range routes {
			fmt.Printf("%-6s %s\n", r.Method, r.Path)
		}

		return
	}

	//
	// One-shot report mode
	//
	if *reportFlag != "" {
		rows, err := srv.Reports.Run(context.Background(), *reportFlag)
		if err != nil {
			log.Error().Err(err).Strs("available", srv.Reports.Names()).Msg("report failed")
			srv.Close()
			os.Exit(1)
		}
		if err := printReport(os.Stdout, rows); err != nil {
			log.Error().Err(err).Msg("print report")
			srv.Close()
			os.Exit(1)
		}
		return
	}

	//
	// Normal server startup
	//
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("listening")
		if err := srv.Echo.StartServer(srv.HTTP); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Echo.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
