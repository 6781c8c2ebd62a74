package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HerbHall/olympushub/internal/alerts"
	"github.com/HerbHall/olympushub/internal/config"
	"github.com/HerbHall/olympushub/internal/console"
	"github.com/HerbHall/olympushub/internal/event"
	"github.com/HerbHall/olympushub/internal/modules"
	"github.com/HerbHall/olympushub/internal/registry"
	"github.com/HerbHall/olympushub/internal/server"
	"github.com/HerbHall/olympushub/internal/store"
	"github.com/HerbHall/olympushub/internal/uistate"
	"github.com/HerbHall/olympushub/internal/version"
	"github.com/HerbHall/olympushub/internal/workbench"
	"github.com/HerbHall/olympushub/internal/ws"
	"github.com/HerbHall/olympushub/pkg/plugin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// runServe wires the modules, the event stream and the HTTP server, then
// blocks until SIGINT/SIGTERM or a fatal server error.
func runServe(parent context.Context, configPath string) error {
	// Load configuration before the logger so log level/format apply.
	viperCfg, err := server.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	cfg := config.New(viperCfg)

	logger, err := config.NewLogger(viperCfg)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Olympus HUB starting", zap.String("version", version.Short()))
	if f := viperCfg.ConfigFileUsed(); f != "" {
		logger.Info("configuration loaded", zap.String("component", "config"), zap.String("source", f))
	} else {
		logger.Warn("no configuration file found, using defaults", zap.String("component", "config"))
	}

	srvCfg, err := server.ConfigFrom(viperCfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPath := viperCfg.GetString("database.path")
	db, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	if err := db.CheckVersion(ctx, version.Short()); err != nil {
		return err
	}
	logger.Info("database initialized",
		zap.String("component", "database"),
		zap.String("path", dbPath),
		zap.Bool("in_memory", db.InMemory()),
	)

	bus := event.NewBus(logger.Named("event"))

	reg := registry.New(logger.Named("registry"))
	for _, m := range []plugin.Plugin{
		console.New(),
		modules.New(),
		alerts.New(),
		workbench.New(),
		uistate.New(),
	} {
		if err := reg.Register(m); err != nil {
			return fmt.Errorf("register module: %w", err)
		}
	}
	if err := reg.Validate(); err != nil {
		return fmt.Errorf("module validation: %w", err)
	}

	if err := reg.InitAll(ctx, func(name string) plugin.Dependencies {
		return plugin.Dependencies{
			Config:  cfg.ForModule(name),
			Logger:  logger.Named(name),
			Store:   db,
			Bus:     bus,
			Plugins: reg,
		}
	}, bus); err != nil {
		return fmt.Errorf("initialize modules: %w", err)
	}
	if err := reg.StartAll(ctx); err != nil {
		return fmt.Errorf("start modules: %w", err)
	}

	wsHandler := ws.NewHandler(bus, logger.Named("ws"))
	defer wsHandler.Close()

	srv := server.New(srvCfg, reg, logger, db.Ping, wsHandler)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", zap.NamedError("cause", context.Cause(gctx)))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return shutdown(shutdownCtx, srv, reg)
	})

	logger.Info("Olympus HUB ready", zap.String("addr", srvCfg.Addr()))
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("Olympus HUB stopped")
	return nil
}

type httpServer interface {
	Shutdown(ctx context.Context) error
}

type moduleSet interface {
	StopAll(ctx context.Context)
}

// shutdown drains in-flight requests before stopping the modules that
// serve them. Modules are stopped even when draining times out.
func shutdown(ctx context.Context, srv httpServer, mods moduleSet) error {
	err := srv.Shutdown(ctx)
	mods.StopAll(ctx)
	return err
}
