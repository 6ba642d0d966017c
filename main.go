package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"schuldenkompass/app/config"
	"schuldenkompass/app/server"
	"schuldenkompass/app/service/chat"
	"schuldenkompass/app/service/interview"
	"schuldenkompass/app/service/store"
	"schuldenkompass/app/util/mylog"

	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

func main() {
	di := do.New()
	defer di.Shutdown()

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	do.ProvideValue(di, appCtx)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Config load failed", "error", err)
		os.Exit(1)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg); err != nil {
		slog.Error("Logging init failed", "error", err)
		os.Exit(1)
	}

	do.Provide(di, interview.New)
	do.Provide(di, store.New)
	do.Provide(di, chat.New)
	do.Provide(di, server.New)
	do.Provide(di, server.NewMCP)

	slog.Info("Service started")

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		slog.Info("Shutting down...")

		cancel()
	}()

	g, gctx := errgroup.WithContext(appCtx)

	g.Go(func() error {
		return do.MustInvoke[*server.Service](di).Run(gctx)
	})

	g.Go(func() error {
		do.MustInvoke[*store.Service](di).RunSweepLoop(gctx)
		return nil
	})

	if cfg.MCP.Enabled {
		g.Go(func() error {
			return do.MustInvoke[*server.MCPServer](di).Run(gctx)
		})
	}

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Service failed", "error", err)
		os.Exit(1)
	}
}
