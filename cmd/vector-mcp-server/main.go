package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vector-ai/vector-mcp-server/configs"
	"github.com/vector-ai/vector-mcp-server/internal/app"
	"github.com/vector-ai/vector-mcp-server/internal/audit"
	"github.com/vector-ai/vector-mcp-server/internal/catalog"
	"github.com/vector-ai/vector-mcp-server/internal/config"
	"github.com/vector-ai/vector-mcp-server/internal/dispatch"
	"github.com/vector-ai/vector-mcp-server/internal/log"
	"github.com/vector-ai/vector-mcp-server/internal/messages"
	"github.com/vector-ai/vector-mcp-server/internal/protocol"
	"github.com/vector-ai/vector-mcp-server/internal/render"
	"github.com/vector-ai/vector-mcp-server/internal/rpc"
	"github.com/vector-ai/vector-mcp-server/internal/settings"
	"github.com/vector-ai/vector-mcp-server/internal/startup"
	"github.com/vector-ai/vector-mcp-server/internal/timeutil"
	"github.com/vector-ai/vector-mcp-server/internal/vectorapi"
)

func main() {
	settingsPath := flag.String("config", "", "Path to the YAML settings file (default: embedded)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := log.New(cfg.LogLevel, os.Stdout)

	path := *settingsPath
	if path == "" {
		path = cfg.SettingsPath
	}

	var rendered []byte
	if path == "" {
		raw, err := configs.Load(configs.Default)
		if err != nil {
			logger.Error("load embedded settings failed", "error", err)
			os.Exit(1)
		}
		rendered, err = render.RenderBytes(configs.Default, raw)
		if err != nil {
			logger.Error("render settings failed", "error", err)
			os.Exit(1)
		}
	} else {
		rendered, err = render.RenderFile(path)
		if err != nil {
			logger.Error("render settings failed", "path", path, "error", err)
			os.Exit(1)
		}
	}

	fileCfg, err := settings.Load(rendered)
	if err != nil {
		logger.Error("parse settings failed", "error", err)
		os.Exit(1)
	}
	applyOverrides(fileCfg, cfg)

	msgs, err := messages.Load(fileCfg.Server.Lang)
	if err != nil {
		logger.Error("load messages failed", "error", err)
		os.Exit(1)
	}

	remoteTimeout := timeutil.ParseDurationOrDefault(fileCfg.VectorAPI.Timeout, 15*time.Second)
	client := vectorapi.New(fileCfg.VectorAPI.BaseURL, remoteTimeout, logger)

	reg, err := catalog.Build(client, msgs)
	if err != nil {
		logger.Error("build tool catalog failed", "error", err)
		os.Exit(1)
	}

	engine := dispatch.New(reg, protocol.ServerInfo{
		Name:    fileCfg.Server.Name,
		Version: fileCfg.Server.Version,
	}, logger, audit.New(logger), msgs)

	baseCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)
	go func() {
		sig := <-sigCh
		logger.Warn("shutdown requested", "signal", sig.String())
		cancel()
	}()

	startup.Probe(baseCtx, client, remoteTimeout, logger)

	handler := rpc.NewHandler(engine, logger)
	meta := rpc.NewMeta(engine, client, fileCfg.Server.HTTP.Path, logger)

	shutdownTimeout := cfg.ShutdownTimeout
	if fileCfg.Server.ShutdownTimeout != "" {
		shutdownTimeout = timeutil.ParseDurationOrDefault(fileCfg.Server.ShutdownTimeout, shutdownTimeout)
	}

	application, err := app.New(baseCtx, fileCfg.Server.HTTP, handler, meta.Routes(), logger, shutdownTimeout)
	if err != nil {
		logger.Error("init http server failed", "error", err)
		os.Exit(1)
	}

	logger.Info("starting vector mcp server",
		"name", fileCfg.Server.Name,
		"version", fileCfg.Server.Version,
		"listen", fileCfg.Server.HTTP.Listen,
		"vector_api_url", client.BaseURL(),
		"tools", reg.Len(),
	)

	if err := application.Run(baseCtx); err != nil {
		logger.Error("runtime error", "error", err)
		os.Exit(1)
	}
}

// applyOverrides lets environment variables win over the settings file.
func applyOverrides(fileCfg *settings.Config, envCfg config.Config) {
	if envCfg.Port != 0 {
		fileCfg.Server.HTTP.Listen = fmt.Sprintf(":%d", envCfg.Port)
	}
	if envCfg.Lang != "" {
		fileCfg.Server.Lang = envCfg.Lang
	}
}
