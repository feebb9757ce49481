package main

import (
	"flag"
	"io"
	"time"

	"netcores-mcp/internal/client"
	"netcores-mcp/internal/config"
	"netcores-mcp/internal/mcpserver"
	"netcores-mcp/internal/tools"
)

func serveMain(root rootArgs, args []string) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var cfgPath string
	fs.StringVar(&cfgPath, "config", "", "Path to config file (default ~/.netcores/config.toml)")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("parse serve args: %v", err)
	}

	cfg, err := loadConfig(root, cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	api, err := buildAPIClient(cfg)
	if err != nil {
		log.Fatalf("failed to init API client: %v", err)
	}

	disp := tools.NewDispatcher(tools.NewRegistry(tools.Catalog(api)...))
	srv := mcpserver.New(disp, appName, appVersion)
	log.Infof("serving %d tools over stdio api=%s", len(disp.Registry().List()), api.BaseURL())
	if err := mcpserver.Run(srv); err != nil {
		log.Fatalf("server exit: %v", err)
	}
}

func loadConfig(root rootArgs, cfgPath string) (config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return cfg, err
	}
	return config.ApplyKVOverrides(cfg, prependOverrides(root.overrides, nil)), nil
}

func buildAPIClient(cfg config.Config) (*client.Client, error) {
	return client.New(client.Options{
		BaseURL:     cfg.APIURL,
		Timeout:     time.Duration(cfg.TimeoutSecs) * time.Second,
		MaxAttempts: cfg.MaxAttempts,
		RetryDelay:  time.Duration(cfg.RetryDelayMS) * time.Millisecond,
	})
}
