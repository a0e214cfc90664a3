// Package main runs the gymstats MCP server over stdio. The same tools are served by
// the main service at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/gymstats/internal/config"
	"github.com/2beens/gymstats/internal/gymstats"
	gymstatsmcp "github.com/2beens/gymstats/internal/gymstats/mcp"
	"github.com/2beens/gymstats/internal/gymstats/storage"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sethvargo/go-envconfig"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout belongs to the MCP transport
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	secrets, err := config.LoadSecrets(ctx, envconfig.OsLookuper())
	if err != nil {
		log.Fatalf("load secrets: %s", err)
	}

	backend, err := storage.Open(ctx, storage.OpenParams{
		Config:       cfg,
		PostgresPass: secrets.PostgresPassword,
		MongoURI:     secrets.MongoURI,
	})
	if err != nil {
		log.Fatalf("open %s store: %s", cfg.Store, err)
	}
	defer func() {
		if err := backend.Close(context.Background()); err != nil {
			log.Errorf("close store: %s", err)
		}
	}()

	server := gymstatsmcp.NewServer(gymstats.Assemble(backend.Store, nil), backend.Pool)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		log.Errorf("mcp server: %s", err)
	}
}
