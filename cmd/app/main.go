package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"galapagos/cmd"
	"galapagos/internal/adapters/out/mongostore"
	"galapagos/internal/adapters/out/neo4jstore"
	"galapagos/internal/pkg/logs"

	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(cmd.DefaultConfigFile)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	if err = run(configs); err != nil {
		log.Fatalf("Service stopped: %v", err)
	}
}

func run(configs cmd.Config) error {
	logger, err := logs.New(logs.Options{Level: configs.LogLevel, Pretty: configs.LogPretty})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongostore.Connect(ctx, configs.MongoURI)
	if err != nil {
		return fmt.Errorf("connect to mongodb: %w", err)
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	if err = mongostore.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure mongodb indexes: %w", err)
	}

	graph, err := neo4jstore.Connect(ctx, neo4jstore.Config{
		URI:      configs.Neo4jURI,
		Username: configs.Neo4jUser,
		Password: configs.Neo4jPassword,
		Database: configs.Neo4jDatabase,
	})
	if err != nil {
		return fmt.Errorf("connect to neo4j: %w", err)
	}
	defer func() { _ = graph.Close(context.Background()) }()

	if err = graph.EnsureConstraints(ctx); err != nil {
		return fmt.Errorf("ensure neo4j constraints: %w", err)
	}

	app := cmd.NewCompositionRoot(configs, logger, db, graph)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e := app.CreateHTTPServer().Echo()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server listening", "port", configs.HTTPPort)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
