// cmd/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/99designs/gqlgen/graphql/playground"

	"github.com/Tanmoy095/LogiSynapse/auth"
	"github.com/Tanmoy095/LogiSynapse/config"
	"github.com/Tanmoy095/LogiSynapse/graph"
	pkgkafka "github.com/Tanmoy095/LogiSynapse/pkg/kafka"
	"github.com/Tanmoy095/LogiSynapse/pkg/logger"
	"github.com/Tanmoy095/LogiSynapse/service"
	"github.com/Tanmoy095/LogiSynapse/shared/contracts"
	pkgrabbit "github.com/Tanmoy095/LogiSynapse/shared/rabbitmq"
	"github.com/Tanmoy095/LogiSynapse/store"
)

const (
	serviceName     = "shipment-tracker"
	maxRequestBytes = 1 << 20
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logg := logger.New(serviceName, cfg.LogLevel)

	if err := run(cfg, logg); err != nil {
		logg.Error("service stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logg logger.Logger) error {
	publisher, err := newPublisher(cfg, logg)
	if err != nil {
		return err
	}

	// The store lives as long as the process; nothing is persisted.
	st := store.NewMemoryStore()

	opts := []service.Option{
		service.WithLogger(logg),
		service.WithDefaultPageSize(cfg.DefaultPageSize),
	}
	if publisher != nil {
		opts = append(opts, service.WithPublisher(publisher))
	}
	svc, err := service.NewShipmentService(st, opts...)
	if err != nil {
		return fmt.Errorf("failed to create shipment service: %w", err)
	}

	if cfg.SeedDemoData {
		n, err := store.Seed(context.Background(), st, time.Now(), svc.NewID)
		if err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
		logg.Info("demo data seeded", "shipments", n)
	}

	exec := graph.NewExecutor(auth.NewGuard(svc), logg)
	gql := http.MaxBytesHandler(graph.NewServer(exec, logg), maxRequestBytes)
	mux := http.NewServeMux()
	mux.Handle(cfg.GraphQLPath, auth.Middleware(cfg.MockRoleHeader, gql))
	if cfg.PlaygroundEnabled {
		mux.Handle("/", playground.Handler("Shipment Tracker", cfg.GraphQLPath))
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logg.Info("graphql server listening", "addr", cfg.HTTPAddr, "path", cfg.GraphQLPath, "playground", cfg.PlaygroundEnabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	//waiting for stop signal
	stopSignal := make(chan os.Signal, 1)
	signal.Notify(stopSignal, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopSignal:
		logg.Info("shutdown signal received", "signal", sig.String())
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logg.Warn("http server did not shut down cleanly", "error", err)
	}

	// in-flight events go out before the publisher closes
	svc.Drain()
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			logg.Warn("failed to close event publisher", "error", err)
		}
	}
	logg.Info("service shutdown complete")
	return nil
}

// newPublisher connects the configured event backend. It returns nil when
// events are disabled.
func newPublisher(cfg *config.Config, logg logger.Logger) (contracts.Publisher, error) {
	switch cfg.EventsBackend {
	case config.EventsKafka:
		logg.Info("publishing events to kafka", "broker", cfg.KafkaBroker, "topic", cfg.KafkaTopic)
		return pkgkafka.NewKafkaProducer(cfg.KafkaBroker, cfg.KafkaTopic, logg), nil
	case config.EventsRabbitMQ:
		logg.Info("publishing events to rabbitmq", "host", cfg.RabbitMQHost, "queue", cfg.RabbitMQQueue)
		client, err := pkgrabbit.NewClient(cfg.RabbitMQURL())
		if err != nil {
			return nil, err
		}
		pub, err := pkgrabbit.NewEventPublisher(client, cfg.RabbitMQQueue, logg)
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		return pub, nil
	default:
		return nil, nil
	}
}
