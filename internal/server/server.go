// Package server boots the console: configuration, infrastructure
// connections, collection warm-up and the HTTP listener.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cardstore/console/app/controllers"
	"github.com/cardstore/console/app/jobs"
	"github.com/cardstore/console/app/listeners"
	"github.com/cardstore/console/app/routes"
	"github.com/cardstore/console/config"
	"github.com/cardstore/console/internal/audit"
	"github.com/cardstore/console/internal/dashboard"
	"github.com/cardstore/console/internal/form"
	"github.com/cardstore/console/internal/modal"
	"github.com/cardstore/console/internal/notify"
	"github.com/cardstore/console/internal/remote"
	"github.com/cardstore/console/internal/resource"
	"github.com/cardstore/console/internal/section"
	"github.com/cardstore/console/internal/settings"
	"github.com/cardstore/console/pkg/cache"
	consolegraphql "github.com/cardstore/console/pkg/graphql"
	consolegrpc "github.com/cardstore/console/pkg/grpc"
	"github.com/cardstore/console/pkg/logger"
	"github.com/cardstore/console/pkg/queue"
	"github.com/cardstore/console/pkg/router"
	"github.com/cardstore/console/pkg/storage"
	"github.com/cardstore/console/pkg/workerpool"
	"github.com/cardstore/console/pkg/ws"
)

// Start runs the console until SIGINT or SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("server: load config: %w", err)
	}

	if uri := config.LogMongoURI(); uri != "" {
		mh, err := logger.EnableMongo(uri, "console", "logs")
		if err != nil {
			logger.Warn("mongo log handler unavailable", "error", err)
		} else {
			defer mh.Close()
		}
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, sessions will not persist", "error", err)
	}
	storage.Connect()

	// Audit trail; failed queue jobs share its connection.
	trail, err := audit.Open()
	if err != nil {
		return fmt.Errorf("server: open audit store: %w", err)
	}
	defer trail.Close()
	queue.UseDB(trail.DB())

	// Background jobs.
	jobs.RegisterAll()
	if config.Get("QUEUE_DRIVER", "memory") == "redis" && cache.RDB != nil {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	queue.StartWorkers(workerCtx, 2)

	// Notification push channel.
	hub := ws.NewHub()
	go hub.Run()
	center := notify.NewCenter()
	center.SetBroadcaster(hub)
	listeners.RegisterAll(hub, trail)

	// Upstream client and collections.
	client := remote.New()
	products := resource.NewCollection("products", client.Products, center)
	users := resource.NewCollection("users", client.Users, center)
	orders := resource.NewCollection("orders", client.Orders, center)
	shipping := settings.NewShipping(client.Shipping, client.SaveShipping, center)
	payment := settings.NewPayment(client.PaymentMethods, client.SavePaymentMethods, center)

	// Warm every snapshot concurrently; a cold start with the upstream
	// down still serves, collections just begin empty.
	warmup := workerpool.New(4)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	for i, err := range warmup.RunAll(
		func() error { return products.Load(ctx) },
		func() error { return users.Load(ctx) },
		func() error { return orders.Load(ctx) },
		func() error { return shipping.Load(ctx) },
	) {
		if err != nil {
			logger.Warn("warm-up load failed", "task", i, "error", err)
		}
	}
	cancel()
	warmup.Shutdown()

	// Dashboard stats over GraphQL.
	schema, err := consolegraphql.NewSchema(dashboard.RootQuery(&dashboard.Source{
		Products: products,
		Users:    users,
		Orders:   orders,
	}))
	if err != nil {
		return fmt.Errorf("server: build graphql schema: %w", err)
	}

	// Health over gRPC, reporting upstream reachability.
	var grpcStop func()
	if port := config.GRPCPort(); port != "" {
		srv, _, err := consolegrpc.Start(port, client.Healthy)
		if err != nil {
			return fmt.Errorf("server: start grpc: %w", err)
		}
		grpcStop = func() { consolegrpc.Stop(srv) }
	}

	r := router.New()
	routes.Register(r, routes.Deps{
		Auth: controllers.NewAuthController(),
		Panel: controllers.NewPanelController(controllers.PanelDeps{
			Client:   client,
			Products: products,
			Users:    users,
			Orders:   orders,
			Sections: section.NewRouter(),
			Modals:   modal.NewController(),
			Latch:    form.NewLatch(),
			Center:   center,
			Payment:  payment,
			Trail:    trail,
		}),
		Settings: controllers.NewSettingsController(shipping, payment, trail),
		Hub:      hub,
		Schema:   schema,
	})

	addr := ":" + config.AppPort()
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("console listening", "addr", addr, "upstream", config.APIBaseURL())
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: listen: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
	if grpcStop != nil {
		grpcStop()
	}
	return nil
}
