package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fursheti/catering-orders/internal/cart"
	cartredis "github.com/fursheti/catering-orders/internal/cart/redis"
	cartsqlite "github.com/fursheti/catering-orders/internal/cart/sqlite"
	"github.com/fursheti/catering-orders/internal/catalog"
	"github.com/fursheti/catering-orders/internal/checkout"
	"github.com/fursheti/catering-orders/internal/httpx"
	"github.com/fursheti/catering-orders/internal/pkg/telemetry"
	"github.com/fursheti/catering-orders/internal/submit"
)

func main() {
	telemetry.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.SetupTracer(ctx, getEnv("OTEL_SERVICE_NAME", "catering-server"))
	if err != nil {
		slog.Error("failed to initialise tracer", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			slog.Error("tracer shutdown error", "error", err)
		}
	}()

	products := catalog.Default()
	snapshots := openSnapshotStore(ctx)

	sessions := httpx.NewSessions(snapshots, products)
	compiler := checkout.NewCompiler(products)
	gateway := submit.NewGateway(submit.Config{
		ServiceID:  os.Getenv("EMAILJS_SERVICE_ID"),
		TemplateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
		PublicKey:  os.Getenv("EMAILJS_PUBLIC_KEY"),
		Inbox:      getEnv("ORDER_INBOX", "info@fursheti.ge"),
	})

	handler := httpx.NewHandler(products, sessions, compiler, gateway)
	router := httpx.NewRouter(handler, sessions)

	addr := ":" + getEnv("PORT", "8080")
	server := &http.Server{Addr: addr, Handler: router}

	go func() {
		slog.Info("catering server running", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}
}

// openSnapshotStore picks the cart persistence backend: Redis when
// REDIS_ADDR is set, SQLite otherwise. A backend that fails to open
// degrades to the in-memory store rather than refusing to start —
// buyers keep a working cart either way.
func openSnapshotStore(ctx context.Context) cart.SnapshotStore {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		store := cartredis.New(addr)
		if err := store.Ping(ctx); err != nil {
			slog.Warn("redis unreachable, carts will not survive restarts", "addr", addr, "error", err)
			return cart.NewMemoryStore()
		}
		slog.Info("cart snapshots in redis", "addr", addr)
		return store
	}

	path := getEnv("CART_DB_PATH", "./data/carts.db")
	store, err := cartsqlite.Open(path)
	if err != nil {
		slog.Warn("sqlite unavailable, carts will not survive restarts", "path", path, "error", err)
		return cart.NewMemoryStore()
	}
	slog.Info("cart snapshots in sqlite", "path", path)
	return store
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
