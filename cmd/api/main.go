package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Werneck0live/calculadora-pj/internal/admin"
	"github.com/Werneck0live/calculadora-pj/internal/broker"
	"github.com/Werneck0live/calculadora-pj/internal/config"
	"github.com/Werneck0live/calculadora-pj/internal/db"
	"github.com/Werneck0live/calculadora-pj/internal/handlers"
	"github.com/Werneck0live/calculadora-pj/internal/metrics"
	"github.com/Werneck0live/calculadora-pj/internal/rates"
	"github.com/Werneck0live/calculadora-pj/internal/repository"
)

// cmd/api/main.go
func main() {
	cfg := config.Load() // .env

	// Logger JSON "global" - permite usar slog.Info/slog.Error/Warn em qualquer lugar
	_ = config.InitLogger(cfg.LogLevel)
	slog.Info("starting", "port", cfg.Port, "mongo_db", cfg.MongoDB, "redis", cfg.RedisAddr != "")

	// HOOK: admin job (one-off)
	task := flag.String("task", "", "admin task: seed")
	flag.Parse()
	if *task != "" {
		os.Exit(runTask(*task, cfg))
	}

	// conecta Mongo
	client, err := db.NewMongoClient(cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongo connect error: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	repo := repository.NewRateRepository(client.Database(cfg.MongoDB))
	ictx, icancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := repo.EnsureIndexes(ictx); err != nil {
		slog.Warn("ensure_indexes_error", "err", err)
	}
	icancel()

	// cache Redis opcional: sem REDIS_ADDR o serviço consulta direto o Mongo
	var cache rates.Cache
	if cfg.RedisAddr != "" {
		rctx, rcancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err := repository.NewRedisClient(rctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		rcancel()
		if err != nil {
			slog.Warn("redis_unavailable_cache_disabled", "addr", cfg.RedisAddr, "err", err)
		} else {
			defer func() { _ = rdb.Close() }()
			cache = repository.NewRateCache(rdb, cfg.RateCacheTTL)
		}
	}
	rateSvc := rates.NewService(repo, cache, nil, slog.Default())

	// publisher (Rabbit)
	pub, err := broker.NewPublisher(cfg.RabbitURI, cfg.RabbitQueue)
	if err != nil {
		log.Fatalf("rabbitmq connect error: %v", err)
	}
	defer pub.Close()

	h := handlers.NewCalculationHandler(rateSvc, pub, cfg.DefaultISSRate, slog.Default())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           logMiddleware(newMux(h)),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	// start server
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("graceful_shutdown_error", "err", err)
	}
	slog.Info("stopped")
}

func runTask(task string, cfg *config.Config) int {
	switch task {
	case "seed":
		// conecta somente o necessário para o seed
		client, err := db.NewMongoClient(cfg.MongoURI)
		if err != nil {
			slog.Error("mongo_connect_error", "err", err)
			return 1
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		repo := repository.NewRateRepository(client.Database(cfg.MongoDB))
		if err := admin.SeedExchangeRates(context.Background(), repo, slog.Default()); err != nil {
			slog.Error("seed_failed", "err", err)
			return 1
		}
		slog.Info("seed_done")
		return 0 // encerra o processo sem subir HTTP
	default:
		slog.Error("unknown_admin_task", "task", task)
		return 2
	}
}

func newMux(h *handlers.CalculationHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.Health)
	mux.HandleFunc("/api/calculations", h.Calculations)
	mux.HandleFunc("/api/exchange-rates", h.ExchangeRates)
	mux.HandleFunc("/api/exchange-rates/", h.ExchangeRateByCode)
	mux.Handle("/metrics", metrics.Handler())
	return mux
}

type statusRW struct {
	http.ResponseWriter
	status int
}

func (w *statusRW) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRW) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

func logMiddleware(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusRW{ResponseWriter: w}
		mux.ServeHTTP(srw, r)
		if srw.status == 0 {
			srw.status = http.StatusOK
		}
		dur := time.Since(start)
		metrics.ObserveHTTP(r.Method, routeLabel(mux, r), srw.status, dur)
		slog.Info("http_request",
			"method", r.Method, "path", r.URL.Path,
			"status", srw.status, "duration_ms", dur.Milliseconds(),
		)
	})
}

// routeLabel usa o padrão registrado no mux, nunca o path cru: paths
// desconhecidos viram "other" e não criam séries novas no histograma.
func routeLabel(mux *http.ServeMux, r *http.Request) string {
	_, pattern := mux.Handler(r)
	switch pattern {
	case "":
		return "other"
	case "/api/exchange-rates/":
		return "/api/exchange-rates/{code}"
	default:
		return pattern
	}
}
