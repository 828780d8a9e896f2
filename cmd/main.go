package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/driver-dashboard/internal/app"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/config"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/handler"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/notify"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/postgres"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/repo"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/service"
	"github.com/SergeyBogomolovv/driver-dashboard/pkg/cache"
	"github.com/SergeyBogomolovv/driver-dashboard/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Driver Dashboard API
// @version         1.0
// @description     Документация HTTP API
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(context.Background(), conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to migrate db", postgres.Migrate(context.Background(), db))

	store := repo.NewSQLRepo(db)
	txManager := trm.NewManager(db)
	lruCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL, cache.WithJanitorInterval(conf.Cache.JanitorInterval))

	dashboard := service.NewDashboardService(logger, txManager, store, store, lruCache)

	kafkaNotifier := notify.NewKafka(logger, conf.Kafka)
	sink := notify.Multi{notify.NewLogger(logger), kafkaNotifier}
	sessions := service.NewSessionService(logger, dashboard, sink, conf.Session)

	handler.RegisterMetrics(sessions, lruCache)
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, dashboard)
	httpHandler := handler.NewHTTPHandler(logger, sessions, conf.Auth.JWTSecret)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(lruCache, sessions)
	app.SetClosers(kafkaNotifier)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
