package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderconsole/internal/background"
	"orderconsole/internal/config"
	"orderconsole/internal/handler"
	"orderconsole/internal/infra/backend"
	"orderconsole/internal/infra/db"
	"orderconsole/internal/infra/event"
	"orderconsole/internal/infra/metrics"
	infraRepo "orderconsole/internal/infra/repository"
	"orderconsole/internal/server"
	"orderconsole/internal/usecase"
	"orderconsole/internal/validator"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type publisher interface {
	usecase.EventPublisher
	Close() error
}

func main() {
	//.envは無くてもよい（本番は環境変数のみ）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	var logger *zap.Logger
	if cfg.IsProd() {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting order console",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.GoEnv),
		zap.String("backend", cfg.Backend.BaseURL),
	)

	//DB接続（監査ログ用）
	gormDB, err := db.Connect(cfg.Postgres, cfg.IsProd())
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	//metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	//event publisher
	var pub publisher = event.NopPublisher{}
	if cfg.Kafka.Enabled() {
		pub = event.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		logger.Info("publishing lifecycle events", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}
	defer func() {
		if err := pub.Close(); err != nil {
			logger.Warn("failed to close publisher", zap.Error(err))
		}
	}()

	//Repository生成
	v := validator.New()
	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, v, logger, m)
	orderRepo := backend.NewOrderBackend(client)
	refundRepo := backend.NewRefundBackend(client)
	auditRepo := infraRepo.NewAuditLogGormRepository(gormDB)

	//Usecase生成
	rec := usecase.NewRecorder(auditRepo, pub, &uuidGenerator{}, &realClock{}, logger)
	orderUC := usecase.NewAdminOrderUsecase(orderRepo, rec, m, logger)
	refundUC := usecase.NewRefundUsecase(orderRepo, refundRepo, rec, m, logger)
	auditUC := usecase.NewAuditLogUsecase(auditRepo)

	//Handler生成
	e := server.New(cfg, server.Handlers{
		Orders:   handler.NewAdminOrderHandler(orderUC, v),
		Refunds:  handler.NewRefundHandler(refundUC, v),
		Audit:    handler.NewAuditLogHandler(auditUC),
		Statuses: handler.NewOrderStatusHandler(),
	}, reg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//返金照合ジョブ（サービストークンがある時だけ）
	if cfg.Backend.ServiceToken != "" {
		reconciler := background.NewRefundReconciler(orderUC, refundUC, cfg.Backend.ServiceToken, cfg.RefundReconcileInterval, logger)
		go reconciler.Run(ctx)
	} else {
		logger.Info("refund reconciler disabled: BACKEND_SERVICE_TOKEN not set")
	}

	if err := server.Start(ctx, e, server.Addr(cfg.Port), logger); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
	}
	logger.Info("server exited")
}
