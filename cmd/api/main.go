package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"checkout/internal/config"
	"checkout/internal/handler"
	"checkout/internal/infra/db"
	infraRepo "checkout/internal/infra/repository"
	"checkout/internal/server"
	"checkout/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func main() {
	if err := run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	//.envは任意
	if err := config.LoadEnvFile(".env", "../.env"); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	lg, err := newLogger(cfg.GoEnv)
	if err != nil {
		return err
	}
	defer func() { _ = lg.Sync() }()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		return err
	}
	if err := db.Migrate(gormDB); err != nil {
		return err
	}
	lg.Info("Database ready")

	//Repository（GORM実装）生成
	txm := infraRepo.NewTxManagerGorm(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB, txm)

	//Usecase / Handler
	orderUC := usecase.NewOrderUsecase(orderRepo, txm, &uuidGenerator{})
	orderH := handler.NewOrderHandler(orderUC)
	healthH := handler.NewHealthHandler(func() error { return db.Ping(gormDB) })

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := server.New(lg, orderH, healthH)
	return server.Start(ctx, lg, e, cfg.Addr(), cfg.ShutdownTimeout)
}
