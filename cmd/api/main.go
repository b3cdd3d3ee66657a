package main

import (
	"context"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	//.envは無くてもよい（環境変数があればそちらを使う）
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal("db connect failed", zap.Error(err))
	}

	if err := pingWithRetry(gormDB, cfg, logger); err != nil {
		logger.Fatal("db unreachable", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.Party{},
		&model.Product{},
		&model.StockLevel{},
		&model.StockMovement{},
		&model.Sale{},
		&model.SaleLine{},
	); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	partyRepo := infraRepo.NewPartyGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	stockRepo := infraRepo.NewStockGormRepository(gormDB)
	saleRepo := infraRepo.NewSaleGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Ledgerとポリシー
	ledger := usecase.NewStockLedger(txManager, stockRepo)
	sellerResolver := usecase.NewFirstActiveSellerResolver(partyRepo)

	//Usecase生成
	partyUC := usecase.NewPartyUsecase(partyRepo)
	productUC := usecase.NewProductUsecase(txManager, ledger, productRepo, sellerResolver, logger)
	movementUC := usecase.NewMovementUsecase(ledger, productRepo, partyRepo, stockRepo, logger)
	saleUC := usecase.NewSaleUsecase(txManager, ledger, saleRepo, partyRepo, productRepo, logger)

	//Handler生成
	h := server.Handlers{
		Health:   handler.NewHealthHandler(),
		Party:    handler.NewPartyHandler(partyUC),
		Product:  handler.NewProductHandler(productUC),
		Movement: handler.NewMovementHandler(movementUC),
		Sale:     handler.NewSaleHandler(saleUC),
	}

	e := server.New(logger, h)

	addr := ":" + cfg.Port
	logger.Info("server starting", zap.String("addr", addr))
	if err := server.Start(e, addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// 起動直後はDBがまだ立ち上がっていないことがあるのでリトライ
func pingWithRetry(gormDB *gorm.DB, cfg config.Config, logger *zap.Logger) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	const maxRetries = 5
	timeout := time.Duration(cfg.PoolTimeoutSeconds) * time.Second

	for attempt := 1; ; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err = sqlDB.PingContext(ctx)
		cancel()
		if err == nil {
			return nil
		}
		if attempt >= maxRetries {
			return err
		}
		logger.Warn("db ping failed, retrying",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		time.Sleep(2 * time.Second)
	}
}
