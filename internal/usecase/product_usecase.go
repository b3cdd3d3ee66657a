package usecase

import (
	"context"
	"fmt"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProductUsecase struct {
	tx       repo.TransactionManager
	ledger   *StockLedger
	products repo.ProductRepository
	seller   ActingSellerResolver
	logger   *zap.Logger
}

func NewProductUsecase(
	tx repo.TransactionManager,
	ledger *StockLedger,
	products repo.ProductRepository,
	seller ActingSellerResolver,
	logger *zap.Logger,
) *ProductUsecase {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &ProductUsecase{
		tx:       tx,
		ledger:   ledger,
		products: products,
		seller:   seller,
		logger:   logger,
	}
}

type CreateProductInput struct {
	Name            string          `json:"name"`
	SaleUnit        string          `json:"sale_unit"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	InitialQuantity int64           `json:"initial_quantity"`
}

type CreateProductOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// CreateProduct は商品と初期在庫を同一トランザクションで作成する
func (u *ProductUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (CreateProductOutput, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return CreateProductOutput{}, errInvalidInput("name required")
	}

	saleUnit := strings.TrimSpace(in.SaleUnit)
	if saleUnit == "" {
		return CreateProductOutput{}, errInvalidInput("sale_unit required")
	}

	if in.InitialQuantity < 0 {
		return CreateProductOutput{}, errInvalidInput("initial_quantity must be >= 0")
	}

	if !in.UnitPrice.IsPositive() {
		return CreateProductOutput{}, errInvalidInput("unit_price must be greater than 0")
	}

	// 記録者をTxを開く前に解決（居なければここで弾く）
	seller, err := u.seller.Resolve(ctx)
	if err != nil {
		return CreateProductOutput{}, err
	}

	productID := uuid.New()

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Products().Create(ctx, model.Product{
			ID:        productID,
			Name:      name,
			SaleUnit:  saleUnit,
			UnitPrice: in.UnitPrice,
			IsActive:  true,
		}); err != nil {
			return errDB()
		}

		return u.ledger.ProvisionInitialIn(ctx, r, productID, seller.ID, in.InitialQuantity)
	})
	if err != nil {
		return CreateProductOutput{}, err
	}

	u.logger.Info("product created",
		zap.String("product_id", productID.String()),
		zap.Int64("initial_quantity", in.InitialQuantity),
	)

	return CreateProductOutput{
		ID:      productID.String(),
		Message: fmt.Sprintf("Product created with initial stock of %d units", in.InitialQuantity),
	}, nil
}

type ProductOutput struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	SaleUnit  string          `json:"sale_unit"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Stock     int64           `json:"stock"`
}

func (u *ProductUsecase) GetProduct(ctx context.Context, idStr string) (ProductOutput, error) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return ProductOutput{}, errInvalidInput("invalid product id")
	}

	p, err := u.products.FindActiveByID(ctx, id)
	if err == repo.ErrNotFound {
		return ProductOutput{}, errProductNotFound()
	}
	if err != nil {
		return ProductOutput{}, errDB()
	}

	stock, err := u.ledger.GetAvailable(ctx, id)
	if err != nil {
		return ProductOutput{}, err
	}

	return ProductOutput{
		ID:        p.ID.String(),
		Name:      p.Name,
		SaleUnit:  p.SaleUnit,
		UnitPrice: p.UnitPrice,
		Stock:     stock,
	}, nil
}

func (u *ProductUsecase) ListProducts(ctx context.Context) ([]ProductOutput, error) {
	products, err := u.products.ListActive(ctx)
	if err != nil {
		return nil, errDB()
	}

	outs := make([]ProductOutput, 0, len(products))
	for _, p := range products {
		stock, err := u.ledger.GetAvailable(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		outs = append(outs, ProductOutput{
			ID:        p.ID.String(),
			Name:      p.Name,
			SaleUnit:  p.SaleUnit,
			UnitPrice: p.UnitPrice,
			Stock:     stock,
		})
	}
	return outs, nil
}
