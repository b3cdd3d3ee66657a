package usecase

import (
	"context"
	"fmt"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const saleDateLayout = "2006-01-02 15:04:05"

type SaleUsecase struct {
	tx       repo.TransactionManager
	ledger   *StockLedger
	sales    repo.SaleRepository
	parties  repo.PartyRepository
	products repo.ProductRepository
	logger   *zap.Logger
}

func NewSaleUsecase(
	tx repo.TransactionManager,
	ledger *StockLedger,
	sales repo.SaleRepository,
	parties repo.PartyRepository,
	products repo.ProductRepository,
	logger *zap.Logger,
) *SaleUsecase {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &SaleUsecase{
		tx:       tx,
		ledger:   ledger,
		sales:    sales,
		parties:  parties,
		products: products,
		logger:   logger,
	}
}

type SaleLineInput struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type ProcessSaleInput struct {
	CustomerID string          `json:"customer_id"`
	Branch     *string         `json:"branch"`
	Lines      []SaleLineInput `json:"lines"`
}

type ProcessSaleOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type validatedLine struct {
	productID uuid.UUID
	quantity  int64
	subtotal  decimal.Decimal
}

// ProcessSale は複数明細の販売を検証し、
// ヘッダ・明細・在庫引き落としを1トランザクションで確定する
func (u *SaleUsecase) ProcessSale(ctx context.Context, in ProcessSaleInput) (ProcessSaleOutput, error) {
	customerID, err := uuid.Parse(in.CustomerID)
	if err != nil {
		return ProcessSaleOutput{}, errInvalidInput("invalid customer id")
	}

	customer, err := u.parties.FindByID(ctx, customerID)
	if err == repo.ErrNotFound {
		return ProcessSaleOutput{}, errNotFound(fmt.Sprintf("party %s not found", customerID))
	}
	if err != nil {
		return ProcessSaleOutput{}, errDB()
	}
	if !customer.IsActive {
		return ProcessSaleOutput{}, errInactiveClient()
	}

	if len(in.Lines) == 0 {
		return ProcessSaleOutput{}, errInvalidInput("sale must have at least one line")
	}

	// 事前チェック（参考値）。正確なエラーメッセージを
	// 書き込みトランザクションを開く前に返すためのもの。
	// 最終判定はTx内のLedgerが行う
	total := decimal.Zero
	lines := make([]validatedLine, 0, len(in.Lines))

	for _, lineIn := range in.Lines {
		productID, err := uuid.Parse(lineIn.ProductID)
		if err != nil {
			return ProcessSaleOutput{}, errInvalidInput("invalid product id")
		}

		product, err := u.products.FindActiveByID(ctx, productID)
		if err == repo.ErrNotFound {
			return ProcessSaleOutput{}, errProductNotFound()
		}
		if err != nil {
			return ProcessSaleOutput{}, errDB()
		}

		if lineIn.Quantity <= 0 {
			return ProcessSaleOutput{}, errInvalidInput("quantity must be greater than 0")
		}

		available, err := u.ledger.GetAvailable(ctx, productID)
		if err != nil {
			return ProcessSaleOutput{}, err
		}
		if available < lineIn.Quantity {
			return ProcessSaleOutput{}, errBusinessRule(fmt.Sprintf(
				"insufficient stock for product '%s': available %d, requested %d",
				product.Name, available, lineIn.Quantity))
		}

		subtotal := product.UnitPrice.Mul(decimal.NewFromInt(lineIn.Quantity))
		total = total.Add(subtotal)

		lines = append(lines, validatedLine{
			productID: productID,
			quantity:  lineIn.Quantity,
			subtotal:  subtotal,
		})
	}

	saleID := uuid.New()
	now := time.Now()

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Sales().Create(ctx, model.Sale{
			ID:         saleID,
			PartyID:    customerID,
			OccurredAt: now,
			Total:      total,
			Branch:     in.Branch,
			IsActive:   true,
		}); err != nil {
			return errDB()
		}

		saleLines := make([]model.SaleLine, 0, len(lines))
		for _, l := range lines {
			saleLines = append(saleLines, model.SaleLine{
				ID:        uuid.New(),
				SaleID:    saleID,
				ProductID: l.productID,
				Quantity:  l.quantity,
				Subtotal:  l.subtotal,
				IsActive:  true,
			})
		}
		if err := r.Sales().CreateLines(ctx, saleLines); err != nil {
			return errDB()
		}

		// 明細ごとに出庫。どれか1つでも不足なら全体ロールバック
		note := fmt.Sprintf("sale %s", saleID)
		for _, l := range lines {
			if _, err := u.ledger.ApplyDeltaIn(ctx, r, ApplyDeltaInput{
				ProductID: l.productID,
				Kind:      model.MovementOutbound,
				Quantity:  l.quantity,
				PartyID:   customerID,
				Note:      &note,
			}); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return ProcessSaleOutput{}, err
	}

	u.logger.Info("sale created",
		zap.String("sale_id", saleID.String()),
		zap.String("customer_id", customerID.String()),
		zap.Int("lines", len(lines)),
		zap.String("total", total.StringFixed(2)),
	)

	return ProcessSaleOutput{
		ID:      saleID.String(),
		Message: fmt.Sprintf("Sale created successfully. Total: $%s", total.StringFixed(2)),
	}, nil
}

type SaleLineOutput struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type SaleOutput struct {
	ID         string           `json:"id"`
	CustomerID string           `json:"customer_id"`
	OccurredAt string           `json:"occurred_at"`
	Total      decimal.Decimal  `json:"total"`
	Branch     *string          `json:"branch"`
	Lines      []SaleLineOutput `json:"lines"`
}

type ListSalesInput struct {
	CustomerID *string
	Branch     *string
	From       *string
	To         *string
}

func (u *SaleUsecase) ListSales(ctx context.Context, in ListSalesInput) ([]SaleOutput, error) {
	f := repo.SaleListFilter{Branch: in.Branch}

	if in.CustomerID != nil {
		id, err := uuid.Parse(*in.CustomerID)
		if err != nil {
			return nil, errInvalidInput("invalid customer id")
		}
		f.PartyID = &id
	}
	if in.From != nil {
		t, err := time.Parse(saleDateLayout, *in.From)
		if err != nil {
			return nil, errInvalidInput("invalid date format, expected YYYY-MM-DD HH:MM:SS")
		}
		f.From = &t
	}
	if in.To != nil {
		t, err := time.Parse(saleDateLayout, *in.To)
		if err != nil {
			return nil, errInvalidInput("invalid date format, expected YYYY-MM-DD HH:MM:SS")
		}
		f.To = &t
	}

	sales, err := u.sales.List(ctx, f)
	if err != nil {
		return nil, errDB()
	}

	outs := make([]SaleOutput, 0, len(sales))
	for _, s := range sales {
		out, err := u.toSaleOutput(ctx, s)
		if err != nil {
			return nil, err
		}
		outs = append(outs, out)
	}
	return outs, nil
}

func (u *SaleUsecase) GetSale(ctx context.Context, idStr string) (SaleOutput, error) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return SaleOutput{}, errInvalidInput("invalid sale id")
	}

	s, err := u.sales.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return SaleOutput{}, errNotFound(fmt.Sprintf("sale %s not found", id))
	}
	if err != nil {
		return SaleOutput{}, errDB()
	}

	return u.toSaleOutput(ctx, s)
}

func (u *SaleUsecase) toSaleOutput(ctx context.Context, s model.Sale) (SaleOutput, error) {
	lines, err := u.sales.ListLinesBySaleID(ctx, s.ID)
	if err != nil {
		return SaleOutput{}, errDB()
	}

	lineOuts := make([]SaleLineOutput, 0, len(lines))
	for _, l := range lines {
		// 販売後に商品が非活性化されていても明細は表示する
		product, err := u.products.FindByID(ctx, l.ProductID)
		if err == repo.ErrNotFound {
			product = model.Product{Name: "(deleted product)"}
		} else if err != nil {
			return SaleOutput{}, errDB()
		}

		lineOuts = append(lineOuts, SaleLineOutput{
			ProductID:   l.ProductID.String(),
			ProductName: product.Name,
			Quantity:    l.Quantity,
			UnitPrice:   product.UnitPrice,
			Subtotal:    l.Subtotal,
		})
	}

	return SaleOutput{
		ID:         s.ID.String(),
		CustomerID: s.PartyID.String(),
		OccurredAt: s.OccurredAt.Format(saleDateLayout),
		Total:      s.Total,
		Branch:     s.Branch,
		Lines:      lineOuts,
	}, nil
}
