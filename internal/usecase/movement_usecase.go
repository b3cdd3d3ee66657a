package usecase

import (
	"context"
	"fmt"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovementUsecase struct {
	ledger   *StockLedger
	products repo.ProductRepository
	parties  repo.PartyRepository
	stock    repo.StockRepository
	logger   *zap.Logger
}

func NewMovementUsecase(
	ledger *StockLedger,
	products repo.ProductRepository,
	parties repo.PartyRepository,
	stock repo.StockRepository,
	logger *zap.Logger,
) *MovementUsecase {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &MovementUsecase{
		ledger:   ledger,
		products: products,
		parties:  parties,
		stock:    stock,
		logger:   logger,
	}
}

type RegisterMovementInput struct {
	ProductID string  `json:"product_id"`
	Kind      string  `json:"kind"`
	PartyID   string  `json:"party_id"`
	Quantity  int64   `json:"quantity"`
	Note      *string `json:"note"`
}

type RegisterMovementOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// RegisterMovement は在庫移動を検証してLedgerに委譲する。
// 検証は先勝ち（最初の違反で即終了）
func (u *MovementUsecase) RegisterMovement(ctx context.Context, in RegisterMovementInput) (RegisterMovementOutput, error) {
	productID, err := uuid.Parse(in.ProductID)
	if err != nil {
		return RegisterMovementOutput{}, errInvalidInput("invalid product id")
	}

	product, err := u.products.FindActiveByID(ctx, productID)
	if err == repo.ErrNotFound {
		return RegisterMovementOutput{}, errProductNotFound()
	}
	if err != nil {
		return RegisterMovementOutput{}, errDB()
	}

	partyID, err := uuid.Parse(in.PartyID)
	if err != nil {
		return RegisterMovementOutput{}, errInvalidInput("invalid party id")
	}

	party, err := u.parties.FindByID(ctx, partyID)
	if err == repo.ErrNotFound {
		return RegisterMovementOutput{}, errNotFound(fmt.Sprintf("party %s not found", partyID))
	}
	if err != nil {
		return RegisterMovementOutput{}, errDB()
	}
	if !party.IsActive {
		return RegisterMovementOutput{}, errInactiveClient()
	}

	if in.Quantity <= 0 {
		return RegisterMovementOutput{}, errInvalidInput("quantity must be greater than 0")
	}

	kind, ok := model.ParseMovementKind(in.Kind)
	if !ok {
		return RegisterMovementOutput{}, errInvalidInput(
			"invalid movement kind. allowed values: INBOUND, OUTBOUND, ADJUSTMENT")
	}

	movementID, err := u.ledger.ApplyDelta(ctx, ApplyDeltaInput{
		ProductID: productID,
		Kind:      kind,
		Quantity:  in.Quantity,
		PartyID:   partyID,
		Note:      in.Note,
	})
	if err != nil {
		return RegisterMovementOutput{}, err
	}

	u.logger.Info("movement registered",
		zap.String("movement_id", movementID.String()),
		zap.String("product_id", productID.String()),
		zap.String("kind", string(kind)),
		zap.Int64("quantity", in.Quantity),
	)

	// メッセージはコミット後に組み立てる（結果に影響させない）
	var msg string
	switch kind {
	case model.MovementInbound:
		msg = fmt.Sprintf("Inbound recorded: +%d units of '%s'. Stock updated.", in.Quantity, product.Name)
	case model.MovementOutbound:
		msg = fmt.Sprintf("Outbound recorded: -%d units of '%s'. Stock updated.", in.Quantity, product.Name)
	default:
		msg = fmt.Sprintf("Adjustment recorded: %d units of '%s'. Stock updated.", in.Quantity, product.Name)
	}

	return RegisterMovementOutput{
		ID:      movementID.String(),
		Message: msg,
	}, nil
}

type AvailabilityOutput struct {
	ProductID string `json:"product_id"`
	Available int64  `json:"available"`
}

func (u *MovementUsecase) GetAvailability(ctx context.Context, productIDStr string) (AvailabilityOutput, error) {
	productID, err := uuid.Parse(productIDStr)
	if err != nil {
		return AvailabilityOutput{}, errInvalidInput("invalid product id")
	}

	exists, err := u.products.ExistsActive(ctx, productID)
	if err != nil {
		return AvailabilityOutput{}, errDB()
	}
	if !exists {
		return AvailabilityOutput{}, errProductNotFound()
	}

	available, err := u.ledger.GetAvailable(ctx, productID)
	if err != nil {
		return AvailabilityOutput{}, err
	}

	return AvailabilityOutput{
		ProductID: productID.String(),
		Available: available,
	}, nil
}

type MovementOutput struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	Kind       string    `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`
	PartyID    string    `json:"party_id"`
	Quantity   int64     `json:"quantity"`
	Note       *string   `json:"note"`
}

// 移動履歴（監査ログ）を新しい順で
func (u *MovementUsecase) ListMovements(ctx context.Context, productIDStr string) ([]MovementOutput, error) {
	productID, err := uuid.Parse(productIDStr)
	if err != nil {
		return nil, errInvalidInput("invalid product id")
	}

	exists, err := u.products.ExistsActive(ctx, productID)
	if err != nil {
		return nil, errDB()
	}
	if !exists {
		return nil, errProductNotFound()
	}

	movements, err := u.stock.ListMovementsByProductID(ctx, productID)
	if err != nil {
		return nil, errDB()
	}

	outs := make([]MovementOutput, 0, len(movements))
	for _, m := range movements {
		outs = append(outs, MovementOutput{
			ID:         m.ID.String(),
			ProductID:  m.ProductID.String(),
			Kind:       string(m.Kind),
			OccurredAt: m.OccurredAt,
			PartyID:    m.PartyID.String(),
			Quantity:   m.Quantity,
			Note:       m.Note,
		})
	}
	return outs, nil
}
