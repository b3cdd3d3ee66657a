package usecase_test

import (
	"context"
	"strings"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	parties  repo.PartyRepository
	products repo.ProductRepository
	stock    repo.StockRepository
	sales    repo.SaleRepository
}

func (r *TxReposMock) Parties() repo.PartyRepository    { return r.parties }
func (r *TxReposMock) Products() repo.ProductRepository { return r.products }
func (r *TxReposMock) Stock() repo.StockRepository      { return r.stock }
func (r *TxReposMock) Sales() repo.SaleRepository       { return r.sales }

// =====================
// Repository mocks
// =====================

type PartyRepoMock struct{ mock.Mock }

func (m *PartyRepoMock) FindByID(ctx context.Context, id uuid.UUID) (model.Party, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Party)
	return p, args.Error(1)
}

func (m *PartyRepoMock) ListByProfile(ctx context.Context, profile *model.PartyProfile) ([]model.Party, error) {
	args := m.Called(ctx, profile)
	parties, _ := args.Get(0).([]model.Party)
	return parties, args.Error(1)
}

func (m *PartyRepoMock) ExistsActiveByDocument(ctx context.Context, document string) (bool, error) {
	args := m.Called(ctx, document)
	return args.Bool(0), args.Error(1)
}

func (m *PartyRepoMock) Create(ctx context.Context, p model.Party) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) FindActiveByID(ctx context.Context, id uuid.UUID) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id uuid.UUID) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) ExistsActive(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *ProductRepoMock) ListActive(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type StockRepoMock struct{ mock.Mock }

func (m *StockRepoMock) FindLevelByProductID(ctx context.Context, productID uuid.UUID) (model.StockLevel, error) {
	args := m.Called(ctx, productID)
	level, _ := args.Get(0).(model.StockLevel)
	return level, args.Error(1)
}

func (m *StockRepoMock) ApplyDeltaIfEnough(ctx context.Context, productID uuid.UUID, delta int64) (bool, error) {
	args := m.Called(ctx, productID, delta)
	return args.Bool(0), args.Error(1)
}

func (m *StockRepoMock) CreateLevel(ctx context.Context, level model.StockLevel) error {
	args := m.Called(ctx, level)
	return args.Error(0)
}

func (m *StockRepoMock) CreateMovement(ctx context.Context, mv model.StockMovement) error {
	args := m.Called(ctx, mv)
	return args.Error(0)
}

func (m *StockRepoMock) ListMovementsByProductID(ctx context.Context, productID uuid.UUID) ([]model.StockMovement, error) {
	args := m.Called(ctx, productID)
	movements, _ := args.Get(0).([]model.StockMovement)
	return movements, args.Error(1)
}

type SaleRepoMock struct{ mock.Mock }

func (m *SaleRepoMock) Create(ctx context.Context, s model.Sale) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *SaleRepoMock) CreateLines(ctx context.Context, lines []model.SaleLine) error {
	args := m.Called(ctx, lines)
	return args.Error(0)
}

func (m *SaleRepoMock) FindByID(ctx context.Context, id uuid.UUID) (model.Sale, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.Sale)
	return s, args.Error(1)
}

func (m *SaleRepoMock) ListLinesBySaleID(ctx context.Context, saleID uuid.UUID) ([]model.SaleLine, error) {
	args := m.Called(ctx, saleID)
	lines, _ := args.Get(0).([]model.SaleLine)
	return lines, args.Error(1)
}

func (m *SaleRepoMock) List(ctx context.Context, f repo.SaleListFilter) ([]model.Sale, error) {
	args := m.Called(ctx, f)
	sales, _ := args.Get(0).([]model.Sale)
	return sales, args.Error(1)
}

// =====================
// Helpers
// =====================

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}

func assertAppCode(t *testing.T, err error, wantCode string) {
	t.Helper()
	if assert.Error(t, err) {
		ae, ok := usecase.AsAppError(err)
		if assert.True(t, ok, "err=%v is not AppError", err) {
			assert.Equal(t, wantCode, ae.Code)
		}
	}
}
