package usecase_test

import (
	"context"
	"sync"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
)

// =====================
// インメモリのトランザクション付きストア。
// WithinTxはコピーに対してfnを実行し、成功時だけ本体へ反映する。
// mutexで書き込みを直列化する（DBの行ロック相当）
// =====================

type inmemState struct {
	parties   map[uuid.UUID]model.Party
	products  map[uuid.UUID]model.Product
	levels    map[uuid.UUID]model.StockLevel // key: productID
	movements []model.StockMovement
	sales     map[uuid.UUID]model.Sale
	lines     []model.SaleLine
}

func newInmemState() *inmemState {
	return &inmemState{
		parties:  map[uuid.UUID]model.Party{},
		products: map[uuid.UUID]model.Product{},
		levels:   map[uuid.UUID]model.StockLevel{},
		sales:    map[uuid.UUID]model.Sale{},
	}
}

func (s *inmemState) clone() *inmemState {
	c := newInmemState()
	for k, v := range s.parties {
		c.parties[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.levels {
		c.levels[k] = v
	}
	c.movements = append(c.movements, s.movements...)
	for k, v := range s.sales {
		c.sales[k] = v
	}
	c.lines = append(c.lines, s.lines...)
	return c
}

type inmemStore struct {
	mu    sync.Mutex
	state *inmemState
}

func newInmemStore() *inmemStore {
	return &inmemStore{state: newInmemState()}
}

func (st *inmemStore) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	work := st.state.clone()
	if err := fn(&inmemRepos{state: work}); err != nil {
		return err
	}
	st.state = work
	return nil
}

// Tx外の読み取り用ハンドル。コミットで差し替わった最新のstateを毎回読む
func (st *inmemStore) Repos() *inmemRepos {
	return &inmemRepos{st: st}
}

// stがあればTx外：アクセスごとにロックして現在のstateを参照する。
// stがnilならTx内：WithinTxが渡した作業コピーに固定
type inmemRepos struct {
	st    *inmemStore
	state *inmemState
}

func (r *inmemRepos) begin() (*inmemState, func()) {
	if r.st == nil {
		return r.state, func() {}
	}
	r.st.mu.Lock()
	return r.st.state, r.st.mu.Unlock
}

func (r *inmemRepos) Parties() repo.PartyRepository    { return (*inmemPartyRepo)(r) }
func (r *inmemRepos) Products() repo.ProductRepository { return (*inmemProductRepo)(r) }
func (r *inmemRepos) Stock() repo.StockRepository      { return (*inmemStockRepo)(r) }
func (r *inmemRepos) Sales() repo.SaleRepository       { return (*inmemSaleRepo)(r) }

type inmemPartyRepo inmemRepos

func (r *inmemPartyRepo) FindByID(ctx context.Context, id uuid.UUID) (model.Party, error) {
	s, done := (*inmemRepos)(r).begin()
	defer done()
	p, ok := s.parties[id]
	if !ok {
		return model.Party{}, repo.ErrNotFound
	}
	return p, nil
}

func (r *inmemPartyRepo) ListByProfile(ctx context.Context, profile *model.PartyProfile) ([]model.Party, error) {
	s, done := (*inmemRepos)(r).begin()
	defer done()
	var out []model.Party
	for _, p := range s.parties {
		if !p.IsActive {
			continue
		}
		if profile != nil && p.Profile != *profile {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *inmemPartyRepo) ExistsActiveByDocument(ctx context.Context, document string) (bool, error) {
	s, done := (*inmemRepos)(r).begin()
	defer done()
	for _, p := range s.parties {
		if p.IsActive && p.Document == document {
			return true, nil
		}
	}
	return false, nil
}

func (r *inmemPartyRepo) Create(ctx context.Context, p model.Party) error {
	s, done := (*inmemRepos)(r).begin()
	defer done()
	s.parties[p.ID] = p
	return nil
}

type inmemProductRepo inmemRepos

func (r *inmemProductRepo) FindActiveByID(ctx context.Context, id uuid.UUID) (model.Product, error) {
	s, done := (*inmemRepos)(r).begin()
	defer done()
	p, ok := s.products[id]
	if !ok || !p.IsActive {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

func (r *inmemProductRepo) FindByID(ctx context.Context, id uuid.UUID) (model.Product, error) {
	s, done := (*inmemRepos)(r).begin()
	defer done()
	p, ok := s.products[id]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

func (r *inmemProductRepo) ExistsActive(ctx context.Context, id uuid.UUID) (bool, error) {
	s, done := (*inmemRepos)(r).begin()
	defer done()
	p, ok := s.products[id]
	return ok && p.IsActive, nil
}

func (r *inmemProductRepo) ListActive(ctx context.Context) ([]model.Product, error) {
	s, done := (*inmemRepos)(r).begin()
	defer done()
	var out []model.Product
	for _, p := range s.products {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *inmemProductRepo) Create(ctx context.Context, p model.Product) error {
	s, done := (*inmemRepos)(r).begin()
	defer done()
	s.products[p.ID] = p
	return nil
}

type inmemStockRepo inmemRepos

func (r *inmemStockRepo) FindLevelByProductID(ctx context.Context, productID uuid.UUID) (model.StockLevel, error) {
	s, done := (*inmemRepos)(r).begin()
	defer done()
	level, ok := s.levels[productID]
	if !ok || !level.IsActive {
		return model.StockLevel{}, repo.ErrNotFound
	}
	return level, nil
}

func (r *inmemStockRepo) ApplyDeltaIfEnough(ctx context.Context, productID uuid.UUID, delta int64) (bool, error) {
	s, done := (*inmemRepos)(r).begin()
	defer done()
	level, ok := s.levels[productID]
	if !ok || !level.IsActive {
		return false, nil
	}
	if level.Quantity+delta < 0 {
		return false, nil
	}
	level.Quantity += delta
	level.UpdatedAt = time.Now()
	s.levels[productID] = level
	return true, nil
}

func (r *inmemStockRepo) CreateLevel(ctx context.Context, level model.StockLevel) error {
	s, done := (*inmemRepos)(r).begin()
	defer done()
	s.levels[level.ProductID] = level
	return nil
}

func (r *inmemStockRepo) CreateMovement(ctx context.Context, m model.StockMovement) error {
	s, done := (*inmemRepos)(r).begin()
	defer done()
	s.movements = append(s.movements, m)
	return nil
}

func (r *inmemStockRepo) ListMovementsByProductID(ctx context.Context, productID uuid.UUID) ([]model.StockMovement, error) {
	s, done := (*inmemRepos)(r).begin()
	defer done()
	var out []model.StockMovement
	for _, m := range s.movements {
		if m.ProductID == productID && m.IsActive {
			out = append(out, m)
		}
	}
	return out, nil
}

type inmemSaleRepo inmemRepos

func (r *inmemSaleRepo) Create(ctx context.Context, s model.Sale) error {
	state, done := (*inmemRepos)(r).begin()
	defer done()
	state.sales[s.ID] = s
	return nil
}

func (r *inmemSaleRepo) CreateLines(ctx context.Context, lines []model.SaleLine) error {
	s, done := (*inmemRepos)(r).begin()
	defer done()
	s.lines = append(s.lines, lines...)
	return nil
}

func (r *inmemSaleRepo) FindByID(ctx context.Context, id uuid.UUID) (model.Sale, error) {
	state, done := (*inmemRepos)(r).begin()
	defer done()
	s, ok := state.sales[id]
	if !ok || !s.IsActive {
		return model.Sale{}, repo.ErrNotFound
	}
	return s, nil
}

func (r *inmemSaleRepo) ListLinesBySaleID(ctx context.Context, saleID uuid.UUID) ([]model.SaleLine, error) {
	s, done := (*inmemRepos)(r).begin()
	defer done()
	var out []model.SaleLine
	for _, l := range s.lines {
		if l.SaleID == saleID && l.IsActive {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *inmemSaleRepo) List(ctx context.Context, f repo.SaleListFilter) ([]model.Sale, error) {
	state, done := (*inmemRepos)(r).begin()
	defer done()
	var out []model.Sale
	for _, s := range state.sales {
		if !s.IsActive {
			continue
		}
		if f.PartyID != nil && s.PartyID != *f.PartyID {
			continue
		}
		if f.Branch != nil && (s.Branch == nil || *s.Branch != *f.Branch) {
			continue
		}
		if f.From != nil && s.OccurredAt.Before(*f.From) {
			continue
		}
		if f.To != nil && s.OccurredAt.After(*f.To) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}
