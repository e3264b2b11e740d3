package voucher_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-lotes-api/internal/application/dto"
	"github.com/jhoicas/stock-lotes-api/internal/application/voucher"
	"github.com/jhoicas/stock-lotes-api/internal/domain"
	"github.com/jhoicas/stock-lotes-api/internal/domain/entity"
	"github.com/jhoicas/stock-lotes-api/internal/domain/repository"
)

// Dobles en memoria. El fakeTxRunner imita el contrato transaccional real:
// toma una instantánea del estado antes de ejecutar fn y la restaura si fn
// devuelve error, de modo que los tests puedan afirmar "cero efectos
// parciales" igual que con un rollback de postgres.

type memStore struct {
	lots      []*entity.Lot
	movements []*entity.StockMovement
	vouchers  []*entity.ExitVoucher
	products  []*entity.Product
	workshops []*entity.Workshop
	lotSeq    int64
	vouchSeq  int64
}

func (s *memStore) snapshot() *memStore {
	cp := &memStore{lotSeq: s.lotSeq, vouchSeq: s.vouchSeq}
	for _, l := range s.lots {
		c := *l
		cp.lots = append(cp.lots, &c)
	}
	for _, m := range s.movements {
		c := *m
		cp.movements = append(cp.movements, &c)
	}
	for _, v := range s.vouchers {
		c := *v
		c.Lines = append([]entity.ExitVoucherLine(nil), v.Lines...)
		cp.vouchers = append(cp.vouchers, &c)
	}
	cp.products = s.products
	cp.workshops = s.workshops
	return cp
}

func (s *memStore) restore(snap *memStore) {
	s.lots = snap.lots
	s.movements = snap.movements
	s.vouchers = snap.vouchers
	s.lotSeq = snap.lotSeq
	s.vouchSeq = snap.vouchSeq
}

type memLotRepo struct{ s *memStore }

var _ repository.LotRepository = (*memLotRepo)(nil)

func (r *memLotRepo) Create(l *entity.Lot) error {
	r.s.lots = append(r.s.lots, l)
	return nil
}

func (r *memLotRepo) CreateBatch(lots []*entity.Lot) error {
	r.s.lots = append(r.s.lots, lots...)
	return nil
}

func (r *memLotRepo) Update(lot *entity.Lot) error {
	for i, l := range r.s.lots {
		if l.ID == lot.ID {
			r.s.lots[i] = lot
			return nil
		}
	}
	return nil
}

func (r *memLotRepo) FindAvailableByProductForUpdate(productID string) ([]*entity.Lot, error) {
	var out []*entity.Lot
	for _, l := range r.s.lots {
		if l.ProductID == productID && l.Status == entity.LotStatusAvailable {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].EntryDate.Equal(out[j].EntryDate) {
			return out[i].ID < out[j].ID
		}
		return out[i].EntryDate.Before(out[j].EntryDate)
	})
	return out, nil
}

func (r *memLotRepo) FindByProduct(productID string) ([]*entity.Lot, error) {
	var out []*entity.Lot
	for _, l := range r.s.lots {
		if l.ProductID == productID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memLotRepo) FindAvailable() ([]*entity.Lot, error) {
	var out []*entity.Lot
	for _, l := range r.s.lots {
		if l.Status == entity.LotStatusAvailable {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memLotRepo) NextSequence() (int64, error) {
	r.s.lotSeq++
	return r.s.lotSeq, nil
}

func (r *memLotRepo) ProductStockLevels() ([]repository.ProductStockLevel, error) {
	return nil, nil
}

type memMovementRepo struct{ s *memStore }

var _ repository.StockMovementRepository = (*memMovementRepo)(nil)

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	r.s.movements = append(r.s.movements, m)
	return nil
}

func (r *memMovementRepo) ListByCriteria(repository.MovementFilter) ([]*entity.StockMovement, error) {
	return r.s.movements, nil
}

func (r *memMovementRepo) SumOutByLot(lotID string) (int64, error) {
	var sum int64
	for _, m := range r.s.movements {
		if m.LotID == lotID && m.Type == entity.MovementTypeOUT {
			sum += m.Quantity
		}
	}
	return sum, nil
}

type memVoucherRepo struct{ s *memStore }

var _ repository.ExitVoucherRepository = (*memVoucherRepo)(nil)

func (r *memVoucherRepo) Create(v *entity.ExitVoucher) error {
	r.s.vouchers = append(r.s.vouchers, v)
	return nil
}

func (r *memVoucherRepo) GetByID(id string) (*entity.ExitVoucher, error) {
	for _, v := range r.s.vouchers {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}

func (r *memVoucherRepo) Update(v *entity.ExitVoucher) error {
	for i, existing := range r.s.vouchers {
		if existing.ID == v.ID {
			r.s.vouchers[i] = v
			return nil
		}
	}
	return nil
}

func (r *memVoucherRepo) List(limit, offset int) ([]*entity.ExitVoucher, error) {
	if offset >= len(r.s.vouchers) {
		return nil, nil
	}
	out := r.s.vouchers[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memVoucherRepo) NextSequence() (int64, error) {
	r.s.vouchSeq++
	return r.s.vouchSeq, nil
}

type memProductRepo struct{ s *memStore }

var _ repository.ProductRepository = (*memProductRepo)(nil)

func (r *memProductRepo) Create(p *entity.Product) error {
	r.s.products = append(r.s.products, p)
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetByReference(string) (*entity.Product, error) { return nil, nil }
func (r *memProductRepo) Update(*entity.Product) error                   { return nil }
func (r *memProductRepo) List(int, int) ([]*entity.Product, error)       { return r.s.products, nil }

type memWorkshopRepo struct{ s *memStore }

var _ repository.WorkshopRepository = (*memWorkshopRepo)(nil)

func (r *memWorkshopRepo) Create(w *entity.Workshop) error {
	r.s.workshops = append(r.s.workshops, w)
	return nil
}

func (r *memWorkshopRepo) GetByID(id string) (*entity.Workshop, error) {
	for _, w := range r.s.workshops {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, nil
}

func (r *memWorkshopRepo) List(int, int) ([]*entity.Workshop, error) { return r.s.workshops, nil }

type fakeTxRunner struct{ s *memStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	repository.LotRepository,
	repository.StockMovementRepository,
	repository.ExitVoucherRepository,
	repository.ProductRepository,
) error) error {
	snap := t.s.snapshot()
	err := fn(&memLotRepo{t.s}, &memMovementRepo{t.s}, &memVoucherRepo{t.s}, &memProductRepo{t.s})
	if err != nil {
		t.s.restore(snap)
	}
	return err
}

func (t *fakeTxRunner) RunReception(_ context.Context, fn func(
	repository.LotRepository,
	repository.StockMovementRepository,
	repository.SupplierOrderRepository,
	repository.ProductRepository,
) error) error {
	panic("no usado en estos tests")
}

func newLot(id, productID string, entrada time.Time, restante int64, costo string) *entity.Lot {
	status := entity.LotStatusAvailable
	if restante == 0 {
		status = entity.LotStatusDepleted
	}
	return &entity.Lot{
		ID:           id,
		Number:       "LOT-2024-" + id,
		ProductID:    productID,
		EntryDate:    entrada,
		InitialQty:   restante,
		RemainingQty: restante,
		UnitCost:     decimal.RequireFromString(costo),
		Status:       status,
	}
}

func newUseCase(s *memStore) *voucher.VoucherUseCase {
	return voucher.NewVoucherUseCase(
		&fakeTxRunner{s},
		&memVoucherRepo{s},
		&memProductRepo{s},
		&memWorkshopRepo{s},
	)
}

func draftVoucher(id string, lines ...entity.ExitVoucherLine) *entity.ExitVoucher {
	return &entity.ExitVoucher{
		ID:     id,
		Number: "BS-000001",
		Date:   time.Now(),
		Status: entity.VoucherStatusDraft,
		Lines:  lines,
	}
}

func TestCreate_GeneraNumeroSecuencialEnBorrador(t *testing.T) {
	s := &memStore{products: []*entity.Product{{ID: "prod-1", Name: "Tornillo M6"}}}
	uc := newUseCase(s)

	resp, err := uc.Create(dto.CreateVoucherRequest{
		Reason: "mantenimiento",
		Lines:  []dto.VoucherLineRequest{{ProductID: "prod-1", Quantity: 10}},
	})

	require.NoError(t, err)
	assert.Equal(t, "BS-000001", resp.Number)
	assert.Equal(t, entity.VoucherStatusDraft, resp.Status)
	require.Len(t, resp.Lines, 1)

	resp2, err := uc.Create(dto.CreateVoucherRequest{
		Reason: "mantenimiento",
		Lines:  []dto.VoucherLineRequest{{ProductID: "prod-1", Quantity: 5}},
	})
	require.NoError(t, err)
	assert.Equal(t, "BS-000002", resp2.Number)
}

func TestCreate_RechazaCantidadNoPositiva(t *testing.T) {
	s := &memStore{products: []*entity.Product{{ID: "prod-1", Name: "Tornillo M6"}}}
	uc := newUseCase(s)

	_, err := uc.Create(dto.CreateVoucherRequest{
		Lines: []dto.VoucherLineRequest{{ProductID: "prod-1", Quantity: 0}},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, s.vouchers)
}

func TestCreate_RechazaValeSinLineas(t *testing.T) {
	uc := newUseCase(&memStore{})

	_, err := uc.Create(dto.CreateVoucherRequest{Reason: "mantenimiento"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValidate_ConsumeFIFOYGeneraMovimientos(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s := &memStore{
		products: []*entity.Product{{ID: "prod-1", Name: "Tornillo M6"}},
		lots: []*entity.Lot{
			newLot("l1", "prod-1", base, 5, "10.00"),
			newLot("l2", "prod-1", base.Add(24*time.Hour), 8, "11.00"),
		},
		vouchers: []*entity.ExitVoucher{draftVoucher("v1",
			entity.ExitVoucherLine{ID: "ln1", VoucherID: "v1", ProductID: "prod-1", Quantity: 12},
		)},
	}
	uc := newUseCase(s)

	resp, err := uc.Validate(context.Background(), "v1")

	require.NoError(t, err)
	assert.Equal(t, entity.VoucherStatusValidated, resp.Status)

	// l1 agotado, l2 con 1 unidad.
	assert.Equal(t, int64(0), s.lots[0].RemainingQty)
	assert.Equal(t, entity.LotStatusDepleted, s.lots[0].Status)
	assert.Equal(t, int64(1), s.lots[1].RemainingQty)

	require.Len(t, s.movements, 2)
	assert.Equal(t, entity.MovementTypeOUT, s.movements[0].Type)
	assert.Equal(t, "v1", s.movements[0].ExitVoucherID)
	assert.True(t, s.movements[0].UnitCost.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, s.movements[1].UnitCost.Equal(decimal.RequireFromString("11.00")))
}

func TestValidate_StockInsuficienteAbortaTodoElVale(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s := &memStore{
		products: []*entity.Product{
			{ID: "prod-1", Name: "Tornillo M6"},
			{ID: "prod-2", Name: "Tuerca M6"},
		},
		lots: []*entity.Lot{
			newLot("l1", "prod-1", base, 50, "10.00"),
			newLot("l2", "prod-2", base, 3, "4.00"),
		},
		vouchers: []*entity.ExitVoucher{draftVoucher("v1",
			entity.ExitVoucherLine{ID: "ln1", VoucherID: "v1", ProductID: "prod-1", Quantity: 20},
			entity.ExitVoucherLine{ID: "ln2", VoucherID: "v1", ProductID: "prod-2", Quantity: 10},
		)},
	}
	uc := newUseCase(s)

	_, err := uc.Validate(context.Background(), "v1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	var insufErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufErr)
	assert.Equal(t, "Tuerca M6", insufErr.ProductName)
	assert.Equal(t, int64(7), insufErr.Missing)

	// Cero efectos parciales: la primera línea ya había consumido, pero el
	// rollback lo deshace todo y el vale sigue en borrador.
	assert.Equal(t, int64(50), s.lots[0].RemainingQty)
	assert.Equal(t, int64(3), s.lots[1].RemainingQty)
	assert.Empty(t, s.movements)
	assert.Equal(t, entity.VoucherStatusDraft, s.vouchers[0].Status)
}

func TestValidate_ProductoSinLotesAbortaInclusoConCantidadCero(t *testing.T) {
	s := &memStore{
		products: []*entity.Product{{ID: "prod-1", Name: "Tornillo M6"}},
		vouchers: []*entity.ExitVoucher{draftVoucher("v1",
			entity.ExitVoucherLine{ID: "ln1", VoucherID: "v1", ProductID: "prod-1", Quantity: 0},
		)},
	}
	uc := newUseCase(s)

	_, err := uc.Validate(context.Background(), "v1")

	assert.ErrorIs(t, err, domain.ErrNoLotsAvailable)
	assert.Equal(t, entity.VoucherStatusDraft, s.vouchers[0].Status)
}

func TestValidate_DosLineasDelMismoProductoVenElDescuentoAnterior(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s := &memStore{
		products: []*entity.Product{{ID: "prod-1", Name: "Tornillo M6"}},
		lots:     []*entity.Lot{newLot("l1", "prod-1", base, 10, "10.00")},
		vouchers: []*entity.ExitVoucher{draftVoucher("v1",
			entity.ExitVoucherLine{ID: "ln1", VoucherID: "v1", ProductID: "prod-1", Quantity: 6},
			entity.ExitVoucherLine{ID: "ln2", VoucherID: "v1", ProductID: "prod-1", Quantity: 6},
		)},
	}
	uc := newUseCase(s)

	_, err := uc.Validate(context.Background(), "v1")

	// 6+6 sobre 10 unidades: la segunda línea ve solo 4 restantes y falla.
	require.Error(t, err)
	var insufErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufErr)
	assert.Equal(t, int64(2), insufErr.Missing)
	assert.Equal(t, int64(10), s.lots[0].RemainingQty)
	assert.Empty(t, s.movements)
}

func TestValidate_SoloDesdeBorrador(t *testing.T) {
	v := draftVoucher("v1",
		entity.ExitVoucherLine{ID: "ln1", VoucherID: "v1", ProductID: "prod-1", Quantity: 1},
	)
	v.Status = entity.VoucherStatusValidated
	s := &memStore{
		products: []*entity.Product{{ID: "prod-1", Name: "Tornillo M6"}},
		lots:     []*entity.Lot{newLot("l1", "prod-1", time.Now(), 100, "10.00")},
		vouchers: []*entity.ExitVoucher{v},
	}
	uc := newUseCase(s)

	_, err := uc.Validate(context.Background(), "v1")

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	// Revalidar no re-ejecuta el consumo.
	assert.Equal(t, int64(100), s.lots[0].RemainingQty)
	assert.Empty(t, s.movements)
}

func TestValidate_ValeInexistente(t *testing.T) {
	uc := newUseCase(&memStore{})

	_, err := uc.Validate(context.Background(), "no-existe")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancel_SoloDesdeBorradorYSinTocarStock(t *testing.T) {
	s := &memStore{
		lots: []*entity.Lot{newLot("l1", "prod-1", time.Now(), 100, "10.00")},
		vouchers: []*entity.ExitVoucher{draftVoucher("v1",
			entity.ExitVoucherLine{ID: "ln1", VoucherID: "v1", ProductID: "prod-1", Quantity: 5},
		)},
	}
	uc := newUseCase(s)

	resp, err := uc.Cancel("v1")

	require.NoError(t, err)
	assert.Equal(t, entity.VoucherStatusCancelled, resp.Status)
	assert.Equal(t, int64(100), s.lots[0].RemainingQty)
	assert.Empty(t, s.movements)

	_, err = uc.Cancel("v1")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}
