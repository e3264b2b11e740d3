package inventory_test

import (
	"sort"

	"github.com/jhoicas/stock-lotes-api/internal/domain/entity"
	"github.com/jhoicas/stock-lotes-api/internal/domain/repository"
)

// Dobles en memoria de los puertos de persistencia. Reproducen el contrato
// observable de las implementaciones postgres: orden de entrada ascendente
// con desempate por id, filtros dinámicos y fecha descendente en el historial.

type fakeLotRepo struct {
	lots     []*entity.Lot
	products []*entity.Product
	seq      int64
}

var _ repository.LotRepository = (*fakeLotRepo)(nil)

func (r *fakeLotRepo) Create(lot *entity.Lot) error {
	r.lots = append(r.lots, lot)
	return nil
}

func (r *fakeLotRepo) CreateBatch(lots []*entity.Lot) error {
	r.lots = append(r.lots, lots...)
	return nil
}

func (r *fakeLotRepo) Update(lot *entity.Lot) error {
	for i, l := range r.lots {
		if l.ID == lot.ID {
			r.lots[i] = lot
			return nil
		}
	}
	return nil
}

func (r *fakeLotRepo) FindAvailableByProductForUpdate(productID string) ([]*entity.Lot, error) {
	var out []*entity.Lot
	for _, l := range r.lots {
		if l.ProductID == productID && l.Status == entity.LotStatusAvailable {
			out = append(out, l)
		}
	}
	sortByEntry(out)
	return out, nil
}

func (r *fakeLotRepo) FindByProduct(productID string) ([]*entity.Lot, error) {
	var out []*entity.Lot
	for _, l := range r.lots {
		if l.ProductID == productID {
			out = append(out, l)
		}
	}
	sortByEntry(out)
	return out, nil
}

func (r *fakeLotRepo) FindAvailable() ([]*entity.Lot, error) {
	var out []*entity.Lot
	for _, l := range r.lots {
		if l.Status == entity.LotStatusAvailable {
			out = append(out, l)
		}
	}
	sortByEntry(out)
	return out, nil
}

func (r *fakeLotRepo) NextSequence() (int64, error) {
	r.seq++
	return r.seq, nil
}

func (r *fakeLotRepo) ProductStockLevels() ([]repository.ProductStockLevel, error) {
	out := make([]repository.ProductStockLevel, 0, len(r.products))
	for _, p := range r.products {
		var remaining int64
		for _, l := range r.lots {
			if l.ProductID == p.ID && l.Status == entity.LotStatusAvailable {
				remaining += l.RemainingQty
			}
		}
		out = append(out, repository.ProductStockLevel{
			ProductID:        p.ID,
			Name:             p.Name,
			Reference:        p.Reference,
			ReorderThreshold: p.ReorderThreshold,
			Remaining:        remaining,
		})
	}
	return out, nil
}

func sortByEntry(lots []*entity.Lot) {
	sort.SliceStable(lots, func(i, j int) bool {
		if lots[i].EntryDate.Equal(lots[j].EntryDate) {
			return lots[i].ID < lots[j].ID
		}
		return lots[i].EntryDate.Before(lots[j].EntryDate)
	})
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

var _ repository.StockMovementRepository = (*fakeMovementRepo)(nil)

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, m)
	return nil
}

func (r *fakeMovementRepo) ListByCriteria(f repository.MovementFilter) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if f.ProductID != "" && m.ProductID != f.ProductID {
			continue
		}
		if f.LotID != "" && m.LotID != f.LotID {
			continue
		}
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		if f.From != nil && m.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && m.Date.After(*f.To) {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return nil, nil
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *fakeMovementRepo) SumOutByLot(lotID string) (int64, error) {
	var sum int64
	for _, m := range r.movements {
		if m.LotID == lotID && m.Type == entity.MovementTypeOUT {
			sum += m.Quantity
		}
	}
	return sum, nil
}

type fakeProductRepo struct {
	products []*entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products = append(r.products, p)
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByReference(reference string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Reference == reference {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	for i, existing := range r.products {
		if existing.ID == p.ID {
			r.products[i] = p
			return nil
		}
	}
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	if offset >= len(r.products) {
		return nil, nil
	}
	out := r.products[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}
