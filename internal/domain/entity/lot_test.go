package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stock-lotes-api/internal/domain/entity"
)

func TestLotConsume_ParcialSigueDisponible(t *testing.T) {
	l := &entity.Lot{
		InitialQty:   100,
		RemainingQty: 100,
		UnitCost:     decimal.RequireFromString("10.00"),
		Status:       entity.LotStatusAvailable,
	}

	l.Consume(50)

	assert.Equal(t, int64(50), l.RemainingQty)
	assert.Equal(t, entity.LotStatusAvailable, l.Status)
	assert.False(t, l.IsDepleted())
}

func TestLotConsume_TotalPasaADepleted(t *testing.T) {
	l := &entity.Lot{
		InitialQty:   30,
		RemainingQty: 30,
		Status:       entity.LotStatusAvailable,
	}

	l.Consume(30)

	assert.Equal(t, int64(0), l.RemainingQty)
	assert.Equal(t, entity.LotStatusDepleted, l.Status)
	assert.True(t, l.IsDepleted())
}

func TestVoucherTransiciones(t *testing.T) {
	v := &entity.ExitVoucher{Status: entity.VoucherStatusDraft}
	assert.True(t, v.CanValidate())
	assert.True(t, v.CanCancel())

	v.Status = entity.VoucherStatusValidated
	assert.False(t, v.CanValidate())
	assert.False(t, v.CanCancel())

	v.Status = entity.VoucherStatusCancelled
	assert.False(t, v.CanValidate())
	assert.False(t, v.CanCancel())
}
