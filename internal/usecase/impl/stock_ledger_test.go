package impl

import (
	"context"
	"testing"

	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockLedger_ReserveAndRelease(t *testing.T) {
	fx := createInventoryFixtures(t)
	ctx := context.Background()
	p := fx.addProduct(t, "P", 5, nil)

	tests := []struct {
		name      string
		run       func(ledger usecase.StockLedger) error
		wantErr   error
		wantUnits int
	}{
		{name: "reserve within stock", run: func(l usecase.StockLedger) error { return l.Reserve(ctx, p.ID, 3, nil) }, wantUnits: 2},
		{name: "reserve beyond stock", run: func(l usecase.StockLedger) error { return l.Reserve(ctx, p.ID, 3, nil) }, wantErr: domainerrors.ErrInsufficientStock, wantUnits: 2},
		{name: "reserve exact remainder", run: func(l usecase.StockLedger) error { return l.Reserve(ctx, p.ID, 2, nil) }, wantUnits: 0},
		{name: "release", run: func(l usecase.StockLedger) error { return l.Release(ctx, p.ID, 4, nil) }, wantUnits: 4},
		{name: "reserve zero", run: func(l usecase.StockLedger) error { return l.Reserve(ctx, p.ID, 0, nil) }, wantErr: domainerrors.ErrValidationFailed, wantUnits: 4},
		{name: "release negative", run: func(l usecase.StockLedger) error { return l.Release(ctx, p.ID, -1, nil) }, wantErr: domainerrors.ErrValidationFailed, wantUnits: 4},
		{name: "reserve unknown product", run: func(l usecase.StockLedger) error { return l.Reserve(ctx, uuid.New(), 1, nil) }, wantErr: domainerrors.ErrProductNotFound, wantUnits: 4},
		{name: "release unknown product", run: func(l usecase.StockLedger) error { return l.Release(ctx, uuid.New(), 1, nil) }, wantErr: domainerrors.ErrProductNotFound, wantUnits: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fx.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
				return tt.run(NewStockLedger(repoFactory))
			})
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantUnits, fx.units(t, p.ID))
			assert.GreaterOrEqual(t, fx.units(t, p.ID), 0)
		})
	}

	movements, err := fx.movementRepo.ListByProduct(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, movements, 3)
	assert.Equal(t, []int{-3, -2, 4}, []int{movements[0].Delta, movements[1].Delta, movements[2].Delta})
	assert.Equal(t, []int{2, 0, 4}, []int{movements[0].UnitsAfter, movements[1].UnitsAfter, movements[2].UnitsAfter})
}
