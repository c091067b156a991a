package transaction_test

import (
	"context"
	"testing"
	"time"

	"go-assettrack/internal/transaction"

	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	createFn func(ctx context.Context, t *transaction.Transaction) error
	allFn    func(ctx context.Context, companyID uint) ([]transaction.Transaction, error)
	byEmpFn  func(ctx context.Context, companyID, employeeID uint) ([]transaction.Transaction, error)
	existsFn func(ctx context.Context, companyID, employeeID, assetID uint) (bool, error)
}

func (f *fakeRepo) Create(ctx context.Context, t *transaction.Transaction) error {
	return f.createFn(ctx, t)
}

func (f *fakeRepo) FindAllByCompany(ctx context.Context, companyID uint) ([]transaction.Transaction, error) {
	return f.allFn(ctx, companyID)
}

func (f *fakeRepo) FindByEmployee(ctx context.Context, companyID, employeeID uint) ([]transaction.Transaction, error) {
	return f.byEmpFn(ctx, companyID, employeeID)
}

func (f *fakeRepo) ExistsByEmployeeAndAsset(ctx context.Context, companyID, employeeID, assetID uint) (bool, error) {
	return f.existsFn(ctx, companyID, employeeID, assetID)
}

func TestTransactionService_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("success - defaults date to today", func(t *testing.T) {
		var saved *transaction.Transaction
		repo := &fakeRepo{
			existsFn: func(ctx context.Context, companyID, employeeID, assetID uint) (bool, error) {
				return false, nil
			},
			createFn: func(ctx context.Context, tx *transaction.Transaction) error {
				tx.ID = 9
				saved = tx
				return nil
			},
		}
		svc := transaction.NewService(repo)

		resp, err := svc.Record(ctx, 1, transaction.RecordTransactionRequest{
			EmployeeID:    10,
			AssetID:       5,
			PurchasePrice: 1200.50,
			PaymentMethod: "Credit Card",
		})

		assert.NoError(t, err)
		assert.Equal(t, uint(9), resp.ID)
		assert.Equal(t, uint(1), saved.CompanyID)
		assert.WithinDuration(t, time.Now().UTC(), saved.TransactionDate, time.Minute)
	})

	t.Run("repeat purchase -> conflict", func(t *testing.T) {
		repo := &fakeRepo{
			existsFn: func(ctx context.Context, companyID, employeeID, assetID uint) (bool, error) {
				return true, nil
			},
		}
		svc := transaction.NewService(repo)

		_, err := svc.Record(ctx, 1, transaction.RecordTransactionRequest{
			EmployeeID:    10,
			AssetID:       5,
			PurchasePrice: 1200.50,
			PaymentMethod: "Credit Card",
		})

		assert.ErrorIs(t, err, transaction.ErrAssetAlreadyPurchased)
	})

	t.Run("bad date -> invalid input", func(t *testing.T) {
		svc := transaction.NewService(&fakeRepo{})

		_, err := svc.Record(ctx, 1, transaction.RecordTransactionRequest{
			EmployeeID:      10,
			AssetID:         5,
			PurchasePrice:   100,
			PaymentMethod:   "Cash",
			TransactionDate: "05-01-2026",
		})

		assert.ErrorIs(t, err, transaction.ErrInvalidTransactionDate)
	})
}

func TestTransactionService_GetByEmployee(t *testing.T) {
	ctx := context.Background()

	repo := &fakeRepo{
		byEmpFn: func(ctx context.Context, companyID, employeeID uint) ([]transaction.Transaction, error) {
			assert.Equal(t, uint(1), companyID)
			assert.Equal(t, uint(10), employeeID)
			return []transaction.Transaction{{
				ID:              9,
				EmployeeID:      10,
				AssetID:         5,
				PurchasePrice:   1200.50,
				PaymentMethod:   "Credit Card",
				TransactionDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			}}, nil
		},
	}
	svc := transaction.NewService(repo)

	resp, err := svc.GetByEmployee(ctx, 1, 10)

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "2026-04-01", resp[0].TransactionDate)
	assert.Equal(t, 1200.50, resp[0].PurchasePrice)
}
