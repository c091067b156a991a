package assetrequest_test

import (
	"context"
	"testing"
	"time"

	"go-assettrack/internal/assetrequest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepoTest(t *testing.T) (assetrequest.Repository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	return assetrequest.NewRepository(gdb), mock, func() { db.Close() }
}

func viewColumns() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "employee_id", "employee_name",
		"asset_id", "asset_name", "status",
		"requested_date", "approval_date",
	})
}

func TestAssetRequestRepository_FindHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("queries resolved statuses only", func(t *testing.T) {
		repo, mock, closeDB := setupRepoTest(t)
		defer closeDB()

		requested := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
		approved := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)
		assetID := int64(5)

		// Baris Pending tidak boleh ikut; filter status harus ada di SQL.
		mock.ExpectQuery(`(?s)SELECT asset_requests\.id,.+FROM "asset_requests" JOIN employees ON employees\.id = asset_requests\.employee_id AND employees\.company_id = asset_requests\.company_id WHERE asset_requests\.company_id = \$1 AND asset_requests\.status IN \(\$2,\$3\) ORDER BY asset_requests\.requested_date DESC`).
			WithArgs(uint(1), assetrequest.StatusApproved, assetrequest.StatusRejected).
			WillReturnRows(viewColumns().
				AddRow(int64(2), int64(10), "Budi", assetID, "Laptop", assetrequest.StatusApproved, requested, approved).
				AddRow(int64(3), int64(11), "Sari", nil, "Monitor", assetrequest.StatusRejected, requested, approved))

		views, err := repo.FindHistory(ctx, 1)

		assert.NoError(t, err)
		assert.Len(t, views, 2)
		assert.Equal(t, assetrequest.StatusApproved, views[0].Status)
		assert.Equal(t, "Budi", views[0].EmployeeName)
		assert.Equal(t, uint(5), *views[0].AssetID)
		assert.Equal(t, assetrequest.StatusRejected, views[1].Status)
		assert.Nil(t, views[1].AssetID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAssetRequestRepository_FindPending(t *testing.T) {
	ctx := context.Background()

	repo, mock, closeDB := setupRepoTest(t)
	defer closeDB()

	requested := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`(?s)SELECT asset_requests\.id,.+WHERE asset_requests\.company_id = \$1 AND asset_requests\.status = \$2 ORDER BY asset_requests\.requested_date ASC`).
		WithArgs(uint(1), assetrequest.StatusPending).
		WillReturnRows(viewColumns().
			AddRow(int64(4), int64(12), "Andi", nil, "Headset", assetrequest.StatusPending, requested, nil))

	views, err := repo.FindPending(ctx, 1)

	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, assetrequest.StatusPending, views[0].Status)
	assert.Nil(t, views[0].ApprovalDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
