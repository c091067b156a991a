package assignment_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"go-assettrack/internal/assignment"
	assignmenterrors "go-assettrack/internal/assignment/errors"
	"go-assettrack/internal/events"
	"go-assettrack/internal/messaging/kafka"
	"go-assettrack/internal/shared/contextutil"

	assignmentMock "go-assettrack/internal/assignment/mock"
	kafkaMock "go-assettrack/internal/messaging/kafka/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   assignment.Service
	repo      *assignmentMock.MockRepository
	assets    *assignmentMock.MockAssetChecker
	softwares *assignmentMock.MockAssetChecker
	employees *assignmentMock.MockEmployeeChecker
	outbox    *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := assignmentMock.NewMockRepository(ctrl)
	assets := assignmentMock.NewMockAssetChecker(ctrl)
	softwares := assignmentMock.NewMockAssetChecker(ctrl)
	employees := assignmentMock.NewMockEmployeeChecker(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := assignment.NewService(db, repo, assets, softwares, employees, outbox)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		assets:    assets,
		softwares: softwares,
		employees: employees,
		outbox:    outbox,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestAssignmentService_AssignPhysical(t *testing.T) {
	ctx := context.Background()
	companyID := uint(1)
	employeeID := uint(10)

	t.Run("success - duplicate asset ids become separate ledger rows", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		// Asset 5 muncul dua kali dengan sengaja.
		req := assignment.AssignPhysicalRequest{
			EmployeeID:   employeeID,
			AssetIDs:     []uint{5, 5},
			AssignedDate: "2026-03-01",
		}

		deps.employees.EXPECT().
			ExistsInCompany(ctx, companyID, employeeID).
			Return(true, nil)
		deps.assets.EXPECT().
			ExistsInCompany(ctx, companyID, uint(5)).
			Return(true, nil).
			Times(2)

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)
		deps.repo.EXPECT().
			InsertPhysical(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, rows []assignment.PhysicalAssignment) error {
				assert.Len(t, rows, 2)
				assert.Equal(t, uint(5), rows[0].AssetID)
				assert.Equal(t, uint(5), rows[1].AssetID)
				assert.Equal(t, employeeID, rows[0].EmployeeID)
				return nil
			})
		deps.repo.EXPECT().
			CountPhysicalByEmployeeAndAssets(ctx, companyID, employeeID, req.AssetIDs).
			Return(int64(2), nil)
		// Status direfresh dari quantity, quantity sendiri tidak disentuh.
		deps.repo.EXPECT().
			RefreshAssetStatuses(ctx, companyID, req.AssetIDs).
			Return(nil)

		deps.outbox.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, event kafka.OutboxEvent) error {
				assert.Equal(t, events.AssetAssignedTopic, event.Topic)
				assert.Equal(t, "asset_assigned", event.EventType)
				var payload events.AssetAssignedEvent
				assert.NoError(t, json.Unmarshal(event.Payload, &payload))
				assert.Equal(t, employeeID, payload.EmployeeID)
				assert.Equal(t, []uint{5, 5}, payload.AssetIDs)
				assert.Equal(t, "physical", payload.AssetKind)
				return nil
			})

		resp, err := deps.service.AssignPhysical(ctx, companyID, req)

		assert.NoError(t, err)
		assert.Equal(t, 2, resp.AssignedCount)
		assert.Equal(t, employeeID, resp.EmployeeID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success - should persist outbox with request id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		rid := "REQ-42"
		ridCtx := contextutil.WithRequestID(context.Background(), rid)
		req := assignment.AssignPhysicalRequest{EmployeeID: employeeID, AssetIDs: []uint{3}}

		deps.employees.EXPECT().ExistsInCompany(gomock.Any(), companyID, employeeID).Return(true, nil)
		deps.assets.EXPECT().ExistsInCompany(gomock.Any(), companyID, uint(3)).Return(true, nil)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().InsertPhysical(gomock.Any(), gomock.Any()).Return(nil)
		deps.repo.EXPECT().CountPhysicalByEmployeeAndAssets(gomock.Any(), companyID, employeeID, []uint{3}).Return(int64(1), nil)
		deps.repo.EXPECT().RefreshAssetStatuses(gomock.Any(), companyID, []uint{3}).Return(nil)

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, event kafka.OutboxEvent) error {
				assert.Equal(t, rid, event.RequestID)
				assert.NotEmpty(t, event.ID)
				return nil
			})

		_, err := deps.service.AssignPhysical(ridCtx, companyID, req)
		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("assignee missing -> not found without opening tx", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.employees.EXPECT().
			ExistsInCompany(ctx, companyID, employeeID).
			Return(false, nil)

		_, err := deps.service.AssignPhysical(ctx, companyID, assignment.AssignPhysicalRequest{
			EmployeeID: employeeID,
			AssetIDs:   []uint{5},
		})

		assert.ErrorIs(t, err, assignmenterrors.ErrAssigneeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("verification sees zero rows -> dependency failure and rollback", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := assignment.AssignPhysicalRequest{EmployeeID: employeeID, AssetIDs: []uint{5}}

		deps.employees.EXPECT().ExistsInCompany(ctx, companyID, employeeID).Return(true, nil)
		deps.assets.EXPECT().ExistsInCompany(ctx, companyID, uint(5)).Return(true, nil)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().InsertPhysical(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().
			CountPhysicalByEmployeeAndAssets(ctx, companyID, employeeID, []uint{5}).
			Return(int64(0), nil)

		_, err := deps.service.AssignPhysical(ctx, companyID, req)

		assert.ErrorIs(t, err, assignmenterrors.ErrAssignmentNotVisible)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid assigned date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.AssignPhysical(ctx, companyID, assignment.AssignPhysicalRequest{
			EmployeeID:   employeeID,
			AssetIDs:     []uint{5},
			AssignedDate: "01-03-2026",
		})

		assert.ErrorIs(t, err, assignmenterrors.ErrInvalidAssignedDate)
	})
}

func TestAssignmentService_UnassignPhysical(t *testing.T) {
	ctx := context.Background()
	companyID := uint(1)
	employeeID := uint(10)
	assetID := uint(5)

	t.Run("success - releases oldest row and restocks one unit", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindOldestPhysicalID(ctx, companyID, employeeID, assetID).
			Return(uint(7), nil)
		deps.repo.EXPECT().DeletePhysicalByID(ctx, uint(7)).Return(nil)
		deps.repo.EXPECT().RestockAsset(ctx, companyID, assetID).Return(nil)

		err := deps.service.UnassignPhysical(ctx, companyID, employeeID, assetID)

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("no ledger row -> not found and rollback", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindOldestPhysicalID(ctx, companyID, employeeID, assetID).
			Return(uint(0), sql.ErrNoRows)

		err := deps.service.UnassignPhysical(ctx, companyID, employeeID, assetID)

		assert.ErrorIs(t, err, assignmenterrors.ErrAssignmentNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestAssignmentService_Transfer(t *testing.T) {
	ctx := context.Background()
	companyID := uint(1)
	req := assignment.TransferRequest{AssetID: 5, OldEmployeeID: 10, NewEmployeeID: 20}

	t.Run("success - repoints row inside one tx", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.employees.EXPECT().
			ExistsInCompany(ctx, companyID, req.NewEmployeeID).
			Return(true, nil)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindOldestPhysicalID(ctx, companyID, req.OldEmployeeID, req.AssetID).
			Return(uint(9), nil)
		deps.repo.EXPECT().ReassignPhysical(ctx, uint(9), req.NewEmployeeID).Return(nil)

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, event kafka.OutboxEvent) error {
				assert.Equal(t, "asset_transferred", event.EventType)
				return nil
			})

		resp, err := deps.service.Transfer(ctx, companyID, req)

		assert.NoError(t, err)
		assert.Equal(t, "Asset 5 transferred from employee 10 to employee 20", resp.Message)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("target employee missing -> not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.employees.EXPECT().
			ExistsInCompany(ctx, companyID, req.NewEmployeeID).
			Return(false, nil)

		_, err := deps.service.Transfer(ctx, companyID, req)

		assert.ErrorIs(t, err, assignmenterrors.ErrTransferTargetNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("source holds nothing -> not found and rollback", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.employees.EXPECT().
			ExistsInCompany(ctx, companyID, req.NewEmployeeID).
			Return(true, nil)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindOldestPhysicalID(ctx, companyID, req.OldEmployeeID, req.AssetID).
			Return(uint(0), sql.ErrNoRows)

		_, err := deps.service.Transfer(ctx, companyID, req)

		assert.ErrorIs(t, err, assignmenterrors.ErrAssignmentNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestAssignmentService_AssignSoftware(t *testing.T) {
	ctx := context.Background()
	companyID := uint(1)
	req := assignment.AssignSoftwareRequest{SoftwareAssetIDs: []uint{3, 4}, EmployeeID: 10}

	t.Run("success - one row per software id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.employees.EXPECT().ExistsInCompany(ctx, companyID, req.EmployeeID).Return(true, nil)
		deps.softwares.EXPECT().ExistsInCompany(ctx, companyID, uint(3)).Return(true, nil)
		deps.softwares.EXPECT().ExistsInCompany(ctx, companyID, uint(4)).Return(true, nil)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			InsertSoftware(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, rows []assignment.SoftwareAssignment) error {
				assert.Len(t, rows, 2)
				assert.Equal(t, uint(3), rows[0].SoftwareAssetID)
				assert.Equal(t, uint(4), rows[1].SoftwareAssetID)
				assert.Equal(t, req.EmployeeID, rows[0].EmployeeID)
				return nil
			})

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		err := deps.service.AssignSoftware(ctx, companyID, req)

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate pair -> conflict rolls back batch", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.employees.EXPECT().ExistsInCompany(ctx, companyID, req.EmployeeID).Return(true, nil)
		deps.softwares.EXPECT().ExistsInCompany(ctx, companyID, uint(3)).Return(true, nil)
		deps.softwares.EXPECT().ExistsInCompany(ctx, companyID, uint(4)).Return(true, nil)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			InsertSoftware(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "software_assignments_pkey"})

		err := deps.service.AssignSoftware(ctx, companyID, req)

		assert.ErrorIs(t, err, assignmenterrors.ErrSoftwareAlreadyAssigned)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestAssignmentService_UnassignSoftware(t *testing.T) {
	ctx := context.Background()
	companyID := uint(1)

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			DeleteSoftware(ctx, companyID, uint(3), uint(10)).
			Return(int64(1), nil)

		err := deps.service.UnassignSoftware(ctx, companyID, 3, 10)
		assert.NoError(t, err)
	})

	t.Run("nothing deleted -> not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			DeleteSoftware(ctx, companyID, uint(3), uint(10)).
			Return(int64(0), nil)

		err := deps.service.UnassignSoftware(ctx, companyID, 3, 10)
		assert.ErrorIs(t, err, assignmenterrors.ErrAssignmentNotFound)
	})
}
