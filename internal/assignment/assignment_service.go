package assignment

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	assignmenterrors "go-assettrack/internal/assignment/errors"
	"go-assettrack/internal/events"
	"go-assettrack/internal/messaging/kafka"
	"go-assettrack/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AssetChecker dan EmployeeChecker dipenuhi oleh repo masing-masing package
// saat wiring di registry.
type AssetChecker interface {
	ExistsInCompany(ctx context.Context, companyID, id uint) (bool, error)
}

type EmployeeChecker interface {
	ExistsInCompany(ctx context.Context, companyID, id uint) (bool, error)
}

//go:generate mockgen -source=assignment_service.go -destination=mock/assignment_service_mock.go -package=mock
type Service interface {
	AssignPhysical(ctx context.Context, companyID uint, req AssignPhysicalRequest) (AssignPhysicalResponse, error)
	UnassignPhysical(ctx context.Context, companyID, employeeID, assetID uint) error
	Transfer(ctx context.Context, companyID uint, req TransferRequest) (TransferResponse, error)
	ListPhysical(ctx context.Context, companyID uint) ([]PhysicalAssignmentResponse, error)
	ListPhysicalByEmployee(ctx context.Context, companyID, employeeID uint) ([]PhysicalAssignmentResponse, error)

	AssignSoftware(ctx context.Context, companyID uint, req AssignSoftwareRequest) error
	UnassignSoftware(ctx context.Context, companyID, softwareAssetID, employeeID uint) error
	ListSoftware(ctx context.Context, companyID uint) ([]SoftwareAssignmentResponse, error)
	ListSoftwareByEmployee(ctx context.Context, companyID, employeeID uint) ([]SoftwareAssignmentResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	assets    AssetChecker
	softwares AssetChecker
	employees EmployeeChecker
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	assets AssetChecker,
	softwares AssetChecker,
	employees EmployeeChecker,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("assignment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assignment.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		assets:    assets,
		softwares: softwares,
		employees: employees,
		outbox:    outbox,
		logger:    l,
	}
}

// AssignPhysical menulis satu baris ledger per asset id dalam satu transaksi.
// Quantity asset TIDAK berkurang saat assign; hanya unassign yang restock.
// Id yang sama boleh muncul berulang dalam satu request; tiap kemunculan
// menjadi baris tersendiri.
func (s *service) AssignPhysical(ctx context.Context, companyID uint, req AssignPhysicalRequest) (AssignPhysicalResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("assign physical requested",
		zap.String("request_id", rid),
		zap.Uint("company_id", companyID),
		zap.Uint("employee_id", req.EmployeeID),
		zap.Int("asset_count", len(req.AssetIDs)),
	)

	assignedDate, err := parseAssignedDate(req.AssignedDate)
	if err != nil {
		return AssignPhysicalResponse{}, err
	}

	ok, err := s.employees.ExistsInCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		return AssignPhysicalResponse{}, mapRepositoryError(err)
	}
	if !ok {
		return AssignPhysicalResponse{}, assignmenterrors.ErrAssigneeNotFound
	}

	for _, assetID := range req.AssetIDs {
		ok, err := s.assets.ExistsInCompany(ctx, companyID, assetID)
		if err != nil {
			return AssignPhysicalResponse{}, mapRepositoryError(err)
		}
		if !ok {
			return AssignPhysicalResponse{}, assignmenterrors.ErrAssignedAssetNotFound
		}
	}

	rows := make([]PhysicalAssignment, len(req.AssetIDs))
	for i, assetID := range req.AssetIDs {
		rows[i] = PhysicalAssignment{
			CompanyID:    companyID,
			AssetID:      assetID,
			EmployeeID:   req.EmployeeID,
			AssignedDate: assignedDate,
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AssignPhysicalResponse{}, mapRepositoryError(err)
	}
	defer tx.Rollback()

	txRepo := s.repo.WithTx(tx)

	if err := txRepo.InsertPhysical(ctx, rows); err != nil {
		s.logger.Error("assign physical insert failed", zap.Error(err))
		return AssignPhysicalResponse{}, mapRepositoryError(err)
	}

	// Verifikasi baca-ulang di transaksi yang sama. Nol baris berarti ada
	// yang salah di bawah kita, bukan salah input caller.
	count, err := txRepo.CountPhysicalByEmployeeAndAssets(ctx, companyID, req.EmployeeID, req.AssetIDs)
	if err != nil {
		return AssignPhysicalResponse{}, mapRepositoryError(err)
	}
	if count == 0 {
		s.logger.Error("assign physical verification found no rows",
			zap.Uint("employee_id", req.EmployeeID),
		)
		return AssignPhysicalResponse{}, assignmenterrors.ErrAssignmentNotVisible
	}

	if err := txRepo.RefreshAssetStatuses(ctx, companyID, req.AssetIDs); err != nil {
		return AssignPhysicalResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueAssignedEvent(ctx, tx, rid, companyID, req.EmployeeID, req.AssetIDs, "physical", "asset_assigned"); err != nil {
		s.logger.Error("assign physical outbox enqueue failed", zap.Error(err))
		return AssignPhysicalResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return AssignPhysicalResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("assign physical success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", req.EmployeeID),
		zap.Int("assigned_count", len(rows)),
	)

	return AssignPhysicalResponse{
		EmployeeID:    req.EmployeeID,
		AssetIDs:      req.AssetIDs,
		AssignedCount: len(rows),
	}, nil
}

// UnassignPhysical melepas SATU baris ledger, yang ber-id terendah, lalu
// mengembalikan satu unit stok ke asset.
func (s *service) UnassignPhysical(ctx context.Context, companyID, employeeID, assetID uint) error {
	s.logger.Debug("unassign physical requested",
		zap.Uint("company_id", companyID),
		zap.Uint("employee_id", employeeID),
		zap.Uint("asset_id", assetID),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return mapRepositoryError(err)
	}
	defer tx.Rollback()

	txRepo := s.repo.WithTx(tx)

	rowID, err := txRepo.FindOldestPhysicalID(ctx, companyID, employeeID, assetID)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := txRepo.DeletePhysicalByID(ctx, rowID); err != nil {
		return mapRepositoryError(err)
	}

	if err := txRepo.RestockAsset(ctx, companyID, assetID); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("unassign physical success",
		zap.Uint("employee_id", employeeID),
		zap.Uint("asset_id", assetID),
		zap.Uint("row_id", rowID),
	)
	return nil
}

// Transfer memindahkan satu baris ledger ke employee lain secara atomik.
// Baris di-repoint, bukan delete+insert, jadi tidak ada jendela di mana
// asset tidak dipegang siapa pun.
func (s *service) Transfer(ctx context.Context, companyID uint, req TransferRequest) (TransferResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("transfer requested",
		zap.String("request_id", rid),
		zap.Uint("asset_id", req.AssetID),
		zap.Uint("old_employee_id", req.OldEmployeeID),
		zap.Uint("new_employee_id", req.NewEmployeeID),
	)

	ok, err := s.employees.ExistsInCompany(ctx, companyID, req.NewEmployeeID)
	if err != nil {
		return TransferResponse{}, mapRepositoryError(err)
	}
	if !ok {
		return TransferResponse{}, assignmenterrors.ErrTransferTargetNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TransferResponse{}, mapRepositoryError(err)
	}
	defer tx.Rollback()

	txRepo := s.repo.WithTx(tx)

	rowID, err := txRepo.FindOldestPhysicalID(ctx, companyID, req.OldEmployeeID, req.AssetID)
	if err != nil {
		return TransferResponse{}, mapRepositoryError(err)
	}

	if err := txRepo.ReassignPhysical(ctx, rowID, req.NewEmployeeID); err != nil {
		return TransferResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueAssignedEvent(ctx, tx, rid, companyID, req.NewEmployeeID, []uint{req.AssetID}, "physical", "asset_transferred"); err != nil {
		return TransferResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return TransferResponse{}, mapRepositoryError(err)
	}

	msg := fmt.Sprintf("Asset %d transferred from employee %d to employee %d", req.AssetID, req.OldEmployeeID, req.NewEmployeeID)
	s.logger.Info("transfer success",
		zap.String("request_id", rid),
		zap.Uint("row_id", rowID),
	)

	return TransferResponse{Message: msg}, nil
}

func (s *service) ListPhysical(ctx context.Context, companyID uint) ([]PhysicalAssignmentResponse, error) {
	views, err := s.repo.ListPhysicalViews(ctx, companyID)
	if err != nil {
		s.logger.Error("list physical assignments failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapPhysicalViews(views), nil
}

func (s *service) ListPhysicalByEmployee(ctx context.Context, companyID, employeeID uint) ([]PhysicalAssignmentResponse, error) {
	views, err := s.repo.ListPhysicalViewsByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapPhysicalViews(views), nil
}

// AssignSoftware menulis satu baris per software id dalam satu transaksi.
// Berbeda dengan ledger fisik, pasangan (software, employee) unik; duplikat
// di request atau di tabel membatalkan seluruh batch lewat 23505.
func (s *service) AssignSoftware(ctx context.Context, companyID uint, req AssignSoftwareRequest) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("assign software requested",
		zap.String("request_id", rid),
		zap.Uint("company_id", companyID),
		zap.Uint("employee_id", req.EmployeeID),
		zap.Int("software_count", len(req.SoftwareAssetIDs)),
	)

	assignedDate, err := parseAssignedDate(req.AssignedDate)
	if err != nil {
		return err
	}

	ok, err := s.employees.ExistsInCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		return mapRepositoryError(err)
	}
	if !ok {
		return assignmenterrors.ErrAssigneeNotFound
	}

	for _, softwareID := range req.SoftwareAssetIDs {
		ok, err := s.softwares.ExistsInCompany(ctx, companyID, softwareID)
		if err != nil {
			return mapRepositoryError(err)
		}
		if !ok {
			return assignmenterrors.ErrAssignedAssetNotFound
		}
	}

	rows := make([]SoftwareAssignment, len(req.SoftwareAssetIDs))
	for i, softwareID := range req.SoftwareAssetIDs {
		rows[i] = SoftwareAssignment{
			CompanyID:       companyID,
			SoftwareAssetID: softwareID,
			EmployeeID:      req.EmployeeID,
			AssignedDate:    assignedDate,
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return mapRepositoryError(err)
	}
	defer tx.Rollback()

	txRepo := s.repo.WithTx(tx)

	// Primary key komposit menolak duplikat; mapper menerjemahkan 23505
	// menjadi Conflict.
	if err := txRepo.InsertSoftware(ctx, rows); err != nil {
		s.logger.Warn("assign software insert failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := s.enqueueAssignedEvent(ctx, tx, rid, companyID, req.EmployeeID, req.SoftwareAssetIDs, "software", "asset_assigned"); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("assign software success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", req.EmployeeID),
		zap.Int("assigned_count", len(rows)),
	)
	return nil
}

func (s *service) UnassignSoftware(ctx context.Context, companyID, softwareAssetID, employeeID uint) error {
	affected, err := s.repo.DeleteSoftware(ctx, companyID, softwareAssetID, employeeID)
	if err != nil {
		s.logger.Error("unassign software failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if affected == 0 {
		return assignmenterrors.ErrAssignmentNotFound
	}

	s.logger.Info("unassign software success",
		zap.Uint("software_asset_id", softwareAssetID),
		zap.Uint("employee_id", employeeID),
	)
	return nil
}

func (s *service) ListSoftware(ctx context.Context, companyID uint) ([]SoftwareAssignmentResponse, error) {
	views, err := s.repo.ListSoftwareViews(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapSoftwareViews(views), nil
}

func (s *service) ListSoftwareByEmployee(ctx context.Context, companyID, employeeID uint) ([]SoftwareAssignmentResponse, error) {
	views, err := s.repo.ListSoftwareViewsByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapSoftwareViews(views), nil
}

func (s *service) enqueueAssignedEvent(
	ctx context.Context,
	tx *sql.Tx,
	requestID string,
	companyID, employeeID uint,
	assetIDs []uint,
	assetKind, eventType string,
) error {
	payload, err := json.Marshal(events.AssetAssignedEvent{
		EventType:  eventType,
		RequestID:  requestID,
		EmployeeID: employeeID,
		AssetIDs:   assetIDs,
		AssetKind:  assetKind,
		CompanyID:  companyID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     requestID,
		AggregateType: "assignment",
		AggregateID:   fmt.Sprintf("%d", employeeID),
		EventType:     eventType,
		Topic:         events.AssetAssignedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func parseAssignedDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now().UTC().Truncate(24 * time.Hour), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, assignmenterrors.ErrInvalidAssignedDate
	}
	return t, nil
}

func mapPhysicalViews(views []PhysicalAssignmentView) []PhysicalAssignmentResponse {
	res := make([]PhysicalAssignmentResponse, len(views))
	for i, v := range views {
		res[i] = PhysicalAssignmentResponse{
			ID:           v.ID,
			AssetID:      v.AssetID,
			AssetTag:     v.AssetTag,
			AssetName:    v.AssetName,
			EmployeeID:   v.EmployeeID,
			EmployeeName: v.EmployeeName,
			AssignedDate: v.AssignedDate.Format("2006-01-02"),
		}
	}
	return res
}

func mapSoftwareViews(views []SoftwareAssignmentView) []SoftwareAssignmentResponse {
	res := make([]SoftwareAssignmentResponse, len(views))
	for i, v := range views {
		res[i] = SoftwareAssignmentResponse{
			SoftwareAssetID: v.SoftwareAssetID,
			SoftwareName:    v.SoftwareName,
			EmployeeID:      v.EmployeeID,
			EmployeeName:    v.EmployeeName,
			AssignedDate:    v.AssignedDate.Format("2006-01-02"),
		}
	}
	return res
}
