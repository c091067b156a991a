package transaction

import (
	"context"
	"net/http"
	"time"

	"go-assettrack/internal/shared/apperror"

	"go.uber.org/zap"
)

var (
	ErrInvalidTransactionDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid transactionDate format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrAssetAlreadyPurchased = apperror.New(
		apperror.CodeConflict,
		"Employee has already purchased this asset",
		http.StatusConflict,
	)
)

//go:generate mockgen -source=transaction_service.go -destination=mock/transaction_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, companyID uint, req RecordTransactionRequest) (TransactionResponse, error)
	GetAll(ctx context.Context, companyID uint) ([]TransactionResponse, error)
	GetByEmployee(ctx context.Context, companyID, employeeID uint) ([]TransactionResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("transaction.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("transaction.service")
	}
	return &service{repo: repo, logger: l}
}

// Record menolak pembelian kedua untuk pasangan (employee, asset) yang sama.
func (s *service) Record(ctx context.Context, companyID uint, req RecordTransactionRequest) (TransactionResponse, error) {
	txDate := time.Now().UTC()
	if req.TransactionDate != "" {
		parsed, err := time.Parse("2006-01-02", req.TransactionDate)
		if err != nil {
			return TransactionResponse{}, ErrInvalidTransactionDate
		}
		txDate = parsed
	}

	bought, err := s.repo.ExistsByEmployeeAndAsset(ctx, companyID, req.EmployeeID, req.AssetID)
	if err != nil {
		return TransactionResponse{}, wrapDependency(err)
	}
	if bought {
		return TransactionResponse{}, ErrAssetAlreadyPurchased
	}

	t := &Transaction{
		CompanyID:       companyID,
		EmployeeID:      req.EmployeeID,
		AssetID:         req.AssetID,
		PurchasePrice:   req.PurchasePrice,
		PaymentMethod:   req.PaymentMethod,
		TransactionDate: txDate,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error("record transaction failed", zap.Error(err))
		return TransactionResponse{}, wrapDependency(err)
	}

	s.logger.Info("record transaction success",
		zap.Uint("transaction_id", t.ID),
		zap.Uint("employee_id", t.EmployeeID),
		zap.Uint("asset_id", t.AssetID),
	)
	return mapToResponse(*t), nil
}

func (s *service) GetAll(ctx context.Context, companyID uint) ([]TransactionResponse, error) {
	txs, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("get transactions failed", zap.Error(err))
		return nil, wrapDependency(err)
	}
	return mapToResponses(txs), nil
}

func (s *service) GetByEmployee(ctx context.Context, companyID, employeeID uint) ([]TransactionResponse, error) {
	txs, err := s.repo.FindByEmployee(ctx, companyID, employeeID)
	if err != nil {
		s.logger.Error("get employee transactions failed", zap.Error(err))
		return nil, wrapDependency(err)
	}
	return mapToResponses(txs), nil
}

func wrapDependency(err error) error {
	return apperror.Wrap(err, apperror.CodeDependencyFailure, apperror.ErrDependencyFailure.Message, apperror.ErrDependencyFailure.HTTPStatus)
}

func mapToResponses(txs []Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txs))
	for i, t := range txs {
		res[i] = mapToResponse(t)
	}
	return res
}

func mapToResponse(t Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		EmployeeID:      t.EmployeeID,
		AssetID:         t.AssetID,
		PurchasePrice:   t.PurchasePrice,
		PaymentMethod:   t.PaymentMethod,
		TransactionDate: t.TransactionDate.Format("2006-01-02"),
	}
}
