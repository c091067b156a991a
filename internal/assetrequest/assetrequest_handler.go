package assetrequest

import (
	"net/http"
	"strconv"

	"go-assettrack/internal/shared/apperror"
	"go-assettrack/internal/shared/response"
	"go-assettrack/internal/tenant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("assetrequest.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assetrequest.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("asset request endpoint failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid "+name, nil)
		return 0, false
	}
	return uint(v), true
}

// Create selalu mencatat request atas nama employee dari token, bukan dari
// body. Admin yang mengajukan untuk orang lain tetap tercatat sebagai dirinya.
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := tenant.FromContext(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req CreateAssetRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create asset request validation failed", zap.Error(err))
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Create(ctx, p.CompanyID, p.EmployeeID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetPending(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := tenant.FromContext(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetPending(ctx, p.CompanyID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetHistory(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := tenant.FromContext(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetHistory(ctx, p.CompanyID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetMine(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := tenant.FromContext(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetMine(ctx, p.CompanyID, p.EmployeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := tenant.FromContext(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	id, ok := parseIDParam(c, "requestId")
	if !ok {
		return
	}
	assetID, ok := parseIDParam(c, "assetId")
	if !ok {
		return
	}

	if err := h.service.Approve(ctx, p.CompanyID, id, assetID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": StatusApproved}, nil)
}

func (h *Handler) Reject(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := tenant.FromContext(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	id, ok := parseIDParam(c, "requestId")
	if !ok {
		return
	}
	assetID, ok := parseIDParam(c, "assetId")
	if !ok {
		return
	}

	if err := h.service.Reject(ctx, p.CompanyID, id, assetID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": StatusRejected}, nil)
}
