package assignment

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
	l := zap.L().Named("assignment.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assignment.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("assignment request failed",
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

func (h *Handler) AssignPhysical(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := tenant.FromContext(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req AssignPhysicalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http assign physical validation failed", zap.Error(err))
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.AssignPhysical(ctx, p.CompanyID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAllPhysical(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := tenant.FromContext(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.ListPhysical(ctx, p.CompanyID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetPhysicalByEmployee(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := tenant.FromContext(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	employeeID, ok := parseIDParam(c, "employeeId")
	if !ok {
		return
	}

	resp, err := h.service.ListPhysicalByEmployee(ctx, p.CompanyID, employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UnassignPhysical(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := tenant.FromContext(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	employeeID, ok := parseIDParam(c, "employeeId")
	if !ok {
		return
	}
	assetID, ok := parseIDParam(c, "assetId")
	if !ok {
		return
	}

	if err := h.service.UnassignPhysical(ctx, p.CompanyID, employeeID, assetID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"unassigned": true}, nil)
}

func (h *Handler) Transfer(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := tenant.FromContext(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http transfer validation failed", zap.Error(err))
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Transfer(ctx, p.CompanyID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AssignSoftware(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := tenant.FromContext(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req AssignSoftwareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http assign software validation failed", zap.Error(err))
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	if err := h.service.AssignSoftware(ctx, p.CompanyID, req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"assigned": true}, nil)
}

func (h *Handler) GetAllSoftware(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := tenant.FromContext(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.ListSoftware(ctx, p.CompanyID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetSoftwareByEmployee(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := tenant.FromContext(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	employeeID, ok := parseIDParam(c, "employeeId")
	if !ok {
		return
	}

	resp, err := h.service.ListSoftwareByEmployee(ctx, p.CompanyID, employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UnassignSoftware(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := tenant.FromContext(ctx)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	employeeID, ok := parseIDParam(c, "employeeId")
	if !ok {
		return
	}
	softwareAssetID, ok := parseIDParam(c, "softwareId")
	if !ok {
		return
	}

	if err := h.service.UnassignSoftware(ctx, p.CompanyID, softwareAssetID, employeeID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"unassigned": true}, nil)
}
