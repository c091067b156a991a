package auth

import (
	"net/http"

	"go-assettrack/internal/shared/apperror"
	"go-assettrack/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("auth request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func bindJSON[T any](h *Handler, c *gin.Context, req *T) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.Warn("auth request validation failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return false
	}
	return true
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(h, c, &req) {
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(h, c, &req) {
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if !bindJSON(h, c, &req) {
		return
	}

	resp, err := h.service.VerifyOTP(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	// Cookie menemani body supaya klien browser ikut terlayani
	c.SetCookie("access_token", resp.AccessToken, int(resp.ExpiresIn), "/", "", false, true)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if !bindJSON(h, c, &req) {
		return
	}

	if err := h.service.ForgotPassword(c.Request.Context(), req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "If the email exists, a reset code has been sent"}, nil)
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if !bindJSON(h, c, &req) {
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Password updated"}, nil)
}
