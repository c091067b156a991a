package asset_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-assettrack/internal/asset"
	asseterrors "go-assettrack/internal/asset/errors"
	"go-assettrack/internal/tenant"

	assetMock "go-assettrack/internal/asset/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

func authedRequest(method, target, body string, p tenant.Principal) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(tenant.WithPrincipal(req.Context(), p))
}

func TestAssetHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	principal := tenant.Principal{UserID: 1, CompanyID: 2, Role: tenant.RoleSuperAdmin}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := assetMock.NewMockService(ctrl)

		svc.EXPECT().
			Create(gomock.Any(), uint(2), gomock.Any()).
			DoAndReturn(func(ctx context.Context, companyID uint, req asset.CreateAssetRequest) (asset.AssetResponse, error) {
				assert.Equal(t, "Thinkpad X1", req.AssetName)
				return asset.AssetResponse{ID: 9, AssetTag: "AST-000009", AssetName: req.AssetName, Status: asset.StatusAvailable, Quantity: req.Quantity, CompanyID: companyID}, nil
			})

		h := asset.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"asset_name":"Thinkpad X1","type":"Laptop","purchase_date":"2026-02-10","quantity":4}`
		c.Request = authedRequest(http.MethodPost, "/assets", body, principal)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var got asset.AssetResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, uint(9), got.ID)
		assert.Equal(t, uint(2), got.CompanyID)
	})

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := asset.NewHandler(assetMock.NewMockService(ctrl))
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = authedRequest(http.MethodPost, "/assets", `{}`, principal)

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
	})

	t.Run("no principal -> unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := asset.NewHandler(assetMock.NewMockService(ctrl))
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/assets", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		if assert.NotNil(t, env.Error) {
			assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
		}
	})
}

func TestAssetHandler_GetById(t *testing.T) {
	gin.SetMode(gin.TestMode)
	principal := tenant.Principal{UserID: 1, CompanyID: 2, Role: tenant.RoleEmployee}

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := assetMock.NewMockService(ctrl)

		svc.EXPECT().
			GetByID(gomock.Any(), uint(2), uint(7)).
			Return(asset.AssetResponse{}, asseterrors.ErrAssetNotFound)

		h := asset.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = authedRequest(http.MethodGet, "/assets/7", "", principal)
		c.Params = []gin.Param{{Key: "id", Value: "7"}}

		h.GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		if assert.NotNil(t, env.Error) {
			assert.Equal(t, "NOT_FOUND", env.Error.Code)
		}
	})

	t.Run("bad id param", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := asset.NewHandler(assetMock.NewMockService(ctrl))
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = authedRequest(http.MethodGet, "/assets/abc", "", principal)
		c.Params = []gin.Param{{Key: "id", Value: "abc"}}

		h.GetById(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAssetHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	principal := tenant.Principal{UserID: 1, CompanyID: 2, Role: tenant.RoleSuperAdmin}

	ctrl := gomock.NewController(t)
	svc := assetMock.NewMockService(ctrl)
	svc.EXPECT().Delete(gomock.Any(), uint(2), uint(9)).Return(nil)

	h := asset.NewHandler(svc)
	r := gin.New()
	r.DELETE("/assets/:id", h.Delete)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodDelete, "/assets/9", "", principal))

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}
