package assignment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-assettrack/internal/assignment"
	"go-assettrack/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// fakeService cukup untuk handler; hanya field yang diisi yang dipanggil.
type fakeService struct {
	assignment.Service
	transferFn func(ctx context.Context, companyID uint, req assignment.TransferRequest) (assignment.TransferResponse, error)
}

func (f *fakeService) Transfer(ctx context.Context, companyID uint, req assignment.TransferRequest) (assignment.TransferResponse, error) {
	return f.transferFn(ctx, companyID, req)
}

func transferRequest(body string, p tenant.Principal) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/employeephysicalasset/transfer", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(tenant.WithPrincipal(req.Context(), p))
}

func TestAssignmentHandler_Transfer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	principal := tenant.Principal{UserID: 1, CompanyID: 2, Role: tenant.RoleSuperAdmin}

	t.Run("binds oldEmployeeId and newEmployeeId", func(t *testing.T) {
		svc := &fakeService{
			transferFn: func(ctx context.Context, companyID uint, req assignment.TransferRequest) (assignment.TransferResponse, error) {
				assert.Equal(t, uint(2), companyID)
				assert.Equal(t, uint(5), req.AssetID)
				assert.Equal(t, uint(10), req.OldEmployeeID)
				assert.Equal(t, uint(20), req.NewEmployeeID)
				return assignment.TransferResponse{Message: "ok"}, nil
			},
		}
		h := assignment.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"assetId":5,"oldEmployeeId":10,"newEmployeeId":20}`
		c.Request = transferRequest(body, principal)

		h.Transfer(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing newEmployeeId -> bad request", func(t *testing.T) {
		h := assignment.NewHandler(&fakeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = transferRequest(`{"assetId":5,"oldEmployeeId":10}`, principal)

		h.Transfer(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var env struct {
			Ok bool `json:"ok"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Ok)
	})
}
