package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	autherrors "go-assettrack/internal/auth/errors"
	"go-assettrack/internal/shared/response"
	"go-assettrack/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// claimUint reads a numeric claim. Claims arrive as float64 from the JSON
// decoder, but tokens minted by older clients carry them as strings.
func claimUint(claims jwt.MapClaims, name string) (uint, bool) {
	switch v := claims[name].(type) {
	case float64:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	case string:
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return uint(n), true
	default:
		return 0, false
	}
}

// AuthMiddleware verifies the bearer token and installs the caller's
// principal. Tenant and role are only ever derived here, never from request
// parameters.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		userID, ok := claimUint(claims, "user_id")
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "User ID not found in token", nil)
			c.Abort()
			return
		}

		companyID, ok := claimUint(claims, "company_id")
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Company ID not found in token", nil)
			c.Abort()
			return
		}

		roleID, ok := claimUint(claims, "role_id")
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Role not found in token", nil)
			c.Abort()
			return
		}
		// Role id di luar enum bawaan tetap masuk; role katalog semacam itu
		// tidak memegang satu permission pun, jadi tabel permission yang
		// menolaknya per operasi, bukan autentikasi.
		role := tenant.Role(roleID)

		// employee_id boleh 0: akun Super Admin pertama dibuat sebelum record employee
		employeeID, _ := claimUint(claims, "employee_id")

		username, _ := claims["username"].(string)
		email, _ := claims["email"].(string)

		p := tenant.Principal{
			UserID:     userID,
			EmployeeID: employeeID,
			CompanyID:  companyID,
			Role:       role,
			Username:   username,
			Email:      email,
		}

		c.Set("user_id", strconv.FormatUint(uint64(userID), 10))
		c.Set("company_id", companyID)
		c.Set("role", role)

		c.Request = c.Request.WithContext(tenant.WithPrincipal(c.Request.Context(), p))
		c.Next()
	}
}
