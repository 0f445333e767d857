package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"einsatzplan/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, username, role string, ttl time.Duration) string {
	t.Helper()
	claims := JWTClaims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func newProbe(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{JWTAuth(testSecret)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		p := GetPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"user": p.Username, "role": p.Role})
	})
	r.GET("/probe", handlers...)
	return r
}

func doProbe(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	t.Run("valid token passes and exposes the principal", func(t *testing.T) {
		r := newProbe()
		w := doProbe(r, signToken(t, "max", "mitarbeiter", time.Hour))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user":"max","role":"mitarbeiter"}`, w.Body.String())
	})

	t.Run("missing header rejected with 403", func(t *testing.T) {
		w := doProbe(newProbe(), "")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Nicht eingeloggt")
	})

	t.Run("expired token rejected with 403", func(t *testing.T) {
		w := doProbe(newProbe(), signToken(t, "max", "mitarbeiter", -time.Minute))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Token ungültig oder abgelaufen")
	})

	t.Run("garbage token rejected with 403", func(t *testing.T) {
		w := doProbe(newProbe(), "kein.echtes.token")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	t.Run("allowed role passes", func(t *testing.T) {
		r := newProbe(model.AdminRoles...)
		w := doProbe(r, signToken(t, "boss", model.RoleChef, time.Hour))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("display spelling is normalized", func(t *testing.T) {
		r := newProbe(model.RolePlannerBBS)
		w := doProbe(r, signToken(t, "bbs", "Planner BBS", time.Hour))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("foreign role rejected", func(t *testing.T) {
		r := newProbe(model.AdminRoles...)
		w := doProbe(r, signToken(t, "max", model.RoleMitarbeiter, time.Hour))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Nicht erlaubt")
	})

	t.Run("vorgesetzter_cp excluded from personnel data", func(t *testing.T) {
		r := newProbe(model.AdminRoles...)
		w := doProbe(r, signToken(t, "cp", model.RoleVorgesetzerCP, time.Hour))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
