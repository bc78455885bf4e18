package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/any", AuthMiddleware(testSecret), func(c *gin.Context) {
		c.JSON(200, gin.H{"userId": utils.CurrentUserID(c)})
	})
	r.GET("/admin", AuthMiddleware(testSecret, entity.RoleAdmin), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	return r
}

func doGet(t *testing.T, r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := testRouter()

	customerToken, err := utils.GenerateToken(7, []string{"CUSTOMER"}, testSecret, time.Hour)
	require.NoError(t, err)
	adminToken, err := utils.GenerateToken(1, []string{"ADMIN"}, testSecret, time.Hour)
	require.NoError(t, err)

	t.Run("missing token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doGet(t, r, "/any", "").Code)
	})
	t.Run("garbage token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doGet(t, r, "/any", "garbage").Code)
	})
	t.Run("valid token passes", func(t *testing.T) {
		w := doGet(t, r, "/any", customerToken)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userId":7`)
	})
	t.Run("role gate rejects customer", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, doGet(t, r, "/admin", customerToken).Code)
	})
	t.Run("role gate passes admin", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, doGet(t, r, "/admin", adminToken).Code)
	})
}
