package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"food_order/internal/middleware"
	"food_order/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testJWT = utils.NewJWTUtil("test-secret", time.Hour)

func tokenFor(t *testing.T, userID int64, role string) string {
	t.Helper()
	token, err := testJWT.GenerateToken(utils.TokenSubject{UserID: userID, Email: "u@x.com", Mobile: "9998887770", Role: role})
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func newAuthRouter(svc *mockAuthService) *gin.Engine {
	r := gin.New()
	NewAuthHandler(svc).RegisterAuthRoutes(r.Group("/api"), middleware.JWTAuthMiddleware(testJWT))
	return r
}

func newOrderRouter(svc *mockOrderService, devMode, adminOnly bool) *gin.Engine {
	r := gin.New()
	var adminMW gin.HandlerFunc
	if adminOnly {
		adminMW = middleware.AdminMiddleware()
	}
	NewOrderHandler(svc, devMode).RegisterOrderRoutes(r.Group("/api"),
		middleware.JWTAuthMiddleware(testJWT), middleware.OptionalAuthMiddleware(testJWT), adminMW)
	return r
}
