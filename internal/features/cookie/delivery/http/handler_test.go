package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meowtool-backend/internal/common/middleware"
	"meowtool-backend/internal/features/cookie/models"
	"meowtool-backend/internal/features/cookie/service"
	"meowtool-backend/internal/platform/roblox"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.RequestID())

	svc := service.NewCookieService(roblox.DefaultEndpoints())
	api := router.Group("/api")
	NewCookieHandler(svc).RegisterRoutes(api)

	return router
}

func TestCheckRejectsMalformedPayload(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/cookie/check", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.NotEmpty(t, resp.RequestID)
}

func TestCheckRejectsOversizedBatch(t *testing.T) {
	router := newTestRouter()

	payload := models.CheckRequest{Cookies: make([]string, 501), Timeout: 5}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/cookie/check", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRefreshRequiresCookie(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/cookie/refresh", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSortUpload(t *testing.T) {
	router := newTestRouter()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "cookies.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("_|WARNING:foo_bar123 .ROBLOSECURITY=abc123;"))
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("remove_duplicates", "true"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/cookie/sort", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result models.SortResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 2, result.TotalFound)
	assert.Equal(t, 2, result.UniqueCount)
	assert.ElementsMatch(t, []string{"_|WARNING:foo_bar123", ".ROBLOSECURITY=abc123"}, result.Cookies)
}

func TestSortRequiresFile(t *testing.T) {
	router := newTestRouter()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("remove_duplicates", "false"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/cookie/sort", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
