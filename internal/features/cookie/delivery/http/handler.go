package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"meowtool-backend/internal/common/errors"
	"meowtool-backend/internal/common/middleware"
	"meowtool-backend/internal/common/validation"
	"meowtool-backend/internal/features/cookie/models"
	"meowtool-backend/internal/features/cookie/service"
)

type CookieHandler struct {
	service service.CookieService
}

func NewCookieHandler(service service.CookieService) *CookieHandler {
	return &CookieHandler{service: service}
}

func (h *CookieHandler) RegisterRoutes(router *gin.RouterGroup) {
	cookies := router.Group("/cookie")
	{
		cookies.POST("/check", h.Check)
		cookies.POST("/refresh", h.Refresh)
		cookies.POST("/sort", h.Sort)
	}
}

// @Summary Check cookies
// @Description Validate a batch of session cookies and gather account attributes for the valid ones. One result per submitted cookie, in submission order.
// @Tags cookies
// @Accept json
// @Produce json
// @Param request body models.CheckRequest true "Cookies to check"
// @Success 200 {array} models.CheckResult "Check results"
// @Failure 400 {object} middleware.ErrorResponse "Invalid request payload"
// @Router /cookie/check [post]
func (h *CookieHandler) Check(c *gin.Context) {
	var req models.CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.SendError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	if err := validation.ValidateBatchSize("cookies", len(req.Cookies), validation.MaxCookiesPerRequest); err != nil {
		middleware.SendError(c, errors.NewValidationError("cookies", err.Error()))
		return
	}

	c.JSON(http.StatusOK, h.service.Check(c.Request.Context(), &req))
}

// @Summary Refresh a cookie
// @Description Attempt to mint a refreshed session cookie from an existing one. Failure to refresh is reported in the result, not as an HTTP error.
// @Tags cookies
// @Accept json
// @Produce json
// @Param request body models.RefreshRequest true "Cookie to refresh"
// @Success 200 {object} models.RefreshResult "Refresh result"
// @Failure 400 {object} middleware.ErrorResponse "Invalid request payload"
// @Router /cookie/refresh [post]
func (h *CookieHandler) Refresh(c *gin.Context) {
	var req models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.SendError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, h.service.Refresh(c.Request.Context(), &req))
}

// @Summary Extract cookies from an upload
// @Description Scan an uploaded document for cookie candidates in both supported encodings, optionally deduplicating the matches.
// @Tags cookies
// @Accept mpfd
// @Produce json
// @Param file formData file true "Document to scan"
// @Param remove_duplicates formData bool false "Deduplicate matches (default true)"
// @Success 200 {object} models.SortResult "Extracted cookies"
// @Failure 400 {object} middleware.ErrorResponse "Invalid upload"
// @Router /cookie/sort [post]
func (h *CookieHandler) Sort(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		middleware.SendError(c, errors.NewBadRequestError("missing file upload"))
		return
	}
	if fileHeader.Size > validation.MaxUploadBytes {
		middleware.SendError(c, errors.NewValidationError("file", "upload too large"))
		return
	}

	removeDuplicates := true
	if v := c.PostForm("remove_duplicates"); v != "" {
		if parsed, perr := strconv.ParseBool(v); perr == nil {
			removeDuplicates = parsed
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.SendError(c, errors.Wrap(err, errors.ErrCodeInternal, "failed to open upload"))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, validation.MaxUploadBytes))
	if err != nil {
		middleware.SendError(c, errors.Wrap(err, errors.ErrCodeInternal, "failed to read upload"))
		return
	}

	c.JSON(http.StatusOK, h.service.Sort(content, removeDuplicates))
}
