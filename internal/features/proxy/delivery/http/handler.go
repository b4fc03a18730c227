package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"meowtool-backend/internal/common/errors"
	"meowtool-backend/internal/common/middleware"
	"meowtool-backend/internal/common/validation"
	"meowtool-backend/internal/features/proxy/models"
	"meowtool-backend/internal/features/proxy/service"
)

type ProxyHandler struct {
	service service.ProxyService
}

func NewProxyHandler(service service.ProxyService) *ProxyHandler {
	return &ProxyHandler{service: service}
}

func (h *ProxyHandler) RegisterRoutes(router *gin.RouterGroup) {
	proxies := router.Group("/proxy")
	{
		proxies.POST("/check", h.Check)
	}
}

// @Summary Check proxies
// @Description Probe a batch of outbound proxies for reachability. One result per submitted proxy, in submission order.
// @Tags proxies
// @Accept json
// @Produce json
// @Param request body models.CheckRequest true "Proxies to check"
// @Success 200 {array} models.ProxyResult "Probe results"
// @Failure 400 {object} middleware.ErrorResponse "Invalid request payload"
// @Router /proxy/check [post]
func (h *ProxyHandler) Check(c *gin.Context) {
	var req models.CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.SendError(c, errors.NewBadRequestError(err.Error()))
		return
	}

	if err := validation.ValidateBatchSize("proxies", len(req.Proxies), validation.MaxProxiesPerRequest); err != nil {
		middleware.SendError(c, errors.NewValidationError("proxies", err.Error()))
		return
	}

	c.JSON(http.StatusOK, h.service.Check(c.Request.Context(), &req))
}
