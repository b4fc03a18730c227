package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"meowtool-backend/internal/common/errors"
	"meowtool-backend/internal/common/middleware"
	"meowtool-backend/internal/common/validation"
	"meowtool-backend/internal/features/place/models"
	"meowtool-backend/internal/features/place/service"
)

type PlaceHandler struct {
	service service.PlaceService
}

func NewPlaceHandler(service service.PlaceService) *PlaceHandler {
	return &PlaceHandler{service: service}
}

func (h *PlaceHandler) RegisterRoutes(router *gin.RouterGroup) {
	places := router.Group("/place")
	{
		places.POST("/gamepasses", h.Gamepasses)
		places.POST("/badges", h.Badges)
	}
}

// @Summary List experience game passes
// @Description Resolve the universe behind a place ID and list its game passes. Upstream failures are reported in the result's error field.
// @Tags places
// @Accept json
// @Produce json
// @Param request body models.ParseRequest true "Place to parse"
// @Success 200 {object} models.ParseResult "Experience metadata"
// @Failure 400 {object} middleware.ErrorResponse "Invalid request payload"
// @Router /place/gamepasses [post]
func (h *PlaceHandler) Gamepasses(c *gin.Context) {
	placeID, ok := h.bindPlaceID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.service.Gamepasses(c.Request.Context(), placeID))
}

// @Summary List experience badges
// @Description Fetch the experience name and its badge list for a place ID. Upstream failures are reported in the result's error field.
// @Tags places
// @Accept json
// @Produce json
// @Param request body models.ParseRequest true "Place to parse"
// @Success 200 {object} models.ParseResult "Experience metadata"
// @Failure 400 {object} middleware.ErrorResponse "Invalid request payload"
// @Router /place/badges [post]
func (h *PlaceHandler) Badges(c *gin.Context) {
	placeID, ok := h.bindPlaceID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.service.Badges(c.Request.Context(), placeID))
}

func (h *PlaceHandler) bindPlaceID(c *gin.Context) (int64, bool) {
	var req models.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.SendError(c, errors.NewBadRequestError(err.Error()))
		return 0, false
	}
	if err := validation.ValidatePlaceID(req.PlaceID); err != nil {
		middleware.SendError(c, errors.NewValidationError("place_id", err.Error()))
		return 0, false
	}
	return req.PlaceID, true
}
