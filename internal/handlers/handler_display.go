package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/exchange_shop/internal/core/ports/services"
	"github.com/SscSPs/exchange_shop/internal/dto"
	"github.com/SscSPs/exchange_shop/internal/middleware"
)

// displayHandler serves the in-shop rate screen and its configuration.
type displayHandler struct {
	displayService portssvc.DisplaySvcFacade
}

func registerDisplayRoutes(rg *gin.RouterGroup, displayService portssvc.DisplaySvcFacade) {
	h := &displayHandler{displayService: displayService}

	rg.GET("/display", h.getDisplayConfig)
	rg.PUT("/display", h.updateDisplayConfig)
	rg.GET("/screen", h.screen)
}

// getDisplayConfig godoc
// @Summary Rate screen configuration
// @Tags admin
// @Produce json
// @Success 200 {object} dto.DisplayConfigResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/display [get]
func (h *displayHandler) getDisplayConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cfg, err := h.displayService.GetDisplayConfig(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to load display configuration")
		return
	}
	c.JSON(http.StatusOK, dto.ToDisplayConfigResponse(cfg))
}

// updateDisplayConfig godoc
// @Summary Update the rate screen
// @Description Unknown codes are dropped, duplicates collapsed and an invalid direction falls back to eur_to_local
// @Tags admin
// @Accept json
// @Produce json
// @Param display body dto.UpdateDisplayRequest true "Codes and direction"
// @Success 200 {object} dto.DisplayConfigResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/display [put]
func (h *displayHandler) updateDisplayConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateDisplayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	cfg, err := h.displayService.UpdateDisplayConfig(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to save display configuration")
		return
	}

	logger.Info("Display configuration saved", slog.Int("codes", len(cfg.Codes)), slog.String("direction", string(cfg.Direction)))
	c.JSON(http.StatusOK, dto.ToDisplayConfigResponse(cfg))
}

// screen godoc
// @Summary Rendered rate screen
// @Tags admin
// @Produce json
// @Success 200 {object} dto.ScreenResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/screen [get]
func (h *displayHandler) screen(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	direction, rows, err := h.displayService.Screen(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to render screen")
		return
	}
	c.JSON(http.StatusOK, dto.ScreenResponse{Direction: string(direction), Rows: rows})
}
