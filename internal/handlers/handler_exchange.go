package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/exchange_shop/internal/core/ports/services"
	"github.com/SscSPs/exchange_shop/internal/dto"
	"github.com/SscSPs/exchange_shop/internal/middleware"
)

type exchangeHandler struct {
	exchangeService portssvc.ExchangeSvc
}

func registerExchangeRoutes(rg *gin.RouterGroup, exchangeService portssvc.ExchangeSvc) {
	h := &exchangeHandler{exchangeService: exchangeService}

	rg.POST("/exchange/simulate", h.simulate)
}

// simulate godoc
// @Summary Simulate an exchange
// @Description Computes the missing side of a conversion. "buy" pays EUR at the sell rate, "sell" hands currency at the buy rate.
// @Tags exchange
// @Accept json
// @Produce json
// @Param simulation body dto.SimulateRequest true "Direction, currency and one or both amounts"
// @Success 200 {object} dto.SimulateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 422 {object} dto.ErrorResponse "Rate unavailable"
// @Router /exchange/simulate [post]
func (h *exchangeHandler) simulate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	logger = logger.With(slog.String("code", req.Code), slog.String("direction", req.Direction))
	sim, err := h.exchangeService.Simulate(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to simulate exchange")
		return
	}

	c.JSON(http.StatusOK, dto.ToSimulateResponse(sim))
}
