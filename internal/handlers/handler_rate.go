package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/exchange_shop/internal/core/ports/services"
	"github.com/SscSPs/exchange_shop/internal/dto"
	"github.com/SscSPs/exchange_shop/internal/middleware"
)

// rateHandler handles HTTP requests related to the currency catalog and quotes.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{rateService: rs}
}

// registerRateRoutes registers the public catalog and quote routes.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)

	rg.GET("/currencies", h.listCurrencies)
	rates := rg.Group("/rates")
	{
		rates.GET("", h.rateBoard)
		rates.GET("/:code", h.getQuote)
	}
}

// registerAdminRateRoutes registers the rate sheet routes under an admin group.
func registerAdminRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)

	rg.GET("/rates", h.getRateSheet)
	rg.PUT("/rates", h.saveRateSheet)
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Returns every currency the shop trades, in display order
// @Tags rates
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Router /currencies [get]
func (h *rateHandler) listCurrencies(c *gin.Context) {
	currencies := h.rateService.ListCurrencies(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// rateBoard godoc
// @Summary Current buy/sell rates
// @Description Returns the public quote of every supported currency. Unpriced currencies carry null rates.
// @Tags rates
// @Produce json
// @Success 200 {array} dto.QuoteResponse
// @Router /rates [get]
func (h *rateHandler) rateBoard(c *gin.Context) {
	entries := h.rateService.RateBoard(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListQuoteResponse(entries))
}

// getQuote godoc
// @Summary Get the quote of one currency
// @Tags rates
// @Produce json
// @Param code path string true "Currency code" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid currency code format"
// @Failure 404 {object} dto.ErrorResponse "Currency not supported"
// @Router /rates/{code} [get]
func (h *rateHandler) getQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))
	if len(code) != 3 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Currency code must be 3 letters"})
		return
	}

	entry, err := h.rateService.GetQuote(c.Request.Context(), code)
	if err != nil {
		respondError(c, logger.With(slog.String("code", code)), err, "Failed to retrieve quote")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(*entry))
}

// getRateSheet godoc
// @Summary Admin rate sheet
// @Description Returns static mids, overrides, rules and the resulting quote of every supported currency
// @Tags admin
// @Produce json
// @Success 200 {array} dto.RateSheetRowResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/rates [get]
func (h *rateHandler) getRateSheet(c *gin.Context) {
	entries := h.rateService.RateSheet(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToRateSheetResponse(entries))
}

// saveRateSheet godoc
// @Summary Save edited rate sheet rows
// @Description Applies the override and pricing rule of every submitted row. Invalid rows are reported per field and nothing is saved.
// @Tags admin
// @Accept json
// @Produce json
// @Param sheet body dto.SaveRateSheetRequest true "Edited rows"
// @Success 200 {array} dto.RateSheetRowResponse
// @Failure 400 {object} dto.ErrorResponse "Field-level validation errors"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/rates [put]
func (h *rateHandler) saveRateSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveRateSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	if err := h.rateService.SaveRateSheet(c.Request.Context(), req); err != nil {
		respondError(c, logger, err, "Failed to save rates")
		return
	}

	logger.Info("Rate sheet saved", slog.Int("rows", len(req.Rows)))
	c.JSON(http.StatusOK, dto.ToRateSheetResponse(h.rateService.RateSheet(c.Request.Context())))
}
