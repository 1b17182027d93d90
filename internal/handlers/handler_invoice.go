package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/exchange_shop/internal/core/ports/services"
	"github.com/SscSPs/exchange_shop/internal/dto"
	"github.com/SscSPs/exchange_shop/internal/middleware"
)

type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// registerInvoiceRoutes registers the invoice routes under an admin group.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := &invoiceHandler{invoiceService: invoiceService}

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("/:code", h.getInvoice)
		invoices.GET("/:code/pdf", h.getInvoicePDF)
	}
}

// createInvoice godoc
// @Summary Issue an invoice
// @Description Prices every line from the supplied rates, filling gaps per rateFill ("reciprocal" or "engine")
// @Tags admin
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Customer and lines"
// @Success 201 {object} dto.CreateInvoiceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse "No usable line"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	invoice, warnings, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create invoice")
		return
	}

	logger.Info("Invoice created", slog.String("invoice_code", invoice.InvoiceCode), slog.Int("warnings", len(warnings)))
	c.JSON(http.StatusCreated, dto.CreateInvoiceResponse{
		Invoice:  dto.ToInvoiceResponse(invoice),
		Warnings: dto.ToLineWarningResponses(warnings),
	})
}

// getInvoice godoc
// @Summary Get an invoice
// @Tags admin
// @Produce json
// @Param code path string true "Invoice code"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/invoices/{code} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), code)
	if err != nil {
		respondError(c, logger.With(slog.String("invoice_code", code)), err, "Failed to retrieve invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// getInvoicePDF godoc
// @Summary Download an invoice
// @Tags admin
// @Produce application/pdf
// @Param code path string true "Invoice code"
// @Success 200 {file} binary
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/invoices/{code}/pdf [get]
func (h *invoiceHandler) getInvoicePDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	pdf, filename, err := h.invoiceService.RenderInvoicePDF(c.Request.Context(), code)
	if err != nil {
		respondError(c, logger.With(slog.String("invoice_code", code)), err, "Failed to render invoice")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
