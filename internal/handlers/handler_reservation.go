package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/exchange_shop/internal/core/ports/services"
	"github.com/SscSPs/exchange_shop/internal/dto"
	"github.com/SscSPs/exchange_shop/internal/middleware"
)

// reservationHandler handles HTTP requests related to currency reservations.
type reservationHandler struct {
	reservationService portssvc.ReservationSvcFacade
}

func newReservationHandler(rs portssvc.ReservationSvcFacade) *reservationHandler {
	return &reservationHandler{reservationService: rs}
}

// registerBookingRoutes registers the public booking window route.
func registerBookingRoutes(rg *gin.RouterGroup, reservationService portssvc.ReservationSvcFacade) {
	h := newReservationHandler(reservationService)

	rg.GET("/booking/window", h.bookingWindow)
}

// registerReservationRoutes registers the customer reservation routes. rg must be authenticated.
func registerReservationRoutes(rg *gin.RouterGroup, reservationService portssvc.ReservationSvcFacade, bookingLimit gin.HandlerFunc) {
	h := newReservationHandler(reservationService)

	reservations := rg.Group("/reservations")
	{
		reservations.POST("", bookingLimit, h.createReservation)
		reservations.GET("", h.listMyReservations)
		reservations.GET("/:code", h.getReservation)
		reservations.GET("/:code/qr", h.getReservationQR)
	}
}

// registerAdminReservationRoutes registers the back-office reservation routes under an admin group.
func registerAdminReservationRoutes(rg *gin.RouterGroup, reservationService portssvc.ReservationSvcFacade) {
	h := newReservationHandler(reservationService)

	reservations := rg.Group("/reservations")
	{
		reservations.GET("", h.listReservations)
		reservations.POST("/:code/confirm", h.confirmReservation)
	}
}

// bookingWindow godoc
// @Summary Booking window
// @Description Tells whether reservations are accepted right now and when the next pickup deadline falls
// @Tags reservations
// @Produce json
// @Success 200 {object} dto.BookingWindowResponse
// @Router /booking/window [get]
func (h *reservationHandler) bookingWindow(c *gin.Context) {
	window := h.reservationService.BookingWindow(h.reservationService.Now())
	c.JSON(http.StatusOK, dto.ToBookingWindowResponse(window))
}

// createReservation godoc
// @Summary Reserve currency for pickup
// @Description Books the priced lines of the submission. Lines without a rate are left out and reported as warnings.
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservation body dto.CreateReservationRequest true "Reservation details"
// @Success 201 {object} dto.CreateReservationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Booking closed"
// @Failure 422 {object} dto.ErrorResponse "No usable line"
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reservations [post]
func (h *reservationHandler) createReservation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	reservation, warnings, err := h.reservationService.CreateReservation(c.Request.Context(), userID, req)
	if err != nil {
		if len(warnings) > 0 {
			logger.Warn("Reservation lines left out", slog.Int("warnings", len(warnings)))
		}
		respondError(c, logger, err, "Failed to create reservation")
		return
	}

	logger.Info("Reservation created", slog.String("order_code", reservation.OrderCode), slog.Int("items", len(reservation.Items)))
	c.JSON(http.StatusCreated, dto.CreateReservationResponse{
		Reservation: dto.ToReservationResponse(reservation, h.reservationService.Now()),
		Warnings:    dto.ToLineWarningResponses(warnings),
	})
}

// listMyReservations godoc
// @Summary List my reservations
// @Tags reservations
// @Produce json
// @Success 200 {array} dto.ReservationResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reservations [get]
func (h *reservationHandler) listMyReservations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	reservations, err := h.reservationService.ListMyReservations(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list reservations")
		return
	}
	c.JSON(http.StatusOK, dto.ToListReservationResponse(reservations, h.reservationService.Now()))
}

// getReservation godoc
// @Summary Get a reservation
// @Description Owners see their own reservations, administrators see all of them
// @Tags reservations
// @Produce json
// @Param code path string true "Order code"
// @Success 200 {object} dto.ReservationResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reservations/{code} [get]
func (h *reservationHandler) getReservation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	code := c.Param("code")
	reservation, err := h.reservationService.GetReservation(c.Request.Context(), userID, code, middleware.IsAdmin(c))
	if err != nil {
		respondError(c, logger.With(slog.String("order_code", code)), err, "Failed to retrieve reservation")
		return
	}
	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation, h.reservationService.Now()))
}

// getReservationQR godoc
// @Summary Reservation QR code
// @Description PNG QR code encoding the order code, shown at the counter
// @Tags reservations
// @Produce png
// @Param code path string true "Order code"
// @Success 200 {file} binary
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reservations/{code}/qr [get]
func (h *reservationHandler) getReservationQR(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	code := c.Param("code")
	png, err := h.reservationService.ReservationQR(c.Request.Context(), userID, code, middleware.IsAdmin(c))
	if err != nil {
		respondError(c, logger.With(slog.String("order_code", code)), err, "Failed to render QR code")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// listReservations godoc
// @Summary List all reservations
// @Description Newest first, paginated with an opaque token
// @Tags admin
// @Produce json
// @Param limit query int false "Page size (max 100)" default(20)
// @Param nextToken query string false "Token of the next page"
// @Success 200 {object} dto.ListReservationsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid pagination token"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/reservations [get]
func (h *reservationHandler) listReservations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListReservationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	reservations, nextToken, err := h.reservationService.ListReservations(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list reservations")
		return
	}
	c.JSON(http.StatusOK, dto.ListReservationsResponse{
		Reservations: dto.ToListReservationResponse(reservations, h.reservationService.Now()),
		NextToken:    nextToken,
	})
}

// confirmReservation godoc
// @Summary Confirm pickup
// @Description Marks a pending reservation as completed. Confirming a completed reservation is a no-op.
// @Tags admin
// @Produce json
// @Param code path string true "Order code"
// @Success 200 {object} dto.ReservationResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/reservations/{code}/confirm [post]
func (h *reservationHandler) confirmReservation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")
	logger = logger.With(slog.String("order_code", code))

	reservation, err := h.reservationService.ConfirmReservation(c.Request.Context(), code)
	if err != nil {
		respondError(c, logger, err, "Failed to confirm reservation")
		return
	}

	logger.Info("Reservation confirmed")
	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation, h.reservationService.Now()))
}
