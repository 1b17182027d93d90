package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/exchange_shop/internal/core/ports/services"
	"github.com/SscSPs/exchange_shop/internal/dto"
	"github.com/SscSPs/exchange_shop/internal/middleware"
)

// contactHandler receives customer messages and lists them for the back office.
type contactHandler struct {
	contactService portssvc.ContactSvcFacade
}

func registerContactRoutes(rg *gin.RouterGroup, contactService portssvc.ContactSvcFacade) {
	h := &contactHandler{contactService: contactService}
	rg.POST("/contact", h.sendMessage)
}

func registerAdminMessageRoutes(rg *gin.RouterGroup, contactService portssvc.ContactSvcFacade) {
	h := &contactHandler{contactService: contactService}
	rg.GET("/messages", h.listMessages)
}

// sendMessage godoc
// @Summary Contact the shop
// @Tags contact
// @Accept json
// @Produce json
// @Param message body dto.SendContactRequest true "Name, email and message"
// @Success 201 {object} dto.ContactMessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /contact [post]
func (h *contactHandler) sendMessage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.SendContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	msg, err := h.contactService.Send(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to send message")
		return
	}
	c.JSON(http.StatusCreated, dto.ToContactMessageResponse(msg))
}

// listMessages godoc
// @Summary List contact messages
// @Description Newest first
// @Tags admin
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListMessagesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/messages [get]
func (h *contactHandler) listMessages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListMessagesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	messages, nextToken, err := h.contactService.ListMessages(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list messages")
		return
	}
	resp := dto.ListMessagesResponse{Messages: make([]dto.ContactMessageResponse, len(messages)), NextToken: nextToken}
	for i := range messages {
		resp.Messages[i] = dto.ToContactMessageResponse(&messages[i])
	}
	c.JSON(http.StatusOK, resp)
}
