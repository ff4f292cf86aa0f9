package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

func NewContactHandler(public, protected *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{contactUC: contactUC}

	public.POST("/contact", handler.Submit)

	protected.GET("/contact", handler.List)
	protected.PUT("/contact/:id/read", handler.MarkRead)
	protected.DELETE("/contact/:id", handler.Delete)
}

// Submit godoc
// @Summary      Submit a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        message  body      domain.ContactRequest  true  "Message"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	_, err := h.contactUC.Submit(c.Request.Context(), req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Message sent successfully")
}

// List godoc
// @Summary      List contact messages
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        page    query  int     false  "Page number (1-based)"
// @Param        limit   query  int     false  "Page size"
// @Param        status  query  string  false  "Filter: unread, read or all"
// @Success      200  {object}  map[string]interface{}
// @Router       /contact [get]
func (h *ContactHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	filter := domain.ContactFilter{
		Status: c.Query("status"),
		Page:   page,
		Limit:  limit,
	}

	messages, pagination, err := h.contactUC.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"messages":   messages,
		"pagination": pagination,
	})
}

// MarkRead godoc
// @Summary      Mark a message as read
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Message id"
// @Success      200  {object}  map[string]interface{}
// @Router       /contact/{id}/read [put]
func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.contactUC.MarkRead(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Message marked as read")
}

// Delete godoc
// @Summary      Delete a message
// @Tags         contact
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Message id"
// @Success      200  {object}  map[string]interface{}
// @Router       /contact/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.contactUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Message deleted successfully")
}
