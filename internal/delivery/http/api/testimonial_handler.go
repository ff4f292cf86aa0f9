package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
)

type TestimonialHandler struct {
	testimonialUC domain.TestimonialUsecase
}

func NewTestimonialHandler(public, protected *gin.RouterGroup, testimonialUC domain.TestimonialUsecase) {
	handler := &TestimonialHandler{testimonialUC: testimonialUC}

	public.GET("/testimonials", handler.List)

	protected.POST("/testimonials", handler.Create)
	protected.PUT("/testimonials/:id", handler.Update)
	protected.DELETE("/testimonials/:id", handler.Delete)
}

// List godoc
// @Summary      List active testimonials, featured first
// @Tags         testimonials
// @Produce      json
// @Success      200  {array}  domain.Testimonial
// @Router       /testimonials [get]
func (h *TestimonialHandler) List(c *gin.Context) {
	testimonials, err := h.testimonialUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// Create godoc
// @Summary      Create a testimonial
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        testimonial  body      domain.TestimonialInput  true  "Testimonial fields"
// @Success      201  {object}  domain.Testimonial
// @Failure      400  {object}  map[string]interface{}
// @Router       /testimonials [post]
func (h *TestimonialHandler) Create(c *gin.Context) {
	var input domain.TestimonialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	testimonial, err := h.testimonialUC.Create(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, testimonial)
}

// Update godoc
// @Summary      Update a testimonial
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      int                      true  "Testimonial id"
// @Param        testimonial  body      domain.TestimonialInput  true  "Testimonial fields"
// @Success      200  {object}  domain.Testimonial
// @Failure      404  {object}  map[string]interface{}
// @Router       /testimonials/{id} [put]
func (h *TestimonialHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input domain.TestimonialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	testimonial, err := h.testimonialUC.Update(c.Request.Context(), id, input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, testimonial)
}

// Delete godoc
// @Summary      Delete a testimonial
// @Tags         testimonials
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Testimonial id"
// @Success      200  {object}  map[string]interface{}
// @Router       /testimonials/{id} [delete]
func (h *TestimonialHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.testimonialUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Testimonial deleted successfully")
}
