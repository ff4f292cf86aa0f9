package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
)

type ExperienceHandler struct {
	experienceUC domain.ExperienceUsecase
}

func NewExperienceHandler(public, protected *gin.RouterGroup, experienceUC domain.ExperienceUsecase) {
	handler := &ExperienceHandler{experienceUC: experienceUC}

	public.GET("/experience", handler.List)
	// Legacy alias kept for the public site.
	public.GET("/profile/experiences", handler.List)

	protected.POST("/experience", handler.Create)
	protected.PUT("/experience/:id", handler.Update)
	protected.DELETE("/experience/:id", handler.Delete)
}

// List godoc
// @Summary      List work experience, newest start date first
// @Tags         experience
// @Produce      json
// @Success      200  {array}  domain.Experience
// @Router       /experience [get]
func (h *ExperienceHandler) List(c *gin.Context) {
	experiences, err := h.experienceUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, experiences)
}

// Create godoc
// @Summary      Create an experience entry
// @Tags         experience
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        experience  body      domain.ExperienceInput  true  "Experience fields"
// @Success      201  {object}  domain.Experience
// @Failure      400  {object}  map[string]interface{}
// @Router       /experience [post]
func (h *ExperienceHandler) Create(c *gin.Context) {
	var input domain.ExperienceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	experience, err := h.experienceUC.Create(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, experience)
}

// Update godoc
// @Summary      Update an experience entry
// @Tags         experience
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id          path      int                     true  "Experience id"
// @Param        experience  body      domain.ExperienceInput  true  "Experience fields"
// @Success      200  {object}  domain.Experience
// @Failure      404  {object}  map[string]interface{}
// @Router       /experience/{id} [put]
func (h *ExperienceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input domain.ExperienceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	experience, err := h.experienceUC.Update(c.Request.Context(), id, input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, experience)
}

// Delete godoc
// @Summary      Delete an experience entry
// @Tags         experience
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Experience id"
// @Success      200  {object}  map[string]interface{}
// @Router       /experience/{id} [delete]
func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.experienceUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Experience deleted successfully")
}
