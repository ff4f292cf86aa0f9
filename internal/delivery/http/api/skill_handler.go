package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(public, protected *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	public.GET("/skills", handler.List)
	public.GET("/skills/grouped", handler.Grouped)

	protected.POST("/skills", handler.Create)
	protected.PUT("/skills/:id", handler.Update)
	protected.DELETE("/skills/:id", handler.Delete)
}

// List godoc
// @Summary      List active skills
// @Tags         skills
// @Produce      json
// @Success      200  {array}  domain.Skill
// @Router       /skills [get]
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skillUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

// Grouped godoc
// @Summary      List active skills grouped by category
// @Tags         skills
// @Produce      json
// @Success      200  {object}  map[string][]domain.Skill
// @Router       /skills/grouped [get]
func (h *SkillHandler) Grouped(c *gin.Context) {
	grouped, err := h.skillUC.Grouped(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, grouped)
}

// Create godoc
// @Summary      Create a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        skill  body      domain.SkillInput  true  "Skill fields"
// @Success      201  {object}  domain.Skill
// @Failure      400  {object}  map[string]interface{}
// @Router       /skills [post]
func (h *SkillHandler) Create(c *gin.Context) {
	var input domain.SkillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	skill, err := h.skillUC.Create(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, skill)
}

// Update godoc
// @Summary      Update a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      int                true  "Skill id"
// @Param        skill  body      domain.SkillInput  true  "Skill fields"
// @Success      200  {object}  domain.Skill
// @Failure      404  {object}  map[string]interface{}
// @Router       /skills/{id} [put]
func (h *SkillHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input domain.SkillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	skill, err := h.skillUC.Update(c.Request.Context(), id, input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, skill)
}

// Delete godoc
// @Summary      Delete a skill
// @Tags         skills
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Skill id"
// @Success      200  {object}  map[string]interface{}
// @Router       /skills/{id} [delete]
func (h *SkillHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.skillUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Skill deleted successfully")
}
