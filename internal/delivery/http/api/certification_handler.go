package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
)

type CertificationHandler struct {
	certificationUC domain.CertificationUsecase
}

func NewCertificationHandler(public, protected *gin.RouterGroup, certificationUC domain.CertificationUsecase) {
	handler := &CertificationHandler{certificationUC: certificationUC}

	public.GET("/certifications", handler.List)

	protected.POST("/certifications", handler.Create)
	protected.PUT("/certifications/:id", handler.Update)
	protected.DELETE("/certifications/:id", handler.Delete)
}

// List godoc
// @Summary      List active certifications, newest issue date first
// @Tags         certifications
// @Produce      json
// @Success      200  {array}  domain.Certification
// @Router       /certifications [get]
func (h *CertificationHandler) List(c *gin.Context) {
	certs, err := h.certificationUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, certs)
}

// Create godoc
// @Summary      Create a certification
// @Tags         certifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        certification  body      domain.CertificationInput  true  "Certification fields"
// @Success      201  {object}  domain.Certification
// @Failure      400  {object}  map[string]interface{}
// @Router       /certifications [post]
func (h *CertificationHandler) Create(c *gin.Context) {
	var input domain.CertificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	cert, err := h.certificationUC.Create(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, cert)
}

// Update godoc
// @Summary      Update a certification
// @Tags         certifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id             path      int                        true  "Certification id"
// @Param        certification  body      domain.CertificationInput  true  "Certification fields"
// @Success      200  {object}  domain.Certification
// @Failure      404  {object}  map[string]interface{}
// @Router       /certifications/{id} [put]
func (h *CertificationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input domain.CertificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BindError(c, err)
		return
	}

	cert, err := h.certificationUC.Update(c.Request.Context(), id, input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, cert)
}

// Delete godoc
// @Summary      Delete a certification
// @Tags         certifications
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Certification id"
// @Success      200  {object}  map[string]interface{}
// @Router       /certifications/{id} [delete]
func (h *CertificationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.certificationUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, "Certification deleted successfully")
}
