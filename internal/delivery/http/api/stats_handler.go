package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/domain"
)

type StatsHandler struct {
	statsUC domain.StatsUsecase
}

func NewStatsHandler(public, protected *gin.RouterGroup, statsUC domain.StatsUsecase) {
	handler := &StatsHandler{statsUC: statsUC}

	public.GET("/stats/public", handler.Public)
	protected.GET("/admin/dashboard", handler.Dashboard)
}

// Public godoc
// @Summary      Landing page counters
// @Tags         stats
// @Produce      json
// @Success      200  {object}  domain.PublicStats
// @Router       /stats/public [get]
func (h *StatsHandler) Public(c *gin.Context) {
	stats, err := h.statsUC.Public(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Dashboard godoc
// @Summary      Admin dashboard counters
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.DashboardStats
// @Router       /admin/dashboard [get]
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.statsUC.Dashboard(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
