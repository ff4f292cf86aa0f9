package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go-portfolio-backend/config"
	_ "go-portfolio-backend/docs"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/repository/sqlstore"
	"go-portfolio-backend/internal/storage"
	"go-portfolio-backend/pkg/token"
)

type RouterDeps struct {
	AuthUC          domain.AuthUsecase
	ProfileUC       domain.ProfileUsecase
	ProjectUC       domain.ProjectUsecase
	SkillUC         domain.SkillUsecase
	ExperienceUC    domain.ExperienceUsecase
	CertificationUC domain.CertificationUsecase
	TestimonialUC   domain.TestimonialUsecase
	ContactUC       domain.ContactUsecase
	StatsUC         domain.StatsUsecase
	Tokens          *token.Manager
	Store           *sqlstore.Store
	Assets          *storage.Store
	Config          *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindow) * time.Second

	// CORS must run before anything that can short-circuit the request.
	r.Use(middleware.CORS(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(maxBodyBytes(deps.Config.MaxBodyBytes))
	r.Use(middleware.ErrorHandler())

	// Uploaded assets are served directly; filenames are opaque and
	// unguessable, the records referencing them carry the public URLs.
	r.Static("/uploads", deps.Assets.BaseDir())

	api := r.Group("/api")
	api.Use(middleware.RateLimit(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobal, window)))

	api.GET("/health", func(c *gin.Context) {
		if err := deps.Store.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": deps.Store.Dialect()})
	})

	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))

	loginLimiter := middleware.RateLimit(middleware.LoginRateLimitConfig(deps.Config.RateLimitLogin, window))

	NewAuthHandler(api, protected, loginLimiter, deps.AuthUC)
	NewProfileHandler(api, protected, deps.ProfileUC)
	NewProjectHandler(api, protected, deps.ProjectUC)
	NewSkillHandler(api, protected, deps.SkillUC)
	NewExperienceHandler(api, protected, deps.ExperienceUC)
	NewCertificationHandler(api, protected, deps.CertificationUC)
	NewTestimonialHandler(api, protected, deps.TestimonialUC)
	NewContactHandler(api, protected, deps.ContactUC)
	NewStatsHandler(api, protected, deps.StatsUC)

	return r
}

// maxBodyBytes caps request bodies so an oversized upload fails during the
// multipart read instead of buffering without bound.
func maxBodyBytes(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
