package api

import (
	"database/sql"
	stdhttp "net/http"

	"advocates/internal/config"
	h "advocates/internal/http/handlers"
	"advocates/internal/http/middleware"
	"advocates/internal/repositories"
	"advocates/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the pipeline: repository over the injected pool,
// services over the repository, handlers over the services.
func NewRouter(cfg config.Config, db *sql.DB, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(log),
		gin.Recovery(),
		middleware.CORS(cfg.AllowedOrigins()),
		middleware.RateLimit(cfg.RateLimitRPM, log),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	store := repositories.AdvocateRepository{DB: db}
	svc := services.AdvocateService{Store: store, Log: log}
	advocates := h.AdvocateHandler{
		Service: svc,
		Docs:    services.ProfileDocService{Advocates: svc},
	}
	system := h.SystemHandler{DB: db}

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", system.Health)
		apiGroup.GET("/db-check", system.DBCheck)

		adv := apiGroup.Group("/advocates")
		adv.GET("", advocates.List)
		adv.GET("/stats", advocates.Stats)
		adv.GET("/by-city", advocates.ListByCity)
		adv.GET("/:id", advocates.GetByID)
		adv.GET("/:id/profile.pdf", advocates.ProfilePDF)
	}

	return r
}
