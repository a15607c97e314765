package router

import (
	"github.com/AFSHAL-7/trustlens/config"
	"github.com/AFSHAL-7/trustlens/internal/handler"
	"github.com/AFSHAL-7/trustlens/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Setup(
	cfg *config.Config,
	analysisHandler *handler.AnalysisHandler,
	statsHandler *handler.StatsHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.Metrics())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.Use(middleware.Auth(cfg.Auth.Secret))
	{
		analyses := api.Group("/analyses")
		{
			analyses.POST("", middleware.RateLimit(cfg.RateLimit), analysisHandler.Create)
			analyses.GET("", analysisHandler.List)
			analyses.GET("/:uuid", analysisHandler.Get)
			analyses.POST("/:uuid/consent", analysisHandler.Consent)
		}

		api.GET("/stats", statsHandler.Get)
	}

	return r
}
