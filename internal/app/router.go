package app

import (
	"fire_planner_backend/docs"
	"fire_planner_backend/internal/config"
	"fire_planner_backend/internal/middleware"
	"fire_planner_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes: health, and the OAuth entry/exit points. Logout only
	// clears a cookie, so it needs no valid session to work.
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.GET("/auth/whop/callback", c.auth.WhopCallback)
		public.DELETE("/auth/whop/verify", c.auth.Logout)
	}

	// Everything behind the session gate.
	authGroup := router.Group("/api")
	authGroup.Use(middleware.SessionMiddleware(cfg))
	{
		authGroup.GET("/auth/whop/verify", c.auth.Verify)

		flow := authGroup.Group("/flow")
		{
			flow.POST("/start", c.flow.Start)
			flow.GET("", c.flow.Current)
			flow.PUT("/answers", c.flow.RecordAnswer)
			flow.POST("/advance", c.flow.Advance)
			flow.POST("/retreat", c.flow.Retreat)
			flow.DELETE("", c.flow.Discard)
		}

		authGroup.POST("/analyses", c.analysis.Save)
		authGroup.GET("/analyses", c.analysis.List)
	}
}
