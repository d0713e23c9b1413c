package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"minutes-backend/internal/shared/middleware"
	"minutes-backend/internal/shared/response"
	"minutes-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler)

		setupAuthRoutes(v1, c)
		setupMinutesRoutes(v1, c)
		setupFacultyRoutes(v1, c)
		setupExportRoutes(v1, c)
		setupSettingsRoutes(v1, c)
	}

	return router
}

func healthCheckHandler(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"status": "ok"})
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.SettingsHandler.Login)
	}
}

// setupMinutesRoutes wires the minutes endpoints. Any authenticated
// role may read; writing and drafting are admin only.
func setupMinutesRoutes(v1 *gin.RouterGroup, c *container.Container) {
	m := v1.Group("/minutes")
	m.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		m.GET("", c.MinutesHandler.List)
		m.GET("/search", c.MinutesHandler.Search)
		m.GET("/:id", c.MinutesHandler.Get)

		admin := m.Group("")
		admin.Use(middleware.AdminMiddleware())
		{
			admin.POST("", c.MinutesHandler.Submit)
			admin.PUT("/:id", c.MinutesHandler.Update)
			admin.DELETE("/:id", c.MinutesHandler.Delete)
			admin.POST("/draft", c.MinutesHandler.Draft)
		}
	}
}

func setupFacultyRoutes(v1 *gin.RouterGroup, c *container.Container) {
	f := v1.Group("/faculty")
	f.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		f.GET("", c.FacultyHandler.List)
		f.GET("/options", c.FacultyHandler.Options)

		admin := f.Group("")
		admin.Use(middleware.AdminMiddleware())
		{
			admin.POST("", c.FacultyHandler.Create)
			admin.PUT("/:no", c.FacultyHandler.Update)
			admin.DELETE("/:no", c.FacultyHandler.Delete)
		}
	}
}

func setupExportRoutes(v1 *gin.RouterGroup, c *container.Container) {
	e := v1.Group("/exports")
	e.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		e.POST("/csv", c.ExportHandler.CSV)
		e.POST("/pdf", c.ExportHandler.PDF)
		e.POST("/xlsx", c.ExportHandler.XLSX)
	}
}

func setupSettingsRoutes(v1 *gin.RouterGroup, c *container.Container) {
	s := v1.Group("/settings")
	s.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		s.PUT("/password", c.SettingsHandler.UpdatePassword)
	}
}
