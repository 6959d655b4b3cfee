package app

import (
	"net/http"
	"strings"
	"study_tracker_backend/docs"
	"study_tracker_backend/internal/util"
	"study_tracker_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 页面路由，返回与对应 /api 接口相同的视图数据
	a.registerViewRoutes(router, c)

	// 2. 接口
	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.GET("/home", c.home.GetHome)

		api.POST("/profile", c.profile.CreateProfile)
		api.GET("/profile", c.profile.GetProfile)

		api.GET("/dashboard", c.dashboard.GetDashboard)
		api.GET("/insights", c.insights.GetInsights)

		a.registerCalendarRoutes(api, c)
		a.registerLogbookRoutes(api, c)
		a.registerSubjectRoutes(api, c)
		a.registerCollectionRoutes(api, c)
	}

	// 3. 未匹配的页面回到首页，未匹配的接口返回 404
	router.NoRoute(func(ctx *gin.Context) {
		if isAPIPath(ctx.Request.URL.Path) {
			util.NotFound(ctx)
			return
		}
		ctx.Redirect(http.StatusFound, "/")
	})
}

func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}

func (a *App) registerViewRoutes(router *gin.Engine, c *controllers) {
	router.GET("/", c.home.GetHome)
	router.GET("/dashboard", c.dashboard.GetDashboard)
	router.GET("/calendar", c.calendar.GetCalendar)
	router.GET("/logbook", c.logbook.GetLogbook)
	router.GET("/subjects", c.subject.GetSubjects)
	router.GET("/insights", c.insights.GetInsights)
}

func (a *App) registerCalendarRoutes(rg *gin.RouterGroup, c *controllers) {
	calendar := rg.Group("/calendar")
	{
		calendar.GET("", c.calendar.GetCalendar)
		calendar.GET("/form", c.calendar.GetSessionForm)
		calendar.POST("/sessions", c.calendar.CreateSession)
	}
}

func (a *App) registerLogbookRoutes(rg *gin.RouterGroup, c *controllers) {
	logbook := rg.Group("/logbook")
	{
		logbook.GET("", c.logbook.GetLogbook)
		logbook.GET("/form", c.logbook.GetNewEntryForm)
		logbook.POST("/entries", c.logbook.CreateEntry)
		logbook.PUT("/entries/:id", c.logbook.UpdateEntry)
		logbook.GET("/entries/:id/form", c.logbook.GetEntryForm)
		logbook.PATCH("/entries/:id/resolved", c.logbook.ToggleResolved)
		logbook.DELETE("/entries/:id", c.logbook.DeleteEntry)
	}
}

func (a *App) registerSubjectRoutes(rg *gin.RouterGroup, c *controllers) {
	subjects := rg.Group("/subjects")
	{
		subjects.GET("", c.subject.GetSubjects)
		subjects.POST("", c.subject.CreateSubject)
		subjects.PUT("/:id", c.subject.UpdateSubject)
		subjects.DELETE("/:id", c.subject.DeleteSubject)
		subjects.POST("/:id/pin", c.subject.TogglePin)
		subjects.GET("/:id/modules", c.subject.GetModules)
		subjects.PUT("/:id/modules", c.subject.CommitModules)
		subjects.GET("/:id/stats", c.subject.GetSubjectStats)
		subjects.POST("/:id/image", c.subject.UploadImage)
	}
}

func (a *App) registerCollectionRoutes(rg *gin.RouterGroup, c *controllers) {
	collections := rg.Group("/collections/:collection")
	{
		collections.GET("", c.collection.List)
		collections.POST("", c.collection.Create)
		collections.PUT("/:id", c.collection.Update)
		collections.DELETE("/:id", c.collection.Delete)
	}
}
