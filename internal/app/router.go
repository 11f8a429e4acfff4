package app

import (
	"estudiapro_client/internal/config"
	"estudiapro_client/internal/middleware"
	"estudiapro_client/internal/model"
	"estudiapro_client/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerStudentRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		auth := public.Group("/auth")
		{
			auth.POST("/login/", c.auth.Login)
			auth.POST("/register/", c.auth.Register)
		}
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/auth/verify/", c.auth.Verify)
	rg.POST("/auth/logout/", c.auth.Logout)
	rg.GET("/auth/profile/", c.user.GetProfile)
	rg.PATCH("/users/profile/", c.user.UpdateProfile)
	rg.PUT("/users/profile/", c.user.UpdateProfile)

	rg.GET("/cursos/", c.subject.GetCatalog)
	rg.GET("/mis-cursos/", c.subject.GetUserSubjects)
	rg.POST("/mis-cursos/inscribir/", c.subject.Enroll)
	rg.POST("/mis-cursos/fecha-examen/", c.subject.UpdateExamDate)

	rg.GET("/recursos/", c.resource.GetAll)
	rg.GET("/recursos/mis-compras/", c.resource.GetPurchased)
	rg.POST("/recursos/comprar/", c.resource.Purchase)
	rg.POST("/recursos/descargar/", c.resource.Download)
	rg.GET("/formularios-estudio/", c.resource.GetFormularies)

	rg.GET("/examenes/", c.exam.GetAll)
	rg.POST("/examenes/iniciar/", c.exam.Start)
	rg.POST("/examenes/enviar/", c.exam.Submit)

	rg.GET("/tutores/", c.tutor.GetAll)
	rg.POST("/tutores/agendar/", c.tutor.Schedule)

	rg.GET("/foro/", c.forum.GetTopics)
	rg.POST("/foro/", c.forum.CreateTopic)
	rg.GET("/foro/:id/", c.forum.GetTopic)

	rg.GET("/mis-logros/", c.activity.GetUserAchievements)
	rg.GET("/logros/", c.activity.GetAllAchievements)
	rg.GET("/notificaciones/", c.activity.GetNotifications)
	rg.POST("/notificaciones/leer/", c.activity.MarkNotificationRead)
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users/", c.user.GetUsers)
		admin.PATCH("/users/:id/", c.user.ManageUser)

		admin.POST("/custom/cursos/", c.subject.CreateSubject)
		admin.PUT("/custom/cursos/:id/", c.subject.UpdateSubject)
		admin.DELETE("/custom/cursos/:id/", c.subject.DeleteSubject)

		admin.GET("/custom/recursos/", c.resource.GetAll)
		admin.POST("/custom/recursos/upload/", c.resource.Upload)
	}
}
