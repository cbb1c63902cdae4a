package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salon-agenda/config"
	"salon-agenda/internal/api/handler"
	"salon-agenda/internal/api/middleware"
	"salon-agenda/pkg/jwt"
	"salon-agenda/pkg/redis"
)

// Setup builds the Gin engine with the full route table.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20)) // 1MB

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		// public
		auth := v1.Group("/auth")
		{
			auth.POST("/register", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Register)
			auth.POST("/login", middleware.RateLimit(rdb, 20, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			users := authorized.Group("/users")
			{
				users.GET("", middleware.RoleAuth("admin"), h.User.List)
				users.GET("/:id", middleware.RoleAuth("admin"), h.User.Get)
				users.PUT("/:id", middleware.RoleAuth("admin"), h.User.Update)
				users.DELETE("/:id", middleware.RoleAuth("admin"), h.User.Delete)
			}

			professionals := authorized.Group("/professionals")
			{
				professionals.GET("", h.Professional.List)
				professionals.GET("/:id", h.Professional.Get)
				professionals.GET("/:id/services", h.Professional.ListServices)
				professionals.GET("/:id/availability", h.Professional.Availability)
				professionals.GET("/:id/calendar.ics", h.Professional.CalendarFeed)
				professionals.GET("/:id/work-schedules", h.Professional.ListWorkSchedules)
				professionals.POST("", middleware.RoleAuth("admin"), h.Professional.Create)
				professionals.PUT("/:id", middleware.RoleAuth("admin"), h.Professional.Update)
				professionals.DELETE("/:id", middleware.RoleAuth("admin"), h.Professional.Delete)
				professionals.POST("/:id/services", middleware.RoleAuth("admin"), h.Professional.LinkService)
				professionals.DELETE("/:id/services/:service_id", middleware.RoleAuth("admin"), h.Professional.UnlinkService)
			}

			services := authorized.Group("/services")
			{
				services.GET("", h.Service.List)
				services.GET("/:id", h.Service.Get)
				services.GET("/:id/professionals", h.Service.ListProfessionals)
				services.POST("", middleware.RoleAuth("admin"), h.Service.Create)
				services.PUT("/:id", middleware.RoleAuth("admin"), h.Service.Update)
				services.DELETE("/:id", middleware.RoleAuth("admin"), h.Service.Delete)
			}

			workSchedules := authorized.Group("/work-schedules")
			workSchedules.Use(middleware.RoleAuth("admin"))
			{
				workSchedules.POST("", h.WorkSchedule.Create)
				workSchedules.GET("/:id", h.WorkSchedule.Get)
				workSchedules.PUT("/:id", h.WorkSchedule.Update)
				workSchedules.DELETE("/:id", h.WorkSchedule.Delete)
			}

			appointments := authorized.Group("/appointments")
			{
				appointments.POST("", middleware.RateLimit(rdb, 30, time.Minute), h.Appointment.Create)
				appointments.GET("/my", h.Appointment.ListMine)
				appointments.GET("", middleware.RoleAuth("admin"), h.Appointment.List)
				appointments.GET("/:id", h.Appointment.Get)
				appointments.PUT("/:id/status", middleware.RoleAuth("admin"), h.Appointment.UpdateStatus)
				appointments.DELETE("/:id", h.Appointment.Cancel)
			}

			transactions := authorized.Group("/transactions")
			transactions.Use(middleware.RoleAuth("admin"))
			{
				transactions.POST("", h.Transaction.Create)
				transactions.GET("", h.Transaction.List)
				transactions.GET("/summary", h.Transaction.Summary)
				transactions.GET("/:id", h.Transaction.Get)
				transactions.PUT("/:id", h.Transaction.Update)
				transactions.DELETE("/:id", h.Transaction.Delete)
			}

			export := authorized.Group("/export")
			export.Use(middleware.RoleAuth("admin"))
			{
				export.GET("/appointments", h.Export.Appointments)
				export.GET("/transactions", h.Export.Transactions)
			}
		}
	}

	return r
}
