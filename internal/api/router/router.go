package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resihub/backend/config"
	"resihub/backend/internal/api/handler"
	"resihub/backend/internal/api/middleware"
	"resihub/backend/internal/model"
	"resihub/backend/pkg/jwt"
	"resihub/backend/pkg/redis"
)

// 登录接口限流参数：单 IP 每分钟最多 10 次尝试
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	// 留出余量容纳 multipart 编码开销
	r.Use(middleware.BodyLimit(cfg.Upload.MaxFileSize + 1<<20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, loginRateLimit, loginRateWindow), h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
			auth.GET("/status", h.Auth.Status)
		}

		// 楼宇信息（无需认证，与原门户首页一致）
		building := v1.Group("/building")
		{
			building.GET("/weather", h.Building.Weather)
			building.GET("/emergency", h.Building.Emergency)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.POST("/auth/change-password", h.Auth.ChangePassword)

			// 访客申请模块
			visitorRequests := authorized.Group("/visitor-requests")
			{
				visitorRequests.GET("", h.VisitorRequest.List)
				visitorRequests.POST("", h.VisitorRequest.Submit)
				visitorRequests.PUT("/:id/review", middleware.RoleAuth(model.RoleAdmin), h.VisitorRequest.Review)
				visitorRequests.DELETE("/:id", h.VisitorRequest.Remove) // admin 或本人 pending（Service 层鉴权）
			}

			// 设施预订模块
			authorized.GET("/amenities", h.AmenityBooking.Amenities)
			amenityBookings := authorized.Group("/amenity-bookings")
			{
				amenityBookings.GET("", h.AmenityBooking.List)
				amenityBookings.GET("/calendar.ics", h.AmenityBooking.Calendar)
				amenityBookings.POST("", middleware.RoleAuth(model.RoleResident), h.AmenityBooking.Submit)
				amenityBookings.PUT("/:id/review", middleware.RoleAuth(model.RoleAdmin), h.AmenityBooking.Review)
				amenityBookings.DELETE("/:id", h.AmenityBooking.Remove) // admin 或本人 pending（Service 层鉴权）
			}

			// 公告模块
			announcements := authorized.Group("/announcements")
			{
				announcements.GET("", h.Announcement.List)
				announcements.POST("", middleware.RoleAuth(model.RoleAdmin), h.Announcement.Create)
				announcements.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.Announcement.Update)
				announcements.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.Announcement.Delete)
			}

			// 联系方式目录模块
			contacts := authorized.Group("/contacts")
			{
				contacts.GET("", h.ContactInfo.List)
				contacts.POST("", middleware.RoleAuth(model.RoleAdmin), h.ContactInfo.Create)
				contacts.PUT("/:id", middleware.RoleAuth(model.RoleAdmin), h.ContactInfo.Update)
				contacts.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.ContactInfo.Delete)
			}

			// 会议纪要模块
			meetingMinutes := authorized.Group("/meeting-minutes")
			{
				meetingMinutes.GET("", h.MeetingMinute.List)
				meetingMinutes.GET("/:id/download", h.MeetingMinute.Download)
				meetingMinutes.POST("", middleware.RoleAuth(model.RoleAdmin), h.MeetingMinute.Upload)
				meetingMinutes.DELETE("/:id", middleware.RoleAuth(model.RoleAdmin), h.MeetingMinute.Delete)
			}

			// 门岗通行码模块
			gatePasses := authorized.Group("/gate-passes")
			gatePasses.Use(middleware.RoleAuth(model.RoleAdmin))
			{
				gatePasses.GET("", h.GatePass.ListValid)
				gatePasses.POST("", h.GatePass.Register)
			}

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/requests", middleware.RoleAuth(model.RoleAdmin), h.Export.ExportRequests)
			}
		}
	}

	return r
}
