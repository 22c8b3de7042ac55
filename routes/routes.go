package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/addness-teambase/kyonodekita-sub002/config"
	"github.com/addness-teambase/kyonodekita-sub002/handlers"
	"github.com/addness-teambase/kyonodekita-sub002/middlewares"
	"github.com/addness-teambase/kyonodekita-sub002/services/assistant"
	"github.com/addness-teambase/kyonodekita-sub002/services/scheduling"
)

// Register wires all HTTP routes. The composition root passes the DB,
// config, and logger explicitly; handlers hold no ambient global state.
func Register(e *echo.Echo, db *gorm.DB, cfg *config.Config, log *logrus.Logger) {
	aiClient := assistant.NewClient(cfg.AssistantBaseURL, cfg.AssistantAPIKey, log)
	schedClient := scheduling.NewClient(cfg.SchedulingBaseURL, cfg.SchedulingAPIKey, log)

	auth := handlers.NewAuthHandler(db, log, cfg.JWTSecret)
	child := handlers.NewChildHandler(db, log)
	rec := handlers.NewRecordHandler(db, log)
	cal := handlers.NewCalendarHandler(db, log)
	att := handlers.NewAttendanceHandler(db, log)
	ann := handlers.NewAnnouncementHandler(db, log)
	growth := handlers.NewGrowthHandler(db, log)
	chat := handlers.NewChatHandler(db, log)
	ai := handlers.NewAssistantHandler(db, log, aiClient)
	consult := handlers.NewConsultationHandler(db, log, schedClient)
	dash := handlers.NewDashboardHandler(db, log)

	// ===== Public =====
	e.GET("/healthz", handlers.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/auth/parents/register", auth.ParentRegister)
	e.GET("/auth/check-email", auth.CheckEmail)
	e.POST("/auth/parent/login", auth.ParentLogin)
	e.POST("/auth/staff/login", auth.StaffLogin)

	authMW := middlewares.RequireAuth(cfg.JWTSecret)

	// ===== Parent routes =====
	parent := e.Group("/parent", authMW, middlewares.RequireRole("parent"))

	parent.GET("/children", child.List)
	parent.POST("/children", child.Create)
	parent.PUT("/children/:id", child.Update)
	parent.DELETE("/children/:id", child.Delete)

	parent.GET("/records", rec.List)
	parent.POST("/records", rec.Create)
	parent.PUT("/records/:id", rec.Update)
	parent.DELETE("/records/:id", rec.Delete)

	parent.GET("/dashboard/today", dash.Today)

	parent.GET("/calendar/day", cal.Day)
	parent.GET("/calendar/events", cal.ListEvents)
	parent.POST("/calendar/events", cal.CreateEvent)
	parent.DELETE("/calendar/events/:id", cal.DeleteEvent)

	parent.GET("/announcements", ann.List)
	parent.GET("/attendance", att.ParentList)

	parent.GET("/growth", growth.List)
	parent.POST("/growth", growth.Create)
	parent.DELETE("/growth/:id", growth.Delete)

	parent.GET("/chat/conversations", chat.ParentConversations)
	parent.POST("/chat/conversations", chat.StartConversation)
	parent.GET("/chat/conversations/:id/messages", chat.ParentMessages)
	parent.POST("/chat/conversations/:id/messages", chat.ParentPostMessage)
	parent.GET("/chat/unread-count", chat.ParentUnreadCount)

	parent.POST("/assistant/chat", ai.Chat)
	parent.POST("/consultations/link", consult.CreateLink)

	// ===== Staff routes =====
	staff := e.Group("/staff", authMW, middlewares.RequireRole("staff", "admin"))

	staff.GET("/attendance", att.StaffList)
	staff.POST("/attendance", att.Record)

	staff.GET("/announcements", ann.List)
	staff.POST("/announcements", ann.Create)
	staff.DELETE("/announcements/:id", ann.Delete)

	staff.GET("/chat/conversations", chat.StaffConversations)
	staff.GET("/chat/conversations/:id/messages", chat.StaffMessages)
	staff.POST("/chat/conversations/:id/messages", chat.StaffPostMessage)
	staff.GET("/chat/unread-count", chat.StaffUnreadCount)
}
