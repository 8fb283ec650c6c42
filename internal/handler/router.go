package handler

import (
	"github.com/eventnav/backend/internal/config"
	"github.com/eventnav/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services - 라우터가 사용하는 서비스 묶음
type Services struct {
	Events   *service.EventService
	Feedback *service.FeedbackService
	Buddies  *service.BuddyService
	Sessions *service.SessionService
}

func NewRouter(cfg config.ServerConfig, svc Services) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware(cfg.AllowedOrigins, cfg.AllowCredentials, router.Routes))

	router.GET("/ping", Ping)
	router.GET("/", Root)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	events := NewEventHandler(svc.Events)
	feedback := NewFeedbackHandler(svc.Feedback)
	buddies := NewBuddyHandler(svc.Buddies)

	api := router.Group("/api/v1")
	api.Use(SessionMiddleware(svc.Sessions))
	{
		api.GET("/events", events.ListEvents)
		api.GET("/events/:id", events.GetEventDetail)
		api.GET("/events/:id/pois", events.ListPOIs)

		api.POST("/feedback", feedback.SubmitFeedback)
		api.GET("/feedback", feedback.GetFeedbackForTarget)
		api.GET("/feedback/all", feedback.GetAllFeedback)
		api.GET("/feedback/recent", feedback.GetRecentFeedback)
		api.GET("/feedback/stats", feedback.GetFeedbackStats)

		api.GET("/buddies", buddies.ListBuddies)
		api.POST("/buddies", buddies.RequestBuddy)
		api.GET("/buddies/locations", buddies.BuddyLocations)
		api.PATCH("/buddies/:id", buddies.RespondToRequest)
		api.DELETE("/buddies/:id", buddies.RemoveBuddy)
	}

	return router
}
