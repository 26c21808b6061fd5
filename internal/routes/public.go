package routes

import (
	"github.com/cirilocodes/noelles-group/internal/handlers"
	"github.com/cirilocodes/noelles-group/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes wires the anonymous site surface: form submissions
// (rate limited per IP) and the published content feeds.
func RegisterPublicRoutes(rg *gin.RouterGroup) {
	submit := rg.Group("")
	submit.Use(middleware.SubmitRateLimit())

	submit.POST("/contact/submit", handlers.SubmitContact)
	submit.POST("/early-access/submit", handlers.SubmitEarlyAccess)
	submit.POST("/bookings/submit", handlers.SubmitBooking)
	submit.POST("/reviews/submit", handlers.SubmitReview)
	submit.POST("/newsletter/subscribe", handlers.SubscribeNewsletter)

	rg.GET("/reviews", handlers.PublicListReviews)
	rg.GET("/launch-updates", handlers.PublicListLaunchUpdates)
}
