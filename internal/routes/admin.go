package routes

import (
	"github.com/cirilocodes/noelles-group/internal/handlers"
	"github.com/cirilocodes/noelles-group/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireApproved())

	// Dashboard
	admin.GET("/dashboard/stats", handlers.AdminDashboardStats)

	// User Management
	admin.GET("/users", handlers.AdminListUsers)
	admin.GET("/users/pending", handlers.AdminListPendingUsers)
	admin.PATCH("/users/:id/approve", handlers.AdminApproveUser)
	admin.DELETE("/users/:id", middleware.SuperAdminOnly(), handlers.AdminDeleteUser)

	// Launch Updates Management
	admin.GET("/launch-updates", handlers.AdminListLaunchUpdates)
	admin.POST("/launch-updates", handlers.AdminCreateLaunchUpdate)
	admin.PATCH("/launch-updates/:id", handlers.AdminUpdateLaunchUpdate)
	admin.DELETE("/launch-updates/:id", handlers.AdminDeleteLaunchUpdate)

	// Submission inboxes
	admin.GET("/contact", handlers.AdminListContacts)
	admin.GET("/early-access", handlers.AdminListEarlyAccess)
	admin.GET("/bookings", handlers.AdminListBookings)
	admin.GET("/reviews", handlers.AdminListReviews)
	admin.GET("/newsletter", handlers.AdminListSubscribers)

	// Status transitions
	admin.PATCH("/contact/:id/status", handlers.UpdateContactStatus)
	admin.PATCH("/early-access/:id/status", handlers.UpdateEarlyAccessStatus)
	admin.PATCH("/bookings/:id/status", handlers.UpdateBookingStatus)
	admin.PATCH("/reviews/:id/status", handlers.UpdateReviewStatus)
}
