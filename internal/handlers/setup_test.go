package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/cirilocodes/noelles-group/internal/config"
	"github.com/cirilocodes/noelles-group/internal/database"
	"github.com/cirilocodes/noelles-group/internal/middleware"
	"github.com/cirilocodes/noelles-group/internal/models"
	"github.com/cirilocodes/noelles-group/internal/services"
	"github.com/cirilocodes/noelles-group/pkg/logger"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDBCounter int64

// SetupTestDB swaps the global DB for a fresh in-memory SQLite instance.
// Each test gets its own named shared-cache database so pooled
// connections see the same data without leaking state between tests.
func SetupTestDB(t *testing.T) {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTSecret:   "test_secret_key_12345",
		NotifyEmail: "ops@example.com",
	}
	logger.Init("test")
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared&_busy_timeout=5000", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test DB: %v", err)
	}

	if err := db.AutoMigrate(
		&models.AdminUser{},
		&models.LaunchUpdate{},
		&models.EarlyAccessRequest{},
		&models.ContactSubmission{},
		&models.Booking{},
		&models.Review{},
		&models.NewsletterSubscriber{},
	); err != nil {
		t.Fatalf("Failed to migrate test DB: %v", err)
	}

	database.DB = db
}

// fakeMailer stands in for the SMTP transport in tests
type fakeMailer struct {
	mu   sync.Mutex
	sent []string
	fail bool
}

func (f *fakeMailer) Send(to, subject, htmlBody, textBody string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("smtp: connection refused")
	}
	f.sent = append(f.sent, subject)
	return nil
}

func useFakeMailer(t *testing.T, fail bool) *fakeMailer {
	t.Helper()
	fake := &fakeMailer{fail: fail}
	prev := services.Mail
	services.Mail = fake
	t.Cleanup(func() { services.Mail = prev })
	return fake
}

// setupRouter builds the same route tree the server wires in main
func setupRouter() *gin.Engine {
	r := gin.New()

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", Register)
	auth.POST("/login", Login)

	api.POST("/contact/submit", SubmitContact)
	api.POST("/early-access/submit", SubmitEarlyAccess)
	api.POST("/bookings/submit", SubmitBooking)
	api.POST("/reviews/submit", SubmitReview)
	api.POST("/newsletter/subscribe", SubscribeNewsletter)
	api.GET("/reviews", PublicListReviews)
	api.GET("/launch-updates", PublicListLaunchUpdates)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireApproved())
	admin.GET("/dashboard/stats", AdminDashboardStats)
	admin.GET("/users", AdminListUsers)
	admin.GET("/users/pending", AdminListPendingUsers)
	admin.PATCH("/users/:id/approve", AdminApproveUser)
	admin.DELETE("/users/:id", middleware.SuperAdminOnly(), AdminDeleteUser)
	admin.GET("/launch-updates", AdminListLaunchUpdates)
	admin.POST("/launch-updates", AdminCreateLaunchUpdate)
	admin.PATCH("/launch-updates/:id", AdminUpdateLaunchUpdate)
	admin.DELETE("/launch-updates/:id", AdminDeleteLaunchUpdate)
	admin.GET("/contact", AdminListContacts)
	admin.GET("/early-access", AdminListEarlyAccess)
	admin.GET("/bookings", AdminListBookings)
	admin.GET("/reviews", AdminListReviews)
	admin.GET("/newsletter", AdminListSubscribers)
	admin.PATCH("/contact/:id/status", UpdateContactStatus)
	admin.PATCH("/early-access/:id/status", UpdateEarlyAccessStatus)
	admin.PATCH("/bookings/:id/status", UpdateBookingStatus)
	admin.PATCH("/reviews/:id/status", UpdateReviewStatus)

	return r
}

func performRequest(r *gin.Engine, method, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// createAdmin inserts an account directly, bypassing the register handler
func createAdmin(t *testing.T, username string, role models.Role, approved bool) *models.AdminUser {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("sup3r-secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := &models.AdminUser{
		Username:   username,
		Email:      username + "@example.com",
		Password:   string(hash),
		Role:       role,
		IsApproved: approved,
	}
	if err := database.DB.Create(user).Error; err != nil {
		t.Fatalf("Failed to create admin %q: %v", username, err)
	}
	return user
}

func loginAs(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()

	w := performRequest(r, "POST", "/api/auth/login", map[string]string{
		"username": username,
		"password": "sup3r-secret",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("Login as %q failed: %d %s", username, w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp.Token
}
