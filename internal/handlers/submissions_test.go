package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/cirilocodes/noelles-group/internal/database"
	"github.com/cirilocodes/noelles-group/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSubmitContact_EndToEnd(t *testing.T) {
	SetupTestDB(t)
	useFakeMailer(t, false)
	r := setupRouter()

	w := performRequest(r, "POST", "/api/contact/submit", map[string]interface{}{
		"name":    "Ada",
		"email":   "ada@x.com",
		"subject": "Hi",
		"message": "1234567890",
	}, "")

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Submission models.ContactSubmission `json:"submission"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Greater(t, resp.Submission.ID, uint(0))
	assert.Equal(t, models.ContactUnread, resp.Submission.Status)
	assert.Equal(t, "Ada", resp.Submission.Name)

	var count int64
	database.DB.Model(&models.ContactSubmission{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSubmitContact_NotifierFailureDoesNotFailRequest(t *testing.T) {
	SetupTestDB(t)
	useFakeMailer(t, true)
	r := setupRouter()

	w := performRequest(r, "POST", "/api/contact/submit", map[string]interface{}{
		"name":    "Grace",
		"email":   "grace@example.com",
		"subject": "Question",
		"message": "A long enough message body",
	}, "")

	assert.Equal(t, http.StatusCreated, w.Code)

	var count int64
	database.DB.Model(&models.ContactSubmission{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSubmitContact_InvalidPayloadListsEveryViolation(t *testing.T) {
	SetupTestDB(t)
	useFakeMailer(t, false)
	r := setupRouter()

	w := performRequest(r, "POST", "/api/contact/submit", map[string]interface{}{
		"name":    "A",
		"email":   "nope",
		"subject": "x",
		"message": "short",
	}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Details []map[string]string `json:"details"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)

	fields := map[string]bool{}
	for _, d := range resp.Details {
		fields[d["field"]] = true
	}
	assert.True(t, fields["name"])
	assert.True(t, fields["email"])
	assert.True(t, fields["subject"])
	assert.True(t, fields["message"])

	var count int64
	database.DB.Model(&models.ContactSubmission{}).Count(&count)
	assert.Equal(t, int64(0), count, "invalid payload must persist nothing")
}

func TestSubmitEarlyAccess_StartsPending(t *testing.T) {
	SetupTestDB(t)
	useFakeMailer(t, false)
	r := setupRouter()

	w := performRequest(r, "POST", "/api/early-access/submit", map[string]interface{}{
		"name":  "Lin",
		"email": "lin@example.com",
	}, "")

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Request models.EarlyAccessRequest `json:"request"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, models.EarlyAccessPending, resp.Request.Status)
}

func TestSubmitBooking_StartsPending(t *testing.T) {
	SetupTestDB(t)
	useFakeMailer(t, false)
	r := setupRouter()

	w := performRequest(r, "POST", "/api/bookings/submit", map[string]interface{}{
		"name":           "Noah Jones",
		"email":          "noah@example.com",
		"country":        "Ghana",
		"phone":          "+233201234567",
		"serviceType":    "Land Survey",
		"projectDetails": "Two acre plot near the river, need boundaries confirmed",
	}, "")

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Booking models.Booking `json:"booking"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, models.BookingPending, resp.Booking.Status)
	assert.Greater(t, resp.Booking.ID, uint(0))
}

func TestSubmitReview_RatingBounds(t *testing.T) {
	SetupTestDB(t)
	useFakeMailer(t, false)
	r := setupRouter()

	w := performRequest(r, "POST", "/api/reviews/submit", map[string]interface{}{
		"name":    "Mary Ann",
		"email":   "mary@example.com",
		"rating":  6,
		"message": "Great service, highly recommend",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(r, "POST", "/api/reviews/submit", map[string]interface{}{
		"name":    "Mary Ann",
		"email":   "mary@example.com",
		"rating":  5,
		"message": "Great service, highly recommend",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Review models.Review `json:"review"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, models.ReviewPending, resp.Review.Status)
}

func TestPublicReviews_ApprovedOnly(t *testing.T) {
	SetupTestDB(t)
	r := setupRouter()

	database.DB.Create(&models.Review{Name: "Shown", Email: "a@example.com", Rating: 5, Message: "Visible review text", Status: models.ReviewApproved})
	database.DB.Create(&models.Review{Name: "Hidden", Email: "b@example.com", Rating: 1, Message: "Pending review text", Status: models.ReviewPending})

	w := performRequest(r, "GET", "/api/reviews", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Reviews []models.Review `json:"reviews"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Len(t, resp.Reviews, 1)
	assert.Equal(t, "Shown", resp.Reviews[0].Name)
}

func TestSubscribeNewsletter_DuplicateConflicts(t *testing.T) {
	SetupTestDB(t)
	r := setupRouter()

	w := performRequest(r, "POST", "/api/newsletter/subscribe", map[string]string{"email": "fan@example.com"}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(r, "POST", "/api/newsletter/subscribe", map[string]string{"email": "fan@example.com"}, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	database.DB.Model(&models.NewsletterSubscriber{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
