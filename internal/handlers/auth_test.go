package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/cirilocodes/noelles-group/internal/database"
	"github.com/cirilocodes/noelles-group/internal/models"
	"github.com/cirilocodes/noelles-group/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestRegister_AlwaysUnapproved(t *testing.T) {
	SetupTestDB(t)
	r := setupRouter()

	w := performRequest(r, "POST", "/api/auth/register", map[string]string{
		"username": "newadmin",
		"email":    "newadmin@example.com",
		"password": "long-enough-pw",
	}, "")

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		User models.PublicAdminUser `json:"user"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "newadmin", resp.User.Username)
	assert.False(t, resp.User.IsApproved)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)

	// The password hash must never be serialized
	assert.NotContains(t, w.Body.String(), "password")

	var stored models.AdminUser
	assert.NoError(t, database.DB.Where("username = ?", "newadmin").First(&stored).Error)
	assert.False(t, stored.IsApproved)
	assert.NotEqual(t, "long-enough-pw", stored.Password)
}

func TestRegister_InvalidInputListsEveryField(t *testing.T) {
	SetupTestDB(t)
	r := setupRouter()

	w := performRequest(r, "POST", "/api/auth/register", map[string]string{
		"username": "x",
		"email":    "not-an-email",
		"password": "short",
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
	assert.True(t, fields["username"])
	assert.True(t, fields["email"])
	assert.True(t, fields["password"])

	var count int64
	database.DB.Model(&models.AdminUser{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestLogin_PendingApprovalIsDistinguishable(t *testing.T) {
	SetupTestDB(t)
	r := setupRouter()

	w := performRequest(r, "POST", "/api/auth/register", map[string]string{
		"username": "waiting",
		"email":    "waiting@example.com",
		"password": "long-enough-pw",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	// Correct credentials, but not yet approved
	w = performRequest(r, "POST", "/api/auth/login", map[string]string{
		"username": "waiting",
		"password": "long-enough-pw",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "pending approval")

	// Wrong password reads differently
	w = performRequest(r, "POST", "/api/auth/login", map[string]string{
		"username": "waiting",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
	assert.NotContains(t, w.Body.String(), "pending approval")
}

func TestRegisterApproveLogin_TokenAccepted(t *testing.T) {
	SetupTestDB(t)
	r := setupRouter()
	createAdmin(t, "boss", models.RoleSuperAdmin, true)
	bossToken := loginAs(t, r, "boss")

	w := performRequest(r, "POST", "/api/auth/register", map[string]string{
		"username": "rookie",
		"email":    "rookie@example.com",
		"password": "sup3r-secret",
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	var reg struct {
		User models.PublicAdminUser `json:"user"`
	}
	json.Unmarshal(w.Body.Bytes(), &reg)

	w = performRequest(r, "PATCH", "/api/admin/users/"+itoa(reg.User.ID)+"/approve", nil, bossToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, "POST", "/api/auth/login", map[string]string{
		"username": "rookie",
		"password": "sup3r-secret",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NotEmpty(t, resp.Token)

	claims, err := utils.ValidateToken(resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, reg.User.ID, claims.UserID)
	assert.Equal(t, "rookie", claims.Username)

	// The fresh token clears the approved gate
	w = performRequest(r, "GET", "/api/admin/dashboard/stats", nil, resp.Token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin_StampsLastLogin(t *testing.T) {
	SetupTestDB(t)
	r := setupRouter()
	createAdmin(t, "tracker", models.RoleAdmin, true)

	loginAs(t, r, "tracker")

	var stored models.AdminUser
	database.DB.Where("username = ?", "tracker").First(&stored)
	assert.NotNil(t, stored.LastLoginAt)
}

func TestRegister_DuplicateUsernameConflicts(t *testing.T) {
	SetupTestDB(t)
	r := setupRouter()

	payload := map[string]string{
		"username": "taken",
		"email":    "first@example.com",
		"password": "long-enough-pw",
	}
	w := performRequest(r, "POST", "/api/auth/register", payload, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	payload["email"] = "second@example.com"
	w = performRequest(r, "POST", "/api/auth/register", payload, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Username already exists")

	var count int64
	database.DB.Model(&models.AdminUser{}).Where("username = ?", "taken").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegister_ConcurrentDuplicateUsername(t *testing.T) {
	SetupTestDB(t)
	r := setupRouter()

	const attempts = 2
	codes := make([]int, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := performRequest(r, "POST", "/api/auth/register", map[string]string{
				"username": "raced",
				"email":    "raced" + itoa(uint(i)) + "@example.com",
				"password": "long-enough-pw",
			}, "")
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	created := 0
	for _, code := range codes {
		if code == http.StatusCreated {
			created++
		} else {
			assert.Equal(t, http.StatusConflict, code)
		}
	}
	assert.Equal(t, 1, created, "exactly one concurrent registration may win")

	var count int64
	database.DB.Model(&models.AdminUser{}).Where("username = ?", "raced").Count(&count)
	assert.Equal(t, int64(1), count)
}
