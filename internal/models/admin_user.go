package models

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// AdminUser is a dashboard account. Self-registration always creates it
// unapproved; an already-approved admin must flip IsApproved before the
// account can log in. Approval is one-way, there is no revocation path.
type AdminUser struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Username   string `gorm:"uniqueIndex;not null" json:"username"`
	Email      string `gorm:"uniqueIndex;not null" json:"email"`
	Password   string `gorm:"not null" json:"-"`
	Role       Role   `gorm:"type:text;default:'admin';not null" json:"role"`
	IsApproved bool   `gorm:"default:false;not null" json:"isApproved"`

	ApprovedAt  *time.Time `json:"approvedAt,omitempty"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

// PublicAdminUser is the serializable projection returned by auth and
// user-management endpoints. The password hash never leaves the model.
type PublicAdminUser struct {
	ID         uint       `json:"id"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	Role       Role       `json:"role"`
	IsApproved bool       `json:"isApproved"`
	CreatedAt  time.Time  `json:"createdAt"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
}

func (u *AdminUser) Public() PublicAdminUser {
	return PublicAdminUser{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       u.Role,
		IsApproved: u.IsApproved,
		CreatedAt:  u.CreatedAt,
		ApprovedAt: u.ApprovedAt,
	}
}
