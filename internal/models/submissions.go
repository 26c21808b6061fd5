package models

import "time"

// Status enums for publicly submitted records. Each entity owns a small
// closed set; new records always start at the set's first value. Status
// changes are admin-only and may overwrite any value with any other
// member of the set.

type EarlyAccessStatus string

const (
	EarlyAccessPending  EarlyAccessStatus = "pending"
	EarlyAccessApproved EarlyAccessStatus = "approved"
	EarlyAccessRejected EarlyAccessStatus = "rejected"
)

type ContactStatus string

const (
	ContactUnread    ContactStatus = "unread"
	ContactRead      ContactStatus = "read"
	ContactResponded ContactStatus = "responded"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

func ValidEarlyAccessStatus(s string) bool {
	switch EarlyAccessStatus(s) {
	case EarlyAccessPending, EarlyAccessApproved, EarlyAccessRejected:
		return true
	}
	return false
}

func ValidContactStatus(s string) bool {
	switch ContactStatus(s) {
	case ContactUnread, ContactRead, ContactResponded:
		return true
	}
	return false
}

func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

func ValidReviewStatus(s string) bool {
	switch ReviewStatus(s) {
	case ReviewPending, ReviewApproved, ReviewRejected:
		return true
	}
	return false
}

type EarlyAccessRequest struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	Name      string            `gorm:"not null" json:"name"`
	Email     string            `gorm:"not null" json:"email"`
	Company   string            `json:"company,omitempty"`
	Phone     string            `json:"phone,omitempty"`
	Message   string            `gorm:"type:text" json:"message,omitempty"`
	Status    EarlyAccessStatus `gorm:"type:text;default:'pending';not null" json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}

func (EarlyAccessRequest) TableName() string {
	return "early_access_requests"
}

type ContactSubmission struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	Name      string        `gorm:"not null" json:"name"`
	Email     string        `gorm:"not null" json:"email"`
	Company   string        `json:"company,omitempty"`
	Phone     string        `json:"phone,omitempty"`
	Subject   string        `gorm:"not null" json:"subject"`
	Message   string        `gorm:"type:text;not null" json:"message"`
	Status    ContactStatus `gorm:"type:text;default:'unread';not null" json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}

type Booking struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Name           string        `gorm:"not null" json:"name"`
	Email          string        `gorm:"not null" json:"email"`
	Country        string        `gorm:"not null" json:"country"`
	Phone          string        `gorm:"not null" json:"phone"`
	ServiceType    string        `gorm:"not null" json:"serviceType"`
	ProjectDetails string        `gorm:"type:text;not null" json:"projectDetails"`
	Status         BookingStatus `gorm:"type:text;default:'pending';not null" json:"status"`
	CreatedAt      time.Time     `json:"createdAt"`
}

func (Booking) TableName() string {
	return "bookings"
}

// Review starts pending; only approved reviews are shown on the site.
type Review struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"not null" json:"name"`
	Email       string       `gorm:"not null" json:"email"`
	Rating      int          `gorm:"not null" json:"rating"`
	Message     string       `gorm:"type:text;not null" json:"message"`
	ServiceUsed string       `json:"serviceUsed,omitempty"`
	Status      ReviewStatus `gorm:"type:text;default:'pending';not null" json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
}

func (Review) TableName() string {
	return "reviews"
}

// NewsletterSubscriber has no lifecycle status; the unique index on email
// is the authoritative duplicate guard.
type NewsletterSubscriber struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func (NewsletterSubscriber) TableName() string {
	return "newsletter_subscribers"
}
