package model

import "time"

// ApplicationStatus represents the status of a rental/purchase application.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Valid reports whether the status is a known decision status.
// Pending is the initial state and is never a valid transition target.
func (s ApplicationStatus) Valid() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected
}

// Terminal reports whether no further transition is allowed from this status.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected
}

// Application represents a buyer's application for a property.
type Application struct {
	ID         uint              `json:"id" gorm:"primaryKey"`
	UserID     uint              `json:"user_id" gorm:"not null;index"`
	PropertyID uint              `json:"property_id" gorm:"not null;index"`
	Status     ApplicationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`

	// Relations
	Applicant User     `json:"-" gorm:"foreignKey:UserID"`
	Property  Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
}
