package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Property represents a listing created by an agent.
type Property struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	Title        string          `json:"title" gorm:"size:255;not null"`
	Description  string          `json:"description" gorm:"type:text"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	Location     string          `json:"location" gorm:"size:255;not null;index"`
	PropertyType string          `json:"property_type,omitempty" gorm:"size:100"`
	ListedBy     uint            `json:"listed_by" gorm:"not null;index"`
	IsApproved   bool            `json:"is_approved" gorm:"default:true"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	// Relations
	Agent User `json:"-" gorm:"foreignKey:ListedBy"`
}
