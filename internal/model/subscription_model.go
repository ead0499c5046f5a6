package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Subscription struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name            string         `gorm:"type:varchar(255);not null"`
	Category        string         `gorm:"type:varchar(100);index"`
	Color           string         `gorm:"type:varchar(9)"`
	Icon            string         `gorm:"type:varchar(100)"`
	URL             string         `gorm:"type:text"`
	Notes           string         `gorm:"type:text"`
	Cost            float64        `gorm:"type:decimal(10,2);not null"`
	Currency        string         `gorm:"type:varchar(3);not null;default:'EUR'"`
	BillingCycle    string         `gorm:"type:varchar(20);not null"`
	CustomCycleDays int            `gorm:"default:0"`
	RenewalDate     datatypes.Date `gorm:"not null"`
	AutoRenew       bool           `gorm:"default:false"`
	Enabled         bool           `gorm:"default:true;index"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time
}

func (Subscription) TableName() string {
	return "subscriptions"
}
