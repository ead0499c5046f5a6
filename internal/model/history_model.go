package model

import (
	"time"

	"github.com/google/uuid"
)

type RenewalEvent struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	SubscriptionId uuid.UUID `gorm:"type:uuid;not null;index"`
	Date           time.Time `gorm:"not null;index"`
	Cost           float64   `gorm:"type:decimal(10,2);not null"`
	Currency       string    `gorm:"type:varchar(3);not null"`
	Note           string    `gorm:"type:text"`
	AutoRenewed    bool      `gorm:"default:false"`
}

func (RenewalEvent) TableName() string {
	return "renewal_events"
}

type CreditChange struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PoolId       uuid.UUID `gorm:"type:uuid;not null;index"`
	PreviousUsed int       `gorm:"not null"`
	NewUsed      int       `gorm:"not null"`
	Change       int       `gorm:"not null"`
	Date         time.Time `gorm:"not null;index"`
	Note         string    `gorm:"type:text"`
}

func (CreditChange) TableName() string {
	return "credit_changes"
}
