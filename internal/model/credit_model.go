package model

import (
	"time"

	"github.com/google/uuid"
)

type CreditPool struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Color           string    `gorm:"type:varchar(9)"`
	Icon            string    `gorm:"type:varchar(100)"`
	URL             string    `gorm:"type:text"`
	Notes           string    `gorm:"type:text"`
	TotalCredits    int       `gorm:"not null"`
	UsedCredits     int       `gorm:"not null;default:0"`
	ResetCycle      string    `gorm:"type:varchar(20);not null"`
	ResetDay        int       `gorm:"not null;default:1"`
	CustomResetDays int       `gorm:"default:0"`
	Enabled         bool      `gorm:"default:true;index"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time
}

func (CreditPool) TableName() string {
	return "credit_pools"
}
