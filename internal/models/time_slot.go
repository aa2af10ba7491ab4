package models

import (
	"time"

	"github.com/google/uuid"
)

type TimeSlot struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	StartTime time.Time `gorm:"not null;index" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	IsAvailable bool `gorm:"not null;default:true" json:"is_available"`

	CreatedBy uuid.UUID `gorm:"type:uuid" json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
