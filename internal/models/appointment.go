package models

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// Nullable so deleting a slot leaves its appointments readable.
	TimeSlotID *uuid.UUID `gorm:"type:uuid;index" json:"time_slot_id"`
	TimeSlot   *TimeSlot  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"time_slot,omitempty"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientEmail string `gorm:"size:100;not null" json:"client_email"`
	Notes       string `gorm:"size:255" json:"notes"`

	Status string `gorm:"size:20;not null;default:'pending'" json:"status"`

	UserID *uuid.UUID `gorm:"type:uuid" json:"user_id"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
