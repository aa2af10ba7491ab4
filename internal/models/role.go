package models

import (
	"time"

	"github.com/google/uuid"
)

const RoleAdmin = "admin"

type Role struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:50;uniqueIndex;not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`
}

type UserRole struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	RoleID uuid.UUID `gorm:"type:uuid;not null" json:"role_id"`
	Role   Role      `json:"role"`

	CreatedAt time.Time `json:"created_at"`
}
