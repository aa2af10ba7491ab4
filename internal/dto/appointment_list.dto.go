package dto

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentListRow is an appointment joined with its slot's window
// for the admin panel. Slot times are nil when the slot was deleted.
type AppointmentListRow struct {
	ID          uuid.UUID  `json:"id"`
	ClientName  string     `json:"client_name"`
	ClientEmail string     `json:"client_email"`
	Notes       string     `json:"notes"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	SlotStart   *time.Time `json:"slot_start"`
	SlotEnd     *time.Time `json:"slot_end"`
}
