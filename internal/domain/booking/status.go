package booking

import "github.com/punitsirse123/TempCall/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

// ParseTargetStatus accepts only the two statuses an admin can move an
// appointment to. The current status is deliberately not consulted: the
// pending-only restriction lives at the caller, which never offers the
// actions on non-pending appointments.
func ParseTargetStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusConfirmed, StatusCancelled:
		return Status(s), nil
	default:
		return "", httperr.ErrBusiness("invalid_status")
	}
}
