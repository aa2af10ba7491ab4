package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/punitsirse123/TempCall/internal/models"
)

// TimeSlotFilter narrows slot listings. Nil bounds mean unbounded;
// results are always ordered by start_time ascending.
type TimeSlotFilter struct {
	From          *time.Time
	To            *time.Time
	OnlyAvailable bool
}

type Repository interface {
	// -------- Time slots --------
	CreateTimeSlot(
		ctx context.Context,
		slot *models.TimeSlot,
	) error

	GetTimeSlot(
		ctx context.Context,
		id uuid.UUID,
	) (*models.TimeSlot, error)

	ListTimeSlots(
		ctx context.Context,
		filter TimeSlotFilter,
	) ([]models.TimeSlot, error)

	DeleteTimeSlot(
		ctx context.Context,
		id uuid.UUID,
	) error

	// -------- Appointments --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	UpdateAppointmentStatus(
		ctx context.Context,
		id uuid.UUID,
		status Status,
	) error

	ListAppointmentsCreatedBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
