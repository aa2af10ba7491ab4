package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/punitsirse123/TempCall/internal/audit"
	"github.com/punitsirse123/TempCall/internal/httperr"
	"github.com/punitsirse123/TempCall/internal/models"
	"github.com/punitsirse123/TempCall/internal/querycache"

	domain "github.com/punitsirse123/TempCall/internal/domain/booking"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	TimeSlotID  uuid.UUID
	ClientName  string
	ClientEmail string
	Notes       string

	// UserID is set when the booker happens to be signed in.
	UserID *uuid.UUID
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit audit.Sink
	cache querycache.Cache
	loc   *time.Location
	now   func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	audit audit.Sink,
	cache querycache.Cache,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
		loc:   loc,
		now:   time.Now,
	}
}

// Execute books the slot. The slot's availability flag is neither
// re-checked nor flipped here: availability filtering happens at
// listing time, and a slot may collect more than one pending request.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if in.TimeSlotID == uuid.Nil {
		return nil, httperr.ErrBusiness("missing_slot")
	}

	details := domain.Details{
		Name:  in.ClientName,
		Email: in.ClientEmail,
		Notes: in.Notes,
	}
	if err := details.Validate(); err != nil {
		return nil, err
	}

	ts, err := uc.repo.GetTimeSlot(ctx, in.TimeSlotID)
	if err != nil {
		return nil, httperr.ErrBusiness("slot_not_found")
	}

	ap := &models.Appointment{
		ID:          uuid.New(),
		TimeSlotID:  &ts.ID,
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		Notes:       in.Notes,
		Status:      string(domain.InitialStatus()),
		UserID:      in.UserID,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// The admin list is keyed by creation day.
	today := uc.now().In(uc.loc).Format("2006-01-02")
	uc.cache.Invalidate(ctx, querycache.AppointmentsDayKey(today))

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID.String(),
	})

	return ap, nil
}
