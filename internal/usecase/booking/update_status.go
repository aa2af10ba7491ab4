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

type UpdateAppointmentStatus struct {
	repo  domain.Repository
	audit audit.Sink
	cache querycache.Cache
	loc   *time.Location
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	audit audit.Sink,
	cache querycache.Cache,
	loc *time.Location,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:  repo,
		audit: audit,
		cache: cache,
		loc:   loc,
	}
}

// Execute overwrites the appointment's status with one of the two
// admin-reachable values. The write itself does not demand the current
// status be pending; the panel only offers the actions there.
func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	id uuid.UUID,
	newStatus string,
	actorID uuid.UUID,
) (*models.Appointment, error) {

	status, err := domain.ParseTargetStatus(newStatus)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.UpdateAppointmentStatus(ctx, id, status); err != nil {
		return nil, err
	}
	ap.Status = string(status)

	date := ap.CreatedAt.In(uc.loc).Format("2006-01-02")
	uc.cache.Invalidate(ctx, querycache.AppointmentsDayKey(date))

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_" + string(status),
		Entity:   "appointment",
		EntityID: ap.ID.String(),
	})

	return ap, nil
}
