package slot

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/punitsirse123/TempCall/internal/audit"
	"github.com/punitsirse123/TempCall/internal/httperr"
	"github.com/punitsirse123/TempCall/internal/querycache"

	domain "github.com/punitsirse123/TempCall/internal/domain/booking"
)

type DeleteTimeSlot struct {
	repo  domain.Repository
	audit audit.Sink
	cache querycache.Cache
	loc   *time.Location
}

func NewDeleteTimeSlot(
	repo domain.Repository,
	audit audit.Sink,
	cache querycache.Cache,
	loc *time.Location,
) *DeleteTimeSlot {
	return &DeleteTimeSlot{
		repo:  repo,
		audit: audit,
		cache: cache,
		loc:   loc,
	}
}

// Execute removes the slot immediately. Appointments referencing it
// are not touched; their slot reference goes null.
func (uc *DeleteTimeSlot) Execute(
	ctx context.Context,
	id uuid.UUID,
	deletedBy uuid.UUID,
) error {

	ts, err := uc.repo.GetTimeSlot(ctx, id)
	if err != nil {
		return httperr.ErrBusiness("slot_not_found")
	}

	if err := uc.repo.DeleteTimeSlot(ctx, id); err != nil {
		return err
	}

	date := ts.StartTime.In(uc.loc).Format("2006-01-02")
	uc.cache.Invalidate(ctx, querycache.TimeSlotKeysFor(date)...)

	uc.audit.Dispatch(audit.Event{
		UserID:   &deletedBy,
		Action:   "slot_deleted",
		Entity:   "time_slot",
		EntityID: id.String(),
	})

	return nil
}
