package slot

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

type CreateTimeSlotInput struct {
	Date      string // "2006-01-02"
	StartTime string // "15:04"
	EndTime   string // "15:04"
	CreatedBy uuid.UUID
}

// ======================================================
// USE CASE
// ======================================================

type CreateTimeSlot struct {
	repo  domain.Repository
	audit audit.Sink
	cache querycache.Cache
	loc   *time.Location
}

func NewCreateTimeSlot(
	repo domain.Repository,
	audit audit.Sink,
	cache querycache.Cache,
	loc *time.Location,
) *CreateTimeSlot {
	return &CreateTimeSlot{
		repo:  repo,
		audit: audit,
		cache: cache,
		loc:   loc,
	}
}

func (uc *CreateTimeSlot) Execute(
	ctx context.Context,
	in CreateTimeSlotInput,
) (*models.TimeSlot, error) {

	if in.CreatedBy == uuid.Nil {
		return nil, httperr.ErrBusiness("not_authenticated")
	}

	if in.StartTime == "" || in.EndTime == "" {
		return nil, httperr.ErrBusiness("missing_time")
	}

	day, err := time.ParseInLocation("2006-01-02", in.Date, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	start, err := atTimeOfDay(day, in.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}
	end, err := atTimeOfDay(day, in.EndTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	if !start.Before(end) {
		return nil, httperr.ErrBusiness("invalid_time_range")
	}

	ts := &models.TimeSlot{
		ID:          uuid.New(),
		StartTime:   start,
		EndTime:     end,
		IsAvailable: true,
		CreatedBy:   in.CreatedBy,
	}

	if err := uc.repo.CreateTimeSlot(ctx, ts); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, querycache.TimeSlotKeysFor(in.Date)...)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CreatedBy,
		Action:   "slot_created",
		Entity:   "time_slot",
		EntityID: ts.ID.String(),
	})

	return ts, nil
}

// atTimeOfDay combines a calendar day with an "15:04" time of day in
// the day's location.
func atTimeOfDay(day time.Time, hm string) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	), nil
}
