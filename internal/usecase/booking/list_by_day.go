package booking

import (
	"context"
	"time"

	"github.com/punitsirse123/TempCall/internal/dto"
	"github.com/punitsirse123/TempCall/internal/httperr"
	"github.com/punitsirse123/TempCall/internal/querycache"
	"github.com/punitsirse123/TempCall/internal/timezone"

	domain "github.com/punitsirse123/TempCall/internal/domain/booking"
)

type ListAppointmentsByDay struct {
	repo  domain.Repository
	cache querycache.Cache
	loc   *time.Location
}

func NewListAppointmentsByDay(
	repo domain.Repository,
	cache querycache.Cache,
	loc *time.Location,
) *ListAppointmentsByDay {
	return &ListAppointmentsByDay{
		repo:  repo,
		cache: cache,
		loc:   loc,
	}
}

// Execute lists appointments created on the given day, oldest first,
// each joined with its slot's window. The filter runs on created_at,
// matching the admin panel: a booking made yesterday for a slot today
// shows under yesterday.
func (uc *ListAppointmentsByDay) Execute(
	ctx context.Context,
	dateStr string,
) ([]dto.AppointmentListRow, error) {

	if dateStr == "" {
		return nil, httperr.ErrBusiness("missing_date")
	}

	date, err := timezone.ParseDate(dateStr, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	key := querycache.AppointmentsDayKey(dateStr)

	var cached []dto.AppointmentListRow
	if ok, err := uc.cache.Get(ctx, key, &cached); err == nil && ok {
		return cached, nil
	}

	start, end := timezone.DayBounds(date)
	aps, err := uc.repo.ListAppointmentsCreatedBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.AppointmentListRow, 0, len(aps))
	for _, ap := range aps {
		row := dto.AppointmentListRow{
			ID:          ap.ID,
			ClientName:  ap.ClientName,
			ClientEmail: ap.ClientEmail,
			Notes:       ap.Notes,
			Status:      ap.Status,
			CreatedAt:   ap.CreatedAt,
		}
		if ap.TimeSlot != nil {
			row.SlotStart = &ap.TimeSlot.StartTime
			row.SlotEnd = &ap.TimeSlot.EndTime
		}
		rows = append(rows, row)
	}

	uc.cache.Set(ctx, key, rows, querycache.DefaultTTL)

	return rows, nil
}
