package slot

import (
	"context"
	"time"

	"github.com/punitsirse123/TempCall/internal/httperr"
	"github.com/punitsirse123/TempCall/internal/models"
	"github.com/punitsirse123/TempCall/internal/querycache"
	"github.com/punitsirse123/TempCall/internal/timezone"

	domain "github.com/punitsirse123/TempCall/internal/domain/booking"
)

var domainErrInvalidDate = httperr.ErrBusiness("invalid_date")

type ListAvailableTimeSlots struct {
	repo  domain.Repository
	cache querycache.Cache
	loc   *time.Location
}

func NewListAvailableTimeSlots(
	repo domain.Repository,
	cache querycache.Cache,
	loc *time.Location,
) *ListAvailableTimeSlots {
	return &ListAvailableTimeSlots{
		repo:  repo,
		cache: cache,
		loc:   loc,
	}
}

// Execute is the public listing: available slots only, ordered by
// start time. Without a date, no date filter is applied at all — the
// booking page only narrows once the visitor picks a day.
func (uc *ListAvailableTimeSlots) Execute(
	ctx context.Context,
	dateStr string,
) ([]models.TimeSlot, error) {

	filter := domain.TimeSlotFilter{OnlyAvailable: true}

	if dateStr != "" {
		date, err := timezone.ParseDate(dateStr, uc.loc)
		if err != nil {
			return nil, domainErrInvalidDate
		}
		start, end := timezone.DayBounds(date)
		to := end.Add(-time.Second)
		filter.From = &start
		filter.To = &to
	}

	key := querycache.AvailableSlotsKey(dateStr)

	var cached []models.TimeSlot
	if ok, err := uc.cache.Get(ctx, key, &cached); err == nil && ok {
		return cached, nil
	}

	slots, err := uc.repo.ListTimeSlots(ctx, filter)
	if err != nil {
		return nil, err
	}
	if slots == nil {
		slots = []models.TimeSlot{}
	}

	uc.cache.Set(ctx, key, slots, querycache.DefaultTTL)

	return slots, nil
}
