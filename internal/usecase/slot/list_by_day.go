package slot

import (
	"context"
	"time"

	"github.com/punitsirse123/TempCall/internal/models"
	"github.com/punitsirse123/TempCall/internal/querycache"
	"github.com/punitsirse123/TempCall/internal/timezone"

	domain "github.com/punitsirse123/TempCall/internal/domain/booking"
)

type ListTimeSlotsByDay struct {
	repo  domain.Repository
	cache querycache.Cache
	loc   *time.Location
}

func NewListTimeSlotsByDay(
	repo domain.Repository,
	cache querycache.Cache,
	loc *time.Location,
) *ListTimeSlotsByDay {
	return &ListTimeSlotsByDay{
		repo:  repo,
		cache: cache,
		loc:   loc,
	}
}

// Execute lists every slot whose start falls on the given day, ordered
// ascending. An empty date keeps the admin panel's degenerate filter:
// nothing matches.
func (uc *ListTimeSlotsByDay) Execute(
	ctx context.Context,
	dateStr string,
) ([]models.TimeSlot, error) {

	if dateStr == "" {
		return []models.TimeSlot{}, nil
	}

	date, err := timezone.ParseDate(dateStr, uc.loc)
	if err != nil {
		return nil, domainErrInvalidDate
	}

	key := querycache.TimeSlotsDayKey(dateStr)

	var cached []models.TimeSlot
	if ok, err := uc.cache.Get(ctx, key, &cached); err == nil && ok {
		return cached, nil
	}

	start, end := timezone.DayBounds(date)
	to := end.Add(-time.Second) // inclusive 23:59:59 bound, as the panel filters
	slots, err := uc.repo.ListTimeSlots(ctx, domain.TimeSlotFilter{
		From: &start,
		To:   &to,
	})
	if err != nil {
		return nil, err
	}
	if slots == nil {
		slots = []models.TimeSlot{}
	}

	uc.cache.Set(ctx, key, slots, querycache.DefaultTTL)

	return slots, nil
}
