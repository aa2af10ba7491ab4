package booking

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/punitsirse123/TempCall/internal/audit"
	"github.com/punitsirse123/TempCall/internal/httperr"
	"github.com/punitsirse123/TempCall/internal/models"
	"github.com/punitsirse123/TempCall/internal/querycache"

	domain "github.com/punitsirse123/TempCall/internal/domain/booking"
)

// ---------- fakes ----------

type fakeRepo struct {
	slots        map[uuid.UUID]models.TimeSlot
	appointments map[uuid.UUID]models.Appointment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		slots:        make(map[uuid.UUID]models.TimeSlot),
		appointments: make(map[uuid.UUID]models.Appointment),
	}
}

func (f *fakeRepo) addSlot(start, end time.Time, available bool) models.TimeSlot {
	s := models.TimeSlot{
		ID:          uuid.New(),
		StartTime:   start,
		EndTime:     end,
		IsAvailable: available,
		CreatedAt:   time.Now(),
	}
	f.slots[s.ID] = s
	return s
}

func (f *fakeRepo) CreateTimeSlot(_ context.Context, s *models.TimeSlot) error {
	f.slots[s.ID] = *s
	return nil
}

func (f *fakeRepo) GetTimeSlot(_ context.Context, id uuid.UUID) (*models.TimeSlot, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, httperr.ErrBusiness("not_found")
	}
	return &s, nil
}

func (f *fakeRepo) ListTimeSlots(_ context.Context, filter domain.TimeSlotFilter) ([]models.TimeSlot, error) {
	var out []models.TimeSlot
	for _, s := range f.slots {
		if filter.OnlyAvailable && !s.IsAvailable {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeRepo) DeleteTimeSlot(_ context.Context, id uuid.UUID) error {
	delete(f.slots, id)
	return nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if ap.CreatedAt.IsZero() {
		ap.CreatedAt = time.Now()
	}
	f.appointments[ap.ID] = *ap
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness("not_found")
	}
	if ap.TimeSlotID != nil {
		if s, ok := f.slots[*ap.TimeSlotID]; ok {
			ap.TimeSlot = &s
		}
	}
	return &ap, nil
}

func (f *fakeRepo) UpdateAppointmentStatus(_ context.Context, id uuid.UUID, status domain.Status) error {
	ap := f.appointments[id]
	ap.Status = string(status)
	f.appointments[id] = ap
	return nil
}

func (f *fakeRepo) ListAppointmentsCreatedBetween(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.CreatedAt.Before(start) || !ap.CreatedAt.Before(end) {
			continue
		}
		if ap.TimeSlotID != nil {
			if s, ok := f.slots[*ap.TimeSlotID]; ok {
				ap.TimeSlot = &s
			}
		}
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type nopSink struct{}

func (nopSink) Dispatch(audit.Event) {}

// ---------- tests ----------

func TestCreateAppointment(t *testing.T) {
	repo := newFakeRepo()
	cache := querycache.NewMemoryCache()
	ctx := context.Background()

	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	slot := repo.addSlot(day.Add(9*time.Hour), day.Add(9*time.Hour+20*time.Minute), true)

	uc := NewCreateAppointment(repo, nopSink{}, cache, time.UTC)

	ap, err := uc.Execute(ctx, CreateAppointmentInput{
		TimeSlotID:  slot.ID,
		ClientName:  "Jane Doe",
		ClientEmail: "jane@example.com",
		Notes:       "ad strategy",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if ap.Status != string(domain.StatusPending) {
		t.Fatalf("new appointments start pending, got %s", ap.Status)
	}
	if ap.TimeSlotID == nil || *ap.TimeSlotID != slot.ID {
		t.Fatal("appointment should reference the selected slot")
	}
	if ap.UserID != nil {
		t.Fatal("anonymous booking should carry no user id")
	}

	// Booking never flips the slot's availability flag.
	stored := repo.slots[slot.ID]
	if !stored.IsAvailable {
		t.Fatal("slot availability must be left unchanged by a booking")
	}
}

func TestCreateAppointmentRecordsSignedInUser(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	slot := repo.addSlot(day.Add(9*time.Hour), day.Add(9*time.Hour+20*time.Minute), true)

	uc := NewCreateAppointment(repo, nopSink{}, querycache.NewMemoryCache(), time.UTC)

	userID := uuid.New()
	ap, err := uc.Execute(ctx, CreateAppointmentInput{
		TimeSlotID:  slot.ID,
		ClientName:  "Jane Doe",
		ClientEmail: "jane@example.com",
		UserID:      &userID,
	})
	if err != nil {
		t.Fatal(err)
	}
	if ap.UserID == nil || *ap.UserID != userID {
		t.Fatal("signed-in booker's id should be recorded")
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	slot := repo.addSlot(day.Add(9*time.Hour), day.Add(9*time.Hour+20*time.Minute), true)

	uc := NewCreateAppointment(repo, nopSink{}, querycache.NewMemoryCache(), time.UTC)

	cases := []struct {
		name string
		in   CreateAppointmentInput
		code string
	}{
		{"no slot", CreateAppointmentInput{ClientName: "Jane", ClientEmail: "jane@example.com"}, "missing_slot"},
		{"no name", CreateAppointmentInput{TimeSlotID: slot.ID, ClientEmail: "jane@example.com"}, "missing_name"},
		{"bad email", CreateAppointmentInput{TimeSlotID: slot.ID, ClientName: "Jane", ClientEmail: "nope"}, "invalid_email"},
		{"unknown slot", CreateAppointmentInput{TimeSlotID: uuid.New(), ClientName: "Jane", ClientEmail: "jane@example.com"}, "slot_not_found"},
	}

	for _, tc := range cases {
		if _, err := uc.Execute(ctx, tc.in); !httperr.IsBusiness(err, tc.code) {
			t.Errorf("%s: expected %s, got %v", tc.name, tc.code, err)
		}
	}
}

func TestUpdateAppointmentStatus(t *testing.T) {
	repo := newFakeRepo()
	cache := querycache.NewMemoryCache()
	ctx := context.Background()
	adminID := uuid.New()

	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	slot := repo.addSlot(day.Add(9*time.Hour), day.Add(9*time.Hour+20*time.Minute), true)

	createUC := NewCreateAppointment(repo, nopSink{}, cache, time.UTC)
	updateUC := NewUpdateAppointmentStatus(repo, nopSink{}, cache, time.UTC)

	ap, err := createUC.Execute(ctx, CreateAppointmentInput{
		TimeSlotID: slot.ID, ClientName: "Jane", ClientEmail: "jane@example.com",
	})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := updateUC.Execute(ctx, ap.ID, "confirmed", adminID)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if updated.Status != string(domain.StatusConfirmed) {
		t.Fatalf("expected confirmed, got %s", updated.Status)
	}

	fetched, err := repo.GetAppointment(ctx, ap.ID)
	if err != nil {
		t.Fatal(err)
	}
	if fetched.Status != "confirmed" {
		t.Fatalf("status not persisted, got %s", fetched.Status)
	}

	if _, err := updateUC.Execute(ctx, ap.ID, "completed", adminID); !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("only confirmed/cancelled are reachable, got %v", err)
	}
	if _, err := updateUC.Execute(ctx, uuid.New(), "cancelled", adminID); !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("unknown appointment should 404, got %v", err)
	}
}

func TestListAppointmentsByDay(t *testing.T) {
	repo := newFakeRepo()
	cache := querycache.NewMemoryCache()
	ctx := context.Background()

	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	slot := repo.addSlot(day.Add(9*time.Hour), day.Add(9*time.Hour+20*time.Minute), true)

	// Listing keys on the day the booking was created, not the slot's
	// day: one appointment from yesterday, one from today.
	old := models.Appointment{
		ID: uuid.New(), TimeSlotID: &slot.ID,
		ClientName: "Early Bird", ClientEmail: "early@example.com",
		Status: "pending", CreatedAt: time.Date(2024, 5, 31, 15, 0, 0, 0, time.UTC),
	}
	repo.appointments[old.ID] = old

	today := models.Appointment{
		ID: uuid.New(), TimeSlotID: &slot.ID,
		ClientName: "Jane Doe", ClientEmail: "jane@example.com",
		Status: "pending", CreatedAt: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	repo.appointments[today.ID] = today

	listUC := NewListAppointmentsByDay(repo, cache, time.UTC)

	rows, err := listUC.Execute(ctx, "2024-06-01")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected only the booking created on 2024-06-01, got %d", len(rows))
	}
	row := rows[0]
	if row.ID != today.ID {
		t.Fatal("wrong appointment listed")
	}
	if row.SlotStart == nil || !row.SlotStart.Equal(slot.StartTime) {
		t.Fatal("row should join the slot's start time")
	}
	if row.SlotEnd == nil || !row.SlotEnd.Equal(slot.EndTime) {
		t.Fatal("row should join the slot's end time")
	}

	if _, err := listUC.Execute(ctx, ""); !httperr.IsBusiness(err, "missing_date") {
		t.Fatalf("missing date should fail, got %v", err)
	}
	if _, err := listUC.Execute(ctx, "June 1"); !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("bad date should fail, got %v", err)
	}
}

func TestListAppointmentsSurvivesSlotDeletion(t *testing.T) {
	repo := newFakeRepo()
	cache := querycache.NewMemoryCache()
	ctx := context.Background()

	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	slot := repo.addSlot(day.Add(9*time.Hour), day.Add(9*time.Hour+20*time.Minute), true)

	ap := models.Appointment{
		ID: uuid.New(), TimeSlotID: &slot.ID,
		ClientName: "Jane Doe", ClientEmail: "jane@example.com",
		Status: "pending", CreatedAt: day.Add(10 * time.Hour),
	}
	repo.appointments[ap.ID] = ap

	repo.DeleteTimeSlot(ctx, slot.ID)

	rows, err := NewListAppointmentsByDay(repo, cache, time.UTC).Execute(ctx, "2024-06-01")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("appointment should still list, got %d rows", len(rows))
	}
	if rows[0].SlotStart != nil || rows[0].SlotEnd != nil {
		t.Fatal("deleted slot should leave nil slot times")
	}
}
