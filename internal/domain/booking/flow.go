package booking

import (
	"time"

	"github.com/punitsirse123/TempCall/internal/httperr"
	"github.com/punitsirse123/TempCall/internal/models"
)

// ===============================
// Booking Flow
// ===============================
//
// The public booking page walks a fixed sequence: pick a date, pick an
// available slot on that date, fill in contact details, submit. Flow
// owns that state explicitly; rendering only ever sees snapshots and
// mutates through the methods below.

type FlowState string

const (
	StateSelectingDate  FlowState = "selecting_date"
	StateSelectingSlot  FlowState = "selecting_slot"
	StateFillingDetails FlowState = "filling_details"
	StateSubmitting     FlowState = "submitting"
	StateBooked         FlowState = "booked"
	StateFailed         FlowState = "failed"
)

// BookingWindowMonths bounds how far ahead a date may be picked.
const BookingWindowMonths = 2

type Flow struct {
	state FlowState
	now   time.Time

	selectedDate time.Time
	selectedSlot *models.TimeSlot
	details      Details

	lastErr error
}

// NewFlow starts a fresh booking at date selection. now anchors the
// allowed date window (today through two months ahead).
func NewFlow(now time.Time) *Flow {
	return &Flow{
		state: StateSelectingDate,
		now:   now,
	}
}

func (f *Flow) State() FlowState { return f.state }

func (f *Flow) SelectedDate() time.Time { return f.selectedDate }

func (f *Flow) SelectedSlot() *models.TimeSlot { return f.selectedSlot }

func (f *Flow) Details() Details { return f.details }

func (f *Flow) LastError() error { return f.lastErr }

// SelectDate picks the day to book on. Re-selecting is allowed at any
// point before submission and drops a previously chosen slot.
func (f *Flow) SelectDate(date time.Time) error {
	if f.state == StateSubmitting {
		return httperr.ErrBusiness("submission_in_progress")
	}

	today, _ := dayBounds(f.now)
	if date.Before(today) {
		return httperr.ErrBusiness("date_in_past")
	}
	if date.After(f.now.AddDate(0, BookingWindowMonths, 0)) {
		return httperr.ErrBusiness("date_too_far")
	}

	f.selectedDate = date
	f.selectedSlot = nil
	f.state = StateSelectingSlot
	return nil
}

// SelectSlot picks one slot from the available list for the selected
// date and enables the details form.
func (f *Flow) SelectSlot(slot models.TimeSlot) error {
	if f.state != StateSelectingSlot && f.state != StateFillingDetails {
		return httperr.ErrBusiness("no_date_selected")
	}
	if !slot.IsAvailable {
		return httperr.ErrBusiness("slot_unavailable")
	}

	dayStart, dayEnd := dayBounds(f.selectedDate)
	if slot.StartTime.Before(dayStart) || !slot.StartTime.Before(dayEnd) {
		return httperr.ErrBusiness("slot_outside_date")
	}

	f.selectedSlot = &slot
	f.state = StateFillingDetails
	return nil
}

// FillDetails validates and stores the contact form.
func (f *Flow) FillDetails(d Details) error {
	if f.selectedSlot == nil {
		return httperr.ErrBusiness("no_slot_selected")
	}
	if err := d.Validate(); err != nil {
		return err
	}

	f.details = d
	return nil
}

// Submit runs the booking request. On success the form and selection
// are cleared; on failure both are retained so the user can retry.
func (f *Flow) Submit(book func(slot models.TimeSlot, d Details) error) error {
	if f.state != StateFillingDetails {
		return httperr.ErrBusiness("no_slot_selected")
	}
	if err := f.details.Validate(); err != nil {
		return err
	}

	f.state = StateSubmitting

	if err := book(*f.selectedSlot, f.details); err != nil {
		f.state = StateFailed
		f.lastErr = err
		return err
	}

	f.state = StateBooked
	f.selectedSlot = nil
	f.details = Details{}
	f.lastErr = nil
	return nil
}

// Retry re-opens the form after a failed submission, keeping its state.
func (f *Flow) Retry() error {
	if f.state != StateFailed {
		return httperr.ErrBusiness("nothing_to_retry")
	}
	f.state = StateFillingDetails
	return nil
}

// Restart begins a new booking; terminal states are never persisted.
func (f *Flow) Restart(now time.Time) {
	*f = *NewFlow(now)
}

func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24 * time.Hour)
}
