package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/punitsirse123/TempCall/internal/httperr"
	"github.com/punitsirse123/TempCall/internal/httpresp"
	"github.com/punitsirse123/TempCall/internal/middleware"
	ucBooking "github.com/punitsirse123/TempCall/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucBooking.CreateAppointment
	updateStatusUC *ucBooking.UpdateAppointmentStatus
	listByDayUC    *ucBooking.ListAppointmentsByDay
}

func NewAppointmentHandler(
	createUC *ucBooking.CreateAppointment,
	updateStatusUC *ucBooking.UpdateAppointmentStatus,
	listByDayUC *ucBooking.ListAppointmentsByDay,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		updateStatusUC: updateStatusUC,
		listByDayUC:    listByDayUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	TimeSlotID  string `json:"time_slot_id" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required,email"`
	Notes       string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// PUBLIC — booking
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Slot, name and a valid email are required.")
		return
	}

	slotID, err := uuid.Parse(req.TimeSlotID)
	if err != nil {
		httperr.BadRequest(c, "invalid_slot_id", "Invalid slot id.")
		return
	}

	// Present only when the booker is signed in.
	var userID *uuid.UUID
	if v, ok := c.Get(middleware.ContextUserID); ok {
		id := v.(uuid.UUID)
		userID = &id
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateAppointmentInput{
		TimeSlotID:  slotID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		Notes:       req.Notes,
		UserID:      userID,
	})
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "missing_slot", "missing_name", "invalid_email":
			httperr.BadRequest(c, httperr.BusinessCode(err), "Invalid booking request.")
		case "slot_not_found":
			httperr.NotFound(c, "slot_not_found", "That time slot no longer exists.")
		default:
			httperr.Internal(c, "failed_to_book", err.Error())
		}
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// ADMIN
// ======================================================

func (h *AppointmentHandler) ListByDay(c *gin.Context) {
	rows, err := h.listByDayUC.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "missing_date":
			httperr.BadRequest(c, "missing_date", "Date is required.")
		case "invalid_date":
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
		default:
			httperr.Internal(c, "failed_to_list_appointments", err.Error())
		}
		return
	}

	httpresp.List(c, rows)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	ap, err := h.updateStatusUC.Execute(c.Request.Context(), id, req.Status, adminID)
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "invalid_status":
			httperr.BadRequest(c, "invalid_status", "Status must be confirmed or cancelled.")
		case "appointment_not_found":
			httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		default:
			httperr.Internal(c, "failed_to_update_status", err.Error())
		}
		return
	}

	c.JSON(200, ap)
}
