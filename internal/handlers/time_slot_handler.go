package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/punitsirse123/TempCall/internal/httperr"
	"github.com/punitsirse123/TempCall/internal/httpresp"
	"github.com/punitsirse123/TempCall/internal/middleware"
	ucSlot "github.com/punitsirse123/TempCall/internal/usecase/slot"
)

// ======================================================
// HANDLER
// ======================================================

type TimeSlotHandler struct {
	createUC        *ucSlot.CreateTimeSlot
	deleteUC        *ucSlot.DeleteTimeSlot
	listByDayUC     *ucSlot.ListTimeSlotsByDay
	listAvailableUC *ucSlot.ListAvailableTimeSlots
}

func NewTimeSlotHandler(
	createUC *ucSlot.CreateTimeSlot,
	deleteUC *ucSlot.DeleteTimeSlot,
	listByDayUC *ucSlot.ListTimeSlotsByDay,
	listAvailableUC *ucSlot.ListAvailableTimeSlots,
) *TimeSlotHandler {
	return &TimeSlotHandler{
		createUC:        createUC,
		deleteUC:        deleteUC,
		listByDayUC:     listByDayUC,
		listAvailableUC: listAvailableUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateTimeSlotRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// ======================================================
// PUBLIC
// ======================================================

// ListAvailable serves the booking page: available slots only,
// optionally narrowed to a day.
func (h *TimeSlotHandler) ListAvailable(c *gin.Context) {
	slots, err := h.listAvailableUC.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
		httperr.Internal(c, "failed_to_list_slots", err.Error())
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// ADMIN
// ======================================================

func (h *TimeSlotHandler) List(c *gin.Context) {
	slots, err := h.listByDayUC.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}
		httperr.Internal(c, "failed_to_list_slots", err.Error())
		return
	}

	httpresp.List(c, slots)
}

func (h *TimeSlotHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req CreateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date, start time and end time are required.")
		return
	}

	ts, err := h.createUC.Execute(c.Request.Context(), ucSlot.CreateTimeSlotInput{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		CreatedBy: adminID,
	})
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "not_authenticated":
			httperr.Unauthorized(c, "not_authenticated", "You must be signed in.")
		case "missing_time", "invalid_time", "invalid_date", "invalid_time_range":
			httperr.BadRequest(c, httperr.BusinessCode(err), "Invalid slot definition.")
		default:
			httperr.Internal(c, "failed_to_create_slot", err.Error())
		}
		return
	}

	c.JSON(201, ts)
}

func (h *TimeSlotHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid slot id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, adminID); err != nil {
		if httperr.IsBusiness(err, "slot_not_found") {
			httperr.NotFound(c, "slot_not_found", "Time slot not found.")
			return
		}
		httperr.Internal(c, "failed_to_delete_slot", err.Error())
		return
	}

	c.JSON(200, gin.H{"status": "deleted"})
}
