package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/VitalisHealthTech/clinic-scheduler/internal/httperr"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/httpresp"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/logger"
	ucBooking "github.com/VitalisHealthTech/clinic-scheduler/internal/usecase/booking"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/validators"
)

type AppointmentHandler struct {
	createUC   *ucBooking.CreateAppointment
	cancelUC   *ucBooking.CancelAppointment
	completeUC *ucBooking.CompleteAppointment
	listUC     *ucBooking.ListAppointmentsByDate
	loc        *time.Location
}

func NewAppointmentHandler(
	createUC *ucBooking.CreateAppointment,
	cancelUC *ucBooking.CancelAppointment,
	completeUC *ucBooking.CompleteAppointment,
	listUC *ucBooking.ListAppointmentsByDate,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:   createUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
		listUC:     listUC,
		loc:        loc,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	ClientName     string `json:"client_name" binding:"required"`
	ClientPhone    string `json:"client_phone" binding:"required"`
	ClientEmail    string `json:"client_email"`
	Date           string `json:"date" binding:"required"` // YYYY-MM-DD
	Time           string `json:"time" binding:"required"` // HH:MM
	Notes          string `json:"notes"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.ClientEmail != "" && !validators.IsValidEmail(req.ClientEmail) {
		httperr.BadRequest(c, "invalid_email", "Client email is malformed.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateAppointmentInput{
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		ClientName:     req.ClientName,
		ClientPhone:    req.ClientPhone,
		ClientEmail:    req.ClientEmail,
		Date:           req.Date,
		Time:           req.Time,
		Notes:          req.Notes,
	})
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Query parameter date is required.")
		return
	}

	date, err := parseDate(dateStr, h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	var professionalID *uint
	if profStr := c.Query("professional_id"); profStr != "" {
		id, err := strconv.ParseUint(profStr, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_professional_id", "professional_id must be an integer.")
			return
		}
		pid := uint(id)
		professionalID = &pid
	}

	appointments, err := h.listUC.Execute(c.Request.Context(), professionalID, date)
	if err != nil {
		logger.L().Error("appointment listing failed", zap.Error(err))
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments.")
		return
	}

	httpresp.List(c, appointments)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Appointment id must be an integer.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), uint(id), userIDFromCtx(c))
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Appointment id must be an integer.")
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), uint(id), userIDFromCtx(c))
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) writeBookingError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		logger.L().Error("booking operation failed", zap.Error(err))
		httperr.Internal(c, "booking_failed", "Unexpected error.")
		return
	}

	switch code {
	case "time_conflict", "slot_unavailable":
		httperr.Conflict(c, code, "The requested time is not available.")
	case "invalid_state":
		httperr.Conflict(c, code, "The appointment is not in a cancellable/completable state.")
	default:
		httperr.BadRequest(c, code, "Invalid booking request.")
	}
}
