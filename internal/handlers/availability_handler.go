package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/VitalisHealthTech/clinic-scheduler/internal/httperr"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/httpresp"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/logger"
	ucAvailability "github.com/VitalisHealthTech/clinic-scheduler/internal/usecase/availability"
)

type AvailabilityHandler struct {
	uc              *ucAvailability.GetAvailability
	loc             *time.Location
	defaultDuration int
}

func NewAvailabilityHandler(
	uc *ucAvailability.GetAvailability,
	loc *time.Location,
	defaultDuration int,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		uc:              uc,
		loc:             loc,
		defaultDuration: defaultDuration,
	}
}

// Get answers GET /api/availability?date=YYYY-MM-DD&duration=N&professional_id=K.
func (h *AvailabilityHandler) Get(c *gin.Context) {
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

	duration := h.defaultDuration
	if durStr := c.Query("duration"); durStr != "" {
		duration, err = strconv.Atoi(durStr)
		if err != nil || duration <= 0 {
			httperr.BadRequest(c, "invalid_duration", "Duration must be a positive integer of minutes.")
			return
		}
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

	result, err := h.uc.Execute(c.Request.Context(), ucAvailability.Input{
		Date:           date,
		DurationMin:    duration,
		ProfessionalID: professionalID,
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Invalid availability request.")
			return
		}
		logger.L().Error("availability computation failed",
			zap.String("date", dateStr),
			zap.Error(err),
		)
		httperr.Internal(c, "availability_read_failed", "Failed to read schedule data.")
		return
	}

	httpresp.OK(c, result)
}
