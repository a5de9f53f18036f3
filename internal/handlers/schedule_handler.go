package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VitalisHealthTech/clinic-scheduler/internal/audit"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/models"
)

// ScheduleHandler maintains the weekly pattern: business hours and breaks.
type ScheduleHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache SlotInvalidator
}

func NewScheduleHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher, cache SlotInvalidator) *ScheduleHandler {
	return &ScheduleHandler{db: db, audit: auditDispatcher, cache: cache}
}

// --------- Requests ---------

type BusinessDayConfig struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	IsOpen    bool   `json:"is_open"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

type BusinessHoursUpdateRequest struct {
	Days []BusinessDayConfig `json:"days" binding:"required"`
}

type BreakConfig struct {
	DayOfWeek   int    `json:"day_of_week" binding:"min=0,max=6"`
	BreakStart  string `json:"break_start" binding:"required"`
	BreakEnd    string `json:"break_end" binding:"required"`
	Description string `json:"description"`
}

type BreaksUpdateRequest struct {
	Breaks []BreakConfig `json:"breaks" binding:"required"`
}

// --------- Business hours ---------

func (h *ScheduleHandler) GetBusinessHours(c *gin.Context) {
	var hours []models.BusinessHours
	if err := h.db.
		Order("day_of_week ASC").
		Find(&hours).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_business_hours"})
		return
	}

	c.JSON(http.StatusOK, hours)
}

// UpdateBusinessHours replaces the whole weekly configuration.
func (h *ScheduleHandler) UpdateBusinessHours(c *gin.Context) {
	var req BusinessHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	for _, d := range req.Days {
		if !d.IsOpen {
			continue
		}
		if !validTimeOfDay(d.OpenTime) || !validTimeOfDay(d.CloseTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time_format"})
			return
		}
		if d.OpenTime >= d.CloseTime {
			c.JSON(http.StatusBadRequest, gin.H{"error": "open_after_close"})
			return
		}
	}

	if err := h.db.Where("1 = 1").Delete(&models.BusinessHours{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_clear_existing_hours"})
		return
	}

	var toCreate []models.BusinessHours
	for _, d := range req.Days {
		toCreate = append(toCreate, models.BusinessHours{
			DayOfWeek: d.DayOfWeek,
			IsOpen:    d.IsOpen,
			OpenTime:  d.OpenTime,
			CloseTime: d.CloseTime,
		})
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_business_hours"})
			return
		}
	}

	h.invalidate(c, "business_hours_updated", "business_hours")

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --------- Breaks ---------

func (h *ScheduleHandler) GetBreaks(c *gin.Context) {
	var breaks []models.BusinessBreak
	if err := h.db.
		Order("day_of_week ASC, break_start ASC").
		Find(&breaks).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_breaks"})
		return
	}

	c.JSON(http.StatusOK, breaks)
}

// UpdateBreaks replaces every recurring break.
func (h *ScheduleHandler) UpdateBreaks(c *gin.Context) {
	var req BreaksUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	for _, b := range req.Breaks {
		if !validTimeOfDay(b.BreakStart) || !validTimeOfDay(b.BreakEnd) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time_format"})
			return
		}
		if b.BreakStart >= b.BreakEnd {
			c.JSON(http.StatusBadRequest, gin.H{"error": "break_start_after_end"})
			return
		}
	}

	if err := h.db.Where("1 = 1").Delete(&models.BusinessBreak{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_clear_existing_breaks"})
		return
	}

	var toCreate []models.BusinessBreak
	for _, b := range req.Breaks {
		toCreate = append(toCreate, models.BusinessBreak{
			DayOfWeek:   b.DayOfWeek,
			BreakStart:  b.BreakStart,
			BreakEnd:    b.BreakEnd,
			Description: b.Description,
		})
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_breaks"})
			return
		}
	}

	h.invalidate(c, "breaks_updated", "business_break")

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *ScheduleHandler) invalidate(c *gin.Context, action, entity string) {
	if h.cache != nil {
		h.cache.Invalidate(c.Request.Context())
	}
	h.audit.Dispatch(audit.Event{
		UserID: userIDFromCtx(c),
		Action: action,
		Entity: entity,
	})
}
