package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VitalisHealthTech/clinic-scheduler/internal/audit"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/models"
)

type HolidayHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache SlotInvalidator
	loc   *time.Location
}

func NewHolidayHandler(
	db *gorm.DB,
	auditDispatcher *audit.Dispatcher,
	cache SlotInvalidator,
	loc *time.Location,
) *HolidayHandler {
	return &HolidayHandler{db: db, audit: auditDispatcher, cache: cache, loc: loc}
}

type CreateHolidayRequest struct {
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Name        string `json:"name" binding:"required"`
	IsRecurring bool   `json:"is_recurring"`
}

func (h *HolidayHandler) List(c *gin.Context) {
	var holidays []models.BusinessHoliday
	if err := h.db.
		Order("date ASC").
		Find(&holidays).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_holidays"})
		return
	}

	c.JSON(http.StatusOK, holidays)
}

func (h *HolidayHandler) Create(c *gin.Context) {
	var req CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	date, err := parseDate(req.Date, h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
		return
	}

	holiday := models.BusinessHoliday{
		Date:        date,
		Name:        req.Name,
		IsRecurring: req.IsRecurring,
	}

	if err := h.db.Create(&holiday).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_holiday"})
		return
	}

	if h.cache != nil {
		h.cache.Invalidate(c.Request.Context())
	}
	h.audit.Dispatch(audit.Event{
		UserID:   userIDFromCtx(c),
		Action:   "holiday_created",
		Entity:   "business_holiday",
		EntityID: &holiday.ID,
	})

	c.JSON(http.StatusCreated, holiday)
}

func (h *HolidayHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var holiday models.BusinessHoliday
	if err := h.db.First(&holiday, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "holiday_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_holiday"})
		return
	}

	if err := h.db.Delete(&holiday).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_holiday"})
		return
	}

	if h.cache != nil {
		h.cache.Invalidate(c.Request.Context())
	}
	h.audit.Dispatch(audit.Event{
		UserID:   userIDFromCtx(c),
		Action:   "holiday_deleted",
		Entity:   "business_holiday",
		EntityID: &holiday.ID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
