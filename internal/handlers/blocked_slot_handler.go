package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VitalisHealthTech/clinic-scheduler/internal/audit"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/models"
)

type BlockedSlotHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache SlotInvalidator
	loc   *time.Location
}

func NewBlockedSlotHandler(
	db *gorm.DB,
	auditDispatcher *audit.Dispatcher,
	cache SlotInvalidator,
	loc *time.Location,
) *BlockedSlotHandler {
	return &BlockedSlotHandler{db: db, audit: auditDispatcher, cache: cache, loc: loc}
}

type CreateBlockedSlotRequest struct {
	Date      string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // HH:MM
	EndTime   string `json:"end_time" binding:"required"`   // HH:MM
	Reason    string `json:"reason"`
}

func (h *BlockedSlotHandler) List(c *gin.Context) {
	q := h.db.Order("start_time ASC")

	// past blocks are noise for the default listing
	if c.Query("all") != "true" {
		q = q.Where("end_time >= ?", time.Now().In(h.loc))
	}

	var blocked []models.BlockedSlot
	if err := q.Find(&blocked).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_blocked_slots"})
		return
	}

	c.JSON(http.StatusOK, blocked)
}

func (h *BlockedSlotHandler) Create(c *gin.Context) {
	var req CreateBlockedSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	start, err1 := time.ParseInLocation("2006-01-02 15:04", req.Date+" "+req.StartTime, h.loc)
	end, err2 := time.ParseInLocation("2006-01-02 15:04", req.Date+" "+req.EndTime, h.loc)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date_or_time"})
		return
	}
	if !start.Before(end) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_after_end"})
		return
	}

	blocked := models.BlockedSlot{
		StartTime: start,
		EndTime:   end,
		Reason:    req.Reason,
	}

	if err := h.db.Create(&blocked).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_blocked_slot"})
		return
	}

	if h.cache != nil {
		h.cache.Invalidate(c.Request.Context())
	}
	h.audit.Dispatch(audit.Event{
		UserID:   userIDFromCtx(c),
		Action:   "blocked_slot_created",
		Entity:   "blocked_slot",
		EntityID: &blocked.ID,
	})

	c.JSON(http.StatusCreated, blocked)
}

func (h *BlockedSlotHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var blocked models.BlockedSlot
	if err := h.db.First(&blocked, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "blocked_slot_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_blocked_slot"})
		return
	}

	if err := h.db.Delete(&blocked).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_blocked_slot"})
		return
	}

	if h.cache != nil {
		h.cache.Invalidate(c.Request.Context())
	}
	h.audit.Dispatch(audit.Event{
		UserID:   userIDFromCtx(c),
		Action:   "blocked_slot_deleted",
		Entity:   "blocked_slot",
		EntityID: &blocked.ID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
