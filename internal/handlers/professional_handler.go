package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VitalisHealthTech/clinic-scheduler/internal/audit"
	"github.com/VitalisHealthTech/clinic-scheduler/internal/models"
)

type ProfessionalHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache SlotInvalidator
}

func NewProfessionalHandler(
	db *gorm.DB,
	auditDispatcher *audit.Dispatcher,
	cache SlotInvalidator,
) *ProfessionalHandler {
	return &ProfessionalHandler{db: db, audit: auditDispatcher, cache: cache}
}

// --------- Requests ---------

type CreateProfessionalRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type UpdateProfessionalRequest struct {
	Name      *string `json:"name,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

type ProfessionalDayConfig struct {
	DayOfWeek   int    `json:"day_of_week" binding:"min=0,max=6"`
	IsAvailable bool   `json:"is_available"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

type ProfessionalScheduleUpdateRequest struct {
	Days []ProfessionalDayConfig `json:"days" binding:"required"`
}

// --------- Professionals ---------

// ListPublic serves the booking page: active professionals only.
func (h *ProfessionalHandler) ListPublic(c *gin.Context) {
	var professionals []models.Professional
	if err := h.db.
		Where("active = true").
		Order("name ASC").
		Find(&professionals).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_professionals"})
		return
	}

	c.JSON(http.StatusOK, professionals)
}

func (h *ProfessionalHandler) List(c *gin.Context) {
	var professionals []models.Professional
	if err := h.db.
		Order("name ASC").
		Find(&professionals).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_professionals"})
		return
	}

	c.JSON(http.StatusOK, professionals)
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	var req CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	prof := models.Professional{
		Name:      req.Name,
		Specialty: req.Specialty,
		Email:     req.Email,
		Phone:     req.Phone,
		Active:    true,
	}

	if err := h.db.Create(&prof).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_professional"})
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userIDFromCtx(c),
		Action:   "professional_created",
		Entity:   "professional",
		EntityID: &prof.ID,
	})

	c.JSON(http.StatusCreated, prof)
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var prof models.Professional
	if err := h.db.First(&prof, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "professional_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_professional"})
		return
	}

	var req UpdateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		prof.Name = *req.Name
	}
	if req.Specialty != nil {
		prof.Specialty = *req.Specialty
	}
	if req.Email != nil {
		prof.Email = *req.Email
	}
	if req.Phone != nil {
		prof.Phone = *req.Phone
	}
	if req.Active != nil {
		prof.Active = *req.Active
	}

	if err := h.db.Save(&prof).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_professional"})
		return
	}

	// deactivation removes the professional from availability results
	if h.cache != nil {
		h.cache.Invalidate(c.Request.Context())
	}
	h.audit.Dispatch(audit.Event{
		UserID:   userIDFromCtx(c),
		Action:   "professional_updated",
		Entity:   "professional",
		EntityID: &prof.ID,
	})

	c.JSON(http.StatusOK, prof)
}

// --------- Per-professional weekly schedule ---------

func (h *ProfessionalHandler) GetSchedule(c *gin.Context) {
	id := c.Param("id")

	var schedules []models.ProfessionalSchedule
	if err := h.db.
		Preload("Professional").
		Where("professional_id = ?", id).
		Order("day_of_week ASC").
		Find(&schedules).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_schedule"})
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// UpdateSchedule replaces the professional's weekly override rows.
func (h *ProfessionalHandler) UpdateSchedule(c *gin.Context) {
	id := c.Param("id")

	var prof models.Professional
	if err := h.db.First(&prof, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "professional_not_found"})
		return
	}

	var req ProfessionalScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	for _, d := range req.Days {
		if !d.IsAvailable {
			continue
		}
		if !validTimeOfDay(d.StartTime) || !validTimeOfDay(d.EndTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_time_format"})
			return
		}
		if d.StartTime >= d.EndTime {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_after_end"})
			return
		}
	}

	if err := h.db.
		Where("professional_id = ?", prof.ID).
		Delete(&models.ProfessionalSchedule{}).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_clear_existing_schedule"})
		return
	}

	var toCreate []models.ProfessionalSchedule
	for _, d := range req.Days {
		toCreate = append(toCreate, models.ProfessionalSchedule{
			ProfessionalID: prof.ID,
			DayOfWeek:      d.DayOfWeek,
			IsAvailable:    d.IsAvailable,
			StartTime:      d.StartTime,
			EndTime:        d.EndTime,
		})
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_schedule"})
			return
		}
	}

	if h.cache != nil {
		h.cache.Invalidate(c.Request.Context())
	}
	h.audit.Dispatch(audit.Event{
		UserID:   userIDFromCtx(c),
		Action:   "professional_schedule_updated",
		Entity:   "professional_schedule",
		EntityID: &prof.ID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
