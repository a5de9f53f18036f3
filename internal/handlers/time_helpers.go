package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VitalisHealthTech/clinic-scheduler/internal/middleware"
)

// SlotInvalidator drops cached availability after any schedule mutation.
// A nil invalidator means caching is disabled.
type SlotInvalidator interface {
	Invalidate(ctx context.Context)
}

func parseDate(dateStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}

// validTimeOfDay accepts "HH:MM" 24h strings.
func validTimeOfDay(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

func userIDFromCtx(c *gin.Context) *uint {
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}
