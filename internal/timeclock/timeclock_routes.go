package timeclock

import (
	"fichaje/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	g := r.Group("")
	if rdb != nil {
		g.Use(middleware.Idempotency(rdb))
	}
	{
		g.POST("/clock-in", h.ClockIn)
		g.POST("/clock-out", h.ClockOut)
		g.POST("/historical-entries", h.AddHistoricalEntry)
		g.GET("/time-entries", h.ListEntries)
	}
}
