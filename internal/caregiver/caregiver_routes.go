package caregiver

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	caregivers := r.Group("/caregivers")
	{
		caregivers.GET("", h.List)
	}
}
