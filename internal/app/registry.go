package app

import (
	"database/sql"

	"fichaje/internal/caregiver"
	"fichaje/internal/middleware"
	"fichaje/internal/timeclock"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	writer *kafka.Writer,
) error {
	// --- Repositories ---
	timeclockRepo := timeclock.NewRepository(gormDB)
	caregiverRepo := caregiver.NewRepository(gormDB)

	// --- Services ---
	var timeclockService timeclock.Service
	if writer != nil {
		timeclockService = timeclock.NewServiceWithPublisher(db, timeclockRepo, timeclock.NewKafkaEventPublisher(writer))
	} else {
		timeclockService = timeclock.NewService(db, timeclockRepo)
	}
	caregiverService := caregiver.NewService(caregiverRepo, timeclockService, rdb)

	// --- Handlers ---
	timeclockHandler := timeclock.NewHandler(timeclockService)
	caregiverHandler := caregiver.NewHandler(caregiverService)

	// --- Middleware & Routes ---
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(10, 20))

	api := router.Group("/api/v1")
	{
		timeclock.RegisterRoutes(api, timeclockHandler, rdb)
		caregiver.RegisterRoutes(api, caregiverHandler)
	}

	return nil
}
