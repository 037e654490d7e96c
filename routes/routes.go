package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/sharath018/event-registration-backend/config"
	_ "github.com/sharath018/event-registration-backend/docs"
	"github.com/sharath018/event-registration-backend/internal/event"
	"github.com/sharath018/event-registration-backend/internal/notification"
	"github.com/sharath018/event-registration-backend/internal/participant"
	"github.com/sharath018/event-registration-backend/middleware"
)

// Deps are the shared clients the routes are built on. Redis and Publisher
// are optional.
type Deps struct {
	Config    *config.Config
	DB        *gorm.DB
	Redis     *redis.Client
	Publisher notification.Publisher
}

// NewRouter builds the gin engine with the global middleware chain and all routes.
func NewRouter(d Deps) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.ClientIP())
	r.Use(middleware.Logger())
	r.Use(cors.New(corsConfig(d.Config.CORSAllowedOrigins)))

	if err := Setup(r, d); err != nil {
		return nil, err
	}
	return r, nil
}

// Setup registers health, docs and /api routes on r.
func Setup(r *gin.Engine, d Deps) error {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Resource not found"})
	})

	limit, err := middleware.RateLimiter(d.Config.RateLimit, d.Redis)
	if err != nil {
		return err
	}

	api := r.Group("/api")
	api.Use(limit)
	api.Use(middleware.Timeout(d.Config.RequestTimeout))

	// ========== Participants ==========
	participantRepo := participant.NewRepository(d.DB)
	participantSvc := participant.NewService(participantRepo, d.Publisher)
	participantHandler := participant.NewHandler(participantSvc)

	participants := api.Group("/participants")
	{
		participants.GET("", participantHandler.ListParticipants)
		participants.POST("", participantHandler.CreateParticipant)
		participants.GET("/:id", participantHandler.GetParticipant)
		participants.PUT("/:id", participantHandler.UpdateParticipant)
		participants.DELETE("/:id", participantHandler.DeleteParticipant)
	}

	// ========== Events ==========
	eventRepo := event.NewRepository(d.DB)
	eventSvc := event.NewService(eventRepo, d.Publisher)
	eventHandler := event.NewHandler(eventSvc)

	events := api.Group("/events")
	{
		events.GET("", eventHandler.ListEvents)
		events.POST("", eventHandler.CreateEvent)
		events.GET("/:id", eventHandler.GetEvent)
		events.PUT("/:id", eventHandler.UpdateEvent)
		events.DELETE("/:id", eventHandler.DeleteEvent)
		events.GET("/:id/participants", participantHandler.ListEventParticipants)
		events.GET("/:id/participants/export", participantHandler.ExportEventParticipants)
	}

	return nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Content-Length", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "Content-Disposition", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
