package controller

import (
	"context"
	"net/http"

	"hitbadge-backend/dal"
	"hitbadge-backend/middelware"
	"hitbadge-backend/models"
	"hitbadge-backend/repository"
	"hitbadge-backend/services"
	"hitbadge-backend/utils/logger"
	"hitbadge-backend/utils/swagger"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	Hit *HitController
}

func NewController(ctx context.Context, cfg *models.Config, log logger.Logger) *Controller {
	dbclient, err := dal.NewDynamoDBClient(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize DynamoDB client: %v", err)
	}

	repo := repository.NewRepository(dbclient, cfg, log)
	svc := services.NewService(ctx, repo, log, cfg)

	return &Controller{
		Hit: NewHitController(svc.GetCounterService(), svc.GetUserService(), log),
	}
}

func (c *Controller) RegisterRoutes(ctx context.Context, config *models.Config, r *gin.Engine, basePath string) error {
	log := logger.NewLogger(config.LogLevel, config.LogFormat)
	logging := middelware.NewLoggingMiddleware(log)
	cors := middelware.NewCORSMiddleware(config)

	r.Use(middelware.RequestID())
	r.Use(logging.StructuredLogger())
	r.Use(logging.Recovery())
	r.Use(cors.CORS())

	v := r.Group(basePath)

	// Health check endpoint
	v.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": config.AppVersion,
			"service": config.AppName,
		})
	})

	hc := v.Group("/hc")
	hc.GET("/:user/:pageId", c.Hit.Hit)
	hc.POST("/:user", c.Hit.Register)

	// Swagger UI
	swaggerConfig := swagger.SwaggerConfig{
		Title:         config.AppName + " API",
		SwaggerDocURL: "/swagger/doc.json",
	}
	r.GET("/swagger", swagger.ServeSwagger(swaggerConfig))
	r.GET("/swagger/index.html", swagger.ServeSwagger(swaggerConfig))
	r.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.File("./docs/swagger.json")
	})

	srv := &http.Server{
		Addr:    config.AppHost + ":" + config.AppPort,
		Handler: r,
	}

	log.Infof("Starting server on %s:%s", config.AppHost, config.AppPort)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
