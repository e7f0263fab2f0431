package config

import (
	"context"
	"errors"
	"time"

	"barnmonitor-backend/domain"
	"barnmonitor-backend/internal/api/handlers"
	"barnmonitor-backend/internal/api/presenters"
	"barnmonitor-backend/internal/api/routes"
	"barnmonitor-backend/internal/middleware"
	"barnmonitor-backend/internal/utils"
	"barnmonitor-backend/internal/utils/mailing"
	"barnmonitor-backend/internal/utils/storage"
	"barnmonitor-backend/pkg/animal"
	"barnmonitor-backend/pkg/animaltype"
	"barnmonitor-backend/pkg/farmer"
	"barnmonitor-backend/pkg/feed"
	"barnmonitor-backend/pkg/health"
	"barnmonitor-backend/pkg/jwt"
	"barnmonitor-backend/pkg/logger"
	"barnmonitor-backend/pkg/production"
	"barnmonitor-backend/pkg/sale"
	"barnmonitor-backend/pkg/session"

	_ "barnmonitor-backend/docs"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB, cfg *utils.Config, log *zap.Logger) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName:      "BarnMonitor",
		ErrorHandler: ErrorHandler,
	})
	validator := utils.Validate

	// utils
	var s3 storage.AwsS3
	if cfg.AWSS3Bucket != "" {
		var err error
		s3, err = storage.NewAwsS3(context.Background(), storage.S3Config{
			Bucket:    cfg.AWSS3Bucket,
			Region:    cfg.AWSS3Region,
			AccessKey: cfg.AWSAccessKey,
			SecretKey: cfg.AWSSecretKey,
		})
		if err != nil {
			return nil, err
		}
	} else {
		log.Info("AWS_S3_BUCKET not set, animal image upload disabled")
	}

	var mailer mailing.Mailer
	if mailConfig := mailing.LoadMailConfig(); mailConfig.Enabled() {
		mailer = mailing.NewMailer(mailConfig)
	}

	// Repository
	sessionRepository := session.NewSessionRepository(db)
	farmerRepository := farmer.NewFarmerRepository(db)
	animalTypeRepository := animaltype.NewAnimalTypeRepository(db)
	animalRepository := animal.NewAnimalRepository(db)
	feedRepository := feed.NewFeedRepository(db)
	healthRecordRepository := health.NewHealthRecordRepository(db)
	productionRepository := production.NewProductionRepository(db)
	saleRepository := sale.NewSaleRepository(db)

	// Service
	jwtService := jwt.NewJWTService(cfg.SessionSecret)
	sessionService := session.NewSessionService(
		sessionRepository,
		jwtService,
		time.Duration(cfg.SessionTTLDays)*24*time.Hour,
		logger.Named(log, "session"),
	)
	authService := farmer.NewAuthService(farmerRepository, sessionService, mailer, cfg.AppURL, logger.Named(log, "auth"))
	farmerService := farmer.NewFarmerService(farmerRepository)
	animalTypeService := animaltype.NewAnimalTypeService(animalTypeRepository)
	animalService := animal.NewAnimalService(
		animalRepository,
		farmerRepository,
		animalTypeRepository,
		s3,
		logger.Named(log, "animal"),
	)
	feedService := feed.NewFeedService(feedRepository, animalRepository)
	healthRecordService := health.NewHealthRecordService(healthRecordRepository, animalRepository)
	productionService := production.NewProductionService(productionRepository, animalRepository)
	saleService := sale.NewSaleService(saleRepository, animalRepository, productionRepository)

	// Middleware
	middlewares := middleware.NewMiddleware(sessionService, middleware.Config{
		CORSOrigin:   cfg.CORSOrigin,
		CookieSecure: cfg.CookieSecure,
	}, logger.Named(log, "http"))

	app.Use(recover.New())
	app.Use(middlewares.RequestLogger())
	if cfg.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitMax,
			Expiration: 1 * time.Second,
			LimitReached: func(c *fiber.Ctx) error {
				return presenters.ErrorResponse(c, fiber.StatusTooManyRequests, domain.MessageFailedProcessRequest, errors.New("too many requests"))
			},
		}))
	}
	if cfg.Metrics {
		prometheus := fiberprometheus.New("barnmonitor")
		prometheus.RegisterAt(app, "/metrics")
		app.Use(prometheus.Middleware)
	}
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Handler
	authHandler := handlers.NewAuthHandler(authService, validator, cfg.CookieSecure)
	farmerHandler := handlers.NewFarmerHandler(farmerService)
	animalHandler := handlers.NewAnimalHandler(animalService, validator)
	animalTypeHandler := handlers.NewAnimalTypeHandler(animalTypeService, validator)
	feedHandler := handlers.NewFeedHandler(feedService, validator)
	healthRecordHandler := handlers.NewHealthRecordHandler(healthRecordService, validator)
	productionHandler := handlers.NewProductionHandler(productionService, validator)
	saleHandler := handlers.NewSaleHandler(saleService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		AuthHandler:         authHandler,
		FarmerHandler:       farmerHandler,
		AnimalHandler:       animalHandler,
		AnimalTypeHandler:   animalTypeHandler,
		FeedHandler:         feedHandler,
		HealthRecordHandler: healthRecordHandler,
		ProductionHandler:   productionHandler,
		SaleHandler:         saleHandler,
		Middleware:          middlewares,
	}
	routesConfig.Setup()
	return app, nil
}

// ErrorHandler renders errors that escape a handler, including unmatched
// routes and recovered panics, in the same envelope handlers use.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return presenters.ErrorResponse(c, fe.Code, domain.MessageFailedProcessRequest, errors.New(fe.Message))
	}
	return presenters.HandleError(c, domain.MessageFailedProcessRequest, err)
}
