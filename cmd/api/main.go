package main

import (
	"drportal/internal/auth"
	bookinghandler "drportal/internal/bookings/handler"
	bookingrepo "drportal/internal/bookings/repository"
	bookingservice "drportal/internal/bookings/service"
	bookingvalidator "drportal/internal/bookings/validator"
	cataloghandler "drportal/internal/catalog/handler"
	catalogrepo "drportal/internal/catalog/repository"
	catalogservice "drportal/internal/catalog/service"
	doctorhandler "drportal/internal/doctors/handler"
	doctorrepo "drportal/internal/doctors/repository"
	doctorservice "drportal/internal/doctors/service"
	doctorvalidator "drportal/internal/doctors/validator"
	"drportal/internal/notify"
	"drportal/internal/payments"
	userhandler "drportal/internal/users/handler"
	userrepo "drportal/internal/users/repository"
	userservice "drportal/internal/users/service"
	"drportal/pkg/app"
	"drportal/pkg/config"
	"drportal/pkg/contracts"
	"drportal/pkg/kafka"
	kafka_config "drportal/pkg/kafka/config"
	kafka_middleware "drportal/pkg/kafka/middleware"
)

const ServiceName = "api"

func main() {
	cfg := config.Load(ServiceName)

	cfg.Log.Info("Starting portal API")
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	publisher, closeProducer := initPublisher(cfg)
	defer closeProducer()

	handlers := initHandlers(cfg, publisher)

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg, handlers...)
	serverApp.Run()
}

func initHandlers(cfg *config.Config, publisher notify.Publisher) []contracts.Handler {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := userrepo.NewMongoUserRepository(cfg)
	userService := userservice.NewUserService(userRepo, tokens, cfg)
	authMw := auth.NewMiddleware(tokens, userService, cfg.Log)

	bookingRepo := bookingrepo.NewMongoBookingRepository(cfg)
	paymentRepo := payments.NewMongoPaymentRepository(cfg)
	bookingService := bookingservice.NewBookingService(
		bookingRepo,
		paymentRepo,
		publisher,
		bookingvalidator.NewBookingValidator(cfg.Log),
		cfg,
	)

	catalogRepo := catalogrepo.NewMongoServiceRepository(cfg)
	catalogService := catalogservice.NewCatalogService(catalogRepo, bookingRepo, cfg)

	doctorRepo := doctorrepo.NewMongoDoctorRepository(cfg)
	doctorService := doctorservice.NewDoctorService(doctorRepo, doctorvalidator.NewDoctorValidator(cfg.Log), cfg)

	if cfg.StripeSecretKey == "" && !cfg.StripeDryRun {
		cfg.Log.Fatal("Stripe secret key is not set; set STRIPE_SECRET_KEY or enable STRIPE_DRY_RUN")
	}
	stripeClient := payments.NewStripeClient(cfg.StripeSecretKey, cfg.Log).WithDryRun(cfg.StripeDryRun)

	cfg.Log.Info("Portal services initialized", "database", cfg.MongoDatabaseName)

	return []contracts.Handler{
		cataloghandler.NewCatalogHandler(catalogService, cfg.Log),
		bookinghandler.NewBookingHandler(bookingService, authMw, cfg.Log),
		userhandler.NewUserHandler(userService, authMw, cfg.Log),
		doctorhandler.NewDoctorHandler(doctorService, authMw, cfg.Log),
		payments.NewHandler(stripeClient, authMw, cfg.Log),
	}
}

// initPublisher wires the Kafka producer for booking events, falling
// back to a log-only publisher when no broker is reachable at startup
// configuration time.
func initPublisher(cfg *config.Config) (notify.Publisher, func()) {
	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Warn("Invalid Kafka configuration, notifications disabled", "error", err)
		return notify.NewLogPublisher(cfg.Log), func() {}
	}

	producer, err := kafka.NewProducer(kafkaCfg, cfg.NotifyTopic, cfg.NotifyDLQTopic)
	if err != nil {
		cfg.Log.Warn("Kafka producer unavailable, notifications disabled", "error", err)
		return notify.NewLogPublisher(cfg.Log), func() {}
	}
	producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
	producer.Use(kafka_middleware.MetricsProducerMiddleware())

	cfg.Log.Info("Kafka producer initialized", "topic", cfg.NotifyTopic)

	return notify.NewKafkaPublisher(producer, cfg.Log), func() {
		if err := producer.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka producer", "error", err)
		}
	}
}
