package main

import (
	"context"
	"time"

	"bookable/internal/assistant"
	assistanthandler "bookable/internal/assistant/handler"
	authhandler "bookable/internal/auth/handler"
	authservice "bookable/internal/auth/service"
	bookinghandler "bookable/internal/bookings/handler"
	"bookable/internal/bookings/ledger"
	bookingservice "bookable/internal/bookings/service"
	"bookable/internal/bookings/validator"
	cataloghandler "bookable/internal/catalog/handler"
	catalogrepository "bookable/internal/catalog/repository"
	catalogservice "bookable/internal/catalog/service"
	"bookable/pkg/app"
	"bookable/pkg/config"
	"bookable/pkg/contracts"
	"bookable/pkg/events"
	"bookable/pkg/model"
)

const ServiceName = "bookable"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Bookable server")

	catalogRepo := catalogrepository.NewMongoCatalogRepository(cfg)
	bookingLedger := ledger.New()

	if cfg.SeedDemoData {
		seedDemoData(cfg, catalogRepo, bookingLedger)
	}

	publisher := initPublisher(cfg)
	if publisher != nil {
		defer func() {
			if err := publisher.Close(); err != nil {
				cfg.Log.Error("Failed to close event producer", "error", err)
			}
		}()
	}

	catalogService := catalogservice.NewCatalogService(catalogRepo, cfg)
	bookingService := bookingservice.NewBookingService(
		bookingLedger,
		catalogService,
		validator.NewBookingValidator(cfg.Log),
		publisher,
		cfg,
	)
	authService := authservice.NewAuthService(catalogRepo, cfg)

	handlers := []contracts.Handler{
		authhandler.NewAuthHandler(authService, cfg.Log),
		cataloghandler.NewCatalogHandler(catalogService, cfg.Log),
		bookinghandler.NewBookingHandler(bookingService, cfg.Log),
	}

	if h := initAssistant(cfg, catalogService, bookingService); h != nil {
		handlers = append(handlers, h)
	}

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(handlers...)
	serverApp.Run()
}

func initPublisher(cfg *config.Config) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("Kafka brokers not configured, booking events disabled")
		return nil
	}

	producer, err := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaEventTopic, ServiceName, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create event producer", "error", err)
	}
	return producer
}

func initAssistant(cfg *config.Config, catalogService catalogservice.CatalogService, bookingService bookingservice.BookingService) contracts.Handler {
	if cfg.GeminiAPIKey == "" {
		cfg.Log.Info("Gemini API key not configured, assistant disabled")
		return nil
	}

	gemini, err := assistant.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		cfg.Log.Fatal("Failed to create Gemini client", "error", err)
	}

	assistantService := assistant.NewService(gemini, catalogService, bookingService, cfg)
	return assistanthandler.NewAssistantHandler(assistantService, cfg.Log)
}

func seedDemoData(cfg *config.Config, catalogRepo catalogrepository.CatalogRepository, bookingLedger *ledger.Ledger) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoConnTimeout)
	defer cancel()

	if err := catalogRepo.Seed(ctx); err != nil {
		cfg.Log.Fatal("Failed to seed demo catalog", "error", err)
	}

	tomorrow := time.Now().UTC().AddDate(0, 0, 1)
	start := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 10, 0, 0, 0, time.UTC)
	bookingLedger.Seed(model.Booking{
		ID:         "booking-demo-1",
		TenantID:   "tenant-1",
		ResourceID: "resource-1",
		UserEmail:  "employee@innovatecorp.com",
		UserName:   "John Doe",
		StartTime:  start,
		EndTime:    start.Add(2 * time.Hour),
		Attendees:  5,
		Status:     model.StatusConfirmed,
		TotalCost:  200,
		CreatedAt:  time.Now().UTC(),
	})

	cfg.Log.Info("Demo data seeded", "bookings", bookingLedger.Len())
}
