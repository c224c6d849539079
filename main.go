// @title Event Hub API
// @version 1.0
// @description Event inventory, reservations, ticketing and organizer analytics.
// @host localhost:3000
// @BasePath /

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "eventhub-backend/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"eventhub-backend/bootstrap"
	"eventhub-backend/config"
	"eventhub-backend/database"
	"eventhub-backend/internal/clock"
	"eventhub-backend/internal/controllers"
	"eventhub-backend/internal/logger"
	"eventhub-backend/internal/middleware"
	"eventhub-backend/internal/qrpayload"
	"eventhub-backend/internal/repository"
	"eventhub-backend/internal/routes"
	"eventhub-backend/internal/services"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	logger.Setup(cfg.LogLevel)
	controllers.SetRequestTimeout(cfg.RequestTimeout)

	clk := clock.System()
	events, tickets, client := openStores(cfg, clk)
	if client != nil {
		defer database.Disconnect(client, 5*time.Second)
	}

	enc, err := qrpayload.NewSealedEncoder(cfg.QRSecret)
	if err != nil {
		log.Fatalf("qr encoder: %v", err)
	}

	query := services.NewEventQueryService(events)
	svc := routes.Services{
		Query:     query,
		Catalog:   services.NewCatalogService(events, clk),
		Resources: services.NewResourceService(events),
		Tickets:   services.NewTicketService(events, tickets, enc, clk),
		Analytics: services.NewAnalyticsService(query, services.WithTopN(cfg.AnalyticsTopN)),
	}

	// Fiber app
	app := fiber.New(fiber.Config{ErrorHandler: controllers.ErrorHandler})
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger API document
	app.Get("/docs/*", swagger.HandlerDefault)

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	app.Use(middleware.JWTCaller(cfg.JWTSecret))
	routes.Setup(app, svc)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()
	logger.Log.Info("server started", "port", cfg.Port, "store", cfg.StoreDriver)

	stop, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	<-stop.Done()

	logger.Log.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Log.Error("shutdown", "err", err)
	}
}

// openStores picks the storage backend. client is nil for the memory driver.
func openStores(cfg config.Config, clk clock.Clock) (repository.EventStore, repository.TicketStore, *mongo.Client) {
	if strings.EqualFold(cfg.StoreDriver, config.DriverMemory) {
		log.Println("⚠️ STORE_DRIVER=memory, data is lost on restart")
		return repository.NewMemoryEventStore(clk), repository.NewMemoryTicketStore(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Connect to the database
	client, err := database.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("MongoDB connection error: %v", err)
	}
	db := client.Database(cfg.MongoDB)

	if err := bootstrap.EnsureEventIndexes(ctx, db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}
	return repository.NewMongoEventStore(db, clk), repository.NewMongoTicketStore(db), client
}
