package config

import (
	"os"
	"time"

	"Inventory-Tracker-API/internal/api/handlers"
	"Inventory-Tracker-API/internal/api/routes"
	"Inventory-Tracker-API/internal/utils"
	"Inventory-Tracker-API/pkg/clockin"
	"Inventory-Tracker-API/pkg/item"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.mongodb.org/mongo-driver/mongo"
)

func NewApp(db *mongo.Database) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        50,
		Expiration: 1 * time.Second,
	}))

	// Repository
	itemRepository := item.NewItemRepository(db)
	clockInRepository := clockin.NewClockInRepository(db)

	// Service
	itemService := item.NewItemService(itemRepository)
	clockInService := clockin.NewClockInService(clockInRepository)

	// Handler
	itemHandler := handlers.NewItemHandler(itemService, validator)
	clockInHandler := handlers.NewClockInHandler(clockInService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		ItemHandler:    itemHandler,
		ClockInHandler: clockInHandler,
	}
	routesConfig.Setup()
	return app, nil
}
