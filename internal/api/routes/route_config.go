package routes

import (
	"Inventory-Tracker-API/internal/api/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Config struct {
	App            *fiber.App
	ItemHandler    handlers.ItemHandler
	ClockInHandler handlers.ClockInHandler
}

func (c *Config) Setup() {
	c.App.Use(cors.New())
	c.Items()
	c.ClockIns()
	c.GuestRoute()
}

func (c *Config) Items() {
	items := c.App.Group("/items")
	// static segments before /:id so they are not captured as identifiers
	{
		items.Post("", c.ItemHandler.CreateItem)
		items.Get("/count-by-email", c.ItemHandler.CountItemsByEmail)
		items.Get("/filter", c.ItemHandler.FilterItems)
		items.Get("/:id", c.ItemHandler.GetItem)
		items.Put("/:id", c.ItemHandler.UpdateItem)
		items.Delete("/:id", c.ItemHandler.DeleteItem)
	}
}

func (c *Config) ClockIns() {
	clockIns := c.App.Group("/clock-in")
	{
		clockIns.Post("", c.ClockInHandler.CreateClockIn)
		clockIns.Get("/filter", c.ClockInHandler.FilterClockIns)
		clockIns.Get("/:id", c.ClockInHandler.GetClockIn)
		clockIns.Put("/:id", c.ClockInHandler.UpdateClockIn)
		clockIns.Delete("/:id", c.ClockInHandler.DeleteClockIn)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
