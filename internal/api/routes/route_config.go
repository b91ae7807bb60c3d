package routes

import (
	"zetanom/internal/api/handlers"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App         *fiber.App
	FoodHandler handlers.FoodHandler
	LogHandler  handlers.LogHandler
}

func (c *Config) Setup() {
	c.GuestRoute()
	c.Library()
	c.Log()
}

func (c *Config) GuestRoute() {
	c.App.Get("/", c.LogHandler.Today)
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Library() {
	library := c.App.Group("/api/v1/library")

	library.Get("", c.FoodHandler.ListFoods)
	library.Post("", c.FoodHandler.CreateFood)
	library.Get("/:food_id", c.FoodHandler.GetFood)
	library.Put("/:food_id", c.FoodHandler.EditFood)

	// Serving sizes
	library.Post("/:food_id/servings", c.FoodHandler.CreateServing)
	library.Delete("/:food_id/servings/:serving_id", c.FoodHandler.DeleteServing)
}

func (c *Config) Log() {
	log := c.App.Group("/api/v1/log")

	log.Get("/:date", c.LogHandler.GetDailyLog)
	log.Post("/:date/entries", c.LogHandler.CreateEntry)
	log.Delete("/:date/entries/:entry_id", c.LogHandler.DeleteEntry)
}
