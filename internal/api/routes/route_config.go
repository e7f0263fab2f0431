package routes

import (
	"barnmonitor-backend/internal/api/handlers"
	"barnmonitor-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	AuthHandler         handlers.AuthHandler
	FarmerHandler       handlers.FarmerHandler
	AnimalHandler       handlers.AnimalHandler
	AnimalTypeHandler   handlers.AnimalTypeHandler
	FeedHandler         handlers.FeedHandler
	HealthRecordHandler handlers.HealthRecordHandler
	ProductionHandler   handlers.ProductionHandler
	SaleHandler         handlers.SaleHandler
	Middleware          middleware.Middleware
}

// Setup registers every route. Reads are public; anything that writes
// requires a live session.
func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.SessionMiddleware())
	c.GuestRoute()
	c.Auth()
	c.Farmers()
	c.Animals()
	c.AnimalTypes()
	c.Feeds()
	c.HealthRecords()
	c.Productions()
	c.Sales()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", ping)
}

// ping handles GET /api/ping
// @Summary Liveness check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/ping [get]
func ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "pong"})
}

func (c *Config) Auth() {
	c.App.Post("/login", c.AuthHandler.Login)
	c.App.Post("/signup", c.AuthHandler.Signup)
	c.App.Get("/check_session", c.AuthHandler.CheckSession)
	c.App.Delete("/logout", c.AuthHandler.Logout)
	c.App.Delete("/clear_session", c.AuthHandler.ClearSession)
}

func (c *Config) Farmers() {
	farmers := c.App.Group("/farmers")
	farmers.Get("", c.FarmerHandler.GetFarmers)
	farmers.Get("/:id", c.FarmerHandler.GetFarmerByID)
	farmers.Delete("/:id", c.Middleware.AuthMiddleware(), c.FarmerHandler.DeleteFarmer)
}

func (c *Config) Animals() {
	animals := c.App.Group("/animals")
	animals.Get("", c.AnimalHandler.GetAnimals)
	animals.Get("/:id", c.AnimalHandler.GetAnimalByID)
	animals.Post("", c.Middleware.AuthMiddleware(), c.AnimalHandler.AddAnimal)
	animals.Patch("/:id", c.Middleware.AuthMiddleware(), c.AnimalHandler.UpdateAnimal)
	animals.Delete("/:id", c.Middleware.AuthMiddleware(), c.AnimalHandler.DeleteAnimal)
	animals.Post("/:id/image", c.Middleware.AuthMiddleware(), c.AnimalHandler.UploadAnimalImage)
}

func (c *Config) AnimalTypes() {
	animalTypes := c.App.Group("/animal_types")
	animalTypes.Get("", c.AnimalTypeHandler.GetAnimalTypes)
	animalTypes.Get("/:id", c.AnimalTypeHandler.GetAnimalTypeByID)
	animalTypes.Post("", c.Middleware.AuthMiddleware(), c.AnimalTypeHandler.AddAnimalType)
	animalTypes.Put("/:id", c.Middleware.AuthMiddleware(), c.AnimalTypeHandler.UpdateAnimalType)
	animalTypes.Patch("/:id", c.Middleware.AuthMiddleware(), c.AnimalTypeHandler.UpdateAnimalType)
	animalTypes.Delete("/:id", c.Middleware.AuthMiddleware(), c.AnimalTypeHandler.DeleteAnimalType)
}

func (c *Config) Feeds() {
	feeds := c.App.Group("/feeds")
	feeds.Get("", c.FeedHandler.GetFeeds)
	feeds.Get("/:id", c.FeedHandler.GetFeedByID)
	feeds.Post("", c.Middleware.AuthMiddleware(), c.FeedHandler.AddFeed)
	feeds.Delete("/:id", c.Middleware.AuthMiddleware(), c.FeedHandler.DeleteFeed)
}

func (c *Config) HealthRecords() {
	records := c.App.Group("/health_records")
	records.Get("", c.HealthRecordHandler.GetHealthRecords)
	records.Get("/:id", c.HealthRecordHandler.GetHealthRecordByID)
	records.Post("", c.Middleware.AuthMiddleware(), c.HealthRecordHandler.AddHealthRecord)
	records.Patch("/:id", c.Middleware.AuthMiddleware(), c.HealthRecordHandler.UpdateHealthRecord)
	records.Delete("/:id", c.Middleware.AuthMiddleware(), c.HealthRecordHandler.DeleteHealthRecord)
}

func (c *Config) Productions() {
	productions := c.App.Group("/productions")
	productions.Get("", c.ProductionHandler.GetProductions)
	productions.Get("/:id", c.ProductionHandler.GetProductionByID)
	productions.Post("", c.Middleware.AuthMiddleware(), c.ProductionHandler.AddProduction)
	productions.Patch("/:id", c.Middleware.AuthMiddleware(), c.ProductionHandler.UpdateProduction)
	productions.Delete("/:id", c.Middleware.AuthMiddleware(), c.ProductionHandler.DeleteProduction)
}

func (c *Config) Sales() {
	sales := c.App.Group("/sales")
	sales.Get("", c.SaleHandler.GetSales)
	sales.Get("/:id", c.SaleHandler.GetSaleByID)
	sales.Post("", c.Middleware.AuthMiddleware(), c.SaleHandler.AddSale)
	sales.Patch("/:id", c.Middleware.AuthMiddleware(), c.SaleHandler.UpdateSale)
	sales.Delete("/:id", c.Middleware.AuthMiddleware(), c.SaleHandler.DeleteSale)
}
