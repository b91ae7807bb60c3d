package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"zetanom/domain"
	"zetanom/internal/api/handlers"
	"zetanom/internal/api/presenters"
	"zetanom/internal/api/routes"
	"zetanom/internal/utils"
	"zetanom/internal/utils/storage"
	"zetanom/pkg/food"
	"zetanom/pkg/logbook"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func NewApp(store *storage.Store, cfg utils.Config) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:      "zetanom",
		ErrorHandler: errorHandler,
	})
	validator := utils.NewValidator()

	// setting up logging and limiter
	output, err := openLogOutput(cfg.LogFile)
	if err != nil {
		return nil, err
	}
	if closer, ok := output.(io.Closer); ok {
		app.Hooks().OnShutdown(closer.Close)
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   cfg.TimeZone,
		Output:     output,
	}))

	if cfg.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitMax,
			Expiration: cfg.RateLimitWindow,
		}))
	}

	// Repository
	foodRepository := food.NewFoodRepository(store)
	entryRepository := logbook.NewEntryRepository(store)

	// Service
	foodService := food.NewFoodService(foodRepository)
	logService := logbook.NewLogService(entryRepository, foodRepository, cfg.Location())

	// Handler
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	logHandler := handlers.NewLogHandler(logService, validator)

	// routes
	routesConfig := routes.Config{
		App:         app,
		FoodHandler: foodHandler,
		LogHandler:  logHandler,
	}
	routesConfig.Setup()
	return app, nil
}

// openLogOutput opens the access log file, creating its directory. An empty path
// logs to stderr.
func openLogOutput(path string) (io.Writer, error) {
	if path == "" {
		return os.Stderr, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return presenters.ErrorResponse(c, code, domain.MessageFailedProcessRequest, err)
}
