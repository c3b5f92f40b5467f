package app

import (
	"context"
	"fmt"

	_ "github.com/DIMO-Network/line-bot-api/docs" // Import Swagger docs
	"github.com/DIMO-Network/line-bot-api/internal/clients/line"
	"github.com/DIMO-Network/line-bot-api/internal/config"
	"github.com/DIMO-Network/line-bot-api/internal/controllers/webhook"
	"github.com/DIMO-Network/line-bot-api/internal/services/dispatcher"
	"github.com/DIMO-Network/line-bot-api/internal/services/friendsrepo"
	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/DIMO-Network/shared/pkg/db"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
)

func CreateServers(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	store := db.NewDbConnectionFromSettings(ctx, &settings.DB, true)
	store.WaitForDB(logger)

	repo := friendsrepo.NewRepository(store.DBS().Writer.DB)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure friend schema: %w", err)
	}

	lineClient, err := line.New(settings.LineAPIURL, settings.ChannelAccessToken, settings.RemoteCallTimeout, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create line client: %w", err)
	}

	eventDispatcher, err := dispatcher.New(dispatcher.Config{ChannelSecret: settings.ChannelSecret}, lineClient, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to create dispatcher: %w", err)
	}

	return CreateFiberApp(logger, eventDispatcher), nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, eventDispatcher webhook.Dispatcher) *fiber.App {
	logger.Info().Msg("Starting LINE Bot API...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello World!")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	webhookController := webhook.NewWebhookController(eventDispatcher)
	logger.Info().Msg("Registering routes...")
	app.Post("/events", webhookController.ReceiveEvents)

	return app
}
