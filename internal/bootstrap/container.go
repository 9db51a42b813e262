package bootstrap

import (
	"log"
	"time"

	"viralpost-be/internal/config"
	"viralpost-be/internal/controller"
	"viralpost-be/internal/handler"
	"viralpost-be/internal/pkg/logger"
	"viralpost-be/internal/pkg/mailer"
	"viralpost-be/internal/repository/unitofwork"
	"viralpost-be/internal/service"
	"viralpost-be/internal/websocket"
	"viralpost-be/pkg/events"
	"viralpost-be/pkg/extract"
	"viralpost-be/pkg/llm/factory"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	GenerationController controller.IGenerationController

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub

	// Event bus (exposed for shutdown)
	EventBus *events.Bus

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	bus := events.NewBus()

	// 3. LLM Provider based on Config
	llmProvider, err := factory.NewProvider(factory.ProviderConfig{
		Provider: cfg.Ai.Provider,
		Model:    cfg.Ai.Model,
		APIKey:   providerAPIKey(cfg),
		BaseURL:  cfg.Ai.OllamaBaseURL,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// 4. Infrastructure
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Invalid REDIS_URL, websocket fan-out is single-instance: %v", err)
		} else {
			rdb = redis.NewClient(opts)
		}
	}

	hub := websocket.NewHub(rdb, sysLogger)
	go hub.Run()

	extractor := extract.NewExtractor()

	// 5. Services
	authService := service.NewAuthService(uowFactory, emailService, bus, cfg.Auth, sysLogger)
	generationService := service.NewGenerationService(
		uowFactory,
		llmProvider,
		extractor,
		bus,
		sysLogger,
		time.Duration(cfg.Ai.TimeoutSeconds)*time.Second,
	)

	// 6. Controllers & Handlers
	notificationHandler := handler.NewNotificationHandler(hub, sysLogger)

	return &Container{
		AuthController:       controller.NewAuthController(authService),
		GenerationController: controller.NewGenerationController(generationService),
		NotificationHandler:  notificationHandler,
		WebSocketHub:         hub,
		EventBus:             bus,
		Logger:               sysLogger,
	}
}

func providerAPIKey(cfg *config.Config) string {
	switch cfg.Ai.Provider {
	case "openai":
		return cfg.Ai.OpenAIAPIKey
	default:
		return cfg.Ai.GeminiAPIKey
	}
}
