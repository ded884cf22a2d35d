package bootstrap

import (
	"context"
	"log"

	"devzen-be/internal/config"
	"devzen-be/internal/controller"
	"devzen-be/internal/handler"
	"devzen-be/internal/pkg/logger"
	"devzen-be/internal/pkg/mailer"
	"devzen-be/internal/repository/memory"
	"devzen-be/internal/repository/unitofwork"
	"devzen-be/internal/service"
	"devzen-be/internal/websocket"
	"devzen-be/pkg/embedding"
	"devzen-be/pkg/llm/factory"

	pkgNats "devzen-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	OAuthController   controller.IOAuthController
	SpaceController   controller.ISpaceController
	ItemController    controller.IItemController
	AiController      controller.IAiController
	ToolsController   controller.IToolsController
	AppInfoController controller.IAppInfoController

	// Background services (exposed for main.go to run)
	EmbedConsumerService     service.IConsumerService
	SummarizeConsumerService service.IConsumerService

	// WebSockets & sync
	SyncHandler  *handler.SyncHandler
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	uowFactory := unitofwork.NewRepositoryFactory(db, sysLogger)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.App.ClientURL,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaEmbedModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbedModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiAPIKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GeminiAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pkgNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	wsLogger := logger.NewIsolatedLogger("logs/sync.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	spaceCache := memory.NewSpaceCache()

	// 5. Background pipeline
	embedPublisher := service.NewPublisherService(pubSub, cfg.Ai.EmbedTopic)
	summarizePublisher := service.NewPublisherService(pubSub, cfg.Ai.SummarizeTopic)

	embedConsumer := service.NewEmbedConsumerService(
		pubSub,
		cfg.Ai.EmbedTopic,
		uowFactory,
		embeddingProvider,
	)
	summarizeConsumer := service.NewSummarizeConsumerService(
		pubSub,
		cfg.Ai.SummarizeTopic,
		uowFactory,
		llmProvider,
		embedPublisher,
	)

	// 6. Services
	authService := service.NewAuthService(uowFactory, emailService)
	oauthService := service.NewOAuthService(uowFactory, cfg)

	spaceService := service.NewSpaceService(uowFactory, spaceCache, natsPub)
	itemService := service.NewItemService(uowFactory, embedPublisher, natsPub, spaceCache)
	aiService := service.NewAiService(
		uowFactory,
		llmProvider,
		embeddingProvider,
		embedPublisher,
		summarizePublisher,
		spaceCache,
		natsPub,
	)
	toolsService := service.NewToolsService(uowFactory, embedPublisher, summarizePublisher, natsPub)
	appInfoService := service.NewAppInfoService(uowFactory)

	// 7. Realtime sync
	if natsSub != nil {
		syncService := service.NewSyncService(natsSub, wsHub, wsLogger)
		if err := syncService.Start(); err != nil {
			log.Printf("[WARN] Failed to start sync service: %v", err)
		}
	}
	syncHandler := handler.NewSyncHandler(wsHub, wsLogger)

	return &Container{
		AuthController:    controller.NewAuthController(authService),
		OAuthController:   controller.NewOAuthController(oauthService),
		SpaceController:   controller.NewSpaceController(spaceService),
		ItemController:    controller.NewItemController(itemService),
		AiController:      controller.NewAiController(aiService),
		ToolsController:   controller.NewToolsController(toolsService),
		AppInfoController: controller.NewAppInfoController(appInfoService),

		EmbedConsumerService:     embedConsumer,
		SummarizeConsumerService: summarizeConsumer,

		SyncHandler:  syncHandler,
		WebSocketHub: wsHub,
	}
}
