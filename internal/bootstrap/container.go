package bootstrap

import (
	"context"
	"log"
	"os"
	"time"

	"ai-assistant-be/internal/config"
	"ai-assistant-be/internal/controller"
	"ai-assistant-be/internal/handler"
	"ai-assistant-be/internal/pkg/logger"
	"ai-assistant-be/internal/pkg/mailer"
	"ai-assistant-be/internal/repository/memory"
	"ai-assistant-be/internal/repository/unitofwork"
	"ai-assistant-be/internal/service"
	"ai-assistant-be/internal/websocket"
	"ai-assistant-be/pkg/agent"
	"ai-assistant-be/pkg/assistant"
	"ai-assistant-be/pkg/llm/factory"
	pktNats "ai-assistant-be/pkg/nats"
	"ai-assistant-be/pkg/websearch"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Classification results are safe to memoize for a while; the classifier
// runs at temperature zero.
const classificationCacheTTL = 10 * time.Minute

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	ChatController       controller.IChatController
	TaskController       controller.ITaskController
	EventController      controller.IEventController
	EmailController      controller.IEmailController
	SuggestionController controller.ISuggestionController

	// Background services (exposed for main.go to run)
	DispatcherService service.IDispatcherService
	RelayService      *service.RelayService
	ReviewScheduler   *assistant.ReviewScheduler

	// WebSockets
	PushHandler  *handler.PushHandler
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	engineLogger := log.New(os.Stdout, "[assistant] ", log.LstdFlags)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.Review.EmailFrom,
		cfg.SMTP.SenderName,
	)

	// 2. Event buses
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
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

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/push.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. LLM provider and outbound clients
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.BaseURL,
		cfg.Keys.HuggingFace,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	agentClient := agent.NewClient(cfg.App.AgentBaseURL)
	serpClient := websearch.NewSerpAPIClient(cfg.Keys.SerpAPI)

	// 4. Engine ports
	userDirectory := service.NewUserDirectory(uowFactory)
	taskStore := service.NewTaskStore(uowFactory, natsPub, sysLogger)
	emailStore := service.NewEmailStore(uowFactory)
	eventStore := service.NewEventStore(uowFactory, natsPub, sysLogger)
	suggestionStore := service.NewSuggestionStore(uowFactory, natsPub, sysLogger)
	fileFinder := service.NewFileFinder(agentClient)
	webSearcher := service.NewWebSearcher(serpClient)

	// 5. Engine
	classificationCache := memory.NewClassificationCache(classificationCacheTTL)
	classifier := assistant.NewClassifier(llmProvider, classificationCache, engineLogger)
	router := assistant.NewRouter(taskStore, eventStore, emailStore, fileFinder, webSearcher, engineLogger)
	executor := assistant.NewExecutor(taskStore, eventStore, engineLogger)
	fallback := assistant.NewFallbackHandler(llmProvider, cfg.Ai.LLMModel, taskStore, emailStore, eventStore, executor, engineLogger)

	notifier := service.NewNotifierService(uowFactory, pubSub, emailService, cfg.Review.EmailNotification, sysLogger)
	reviewJob := assistant.NewReviewJob(userDirectory, taskStore, emailStore, eventStore, suggestionStore, llmProvider, notifier, engineLogger)
	reviewScheduler := assistant.NewReviewScheduler(reviewJob, cfg.Review.Interval, engineLogger)

	// 6. Services
	assistantService := service.NewAssistantService(uowFactory, classifier, router, fallback, sysLogger)
	taskService := service.NewTaskService(uowFactory, natsPub, sysLogger)
	eventService := service.NewEventService(uowFactory, natsPub, sysLogger)
	emailSvc := service.NewEmailService(uowFactory)
	suggestionService := service.NewSuggestionService(uowFactory)
	oauthService := service.NewOAuthService(uowFactory, cfg, sysLogger)
	userService := service.NewUserService(uowFactory)

	dispatcherService := service.NewDispatcherService(pubSub, wsHub)

	var relayService *service.RelayService
	if natsSub != nil {
		relayService = service.NewRelayService(natsSub, wsHub, sysLogger)
	}

	return &Container{
		AuthController:       controller.NewAuthController(oauthService, userService),
		ChatController:       controller.NewChatController(assistantService),
		TaskController:       controller.NewTaskController(taskService),
		EventController:      controller.NewEventController(eventService),
		EmailController:      controller.NewEmailController(emailSvc),
		SuggestionController: controller.NewSuggestionController(suggestionService),

		DispatcherService: dispatcherService,
		RelayService:      relayService,
		ReviewScheduler:   reviewScheduler,

		PushHandler:  handler.NewPushHandler(wsHub, wsLogger),
		WebSocketHub: wsHub,
	}
}
