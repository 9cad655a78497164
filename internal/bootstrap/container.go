package bootstrap

import (
	"context"

	"lessonplan-review-be/internal/config"
	"lessonplan-review-be/internal/controller"
	"lessonplan-review-be/internal/handler"
	"lessonplan-review-be/internal/pkg/logger"
	"lessonplan-review-be/internal/repository/memory"
	"lessonplan-review-be/internal/repository/unitofwork"
	"lessonplan-review-be/internal/service"
	"lessonplan-review-be/internal/websocket"
	pktNats "lessonplan-review-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SessionController  controller.ISessionController
	SourceController   controller.ISourceController
	ChatController     controller.IChatController
	NoteController     controller.INoteController
	ScoreController    controller.IScoreController
	GenerateController controller.IGenerateController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub

	Sessions *memory.SessionRepository
	Logger   logger.ILogger

	pubSub  *gochannel.GoChannel
	natsPub *pktNats.Publisher
	rdb     *redis.Client
}

// NewContainer wires the application. db may be nil, and NATS and Redis
// are skipped when their URLs are empty or unreachable.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) *Container {
	// 1. Core Facades
	var uowFactory unitofwork.RepositoryFactory
	if db != nil {
		uowFactory = unitofwork.NewRepositoryFactory(db)
	} else {
		sysLogger.Warn("Bootstrap", "No database configured, archive runs in log-and-discard mode", nil)
	}

	sessionRepo := memory.NewSessionRepository(cfg.Session.TTL, cfg.Session.CleanupInterval)

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)

	// 3. Infrastructure
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		pub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			sysLogger.Warn("Bootstrap", "Failed to connect to NATS Publisher", map[string]interface{}{"error": err.Error()})
		} else {
			natsPub = pub
		}
	}

	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err != nil {
			sysLogger.Warn("Bootstrap", "Failed to connect to Redis, push stays local", map[string]interface{}{"error": err.Error()})
			client.Close()
		} else {
			rdb = client
		}
	}

	// WebSocket Hub
	wsLogger := sysLogger
	if cfg.App.WsLogFilePath != "" {
		wsLogger = logger.NewIsolatedLogger(cfg.App.WsLogFilePath)
	}
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run(ctx)

	// 4. Services
	notifier := service.NewNotificationService(wsHub, wsLogger) // Hub implements NotificationDelivery
	publisher := service.NewPublisherService(cfg.Events.TopicName, pubSub, natsPub, sysLogger)
	archive := service.NewArchiveService(uowFactory, sysLogger)
	consumer := service.NewConsumerService(pubSub, cfg.Events.TopicName, archive, sysLogger)

	sessionService := service.NewSessionService(sessionRepo, cfg.Session, notifier, publisher, sysLogger)
	sourceService := service.NewSourceService(sessionRepo, notifier, publisher, sysLogger)
	chatService := service.NewChatService(sessionRepo, notifier, publisher, sysLogger)
	noteService := service.NewNoteService(sessionRepo, notifier, publisher, sysLogger)
	scoreService := service.NewScoreService(sessionRepo, notifier, publisher, archive, sysLogger)
	generateService := service.NewGenerateService(sessionRepo, notifier, publisher, sysLogger)

	// 5. Controllers
	return &Container{
		SessionController:   controller.NewSessionController(sessionService),
		SourceController:    controller.NewSourceController(sourceService),
		ChatController:      controller.NewChatController(chatService),
		NoteController:      controller.NewNoteController(noteService),
		ScoreController:     controller.NewScoreController(scoreService),
		GenerateController:  controller.NewGenerateController(generateService),
		ConsumerService:     consumer,
		NotificationHandler: handler.NewNotificationHandler(sessionRepo, wsHub, cfg.Session.JwtSecret, wsLogger),
		WebSocketHub:        wsHub,
		Sessions:            sessionRepo,
		Logger:              sysLogger,
		pubSub:              pubSub,
		natsPub:             natsPub,
		rdb:                 rdb,
	}
}

// Close releases the bus and external connections. The hub stops with
// the context passed to NewContainer.
func (c *Container) Close() {
	if err := c.pubSub.Close(); err != nil {
		c.Logger.Warn("Bootstrap", "Failed to close event bus", map[string]interface{}{"error": err.Error()})
	}
	c.natsPub.Close()
	if c.rdb != nil {
		c.rdb.Close()
	}
}
