package bootstrap

import (
	"context"
	"log"

	"github.com/237films-bot/subtrack/internal/config"
	"github.com/237films-bot/subtrack/internal/controller"
	"github.com/237films-bot/subtrack/internal/handler"
	"github.com/237films-bot/subtrack/internal/pkg/logger"
	"github.com/237films-bot/subtrack/internal/pkg/mailer"
	"github.com/237films-bot/subtrack/internal/pkg/serverutils"
	"github.com/237films-bot/subtrack/internal/presets"
	"github.com/237films-bot/subtrack/internal/repository/memory"
	"github.com/237films-bot/subtrack/internal/repository/unitofwork"
	"github.com/237films-bot/subtrack/internal/service"
	"github.com/237films-bot/subtrack/internal/websocket"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	SubscriptionController controller.ISubscriptionController
	CreditController       controller.ICreditController
	StatsController        controller.IStatsController

	// Background services (exposed for main.go to run)
	NotifierService service.INotifierService
	ReminderService service.IReminderService

	// WebSockets
	WsHandler    *handler.WsHandler
	WebSocketHub *websocket.Hub

	Logger logger.ILogger
}

// NewContainer wires the whole application. db may be nil when the memory
// storage driver is selected.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 1. Storage driver
	var uowFactory unitofwork.RepositoryFactory
	switch cfg.App.StorageDriver {
	case "memory":
		uowFactory = memory.NewRepositoryFactory(memory.NewStore())
		log.Printf("[INFO] Using storage driver: MEMORY (data is lost on restart)")

		// No cmd/seed run for this driver, so load the preset catalog here.
		presetRepo := uowFactory.NewUnitOfWork(context.Background()).Presets()
		for _, preset := range presets.Defaults() {
			p := preset
			if err := presetRepo.Upsert(context.Background(), &p); err != nil {
				log.Printf("[WARN] Failed to load preset '%s': %v", p.Name, err)
			}
		}
	default:
		if db == nil {
			log.Fatalf("[FATAL] postgres storage driver selected but no database connection")
		}
		uowFactory = unitofwork.NewRepositoryFactory(db)
		log.Printf("[INFO] Using storage driver: POSTGRES")
	}

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.SMTP.ReminderTo,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Redis (optional, only for multi-instance websocket fanout)
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// 4. WebSocket hub
	wsHub := websocket.NewHub(rdb, sysLogger)
	go wsHub.Run()

	// 5. Services
	subscriptionService := service.NewSubscriptionService(uowFactory, pubSub, sysLogger)
	creditService := service.NewCreditService(uowFactory, pubSub, sysLogger)
	statsService := service.NewStatsService(uowFactory)

	authService, err := service.NewAuthService(cfg.Auth, sysLogger)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize auth: %v", err)
	}

	notifierService := service.NewNotifierService(pubSub, wsHub, emailService, sysLogger)
	reminderService := service.NewReminderService(
		uowFactory,
		subscriptionService,
		pubSub,
		cfg.Reminder.ThresholdDays,
		cfg.Reminder.IntervalHours,
		sysLogger,
	)

	// 6. Controllers
	jwtMiddleware := serverutils.NewJwtMiddleware(cfg.Auth.JWTSecret)

	return &Container{
		AuthController:         controller.NewAuthController(authService),
		SubscriptionController: controller.NewSubscriptionController(subscriptionService, jwtMiddleware),
		CreditController:       controller.NewCreditController(creditService, jwtMiddleware),
		StatsController:        controller.NewStatsController(statsService, jwtMiddleware),
		NotifierService:        notifierService,
		ReminderService:        reminderService,
		WsHandler:              handler.NewWsHandler(wsHub, cfg.Auth.JWTSecret, sysLogger),
		WebSocketHub:           wsHub,
		Logger:                 sysLogger,
	}
}
