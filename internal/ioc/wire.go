package ioc

import (
	notificationhdl "hr-notification/internal/handler/notification"
	streamhdl "hr-notification/internal/handler/stream"
	notificationsvc "hr-notification/internal/service/notification"
)

// InitApp 手工组装整个应用
func InitApp() *App {
	db := InitDB()
	redisClient := InitRedis()
	idGen := InitIDGenerator()

	eventRepo := InitEventRepository(db)
	notificationRepo := InitNotificationRepository(db, redisClient, idGen)
	directoryRepo := InitDirectoryRepository(db)

	gateway := InitPushGateway()
	orch := InitOrchestrator(directoryRepo, notificationRepo, gateway)
	eventBus := InitEventBus(eventRepo, orch, idGen)
	inboxSvc := notificationsvc.NewService(notificationRepo)

	webServer := InitWebServer(
		InitTokenService(),
		notificationhdl.NewHandler(eventBus, inboxSvc),
		streamhdl.NewHandler(gateway),
	)

	return &App{
		WebServer: webServer,
		Tasks:     InitTasks(InitEventConsumer(orch, redisClient)),
		Crons:     Crons(directoryRepo),
	}
}
