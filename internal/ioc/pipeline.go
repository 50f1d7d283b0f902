package ioc

import (
	"time"

	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"

	"hr-notification/internal/event/domainevent"
	"hr-notification/internal/pkg/idempotent"
	"hr-notification/internal/pkg/idgenerator"
	"hr-notification/internal/repository"
	"hr-notification/internal/repository/cache/local"
	redicache "hr-notification/internal/repository/cache/redis"
	"hr-notification/internal/repository/dao"
	"hr-notification/internal/service/bus"
	"hr-notification/internal/service/orchestrator"
	"hr-notification/internal/service/push"
	"hr-notification/internal/service/rule"
)

const idempotencyExpiry = 24 * time.Hour

func InitIDGenerator() *idgenerator.Generator {
	return idgenerator.NewGenerator(econf.GetInt64("node.id"))
}

func InitEventRepository(db *egorm.Component) repository.EventRepository {
	return repository.NewEventRepository(dao.NewEventDAO(db))
}

func InitNotificationRepository(db *egorm.Component, client redis.Cmdable, idGen *idgenerator.Generator) repository.NotificationRepository {
	return repository.NewNotificationRepository(
		dao.NewNotificationDAO(db),
		redicache.NewUnreadCountCache(client),
		idGen,
	)
}

func InitDirectoryRepository(db *egorm.Component) repository.DirectoryRepository {
	return repository.NewDirectoryRepository(dao.NewEmployeeDAO(db), local.NewCache())
}

func InitPushGateway() push.Gateway {
	return push.NewMetricsGateway(push.NewRegistry())
}

func InitOrchestrator(directory repository.DirectoryRepository,
	repo repository.NotificationRepository,
	gateway push.Gateway,
) *orchestrator.Orchestrator {
	return orchestrator.NewOrchestrator(rule.NewDefaultRegistry(directory), repo, gateway)
}

// InitEventBus 组装事件总线。
// pipeline.mode 为 kafka 时发布方只投递消息，编排在消费者侧执行；
// 默认内联模式，发布和编排同进程完成。
func InitEventBus(eventRepo repository.EventRepository,
	orch *orchestrator.Orchestrator,
	idGen *idgenerator.Generator,
) bus.EventBus {
	var handler bus.Handler = orch
	if econf.GetString("pipeline.mode") == "kafka" {
		handler = domainevent.NewProducer(InitKafkaProducer())
	}
	return bus.NewTracingEventBus(bus.NewEventBus(eventRepo, handler, idGen))
}

// InitEventConsumer kafka模式下的消费者任务，内联模式返回nil
func InitEventConsumer(orch *orchestrator.Orchestrator, client redis.Cmdable) *domainevent.EventConsumer {
	if econf.GetString("pipeline.mode") != "kafka" {
		return nil
	}
	return domainevent.NewEventConsumer(
		InitKafkaConsumer(),
		orch,
		idempotent.NewRedisIdempotencyService(client, idempotencyExpiry),
	)
}
