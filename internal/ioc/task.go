package ioc

import (
	"hr-notification/internal/event/domainevent"
)

func InitTasks(consumer *domainevent.EventConsumer) []Task {
	if consumer == nil {
		return nil
	}
	return []Task{
		consumer,
	}
}
