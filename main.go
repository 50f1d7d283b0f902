package main

import (
	"context"

	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"

	"hr-notification/internal/ioc"
)

func main() {
	app := ego.New()

	notificationApp := ioc.InitApp()
	notificationApp.StartTasks(context.Background())

	if err := app.
		Serve(notificationApp.WebServer).
		Cron(notificationApp.Crons...).
		Run(); err != nil {
		elog.Panic("启动失败", elog.FieldErr(err))
	}
}
