package ioc

import (
	"github.com/gotomicro/ego/task/ecron"

	"hr-notification/internal/repository"
)

func Crons(directory repository.DirectoryRepository) []ecron.Ecron {
	c1 := ecron.Load("cron.reloadDirectoryCache").Build(ecron.WithJob(directory.LoadCache))
	return []ecron.Ecron{c1}
}
