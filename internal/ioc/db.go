package ioc

import (
	"context"
	"database/sql"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ego-component/egorm"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gotomicro/ego/core/econf"

	"hr-notification/internal/repository/dao"
)

func InitDB() *egorm.Component {
	WaitForDBSetup(econf.GetStringMapString("mysql")["dsn"])
	db := egorm.Load("mysql").Build()
	if err := dao.InitTables(db); err != nil {
		panic(err)
	}
	return db
}

func WaitForDBSetup(dsn string) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		panic(err)
	}
	if err := ping(sqlDB); err != nil {
		panic(err)
	}
}

func ping(sqlDB *sql.DB) error {
	const maxInterval = 10 * time.Second
	const maxRetries = 10
	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, maxInterval, maxRetries)
	if err != nil {
		return err
	}

	const timeout = 5 * time.Second
	for {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err = sqlDB.PingContext(ctx)
		cancel()
		if err == nil {
			break
		}
		next, ok := strategy.Next()
		if !ok {
			panic("Ping DB 重试失败......")
		}
		time.Sleep(next)
	}
	return nil
}
