package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"

	"hr-notification/internal/errs"
)

type eventDAO struct {
	db *egorm.Component
}

// Create 写入事件审计记录。Ctime 缺省时补当前时间。
func (dao *eventDAO) Create(ctx context.Context, data Event) (Event, error) {
	if data.Ctime == 0 {
		data.Ctime = time.Now().UnixMilli()
	}
	if data.Metadata == "" {
		data.Metadata = "{}"
	}
	err := dao.db.WithContext(ctx).Create(&data).Error
	if err != nil {
		return Event{}, fmt.Errorf("写入事件审计记录失败: id=%d %w", data.ID, err)
	}
	return data, nil
}

func (dao *eventDAO) GetByID(ctx context.Context, id uint64) (Event, error) {
	var evt Event
	err := dao.db.WithContext(ctx).First(&evt, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Event{}, fmt.Errorf("%w: id=%d", errs.ErrEventNotFound, id)
		}
		return Event{}, err
	}
	return evt, nil
}

// NewEventDAO 创建事件DAO实例
func NewEventDAO(db *egorm.Component) EventDAO {
	return &eventDAO{db: db}
}

// Event 领域事件审计表，只插入，不更新不删除
type Event struct {
	ID         uint64 `gorm:"primaryKey;comment:'雪花算法ID'"`
	Type       string `gorm:"type:VARCHAR(64);NOT NULL;index:idx_type_target,priority:1;comment:'事件类型'"`
	ActorID    string `gorm:"type:VARCHAR(64);NOT NULL;comment:'触发者ID'"`
	TargetID   string `gorm:"type:VARCHAR(64);NOT NULL;index:idx_type_target,priority:2;comment:'业务对象ID'"`
	TargetType string `gorm:"type:VARCHAR(32);NOT NULL;comment:'业务对象类型'"`
	Metadata   string `gorm:"type:JSON;NOT NULL;comment:'透传参数，JSON对象'"`
	Ctime      int64
}

func (e *Event) TableName() string {
	return "domain_event"
}
