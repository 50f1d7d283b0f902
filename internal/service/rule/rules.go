package rule

import (
	"context"
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"

	"hr-notification/internal/domain"
	"hr-notification/internal/repository"
)

// privilegedStaffRule "多数人发起、少数人拍板"：
// 请假申请、工单创建、考勤异常这类事件路由给全体在职拍板人
type privilegedStaffRule struct {
	directory repository.DirectoryRepository
	logger    *elog.Component
}

func (r *privilegedStaffRule) ResolveReceivers(ctx context.Context, evt domain.DomainEvent) ([]domain.Receiver, error) {
	employees, err := r.directory.FindPrivilegedActive(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(employees, func(_ int, src domain.Employee) domain.Receiver {
		return domain.Receiver{
			ID:   strconv.FormatInt(src.ID, 10),
			Type: domain.ReceiverTypeAdmin,
		}
	}), nil
}

func (r *privilegedStaffRule) AggregationKey(evt domain.DomainEvent, receiver domain.Receiver) string {
	return aggregationKey(evt, receiver)
}

// NewPrivilegedStaffRule 创建拍板人广播规则
func NewPrivilegedStaffRule(directory repository.DirectoryRepository) NotificationRule {
	return &privilegedStaffRule{
		directory: directory,
		logger:    elog.DefaultLogger,
	}
}

// namedEmployeeRule "一人拍板、一人被告知"：
// 审批结果类事件只路由给元数据里点名的那一个员工。
// 元数据缺失或者非法时解析为空列表，静默跳过。
type namedEmployeeRule struct {
	metadataKey string
	logger      *elog.Component
}

func (r *namedEmployeeRule) ResolveReceivers(_ context.Context, evt domain.DomainEvent) ([]domain.Receiver, error) {
	employeeID, ok := evt.Metadata[r.metadataKey]
	if !ok || employeeID == "" {
		r.logger.Warn("事件元数据缺少接收员工，跳过",
			elog.String("eventType", evt.Type),
			elog.String("targetId", evt.TargetID),
			elog.String("metadataKey", r.metadataKey))
		return []domain.Receiver{}, nil
	}
	return []domain.Receiver{
		{ID: employeeID, Type: domain.ReceiverTypeEmployee},
	}, nil
}

func (r *namedEmployeeRule) AggregationKey(evt domain.DomainEvent, receiver domain.Receiver) string {
	return aggregationKey(evt, receiver)
}

// NewNamedEmployeeRule 创建点名员工规则
func NewNamedEmployeeRule() NotificationRule {
	return &namedEmployeeRule{
		metadataKey: domain.MetadataKeyEmployeeID,
		logger:      elog.DefaultLogger,
	}
}
