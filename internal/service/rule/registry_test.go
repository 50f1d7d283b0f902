package rule

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hr-notification/internal/domain"
	repomocks "hr-notification/internal/repository/mocks"
)

func TestDefaultRegistry_RuleLookup(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	registry := NewDefaultRegistry(repomocks.NewMockDirectoryRepository(ctrl))

	tests := []struct {
		eventType  string
		registered bool
	}{
		{eventType: domain.EventTypeLeaveRequested, registered: true},
		{eventType: domain.EventTypeLeaveApproved, registered: true},
		{eventType: domain.EventTypeLeaveRejected, registered: true},
		{eventType: domain.EventTypeTicketCreated, registered: true},
		{eventType: domain.EventTypeTicketApproved, registered: true},
		{eventType: domain.EventTypeTicketRejected, registered: true},
		{eventType: domain.EventTypeAttendanceMissed, registered: true},
		{eventType: "UNREGISTERED_TYPE", registered: false},
	}

	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			_, ok := registry.Rule(tt.eventType)
			assert.Equal(t, tt.registered, ok)
		})
	}
}

func TestPrivilegedStaffRule_ResolveReceivers(t *testing.T) {
	t.Parallel()

	evt := domain.DomainEvent{
		Type:       domain.EventTypeLeaveRequested,
		ActorID:    "101",
		TargetID:   "77",
		TargetType: "LEAVE",
	}

	t.Run("全体在职拍板人", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		directory := repomocks.NewMockDirectoryRepository(ctrl)
		directory.EXPECT().FindPrivilegedActive(gomock.Any()).Return([]domain.Employee{
			{ID: 9, Name: "A1", Role: domain.RoleAdmin, Status: domain.EmployeeStatusActive},
			{ID: 10, Name: "A2", Role: domain.RoleHR, Status: domain.EmployeeStatusActive},
		}, nil)

		receivers, err := NewPrivilegedStaffRule(directory).ResolveReceivers(t.Context(), evt)
		require.NoError(t, err)
		assert.Equal(t, []domain.Receiver{
			{ID: "9", Type: domain.ReceiverTypeAdmin},
			{ID: "10", Type: domain.ReceiverTypeAdmin},
		}, receivers)
	})

	t.Run("目录不可用时返回错误，由上层降级", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		directory := repomocks.NewMockDirectoryRepository(ctrl)
		directory.EXPECT().FindPrivilegedActive(gomock.Any()).Return(nil, errors.New("目录不可用"))

		_, err := NewPrivilegedStaffRule(directory).ResolveReceivers(t.Context(), evt)
		assert.Error(t, err)
	})

	t.Run("没有配置任何拍板人", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		directory := repomocks.NewMockDirectoryRepository(ctrl)
		directory.EXPECT().FindPrivilegedActive(gomock.Any()).Return([]domain.Employee{}, nil)

		receivers, err := NewPrivilegedStaffRule(directory).ResolveReceivers(t.Context(), evt)
		require.NoError(t, err)
		assert.Empty(t, receivers)
	})
}

func TestNamedEmployeeRule_ResolveReceivers(t *testing.T) {
	t.Parallel()

	rule := NewNamedEmployeeRule()

	t.Run("路由给元数据点名的员工", func(t *testing.T) {
		t.Parallel()
		receivers, err := rule.ResolveReceivers(t.Context(), domain.DomainEvent{
			Type:     domain.EventTypeTicketApproved,
			ActorID:  "9",
			TargetID: "5",
			Metadata: map[string]string{domain.MetadataKeyEmployeeID: "42"},
		})
		require.NoError(t, err)
		assert.Equal(t, []domain.Receiver{
			{ID: "42", Type: domain.ReceiverTypeEmployee},
		}, receivers)
	})

	t.Run("元数据缺失解析为空列表而不是错误", func(t *testing.T) {
		t.Parallel()
		receivers, err := rule.ResolveReceivers(t.Context(), domain.DomainEvent{
			Type:     domain.EventTypeTicketApproved,
			ActorID:  "9",
			TargetID: "5",
		})
		require.NoError(t, err)
		assert.Empty(t, receivers)
	})
}

func TestAggregationKey(t *testing.T) {
	t.Parallel()

	evt := domain.DomainEvent{
		Type:     domain.EventTypeLeaveRequested,
		TargetID: "77",
	}
	receiver := domain.Receiver{ID: "9", Type: domain.ReceiverTypeAdmin}

	key := aggregationKey(evt, receiver)
	assert.Equal(t, "ADMIN_9:LEAVE_REQUESTED:77", key)

	// 不同的对象不会合并到同一条通知
	evt2 := evt
	evt2.TargetID = "78"
	assert.NotEqual(t, key, aggregationKey(evt2, receiver))

	// 不同的接收者各自持有一条
	receiver2 := domain.Receiver{ID: "10", Type: domain.ReceiverTypeAdmin}
	assert.NotEqual(t, key, aggregationKey(evt, receiver2))
}
