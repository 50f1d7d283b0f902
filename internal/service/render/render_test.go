package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hr-notification/internal/domain"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		notification domain.Notification
		want         string
	}{
		{
			name: "单条且触发者可用",
			notification: domain.Notification{
				Type:   domain.EventTypeLeaveRequested,
				Actors: []string{"E1"},
				Count:  1,
			},
			want: "E1 requested leave",
		},
		{
			name: "单条但触发者不可用",
			notification: domain.Notification{
				Type:  domain.EventTypeLeaveRequested,
				Count: 1,
			},
			want: "New leave request submitted",
		},
		{
			name: "多条聚合用复数措辞",
			notification: domain.Notification{
				Type:   domain.EventTypeLeaveRequested,
				Actors: []string{"E1", "E2"},
				Count:  3,
			},
			want: "3 new leave requests submitted",
		},
		{
			name: "审批结果与触发者无关",
			notification: domain.Notification{
				Type:   domain.EventTypeTicketApproved,
				Actors: []string{"A1"},
				Count:  1,
			},
			want: "Your ticket has been approved",
		},
		{
			name: "未注册类型兜底",
			notification: domain.Notification{
				Type:   "PAYROLL_ADJUSTED",
				Actors: []string{"E1"},
				Count:  1,
			},
			want: "payroll adjusted",
		},
		{
			name:         "零值通知也不会panic",
			notification: domain.Notification{},
			want:         "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Render(tt.notification))
		})
	}
}
