package push

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-notification/internal/domain"
)

func testPayload(id uint64) Payload {
	return Payload{
		Notification: domain.Notification{
			ID:     id,
			Type:   domain.EventTypeLeaveRequested,
			Count:  1,
			Status: domain.NotificationStatusUnread,
		},
		Message: "E1 requested leave",
	}
}

func TestRegistry_PushFansOutToAllConnections(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	t.Cleanup(registry.Close)

	// 同一主体开两个标签页
	conn1 := registry.Register(domain.ReceiverTypeAdmin, "9")
	conn2 := registry.Register(domain.ReceiverTypeAdmin, "9")

	delivered, dropped := registry.Push(domain.ReceiverTypeAdmin, "9", testPayload(1))
	assert.Equal(t, 2, delivered)
	assert.Equal(t, 0, dropped)

	p1 := <-conn1.C()
	p2 := <-conn2.C()
	assert.Equal(t, uint64(1), p1.Notification.ID)
	assert.Equal(t, uint64(1), p2.Notification.ID)
}

func TestRegistry_PushToOfflineSubjectIsNoop(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	t.Cleanup(registry.Close)

	delivered, dropped := registry.Push(domain.ReceiverTypeEmployee, "42", testPayload(1))
	assert.Equal(t, 0, delivered)
	assert.Equal(t, 0, dropped)
}

func TestRegistry_PushIsolatesSubjects(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	t.Cleanup(registry.Close)

	connAdmin := registry.Register(domain.ReceiverTypeAdmin, "9")
	// 同ID不同类型是不同主体
	connEmployee := registry.Register(domain.ReceiverTypeEmployee, "9")

	delivered, _ := registry.Push(domain.ReceiverTypeAdmin, "9", testPayload(7))
	require.Equal(t, 1, delivered)

	assert.Len(t, connAdmin.C(), 1)
	assert.Len(t, connEmployee.C(), 0)
}

func TestRegistry_SlowConnectionDropsInsteadOfBlocking(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	t.Cleanup(registry.Close)

	conn := registry.Register(domain.ReceiverTypeAdmin, "9")

	// 打满缓冲，之后的推送应当被丢弃而不是阻塞
	for i := 0; i < defaultBufferSize; i++ {
		delivered, dropped := registry.Push(domain.ReceiverTypeAdmin, "9", testPayload(uint64(i)))
		require.Equal(t, 1, delivered)
		require.Equal(t, 0, dropped)
	}

	delivered, dropped := registry.Push(domain.ReceiverTypeAdmin, "9", testPayload(999))
	assert.Equal(t, 0, delivered)
	assert.Equal(t, 1, dropped)
	assert.Len(t, conn.C(), defaultBufferSize)
}

func TestRegistry_DeregisterClosesChannel(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	t.Cleanup(registry.Close)

	conn := registry.Register(domain.ReceiverTypeAdmin, "9")
	registry.Deregister(conn)

	_, open := <-conn.C()
	assert.False(t, open)

	// 注销之后推送回到无人在线的静默路径
	delivered, dropped := registry.Push(domain.ReceiverTypeAdmin, "9", testPayload(1))
	assert.Equal(t, 0, delivered)
	assert.Equal(t, 0, dropped)

	// 重复注销是无操作
	registry.Deregister(conn)
}

func TestRegistry_RegisterAfterCloseReturnsClosedConn(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Close()

	conn := registry.Register(domain.ReceiverTypeAdmin, "9")
	_, open := <-conn.C()
	assert.False(t, open)
}
