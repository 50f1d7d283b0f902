package push

import (
	"sync"

	"github.com/gotomicro/ego/core/elog"

	"hr-notification/internal/domain"
)

const defaultBufferSize = 16

// Conn 一条在线连接。消息经由带缓冲的通道交给持有连接的goroutine，
// 缓冲打满说明客户端消费太慢，直接丢弃本条，不阻塞事件处理。
type Conn struct {
	subject   subjectKey
	ch        chan Payload
	closeOnce sync.Once
}

// C 读取推送消息的通道。连接注销后通道被关闭。
func (c *Conn) C() <-chan Payload {
	return c.ch
}

func (c *Conn) close() {
	c.closeOnce.Do(func() {
		close(c.ch)
	})
}

// send 非阻塞投递，满了返回false
func (c *Conn) send(payload Payload) bool {
	select {
	case c.ch <- payload:
		return true
	default:
		return false
	}
}

var _ Gateway = (*Registry)(nil)

// Registry 进程内连接注册表。
// 连接的建立和注销走写锁，推送只读，读多写少。
type Registry struct {
	mu         sync.RWMutex
	conns      map[subjectKey]map[*Conn]struct{}
	bufferSize int
	closed     bool
	logger     *elog.Component
}

func (r *Registry) Register(subjectType domain.ReceiverType, subjectID string) *Conn {
	key := subjectKey{Type: subjectType, ID: subjectID}
	conn := &Conn{
		subject: key,
		ch:      make(chan Payload, r.bufferSize),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		conn.close()
		return conn
	}

	if _, ok := r.conns[key]; !ok {
		r.conns[key] = make(map[*Conn]struct{})
	}
	r.conns[key][conn] = struct{}{}
	return conn
}

func (r *Registry) Deregister(conn *Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if set, ok := r.conns[conn.subject]; ok {
		delete(set, conn)
		if len(set) == 0 {
			delete(r.conns, conn.subject)
		}
	}
	conn.close()
}

func (r *Registry) Push(subjectType domain.ReceiverType, subjectID string, payload Payload) (delivered, dropped int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return 0, 0
	}

	set, ok := r.conns[subjectKey{Type: subjectType, ID: subjectID}]
	if !ok {
		// 不在线是常态，持久化的通知行兜底
		return 0, 0
	}

	for conn := range set {
		if conn.send(payload) {
			delivered++
		} else {
			dropped++
		}
	}
	return delivered, dropped
}

// Close 关闭注册表和全部连接，进程退出时调用
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true
	for _, set := range r.conns {
		for conn := range set {
			conn.close()
		}
	}
	clear(r.conns)
}

// NewRegistry 创建连接注册表
func NewRegistry() *Registry {
	return &Registry{
		conns:      make(map[subjectKey]map[*Conn]struct{}),
		bufferSize: defaultBufferSize,
		logger:     elog.DefaultLogger,
	}
}
