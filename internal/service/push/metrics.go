package push

import (
	"github.com/prometheus/client_golang/prometheus"

	"hr-notification/internal/domain"
)

// MetricsGateway 为推送网关添加指标收集的装饰器
type MetricsGateway struct {
	gateway          Gateway
	deliveredCounter *prometheus.CounterVec
	droppedCounter   *prometheus.CounterVec
	missedCounter    *prometheus.CounterVec
	connGauge        *prometheus.GaugeVec
}

func (m *MetricsGateway) Register(subjectType domain.ReceiverType, subjectID string) *Conn {
	conn := m.gateway.Register(subjectType, subjectID)
	m.connGauge.WithLabelValues(subjectType.String()).Inc()
	return conn
}

func (m *MetricsGateway) Deregister(conn *Conn) {
	m.gateway.Deregister(conn)
	m.connGauge.WithLabelValues(conn.subject.Type.String()).Dec()
}

func (m *MetricsGateway) Push(subjectType domain.ReceiverType, subjectID string, payload Payload) (delivered, dropped int) {
	delivered, dropped = m.gateway.Push(subjectType, subjectID, payload)

	label := subjectType.String()
	if delivered > 0 {
		m.deliveredCounter.WithLabelValues(label).Add(float64(delivered))
	}
	if dropped > 0 {
		m.droppedCounter.WithLabelValues(label).Add(float64(dropped))
	}
	if delivered == 0 && dropped == 0 {
		// 不在线，错过实时推送
		m.missedCounter.WithLabelValues(label).Inc()
	}
	return delivered, dropped
}

// NewMetricsGateway 创建带指标收集的推送网关
func NewMetricsGateway(gateway Gateway) *MetricsGateway {
	deliveredCounter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hr_notification",
		Subsystem: "push",
		Name:      "delivered_total",
		Help:      "实时推送成功投递的连接次数",
	}, []string{"subject_type"})

	droppedCounter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hr_notification",
		Subsystem: "push",
		Name:      "dropped_total",
		Help:      "因客户端消费过慢被丢弃的推送次数",
	}, []string{"subject_type"})

	missedCounter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hr_notification",
		Subsystem: "push",
		Name:      "missed_total",
		Help:      "推送时主体不在线的次数",
	}, []string{"subject_type"})

	connGauge := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "hr_notification",
		Subsystem: "push",
		Name:      "connections",
		Help:      "当前在线连接数",
	}, []string{"subject_type"})

	prometheus.MustRegister(deliveredCounter, droppedCounter, missedCounter, connGauge)

	return &MetricsGateway{
		gateway:          gateway,
		deliveredCounter: deliveredCounter,
		droppedCounter:   droppedCounter,
		missedCounter:    missedCounter,
		connGauge:        connGauge,
	}
}
