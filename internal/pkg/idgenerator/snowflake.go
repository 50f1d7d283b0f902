package idgenerator

import (
	"sync"
	"time"
)

const (
	nodeBits     = 10
	sequenceBits = 12
	nodeMax      = (1 << nodeBits) - 1
	sequenceMask = (1 << sequenceBits) - 1

	// 2024-01-01 00:00:00 UTC，毫秒
	epoch int64 = 1704067200000
)

// Generator 雪花算法ID生成器：时间戳 | 节点 | 序列号
type Generator struct {
	mu       sync.Mutex
	node     int64
	lastTime int64
	sequence int64
}

func NewGenerator(node int64) *Generator {
	return &Generator{
		node: node & nodeMax,
	}
}

// NextID 生成单调递增的唯一ID。同一毫秒内靠序列号区分，
// 序列号用完时自旋到下一毫秒。
func (g *Generator) NextID() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now().UnixMilli()
	if now == g.lastTime {
		g.sequence = (g.sequence + 1) & sequenceMask
		if g.sequence == 0 {
			for now <= g.lastTime {
				now = time.Now().UnixMilli()
			}
		}
	} else {
		g.sequence = 0
	}
	g.lastTime = now

	return uint64((now-epoch)<<(nodeBits+sequenceBits) | g.node<<sequenceBits | g.sequence)
}

// ExtractSequence 从ID中提取序列号，测试用
func ExtractSequence(id uint64) int64 {
	return int64(id) & sequenceMask
}

// ExtractNode 从ID中提取节点号
func ExtractNode(id uint64) int64 {
	return (int64(id) >> sequenceBits) & nodeMax
}
