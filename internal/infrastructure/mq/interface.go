// Package mq 提供领域事件总线
// 每个变更操作在持久化提交后发布一条事件，发布是 fire-and-forget：
// 发布失败只记日志，绝不回滚或阻塞主流程
// 投递语义为 at-most-once，跨主题无序，消费端需容忍重复与缺失
package mq

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event 领域事件
// Payload 携带受影响实体的 id 与变更字段，Timestamp 为 ISO-8601 格式
type Event struct {
	EventId   string         `json:"eventId"`
	Topic     string         `json:"topic"`
	Payload   map[string]any `json:"payload"`
	Timestamp string         `json:"timestamp"`
}

// NewEvent 构造一条事件，自动填充事件 ID 与时间戳
func NewEvent(topic string, payload map[string]any) Event {
	return Event{
		EventId:   uuid.NewString(),
		Topic:     topic,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// EventPublisher 事件发布接口
// Service 层依赖此接口而非具体实现（kafka 或进程内通道，由配置 messageMode 决定）
type EventPublisher interface {
	// Publish 异步发布一条事件，立即返回
	Publish(topic string, payload map[string]any)
	// Close 关闭发布端，释放底层资源
	Close() error
}

// EventHandler 事件处理函数
type EventHandler func(ctx context.Context, event Event)

// EventConsumer 事件消费接口
// 通知服务通过它订阅全部事件主题
type EventConsumer interface {
	// Consume 阻塞消费事件直到 ctx 取消
	Consume(ctx context.Context, handler EventHandler) error
	// Close 关闭消费端
	Close() error
}
