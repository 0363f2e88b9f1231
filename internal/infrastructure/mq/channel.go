package mq

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"campus_club_server/pkg/constants"
)

// ChannelEventBus 进程内事件总线
// 单机部署和测试时替代 Kafka，语义同样是尽力而为
type ChannelEventBus struct {
	events chan Event
	mu     sync.RWMutex
	closed bool
}

// NewChannelEventBus 创建进程内事件总线
func NewChannelEventBus() *ChannelEventBus {
	return &ChannelEventBus{
		events: make(chan Event, constants.CHANNEL_SIZE),
	}
}

// Publish 非阻塞发布，通道满时丢弃并告警
// 关闭后的发布同样丢弃，不会向已关闭的通道写入
func (c *ChannelEventBus) Publish(topic string, payload map[string]any) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		zap.L().Warn("publish on closed event bus, dropping event", zap.String("topic", topic))
		return
	}
	event := NewEvent(topic, payload)
	select {
	case c.events <- event:
	default:
		zap.L().Warn("event channel full, dropping event",
			zap.String("topic", topic),
			zap.String("eventId", event.EventId),
		)
	}
}

// Consume 阻塞消费事件直到 ctx 取消或总线关闭
func (c *ChannelEventBus) Consume(ctx context.Context, handler EventHandler) error {
	for {
		select {
		case event, ok := <-c.events:
			if !ok {
				return nil
			}
			handler(ctx, event)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close 关闭总线，未消费的事件被丢弃，重复关闭无副作用
func (c *ChannelEventBus) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	close(c.events)
	return nil
}
