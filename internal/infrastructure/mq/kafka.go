// Package mq 事件总线的 Kafka 实现
// 封装 kafka-go 的 Writer/Reader，主题名即事件名
package mq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	myconfig "campus_club_server/internal/config"
	"campus_club_server/pkg/constants"
)

// KafkaEventBus Kafka 事件总线
// 发布端共用一个 Writer，主题按消息设置；消费端按消费者组订阅全部事件主题
type KafkaEventBus struct {
	writer   *kafka.Writer
	reader   *kafka.Reader
	taskChan chan Event
	done     chan struct{}
}

// NewKafkaEventBus 创建并初始化 Kafka 事件总线
func NewKafkaEventBus() *KafkaEventBus {
	kafkaConfig := myconfig.GetConfig().KafkaConfig

	k := &KafkaEventBus{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(kafkaConfig.HostPort),
			Balancer:     &kafka.Hash{},
			WriteTimeout: kafkaConfig.Timeout * time.Second,
			// 通知是尽力而为的，不等待 broker 确认
			RequiredAcks:           kafka.RequireNone,
			AllowAutoTopicCreation: true,
		},
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        []string{kafkaConfig.HostPort},
			GroupTopics:    constants.EventTopics,
			GroupID:        kafkaConfig.GroupID,
			CommitInterval: kafkaConfig.Timeout * time.Second,
			StartOffset:    kafka.LastOffset,
		}),
		taskChan: make(chan Event, constants.CHANNEL_SIZE),
		done:     make(chan struct{}),
	}

	// 发布 Worker：串行消费发布任务，失败只记日志
	go k.publishWorker()

	return k
}

// Publish 异步发布一条事件，立即返回
// 通道满时丢弃并告警，发布失败不影响主流程
func (k *KafkaEventBus) Publish(topic string, payload map[string]any) {
	event := NewEvent(topic, payload)
	select {
	case k.taskChan <- event:
	default:
		zap.L().Warn("event channel full, dropping event",
			zap.String("topic", topic),
			zap.String("eventId", event.EventId),
		)
	}
}

// publishWorker 后台发布循环
func (k *KafkaEventBus) publishWorker() {
	defer func() {
		if rec := recover(); rec != nil {
			zap.L().Error("kafka publish worker panic", zap.Any("recover", rec))
			go k.publishWorker() // 重启
		}
	}()

	for {
		select {
		case event := <-k.taskChan:
			value, err := json.Marshal(event)
			if err != nil {
				zap.L().Error("marshal event error", zap.String("topic", event.Topic), zap.Error(err))
				continue
			}
			err = k.writer.WriteMessages(context.Background(), kafka.Message{
				Topic: event.Topic,
				Key:   []byte(event.EventId),
				Value: value,
			})
			if err != nil {
				zap.L().Error("publish event error", zap.String("topic", event.Topic), zap.Error(err))
			}
		case <-k.done:
			return
		}
	}
}

// Consume 阻塞消费事件直到 ctx 取消
func (k *KafkaEventBus) Consume(ctx context.Context, handler EventHandler) error {
	for {
		kafkaMessage, err := k.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			zap.L().Error("read event error", zap.Error(err))
			continue
		}

		var event Event
		if err := json.Unmarshal(kafkaMessage.Value, &event); err != nil {
			zap.L().Error("unmarshal event error",
				zap.String("topic", kafkaMessage.Topic),
				zap.Error(err),
			)
			continue
		}
		// 主题以消息所在 topic 为准
		event.Topic = kafkaMessage.Topic
		handler(ctx, event)
	}
}

// Close 关闭发布端与消费端
func (k *KafkaEventBus) Close() error {
	close(k.done)
	if err := k.writer.Close(); err != nil {
		zap.L().Error(err.Error())
	}
	if err := k.reader.Close(); err != nil {
		zap.L().Error(err.Error())
	}
	return nil
}
