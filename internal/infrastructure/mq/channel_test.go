package mq

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestChannelEventBusDeliversEvents(t *testing.T) {
	bus := NewChannelEventBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	received := make([]Event, 0, 2)
	done := make(chan struct{})

	go func() {
		_ = bus.Consume(ctx, func(ctx context.Context, event Event) {
			mu.Lock()
			received = append(received, event)
			if len(received) == 2 {
				close(done)
			}
			mu.Unlock()
		})
	}()

	bus.Publish("club-created", map[string]any{"clubId": uint(1), "name": "Chess Club"})
	bus.Publish("club-member-joined", map[string]any{"clubId": uint(1), "userId": "U_1"})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for events")
	}

	mu.Lock()
	defer mu.Unlock()
	if received[0].Topic != "club-created" || received[1].Topic != "club-member-joined" {
		t.Fatalf("unexpected topics: %s, %s", received[0].Topic, received[1].Topic)
	}
	if received[0].EventId == "" || received[0].Timestamp == "" {
		t.Fatalf("event envelope missing id or timestamp: %+v", received[0])
	}
	if name, ok := received[0].Payload["name"].(string); !ok || name != "Chess Club" {
		t.Fatalf("unexpected payload: %+v", received[0].Payload)
	}
}

func TestChannelEventBusDropsWhenFull(t *testing.T) {
	bus := NewChannelEventBus()
	defer bus.Close()

	// 无消费者时填满通道，后续发布不阻塞
	for i := 0; i < 200; i++ {
		bus.Publish("club-updated", map[string]any{"clubId": uint(i)})
	}
}

func TestChannelEventBusConsumeStopsOnCancel(t *testing.T) {
	bus := NewChannelEventBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- bus.Consume(ctx, func(ctx context.Context, event Event) {})
	}()

	cancel()
	select {
	case err := <-errCh:
		if err != context.Canceled {
			t.Fatalf("Consume returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Consume did not stop after cancel")
	}
}

func TestChannelEventBusPublishAfterClose(t *testing.T) {
	bus := NewChannelEventBus()
	if err := bus.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	// 关闭后发布只丢弃，不触发向已关闭通道写入
	bus.Publish("club-updated", map[string]any{"clubId": uint(1)})
	if err := bus.Close(); err != nil {
		t.Fatalf("repeated Close: %v", err)
	}
}
