package event

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shandysiswandi/csvboard/internal/dataset/entity"
)

type handlerFunc func(ctx context.Context, event entity.FileEvent) error

func (h handlerFunc) Handle(ctx context.Context, event entity.FileEvent) error {
	return h(ctx, event)
}

func TestConsumerRetriesAndIdempotent(t *testing.T) {
	bus := NewBus(10)

	var attempts int32
	done := make(chan struct{})
	handler := handlerFunc(func(ctx context.Context, event entity.FileEvent) error {
		n := atomic.AddInt32(&attempts, 1)
		if n < 3 {
			return errors.New("temporary failure")
		}
		select {
		case <-done:
		default:
			close(done)
		}
		return nil
	})

	consumer := NewConsumer(bus, handler, ConsumerConfig{
		Workers:     1,
		MaxRetries:  2,
		BaseBackoff: time.Millisecond,
	})
	consumer.Start()

	event := entity.FileEvent{ID: 7, Kind: entity.FileUploaded, Filename: "a.csv"}
	if err := bus.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish event: %v", err)
	}
	if err := bus.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish duplicate: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for handler")
	}

	if err := consumer.Stop(context.Background()); err != nil {
		t.Fatalf("stop consumer: %v", err)
	}

	if got := atomic.LoadInt32(&attempts); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestConsumerGivesUpAfterMaxRetries(t *testing.T) {
	bus := NewBus(1)

	var attempts int32
	handler := handlerFunc(func(context.Context, entity.FileEvent) error {
		atomic.AddInt32(&attempts, 1)
		return errors.New("broker down")
	})

	consumer := NewConsumer(bus, handler, ConsumerConfig{Workers: 1, MaxRetries: 1, BaseBackoff: time.Millisecond})
	consumer.Start()

	if err := bus.Publish(context.Background(), entity.FileEvent{ID: 1, Kind: entity.FileDeleted}); err != nil {
		t.Fatalf("publish event: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := consumer.Stop(ctx); err != nil {
		t.Fatalf("stop consumer: %v", err)
	}

	if got := atomic.LoadInt32(&attempts); got != 2 {
		t.Fatalf("expected 2 attempts, got %d", got)
	}
}

func TestBusPublishAfterClose(t *testing.T) {
	bus := NewBus(0)
	bus.Close()
	bus.Close()

	if err := bus.Publish(context.Background(), entity.FileEvent{}); !errors.Is(err, ErrBusClosed) {
		t.Fatalf("expected ErrBusClosed, got %v", err)
	}
}

func TestBusPublishHonorsContext(t *testing.T) {
	bus := NewBus(1)
	if err := bus.Publish(context.Background(), entity.FileEvent{ID: 1}); err != nil {
		t.Fatalf("publish event: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := bus.Publish(ctx, entity.FileEvent{ID: 2}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

type fakeCache struct {
	mu      sync.Mutex
	deleted []string
	err     error
}

func (f *fakeCache) Delete(_ context.Context, filename string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, filename)
	return f.err
}

type fakePublisher struct {
	ids  []string
	msgs []any
}

func (f *fakePublisher) PublishJSON(_ context.Context, id string, v any) error {
	f.ids = append(f.ids, id)
	f.msgs = append(f.msgs, v)
	return nil
}

func TestHandlers(t *testing.T) {
	cache := &fakeCache{}
	pub := &fakePublisher{}
	hs := Handlers{Logger{}, CacheInvalidator{Cache: cache}, Forwarder{Publisher: pub}}

	ctx := context.Background()
	if err := hs.Handle(ctx, entity.FileEvent{ID: 11, Kind: entity.FileUploaded, Filename: "a.csv"}); err != nil {
		t.Fatalf("handle upload: %v", err)
	}
	if err := hs.Handle(ctx, entity.FileEvent{ID: 12, Kind: entity.FileDeleted, Filename: "b.csv"}); err != nil {
		t.Fatalf("handle delete: %v", err)
	}

	if len(cache.deleted) != 1 || cache.deleted[0] != "b.csv" {
		t.Fatalf("unexpected invalidations: %v", cache.deleted)
	}
	if len(pub.ids) != 2 || pub.ids[0] != "11" || pub.ids[1] != "12" {
		t.Fatalf("unexpected forwarded ids: %v", pub.ids)
	}

	cache.err = errors.New("redis down")
	err := hs.Handle(ctx, entity.FileEvent{ID: 13, Kind: entity.FileDeleted, Filename: "c.csv"})
	if err == nil || !errors.Is(err, cache.err) {
		t.Fatalf("expected joined cache error, got %v", err)
	}
	if len(pub.ids) != 3 {
		t.Fatalf("expected forwarder to run despite cache error, got %d", len(pub.ids))
	}
}
