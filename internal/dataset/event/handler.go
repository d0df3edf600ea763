package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/shandysiswandi/csvboard/internal/dataset/entity"
)

// Handlers runs every handler for an event and joins their errors.
type Handlers []Handler

func (hs Handlers) Handle(ctx context.Context, event entity.FileEvent) error {
	var errs []error
	for _, h := range hs {
		if err := h.Handle(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type CacheDeleter interface {
	Delete(ctx context.Context, filename string) error
}

// CacheInvalidator evicts the cached dataset of a deleted file.
type CacheInvalidator struct {
	Cache CacheDeleter
}

func (h CacheInvalidator) Handle(ctx context.Context, event entity.FileEvent) error {
	if event.Kind != entity.FileDeleted {
		return nil
	}

	if err := h.Cache.Delete(ctx, event.Filename); err != nil {
		return fmt.Errorf("invalidate cache for %s: %w", event.Filename, err)
	}

	slog.DebugContext(ctx, "dataset cache invalidated", "filename", event.Filename)
	return nil
}

type JSONPublisher interface {
	PublishJSON(ctx context.Context, messageID string, v any) error
}

// Forwarder republishes file events to an external broker.
type Forwarder struct {
	Publisher JSONPublisher
}

func (h Forwarder) Handle(ctx context.Context, event entity.FileEvent) error {
	if err := h.Publisher.PublishJSON(ctx, strconv.FormatInt(event.ID, 10), event); err != nil {
		return fmt.Errorf("forward %s event for %s: %w", event.Kind, event.Filename, err)
	}
	return nil
}

// Logger records every file event.
type Logger struct{}

func (Logger) Handle(ctx context.Context, event entity.FileEvent) error {
	slog.InfoContext(ctx, "file event", "event_id", event.ID, "kind", event.Kind, "filename", event.Filename, "at", event.At)
	return nil
}
