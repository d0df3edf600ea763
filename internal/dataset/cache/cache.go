package cache

import (
	"context"

	"github.com/shandysiswandi/csvboard/internal/dataset/entity"
)

// Noop never stores anything. It stands in when Redis is disabled.
type Noop struct{}

func (Noop) Get(context.Context, string, entity.Fingerprint) (entity.Dataset, bool, error) {
	return entity.Dataset{}, false, nil
}

func (Noop) Set(context.Context, entity.Fingerprint, entity.Dataset) error {
	return nil
}

func (Noop) Delete(context.Context, string) error {
	return nil
}
