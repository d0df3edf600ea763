package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shandysiswandi/csvboard/internal/dataset/entity"
)

const keyPrefix = "csvboard:dataset:"

// Redis caches one parsed dataset per file name. An entry whose fingerprint
// no longer matches the file on disk is treated as a miss.
type Redis struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedis(client redis.Cmdable, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Redis{client: client, ttl: ttl}
}

type entry struct {
	Fingerprint entity.Fingerprint `json:"fingerprint"`
	Filename    string             `json:"filename"`
	Columns     []string           `json:"columns"`
	Labels      []entity.TypeLabel `json:"labels"`
	Rows        [][]any            `json:"rows"`
}

func (c *Redis) Get(ctx context.Context, filename string, fp entity.Fingerprint) (entity.Dataset, bool, error) {
	raw, err := c.client.Get(ctx, key(filename)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.Dataset{}, false, nil
	}
	if err != nil {
		return entity.Dataset{}, false, fmt.Errorf("redis get dataset failed: %w", err)
	}

	ds, cachedFp, err := decodeEntry(raw)
	if err != nil {
		return entity.Dataset{}, false, err
	}
	if cachedFp != fp {
		return entity.Dataset{}, false, nil
	}

	return ds, true, nil
}

func (c *Redis) Set(ctx context.Context, fp entity.Fingerprint, ds entity.Dataset) error {
	payload, err := encodeEntry(fp, ds)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, key(ds.Info.Filename), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set dataset failed: %w", err)
	}
	return nil
}

func (c *Redis) Delete(ctx context.Context, filename string) error {
	if err := c.client.Del(ctx, key(filename)).Err(); err != nil {
		return fmt.Errorf("redis delete dataset failed: %w", err)
	}
	return nil
}

func key(filename string) string {
	return keyPrefix + filename
}

func encodeEntry(fp entity.Fingerprint, ds entity.Dataset) ([]byte, error) {
	rows := make([][]any, 0, len(ds.Records))
	for _, rec := range ds.Records {
		rows = append(rows, rec.Values)
	}

	payload, err := json.Marshal(entry{
		Fingerprint: fp,
		Filename:    ds.Info.Filename,
		Columns:     ds.Info.DataTypes.Columns,
		Labels:      ds.Info.DataTypes.Labels,
		Rows:        rows,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal dataset cache failed: %w", err)
	}
	return payload, nil
}

// decodeEntry rebuilds the dataset, restoring Go value types from the column labels.
func decodeEntry(raw []byte) (entity.Dataset, entity.Fingerprint, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var e entry
	if err := dec.Decode(&e); err != nil {
		return entity.Dataset{}, entity.Fingerprint{}, fmt.Errorf("unmarshal dataset cache failed: %w", err)
	}
	if len(e.Labels) != len(e.Columns) {
		return entity.Dataset{}, entity.Fingerprint{}, fmt.Errorf("corrupt dataset cache for %s: %d labels for %d columns", e.Filename, len(e.Labels), len(e.Columns))
	}

	for _, row := range e.Rows {
		if len(row) != len(e.Columns) {
			return entity.Dataset{}, entity.Fingerprint{}, fmt.Errorf("corrupt dataset cache for %s: row width %d", e.Filename, len(row))
		}
		for i, v := range row {
			typed, err := restore(v, e.Labels[i])
			if err != nil {
				return entity.Dataset{}, entity.Fingerprint{}, fmt.Errorf("corrupt dataset cache for %s: %w", e.Filename, err)
			}
			row[i] = typed
		}
	}

	types := entity.ColumnTypes{Columns: e.Columns, Labels: e.Labels}
	return entity.NewDataset(e.Filename, types, e.Rows), e.Fingerprint, nil
}

func restore(v any, label entity.TypeLabel) (any, error) {
	switch label {
	case entity.TypeInt64:
		if n, ok := v.(json.Number); ok {
			return n.Int64()
		}
	case entity.TypeFloat64:
		if n, ok := v.(json.Number); ok {
			return n.Float64()
		}
	case entity.TypeBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	default:
		if s, ok := v.(string); ok {
			return s, nil
		}
	}
	return nil, fmt.Errorf("value %v does not match type %s", v, label)
}
