package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shandysiswandi/csvboard/internal/dataset/entity"
)

func sampleDataset() entity.Dataset {
	types := entity.ColumnTypes{
		Columns: []string{"id", "price", "active", "name"},
		Labels:  []entity.TypeLabel{entity.TypeInt64, entity.TypeFloat64, entity.TypeBool, entity.TypeObject},
	}
	return entity.NewDataset("shop.csv", types, [][]any{
		{int64(9007199254740993), 1.25, true, "pen"},
		{int64(2), 3.0, false, "007"},
	})
}

func TestEntryRoundTripKeepsTypes(t *testing.T) {
	t.Parallel()

	fp := entity.Fingerprint{Size: 64, ModTime: 1_700_000_000_000_000_000}
	want := sampleDataset()

	raw, err := encodeEntry(fp, want)
	require.NoError(t, err)

	got, gotFp, err := decodeEntry(raw)
	require.NoError(t, err)

	assert.Equal(t, fp, gotFp)
	assert.Equal(t, want, got)
	assert.IsType(t, int64(0), got.Records[0].Values[0])
	assert.IsType(t, float64(0), got.Records[1].Values[1])
	assert.Equal(t, "007", got.Records[1].Values[3])
}

func TestDecodeEntryRejectsCorruptPayloads(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "not json", raw: "{", want: "unmarshal"},
		{name: "label count", raw: `{"filename":"a.csv","columns":["a","b"],"labels":["int64"],"rows":[]}`, want: "1 labels for 2 columns"},
		{name: "row width", raw: `{"filename":"a.csv","columns":["a"],"labels":["int64"],"rows":[[1,2]]}`, want: "row width 2"},
		{name: "type mismatch", raw: `{"filename":"a.csv","columns":["a"],"labels":["bool"],"rows":[["yes"]]}`, want: "does not match type bool"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := decodeEntry([]byte(tt.raw))
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.want), err.Error())
		})
	}
}

func TestKey(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "csvboard:dataset:a.csv", key("a.csv"))
}

func TestNoop(t *testing.T) {
	t.Parallel()

	var c Noop
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, entity.Fingerprint{}, sampleDataset()))
	_, ok, err := c.Get(ctx, "shop.csv", entity.Fingerprint{})
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, c.Delete(ctx, "shop.csv"))
}

func newMiniRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedis(client, time.Minute), mr
}

func TestRedisSetGetDelete(t *testing.T) {
	t.Parallel()

	c, mr := newMiniRedis(t)
	ctx := context.Background()
	fp := entity.Fingerprint{Size: 64, ModTime: 1_700_000_000_000_000_000}
	want := sampleDataset()

	_, ok, err := c.Get(ctx, "shop.csv", fp)
	require.NoError(t, err)
	assert.False(t, ok, "empty cache must miss")

	require.NoError(t, c.Set(ctx, fp, want))
	assert.Equal(t, time.Minute, mr.TTL(key("shop.csv")))

	got, ok, err := c.Get(ctx, "shop.csv", fp)
	require.NoError(t, err)
	require.True(t, ok, "same fingerprint must hit")
	assert.Equal(t, want, got)

	_, ok, err = c.Get(ctx, "shop.csv", entity.Fingerprint{Size: 65, ModTime: fp.ModTime})
	require.NoError(t, err)
	assert.False(t, ok, "changed fingerprint must miss")

	require.NoError(t, c.Delete(ctx, "shop.csv"))
	assert.False(t, mr.Exists(key("shop.csv")))

	_, ok, err = c.Get(ctx, "shop.csv", fp)
	require.NoError(t, err)
	assert.False(t, ok, "deleted entry must miss")
}

func TestRedisEntryExpires(t *testing.T) {
	t.Parallel()

	c, mr := newMiniRedis(t)
	ctx := context.Background()
	fp := entity.Fingerprint{Size: 1, ModTime: 1}

	require.NoError(t, c.Set(ctx, fp, sampleDataset()))
	mr.FastForward(2 * time.Minute)

	_, ok, err := c.Get(ctx, "shop.csv", fp)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisErrors(t *testing.T) {
	t.Parallel()

	c, mr := newMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(key("bad.csv"), "{"))
	_, ok, err := c.Get(ctx, "bad.csv", entity.Fingerprint{})
	require.Error(t, err)
	assert.False(t, ok)

	mr.Close()

	_, _, err = c.Get(ctx, "shop.csv", entity.Fingerprint{})
	require.ErrorContains(t, err, "redis get dataset failed")
	require.ErrorContains(t, c.Set(ctx, entity.Fingerprint{}, sampleDataset()), "redis set dataset failed")
	require.ErrorContains(t, c.Delete(ctx, "shop.csv"), "redis delete dataset failed")
}
