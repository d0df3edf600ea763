package dataset

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/shandysiswandi/csvboard/internal/dataset/cache"
	"github.com/shandysiswandi/csvboard/internal/dataset/event"
	"github.com/shandysiswandi/csvboard/internal/dataset/inbound"
	"github.com/shandysiswandi/csvboard/internal/dataset/store"
	"github.com/shandysiswandi/csvboard/internal/dataset/usecase"
	"github.com/shandysiswandi/csvboard/internal/pkg/pkgamqp"
	"github.com/shandysiswandi/csvboard/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/csvboard/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/csvboard/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/csvboard/internal/pkg/pkguid"
)

type Dependency struct {
	Config    pkgconfig.Config
	Goroutine *pkgroutine.Manager
	Router    *pkgrouter.Router
	Context   context.Context
	ID        pkguid.NumberID

	// Optional resources; nil disables the matching feature.
	Redis redis.Cmdable
	AMQP  *amqp.Connection
}

// New wires the dataset module and returns the closer that drains its event consumer.
func New(dep Dependency) (func(context.Context) error, error) {
	storage, err := store.NewFileSystem(dep.Config.GetString("dataset.data_directory"))
	if err != nil {
		return nil, fmt.Errorf("init data directory: %w", err)
	}

	if dep.ID == nil {
		if dep.ID, err = pkguid.NewSnowflake(-1); err != nil {
			return nil, err
		}
	}

	var datasetCache interface {
		usecase.Cache
		event.CacheDeleter
	} = cache.Noop{}
	if dep.Redis != nil {
		ttl := time.Duration(dep.Config.GetInt("cache.redis.ttl_seconds")) * time.Second
		datasetCache = cache.NewRedis(dep.Redis, ttl)
	}

	handlers := event.Handlers{event.Logger{}, event.CacheInvalidator{Cache: datasetCache}}
	if dep.AMQP != nil {
		publisher := pkgamqp.NewPublisher(dep.AMQP, dep.Config.GetString("events.amqp.queue"))
		handlers = append(handlers, event.Forwarder{Publisher: publisher})
	}

	bus := event.NewBus(int(dep.Config.GetInt("events.buffer")))
	consumer := event.NewConsumer(bus, handlers, event.ConsumerConfig{
		Workers:     int(dep.Config.GetInt("events.workers")),
		MaxRetries:  int(dep.Config.GetInt("events.max_retries")),
		BaseBackoff: time.Duration(dep.Config.GetInt("events.base_backoff_ms")) * time.Millisecond,
	})
	consumer.Start()

	uc := usecase.New(usecase.Dependency{
		Store:   storage,
		Cache:   datasetCache,
		Events:  bus,
		Runner:  dep.Goroutine,
		ID:      dep.ID,
		RootCtx: dep.Context,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, inbound.Options{
		MaxUploadBytes: dep.Config.GetInt("dataset.upload.max_bytes"),
	})

	return consumer.Stop, nil
}
