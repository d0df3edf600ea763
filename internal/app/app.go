package app

import (
	"context"
	"net/http"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/shandysiswandi/csvboard/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/csvboard/internal/pkg/pkglog"
	"github.com/shandysiswandi/csvboard/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/csvboard/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/csvboard/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	uuid      pkguid.StringID
	snowflake pkguid.NumberID
	goroutine *pkgroutine.Manager

	// resources
	redis *redis.Client
	amqp  *amqp.Connection

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	// closers run in registration order after the HTTP server stops
	closers []namedCloser
}

type namedCloser struct {
	name string
	fn   func(context.Context) error
}

func New() *App {
	pkglog.InitLogging(pkglog.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initLibraries()
	app.initResources()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}

func (a *App) addCloser(name string, fn func(context.Context) error) {
	a.closers = append(a.closers, namedCloser{name: name, fn: fn})
}
