package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/csvboard/internal/dataset"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.dataset.enabled") {
		dep := dataset.Dependency{
			Config:    a.config,
			Router:    a.router,
			Goroutine: a.goroutine,
			Context:   a.ctx,
			ID:        a.snowflake,
		}
		if a.redis != nil {
			dep.Redis = a.redis
		}
		if a.amqp != nil {
			dep.AMQP = a.amqp
		}

		closer, err := dataset.New(dep)
		if err != nil {
			slog.Error("failed to init module dataset", "error", err)
			os.Exit(1)
		}
		if closer != nil {
			a.addCloser("Dataset", closer)
		}
	}
}
