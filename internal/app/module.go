package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/shandysiswandi/goproduct/internal/product"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.product.enabled") {
		closer, err := product.New(product.Dependency{
			Config: a.config,
			Router: a.router,
			Auth:   a.apiKey,
			ID:     a.uuid,
		})
		if err != nil {
			slog.Error("failed to init module product", "error", err)
			os.Exit(1)
		}
		if closer != nil {
			if a.closerFn == nil {
				a.closerFn = map[string]func(context.Context) error{}
			}
			a.closerFn["Product"] = closer
		}
	}
}
