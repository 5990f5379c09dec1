package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/goproduct/internal/pkg/pkgauth"
	"github.com/shandysiswandi/goproduct/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goproduct/internal/pkg/pkglog"
	"github.com/shandysiswandi/goproduct/internal/pkg/pkgmongo"
	"github.com/shandysiswandi/goproduct/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goproduct/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/goproduct/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	uuid          pkguid.StringID
	correlationID pkguid.StringID
	goroutine     *pkgroutine.Manager
	apiKey        *pkgauth.APIKey

	// resources, set by the datastore task; read only after goroutine.Wait
	mongo *pkgmongo.Client

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	//
	closerFn map[string]func(context.Context) error
}

func New() *App {
	pkglog.InitLogging()

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
