package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/cors"
	"github.com/shandysiswandi/goproduct/internal/pkg/pkgauth"
	"github.com/shandysiswandi/goproduct/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goproduct/internal/pkg/pkglog"
	"github.com/shandysiswandi/goproduct/internal/pkg/pkgmongo"
	"github.com/shandysiswandi/goproduct/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goproduct/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/goproduct/internal/pkg/pkguid"
)

func (a *App) initConfig() {
	path := "/config/config.yaml"
	if os.Getenv("LOCAL") == "true" {
		path = "./config/config.yaml"
	}

	cfg, err := pkgconfig.NewViper(path, configOptions(".env")...)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	pkglog.SetLevel(cfg.GetString("log.level"))

	a.config = cfg
}

func configOptions(dotEnv string) []pkgconfig.Option {
	return []pkgconfig.Option{
		pkgconfig.WithDotEnv(dotEnv),
		pkgconfig.WithEnvAliases("auth.api_key", "AUTH_API_KEY", "API_KEY"),
		pkgconfig.WithEnvAliases("database.mongo.uri", "DATABASE_MONGO_URI", "MONGODBATLAS_URI"),
		pkgconfig.WithEnvAliases("server.address.http", "SERVER_ADDRESS_HTTP", "HTTP_ADDRESS"),
		pkgconfig.WithEnvAliases("server.port", "SERVER_PORT", "PORT"),
	}
}

// httpAddress returns ":<server.port>" when a port is set, else server.address.http.
func httpAddress(cfg pkgconfig.Config) string {
	if port := strings.TrimSpace(cfg.GetString("server.port")); port != "" {
		return ":" + port
	}
	return cfg.GetString("server.address.http")
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(100)
	a.uuid = pkguid.NewUUID()

	sf, err := pkguid.NewSnowflake()
	if err != nil {
		slog.Error("failed to init snowflake", "error", err)
		os.Exit(1)
	}
	a.correlationID = sf

	a.apiKey = pkgauth.NewAPIKey(a.config.GetString("auth.api_key"))
	if !a.apiKey.Configured() {
		slog.Error("api key is not configured, set auth.api_key or API_KEY")
		os.Exit(1)
	}
}

func (a *App) initResources() {
	uri := a.config.GetString("database.mongo.uri")
	if uri == "" {
		slog.Error("mongo uri is not configured, set database.mongo.uri or MONGODBATLAS_URI")
		os.Exit(1)
	}

	timeout := a.config.GetDuration("database.mongo.timeout")

	a.goroutine.Go(a.ctx, "MongoDB", func(ctx context.Context) error {
		client, err := pkgmongo.Connect(ctx, uri, timeout)
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			slog.ErrorContext(ctx, "failed to connect mongodb", "error", err)
			os.Exit(1)
		}

		a.mongo = client
		slog.InfoContext(ctx, "MongoDB connected")

		return nil
	})
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.correlationID)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: a.config.GetArray("server.cors.allowed_origins"),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	a.httpServer = &http.Server{
		Addr:              httpAddress(a.config),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

//nolint:unparam // is always nil
func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["HTTP Server"] = func(ctx context.Context) error {
		return a.httpServer.Shutdown(ctx)
	}
	a.closerFn["MongoDB"] = func(ctx context.Context) error {
		if a.mongo == nil {
			return nil
		}
		return a.mongo.Close(ctx)
	}
	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
