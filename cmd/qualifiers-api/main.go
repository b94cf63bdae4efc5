// @title         NCE Qualifiers API
// @version       1.0
// @description   Read only lookups over imported examination qualifiers
// @BasePath      /api/v1

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qualifiers/internal/core/version"
	"qualifiers/internal/modkit"
	"qualifiers/internal/modkit/repokit"
	"qualifiers/internal/modkit/swaggerkit"
	"qualifiers/internal/platform/config"
	"qualifiers/internal/platform/logger"
	phttp "qualifiers/internal/platform/net/http"
	"qualifiers/internal/platform/net/middleware"
	"qualifiers/internal/platform/store"

	metamod "qualifiers/internal/services/meta/module"
	"qualifiers/internal/services/qualifiers/docs"
	qualmod "qualifiers/internal/services/qualifiers/module"

	"github.com/go-chi/chi/v5"
)

const appName = "qualifiers-api"

func main() {
	if err := config.LoadDotenv(".env"); err != nil {
		logger.Get().Panic().Err(err).Msg("load .env")
	}

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.ConfigFromEnv(appName, "api", version.Info(appName).Version), store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	if st.PG == nil {
		l.Panic().Msg("SERVICE_PGSQL_DBURL is required")
	}
	repokit.MustGuard(ctx, st)

	deps := modkit.Deps{Log: *l, Cfg: root, PG: st.PG, CH: st.CH}

	srv := phttp.NewServer(apiCfg, func(m *chi.Mux) {
		m.Use(middleware.Defaults(apiCfg.MayDuration("SLOW", 500*time.Millisecond))...)
		m.Use(middleware.CORS(middleware.CORSOptions{
			AllowedOrigins: apiCfg.MayCSV("CORS_ORIGINS", nil),
			MaxAge:         apiCfg.MayInt("CORS_MAX_AGE", 300),
		}))
	})
	r := srv.Router()

	modkit.MountAPI(r, "v1", nil,
		metamod.New(deps, appName),
		qualmod.New(deps, qualmod.Options{}),
	)
	swaggerkit.Mount(r, apiCfg.MayBool("SWAGGER", true), docs.InstanceName)
	phttp.MountProfiler(r, "/debug", apiCfg.MayBool("PROFILER", false))

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
