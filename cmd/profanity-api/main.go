// @title         Profanity API
// @version       0.1.0
// @description   Detect and censor profanity in free text

package main

import (
	"context"
	"os/signal"
	"syscall"

	"profanity/internal/core/version"
	"profanity/internal/modkit/repokit"
	"profanity/internal/modkit/swaggerkit"
	"profanity/internal/platform/config"
	"profanity/internal/platform/logger"
	"profanity/internal/platform/metrics"
	phttp "profanity/internal/platform/net/http"
	"profanity/internal/platform/store"

	"profanity/internal/services/api"
	filtermod "profanity/internal/services/api/filter/module"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	l := logger.Get()

	st, err := store.Open(ctx, store.FromEnv(root, "profanity", "api"), store.WithLogger(*logger.Named("store")))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	var m *metrics.Metrics
	if apiCfg.MayBool("METRICS", true) {
		m = metrics.New()
	}

	srv := phttp.NewServer(apiCfg)
	a, err := api.Mount(ctx, srv.Router(), api.Options{
		Config:         apiCfg,
		Filter:         filtermod.FromConfig(root.Prefix("CORE_FILTER_")),
		Store:          st,
		Logger:         l,
		Metrics:        m,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
		Docs:           swaggerkit.Options{TitleSuffix: apiCfg.MayString("DOCS_TITLE_SUFFIX", "")},
	})
	if err != nil {
		l.Panic().Err(err).Msg("api.Mount failed")
	}
	defer a.Close()

	bi := version.Info()
	l.Info().Str("version", bi.Version).Str("commit", bi.Commit).Bool("pg", st.PG != nil).Bool("ch", st.CH != nil).Msg("profanity api starting")

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
