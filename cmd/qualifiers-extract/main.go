// Command qualifiers-extract decodes an NCE qualifier listing and stores it in postgres
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"qualifiers/internal/core/qualifier"
	"qualifiers/internal/core/version"
	"qualifiers/internal/modkit"
	"qualifiers/internal/modkit/repokit"
	"qualifiers/internal/platform/config"
	"qualifiers/internal/platform/logger"
	"qualifiers/internal/platform/store"
	"qualifiers/internal/services/qualifiers/domain"
	qualmod "qualifiers/internal/services/qualifiers/module"
	"qualifiers/internal/services/qualifiers/service"
)

const appName = "qualifiers-extract"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		fIn        = flag.String("in", "qualifiers.txt", "listing to import, - for stdin, .gz is decompressed")
		fPolicy    = flag.String("policy", "", "abort | skip (default CORE_IMPORT_POLICY or abort)")
		fBatch     = flag.Int("batch", 0, "records per transaction (default CORE_IMPORT_BATCH_SIZE)")
		fMaxErrors = flag.Int("max-errors", 0, "with -policy skip, stop after this many bad lines")
		fDryRun    = flag.Bool("dry-run", false, "decode and validate only, no database")
		fEnv       = flag.String("env", ".env", "dotenv file loaded before reading config")
	)
	flag.Parse()

	if err := config.LoadDotenv(*fEnv); err != nil {
		fmt.Fprintf(os.Stderr, "load %s: %v\n", *fEnv, err)
		return 2
	}
	l := logger.Get()

	var policy service.Policy
	if *fPolicy != "" {
		p, err := service.ParsePolicy(*fPolicy)
		if err != nil {
			l.Error().Err(err).Msg("bad -policy")
			return 2
		}
		policy = p
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	in, closeIn, err := openInput(*fIn)
	if err != nil {
		l.Error().Err(err).Str("in", *fIn).Msg("open input")
		return 1
	}
	defer func() {
		if err := closeIn(); err != nil {
			l.Warn().Err(err).Msg("close input")
		}
	}()

	root := config.New()
	deps := modkit.Deps{Log: *l, Cfg: root}
	if !*fDryRun {
		st, err := store.Open(ctx, store.ConfigFromEnv(appName, "extract", version.Info(appName).Version), store.WithLogger(*l))
		if err != nil {
			l.Error().Err(err).Msg("store.Open failed")
			return 1
		}
		defer func() {
			if err := st.Close(context.Background()); err != nil {
				l.Error().Err(err).Msg("failed to close store")
			}
		}()
		if st.PG == nil {
			l.Error().Msg("SERVICE_PGSQL_DBURL is required unless -dry-run is set")
			return 2
		}
		repokit.MustGuard(ctx, st)
		deps.PG, deps.CH = st.PG, st.CH
	}

	m := qualmod.New(deps, qualmod.Options{
		Policy:    policy,
		BatchSize: *fBatch,
		MaxErrors: *fMaxErrors,
		DryRun:    *fDryRun,
	})
	if err := m.Prepare(ctx); err != nil {
		l.Error().Err(err).Msg("prepare schema")
		return 1
	}

	src := qualifier.FromReader(in, m.DecodeOptions()...)
	sum, runErr := modkit.MustPortsOf[domain.ImporterPort](m).Run(ctx, src)
	printSummary(os.Stdout, sum, runErr)

	switch {
	case runErr == nil:
		return 0
	case errors.Is(runErr, context.Canceled):
		return 130
	default:
		return 1
	}
}
