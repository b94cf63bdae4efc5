// Package service contains the qualifiers import and lookup workflows
package service

import (
	"context"
	"errors"
	"io"

	"qualifiers/internal/core/qualifier"
	"qualifiers/internal/modkit/repokit"
	perr "qualifiers/internal/platform/errors"
	"qualifiers/internal/platform/logger"
	"qualifiers/internal/platform/store"
	ptime "qualifiers/internal/platform/time"
	"qualifiers/internal/services/qualifiers/domain"
	"qualifiers/internal/services/qualifiers/repo"

	"github.com/google/uuid"
)

// Importer streams decoded qualifiers into storage in batches
type Importer struct {
	db     repokit.TxRunner
	binder repokit.Binder[repo.Repo]
	mirror domain.MirrorPort
	cfg    Config

	newRunID func() string
}

var _ domain.ImporterPort = (*Importer)(nil)

// NewImporter builds an importer. db and binder may be nil only for a dry run;
// mirror may be nil to disable the analytics copy
func NewImporter(db repokit.TxRunner, binder repokit.Binder[repo.Repo], mirror domain.MirrorPort, cfg Config) *Importer {
	cfg = cfg.normalized()
	if !cfg.DryRun {
		if db == nil {
			panic("qualifiers.Importer requires a non nil TxRunner")
		}
		if binder == nil {
			panic("qualifiers.Importer requires a non nil Repo binder")
		}
	}
	return &Importer{
		db:       db,
		binder:   binder,
		mirror:   mirror,
		cfg:      cfg,
		newRunID: uuid.NewString,
	}
}

type pending struct {
	rec  qualifier.Record
	line uint32
}

// Run drains src. Under PolicyAbort the first bad line ends the run after the
// records before it are committed; the error carries the line. Under PolicySkip bad
// lines are counted per kind until MaxErrors is reached. Read failures and a
// saturated line counter end the run under either policy.
func (im *Importer) Run(ctx context.Context, src *qualifier.Qualifiers) (domain.Summary, error) {
	sum := domain.Summary{RunID: im.newRunID(), DryRun: im.cfg.DryRun}
	ctx = logger.WithRun(ctx, sum.RunID)
	log := logger.C(ctx)
	start := ptime.Now()

	log.Info().
		Str("policy", string(im.cfg.Policy)).
		Int("batch_size", im.cfg.BatchSize).
		Bool("dry_run", im.cfg.DryRun).
		Bool("mirror", im.mirror != nil).
		Msg("import started")

	batch := make([]pending, 0, im.cfg.BatchSize)
	runErr := func() error {
		for {
			if err := ctx.Err(); err != nil {
				return perr.Wrap(err, perr.ErrorCodeCanceled, "import canceled")
			}
			line := src.Line()
			rec, err := src.Next()
			if errors.Is(err, io.EOF) {
				return im.flush(ctx, &sum, &batch)
			}
			if err == nil {
				sum.Lines++
				if verr := checkRecord(rec); verr != nil {
					err = perr.WithLine(verr, line)
				}
			} else if !domain.Fatal(err) {
				sum.Lines++
			}
			if err != nil {
				if stop := im.reject(ctx, &sum, err); stop != nil {
					if ferr := im.flush(ctx, &sum, &batch); ferr != nil {
						return errors.Join(stop, ferr)
					}
					return stop
				}
				continue
			}
			batch = append(batch, pending{rec: rec, line: line})
			if len(batch) >= im.cfg.BatchSize {
				if err := im.flush(ctx, &sum, &batch); err != nil {
					return err
				}
			}
		}
	}()

	sum.Elapsed = ptime.Since(start)
	ev := log.Info()
	if runErr != nil {
		ev = log.Error().Err(runErr)
	}
	ev.Int("lines", sum.Lines).
		Int("imported", sum.Imported).
		Int("duplicates", sum.Duplicates).
		Int("centers_added", sum.CentersAdded).
		Int("failed", sum.Failed).
		Int("mirrored", sum.Mirrored).
		Dur("elapsed", sum.Elapsed).
		Msg("import finished")
	return sum, runErr
}

// reject accounts for one bad line and returns non nil when the run must stop
func (im *Importer) reject(ctx context.Context, sum *domain.Summary, err error) error {
	kind := "Validation"
	if k, ok := qualifier.KindOf(err); ok {
		kind = k.String()
	}
	sum.Count(kind)
	wrapped := domain.FromParseError(err)
	w := perr.WireFrom(wrapped)

	if domain.Fatal(err) || im.cfg.Policy == PolicyAbort {
		return wrapped
	}
	logger.C(ctx).Warn().
		Uint32("line", w.Line).
		Str("kind", kind).
		Str("field", w.Field).
		Msg("skipping line")
	if im.cfg.MaxErrors > 0 && sum.Failed >= im.cfg.MaxErrors {
		return perr.WithLine(perr.Newf(perr.ErrorCodeValidation, "too many bad lines: %d", sum.Failed), w.Line)
	}
	return nil
}

// flush commits the pending batch in one transaction, then mirrors what it inserted
func (im *Importer) flush(ctx context.Context, sum *domain.Summary, batch *[]pending) error {
	items := *batch
	if len(items) == 0 {
		return nil
	}
	*batch = items[:0]

	if im.cfg.DryRun {
		sum.Imported += len(items)
		return nil
	}

	var (
		imported, dups, centers int
		inserted                []pending
	)
	err := store.RunTx(ctx, im.db, "qualifiers.import", im.cfg.TxRetries, func(ctx context.Context, q store.RowQuerier) error {
		imported, dups, centers, inserted = 0, 0, 0, inserted[:0]
		r := repokit.MustBind(im.binder, q)
		for _, p := range items {
			res, err := r.InsertQualifier(ctx, p.rec)
			if err != nil {
				return perr.WithLine(err, p.line)
			}
			if res.CenterInserted {
				centers++
			}
			if res.ExamineeInserted {
				imported++
				inserted = append(inserted, p)
			} else {
				dups++
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	sum.Imported += imported
	sum.Duplicates += dups
	sum.CentersAdded += centers

	logger.C(ctx).Debug().
		Int("records", len(items)).
		Int("imported", imported).
		Int("duplicates", dups).
		Msg("batch committed")

	im.mirrorBatch(ctx, sum, inserted)
	return nil
}

// mirrorBatch never fails the import; errors are logged and counted
func (im *Importer) mirrorBatch(ctx context.Context, sum *domain.Summary, inserted []pending) {
	if im.mirror == nil || len(inserted) == 0 {
		return
	}
	now := ptime.Now()
	rows := make([]domain.MirrorRow, 0, len(inserted))
	for _, p := range inserted {
		rows = append(rows, domain.MirrorRow{
			RunID:          sum.RunID,
			ExamineeID:     p.rec.ID,
			TestCenterCode: p.rec.TestCenterCode,
			RoomAssignment: p.rec.RoomAssignment,
			SeatNumber:     p.rec.SeatNumber,
			ImportedAt:     now,
		})
	}
	if err := im.mirror.Append(ctx, rows); err != nil {
		sum.MirrorErrors++
		logger.C(ctx).Warn().Err(err).Int("rows", len(rows)).Msg("mirror append failed")
		return
	}
	sum.Mirrored += len(rows)
}
