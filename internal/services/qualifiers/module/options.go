package module

import (
	"time"

	"qualifiers/internal/core/normalize"
	"qualifiers/internal/platform/config"
	"qualifiers/internal/services/qualifiers/service"
)

// Options holds import tuning read from CORE_IMPORT_*
type Options struct {
	Policy           service.Policy
	BatchSize        int
	Casing           normalize.Casing
	MaxErrors        int
	Mirror           bool
	TxRetries        int
	StatementTimeout time.Duration
	DryRun           bool
}

// FromConfig reads CORE_IMPORT_* keys
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_IMPORT_")
	return Options{
		Policy:           service.Policy(c.MayEnum("POLICY", string(service.PolicyAbort), string(service.PolicyAbort), string(service.PolicySkip))),
		BatchSize:        c.MayInt("BATCH_SIZE", service.DefaultBatchSize),
		Casing:           normalize.ParseCasing(c.MayEnum("CASING", "unicode", "unicode", "ascii")),
		MaxErrors:        c.MayInt("MAX_ERRORS", 0),
		Mirror:           c.MayBool("MIRROR", false),
		TxRetries:        c.MayInt("TX_RETRIES", 0),
		StatementTimeout: c.MayDuration("STATEMENT_TIMEOUT", 0),
	}
}

// merge lets non zero overrides win over config; DryRun is taken as given
func (o Options) merge(overrides Options) Options {
	if overrides.Policy != "" {
		o.Policy = overrides.Policy
	}
	if overrides.BatchSize != 0 {
		o.BatchSize = overrides.BatchSize
	}
	if overrides.Casing != normalize.Unicode {
		o.Casing = overrides.Casing
	}
	if overrides.MaxErrors != 0 {
		o.MaxErrors = overrides.MaxErrors
	}
	if overrides.Mirror {
		o.Mirror = true
	}
	if overrides.TxRetries != 0 {
		o.TxRetries = overrides.TxRetries
	}
	if overrides.StatementTimeout != 0 {
		o.StatementTimeout = overrides.StatementTimeout
	}
	o.DryRun = overrides.DryRun
	return o
}
