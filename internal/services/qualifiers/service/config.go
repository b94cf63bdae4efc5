package service

import (
	"strings"

	perr "qualifiers/internal/platform/errors"
)

// Policy decides what a bad line does to the run
type Policy string

const (
	// PolicyAbort stops at the first bad line; batches already committed stay
	PolicyAbort Policy = "abort"
	// PolicySkip logs and counts bad lines and keeps going
	PolicySkip Policy = "skip"
)

// ParsePolicy accepts "abort" or "skip" in any case
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyAbort, PolicySkip:
		return p, nil
	case "":
		return PolicyAbort, nil
	default:
		return "", perr.WithField(perr.InvalidArgf("unknown import policy %q", s), "policy")
	}
}

// Config tunes an import run
type Config struct {
	Policy Policy
	// BatchSize is the number of records committed per transaction
	BatchSize int
	// MaxErrors caps skipped lines under PolicySkip; zero means unbounded
	MaxErrors int
	// TxRetries is how many times a batch is retried on transient database errors
	TxRetries int
	// DryRun decodes and validates without touching any store
	DryRun bool
}

// DefaultBatchSize applies when Config.BatchSize is not positive
const DefaultBatchSize = 500

func (c Config) normalized() Config {
	if c.Policy == "" {
		c.Policy = PolicyAbort
	}
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.MaxErrors < 0 {
		c.MaxErrors = 0
	}
	if c.TxRetries < 0 {
		c.TxRetries = 0
	}
	return c
}
