package http

import (
	stdhttp "net/http"
	"strconv"

	perr "qualifiers/internal/platform/errors"

	"github.com/go-chi/chi/v5"
)

// PathUint reads the {name} path parameter, checks it with match and parses it.
// A mismatch is an invalid argument error carrying the parameter name
func PathUint(r *stdhttp.Request, name string, match func(string) bool) (uint64, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, perr.WithField(perr.InvalidArgf("%s is required", name), name)
	}
	if match != nil && !match(raw) {
		return 0, perr.WithField(perr.InvalidArgf("%s has an invalid format: %q", name, raw), name)
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, perr.WithField(perr.InvalidArgf("%s must be a number", name), name)
	}
	return n, nil
}

// QueryInt reads an integer query parameter, def when absent
func QueryInt(r *stdhttp.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, perr.WithField(perr.InvalidArgf("%s must be an integer", name), name)
	}
	return n, nil
}
