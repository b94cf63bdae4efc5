package middleware

import (
	stdhttp "net/http"
	"runtime/debug"

	perr "qualifiers/internal/platform/errors"
	"qualifiers/internal/platform/logger"
	pnet "qualifiers/internal/platform/net"
	phttp "qualifiers/internal/platform/net/http"
)

// RecoverJSON converts panics into a JSON 500 envelope and logs the stack.
// http.ErrAbortHandler is re-panicked so the server can abort the connection
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Str("path", r.URL.Path).
				Msg("panic recovered")

			status, env := phttp.ErrorEnvelope(perr.PanicErrf("internal error"), pnet.RequestID(r.Context()))
			phttp.JSON(w, status, env)
		}()
		next.ServeHTTP(w, r)
	})
}
