// Package swaggerkit mounts the Swagger UI and serves registered swag documents
package swaggerkit

import (
	"encoding/json"
	"net/http"

	phttp "qualifiers/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
)

// SpecMutator adjusts the parsed document before it is served
type SpecMutator func(spec map[string]any)

// readDoc is a seam so tests can serve broken JSON
var readDoc = swag.ReadDoc

// Mount serves /docs/doc.json from the swag document registered as instance and the
// UI under /docs/
func Mount(r phttp.Router, enabled bool, instance string, mutators ...SpecMutator) {
	if !enabled {
		return
	}
	r.Get("/docs", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/docs/index.html", http.StatusFound)
	})
	r.Get("/docs/doc.json", serveDocJSON(instance, mutators))
	r.Handle("/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName(instance),
		httpSwagger.URL("/docs/doc.json"),
	))
}

func serveDocJSON(instance string, mutators []SpecMutator) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		raw, err := readDoc(instance)
		if err != nil {
			http.Error(w, "spec not registered", http.StatusNotFound)
			return
		}
		var spec map[string]any
		if err := json.Unmarshal([]byte(raw), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		for _, m := range mutators {
			m(spec)
		}
		w.Header().Set("Cache-Control", "no-store")
		phttp.JSON(w, http.StatusOK, spec)
	}
}

// WithHost sets the swagger 2.0 host so "try it out" targets the serving address
func WithHost(host string) SpecMutator {
	return func(spec map[string]any) {
		if host != "" {
			spec["host"] = host
		}
	}
}
