// Package swagger serves the OpenAPI description of the tracker API.
package swagger

import (
	"context"
	"net/http"
	"strings"
)

// cdnRedocScript is used when no local bundle is configured.
const cdnRedocScript = "https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"

const localRedocScript = "/api-docs/redoc.standalone.js"

// Option configures Register.
type Option func(*options)

type options struct {
	redocJS []byte
}

// WithRedocBundle serves js as the ReDoc standalone bundle so the docs page
// works without network access.
func WithRedocBundle(js []byte) Option {
	return func(o *options) {
		if len(js) > 0 {
			o.redocJS = js
		}
	}
}

// Register attaches the API docs routes to mux.
// Routes:
//
//	GET /api-docs                     -> ReDoc HTML
//	GET /openapi.yaml                 -> embedded OpenAPI document
//	GET /api-docs/redoc.standalone.js -> ReDoc bundle (only WithRedocBundle)
func Register(_ context.Context, mux *http.ServeMux, opts ...Option) {
	if mux == nil {
		panic("mux is nil")
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	script := cdnRedocScript
	if o.redocJS != nil {
		script = localRedocScript
		mux.HandleFunc(localRedocScript, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
			_, _ = w.Write(o.redocJS)
		})
	}
	page := []byte(strings.Replace(indexHTML, "{{script}}", script, 1))

	mux.HandleFunc("/api-docs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	})

	mux.HandleFunc("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		_, _ = w.Write(OpenAPI)
	})
}

const indexHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <title>ftracker API</title>
    <style>body{margin:0;padding:0}</style>
  </head>
  <body>
    <redoc id="redoc-container"></redoc>
    <script src="{{script}}"></script>
    <script>Redoc.init('/openapi.yaml', { suppressWarnings: true }, document.getElementById('redoc-container'));</script>
  </body>
</html>`
