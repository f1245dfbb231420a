package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// docs serves the OpenAPI document of the bank API and a browsable UI over it.
type docs struct {
	load   func() (*openapi3.T, error)
	logger *slog.Logger
}

// RegisterDocsRoutes mounts the documentation routes on mux:
//
//	GET /                  redirect to /docs
//	GET /docs              Swagger UI
//	GET /docs/openapi      document as JSON
//	GET /docs/openapi.yaml document as embedded
func RegisterDocsRoutes(mux *http.ServeMux, logger *slog.Logger) {
	d := &docs{load: GetSwagger, logger: logger}
	d.register(mux)
}

func (d *docs) register(mux *http.ServeMux) {
	mux.Handle("GET /{$}", http.RedirectHandler("/docs", http.StatusMovedPermanently))
	mux.HandleFunc("GET /docs", d.ui)
	mux.HandleFunc("GET /docs/openapi", d.documentJSON)
	mux.HandleFunc("GET /docs/openapi.yaml", d.documentYAML)
}

// documentJSON renders the validated document. It is encoded before any
// header is written so a failure still yields a clean 500.
func (d *docs) documentJSON(w http.ResponseWriter, _ *http.Request) {
	doc, err := d.load()
	if err != nil {
		d.fail(w, "API document is unavailable", err)
		return
	}

	body, err := json.Marshal(doc)
	if err != nil {
		d.fail(w, "API document could not be encoded", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body) //nolint:errcheck // client went away
}

func (d *docs) documentYAML(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(openAPISpec) //nolint:errcheck // client went away
}

func (d *docs) ui(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(swaggerUIHTML)) //nolint:errcheck // client went away
}

func (d *docs) fail(w http.ResponseWriter, message string, err error) {
	d.logger.Error("failed to serve API document", "error", err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	//nolint:errcheck // best effort error body
	json.NewEncoder(w).Encode(Error{Error: ErrorCodeInternalError, Message: message})
}

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Simple Banking API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
  <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = () => {
      SwaggerUIBundle({
        url: '/docs/openapi',
        dom_id: '#swagger-ui',
        deepLinking: true,
        supportedSubmitMethods: ['get', 'post', 'delete']
      });
    };
  </script>
</body>
</html>`
