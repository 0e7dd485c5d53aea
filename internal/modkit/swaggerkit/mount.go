// Package swaggerkit serves the Swagger UI and the OpenAPI document
package swaggerkit

import (
	"net/http"

	phttp "profanity/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Base is where the UI and document live
const Base = "/api/docs"

// Mount serves the UI at /api/docs/ and the document at /api/docs/doc.json
func Mount(r phttp.Router, enabled bool, opt Options) {
	if !enabled {
		return
	}
	r.Get(Base, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, Base+"/", http.StatusPermanentRedirect)
	})
	r.Get(Base+"/doc.json", serveDocJSON(opt))
	r.Handle(Base+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL(Base+"/doc.json"),
	))
}
