package http

import "net/http"

// Handler is a plain handler func; httpkit builds these from the filter and
// meta endpoint funcs
type Handler = func(http.ResponseWriter, *http.Request)

// Router is what the filter and meta modules register their endpoints on.
// The API server owns the only implementation (AdaptChi) so modules never
// import chi directly
type Router interface {
	// Get, Post, Put and Delete register h for one method on path
	Get(path string, h Handler)
	Post(path string, h Handler)
	Put(path string, h Handler)
	Delete(path string, h Handler)

	// Handle registers h for every method, used for /swagger and /debug
	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	// Route scopes fn under pattern, e.g. "/v1/filter"
	Route(pattern string, fn func(Router))

	// Mux returns the root handler the server listens with
	Mux() http.Handler
}
