package responder

import (
	"io"
	"net/http"
)

// Greeting is the body written for every request.
const Greeting = "Hello from Dockerized Node.js!"

// Responder answers every request with Greeting, whatever the method,
// path, query or headers. The request body is never read.
type Responder struct{}

// New returns the responder as an http.Handler.
func New() http.Handler {
	return Responder{}
}

// ServeHTTP implements http.Handler.
func (Responder) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, Greeting)
}
