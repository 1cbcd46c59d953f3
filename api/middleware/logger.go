// Package middleware provides HTTP middleware for the pairscore API.
package middleware

import (
	"log"
	"net/http"
	"os"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// RequestLog is where request lines are written.
var RequestLog = log.New(os.Stderr, "[pairscore] ", log.LstdFlags)

// Logger logs the method, path, status, size and duration of each request.
func Logger(next http.Handler) http.Handler {
	return NewLogger(RequestLog)(next)
}

// NewLogger returns request logging middleware writing to l.
func NewLogger(l *log.Logger) func(http.Handler) http.Handler {
	return chimiddleware.RequestLogger(&chimiddleware.DefaultLogFormatter{
		Logger:  l,
		NoColor: true,
	})
}
