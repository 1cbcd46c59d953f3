// Command pairscore-server provides a REST API for pair scoring.
//
// Usage:
//
//	pairscore-server [options]
//
// Options:
//
//	--port     Port to listen on (default: 8080, env PAIRSCORE_PORT)
//	--host     Host to bind to (default: localhost, env PAIRSCORE_HOST)
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aria-lang/pairscore/api/handlers"
	"github.com/aria-lang/pairscore/api/middleware"
	"github.com/aria-lang/pairscore/internal/config"
)

// newRouter builds the API router with its global middleware.
func newRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	handlers.Routes(r)

	// Home page
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(homePage))
	})

	return r
}

// loadSettings reads host and port from flags and the environment.
func loadSettings(args []string) (config.ServerSettings, error) {
	flags := pflag.NewFlagSet("pairscore-server", pflag.ContinueOnError)
	flags.Int("port", 8080, "Port to listen on")
	flags.String("host", "localhost", "Host to bind to")
	if err := flags.Parse(args); err != nil {
		return config.ServerSettings{}, err
	}

	v := viper.New()
	config.Bind(v)
	if err := v.BindPFlags(flags); err != nil {
		return config.ServerSettings{}, err
	}
	return config.NewServerSettings(v)
}

func main() {
	log.SetPrefix("[pairscore] ")

	settings, err := loadSettings(os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid settings: %v\n", err)
	}

	addr := settings.Addr()
	server := &http.Server{
		Addr:         addr,
		Handler:      newRouter(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Could not gracefully shutdown: %v\n", err)
		}
		close(done)
	}()

	log.Printf("pairscore API server starting on http://%s\n", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", addr, err)
	}

	<-done
	log.Println("Server stopped")
}

const homePage = `<!DOCTYPE html>
<html>
<head>
    <title>pairscore API</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 2rem auto; padding: 0 1rem; }
        h1 { color: #2563eb; }
        pre { background: #f3f4f6; padding: 1rem; border-radius: 0.5rem; overflow-x: auto; }
        .endpoint { margin: 1rem 0; padding: 1rem; border: 1px solid #e5e7eb; border-radius: 0.5rem; }
        .method { display: inline-block; padding: 0.25rem 0.5rem; background: #10b981; color: white; border-radius: 0.25rem; font-size: 0.875rem; }
    </style>
</head>
<body>
    <h1>pairscore API</h1>
    <p>Scores pairs of pre-aligned nucleotide sequences.</p>

    <h2>Endpoints</h2>

    <div class="endpoint">
        <span class="method">GET</span> <code>/api/params/default</code>
        <p>Default scoring parameters.</p>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/score</code>
        <p>Score one aligned pair.</p>
        <pre>{"sequence1": "ACGT-", "sequence2": "AGCT-", "params": {"identity": 2}}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/compare</code>
        <p>Score every pair of a FASTA text.</p>
        <pre>{"fasta": ">a\nACGT-\n>b\nAGCT-\n", "skip_undefined": true}</pre>
    </div>

    <div class="endpoint">
        <span class="method">POST</span> <code>/api/sequences/info</code>
        <p>Summarize the sequences of a FASTA text.</p>
        <pre>{"fasta": ">a\nACGT-\n>b\nAGCT-\n"}</pre>
    </div>
</body>
</html>`
