/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the academic date engine server: picks a term
  record source, opens the database, and serves the HTTP API with
  graceful shutdown.

SOURCE SELECTION:
  -dataset takes precedence: load the YAML dataset file.
  -db next: serve from a SQLite store, seeding it from the compiled-in
            dataset if it is empty.
  Otherwise: the compiled-in dataset alone.

COMMAND-LINE FLAGS:
  -port     HTTP server port (default: 8080)
  -dataset  YAML term dataset path
  -db       SQLite database path (":memory:" works)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM: stop accepting connections, wait up to 30s for
  in-flight requests, exit.

EXAMPLES:
  ./server -dataset=./terms.yaml
  ./server -db=./terms.db -port=3000

SEE ALSO:
  - api/server.go: Router configuration
  - dataset/: term record sources
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/term-engine/academic"
	"github.com/warp/term-engine/api"
	"github.com/warp/term-engine/dataset"
	"github.com/warp/term-engine/store/sqlite"
)

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	datasetPath := flag.String("dataset", "", "YAML term dataset path")
	dbPath := flag.String("db", "", "SQLite database path")
	flag.Parse()

	db, err := openDatabase(*datasetPath, *dbPath)
	if err != nil {
		log.Fatalf("Failed to load term data: %v", err)
	}
	log.Printf("Loaded %d term records", db.Len())

	handler := api.NewHandler(db)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Term engine listening on http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// openDatabase picks the term record source and opens the database over it.
func openDatabase(datasetPath, dbPath string) (*academic.Database, error) {
	if datasetPath != "" {
		return academic.Open(dataset.FileSource{Path: datasetPath})
	}

	if dbPath != "" {
		store, err := sqlite.New(dbPath)
		if err != nil {
			return nil, err
		}
		db, err := academic.Open(store)
		if err == nil {
			return db, nil
		}
		if !errors.Is(err, academic.ErrDataUnavailable) {
			return nil, err
		}
		// Fresh store: seed it from the compiled-in dataset.
		records, err := dataset.Embedded{}.Load()
		if err != nil {
			return nil, err
		}
		if err := store.Seed(context.Background(), records); err != nil {
			return nil, err
		}
		log.Printf("Seeded %s with %d term records", dbPath, len(records))
		return academic.Open(store)
	}

	return dataset.Default()
}
