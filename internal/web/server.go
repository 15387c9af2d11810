package web

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/pmla-casebook/internal/registry"
	"github.com/pmla-casebook/internal/store"
	"github.com/pmla-casebook/internal/web/handlers"
	"github.com/pmla-casebook/internal/web/middleware"
)

// Server serves the consolidated case snapshot over HTTP for the dashboard.
// It reads the saved snapshot once at startup; ingestion and serving are
// separate runs.
type Server struct {
	config     *Config
	httpServer *http.Server
	router     *mux.Router
}

// NewServer creates a new dashboard server instance
func NewServer(config *Config) (*Server, error) {
	cases, err := store.Load(config.Snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to load case snapshot: %w", err)
	}

	server := &Server{config: config}
	server.setupRoutes(cases)

	server.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port),
		Handler:      server.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server, nil
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(cases registry.Snapshot) {
	s.router = mux.NewRouter()

	casesHandler := &handlers.CasesHandler{Cases: cases}
	summaryHandler := &handlers.SummaryHandler{Cases: cases}

	api := s.router.PathPrefix("/api").Subrouter()

	// Core data endpoints
	api.HandleFunc("/cases", casesHandler.ListCases).Methods("GET")
	// ECIR numbers contain slashes, so the pattern is greedy.
	api.HandleFunc("/cases/{ecir:.+}", casesHandler.GetCase).Methods("GET")
	api.HandleFunc("/search", casesHandler.SearchCases).Methods("GET")

	if s.config.Features.SummaryEnabled {
		api.HandleFunc("/summary", summaryHandler.GetSummary).Methods("GET")
	}

	// Apply middleware
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.RequestLogging())
}

// Start starts the server and blocks until interrupted.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		fmt.Printf("Starting server on http://%s\n", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("Server error: %v\n", err)
		}
	}()

	<-stop
	fmt.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	fmt.Println("Server stopped")
	return nil
}
