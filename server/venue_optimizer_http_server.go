package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

type VenueOptimizerHttpServer struct {
	router    *Router
	muxRouter *mux.Router
}

func NewVenueOptimizerHttpServer(router *Router, muxRouter *mux.Router) *VenueOptimizerHttpServer {
	return &VenueOptimizerHttpServer{
		router:    router,
		muxRouter: muxRouter,
	}
}

// Start registers the routes, serves until interrupted, then shuts down
// gracefully.
func (s *VenueOptimizerHttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    ":8080",
		Handler: s.muxRouter,
	}

	// Channel to listen for interrupt or termination signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start the server in a goroutine so it doesn't block
	go func() {
		log.Println("[VenueOptimizerHttpServer] Starting server on :8080")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for a signal to shut down
	<-stop
	log.Println("[VenueOptimizerHttpServer] Shutting down the server...")

	// Create a deadline for the shutdown (e.g., 5 seconds)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("[VenueOptimizerHttpServer] Server exiting")
}
