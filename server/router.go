package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// VenueHandlers is the handler surface the router wires up.
type VenueHandlers interface {
	Optimize(w http.ResponseWriter, r *http.Request)
	GetVenuesNearby(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	venueHandler VenueHandlers
	router       *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	venueHandler VenueHandlers,
	router *mux.Router) *Router {
	return &Router{
		venueHandler: venueHandler,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects a JSON OptimizationRequest body
	r.router.HandleFunc("/v1/venues/optimize", r.venueHandler.Optimize).Methods("POST")

	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={meters(float)}
	r.router.HandleFunc("/v1/venues/nearby", r.venueHandler.GetVenuesNearby).Methods("GET")

	r.router.HandleFunc("/ping", r.venueHandler.Ping).Methods("GET")
}
