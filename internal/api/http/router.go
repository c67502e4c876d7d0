package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// pathVar extracts a gorilla/mux path variable.
func pathVar(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}

// NewRouter wires all booking routes onto a gorilla/mux router.
func NewRouter(fleet *FleetHandler, rentals *RentalHandler) *mux.Router {
	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/fleet/available", fleet.HandleSearchAvailable).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id}/availability", fleet.HandleCheckVehicle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id}/rentals", rentals.HandleListByVehicle).Methods(http.MethodGet)

	api.HandleFunc("/quotes", rentals.HandleQuote).Methods(http.MethodPost)

	api.HandleFunc("/rentals", rentals.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/rentals/reference/{reference}", rentals.HandleGetByReference).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}", rentals.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}/start", rentals.HandleStart).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id}/complete", rentals.HandleComplete).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id}/cancel", rentals.HandleCancel).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id}/extend", rentals.HandleExtend).Methods(http.MethodPost)

	return router
}
