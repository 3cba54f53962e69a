// Package httpapi exposes the tripdiary REST API over HTTP.
package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mvberkel/tripdiary/internal/logging"
	"github.com/mvberkel/tripdiary/internal/server/trips"
	"github.com/mvberkel/tripdiary/internal/server/users"
)

type API struct {
	logger    logging.Logger
	users     *users.Service
	trips     *trips.Service
	imagesDir string
}

func NewAPI(logger logging.Logger, userService *users.Service, tripService *trips.Service, imagesDir string) *API {
	return &API{
		logger:    logger.With("component", "httpapi"),
		users:     userService,
		trips:     tripService,
		imagesDir: imagesDir,
	}
}

func (a *API) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(loggingMiddleware(a.logger))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods(http.MethodGet)

	r.HandleFunc("/register", a.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/login", a.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/profile", a.handleGetProfile).Methods(http.MethodGet)
	r.HandleFunc("/createProfile", a.handleCreateProfile).Methods(http.MethodPost)
	r.HandleFunc("/deleteAccount", a.handleDeleteAccount).Methods(http.MethodPost)
	r.HandleFunc("/changePassword", a.handleChangePassword).Methods(http.MethodPost)

	r.HandleFunc("/trips", a.handleListTrips).Methods(http.MethodGet)
	r.HandleFunc("/trips", a.handleCreateTrip).Methods(http.MethodPost)
	r.HandleFunc("/trips/{id}", a.handleGetTrip).Methods(http.MethodGet)
	r.HandleFunc("/trips/{id}/edit", a.handleAddEntry).Methods(http.MethodPost)

	r.PathPrefix("/images/").Handler(
		http.StripPrefix("/images/", http.FileServer(http.Dir(a.imagesDir))),
	).Methods(http.MethodGet)

	return r
}
