package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (a *API) handleListTrips(w http.ResponseWriter, r *http.Request) {
	list, err := a.trips.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (a *API) handleGetTrip(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	trip, err := a.trips.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

type createTripRequest struct {
	ID        string `json:"id"`
	Location  string `json:"location"`
	Image     string `json:"image"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (a *API) handleCreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if !decodeBody(w, r, &req) {
		return
	}

	trip, err := a.trips.Create(r.Context(), req.ID, req.Location, req.Image, req.StartDate, req.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}

	a.logger.Info(r.Context(), "trip created", "trip_id", trip.ID, "location", trip.Location)
	writeJSON(w, http.StatusOK, trip)
}

type addEntryRequest struct {
	EntryID string `json:"entryId"`
	Date    string `json:"date"`
	Text    string `json:"text"`
}

func (a *API) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	tripID := mux.Vars(r)["id"]

	var req addEntryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entry, err := a.trips.AddEntry(r.Context(), tripID, req.EntryID, req.Date, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}

	a.logger.Info(r.Context(), "diary entry added", "trip_id", tripID, "entry_id", entry.EntryID)
	writeJSON(w, http.StatusOK, entry)
}
