package http

import (
	"net/http"
	"strconv"

	"rentaldesk-backend/internal/schema"
)

func (s *Server) handleVehicleSearch(w http.ResponseWriter, r *http.Request) {
	params := schema.ParseSearchParams(r.URL.Query())
	vehicles, pagination, err := s.fleet.SearchVehicles(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listEnvelope{Data: vehicles, Pagination: pagination})
}

func (s *Server) handleVehicleView(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid vehicle id"})
		return
	}
	vehicle, err := s.fleet.GetVehicle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (s *Server) handleVehicleAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var locationID, vehicleTypeID int32
	if n, err := strconv.Atoi(query.Get("locationId")); err == nil {
		locationID = int32(n)
	}
	if raw := query.Get("vehicleTypeId"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			vehicleTypeID = int32(n)
		}
	}
	start, err := schema.ParseDate(query.Get("startDate"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid startDate"})
		return
	}
	end, err := schema.ParseDate(query.Get("endDate"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid endDate"})
		return
	}
	if locationID == 0 {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "locationId is required"})
		return
	}

	vehicles, err := s.fleet.ListAvailableVehicles(r.Context(), locationID, start, end, vehicleTypeID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (s *Server) handleVehicleTypes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	var locationID int32
	if raw := query.Get("locationId"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			locationID = int32(n)
		}
	}

	start, _ := schema.ParseDate(query.Get("startDate"))
	end, _ := schema.ParseDate(query.Get("endDate"))

	types, err := s.fleet.ListVehicleTypes(r.Context(), locationID, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types)
}

func (s *Server) handleVehicleStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := s.fleet.ListVehicleStatuses(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statuses)
}

func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := s.fleet.ListLocations(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, locations)
}
