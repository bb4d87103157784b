package http

import (
	"encoding/json"
	"net/http"

	"rentaldesk-backend/internal/domain"
	"rentaldesk-backend/internal/schema"
)

func (s *Server) handleAgreementSearch(w http.ResponseWriter, r *http.Request) {
	params := schema.ParseSearchParams(r.URL.Query())
	agreements, pagination, err := s.agreements.SearchAgreements(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listEnvelope{Data: agreements, Pagination: pagination})
}

func (s *Server) handleAgreementView(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid agreement id"})
		return
	}
	agreement, err := s.agreements.GetAgreement(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, agreement)
}

func (s *Server) handleAgreementStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := s.agreements.ListStatuses(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statuses)
}

func (s *Server) handleAgreementTypes(w http.ResponseWriter, r *http.Request) {
	types, err := s.agreements.ListTypes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types)
}

func (s *Server) handleReservationSearch(w http.ResponseWriter, r *http.Request) {
	params := schema.ParseSearchParams(r.URL.Query())
	reservations, pagination, err := s.reservations.SearchReservations(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listEnvelope{Data: reservations, Pagination: pagination})
}

func (s *Server) handleReservationView(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid reservation id"})
		return
	}
	reservation, err := s.reservations.GetReservation(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

func (s *Server) handleReservationCreate(w http.ResponseWriter, r *http.Request) {
	var reservation domain.Reservation
	if err := json.NewDecoder(r.Body).Decode(&reservation); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid request body"})
		return
	}
	id, err := s.reservations.CreateReservation(r.Context(), &reservation)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int32{"reservationId": id})
}

func (s *Server) handleReservationUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid reservation id"})
		return
	}
	var reservation domain.Reservation
	if err := json.NewDecoder(r.Body).Decode(&reservation); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid request body"})
		return
	}
	reservation.ID = id
	if err := s.reservations.UpdateReservation(r.Context(), &reservation); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

func (s *Server) handleReservationStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := s.reservations.ListStatuses(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statuses)
}

func (s *Server) handleReservationTypes(w http.ResponseWriter, r *http.Request) {
	types, err := s.reservations.ListTypes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types)
}
