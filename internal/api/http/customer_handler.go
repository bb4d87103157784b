package http

import (
	"encoding/json"
	"net/http"

	"rentaldesk-backend/internal/domain"
	"rentaldesk-backend/internal/schema"
)

func (s *Server) handleCustomerSearch(w http.ResponseWriter, r *http.Request) {
	params := schema.ParseSearchParams(r.URL.Query())
	customers, pagination, err := s.customers.SearchCustomers(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listEnvelope{Data: customers, Pagination: pagination})
}

func (s *Server) handleCustomerView(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid customer id"})
		return
	}
	customer, err := s.customers.GetCustomer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (s *Server) handleCustomerCreate(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid request body"})
		return
	}
	id, err := s.customers.CreateCustomer(r.Context(), &customer)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int32{"customerId": id})
}

func (s *Server) handleCustomerUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid customer id"})
		return
	}
	var customer domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid request body"})
		return
	}
	customer.ID = id
	if err := s.customers.UpdateCustomer(r.Context(), &customer); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}
