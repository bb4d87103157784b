package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"rentaldesk-backend/internal/domain"
	"rentaldesk-backend/internal/wizard"
)

func (s *Server) handleWizardStart(w http.ResponseWriter, r *http.Request) {
	wz, err := s.wizards.StartNew(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, wz.Snapshot())
}

func (s *Server) handleWizardStartEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid agreement id"})
		return
	}
	checkin := r.URL.Query().Get("checkin") == "true"
	wz, err := s.wizards.StartEdit(r.Context(), id, checkin)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, wz.Snapshot())
}

// session resolves the {session} route variable to a live wizard
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*wizard.Wizard, bool) {
	id := mux.Vars(r)["session"]
	wz, ok := s.wizards.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody{Message: "wizard session not found"})
		return nil, false
	}
	return wz, true
}

func (s *Server) handleWizardState(w http.ResponseWriter, r *http.Request) {
	wz, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, wz.Snapshot())
}

func (s *Server) handleWizardCancel(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["session"]
	s.wizards.Cancel(id)
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleWizardDuration(w http.ResponseWriter, r *http.Request) {
	wz, ok := s.session(w, r)
	if !ok {
		return
	}
	var duration domain.Duration
	if err := json.NewDecoder(r.Body).Decode(&duration); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid request body"})
		return
	}
	if err := wz.DurationChanged(r.Context(), duration); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wz.Snapshot())
}

func (s *Server) handleWizardCustomer(w http.ResponseWriter, r *http.Request) {
	wz, ok := s.session(w, r)
	if !ok {
		return
	}
	var info wizard.CustomerInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid request body"})
		return
	}
	if err := wz.CustomerSelected(r.Context(), info); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wz.Snapshot())
}

func (s *Server) handleWizardVehicle(w http.ResponseWriter, r *http.Request) {
	wz, ok := s.session(w, r)
	if !ok {
		return
	}
	var info wizard.VehicleInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid request body"})
		return
	}
	if err := wz.VehicleSelected(r.Context(), info); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wz.Snapshot())
}

func (s *Server) handleWizardRateNames(w http.ResponseWriter, r *http.Request) {
	wz, ok := s.session(w, r)
	if !ok {
		return
	}
	names, err := wz.RateNames(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, names)
}

func (s *Server) handleWizardRateSelect(w http.ResponseWriter, r *http.Request) {
	wz, ok := s.session(w, r)
	if !ok {
		return
	}
	var body struct {
		RateName string `json:"rateName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid request body"})
		return
	}
	if err := wz.RateNameSelected(r.Context(), body.RateName); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wz.Snapshot())
}

func (s *Server) handleWizardRateEdit(w http.ResponseWriter, r *http.Request) {
	wz, ok := s.session(w, r)
	if !ok {
		return
	}
	var edits domain.Rate
	if err := json.NewDecoder(r.Body).Decode(&edits); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid request body"})
		return
	}
	if err := wz.RateEdited(r.Context(), edits); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wz.Snapshot())
}

// miscChargeAction is one selection edit; every edit re-saves the full
// charge record into the working list immediately
type miscChargeAction struct {
	Action   string  `json:"action"` // "check", "uncheck", "quantity", "price", "option", "confirm"
	ChargeID int32   `json:"chargeId,omitempty"`
	Quantity int32   `json:"quantity,omitempty"`
	Price    float64 `json:"price,omitempty"`
	OptionID int32   `json:"optionId,omitempty"`
}

func (s *Server) handleWizardMiscCharges(w http.ResponseWriter, r *http.Request) {
	wz, ok := s.session(w, r)
	if !ok {
		return
	}
	var action miscChargeAction
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid request body"})
		return
	}

	var err error
	switch action.Action {
	case "check":
		err = wz.CheckMiscCharge(r.Context(), action.ChargeID)
	case "uncheck":
		err = wz.UncheckMiscCharge(r.Context(), action.ChargeID)
	case "quantity":
		err = wz.SetMiscChargeQuantity(r.Context(), action.ChargeID, action.Quantity)
	case "price":
		err = wz.SetMiscChargePrice(r.Context(), action.ChargeID, action.Price)
	case "option":
		err = wz.SelectMiscChargeOption(r.Context(), action.ChargeID, action.OptionID)
	case "confirm":
		err = wz.ConfirmMiscCharges(r.Context())
	default:
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "unknown misc charge action"})
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wz.Snapshot())
}

func (s *Server) handleWizardTaxes(w http.ResponseWriter, r *http.Request) {
	wz, ok := s.session(w, r)
	if !ok {
		return
	}
	var body struct {
		TaxIDs  []int32 `json:"taxIds"`
		Confirm bool    `json:"confirm"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "invalid request body"})
		return
	}
	if body.TaxIDs != nil {
		if err := wz.SetTaxes(r.Context(), body.TaxIDs); err != nil {
			writeError(w, err)
			return
		}
	}
	if body.Confirm {
		if err := wz.ConfirmTaxes(r.Context()); err != nil {
			writeError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, wz.Snapshot())
}

func (s *Server) handleWizardSummary(w http.ResponseWriter, r *http.Request) {
	wz, ok := s.session(w, r)
	if !ok {
		return
	}
	summary := wz.Summary()
	if summary == nil {
		writeJSON(w, http.StatusNoContent, nil)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleWizardSubmit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["session"]
	agreementID, err := s.wizards.Submit(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int32{"agreementId": agreementID})
}
