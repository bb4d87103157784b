package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"rentaldesk-backend/internal/service"
)

// Server wires the module services onto the routing surface
type Server struct {
	customers    service.CustomerService
	fleet        service.FleetService
	agreements   service.AgreementService
	reservations service.ReservationService
	wizards      service.RentalWizardService
	dashboard    service.DashboardService
	search       service.GlobalSearchService
	reports      service.ReportService
	users        service.UserService
	auth         *AuthMiddleware
}

func NewServer(
	customers service.CustomerService,
	fleet service.FleetService,
	agreements service.AgreementService,
	reservations service.ReservationService,
	wizards service.RentalWizardService,
	dashboard service.DashboardService,
	search service.GlobalSearchService,
	reports service.ReportService,
	users service.UserService,
	auth *AuthMiddleware,
) *Server {
	return &Server{
		customers:    customers,
		fleet:        fleet,
		agreements:   agreements,
		reservations: reservations,
		wizards:      wizards,
		dashboard:    dashboard,
		search:       search,
		reports:      reports,
		users:        users,
		auth:         auth,
	}
}

// Routes builds the router; every module route sits behind the auth guard
func (s *Server) Routes() *mux.Router {
	root := mux.NewRouter()
	root.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	api := root.PathPrefix("/").Subrouter()
	api.Use(s.auth.Handler)

	// session and operator profile
	api.HandleFunc("/session", s.handleSession).Methods(http.MethodGet)
	api.HandleFunc("/users/me", s.handleUserProfile).Methods(http.MethodGet)
	api.HandleFunc("/users/me/permissions", s.handleUserPermissions).Methods(http.MethodGet)

	// customers
	api.HandleFunc("/customers", s.handleCustomerSearch).Methods(http.MethodGet)
	api.HandleFunc("/customers", s.handleCustomerCreate).Methods(http.MethodPost)
	api.HandleFunc("/customers/{id:[0-9]+}", s.handleCustomerView).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id:[0-9]+}", s.handleCustomerUpdate).Methods(http.MethodPut)

	// vehicles
	api.HandleFunc("/vehicles", s.handleVehicleSearch).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/available", s.handleVehicleAvailability).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/types", s.handleVehicleTypes).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/statuses", s.handleVehicleStatuses).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id:[0-9]+}", s.handleVehicleView).Methods(http.MethodGet)
	api.HandleFunc("/locations", s.handleLocations).Methods(http.MethodGet)

	// agreements
	api.HandleFunc("/agreements", s.handleAgreementSearch).Methods(http.MethodGet)
	api.HandleFunc("/agreements/statuses", s.handleAgreementStatuses).Methods(http.MethodGet)
	api.HandleFunc("/agreements/types", s.handleAgreementTypes).Methods(http.MethodGet)
	api.HandleFunc("/agreements/{id:[0-9]+}", s.handleAgreementView).Methods(http.MethodGet)

	// reservations
	api.HandleFunc("/reservations", s.handleReservationSearch).Methods(http.MethodGet)
	api.HandleFunc("/reservations", s.handleReservationCreate).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id:[0-9]+}", s.handleReservationUpdate).Methods(http.MethodPut)
	api.HandleFunc("/reservations/statuses", s.handleReservationStatuses).Methods(http.MethodGet)
	api.HandleFunc("/reservations/types", s.handleReservationTypes).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id:[0-9]+}", s.handleReservationView).Methods(http.MethodGet)

	// rental wizard sessions
	api.HandleFunc("/wizard", s.handleWizardStart).Methods(http.MethodPost)
	api.HandleFunc("/agreements/{id:[0-9]+}/edit", s.handleWizardStartEdit).Methods(http.MethodPost)
	api.HandleFunc("/wizard/{session}", s.handleWizardState).Methods(http.MethodGet)
	api.HandleFunc("/wizard/{session}", s.handleWizardCancel).Methods(http.MethodDelete)
	api.HandleFunc("/wizard/{session}/duration", s.handleWizardDuration).Methods(http.MethodPut)
	api.HandleFunc("/wizard/{session}/customer", s.handleWizardCustomer).Methods(http.MethodPut)
	api.HandleFunc("/wizard/{session}/vehicle", s.handleWizardVehicle).Methods(http.MethodPut)
	api.HandleFunc("/wizard/{session}/rates", s.handleWizardRateNames).Methods(http.MethodGet)
	api.HandleFunc("/wizard/{session}/rate", s.handleWizardRateSelect).Methods(http.MethodPut)
	api.HandleFunc("/wizard/{session}/rate/edits", s.handleWizardRateEdit).Methods(http.MethodPut)
	api.HandleFunc("/wizard/{session}/misccharges", s.handleWizardMiscCharges).Methods(http.MethodPut)
	api.HandleFunc("/wizard/{session}/taxes", s.handleWizardTaxes).Methods(http.MethodPut)
	api.HandleFunc("/wizard/{session}/summary", s.handleWizardSummary).Methods(http.MethodGet)
	api.HandleFunc("/wizard/{session}/submit", s.handleWizardSubmit).Methods(http.MethodPost)

	// dashboard
	api.HandleFunc("/dashboard/widgets", s.handleDashboardWidgets).Methods(http.MethodGet)
	api.HandleFunc("/dashboard/widgets", s.handleDashboardWidgetSave).Methods(http.MethodPut)
	api.HandleFunc("/dashboard/statistics", s.handleDashboardStats).Methods(http.MethodGet)
	api.HandleFunc("/dashboard/notices", s.handleDashboardNotices).Methods(http.MethodGet)

	// global search and reports
	api.HandleFunc("/search", s.handleGlobalSearch).Methods(http.MethodGet)
	api.HandleFunc("/reports/folders", s.handleReportFolders).Methods(http.MethodGet)
	api.HandleFunc("/reports", s.handleReportList).Methods(http.MethodGet)
	api.HandleFunc("/reports/export/agreements", s.handleReportExport).Methods(http.MethodGet)

	return root
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// pathID parses the {id} route variable
func pathID(r *http.Request) (int32, bool) {
	raw := mux.Vars(r)["id"]
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return int32(n), true
}
