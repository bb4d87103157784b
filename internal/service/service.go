package service

import (
	"context"
	"time"

	"rentaldesk-backend/internal/domain"
	"rentaldesk-backend/internal/navotar"
	"rentaldesk-backend/internal/schema"
	"rentaldesk-backend/internal/wizard"
)

type CustomerService interface {
	SearchCustomers(ctx context.Context, params schema.SearchParams) ([]domain.Customer, navotar.Pagination, error)
	GetCustomer(ctx context.Context, id int32) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, customer *domain.Customer) (int32, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
}

type FleetService interface {
	SearchVehicles(ctx context.Context, params schema.SearchParams) ([]domain.Vehicle, navotar.Pagination, error)
	GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error)
	ListAvailableVehicles(ctx context.Context, locationID int32, start, end time.Time, vehicleTypeID int32) ([]domain.Vehicle, error)
	ListVehicleTypes(ctx context.Context, locationID int32, start, end time.Time) ([]domain.VehicleType, error)
	ListVehicleStatuses(ctx context.Context) ([]string, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
}

type AgreementService interface {
	SearchAgreements(ctx context.Context, params schema.SearchParams) ([]domain.Agreement, navotar.Pagination, error)
	GetAgreement(ctx context.Context, id int32) (*domain.Agreement, error)
	ListStatuses(ctx context.Context) ([]string, error)
	ListTypes(ctx context.Context) ([]string, error)
}

type ReservationService interface {
	SearchReservations(ctx context.Context, params schema.SearchParams) ([]domain.Reservation, navotar.Pagination, error)
	GetReservation(ctx context.Context, id int32) (*domain.Reservation, error)
	CreateReservation(ctx context.Context, reservation *domain.Reservation) (int32, error)
	UpdateReservation(ctx context.Context, reservation *domain.Reservation) error
	ListStatuses(ctx context.Context) ([]string, error)
	ListTypes(ctx context.Context) ([]string, error)
}

type RentalWizardService interface {
	StartNew(ctx context.Context) (*wizard.Wizard, error)
	StartEdit(ctx context.Context, agreementID int32, checkin bool) (*wizard.Wizard, error)
	Get(sessionID string) (*wizard.Wizard, bool)
	Cancel(sessionID string)
	Submit(ctx context.Context, sessionID string) (int32, error)
	SweepIdle(maxIdle time.Duration) int
}

type DashboardService interface {
	GetWidgets(ctx context.Context) ([]domain.DashboardWidget, error)
	SaveWidgets(ctx context.Context, widgets []domain.DashboardWidget) error
	GetStats(ctx context.Context, locationID int32) (*domain.DashboardStats, error)
	GetNotices(ctx context.Context) ([]domain.DashboardNotice, error)
	RefreshStats(ctx context.Context) error
}

// SearchResult is one global-search hit, tagged by module
type SearchResult struct {
	Type  string `json:"type"` // "customer", "vehicle", "reservation", "agreement"
	ID    int32  `json:"id"`
	Label string `json:"label"`
	Extra string `json:"extra,omitempty"`
}

type GlobalSearchService interface {
	Search(ctx context.Context, text string) ([]SearchResult, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	GetPermissions(ctx context.Context, userID int32) ([]domain.Permission, error)
}

type ReportService interface {
	ListFolders(ctx context.Context) ([]domain.ReportFolder, error)
	ListReports(ctx context.Context, folderID int32) ([]domain.Report, error)
	ExportAgreements(ctx context.Context, params schema.SearchParams) ([]byte, error)
}

type EmailService interface {
	SendAgreementConfirmation(ctx context.Context, toEmail, customerName, agreementNumber string) error
	SendReservationConfirmation(ctx context.Context, toEmail, customerName, reservationNumber string) error
}
