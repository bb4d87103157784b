package wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentaldesk-backend/internal/domain"
	"rentaldesk-backend/internal/logger"
	"rentaldesk-backend/internal/navotar"
)

func init() {
	logger.Initialize("error", "text")
}

// fakeBackend is a canned upstream for wizard tests. It records the calls
// the wizard makes so tests can assert on trigger conditions.
type fakeBackend struct {
	optimal    *domain.OptimalRate
	optimalErr error
	rateNames  []string
	rates      []domain.Rate
	ratesErr   error
	charges    []domain.MiscCharge
	taxes      []domain.Tax
	summary    *domain.RentalSummary
	summaryErr error

	optimalCalls int
	ratesCalls   int
	summaryCalls int
	lastRates    navotar.RateParams
	lastSummary  *navotar.SummaryRequest
}

func (f *fakeBackend) GetOptimalRate(ctx context.Context, params navotar.RateParams) (*domain.OptimalRate, error) {
	f.optimalCalls++
	return f.optimal, f.optimalErr
}

func (f *fakeBackend) ListRateNames(ctx context.Context, params navotar.RateParams) ([]string, error) {
	return f.rateNames, nil
}

func (f *fakeBackend) ListRates(ctx context.Context, params navotar.RateParams) ([]domain.Rate, error) {
	f.ratesCalls++
	f.lastRates = params
	return f.rates, f.ratesErr
}

func (f *fakeBackend) ListMiscCharges(ctx context.Context, vehicleTypeID, locationID int32, checkout, checkin time.Time) ([]domain.MiscCharge, error) {
	return f.charges, nil
}

func (f *fakeBackend) ListTaxes(ctx context.Context, locationID int32) ([]domain.Tax, error) {
	return f.taxes, nil
}

func (f *fakeBackend) CalculateSummary(ctx context.Context, req *navotar.SummaryRequest) (*domain.RentalSummary, error) {
	f.summaryCalls++
	f.lastSummary = req
	if f.summaryErr != nil {
		return nil, f.summaryErr
	}
	if f.summary != nil {
		return f.summary, nil
	}
	return &domain.RentalSummary{Total: 100}, nil
}

func testDuration(checkoutLocation int32) domain.Duration {
	return domain.Duration{
		CheckoutDate:       time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		CheckinDate:        time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
		CheckoutLocationID: checkoutLocation,
		CheckinLocationID:  checkoutLocation,
	}
}

func testVehicle() VehicleInfo {
	return VehicleInfo{VehicleID: 44, VehicleTypeID: 7, VehicleNo: "UB-044"}
}

func testCustomer() CustomerInfo {
	return CustomerInfo{CustomerID: 301, FirstName: "Maria", LastName: "Santos"}
}

func TestNewWizardStageDefaults(t *testing.T) {
	w := newWizard("s1", ModeNew, &fakeBackend{}, "622")

	for _, stage := range requiredStages {
		assert.False(t, w.stages.IsComplete(stage), "stage %s should start incomplete", stage)
	}
	for _, stage := range optionalStages {
		assert.True(t, w.stages.IsComplete(stage), "stage %s should start satisfied", stage)
	}
	assert.False(t, w.CanSubmit())
}

func TestCanSubmitRequiresAllStages(t *testing.T) {
	backend := &fakeBackend{
		rates: []domain.Rate{{RateID: 1, RateName: "Standard", DailyRate: 50}},
	}
	w := newWizard("s1", ModeNew, backend, "622")
	ctx := context.Background()

	require.NoError(t, w.DurationChanged(ctx, testDuration(5)))
	require.NoError(t, w.CustomerSelected(ctx, testCustomer()))
	require.NoError(t, w.VehicleSelected(ctx, testVehicle()))
	require.NoError(t, w.RateNameSelected(ctx, "Standard"))
	assert.False(t, w.CanSubmit(), "taxes and misc charges still pending")

	require.NoError(t, w.ConfirmTaxes(ctx))
	assert.False(t, w.CanSubmit())

	require.NoError(t, w.ConfirmMiscCharges(ctx))
	assert.True(t, w.CanSubmit())
}

func TestAggregateFailsWhileIncomplete(t *testing.T) {
	w := newWizard("s1", ModeNew, &fakeBackend{}, "622")

	_, err := w.Aggregate()
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestDurationChangeSameLocationKeepsSelections(t *testing.T) {
	backend := &fakeBackend{
		rates: []domain.Rate{{RateID: 1, RateName: "Standard", DailyRate: 50}},
	}
	w := newWizard("s1", ModeNew, backend, "622")
	ctx := context.Background()

	require.NoError(t, w.DurationChanged(ctx, testDuration(5)))
	require.NoError(t, w.VehicleSelected(ctx, testVehicle()))
	require.NoError(t, w.RateNameSelected(ctx, "Standard"))
	require.NotNil(t, w.rate)

	// same checkout location, later dates
	d := testDuration(5)
	d.CheckinDate = d.CheckinDate.Add(48 * time.Hour)
	require.NoError(t, w.DurationChanged(ctx, d))

	assert.NotNil(t, w.vehicle)
	assert.Equal(t, "Standard", w.rateName)
	assert.NotNil(t, w.rate)
	assert.True(t, w.stages.IsComplete(StageRates))
}

func TestDurationChangeNewLocationCascades(t *testing.T) {
	backend := &fakeBackend{
		rates: []domain.Rate{{RateID: 1, RateName: "Standard", DailyRate: 50}},
		taxes: []domain.Tax{{ID: 9, Name: "GST", IsOptional: false}},
	}
	w := newWizard("s1", ModeNew, backend, "622")
	ctx := context.Background()

	require.NoError(t, w.DurationChanged(ctx, testDuration(5)))
	require.NoError(t, w.CustomerSelected(ctx, testCustomer()))
	require.NoError(t, w.VehicleSelected(ctx, testVehicle()))
	require.NoError(t, w.RateNameSelected(ctx, "Standard"))
	require.NoError(t, w.ConfirmTaxes(ctx))
	require.NoError(t, w.ConfirmMiscCharges(ctx))

	require.NoError(t, w.DurationChanged(ctx, testDuration(7)))

	assert.Nil(t, w.vehicle)
	assert.Empty(t, w.rateName)
	assert.Nil(t, w.rate)
	assert.Empty(t, w.miscCharges)
	assert.False(t, w.stages.IsComplete(StageVehicle))
	assert.False(t, w.stages.IsComplete(StageRates))
	assert.False(t, w.stages.IsComplete(StageTaxes))
	assert.False(t, w.stages.IsComplete(StageMiscCharges))

	// unrelated stages survive the reset
	assert.True(t, w.stages.IsComplete(StageRental))
	assert.True(t, w.stages.IsComplete(StageCustomer))
	assert.NotNil(t, w.customer)
}

func TestFirstDurationEntryNeverCascades(t *testing.T) {
	w := newWizard("s1", ModeNew, &fakeBackend{}, "622")
	ctx := context.Background()

	require.NoError(t, w.VehicleSelected(ctx, testVehicle()))
	require.NoError(t, w.DurationChanged(ctx, testDuration(5)))

	assert.NotNil(t, w.vehicle, "first duration entry must not clear the vehicle")
	assert.True(t, w.stages.IsComplete(StageVehicle))
}

func TestDurationValidationRejected(t *testing.T) {
	w := newWizard("s1", ModeNew, &fakeBackend{}, "622")

	d := testDuration(5)
	d.CheckinDate = d.CheckoutDate
	err := w.DurationChanged(context.Background(), d)
	assert.Error(t, err)
	assert.Nil(t, w.duration)
	assert.False(t, w.stages.IsComplete(StageRental))
}

func TestOptimalRateAppliedWhenSelectionEmpty(t *testing.T) {
	backend := &fakeBackend{
		optimal: &domain.OptimalRate{RateID: 3, RateName: "Weekend Special"},
		rates:   []domain.Rate{{RateID: 3, RateName: "Weekend Special", DailyRate: 40}},
	}
	w := newWizard("s1", ModeNew, backend, "622")
	ctx := context.Background()

	require.NoError(t, w.DurationChanged(ctx, testDuration(5)))
	assert.Zero(t, backend.optimalCalls, "vehicle type not known yet")

	require.NoError(t, w.VehicleSelected(ctx, testVehicle()))
	assert.Equal(t, 1, backend.optimalCalls)
	assert.Equal(t, "Weekend Special", w.rateName)
	require.NotNil(t, w.rate)
	assert.Equal(t, int32(3), w.rate.RateID)
	assert.True(t, w.stages.IsComplete(StageRates))
}

func TestOptimalRateNeverOverridesUserChoice(t *testing.T) {
	backend := &fakeBackend{
		optimal: &domain.OptimalRate{RateID: 3, RateName: "Weekend Special"},
		rates:   []domain.Rate{{RateID: 1, RateName: "Standard", DailyRate: 50}},
	}
	w := newWizard("s1", ModeNew, backend, "622")
	ctx := context.Background()

	require.NoError(t, w.DurationChanged(ctx, testDuration(5)))
	require.NoError(t, w.VehicleSelected(ctx, testVehicle()))
	require.NoError(t, w.RateNameSelected(ctx, "Standard"))

	// another transition re-runs derivation
	require.NoError(t, w.CustomerSelected(ctx, testCustomer()))

	assert.Equal(t, "Standard", w.rateName, "suggestion must not replace an explicit choice")
}

func TestOptimalRateSkippedInEditMode(t *testing.T) {
	backend := &fakeBackend{
		optimal: &domain.OptimalRate{RateID: 3, RateName: "Weekend Special"},
	}
	w := newWizard("s1", ModeEdit, backend, "622")
	ctx := context.Background()

	require.NoError(t, w.DurationChanged(ctx, testDuration(5)))
	require.NoError(t, w.VehicleSelected(ctx, testVehicle()))

	assert.Zero(t, backend.optimalCalls)
	assert.Empty(t, w.rateName)
}

func TestOptimalRateLookupFailureIsNonFatal(t *testing.T) {
	backend := &fakeBackend{optimalErr: errors.New("upstream down")}
	w := newWizard("s1", ModeNew, backend, "622")
	ctx := context.Background()

	require.NoError(t, w.DurationChanged(ctx, testDuration(5)))
	require.NoError(t, w.VehicleSelected(ctx, testVehicle()))

	assert.Empty(t, w.rateName)
	assert.True(t, w.stages.IsComplete(StageVehicle), "transition itself still succeeds")
}

func TestRateNamesRequireDurationAndVehicle(t *testing.T) {
	backend := &fakeBackend{rateNames: []string{"Standard", "Weekend Special"}}
	w := newWizard("s1", ModeNew, backend, "622")
	ctx := context.Background()

	names, err := w.RateNames(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, w.DurationChanged(ctx, testDuration(5)))
	require.NoError(t, w.VehicleSelected(ctx, testVehicle()))

	names, err = w.RateNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Standard", "Weekend Special"}, names)
}

func TestRateNameSelectedFetchesDetail(t *testing.T) {
	backend := &fakeBackend{
		rates: []domain.Rate{{RateID: 1, RateName: "Standard", DailyRate: 50}},
	}
	w := newWizard("s1", ModeNew, backend, "622")
	ctx := context.Background()

	require.NoError(t, w.DurationChanged(ctx, testDuration(5)))
	require.NoError(t, w.VehicleSelected(ctx, testVehicle()))
	require.NoError(t, w.RateNameSelected(ctx, "Standard"))

	assert.Equal(t, "Standard", backend.lastRates.RateName)
	assert.Equal(t, int32(7), backend.lastRates.VehicleTypeID)
	assert.Equal(t, int32(5), backend.lastRates.CheckoutLocationID)
	require.NotNil(t, w.rate)
	assert.Equal(t, float64(50), w.rate.DailyRate)
}

func TestRateNameClearedResetsStage(t *testing.T) {
	backend := &fakeBackend{
		rates: []domain.Rate{{RateID: 1, RateName: "Standard", DailyRate: 50}},
	}
	w := newWizard("s1", ModeNew, backend, "622")
	ctx := context.Background()

	require.NoError(t, w.DurationChanged(ctx, testDuration(5)))
	require.NoError(t, w.VehicleSelected(ctx, testVehicle()))
	require.NoError(t, w.RateNameSelected(ctx, "Standard"))
	require.True(t, w.stages.IsComplete(StageRates))

	require.NoError(t, w.RateNameSelected(ctx, ""))
	assert.False(t, w.stages.IsComplete(StageRates))
	assert.Nil(t, w.rate)
}

func TestRateEditMergeFlatDaily(t *testing.T) {
	w := newWizard("s1", ModeNew, &fakeBackend{}, "622")
	w.rate = &domain.Rate{
		RateID: 1, RateName: "Daily", IsDayRate: true,
		DailyQty: 3, DailyRate: 45, WeeklyRate: 200, FuelCharge: 2,
	}

	err := w.RateEdited(context.Background(), domain.Rate{
		DailyQty: 4, DailyRate: 42, WeeklyRate: 999, FuelCharge: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(4), w.rate.DailyQty)
	assert.Equal(t, float64(42), w.rate.DailyRate)
	assert.Equal(t, float64(3), w.rate.FuelCharge)
	// weekly tier is not part of the flat-daily layout
	assert.Equal(t, float64(200), w.rate.WeeklyRate)
	// identity fields never come from the form
	assert.Equal(t, int32(1), w.rate.RateID)
	assert.True(t, w.rate.IsDayRate)
	assert.True(t, w.stages.IsComplete(StageRates))
}

func TestRateEditMergeDayOfWeek(t *testing.T) {
	w := newWizard("s1", ModeNew, &fakeBackend{}, "622")
	w.rate = &domain.Rate{
		RateID: 2, RateName: "Weekly Table", IsDayWeek: true,
		MonRate: 30, SatRate: 60, DailyRate: 45,
	}

	err := w.RateEdited(context.Background(), domain.Rate{
		MonCount: 1, MonRate: 35, SatCount: 1, SatRate: 55, DailyRate: 999,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(35), w.rate.MonRate)
	assert.Equal(t, float64(55), w.rate.SatRate)
	assert.Equal(t, float64(45), w.rate.DailyRate, "daily tier not editable in the day-of-week layout")
}

func TestRateEditMergeMultiTier(t *testing.T) {
	w := newWizard("s1", ModeNew, &fakeBackend{}, "622")
	w.rate = &domain.Rate{RateID: 3, RateName: "Standard", DailyRate: 50, WeeklyRate: 250}

	err := w.RateEdited(context.Background(), domain.Rate{
		DailyQty: 2, DailyRate: 48, WeeklyQty: 1, WeeklyRate: 240,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(48), w.rate.DailyRate)
	assert.Equal(t, float64(240), w.rate.WeeklyRate)
}

func TestRateEditWithoutFetchedRate(t *testing.T) {
	w := newWizard("s1", ModeNew, &fakeBackend{}, "622")
	err := w.RateEdited(context.Background(), domain.Rate{DailyRate: 48})
	assert.Error(t, err)
}

func TestSummaryRecomputeRequiresFullDraft(t *testing.T) {
	backend := &fakeBackend{
		rates: []domain.Rate{{RateID: 1, RateName: "Standard", DailyRate: 50}},
	}
	w := newWizard("s1", ModeNew, backend, "622")
	ctx := context.Background()

	require.NoError(t, w.DurationChanged(ctx, testDuration(5)))
	require.NoError(t, w.VehicleSelected(ctx, testVehicle()))
	require.NoError(t, w.RateNameSelected(ctx, "Standard"))
	assert.Zero(t, backend.summaryCalls, "no customer yet")
	assert.Nil(t, w.Summary())

	require.NoError(t, w.CustomerSelected(ctx, testCustomer()))
	assert.Equal(t, 1, backend.summaryCalls)
	require.NotNil(t, w.Summary())
	assert.Equal(t, float64(100), w.Summary().Total)
}

func TestSummaryRequestCarriesDraftWithZeroedAdjustments(t *testing.T) {
	backend := &fakeBackend{
		rates: []domain.Rate{{RateID: 1, RateName: "Standard", DailyRate: 50}},
	}
	w := newWizard("s1", ModeNew, backend, "622")
	ctx := context.Background()

	require.NoError(t, w.DurationChanged(ctx, testDuration(5)))
	require.NoError(t, w.CustomerSelected(ctx, testCustomer()))
	require.NoError(t, w.VehicleSelected(ctx, testVehicle()))
	require.NoError(t, w.RateNameSelected(ctx, "Standard"))

	req := backend.lastSummary
	require.NotNil(t, req)
	assert.Equal(t, "622", req.ClientID)
	assert.Equal(t, int32(5), req.LocationID)
	assert.Equal(t, int32(301), req.CustomerID)
	assert.Equal(t, int32(44), req.VehicleID)
	require.NotNil(t, req.Rate)
	assert.Equal(t, "Standard", req.Rate.RateName)
	assert.Zero(t, req.AdvancePayment)
	assert.Zero(t, req.PreAdjustment)
	assert.Zero(t, req.PostAdjustment)
	assert.Zero(t, req.Deposit)
	assert.NotNil(t, req.PromotionIDs)
	assert.Empty(t, req.PromotionIDs)
}

func TestCascadeSuppressesStaleSummary(t *testing.T) {
	backend := &fakeBackend{
		rates: []domain.Rate{{RateID: 1, RateName: "Standard", DailyRate: 50}},
	}
	w := newWizard("s1", ModeNew, backend, "622")
	ctx := context.Background()

	require.NoError(t, w.DurationChanged(ctx, testDuration(5)))
	require.NoError(t, w.CustomerSelected(ctx, testCustomer()))
	require.NoError(t, w.VehicleSelected(ctx, testVehicle()))
	require.NoError(t, w.RateNameSelected(ctx, "Standard"))
	require.NotNil(t, w.Summary())
	calls := backend.summaryCalls

	require.NoError(t, w.DurationChanged(ctx, testDuration(7)))

	assert.Nil(t, w.Summary(), "summary computed against the old location must not show")
	assert.Equal(t, calls, backend.summaryCalls, "no vehicle or rate, nothing to recompute")
}

func TestEditModeSummaryDisplayPolicy(t *testing.T) {
	backend := &fakeBackend{
		summary: &domain.RentalSummary{Total: 180},
	}
	w := newWizard("s1", ModeEdit, backend, "622")
	ctx := context.Background()

	persisted := &domain.RentalSummary{Total: 150}
	w.Hydrate(ctx, &domain.Agreement{
		ID:                 88,
		AgreementType:      "Retail",
		CheckoutDate:       time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		CheckinDate:        time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
		CheckoutLocationID: 5,
		CheckinLocationID:  5,
		CustomerID:         301,
		VehicleID:          44,
		VehicleTypeID:      7,
		RateName:           "Standard",
		Rate:               &domain.Rate{RateID: 1, RateName: "Standard", DailyRate: 50},
		Summary:            persisted,
	})

	require.NotNil(t, w.Summary())
	assert.Equal(t, float64(150), w.Summary().Total, "persisted summary shows before any edit")

	require.NoError(t, w.SetTaxes(ctx, []int32{9}))
	assert.Equal(t, float64(180), w.Summary().Total, "first edit switches to the live summary")
}

func TestHydrateSetsStateAndStages(t *testing.T) {
	w := newWizard("s1", ModeEdit, &fakeBackend{}, "622")

	w.Hydrate(context.Background(), &domain.Agreement{
		ID:                 88,
		AgreementType:      "Retail",
		CheckoutDate:       time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		CheckinDate:        time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
		CheckoutLocationID: 5,
		CheckinLocationID:  5,
		CustomerID:         301,
		CustomerName:       "Maria",
		VehicleID:          44,
		VehicleTypeID:      7,
		VehicleNo:          "UB-044",
		RateName:           "Standard",
		Rate:               &domain.Rate{RateID: 1, RateName: "Standard"},
		MiscCharges:        []domain.SelectedMiscCharge{{ID: 12, Name: "GPS", Quantity: 1, Value: 10}},
		TaxIDs:             []int32{9},
		Summary:            &domain.RentalSummary{Total: 150},
	})

	assert.True(t, w.stages.IsComplete(StageRental))
	assert.True(t, w.stages.IsComplete(StageCustomer))
	assert.True(t, w.stages.IsComplete(StageVehicle))
	assert.True(t, w.stages.IsComplete(StageRates))
	assert.True(t, w.stages.IsComplete(StageTaxes))
	assert.True(t, w.stages.IsComplete(StageMiscCharges))
	assert.True(t, w.CanSubmit())
	assert.False(t, w.edited, "hydration is not an edit")
}

func TestHydrateNeverClobbersExistingState(t *testing.T) {
	backend := &fakeBackend{
		rates: []domain.Rate{{RateID: 5, RateName: "Corporate", DailyRate: 38}},
	}
	w := newWizard("s1", ModeEdit, backend, "622")
	ctx := context.Background()

	first := &domain.Agreement{
		ID:                 88,
		CheckoutDate:       time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		CheckinDate:        time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
		CheckoutLocationID: 5,
		CheckinLocationID:  5,
		CustomerID:         301,
		VehicleID:          44,
		VehicleTypeID:      7,
		RateName:           "Standard",
		Rate:               &domain.Rate{RateID: 1, RateName: "Standard"},
		TaxIDs:             []int32{9},
	}
	w.Hydrate(ctx, first)

	// user swaps the rate before a refetch lands
	require.NoError(t, w.RateNameSelected(ctx, "Corporate"))
	require.NoError(t, w.SetTaxes(ctx, []int32{9, 11}))

	w.Hydrate(ctx, first)

	assert.Equal(t, "Corporate", w.rateName)
	assert.Equal(t, int32(5), w.rate.RateID)
	assert.Equal(t, []int32{9, 11}, w.taxIDs)
}

func TestAggregateAssemblesDraft(t *testing.T) {
	backend := &fakeBackend{
		rates: []domain.Rate{{RateID: 1, RateName: "Standard", DailyRate: 50}},
	}
	w := newWizard("s1", ModeNew, backend, "622")
	ctx := context.Background()

	require.NoError(t, w.DurationChanged(ctx, testDuration(5)))
	require.NoError(t, w.CustomerSelected(ctx, testCustomer()))
	require.NoError(t, w.VehicleSelected(ctx, testVehicle()))
	require.NoError(t, w.RateNameSelected(ctx, "Standard"))
	require.NoError(t, w.SetTaxes(ctx, []int32{9}))
	require.NoError(t, w.ConfirmTaxes(ctx))
	require.NoError(t, w.ConfirmMiscCharges(ctx))

	agreement, err := w.Aggregate()
	require.NoError(t, err)
	assert.Equal(t, int32(5), agreement.CheckoutLocationID)
	assert.Equal(t, int32(301), agreement.CustomerID)
	assert.Equal(t, int32(44), agreement.VehicleID)
	assert.Equal(t, "Standard", agreement.RateName)
	require.NotNil(t, agreement.Rate)
	assert.Equal(t, []int32{9}, agreement.TaxIDs)
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	backend := &fakeBackend{
		rates: []domain.Rate{{RateID: 1, RateName: "Standard", DailyRate: 50}},
	}
	backend.summary = &domain.RentalSummary{Total: 250, BalanceDue: 250}
	w := newWizard("s1", ModeNew, backend, "622")
	ctx := context.Background()

	require.NoError(t, w.DurationChanged(ctx, testDuration(5)))
	require.NoError(t, w.CustomerSelected(ctx, testCustomer()))
	require.NoError(t, w.VehicleSelected(ctx, testVehicle()))
	require.NoError(t, w.RateNameSelected(ctx, "Standard"))

	snap := w.Snapshot()
	require.NotNil(t, snap.Rate)
	require.NotNil(t, snap.Summary)
	snap.Rate.DailyRate = 999
	snap.Duration.CheckoutLocationID = 999
	snap.Summary.Total = 999
	snap.Stages[StageRental] = false

	assert.Equal(t, float64(50), w.rate.DailyRate)
	assert.Equal(t, int32(5), w.duration.CheckoutLocationID)
	assert.Equal(t, float64(250), w.liveSummary.Total)
	assert.True(t, w.stages.IsComplete(StageRental))
}
