package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentaldesk-backend/internal/domain"
)

func chargeFixtures() []domain.MiscCharge {
	return []domain.MiscCharge{
		{ID: 10, Name: "Airport Fee", IsOptional: false, Total: 25},
		{ID: 11, Name: "GPS", IsOptional: true, IsQuantity: true, Total: 8},
		{
			ID: 12, Name: "CDW", IsOptional: true, IsDeductible: true, Total: 30,
			Options: []domain.MiscChargeOption{
				{ID: 121, Name: "1000 deductible", Value: 18},
				{ID: 122, Name: "500 deductible", Value: 24},
				{ID: 123, Name: "Zero deductible", Value: 30},
			},
		},
	}
}

func chargedWizard(t *testing.T, backend *fakeBackend) *Wizard {
	t.Helper()
	w := newWizard("s1", ModeNew, backend, "622")
	ctx := context.Background()
	require.NoError(t, w.DurationChanged(ctx, testDuration(5)))
	require.NoError(t, w.VehicleSelected(ctx, testVehicle()))
	return w
}

func TestMandatoryChargesForcedIntoSelection(t *testing.T) {
	w := chargedWizard(t, &fakeBackend{charges: chargeFixtures()})

	require.Len(t, w.miscCharges, 1)
	sel := w.miscCharges[0]
	assert.Equal(t, int32(10), sel.ID)
	assert.Equal(t, int32(1), sel.Quantity)
	assert.Equal(t, float64(25), sel.Value)
	assert.False(t, sel.IsOptional)
}

func TestMandatoryChargeCannotBeUnchecked(t *testing.T) {
	w := chargedWizard(t, &fakeBackend{charges: chargeFixtures()})

	err := w.UncheckMiscCharge(context.Background(), 10)
	assert.ErrorIs(t, err, ErrMandatory)
	assert.Len(t, w.miscCharges, 1)
}

func TestMandatoryChargeKeepsPriorEntryOnReload(t *testing.T) {
	backend := &fakeBackend{charges: chargeFixtures()}
	w := chargedWizard(t, backend)
	ctx := context.Background()

	require.NoError(t, w.SetMiscChargeQuantity(ctx, 10, 3))
	require.NoError(t, w.SetMiscChargePrice(ctx, 10, 20))

	// a later transition reloads the applicable set
	require.NoError(t, w.CustomerSelected(ctx, testCustomer()))

	require.Len(t, w.miscCharges, 1)
	assert.Equal(t, int32(3), w.miscCharges[0].Quantity)
	assert.Equal(t, float64(20), w.miscCharges[0].Unit)
	assert.Equal(t, float64(60), w.miscCharges[0].Value)
}

func TestCheckOptionalCharge(t *testing.T) {
	w := chargedWizard(t, &fakeBackend{charges: chargeFixtures()})
	ctx := context.Background()

	require.NoError(t, w.CheckMiscCharge(ctx, 11))
	sel := w.findSelected(11)
	require.NotNil(t, sel)
	assert.Equal(t, int32(1), sel.Quantity)
	assert.Equal(t, float64(8), sel.Value)
	assert.True(t, sel.IsOptional)

	// checking twice is a no-op
	require.NoError(t, w.CheckMiscCharge(ctx, 11))
	assert.Len(t, w.miscCharges, 2)

	require.NoError(t, w.UncheckMiscCharge(ctx, 11))
	assert.Nil(t, w.findSelected(11))
}

func TestCheckUnknownChargeRejected(t *testing.T) {
	w := chargedWizard(t, &fakeBackend{charges: chargeFixtures()})

	err := w.CheckMiscCharge(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNoSuchCharge)
}

func TestDeductibleChargeDefaultsToFirstOption(t *testing.T) {
	w := chargedWizard(t, &fakeBackend{charges: chargeFixtures()})

	require.NoError(t, w.CheckMiscCharge(context.Background(), 12))
	sel := w.findSelected(12)
	require.NotNil(t, sel)
	assert.Equal(t, int32(121), sel.OptionID)
	assert.Equal(t, float64(18), sel.Value)
}

func TestSelectDeductibleOption(t *testing.T) {
	w := chargedWizard(t, &fakeBackend{charges: chargeFixtures()})
	ctx := context.Background()

	require.NoError(t, w.CheckMiscCharge(ctx, 12))
	require.NoError(t, w.SelectMiscChargeOption(ctx, 12, 123))

	sel := w.findSelected(12)
	assert.Equal(t, int32(123), sel.OptionID)
	assert.Equal(t, float64(30), sel.Value)

	err := w.SelectMiscChargeOption(ctx, 12, 999)
	assert.ErrorIs(t, err, ErrNoSuchCharge)
}

func TestQuantityFlooredAtOne(t *testing.T) {
	w := chargedWizard(t, &fakeBackend{charges: chargeFixtures()})
	ctx := context.Background()

	require.NoError(t, w.CheckMiscCharge(ctx, 11))
	require.NoError(t, w.SetMiscChargeQuantity(ctx, 11, 0))

	sel := w.findSelected(11)
	assert.Equal(t, int32(1), sel.Quantity)
}

func TestQuantityAndPriceRecomputeValue(t *testing.T) {
	w := chargedWizard(t, &fakeBackend{charges: chargeFixtures()})
	ctx := context.Background()

	require.NoError(t, w.CheckMiscCharge(ctx, 11))
	require.NoError(t, w.SetMiscChargeQuantity(ctx, 11, 4))
	assert.Equal(t, float64(32), w.findSelected(11).Value)

	require.NoError(t, w.SetMiscChargePrice(ctx, 11, 6))
	assert.Equal(t, float64(24), w.findSelected(11).Value)
}

func TestMandatoryTaxesPreCheckedOnce(t *testing.T) {
	backend := &fakeBackend{taxes: []domain.Tax{
		{ID: 9, Name: "GST", Value: 5, IsOptional: false},
		{ID: 10, Name: "PST", Value: 7, IsOptional: false},
		{ID: 11, Name: "Tourism Levy", Value: 2, IsOptional: true},
	}}
	w := newWizard("s1", ModeNew, backend, "622")
	ctx := context.Background()

	require.NoError(t, w.DurationChanged(ctx, testDuration(5)))
	assert.ElementsMatch(t, []int32{9, 10}, w.taxIDs)

	// a reload never re-applies defaults over the user's selection
	require.NoError(t, w.SetTaxes(ctx, []int32{9, 10, 11}))
	require.NoError(t, w.CustomerSelected(ctx, testCustomer()))
	assert.ElementsMatch(t, []int32{9, 10, 11}, w.taxIDs)
}

func TestMandatoryTaxesLockedOn(t *testing.T) {
	backend := &fakeBackend{taxes: []domain.Tax{
		{ID: 9, Name: "GST", Value: 5, IsOptional: false},
		{ID: 11, Name: "Tourism Levy", Value: 2, IsOptional: true},
	}}
	w := newWizard("s1", ModeNew, backend, "622")
	ctx := context.Background()

	require.NoError(t, w.DurationChanged(ctx, testDuration(5)))
	require.NoError(t, w.SetTaxes(ctx, []int32{11}))

	assert.ElementsMatch(t, []int32{11, 9}, w.taxIDs, "deselecting a mandatory tax re-adds it")
}

func TestTaxDefaultsSkippedAfterHydration(t *testing.T) {
	backend := &fakeBackend{taxes: []domain.Tax{
		{ID: 9, Name: "GST", Value: 5, IsOptional: false},
		{ID: 11, Name: "Tourism Levy", Value: 2, IsOptional: true},
	}}
	w := newWizard("s1", ModeEdit, backend, "622")
	ctx := context.Background()

	w.Hydrate(ctx, &domain.Agreement{
		ID:                 88,
		CheckoutDate:       testDuration(5).CheckoutDate,
		CheckinDate:        testDuration(5).CheckinDate,
		CheckoutLocationID: 5,
		CheckinLocationID:  5,
		TaxIDs:             []int32{9, 11},
	})

	// a duration refresh within the same location reloads taxes
	require.NoError(t, w.DurationChanged(ctx, testDuration(5)))
	assert.ElementsMatch(t, []int32{9, 11}, w.taxIDs)
}
