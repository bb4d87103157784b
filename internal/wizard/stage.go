package wizard

// Stage is one logical step of the rental create/edit wizard
type Stage string

const (
	StageRental      Stage = "rental"
	StageCustomer    Stage = "customer"
	StageInsurance   Stage = "insurance"
	StageVehicle     Stage = "vehicle"
	StageRates       Stage = "rates"
	StageTaxes       Stage = "taxes"
	StageMiscCharges Stage = "miscCharges"
	StagePayments    Stage = "payments"
	StageOthers      Stage = "others"
)

// requiredStages are the stages a user must satisfy before submission
var requiredStages = []Stage{StageRental, StageCustomer, StageVehicle, StageRates, StageTaxes, StageMiscCharges}

// optionalStages are not implemented by this client and start satisfied
var optionalStages = []Stage{StageInsurance, StagePayments, StageOthers}

// StageTracker is the fixed-key completion map for one wizard session
type StageTracker map[Stage]bool

// NewStageTracker returns the default completion map: required stages
// incomplete, optional stages vacuously satisfied
func NewStageTracker() StageTracker {
	t := make(StageTracker, len(requiredStages)+len(optionalStages))
	for _, s := range requiredStages {
		t[s] = false
	}
	for _, s := range optionalStages {
		t[s] = true
	}
	return t
}

// Complete flips one stage to satisfied, leaving the others untouched
func (t StageTracker) Complete(s Stage) {
	t[s] = true
}

// Reset flips one stage back to unsatisfied
func (t StageTracker) Reset(s Stage) {
	t[s] = false
}

// IsComplete reports one stage's flag
func (t StageTracker) IsComplete(s Stage) bool {
	return t[s]
}

// CanSubmit reports whether every stage is satisfied; this gates the
// Create/Save action
func (t StageTracker) CanSubmit() bool {
	for _, done := range t {
		if !done {
			return false
		}
	}
	return true
}

// clone returns an independent copy for state snapshots
func (t StageTracker) clone() StageTracker {
	out := make(StageTracker, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}
