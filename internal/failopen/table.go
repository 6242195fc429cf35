package failopen

import "callguard/internal/models"

const (
	ComponentReputation  = "reputation"
	ComponentEntitlement = "entitlement"
)

// Reputation degrades to an empty record set: the caller sees no warning.
func Reputation(r Reporter) Policy[[]models.ReputationRecord] {
	return Policy[[]models.ReputationRecord]{
		Component: ComponentReputation,
		Default:   func() []models.ReputationRecord { return []models.ReputationRecord{} },
		Reporter:  r,
	}
}

// Entitlement degrades to entitled so an outage never disables warnings.
func Entitlement(r Reporter) Policy[bool] {
	return Policy[bool]{
		Component: ComponentEntitlement,
		Default:   func() bool { return true },
		Reporter:  r,
	}
}
