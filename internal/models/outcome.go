package models

// Outcome is the result of the decision pipeline: exactly one of
// NotEntitled, Clean or Flagged.
type Outcome interface {
	isOutcome()
}

// NotEntitled means the account's subscription is not valid and no lookup ran.
type NotEntitled struct{}

// Clean means the lookup returned no records. Degraded is set when the
// lookup failed and fell back to the empty result.
type Clean struct {
	Degraded bool
}

// Flagged carries the non-empty record set returned for the caller.
type Flagged struct {
	Records []ReputationRecord
}

func (NotEntitled) isOutcome() {}
func (Clean) isOutcome()       {}
func (Flagged) isOutcome()     {}
