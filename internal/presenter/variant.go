package presenter

import (
	"callguard/internal/models"
	"fmt"
	"time"
)

// Variant is the kind of overlay shown for an outcome.
type Variant int

const (
	VariantHit Variant = iota + 1
	VariantClean
	VariantExpired
)

// Auto-dismiss windows. Flagged warnings stay longest.
const (
	HitDismissAfter     = 15 * time.Second
	CleanDismissAfter   = 8 * time.Second
	ExpiredDismissAfter = 10 * time.Second
)

func (v Variant) String() string {
	switch v {
	case VariantHit:
		return "hit"
	case VariantClean:
		return "clean"
	case VariantExpired:
		return "expired"
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// AutoDismissAfter returns the fixed window for v.
func (v Variant) AutoDismissAfter() time.Duration {
	switch v {
	case VariantHit:
		return HitDismissAfter
	case VariantClean:
		return CleanDismissAfter
	case VariantExpired:
		return ExpiredDismissAfter
	}
	panic(fmt.Sprintf("presenter: unhandled variant %d", int(v)))
}

// VariantFor maps a pipeline outcome to the overlay that presents it.
func VariantFor(outcome models.Outcome) Variant {
	switch outcome.(type) {
	case models.Flagged:
		return VariantHit
	case models.Clean:
		return VariantClean
	case models.NotEntitled:
		return VariantExpired
	}
	panic(fmt.Sprintf("presenter: unhandled outcome %T", outcome))
}

func recordsOf(outcome models.Outcome) []models.ReputationRecord {
	if f, ok := outcome.(models.Flagged); ok {
		return f.Records
	}
	return nil
}

// Reason is why an overlay was torn down.
type Reason int

const (
	ReasonTimeout Reason = iota + 1
	ReasonUserDismiss
	ReasonUserAccept
	// ReasonSuperseded is used when a newer overlay replaces the active one.
	ReasonSuperseded
	ReasonShutdown
)

func (r Reason) String() string {
	switch r {
	case ReasonTimeout:
		return "timeout"
	case ReasonUserDismiss:
		return "user_dismiss"
	case ReasonUserAccept:
		return "user_accept"
	case ReasonSuperseded:
		return "superseded"
	case ReasonShutdown:
		return "shutdown"
	}
	return fmt.Sprintf("reason(%d)", int(r))
}
