package models

import "time"

type SubscriptionStatus struct {
	IsActive  bool
	ExpiresAt *time.Time
}

// ValidAt reports whether the subscription is active and expires strictly after now.
func (s SubscriptionStatus) ValidAt(now time.Time) bool {
	return s.IsActive && s.ExpiresAt != nil && s.ExpiresAt.After(now)
}
