package models

import (
	"fmt"
	"strings"
)

// ReputationRecord is one reported tag for a fingerprint.
type ReputationRecord struct {
	Tag      string         `json:"tag"`
	Count    int            `json:"count"`
	Region   OptionalString `json:"region"`
	Category OptionalString `json:"category"`
	ShopName OptionalString `json:"shop_name"`
}

// DisplayRegion returns the region unless it is missing or equals the backend's unset value.
func (r ReputationRecord) DisplayRegion(unset string) (string, bool) {
	region, ok := r.Region.Get()
	if !ok || region == unset {
		return "", false
	}
	return region, true
}

// TotalCount sums counts across records.
func TotalCount(records []ReputationRecord) int {
	total := 0
	for _, r := range records {
		total += r.Count
	}
	return total
}

// TagSummary renders "tag N건, tag N건" in record order.
func TagSummary(records []ReputationRecord) string {
	parts := make([]string, 0, len(records))
	for _, r := range records {
		parts = append(parts, fmt.Sprintf("%s %d건", r.Tag, r.Count))
	}
	return strings.Join(parts, ", ")
}
