package models

import (
	"strings"
	"time"
)

// CallEvent is one incoming call delivered by the telephony bridge.
type CallEvent struct {
	ID         string    `json:"id"`
	Handle     string    `json:"handle"`
	ReceivedAt time.Time `json:"-"`
}

// Number returns the scheme-specific part of the handle ("tel:+82 10..." -> "+82 10...").
func (e CallEvent) Number() string {
	if i := strings.IndexByte(e.Handle, ':'); i >= 0 {
		return e.Handle[i+1:]
	}
	return e.Handle
}

// CallDecision is the response handed back to telephony for every event.
type CallDecision struct {
	DisallowCall     bool `json:"disallow_call"`
	RejectCall       bool `json:"reject_call"`
	SilenceCall      bool `json:"silence_call"`
	SkipCallLog      bool `json:"skip_call_log"`
	SkipNotification bool `json:"skip_notification"`
}

// PassThrough lets the call ring normally. It is the only decision callguard makes.
func PassThrough() CallDecision {
	return CallDecision{}
}
