package bridge

import (
	"callguard/internal/structures"
	"sync"
	"time"
)

const (
	IntentRegister = "register_phone"
	IntentRenew    = "renew_subscription"
)

// Intent is one hand-off to the host application.
type Intent struct {
	Action       string    `json:"action"`
	MaskedNumber string    `json:"masked_number,omitempty"`
	At           time.Time `json:"at"`
}

// HostBridge keeps the most recent hand-offs in a bounded ring for the host
// to collect.
type HostBridge struct {
	mu      sync.Mutex
	intents []Intent
	next    int
	full    bool
	now     func() time.Time
}

func NewHostBridge(conf *structures.Config) *HostBridge {
	size := conf.Overlay.HandoffHistory
	if size < 1 {
		size = 1
	}
	return &HostBridge{intents: make([]Intent, size), now: time.Now}
}

func (h *HostBridge) OpenRegistration(maskedNumber string) {
	h.push(Intent{Action: IntentRegister, MaskedNumber: maskedNumber})
}

func (h *HostBridge) OpenRenewal() {
	h.push(Intent{Action: IntentRenew})
}

func (h *HostBridge) push(intent Intent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	intent.At = h.now()
	h.intents[h.next] = intent
	h.next = (h.next + 1) % len(h.intents)
	if h.next == 0 {
		h.full = true
	}
}

// Recent returns hand-offs oldest first.
func (h *HostBridge) Recent() []Intent {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.full {
		return append([]Intent(nil), h.intents[:h.next]...)
	}
	out := make([]Intent, 0, len(h.intents))
	out = append(out, h.intents[h.next:]...)
	return append(out, h.intents[:h.next]...)
}
