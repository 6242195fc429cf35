// Package presenter owns the single transient overlay: it shows one surface
// per outcome, dismisses it on a timer, and handles user actions.
package presenter

import (
	"callguard/internal/failopen"
	"callguard/internal/models"
	"callguard/internal/providers"
	"callguard/internal/structures"
	"errors"
	"sync"
	"time"
	"unicode/utf8"
)

const component = "presenter"

var (
	// ErrPermissionUnavailable is returned by a Surface that may not draw overlays.
	ErrPermissionUnavailable = failopen.New(failopen.PermissionUnavailable, component, "overlay permission not granted", nil)
	// ErrSurfaceGone is returned by a Surface asked to remove a view the environment already removed.
	ErrSurfaceGone = failopen.New(failopen.StaleOverlayRace, component, "surface already removed", nil)
)

// OverlayState is the single active overlay.
type OverlayState struct {
	ID               uint64                    `json:"id"`
	Variant          Variant                   `json:"variant"`
	Records          []models.ReputationRecord `json:"records,omitempty"`
	MaskedNumber     string                    `json:"masked_number"`
	CreatedAt        time.Time                 `json:"created_at"`
	AutoDismissAfter time.Duration             `json:"auto_dismiss_after"`
}

// OverlayView is what the render collaborator draws.
type OverlayView struct {
	ID      uint64  `json:"id"`
	Variant Variant `json:"variant"`
	Content Content `json:"content"`
}

// Surface renders and removes overlay views.
type Surface interface {
	Show(view OverlayView) error
	Remove(id uint64) error
}

// HostApp receives hand-offs to the host application. Calls are fire-and-forget.
type HostApp interface {
	OpenRegistration(maskedNumber string)
	OpenRenewal()
}

type PresenterInterface interface {
	Present(outcome models.Outcome, maskedNumber string) (OverlayState, bool)
	Dismiss(reason Reason) bool
	DismissOverlay(id uint64, reason Reason) bool
	Active() (OverlayState, bool)
	MaskChar() rune
}

type activeOverlay struct {
	state OverlayState
	timer Timer
}

// Presenter serializes every surface mutation through mu. At most one
// overlay is active, and each overlay is torn down exactly once.
type Presenter struct {
	mu          sync.Mutex
	active      *activeOverlay
	nextID      uint64
	surface     Surface
	host        HostApp
	clock       Clock
	logger      providers.Logger
	metrics     providers.MetricsProviderInterface
	maskChar    rune
	unsetRegion string
}

func NewPresenter(conf *structures.Config, surface Surface, host HostApp, clock Clock, logger providers.Logger, metrics providers.MetricsProviderInterface) PresenterInterface {
	maskChar := DefaultMaskChar
	if r, size := utf8.DecodeRuneInString(conf.Overlay.MaskChar); size > 0 && r != utf8.RuneError {
		maskChar = r
	}
	return &Presenter{
		surface:     surface,
		host:        host,
		clock:       clock,
		logger:      logger,
		metrics:     metrics,
		maskChar:    maskChar,
		unsetRegion: conf.Reputation.UnsetRegion,
	}
}

func (p *Presenter) MaskChar() rune {
	return p.maskChar
}

// Present tears down any active overlay, then shows one for outcome. It
// returns false when the surface refused to show, in which case no overlay
// is active.
func (p *Presenter) Present(outcome models.Outcome, maskedNumber string) (OverlayState, bool) {
	variant := VariantFor(outcome)

	p.mu.Lock()
	if p.active != nil {
		p.teardownLocked(ReasonSuperseded)
	}

	p.nextID++
	state := OverlayState{
		ID:               p.nextID,
		Variant:          variant,
		Records:          recordsOf(outcome),
		MaskedNumber:     maskedNumber,
		CreatedAt:        p.clock.Now(),
		AutoDismissAfter: variant.AutoDismissAfter(),
	}

	view := OverlayView{ID: state.ID, Variant: variant, Content: Render(state, p.unsetRegion)}
	if err := p.surface.Show(view); err != nil {
		p.mu.Unlock()
		if errors.Is(err, ErrPermissionUnavailable) {
			p.logger.Warnf(providers.TypeOverlay, "overlay %d (%s) not shown: %s", state.ID, variant, err)
		} else {
			p.logger.Errorf(providers.TypeOverlay, "overlay %d (%s) failed to show: %s", state.ID, variant, err)
		}
		return OverlayState{}, false
	}

	id := state.ID
	p.active = &activeOverlay{
		state: state,
		timer: p.clock.AfterFunc(state.AutoDismissAfter, func() { p.expire(id) }),
	}
	p.mu.Unlock()

	p.logger.Infof(providers.TypeOverlay, "overlay %d shown: %s for %s", id, variant, state.AutoDismissAfter)
	return state, true
}

// Dismiss tears down whichever overlay is active. It reports whether a
// teardown happened; calling it with nothing active is a no-op.
func (p *Presenter) Dismiss(reason Reason) bool {
	p.mu.Lock()
	if p.active == nil {
		p.mu.Unlock()
		return false
	}
	handoff := p.teardownLocked(reason)
	p.mu.Unlock()

	if handoff != nil {
		handoff()
	}
	return true
}

// DismissOverlay tears down overlay id only if it is still the active one.
func (p *Presenter) DismissOverlay(id uint64, reason Reason) bool {
	p.mu.Lock()
	if p.active == nil || p.active.state.ID != id {
		p.mu.Unlock()
		return false
	}
	handoff := p.teardownLocked(reason)
	p.mu.Unlock()

	if handoff != nil {
		handoff()
	}
	return true
}

func (p *Presenter) Active() (OverlayState, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active == nil {
		return OverlayState{}, false
	}
	return p.active.state, true
}

// expire is the auto-dismiss callback. A timer that lost the race against a
// user action or a newer overlay observes a different active id and does nothing.
func (p *Presenter) expire(id uint64) {
	if !p.DismissOverlay(id, ReasonTimeout) {
		p.logger.Debugf(providers.TypeOverlay, "auto-dismiss for overlay %d ignored, already torn down", id)
	}
}

// teardownLocked removes the active overlay. It returns the host hand-off
// to run after mu is released, if reason calls for one.
func (p *Presenter) teardownLocked(reason Reason) func() {
	o := p.active
	p.active = nil
	if reason != ReasonTimeout {
		o.timer.Stop()
	}

	if err := p.surface.Remove(o.state.ID); err != nil {
		if errors.Is(err, ErrSurfaceGone) {
			p.logger.Debugf(providers.TypeOverlay, "overlay %d already removed by environment", o.state.ID)
		} else {
			p.logger.Warnf(providers.TypeOverlay, "overlay %d remove failed: %s", o.state.ID, err)
		}
	}
	p.metrics.IncOverlayTeardown(reason.String())
	p.logger.Infof(providers.TypeOverlay, "overlay %d torn down: %s", o.state.ID, reason)

	if reason != ReasonUserAccept {
		return nil
	}
	return p.handoffFor(o.state)
}

func (p *Presenter) handoffFor(state OverlayState) func() {
	switch state.Variant {
	case VariantHit, VariantClean:
		masked := state.MaskedNumber
		return func() { p.host.OpenRegistration(masked) }
	case VariantExpired:
		return p.host.OpenRenewal
	}
	return nil
}
