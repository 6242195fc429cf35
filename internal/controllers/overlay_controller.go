package controllers

import (
	"callguard/internal/presenter"
	"callguard/internal/structures"
	"net/http"
	"strconv"
)

type OverlayController struct {
	presenter   presenter.PresenterInterface
	unsetRegion string
}

func NewOverlayController(conf *structures.Config, p presenter.PresenterInterface) *OverlayController {
	return &OverlayController{presenter: p, unsetRegion: conf.Reputation.UnsetRegion}
}

type overlayResponse struct {
	presenter.OverlayState
	Content presenter.Content `json:"content"`
}

// GetOverlay returns the active overlay, or 204 when none is showing.
func (oc *OverlayController) GetOverlay(w http.ResponseWriter, r *http.Request) {
	state, ok := oc.presenter.Active()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, overlayResponse{
		OverlayState: state,
		Content:      presenter.Render(state, oc.unsetRegion),
	})
}

func (oc *OverlayController) Dismiss(w http.ResponseWriter, r *http.Request) {
	oc.act(w, r, presenter.ReasonUserDismiss)
}

func (oc *OverlayController) Accept(w http.ResponseWriter, r *http.Request) {
	oc.act(w, r, presenter.ReasonUserAccept)
}

// act applies a user action. With ?id= it only touches that overlay, so a
// tap on an overlay that has already been replaced is not applied to its
// successor.
func (oc *OverlayController) act(w http.ResponseWriter, r *http.Request, reason presenter.Reason) {
	var done bool
	if raw := r.URL.Query().Get("id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		done = oc.presenter.DismissOverlay(id, reason)
	} else {
		done = oc.presenter.Dismiss(reason)
	}

	if !done {
		http.Error(w, "No Active Overlay", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
