package controllers

import (
	"callguard/internal/bridge"
	"net/http"
)

// HandoffSource lists hand-offs that were sent to the host app.
type HandoffSource interface {
	Recent() []bridge.Intent
}

type HandoffController struct {
	source HandoffSource
}

func NewHandoffController(source HandoffSource) *HandoffController {
	return &HandoffController{source: source}
}

func (hc *HandoffController) Recent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, hc.source.Recent())
}
