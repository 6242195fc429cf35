package controllers

import (
	"callguard/internal/models"
	"callguard/internal/providers"
	"callguard/internal/screening"
	json "github.com/goccy/go-json"
	"net/http"
)

type CallController struct {
	logger   providers.Logger
	screener screening.ScreenerInterface
}

func NewCallController(logger providers.Logger, screener screening.ScreenerInterface) *CallController {
	return &CallController{
		logger:   logger,
		screener: screener,
	}
}

// ReceiveCall answers a telephony call event with the call decision.
func (cc *CallController) ReceiveCall(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var event models.CallEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		cc.logger.Debugf(providers.TypeCall, "rejecting call event: %s", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, cc.screener.Screen(event))
}
