package controllers

import (
	"callguard/internal/presenter"
	"callguard/internal/services"
	"fmt"
	"net/http"
	"time"
)

type HealthController struct {
	presenter presenter.PresenterInterface
	journal   services.JournalServiceInterface
	startTime time.Time
}

type healthResponse struct {
	Status        string  `json:"status"`
	Uptime        string  `json:"uptime"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	OverlayActive bool    `json:"overlay_active"`
	JournalDays   int     `json:"journal_days"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	_, active := hc.presenter.Active()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:        "ok",
		Uptime:        formatDuration(uptime),
		UptimeSeconds: uptime.Seconds(),
		OverlayActive: active,
		JournalDays:   len(hc.journal.GetSnapshot().Days),
	})
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(p presenter.PresenterInterface, journal services.JournalServiceInterface) *HealthController {
	return &HealthController{
		presenter: p,
		journal:   journal,
		startTime: time.Now(),
	}
}
