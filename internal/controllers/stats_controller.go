package controllers

import (
	"callguard/internal/services"
	"net/http"
)

type StatsController struct {
	journal services.JournalServiceInterface
}

func NewStatsController(journal services.JournalServiceInterface) *StatsController {
	return &StatsController{journal: journal}
}

// GetStats returns the per-day outcome tallies. ?day=2006-01-02 narrows the
// response to a single day.
func (sc *StatsController) GetStats(w http.ResponseWriter, r *http.Request) {
	snapshot := sc.journal.GetSnapshot()
	day := r.URL.Query().Get("day")
	if day == "" {
		writeJSON(w, http.StatusOK, snapshot)
		return
	}

	tally, ok := snapshot.Days[day]
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, tally)
}
