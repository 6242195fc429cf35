package services

import (
	"callguard/internal/models"
	"callguard/internal/structures"
	"sync"
	"time"
)

const dayLayout = "2006-01-02"

type JournalServiceInterface interface {
	RecordOutcome(outcome models.Outcome, at time.Time)
	RecordDuplicate(at time.Time)
	RecordTaskFailure(at time.Time)
	Prune(now time.Time) int
	GetSnapshot() models.Journal
	PutJournal(journal models.Journal)
}

// JournalService keeps per-day outcome tallies in memory.
type JournalService struct {
	mu         sync.Mutex
	days       map[string]*models.DayTally
	retainDays int
}

func NewJournalService(conf *structures.Config) JournalServiceInterface {
	return &JournalService{
		days:       make(map[string]*models.DayTally),
		retainDays: conf.Journal.RetainDays,
	}
}

func (js *JournalService) dayLocked(at time.Time) *models.DayTally {
	key := at.Format(dayLayout)
	tally, ok := js.days[key]
	if !ok {
		tally = &models.DayTally{}
		js.days[key] = tally
	}
	return tally
}

func (js *JournalService) RecordOutcome(outcome models.Outcome, at time.Time) {
	js.mu.Lock()
	defer js.mu.Unlock()

	tally := js.dayLocked(at)
	tally.Calls++
	switch o := outcome.(type) {
	case models.Flagged:
		tally.Hits++
	case models.Clean:
		tally.Clean++
		if o.Degraded {
			tally.Degraded++
		}
	case models.NotEntitled:
		tally.Expired++
	}
}

func (js *JournalService) RecordDuplicate(at time.Time) {
	js.mu.Lock()
	defer js.mu.Unlock()
	js.dayLocked(at).Duplicates++
}

func (js *JournalService) RecordTaskFailure(at time.Time) {
	js.mu.Lock()
	defer js.mu.Unlock()
	js.dayLocked(at).TaskFailure++
}

// Prune drops days older than the retention window and returns how many
// were removed. A non-positive retention keeps everything.
func (js *JournalService) Prune(now time.Time) int {
	if js.retainDays <= 0 {
		return 0
	}
	cutoff := now.AddDate(0, 0, -js.retainDays).Format(dayLayout)

	js.mu.Lock()
	defer js.mu.Unlock()
	removed := 0
	for key := range js.days {
		// day keys sort lexically in date order
		if key < cutoff {
			delete(js.days, key)
			removed++
		}
	}
	return removed
}

func (js *JournalService) GetSnapshot() models.Journal {
	js.mu.Lock()
	defer js.mu.Unlock()

	days := make(map[string]*models.DayTally, len(js.days))
	for key, tally := range js.days {
		copied := *tally
		days[key] = &copied
	}
	return models.Journal{Days: days}
}

// PutJournal merges a restored journal into the live tallies.
func (js *JournalService) PutJournal(journal models.Journal) {
	js.mu.Lock()
	defer js.mu.Unlock()

	for key, restored := range journal.Days {
		if restored == nil {
			continue
		}
		tally, ok := js.days[key]
		if !ok {
			copied := *restored
			js.days[key] = &copied
			continue
		}
		tally.Calls += restored.Calls
		tally.Hits += restored.Hits
		tally.Clean += restored.Clean
		tally.Expired += restored.Expired
		tally.Degraded += restored.Degraded
		tally.Duplicates += restored.Duplicates
		tally.TaskFailure += restored.TaskFailure
	}
}
