// Package screening answers call events and runs one supervised decision
// task per event in the background.
package screening

import (
	"callguard/internal/identity"
	"callguard/internal/models"
	"callguard/internal/notification"
	"callguard/internal/pipeline"
	"callguard/internal/presenter"
	"callguard/internal/providers"
	"callguard/internal/services"
	"callguard/internal/structures"
	"context"
	"fmt"
	"github.com/google/uuid"
	"go.uber.org/atomic"
	"runtime/debug"
	"sync"
	"time"
)

var dedupeMarker = []byte{1}

type ScreenerInterface interface {
	Screen(event models.CallEvent) models.CallDecision
	Shutdown(ctx context.Context) error
}

type Screener struct {
	pipeline    pipeline.PipelineInterface
	presenter   presenter.PresenterInterface
	notifier    notification.NotifierInterface
	identity    identity.StoreInterface
	dedupe      providers.CacheProviderInterface
	journal     services.JournalServiceInterface
	metrics     providers.MetricsProviderInterface
	logger      providers.Logger
	taskTimeout time.Duration
	now         func() time.Time

	wg       sync.WaitGroup
	inFlight atomic.Int64
}

func NewScreener(
	conf *structures.Config,
	pipe pipeline.PipelineInterface,
	pres presenter.PresenterInterface,
	notifier notification.NotifierInterface,
	store identity.StoreInterface,
	dedupe providers.CacheProviderInterface,
	journal services.JournalServiceInterface,
	metrics providers.MetricsProviderInterface,
	logger providers.Logger,
) ScreenerInterface {
	return &Screener{
		pipeline:    pipe,
		presenter:   pres,
		notifier:    notifier,
		identity:    store,
		dedupe:      dedupe,
		journal:     journal,
		metrics:     metrics,
		logger:      logger,
		taskTimeout: conf.Screening.TaskTimeout,
		now:         time.Now,
	}
}

// Screen produces the pass-through decision before any work is scheduled,
// then hands the event to a background task. A redelivered event id does not
// schedule a second task.
func (s *Screener) Screen(event models.CallEvent) models.CallDecision {
	decision := Emit()
	s.metrics.IncCallEvents()

	if event.ReceivedAt.IsZero() {
		event.ReceivedAt = s.now()
	}
	if event.ID == "" {
		event.ID = "anon-" + uuid.NewString()
	} else if _, seen := s.dedupe.GetOrSet(event.ID, dedupeMarker); seen {
		s.logger.Debugf(providers.TypeCall, "call %s already screened, skipping", event.ID)
		s.journal.RecordDuplicate(event.ReceivedAt)
		return decision
	}

	s.wg.Add(1)
	s.metrics.SetInFlightTasks(int(s.inFlight.Inc()))
	go s.run(event)

	return decision
}

func (s *Screener) run(event models.CallEvent) {
	defer s.wg.Done()
	defer func() {
		s.metrics.SetInFlightTasks(int(s.inFlight.Dec()))
	}()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorf(providers.TypeCall, "call %s task panicked: %v\n%s", event.ID, r, debug.Stack())
			s.journal.RecordTaskFailure(event.ReceivedAt)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), s.taskTimeout)
	defer cancel()

	accountID, _ := s.identity.AccountID()
	number := event.Number()
	outcome := s.pipeline.Decide(ctx, number, accountID)

	masked := presenter.Mask(number, s.presenter.MaskChar())
	s.presenter.Present(outcome, masked)
	if flagged, ok := outcome.(models.Flagged); ok {
		s.notifier.Warn(flagged, masked)
	}

	variant := presenter.VariantFor(outcome)
	s.metrics.IncOutcome(variant.String())
	s.journal.RecordOutcome(outcome, event.ReceivedAt)
	s.logger.Infof(providers.TypeCall, "call %s screened: %s%s", event.ID, variant, degradedSuffix(outcome))
}

func degradedSuffix(outcome models.Outcome) string {
	if clean, ok := outcome.(models.Clean); ok && clean.Degraded {
		return " (lookup failed)"
	}
	return ""
}

// Shutdown waits for in-flight tasks or for ctx to end.
func (s *Screener) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("screening shutdown: %d tasks still running: %w", s.inFlight.Load(), ctx.Err())
	}
}
