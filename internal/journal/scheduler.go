package journal

import (
	"callguard/internal/journal/interfaces"
	"callguard/internal/providers"
	"callguard/internal/services"
	"callguard/internal/structures"
	"github.com/roylee0704/gron"
	"sync"
	"time"
)

type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	service     services.JournalServiceInterface
	fileManager *FileManager
	metrics     providers.MetricsProviderInterface
	cron        *gron.Cron
	opsMu       sync.Mutex
	now         func() time.Time
}

// Init starts the periodic prune-and-save job. gron rounds the interval
// down to whole seconds with a one second floor.
func (s *Scheduler) Init() {
	s.cron = gron.New()
	s.cron.AddFunc(gron.Every(s.config.Journal.SaveInterval), func() {
		if removed := s.service.Prune(s.now()); removed > 0 {
			s.logger.Infof(providers.TypeApp, "Pruned %d journal days", removed)
		}
		if err := s.Persist(); err == nil {
			s.logger.Debugf(providers.TypeApp, "Persisted journal to file %s", s.config.Journal.FilePath)
		}
	})
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	err := s.fileManager.LoadFromFile(s.config.Journal.FilePath)
	if err != nil {
		return err
	}
	s.service.Prune(s.now())
	return nil
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	start := time.Now()
	err := s.fileManager.SaveToFile(s.config.Journal.FilePath)
	s.metrics.ObservePersistenceDuration(time.Since(start))
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting journal: %s", err)
		return err
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, service services.JournalServiceInterface, fileManager *FileManager, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		service:     service,
		fileManager: fileManager,
		metrics:     metrics,
		now:         time.Now,
	}
}
