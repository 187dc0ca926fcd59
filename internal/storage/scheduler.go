package storage

import (
	"fmt"
	"readtrack/internal/providers"
	"readtrack/internal/storage/interfaces"
	"readtrack/internal/structures"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler persists the store on an interval and rolls the reading day over
// at local midnight.
type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	store       interfaces.KeyValueStore
	fileManager *FileManager
	roller      interfaces.DayRoller
	metrics     providers.MetricsProviderInterface
	cron        *cron.Cron
	opsMu       sync.Mutex
	savedRev    uint64
}

func (s *Scheduler) Init() error {
	loc, err := s.config.Tracker.Location()
	if err != nil {
		return fmt.Errorf("invalid tracker timezone: %w", err)
	}
	s.cron = cron.New(cron.WithLocation(loc))

	_, err = s.cron.AddFunc(fmt.Sprintf("@every %s", s.config.Persistence.SaveInterval), func() {
		_ = s.persistIfChanged()
	})
	if err != nil {
		return fmt.Errorf("failed to add persist job: %w", err)
	}

	_, err = s.cron.AddFunc("@midnight", func() { s.rollDay(time.Now()) })
	if err != nil {
		return fmt.Errorf("failed to add day rollover job: %w", err)
	}

	s.cron.Start()
	return nil
}

// rollDay only clears the daily count. Streak and last read date are left
// to the next user action.
func (s *Scheduler) rollDay(now time.Time) {
	s.logger.Infof(providers.TypeApp, "Rolling reading day over")
	s.roller.RollDay(now)
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

func (s *Scheduler) Restore() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	err := s.fileManager.LoadFromFile(s.config.Persistence.FilePath)
	if err != nil {
		return err
	}
	s.savedRev = s.store.Revision()
	return nil
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Persisting reading state to file...")
	return s.save()
}

func (s *Scheduler) persistIfChanged() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	if s.store.Revision() == s.savedRev {
		return nil
	}
	return s.save()
}

// save must be called with opsMu held.
func (s *Scheduler) save() error {
	rev := s.store.Revision()
	start := time.Now()
	err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
	s.metrics.ObservePersistenceDuration(time.Since(start))
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
		return err
	}
	s.savedRev = rev
	s.logger.Debugf(providers.TypeApp, "Persisted data to file %s", s.config.Persistence.FilePath)
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, store interfaces.KeyValueStore, fileManager *FileManager, roller interfaces.DayRoller, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		store:       store,
		fileManager: fileManager,
		roller:      roller,
		metrics:     metrics,
	}
}
