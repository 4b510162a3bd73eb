package service

import (
	"log"
	"sync"
	"time"

	"github.com/zunnuran/discord-bot/internal/domain/contract"
)

const (
	cleanupInitialDelay = 5 * time.Minute
	cleanupInterval     = 24 * time.Hour
)

// cleanupService prunes old log rows according to the auto_cleanup_days
// setting. A failed sweep is retried on the next interval.
type cleanupService struct {
	dm contract.DataManager

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}

	nowFn func() time.Time
}

func newCleanup(dm contract.DataManager) *cleanupService {
	return &cleanupService{
		dm:       dm,
		stopChan: make(chan struct{}),
		nowFn:    time.Now,
	}
}

func (s *cleanupService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	go s.run()
}

func (s *cleanupService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	close(s.stopChan)
	s.running = false
}

func (s *cleanupService) run() {
	timer := time.NewTimer(cleanupInitialDelay)
	select {
	case <-timer.C:
	case <-s.stopChan:
		timer.Stop()
		return
	}
	s.sweep()

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopChan:
			return
		}
	}
}

func (s *cleanupService) sweep() {
	settings, err := s.dm.Settings().Get()
	if err != nil {
		log.Printf("Cleanup: failed to read settings: %v", err)
		return
	}
	if settings.AutoCleanupDays <= 0 {
		return
	}

	cutoff := s.nowFn().UTC().AddDate(0, 0, -settings.AutoCleanupDays)

	removed, err := s.dm.Notification().DeleteLogsBefore(cutoff)
	if err != nil {
		log.Printf("Cleanup: failed to delete notification logs: %v", err)
	}

	removedFwd, err := s.dm.Forwarder().DeleteLogsBefore(cutoff)
	if err != nil {
		log.Printf("Cleanup: failed to delete forwarder logs: %v", err)
	}

	if removed+removedFwd > 0 {
		log.Printf("Cleanup: removed %d notification logs, %d forwarder logs older than %s",
			removed, removedFwd, cutoff.Format("2006-01-02"))
	}
}
