package app

import (
	"log"
	"sync"

	"vpager/internal/config"
	"vpager/internal/eventbus"
)

// thresholdSaver writes runtime threshold changes back to the config file.
// Handlers may run out of order, so a change older than the last one
// written is dropped.
type thresholdSaver struct {
	mu        sync.Mutex
	svc       config.ConfigService
	bus       eventbus.EventBus
	persisted *config.Config
	lastSeq   uint64
}

func newThresholdSaver(svc config.ConfigService, bus eventbus.EventBus, persisted *config.Config) *thresholdSaver {
	return &thresholdSaver{svc: svc, bus: bus, persisted: persisted}
}

func (s *thresholdSaver) handle(e eventbus.DomainEvent) {
	event, ok := e.(eventbus.ConfigChangedEvent)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if event.Seq <= s.lastSeq {
		return
	}

	cfg := *s.persisted
	cfg.Paging.SnapThreshold = event.SnapThreshold
	if err := s.svc.Save(&cfg); err != nil {
		log.Printf("Failed to save config: %v", err)
		s.bus.Publish(eventbus.ErrorEvent{Message: "failed to save config", Err: err})
		return
	}
	s.persisted.Paging.SnapThreshold = event.SnapThreshold
	s.lastSeq = event.Seq
	log.Printf("Config saved to %s", s.svc.Path())
}
