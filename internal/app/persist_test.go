package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vpager/internal/config"
	"vpager/internal/eventbus"
)

func newSaverFixture(t *testing.T, path string) (eventbus.EventBus, config.ConfigService) {
	t.Helper()
	bus := eventbus.New()
	svc := config.NewConfigServiceWithBus(path, bus)
	saver := newThresholdSaver(svc, bus, config.DefaultConfig())
	bus.Subscribe(eventbus.EventConfigChanged, saver.handle)
	return bus, svc
}

func TestThresholdSaverKeepsLatestChange(t *testing.T) {
	for round := 0; round < 20; round++ {
		path := filepath.Join(t.TempDir(), "c.toml")
		bus, svc := newSaverFixture(t, path)

		for i, v := range []float64{0.15, 0.2, 0.25, 0.3} {
			bus.Publish(eventbus.ConfigChangedEvent{Seq: uint64(i + 1), SnapThreshold: v})
		}
		bus.Close()

		cfg, err := svc.LoadFromPath(path)
		require.NoError(t, err)
		assert.Equal(t, 0.3, cfg.Paging.SnapThreshold)
	}
}

func TestThresholdSaverWritesBeforeClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	bus, svc := newSaverFixture(t, path)

	bus.Publish(eventbus.ConfigChangedEvent{Seq: 1, SnapThreshold: 0.15})
	bus.Close()

	cfg, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 0.15, cfg.Paging.SnapThreshold)
}

func TestThresholdSaverDropsStaleChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	svc := config.NewConfigService(path)
	bus := eventbus.New()
	defer bus.Close()
	saver := newThresholdSaver(svc, bus, config.DefaultConfig())

	saver.handle(eventbus.ConfigChangedEvent{Seq: 2, SnapThreshold: 0.25})
	saver.handle(eventbus.ConfigChangedEvent{Seq: 1, SnapThreshold: 0.15})

	cfg, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.Paging.SnapThreshold)
}

func TestThresholdSaverPublishesSaveErrors(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	bus := eventbus.New()
	defer bus.Close()
	errs := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) { errs <- e })

	// The parent of the config path is a regular file, so the save fails
	saver := newThresholdSaver(config.NewConfigService(filepath.Join(blocker, "c.toml")), bus, config.DefaultConfig())
	saver.handle(eventbus.ConfigChangedEvent{Seq: 1, SnapThreshold: 0.2})

	select {
	case e := <-errs:
		ev := e.(eventbus.ErrorEvent)
		assert.Equal(t, "failed to save config", ev.Message)
		assert.Error(t, ev.Err)
	case <-time.After(time.Second):
		t.Fatal("save error not published")
	}
	assert.Equal(t, uint64(0), saver.lastSeq)
}
