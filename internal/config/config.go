package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"vpager/internal/eventbus"
	"vpager/internal/paginator"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version int        `toml:"version"`
	Paging  Paging     `toml:"paging"`
	UI      UISettings `toml:"ui"`
}

// Paging holds the snap engine settings
type Paging struct {
	SnapThreshold  float64 `toml:"snap_threshold"`
	OffsetSource   string  `toml:"offset_source"`    // "event" or "tracked"
	BoundToContent bool    `toml:"bound_to_content"` // clamp snaps to the last page
}

// UISettings represents UI-related configuration
type UISettings struct {
	WheelStep       int  `toml:"wheel_step"`
	WheelIdleMS     int  `toml:"wheel_idle_ms"`
	AnimationMS     int  `toml:"animation_ms"`
	AnimationFrames int  `toml:"animation_frames"`
	ShowStatus      bool `toml:"show_status"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "vpager", "config.toml")
}

// NewConfigService creates a config service reading and writing path.
// An empty path selects DefaultPath.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when
// the file does not exist yet
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:          cs.filePath,
			SnapThreshold: cfg.Paging.SnapThreshold,
		})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	t := c.Paging.SnapThreshold
	if t <= 0 || t >= 1 {
		return fmt.Errorf("%w: paging.snap_threshold must be in (0, 1), got %v", ErrInvalidConfig, t)
	}
	if _, err := paginator.ParseOffsetSource(c.Paging.OffsetSource); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.UI.WheelStep < 1 {
		return fmt.Errorf("%w: ui.wheel_step must be positive", ErrInvalidConfig)
	}
	if c.UI.WheelIdleMS < 1 {
		return fmt.Errorf("%w: ui.wheel_idle_ms must be positive", ErrInvalidConfig)
	}
	if c.UI.AnimationMS < 0 || c.UI.AnimationFrames < 1 {
		return fmt.Errorf("%w: ui animation settings out of range", ErrInvalidConfig)
	}
	return nil
}

// PaginatorConfig converts the paging section for the engine. pageCount is
// only applied when BoundToContent is set.
func (c *Config) PaginatorConfig(pageCount int) paginator.Config {
	source, _ := paginator.ParseOffsetSource(c.Paging.OffsetSource)
	pc := paginator.Config{
		SnapThreshold: c.Paging.SnapThreshold,
		OffsetSource:  source,
	}
	if c.Paging.BoundToContent {
		pc.PageCount = pageCount
	}
	return pc
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Paging: Paging{
			SnapThreshold:  paginator.DefaultSnapThreshold,
			OffsetSource:   string(paginator.OffsetFromEvent),
			BoundToContent: true,
		},
		UI: UISettings{
			WheelStep:       1,
			WheelIdleMS:     150,
			AnimationMS:     180,
			AnimationFrames: 6,
			ShowStatus:      true,
		},
	}
}
