// Package app wires configuration, the event bus, the page deck and the
// Bubble Tea program together.
package app

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"vpager/internal/config"
	"vpager/internal/eventbus"
	"vpager/internal/pages"
	"vpager/internal/paginator"
	"vpager/internal/ui"
)

// Options are the command line settings
type Options struct {
	ConfigPath   string
	LogPath      string
	Threshold    float64 // zero keeps the configured value
	OffsetSource string  // empty keeps the configured value
	Unbounded    bool
	Paths        []string
}

// ParseFlags parses command line arguments (without the program name)
func ParseFlags(args []string, output io.Writer) (Options, error) {
	var opts Options
	fs := flag.NewFlagSet("vpager", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage: vpager [flags] [file or directory ...]\n\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.ConfigPath, "config", "", "Path to the config file (default "+config.DefaultPath()+")")
	fs.StringVar(&opts.LogPath, "log", "vpager.log", "Log file, empty to discard logs")
	fs.Float64Var(&opts.Threshold, "threshold", 0, "Snap threshold as a fraction of the page height, between 0 and 1")
	fs.StringVar(&opts.OffsetSource, "offset-source", "", "Gesture end offset: event or tracked")
	fs.BoolVar(&opts.Unbounded, "unbounded", false, "Do not clamp snaps to the last page")
	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	opts.Paths = fs.Args()

	if opts.Threshold != 0 && (opts.Threshold <= 0 || opts.Threshold >= 1) {
		return Options{}, fmt.Errorf("%w: got %v", paginator.ErrInvalidThreshold, opts.Threshold)
	}
	if _, err := paginator.ParseOffsetSource(opts.OffsetSource); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// ApplyOverrides returns a copy of cfg with the command line settings applied
func ApplyOverrides(cfg *config.Config, opts Options) *config.Config {
	out := *cfg
	if opts.Threshold != 0 {
		out.Paging.SnapThreshold = opts.Threshold
	}
	if opts.OffsetSource != "" {
		out.Paging.OffsetSource = opts.OffsetSource
	}
	if opts.Unbounded {
		out.Paging.BoundToContent = false
	}
	return &out
}

// LoadDeck loads the given paths, or the built-in deck when there are none
func LoadDeck(paths []string) (*pages.Deck, error) {
	if len(paths) == 0 {
		return pages.Demo(), nil
	}
	return pages.Load(paths...)
}

// Run starts the pager and blocks until it exits
func Run(ctx context.Context, opts Options) error {
	if opts.LogPath == "" {
		log.SetOutput(io.Discard)
	} else {
		logFile, err := os.OpenFile(opts.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Printf("Could not open log file: %v", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	}

	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(opts.ConfigPath, bus)
	persisted, err := configSvc.Load()
	if err != nil {
		return err
	}
	cfg := ApplyOverrides(persisted, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Runtime threshold changes are written back without the command line overrides
	saver := newThresholdSaver(configSvc, bus, persisted)
	bus.Subscribe(eventbus.EventConfigChanged, saver.handle)
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error: %s: %v", event.Message, event.Err)
		}
	})
	bus.Subscribe(eventbus.EventPageSnapped, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PageSnappedEvent); ok {
			log.Printf("Snapped %s from page %d to page %d (gesture %s)",
				event.Direction, event.FromPage+1, event.ToPage+1, event.GestureID)
		}
	})

	deck, err := LoadDeck(opts.Paths)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d pages", deck.Len())

	model, err := ui.NewModel(cfg, deck, bus)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}
