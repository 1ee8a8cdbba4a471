package app

import (
	"errors"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/soradev/custom-cmd/internal/catalog"
	"github.com/soradev/custom-cmd/internal/logging"
	"github.com/soradev/custom-cmd/internal/prefs"
	"github.com/soradev/custom-cmd/internal/shell"
	"github.com/soradev/custom-cmd/internal/ui"
	"github.com/soradev/custom-cmd/internal/version"
	"github.com/soradev/custom-cmd/internal/watch"
)

const (
	backgroundSubdir  = "1"
	defaultBackground = "default1.jpg"
	watchInterval     = 250 * time.Millisecond
)

// Config describes user-provided application options.
type Config struct {
	DataDir    string
	Shell      string
	Width      int
	Height     int
	ShowFooter bool
	Watch      bool
}

// StylesPath returns the style.json location.
func (c Config) StylesPath() string {
	return filepath.Join(c.DataDir, prefs.FileName)
}

func (c Config) CommandsPath() string {
	return filepath.Join(c.DataDir, catalog.CommandsFile)
}

func (c Config) DetailsPath() string {
	return filepath.Join(c.DataDir, catalog.DetailsFile)
}

func (c Config) VersionPath() string {
	return filepath.Join(c.DataDir, version.FileName)
}

// BackgroundDir is where the picker opens.
func (c Config) BackgroundDir() string {
	return filepath.Join(c.DataDir, backgroundSubdir)
}

// DefaultBackground is used when style.json is missing or names no image.
func (c Config) DefaultBackground() string {
	return filepath.Join(c.BackgroundDir(), defaultBackground)
}

// NewModel wires the UI model to the data directory described by cfg.
func NewModel(cfg Config, watcher *watch.Watcher) *ui.Model {
	store, err := prefs.Load(cfg.StylesPath(), cfg.DefaultBackground())
	if err != nil {
		// A missing or broken style.json falls back to the defaults silently.
		logging.Error(err)
	}
	executor := shell.NewExecutor(cfg.Shell)
	return ui.NewModel(ui.Options{
		Width:         cfg.Width,
		Height:        cfg.Height,
		ShowFooter:    cfg.ShowFooter,
		Prefs:         store,
		Catalog:       catalog.NewStore(cfg.CommandsPath(), cfg.DetailsPath()),
		Runner:        executor,
		Watcher:       watcher,
		BackgroundDir: cfg.BackgroundDir(),
		VersionPath:   cfg.VersionPath(),
	})
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	var watcher *watch.Watcher
	if cfg.Watch {
		w, err := watch.New([]string{cfg.StylesPath()}, watchInterval)
		if err != nil {
			logging.Error(err)
		} else {
			watcher = w
			defer watcher.Stop()
		}
	}
	program := tea.NewProgram(NewModel(cfg, watcher), tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
