package tui

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/planner/internal/catalog"
	"github.com/Iron-Ham/planner/internal/config"
	"github.com/Iron-Ham/planner/internal/controller"
	"github.com/Iron-Ham/planner/internal/logging"
	"github.com/Iron-Ham/planner/internal/render"
	"github.com/Iron-Ham/planner/internal/tui/msg"
	"github.com/Iron-Ham/planner/internal/tui/styles"
)

// App wraps the Bubble Tea program.
type App struct {
	program *tea.Program
	model   Model
	logger  *logging.Logger
}

// New creates a new TUI application. The configured theme is applied before
// the first frame is drawn.
func New(ctx context.Context, cfg *config.Config, ctrl *controller.Controller, cat *catalog.Catalog, sink render.ArtifactSink, logger *logging.Logger) *App {
	if logger == nil {
		logger = logging.NopLogger()
	}
	loadThemes(cfg.TUI.Theme, logger)

	return &App{
		model:  NewModel(ctx, ctrl, cat, sink, logger),
		logger: logger.WithComponent("tui"),
	}
}

// loadThemes registers custom themes and activates name.
func loadThemes(name string, logger *logging.Logger) {
	loaded, errs := styles.DiscoverCustomThemes(config.ThemesDir())
	for _, err := range errs {
		logger.Warn("skipping custom theme", "dir", config.ThemesDir(), "error", err.Error())
	}
	if len(loaded) > 0 {
		logger.Debug("loaded custom themes", "themes", loaded)
	}
	styles.SetActiveTheme(styles.ThemeName(name))
}

// Run starts the TUI application
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	// Theme edits made in another terminal (or via "planner config set")
	// apply live.
	if viper.ConfigFileUsed() != "" {
		viper.OnConfigChange(func(e fsnotify.Event) {
			cfg, err := config.Load()
			if err != nil {
				a.logger.Warn("ignoring invalid config change", "file", e.Name, "error", err.Error())
				return
			}
			if _, errs := styles.DiscoverCustomThemes(config.ThemesDir()); len(errs) > 0 {
				a.logger.Warn("some custom themes failed to reload", "count", len(errs))
			}
			a.program.Send(msg.ThemeChangedMsg{Theme: cfg.TUI.Theme})
		})
		viper.WatchConfig()
	}

	_, err := a.program.Run()

	signal.Stop(sigChan)

	return err
}
