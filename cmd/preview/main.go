// cmd/preview/main.go
package main

import (
	"os"
	"time"

	"go-range-marker/internal/config"
	"go-range-marker/internal/defs"
	"go-range-marker/internal/logging"
	"go-range-marker/internal/state"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func run(configDir, presetsPath string, verbose bool) error {
	if err := config.Load(configDir); err != nil {
		return err
	}
	settings, err := config.Current()
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	if verbose {
		level = log.DebugLevel
	}
	logger := logging.New(os.Stderr, level)

	var presets defs.PresetLibrary
	if presetsPath != "" {
		if presets, err = defs.LoadPresets(presetsPath); err != nil {
			return err
		}
		logger.Info("marker presets loaded", "count", len(presets))
	}

	// изменения файла приходят с горутины наблюдателя, маркер трогаем только в Update
	reloads := make(chan config.Settings, 1)
	config.Watch(func() {
		s, err := config.Current()
		if err != nil {
			logger.Warn("config reload skipped", "err", err)
			return
		}
		select {
		case reloads <- s:
		default:
			logger.Debug("config reload already pending")
		}
	})

	sm := state.NewStateMachine()
	sm.SetState(state.NewPreviewState(sm, settings, reloads, presets, logger))
	defer sm.Close()

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Radius Marker")
	return ebiten.RunGame(app)
}

func main() {
	var (
		configDir   string
		presetsPath string
		verbose     bool
	)
	root := &cobra.Command{
		Use:          "preview",
		Short:        "Interactive preview of the radius marker",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configDir, presetsPath, verbose)
		},
	}
	root.Flags().StringVarP(&configDir, "config", "c", ".", "directory containing marker.{json,toml,yaml}")
	root.Flags().StringVarP(&presetsPath, "presets", "p", "", "JSON file with marker presets (optional)")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
