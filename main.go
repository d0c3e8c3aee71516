package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/audible-altimeter/internal/audioplayer"
	"github.com/llehouerou/audible-altimeter/internal/config"
	"github.com/llehouerou/audible-altimeter/internal/console"
	"github.com/llehouerou/audible-altimeter/internal/driver"
	"github.com/llehouerou/audible-altimeter/internal/errmsg"
	"github.com/llehouerou/audible-altimeter/internal/logger"
	"github.com/llehouerou/audible-altimeter/internal/sample"
	"github.com/llehouerou/audible-altimeter/internal/state"
	"github.com/llehouerou/audible-altimeter/internal/stderr"
)

func main() {
	os.Exit(run())
}

func fail(msg string) int {
	stderr.WriteOriginal(msg + "\n")
	return 1
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigLoad, err))
		return 1
	}

	logFile, err := openLogFile(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.FormatWith(errmsg.OpLogOpen, cfg.LogFile, err))
		return 1
	}
	defer logFile.Close()
	logger.Initialize(cfg.LogLevel, logFile)

	if err := stderr.Start(); err != nil {
		logger.Error("stderr capture disabled: %v", err)
	}
	defer stderr.Stop()

	bank, err := sample.LoadDir(cfg.SamplesDir)
	if err != nil {
		return fail(errmsg.FormatWith(errmsg.OpSamplesLoad, cfg.SamplesDir, err))
	}
	log := logger.Get()
	log.Info().
		Str("dir", cfg.SamplesDir).
		Int("samples", bank.Len()).
		Str("pcm", humanize.Bytes(uint64(bank.TotalBytes()))).
		Msg("samples loaded")

	opts := console.Options{Level: cfg.Volume, Step: cfg.VolumeStep()}
	if cfg.ShouldRememberVolume() {
		stateMgr, err := state.Open()
		if err != nil {
			return fail(errmsg.Format(errmsg.OpStateOpen, err))
		}
		defer stateMgr.Close()
		opts.Store = stateMgr

		if saved, err := stateMgr.GetVolume(); err != nil {
			logger.Error("read saved volume: %v", err)
		} else if saved != nil {
			opts.Level = saved.Level
			opts.Muted = saved.Muted
		}
	}

	spk := driver.NewSpeaker(bank, cfg.DriverOptions())
	if err := spk.Open(); err != nil {
		return fail(errmsg.Format(errmsg.OpSpeakerOpen, err))
	}
	defer spk.Close()

	player := audioplayer.New(spk)
	initial := opts.Level
	if opts.Muted {
		initial = driver.MinVolume
	}
	player.SetVolumeOnAllSamples(initial)

	opts.Stderr = stderr.Lines
	p := tea.NewProgram(console.New(player, bank, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fail(errmsg.Format(errmsg.OpConsoleRun, err))
	}
	return 0
}

// openLogFile opens path for appending, or the default file under the xdg
// state directory when path is empty.
func openLogFile(path string) (*os.File, error) {
	if path == "" {
		var err error
		path, err = xdg.StateFile(filepath.Join("audible-altimeter", "altimeter.log"))
		if err != nil {
			return nil, err
		}
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
