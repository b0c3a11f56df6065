package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gman-shooter/audio"
	"github.com/lixenwraith/gman-shooter/config"
	"github.com/lixenwraith/gman-shooter/engine"
	"github.com/lixenwraith/gman-shooter/input"
	"github.com/lixenwraith/gman-shooter/locale"
	"github.com/lixenwraith/gman-shooter/parameter"
	"github.com/lixenwraith/gman-shooter/render"
	"github.com/lixenwraith/gman-shooter/status"
)

var (
	configFlag      = flag.String("config", "", "Path to a TOML config file")
	debugFlag       = flag.Bool("debug", false, "Write logs/gman-shooter.log and show the debug overlay")
	localeFlag      = flag.String("locale", "", "UI locale (en-US, ru-RU)")
	keymapFlag      = flag.String("keymap", "", "Path to a TOML keymap override")
	progressionFlag = flag.String("progression", "", "Path to a TOML progression definition")
	muteFlag        = flag.Bool("mute", false, "Start with audio muted")
	colorModeFlag   = flag.String("color", "", "Color mode: auto, truecolor, 256")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gman-shooter: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("[main] starting locale=%s frame_rate=%d", cfg.Locale, cfg.FrameRate)

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "gman-shooter: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig layers defaults, the config file, GMAN_* variables and explicitly set flags
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag, nil)
	if err != nil {
		return cfg, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "locale":
			cfg.Locale = *localeFlag
		case "keymap":
			cfg.KeymapPath = *keymapFlag
		case "progression":
			cfg.ProgressionPath = *progressionFlag
		case "color":
			cfg.ColorMode = *colorModeFlag
		}
	})
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if err := audio.ValidateEffectNames(cfg.Audio); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadKeys(path string) (*input.KeyTable, error) {
	keys := input.DefaultKeyTable()
	if path == "" {
		return keys, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap %s: %w", path, err)
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(keys, override), nil
}

// newEventChannel buffers terminal events between the tcell poller and the frame loop
func newEventChannel() chan tcell.Event {
	return make(chan tcell.Event, parameter.InputChannelSize)
}

func run(cfg config.Config) error {
	keys, err := loadKeys(cfg.KeymapPath)
	if err != nil {
		return err
	}
	bundle, err := locale.LoadEmbedded()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Panic Recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mGMAN-SHOOTER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	stats := status.NewRegistry()
	player := audio.NewPlayer(audio.NewAudioConfig(cfg.Audio), stats)
	if err := player.Init(); err != nil {
		// Silent mode; the status bar reports it
		log.Printf("[main] audio unavailable: %v", err)
	}
	defer player.Close()
	if *muteFlag {
		player.ToggleMute()
	}

	width, height := screen.Size()
	mode := render.DetectColorMode(cfg.ColorMode)
	game, err := engine.NewGameContext(engine.Options{
		Config:    cfg,
		Screen:    screen,
		Width:     width,
		Height:    height,
		ColorMode: mode,
		Keys:      keys,
		Audio:     player,
		Locales:   bundle,
		Status:    stats,
	})
	if err != nil {
		return err
	}

	events := newEventChannel()
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	interval := cfg.FrameInterval()
	frameTicker := time.NewTicker(interval)
	defer frameTicker.Stop()

	last := time.Now()
	game.Frame(0)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return errors.New("terminal event stream closed")
			}
			if !game.HandleEvent(ev) {
				log.Printf("[main] exit")
				return nil
			}
		case now := <-frameTicker.C:
			game.Frame(now.Sub(last))
			last = now
		}
	}
}
