// Package main provides the playdeck entry point.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/alecthomas/kingpin/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/playdeck/playdeck/internal/app/notification"
	"github.com/playdeck/playdeck/internal/app/player"
	"github.com/playdeck/playdeck/internal/app/scenario"
	"github.com/playdeck/playdeck/internal/domain/playlist"
	"github.com/playdeck/playdeck/internal/infra/config"
	"github.com/playdeck/playdeck/internal/infra/logger"
)

var (
	app        = kingpin.New("playdeck", "State-pattern audio player simulation")
	configPath = app.Flag("config", "Path to config file").String()
	verbose    = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
	logfile    = app.Flag("logfile", "Path to log file (default: stdout)").String()

	// replay command
	replayCmd  = app.Command("replay", "Replay a scenario script against a fresh player")
	scriptPath = replayCmd.Arg("file", "Path to scenario YAML").Required().String()

	// list-actions command
	listActionsCmd = app.Command("list-actions", "List available scenario actions and exit")
)

func init() {
	// demo command (default) - no need to store the command
	app.Command("demo", "Run the built-in demo sequence (default)").Default()
}

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if command == listActionsCmd.FullCommand() {
		printActions()
		return
	}

	// Load config (built-in defaults when no file is given)
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.Default()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger; command-line flags win over config
	loggerConfig := logger.Config{
		Output: cfg.Logging.Output,
		Level:  cfg.Logging.Level,
		File:   cfg.Logging.File,
	}
	if *verbose {
		loggerConfig.Level = "debug"
	}
	if *logfile != "" {
		loggerConfig.Output = *logfile
		loggerConfig.File = *logfile
	}
	if err := logger.Init(loggerConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	runID := uuid.New().String()
	zlog.Info().Str("run_id", runID).Msg("Starting playdeck")

	// Pick the script first so a bad path fails before any wiring
	script := scenario.Demo()
	if command == replayCmd.FullCommand() {
		script, err = scenario.LoadScript(*scriptPath)
		if err != nil {
			zlog.Error().Err(err).Msg("Failed to load script")
			os.Exit(1)
		}
	}

	pl, err := playlist.New(cfg.Tracks())
	if err != nil {
		zlog.Error().Err(err).Msg("Failed to build playlist")
		os.Exit(1)
	}

	manager := notification.NewManager()
	summary := &summarySink{counts: make(map[player.EventType]int)}
	manager.Subscribe(summary)

	p, err := player.New(pl,
		player.WithInitialVolume(cfg.Player.InitialVolume),
		player.WithVolumeStep(cfg.Player.VolumeStep),
		player.WithSink(manager),
	)
	if err != nil {
		zlog.Error().Err(err).Msg("Failed to create player")
		os.Exit(1)
	}

	if err := scenario.NewRunner(p).Run(script); err != nil {
		zlog.Error().Err(err).Msg("Script replay failed")
		os.Exit(1)
	}

	finalTrack := p.CurrentTrack()
	zlog.Info().
		Str("state", p.StateName()).
		Str("track", finalTrack.Label()).
		Int("index", p.CurrentIndex()).
		Float64("volume", p.Volume()).
		Bool("playing", p.IsPlaying()).
		Msg("Final player state")
	summary.report()
}

// summarySink counts events per type for the end-of-run report.
type summarySink struct {
	counts map[player.EventType]int
	total  int
}

func (s *summarySink) Send(ev player.Event) error {
	s.counts[ev.Type]++
	s.total++
	return nil
}

func (s *summarySink) report() {
	ev := zlog.Info().Int("total", s.total)
	for eventType, count := range s.counts {
		ev = ev.Int(eventType.String(), count)
	}
	ev.Msg("Event summary")
}

func printActions() {
	registered := scenario.GetRegistered()

	names := make([]string, 0, len(registered))
	for name := range registered {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("Available actions:")
	for _, name := range names {
		action := registered[name]()
		fmt.Printf("  %-16s %s\n", name, action.Description())
	}
}
