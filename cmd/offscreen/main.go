package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"offscreen/internal/celebrate"
	"offscreen/internal/config"
	"offscreen/internal/pool"
	"offscreen/internal/trace"
	"offscreen/internal/ui"
)

var (
	flagConfig     string
	flagPools      string
	flagDailyLimit int
	flagSeed       int64
	flagCharacter  string
	flagLogFile    string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "offscreen",
		Short: "A small daily deck of things to do away from the screen",
		Long: `offscreen deals a few offline tasks from the category you pick and lets
you mark them done or push them to later, until the daily quota is met.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, catalog, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			return runTUI(cmd.Context(), cfg, catalog)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Config file (default $OFFSCREEN_HOME/config.yaml or ~/.offscreen/config.yaml)")
	pf.StringVar(&flagPools, "pools", "", "Task pools file (.yaml or .json)")
	pf.IntVar(&flagDailyLimit, "daily-limit", 0, "Cards per day")
	pf.Int64Var(&flagSeed, "seed", 0, "Shuffle seed (0 = random)")
	pf.StringVar(&flagCharacter, "character", "", "Starting character (character1..character4)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write diagnostics here while the TUI runs")

	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(drawCmd())
	return rootCmd
}

// loadSettings layers the config file, the environment and the flags the
// user actually set, then loads the task pools.
func loadSettings(cmd *cobra.Command) (config.Config, *pool.Catalog, error) {
	path, required := flagConfig, true
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, nil, fmt.Errorf("locate config: %w", err)
		}
		path, required = p, false
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		return cfg, nil, err
	}
	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("pools") {
		cfg.PoolsFile = flagPools
	}
	if flags.Changed("daily-limit") {
		cfg.DailyLimit = flagDailyLimit
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("character") {
		cfg.Character = flagCharacter
	}
	if flags.Changed("log-file") {
		cfg.LogFile = flagLogFile
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}
	if cfg.Character != "" && !celebrate.Known(celebrate.Character(cfg.Character)) {
		return cfg, nil, fmt.Errorf("%w: unknown character %q", config.ErrInvalid, cfg.Character)
	}

	if cfg.PoolsFile == "" {
		return cfg, pool.Default(), nil
	}
	catalog, err := pool.LoadFile(cfg.PoolsFile)
	if err != nil {
		// A pools file named only in config.yaml may not exist yet
		if errors.Is(err, os.ErrNotExist) && !flags.Changed("pools") {
			log.Printf("main.loadSettings: %v; using built-in pools", err)
			return cfg, pool.Default(), nil
		}
		return cfg, nil, err
	}
	return cfg, catalog, nil
}

func newShuffler(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func newRecorder(ctx context.Context, cfg config.Config) (*trace.Recorder, error) {
	return trace.NewRecorder(ctx, trace.Options{
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Tracing.ServiceName,
		Insecure:    cfg.Tracing.Insecure,
	})
}

func shutdownRecorder(rec *trace.Recorder) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rec.Shutdown(ctx); err != nil {
		log.Printf("main.shutdownRecorder: %v", err)
	}
}

func runTUI(ctx context.Context, cfg config.Config, catalog *pool.Catalog) error {
	// The TUI owns the terminal; logs go to a file or nowhere
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "offscreen")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	rec, err := newRecorder(ctx, cfg)
	if err != nil {
		return err
	}
	defer shutdownRecorder(rec)

	app := ui.NewAppModel(ctx, ui.Deps{
		Catalog:   catalog,
		Config:    cfg,
		Recorder:  rec,
		Shuffler:  newShuffler(cfg.Seed),
		Character: celebrate.Character(cfg.Character),
	})
	defer app.Close()

	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
