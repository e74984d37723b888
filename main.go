package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iburimskiy/ambient-field/internal/audio"
	"github.com/iburimskiy/ambient-field/internal/config"
	"github.com/iburimskiy/ambient-field/internal/game"
)

var (
	configPath string
	verbose    bool
	seed       int64

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ambient-field",
	Short: "Drifting particle field with pointer repulsion and a hidden burst",
	Long: `Opens a window showing the ambient particle field.

Move the pointer to push points away. T toggles the theme, O picks a
custom chime file, Esc or Q quits. There is also a secret key sequence.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		zcfg.Encoding = "console"
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runWindow,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.yaml (empty = built-in defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "RNG seed (0 = config seed, then clock)")

	rootCmd.AddCommand(snapshotCmd, benchCmd, chimeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded",
		zap.String("path", configPath),
		zap.String("theme", string(cfg.Theme)),
		zap.Float64("density", cfg.Field.Density),
	)
	return cfg, nil
}

// newRand seeds from --seed, then the config seed, then the clock.
func newRand(cfg *config.Config) *rand.Rand {
	s := seed
	if s == 0 {
		s = cfg.Seed
	}
	if s == 0 {
		s = time.Now().UnixNano()
	}
	logger.Debug("rng seeded", zap.Int64("seed", s))
	return rand.New(rand.NewSource(s))
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var themes <-chan bool
	if configPath != "" {
		w, err := config.NewWatcher(configPath, cfg.Theme.Resolve(), logger.Named("config"))
		if err != nil {
			logger.Warn("config watcher unavailable", zap.Error(err))
		} else if err := w.Start(ctx); err != nil {
			logger.Warn("config watcher unavailable", zap.Error(err))
			w.Stop()
		} else {
			defer w.Stop()
			themes = w.Themes()
		}
	}

	var player *audio.Player
	if cfg.Audio.Enabled {
		player = audio.NewPlayer(cfg.Audio.SampleRate, cfg.Audio.Volume, logger.Named("audio"))
		if cfg.Audio.ChimeFile != "" {
			if err := player.SetChimeFile(cfg.Audio.ChimeFile); err != nil {
				logger.Warn("custom chime ignored", zap.Error(err))
			}
		}
	}

	g := game.New(game.Options{
		Config: cfg,
		Rand:   newRand(cfg),
		Player: player,
		Themes: themes,
		Logger: logger.Named("game"),
	})

	go func() {
		<-ctx.Done()
		g.Stop()
	}()

	logger.Info("opening window",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("tps", cfg.Window.TPS),
	)
	return game.Run(g)
}
