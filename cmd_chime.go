package main

import (
	"fmt"
	"os"

	"github.com/faiface/beep"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iburimskiy/ambient-field/internal/audio"
)

var chimeOpts struct {
	out      string
	arpeggio bool
	rate     int
}

var chimeCmd = &cobra.Command{
	Use:   "chime",
	Short: "Export the synthesised chime as WAV",
	Long: `Renders the burst chime (or, with --arpeggio, the theme-toggle arpeggio)
to a 16-bit stereo WAV file.`,
	Args: cobra.NoArgs,
	RunE: runChime,
}

func init() {
	f := chimeCmd.Flags()
	f.StringVarP(&chimeOpts.out, "out", "o", "chime.wav", "output WAV path")
	f.BoolVar(&chimeOpts.arpeggio, "arpeggio", false, "export the theme-toggle arpeggio instead")
	f.IntVar(&chimeOpts.rate, "rate", 0, "sample rate (0 = config)")
}

func runChime(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	o := chimeOpts

	rate := beep.SampleRate(cfg.Audio.SampleRate)
	if o.rate > 0 {
		rate = beep.SampleRate(o.rate)
	}

	patch, name := audio.Chime(), "chime"
	if o.arpeggio {
		patch, name = audio.Arpeggio(), "arpeggio"
	}

	f, err := os.Create(o.out)
	if err != nil {
		return fmt.Errorf("create %s: %w", o.out, err)
	}
	if err := audio.Export(f, patch.Streamer(rate), rate); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", o.out, err)
	}

	logger.Info("sound exported",
		zap.String("sound", name),
		zap.String("path", o.out),
		zap.Int("sample_rate", int(rate)),
		zap.Duration("duration", patch.Duration()),
	)
	return nil
}
