package cmd

import (
	"context"
	"errors"

	"github.com/beanboi7/chyp8/config"
	"github.com/beanboi7/chyp8/emu/audio"
	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/runner"
	"github.com/beanboi7/chyp8/emu/screen"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start path/ROM",
	Short: "load and start the emulator",
	Args:  cobra.ExactArgs(1),
	RunE:  Start,
}

func init() {
	rootCmd.AddCommand(startCmd)

	flags := startCmd.Flags()
	flags.IntP(config.KeyClock, "c", 700, "instructions executed per second")
	flags.IntP(config.KeyScale, "s", 10, "window pixels per display pixel")
	flags.Int64(config.KeySeed, 0, "seed of the random generator, 0 uses the current time")
	flags.Float64(config.KeyVolume, -3, "buzzer volume change in powers of 2")
	flags.Float64(config.KeyTone, 440, "buzzer tone in Hz")
	flags.String(config.KeyBeep, "", "mp3 file to play as buzzer sound instead of the tone")
	flags.Bool(config.KeyHaltOnUnknown, false, "stop the emulator on unknown opcodes")
	flags.Bool(config.KeyTrace, false, "log every executed instruction, needs --debug")
	bindFlags(flags,
		config.KeyClock, config.KeyScale, config.KeySeed, config.KeyVolume, config.KeyTone,
		config.KeyBeep, config.KeyHaltOnUnknown, config.KeyTrace,
	)
}

// Start loads the ROM and runs it in a window until the window is closed.
// chyp8 start 'path/to/ROM' -c 1000
func Start(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	opts := []cpu.Option{
		cpu.WithLogger(logger),
		cpu.WithTrace(cfg.Trace),
	}
	if cfg.Seed != 0 {
		opts = append(opts, cpu.WithSeed(cfg.Seed))
	}
	machine := cpu.New(opts...)
	if err := machine.LoadFile(args[0]); err != nil {
		return err
	}

	win, err := screen.NewWindow("Chyp8", cfg.Scale)
	if err != nil {
		return err
	}
	defer win.Destroy()

	var buzzer runner.Buzzer
	sound, err := audio.New(audio.Options{
		Tone:   cfg.Tone,
		Volume: cfg.Volume,
		File:   cfg.Beep,
	})
	if err != nil {
		logger.Warn("Running without sound", log.Err(err))
	} else {
		defer func() {
			if err := sound.Close(); err != nil {
				logger.Warn("Closing sound failed", log.Err(err))
			}
		}()
		buzzer = sound
	}

	emu := runner.New(logger, machine, win, buzzer, runner.Options{
		ClockRate:     cfg.Clock,
		HaltOnUnknown: cfg.HaltOnUnknown,
	})

	logger.Info("Starting emulator",
		log.String("rom", args[0]),
		log.Int("clock", cfg.Clock),
	)
	err = emu.Run(cmd.Context())
	if errors.Is(err, context.Canceled) {
		logger.Info("Emulator stopped")
		return nil
	}
	return err
}
