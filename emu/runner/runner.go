// Package runner drives a machine in real time: it schedules instruction
// cycles and 60 Hz timer ticks, moves key states from the frontend into the
// keypad, presents changed frames and switches the buzzer.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/display"
	"github.com/beanboi7/chyp8/emu/keypad"
	"github.com/retroenv/retrogolib/log"
)

// FrameRate is the rate at which the frontend is updated.
const FrameRate = 60

// Frontend shows frames and supplies key states.
type Frontend interface {
	// Closed reports whether the user closed the frontend.
	Closed() bool
	// PollKeys writes the current physical key states into keys.
	PollKeys(keys *keypad.Keypad)
	// Draw renders a frame, it is only called when the frame changed.
	Draw(frame display.Frame)
	// Update processes window events, it is called once per frame.
	Update()
}

// Buzzer produces the sound while the sound timer is non-zero.
type Buzzer interface {
	Start()
	Stop()
}

// Options control the runner.
type Options struct {
	ClockRate     int  // instruction cycles per second
	HaltOnUnknown bool // stop running on the first unknown opcode
}

// Runner connects a machine to a frontend and a buzzer.
type Runner struct {
	machine  *cpu.Machine
	frontend Frontend
	buzzer   Buzzer
	logger   *log.Logger
	clock    *Clock

	haltOnUnknown bool
	unknownErr    error
	beeping       bool
}

// New returns a runner for the machine. It installs the unknown opcode
// handler of the machine.
func New(logger *log.Logger, machine *cpu.Machine, frontend Frontend, buzzer Buzzer, opts Options) *Runner {
	r := &Runner{
		machine:       machine,
		frontend:      frontend,
		buzzer:        buzzer,
		logger:        logger,
		clock:         NewClock(opts.ClockRate),
		haltOnUnknown: opts.HaltOnUnknown,
	}
	machine.SetUnknownOpcodeHandler(r.handleUnknownOpcode)
	return r
}

// Run executes the machine until the context is cancelled, the frontend is
// closed or the machine halts.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()
	defer r.setBuzzer(false)

	last := time.Now()
	for !r.frontend.Closed() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if err := r.Frame(now.Sub(last)); err != nil {
				return err
			}
			last = now
		}
	}

	r.logger.Debug("Frontend closed")
	return nil
}

// Frame advances the machine by elapsed wall time and updates the frontend.
func (r *Runner) Frame(elapsed time.Duration) error {
	r.frontend.PollKeys(r.machine.Keypad())

	cycles, ticks := r.clock.Advance(elapsed)
	for i := 0; i < cycles; i++ {
		if err := r.machine.Step(); err != nil {
			return fmt.Errorf("machine halted: %w", err)
		}
		if r.unknownErr != nil {
			return fmt.Errorf("machine halted: %w", r.unknownErr)
		}
	}
	for i := 0; i < ticks; i++ {
		r.machine.Tick()
	}

	if frame, changed := r.machine.Display().Poll(); changed {
		r.frontend.Draw(frame)
	}
	r.frontend.Update()

	r.setBuzzer(r.machine.SoundTimer() > 0)
	return nil
}

func (r *Runner) setBuzzer(on bool) {
	if on == r.beeping || r.buzzer == nil {
		return
	}
	r.beeping = on
	if on {
		r.buzzer.Start()
	} else {
		r.buzzer.Stop()
	}
}

func (r *Runner) handleUnknownOpcode(err *cpu.UnknownOpcodeError) {
	r.logger.Warn("Skipping unknown opcode",
		log.Hex("address", err.Address),
		log.Hex("opcode", err.Opcode),
	)
	if r.haltOnUnknown && r.unknownErr == nil {
		r.unknownErr = err
	}
}
