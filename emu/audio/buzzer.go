// Package audio plays the buzzer sound while the sound timer is active.
package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

// SampleRate is the sample rate the speaker is initialised with.
const SampleRate = beep.SampleRate(44100)

// Options configure the buzzer sound.
type Options struct {
	Tone   float64 // frequency of the square tone in Hz
	Volume float64 // volume change in powers of 2, 0 keeps the source volume
	File   string  // mp3 file that is looped instead of the tone when set
}

// Buzzer is a paused stream on the speaker that is resumed while the sound
// timer is non-zero.
type Buzzer struct {
	ctrl  *beep.Ctrl
	close func() error
}

// New initialises the speaker and starts the paused buzzer stream.
func New(opts Options) (*Buzzer, error) {
	b, err := newBuzzer(opts)
	if err != nil {
		return nil, err
	}

	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/30)); err != nil {
		_ = b.close()
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}
	speaker.Play(b.ctrl)
	return b, nil
}

func newBuzzer(opts Options) (*Buzzer, error) {
	source, closer, err := newSource(opts)
	if err != nil {
		return nil, err
	}

	volume := &effects.Volume{
		Streamer: source,
		Base:     2,
		Volume:   opts.Volume,
	}
	return &Buzzer{
		ctrl:  &beep.Ctrl{Streamer: volume, Paused: true},
		close: closer,
	}, nil
}

func newSource(opts Options) (beep.Streamer, func() error, error) {
	if opts.File == "" {
		tone, err := generators.SquareTone(SampleRate, opts.Tone)
		if err != nil {
			return nil, nil, fmt.Errorf("creating %.0f Hz tone: %w", opts.Tone, err)
		}
		return tone, func() error { return nil }, nil
	}

	f, err := os.Open(opts.File)
	if err != nil {
		return nil, nil, fmt.Errorf("opening beep file: %w", err)
	}
	streamer, format, err := mp3.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("decoding beep file '%s': %w", opts.File, err)
	}

	looped := beep.Loop(-1, streamer)
	if format.SampleRate == SampleRate {
		return looped, streamer.Close, nil
	}
	return beep.Resample(4, format.SampleRate, SampleRate, looped), streamer.Close, nil
}

// Start resumes the sound.
func (b *Buzzer) Start() {
	speaker.Lock()
	b.ctrl.Paused = false
	speaker.Unlock()
}

// Stop pauses the sound.
func (b *Buzzer) Stop() {
	speaker.Lock()
	b.ctrl.Paused = true
	speaker.Unlock()
}

// Playing reports whether the sound is currently resumed.
func (b *Buzzer) Playing() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return !b.ctrl.Paused
}

// Close removes the buzzer from the speaker and releases the sound file.
func (b *Buzzer) Close() error {
	speaker.Clear()
	return b.close()
}
