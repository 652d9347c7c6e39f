package runner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/display"
	"github.com/beanboi7/chyp8/emu/keypad"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

const frame = time.Second / FrameRate

type fakeFrontend struct {
	pressed  []uint8
	draws    int
	updates  int
	closeAt  int
	lastDraw display.Frame
}

func (f *fakeFrontend) Closed() bool {
	return f.closeAt > 0 && f.updates >= f.closeAt
}

func (f *fakeFrontend) PollKeys(keys *keypad.Keypad) {
	var state keypad.State
	for _, key := range f.pressed {
		state[key] = true
	}
	keys.Update(state)
}

func (f *fakeFrontend) Draw(frame display.Frame) {
	f.draws++
	f.lastDraw = frame
}

func (f *fakeFrontend) Update() {
	f.updates++
}

type fakeBuzzer struct {
	starts int
	stops  int
}

func (b *fakeBuzzer) Start() { b.starts++ }
func (b *fakeBuzzer) Stop()  { b.stops++ }

func newTestRunner(t *testing.T, opts Options, opcodes ...uint16) (*Runner, *cpu.Machine, *fakeFrontend, *fakeBuzzer) {
	t.Helper()

	program := make([]byte, 0, 2*len(opcodes))
	for _, op := range opcodes {
		program = append(program, byte(op>>8), byte(op))
	}
	m := cpu.New(cpu.WithSeed(1))
	assert.NoError(t, m.Load(program))

	if opts.ClockRate == 0 {
		opts.ClockRate = 600
	}
	fe := &fakeFrontend{}
	bz := &fakeBuzzer{}
	r := New(log.NewTestLogger(t), m, fe, bz, opts)
	return r, m, fe, bz
}

func TestFrameRunsDueCycles(t *testing.T) {
	r, m, fe, _ := newTestRunner(t, Options{},
		0x600A, // ld V0, $0A
		0x7001, // add V0, $01
		0x1202, // jp $202
	)

	assert.NoError(t, r.Frame(frame))
	// 10 cycles: one load, then alternating add and jump
	assert.Equal(t, uint8(0x0A+5), m.State().V[0])
	assert.Equal(t, 1, fe.updates)
}

func TestFrameDrawsOnlyChangedFrames(t *testing.T) {
	r, _, fe, _ := newTestRunner(t, Options{},
		0xA050, // ld I, $050
		0xD015, // drw V0, V1, $5
		0x1204, // jp $204
	)

	assert.NoError(t, r.Frame(frame))
	assert.Equal(t, 1, fe.draws)
	assert.True(t, fe.lastDraw.Pixel(0, 0))

	assert.NoError(t, r.Frame(frame))
	assert.Equal(t, 1, fe.draws)
	assert.Equal(t, 2, fe.updates)
}

func TestFrameSwitchesBuzzer(t *testing.T) {
	r, m, _, bz := newTestRunner(t, Options{},
		0x6003, // ld V0, $03
		0xF018, // ld ST, V0
		0x1204, // jp $204
	)

	assert.NoError(t, r.Frame(frame))
	assert.Equal(t, uint8(2), m.SoundTimer())
	assert.Equal(t, 1, bz.starts)
	assert.Equal(t, 0, bz.stops)

	for i := 0; i < 5; i++ {
		assert.NoError(t, r.Frame(frame))
	}
	assert.Equal(t, uint8(0), m.SoundTimer())
	assert.Equal(t, 1, bz.starts)
	assert.Equal(t, 1, bz.stops)
}

func TestFramePassesKeys(t *testing.T) {
	r, m, fe, _ := newTestRunner(t, Options{},
		0xF30A, // ld V3, K
		0x1202, // jp $202
	)
	fe.pressed = []uint8{0x5}

	assert.NoError(t, r.Frame(frame))
	assert.False(t, m.Waiting())
	assert.Equal(t, uint8(0x5), m.State().V[3])
}

func TestFrameSkipsUnknownOpcode(t *testing.T) {
	r, m, _, _ := newTestRunner(t, Options{},
		0xF0FF,
		0x1202, // jp $202
	)

	assert.NoError(t, r.Frame(frame))
	assert.Equal(t, uint64(1), m.UnknownOpcodes())
}

func TestFrameHaltsOnUnknownOpcode(t *testing.T) {
	r, _, _, _ := newTestRunner(t, Options{HaltOnUnknown: true},
		0xF0FF,
	)

	err := r.Frame(frame)
	assert.True(t, errors.Is(err, cpu.ErrUnknownOpcode))

	var unknown *cpu.UnknownOpcodeError
	assert.True(t, errors.As(err, &unknown))
	assert.Equal(t, uint16(0x200), unknown.Address)
	assert.Equal(t, uint16(0xF0FF), unknown.Opcode)
}

func TestFrameReturnsFatalError(t *testing.T) {
	r, _, _, _ := newTestRunner(t, Options{},
		0x00EE, // ret
	)

	err := r.Frame(frame)
	assert.True(t, errors.Is(err, cpu.ErrStackUnderflow))
	assert.True(t, errors.Is(r.Frame(frame), cpu.ErrStackUnderflow))
}

func TestRunStopsWhenFrontendCloses(t *testing.T) {
	r, _, fe, _ := newTestRunner(t, Options{},
		0x1200, // jp $200
	)
	fe.closeAt = 3

	assert.NoError(t, r.Run(context.Background()))
	assert.Equal(t, 3, fe.updates)
}

func TestRunStopsOnCancel(t *testing.T) {
	r, _, fe, bz := newTestRunner(t, Options{},
		0x1200, // jp $200
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, fe.updates)
	assert.Equal(t, 0, bz.starts)
}

func TestRunStopsBuzzerOnExit(t *testing.T) {
	r, _, fe, bz := newTestRunner(t, Options{},
		0x60FF, // ld V0, $FF
		0xF018, // ld ST, V0
		0x1204, // jp $204
	)
	fe.closeAt = 1

	assert.NoError(t, r.Run(context.Background()))
	assert.Equal(t, 1, bz.starts)
	assert.Equal(t, 1, bz.stops)
}
