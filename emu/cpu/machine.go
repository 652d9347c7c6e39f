package cpu

import (
	"fmt"
	"os"
	"time"

	"github.com/beanboi7/chyp8/emu/display"
	"github.com/beanboi7/chyp8/emu/keypad"
	"github.com/beanboi7/chyp8/emu/memory"
	"github.com/retroenv/retrogolib/log"
)

// Option configures a Machine.
type Option func(*Machine)

// WithRandomSource sets the source used by the random instruction.
func WithRandomSource(rng RandomSource) Option {
	return func(m *Machine) {
		m.rng = rng
	}
}

// WithSeed uses a deterministic random source with the given seed.
func WithSeed(seed int64) Option {
	return WithRandomSource(NewRandomSource(seed))
}

// WithKeypad shares an existing keypad with the machine.
func WithKeypad(keys *keypad.Keypad) Option {
	return func(m *Machine) {
		m.keys = keys
	}
}

// WithDisplay shares an existing framebuffer with the machine.
func WithDisplay(fb *display.Framebuffer) Option {
	return func(m *Machine) {
		m.display = fb
	}
}

// WithLogger sets the logger used for instruction tracing.
func WithLogger(logger *log.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithTrace logs every executed instruction at debug level.
func WithTrace(trace bool) Option {
	return func(m *Machine) {
		m.trace = trace
	}
}

// WithUnknownOpcodeHandler sets a callback for opcodes that can not be decoded.
func WithUnknownOpcodeHandler(handler func(*UnknownOpcodeError)) Option {
	return func(m *Machine) {
		m.onUnknownOpcode = handler
	}
}

// Machine is a CHIP-8 virtual machine. It is not safe for concurrent use,
// only the framebuffer and keypad may be accessed from other goroutines.
type Machine struct {
	state   State
	memory  *memory.Memory
	display *display.Framebuffer
	keys    *keypad.Keypad
	rng     RandomSource

	logger          *log.Logger
	trace           bool
	onUnknownOpcode func(*UnknownOpcodeError)
	unknownOpcodes  uint64

	halted error
}

// New returns a machine with the font loaded and the program counter at 0x200.
func New(opts ...Option) *Machine {
	m := &Machine{
		state:  NewState(),
		memory: memory.New(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.display == nil {
		m.display = display.New()
	}
	if m.keys == nil {
		m.keys = keypad.New()
	}
	if m.rng == nil {
		m.rng = NewRandomSource(time.Now().UnixNano())
	}
	return m
}

// Reset re-initializes memory, registers, timers, the framebuffer and the
// halt status. A program has to be loaded again afterwards.
func (m *Machine) Reset() {
	m.state = NewState()
	m.memory.Reset()
	m.display.Reset()
	m.unknownOpcodes = 0
	m.halted = nil
}

// Load copies the program into memory at 0x200.
func (m *Machine) Load(program []byte) error {
	if err := m.memory.Load(program); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}
	return nil
}

// LoadFile reads a program file and loads it into memory.
func (m *Machine) LoadFile(filename string) error {
	rom, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRomUnreadable, err)
	}
	return m.Load(rom)
}

// Step executes one cycle: fetch, advance PC by 2, decode and execute. While
// the machine waits for a key the cycle only polls the keypad.
// A returned error is fatal and is returned again by every further Step.
func (m *Machine) Step() error {
	if m.halted != nil {
		return m.halted
	}

	if m.state.Waiting {
		m.pollWaitKey()
		return nil
	}

	address := m.state.PC & memory.AddressMask
	opcode := m.memory.ReadWord(address)
	m.state.PC += 2

	ins, err := Decode(opcode)
	if err != nil {
		m.reportUnknownOpcode(address, opcode)
		return nil
	}

	if m.trace && m.logger != nil {
		m.logger.Debug("Executing instruction",
			log.Hex("address", address),
			log.Hex("opcode", opcode),
			log.String("instruction", ins.String()),
		)
	}

	if err := m.execute(ins); err != nil {
		m.halted = fmt.Errorf("executing '%s' at $%03X: %w", ins, address, err)
		return m.halted
	}
	return nil
}

// Tick decrements the delay and sound timers, it has to be called at 60 Hz.
func (m *Machine) Tick() {
	if m.state.DelayTimer > 0 {
		m.state.DelayTimer--
	}
	if m.state.SoundTimer > 0 {
		m.state.SoundTimer--
	}
}

func (m *Machine) pollWaitKey() {
	key, ok := m.keys.FirstPressed()
	if !ok {
		return
	}
	m.state.V[m.state.WaitRegister] = key
	m.state.Waiting = false
}

func (m *Machine) reportUnknownOpcode(address, opcode uint16) {
	m.unknownOpcodes++
	if m.onUnknownOpcode != nil {
		m.onUnknownOpcode(&UnknownOpcodeError{
			Address: address,
			Opcode:  opcode,
		})
	}
}

// SetUnknownOpcodeHandler replaces the callback for opcodes that can not be decoded.
func (m *Machine) SetUnknownOpcodeHandler(handler func(*UnknownOpcodeError)) {
	m.onUnknownOpcode = handler
}

// State returns a copy of the CPU registers.
func (m *Machine) State() State {
	return m.state
}

// SoundTimer returns the current sound timer value, the buzzer should sound
// while it is non-zero.
func (m *Machine) SoundTimer() uint8 {
	return m.state.SoundTimer
}

// Waiting reports whether the machine is waiting for a key press.
func (m *Machine) Waiting() bool {
	return m.state.Waiting
}

// Halted returns the fatal error that stopped the machine, or nil.
func (m *Machine) Halted() error {
	return m.halted
}

// UnknownOpcodes returns the number of opcodes skipped since the last reset.
func (m *Machine) UnknownOpcodes() uint64 {
	return m.unknownOpcodes
}

// Memory returns the machine memory.
func (m *Machine) Memory() *memory.Memory {
	return m.memory
}

// Display returns the framebuffer.
func (m *Machine) Display() *display.Framebuffer {
	return m.display
}

// Keypad returns the keypad.
func (m *Machine) Keypad() *keypad.Keypad {
	return m.keys
}
