// Package keypad holds the state of the 16 key hexadecimal keypad.
package keypad

import "sync"

// Count is the number of keys, indexed 0x0-0xF.
const Count = 16

// State is a copy of all key states.
type State [Count]bool

// Keypad is written by the input frontend and read by the CPU.
type Keypad struct {
	mu   sync.RWMutex
	keys State
}

// New returns a keypad with all keys released.
func New() *Keypad {
	return &Keypad{}
}

// Set updates the state of a key. Only the low nibble of key is used.
func (k *Keypad) Set(key uint8, pressed bool) {
	k.mu.Lock()
	k.keys[key&0x0F] = pressed
	k.mu.Unlock()
}

// Press marks a key as pressed.
func (k *Keypad) Press(key uint8) {
	k.Set(key, true)
}

// Release marks a key as released.
func (k *Keypad) Release(key uint8) {
	k.Set(key, false)
}

// Update replaces all key states at once.
func (k *Keypad) Update(state State) {
	k.mu.Lock()
	k.keys = state
	k.mu.Unlock()
}

// IsPressed reports whether key is pressed. Only the low nibble of key is used.
func (k *Keypad) IsPressed(key uint8) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.keys[key&0x0F]
}

// FirstPressed returns the lowest pressed key index.
func (k *Keypad) FirstPressed() (uint8, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	for i, pressed := range k.keys {
		if pressed {
			return uint8(i), true
		}
	}
	return 0, false
}

// Snapshot returns a copy of all key states.
func (k *Keypad) Snapshot() State {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.keys
}

// Reset releases all keys.
func (k *Keypad) Reset() {
	k.Update(State{})
}
