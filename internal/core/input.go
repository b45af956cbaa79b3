package core

// Key identifies a physical key by its DOM-style name (e.g., "ArrowLeft").
// Keeping browser-style names lets hosts other than the terminal feed the
// same engine without a translation table.
type Key string

// Keys consumed by the simulation.
const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

// KeyQuery answers whether a key is the active input for this tick.
// The simulation consumes input only through this interface.
type KeyQuery interface {
	Pressed(k Key) bool
}

// KeyState tracks currently held keys as an ordered list, most recently
// pressed first. Only the head of the list counts as pressed, so when the
// player holds Left and then also presses Right, Right wins until released.
//
// The zero value is ready to use.
type KeyState struct {
	held []Key
}

// NewKeyState creates an empty key state.
func NewKeyState() *KeyState {
	return &KeyState{}
}

// Press records a key-down. A key that is already held keeps its position,
// so auto-repeat never reorders the list.
func (s *KeyState) Press(k Key) {
	if s.IsHeld(k) {
		return
	}
	s.held = append([]Key{k}, s.held...)
}

// Release records a key-up, removing every occurrence of the key.
func (s *KeyState) Release(k Key) {
	kept := s.held[:0]
	for _, h := range s.held {
		if h != k {
			kept = append(kept, h)
		}
	}
	s.held = kept
}

// Pressed returns true if k is the most recently pressed key still held.
func (s *KeyState) Pressed(k Key) bool {
	return len(s.held) > 0 && s.held[0] == k
}

// IsHeld returns true if k is held, regardless of priority.
func (s *KeyState) IsHeld(k Key) bool {
	for _, h := range s.held {
		if h == k {
			return true
		}
	}
	return false
}

// Held returns a copy of the held keys, most recent first.
func (s *KeyState) Held() []Key {
	out := make([]Key, len(s.held))
	copy(out, s.held)
	return out
}

// Reset releases all keys.
func (s *KeyState) Reset() {
	s.held = s.held[:0]
}

// NoInput is a KeyQuery that never reports a pressed key.
var NoInput KeyQuery = noInput{}

type noInput struct{}

func (noInput) Pressed(Key) bool { return false }
