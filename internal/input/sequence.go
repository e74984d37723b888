// Package input recognises key sequences typed into the window.
package input

// Key names a key independent of the windowing library.
type Key string

const (
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyLeft  Key = "left"
	KeyRight Key = "right"
	KeyA     Key = "a"
	KeyB     Key = "b"
)

// Konami is ↑ ↑ ↓ ↓ ← → ← → B A.
var Konami = []Key{KeyUp, KeyUp, KeyDown, KeyDown, KeyLeft, KeyRight, KeyLeft, KeyRight, KeyB, KeyA}

// Sequence matches one fixed key sequence. A wrong key drops all progress;
// it is not taken as a fresh start, so ↑ ↑ ↑ does not leave two matched.
type Sequence struct {
	keys []Key
	next int
}

// NewSequence returns a matcher for keys.
func NewSequence(keys ...Key) *Sequence {
	return &Sequence{keys: append([]Key(nil), keys...)}
}

// Press feeds one key and reports whether it completed the sequence. The
// matcher resets after a match.
func (s *Sequence) Press(k Key) bool {
	if len(s.keys) == 0 {
		return false
	}
	if k != s.keys[s.next] {
		s.next = 0
		return false
	}
	s.next++
	if s.next == len(s.keys) {
		s.next = 0
		return true
	}
	return false
}

// Progress returns how many keys have matched so far.
func (s *Sequence) Progress() int { return s.next }
