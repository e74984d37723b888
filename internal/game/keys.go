package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/ambient-field/internal/input"
)

var sequenceKeys = map[ebiten.Key]input.Key{
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyA:          input.KeyA,
	ebiten.KeyB:          input.KeyB,
}

// keyName maps an ebiten key for sequence matching. Keys outside the
// sequence alphabet still get a name so they break a partial match.
func keyName(k ebiten.Key) input.Key {
	if name, ok := sequenceKeys[k]; ok {
		return name
	}
	return input.Key(k.String())
}
