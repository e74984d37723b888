package field

// Mode is the engine's current behaviour.
type Mode int

const (
	// ModeSteady is the ambient field: reflection, pointer repulsion and
	// connective edges.
	ModeSteady Mode = iota
	// ModeBurst is the time-boxed explosion. The steady field is paused.
	ModeBurst
)

func (m Mode) String() string {
	switch m {
	case ModeSteady:
		return "steady"
	case ModeBurst:
		return "burst"
	default:
		return "unknown"
	}
}

// MarshalCSV writes the mode name in CSV exports.
func (m Mode) MarshalCSV() (string, error) {
	return m.String(), nil
}

// FrameStats describes one rendered frame.
type FrameStats struct {
	Frame  uint64 `csv:"frame"`
	Mode   Mode   `csv:"mode"`
	Points int    `csv:"points"`
	Edges  int    `csv:"edges"`
	// Drawn is false when the tick was skipped for lack of a surface.
	Drawn bool `csv:"drawn"`
}
