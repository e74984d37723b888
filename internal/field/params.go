package field

// Params tunes the simulation. The zero value is not usable; start from
// DefaultParams.
type Params struct {
	// Density is the viewport area, in px², that buys one point.
	Density float64

	InteractionRadius float64 // pointer repulsion reach
	ForceDivisor      float64 // force = (radius - distance) / ForceDivisor
	MaxSpeed          float64 // speed cap applied after repulsion
	LinkDistance      float64 // points closer than this are joined by an edge

	// SpatialIndex buckets points into a uniform grid before the edge pass.
	// The drawn edges are identical either way.
	SpatialIndex bool

	BurstCount  int
	BurstFrames int
}

// DefaultParams returns the tuning the site ships with.
func DefaultParams() Params {
	return Params{
		Density:           15000,
		InteractionRadius: 150,
		ForceDivisor:      1500,
		MaxSpeed:          2,
		LinkDistance:      100,
		SpatialIndex:      true,
		BurstCount:        100,
		BurstFrames:       120,
	}
}
