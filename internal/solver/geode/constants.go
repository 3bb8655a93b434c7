package geode

// Horizons used by the calling code
const (
	// DefaultHorizon is the number of steps for quality-level scoring
	DefaultHorizon = 24

	// ExtendedHorizon is the number of steps for the first-three product
	ExtendedHorizon = 32
)
