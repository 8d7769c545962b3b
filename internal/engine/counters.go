package engine

// Counters are running statistics of an engine.
type Counters struct {
	Frames     uint64
	Entities   int
	Rendered   int
	Collisions uint64

	// Elapsed is simulated time in seconds.
	Elapsed float64
}

// AvgFPS returns frames per simulated second.
func (c Counters) AvgFPS() float64 {
	if c.Elapsed <= 0 {
		return 0
	}
	return float64(c.Frames) / c.Elapsed
}

// Counters returns a snapshot of the engine statistics.
func (e *Engine) Counters() Counters {
	return e.counters
}
