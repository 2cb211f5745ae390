package compare

// MemoryMode selects how the cost matrix is stored.
type MemoryMode int

const (
	// FullMatrix keeps the whole (n+1)×(m+1) matrix; the path can be recovered.
	FullMatrix MemoryMode = iota
	// TwoRows keeps the previous and current rows only.
	TwoRows
)

// Options configures an alignment.
//
//   - Window: maximum |i−j|; -1 means unconstrained.
//   - SlopePenalty: added to every non-diagonal step.
//   - ReturnPath: recover the alignment; needs FullMatrix.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns an unconstrained, penalty-free, distance-only
// configuration.
func DefaultOptions() Options {
	return Options{Window: -1, MemoryMode: FullMatrix}
}

// Step pairs sample A of the first curve with sample B of the second.
type Step struct {
	A int `json:"a" yaml:"a"`
	B int `json:"b" yaml:"b"`
}

// Result summarises a curve comparison.
type Result struct {
	// Distance is the accumulated alignment cost.
	Distance float64 `json:"distance" yaml:"distance"`
	// Mean is Distance per aligned step.
	Mean float64 `json:"mean" yaml:"mean"`
	// MaxShiftOctaves is the largest frequency offset along the path, in
	// octaves; 0 when the path was not recovered.
	MaxShiftOctaves float64 `json:"max_shift_octaves" yaml:"max_shift_octaves"`
	// Path is the alignment, first samples first; nil unless requested.
	Path []Step `json:"path,omitempty" yaml:"path,omitempty"`
}
