package fourier

import (
	"cmp"
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// DefaultMaxSamples bounds the length an Analyzer accepts before reporting
// ErrAllocation instead of attempting to allocate its buffers.
const DefaultMaxSamples = 1 << 24

// Coefficient is one epicycle: a circle of radius Amplitude turning Frequency
// times per revolution, starting at angle Phase.
type Coefficient struct {
	Amplitude float64 `json:"amplitude" yaml:"amplitude"`
	Frequency int     `json:"frequency" yaml:"frequency"`
	Phase     float64 `json:"phase" yaml:"phase"`
	// Bin is the raw transform index the coefficient came from.
	Bin int `json:"bin" yaml:"bin"`
}

// Result is a ranked, truncated set of coefficients. Each Analyze call returns
// a fresh Result that shares no memory with any other.
type Result struct {
	coeffs []Coefficient
	points int
}

// Count returns the number of retained coefficients.
func (r *Result) Count() int {
	if r == nil {
		return 0
	}
	return len(r.coeffs)
}

// Points returns the length of the sample sequence that was analyzed.
func (r *Result) Points() int {
	if r == nil {
		return 0
	}
	return r.points
}

// At returns the i-th coefficient in rank order.
func (r *Result) At(i int) Coefficient {
	return r.coeffs[i]
}

// Coefficients returns a copy of the ranked coefficients.
func (r *Result) Coefficients() []Coefficient {
	if r == nil {
		return nil
	}
	return slices.Clone(r.coeffs)
}

// TotalAmplitude returns the sum of all retained amplitudes, which bounds the
// distance of any reconstructed point from the origin.
func (r *Result) TotalAmplitude() float64 {
	var sum float64
	for i := range r.Count() {
		sum += r.coeffs[i].Amplitude
	}
	return sum
}

// Release drops the coefficient buffer. The Result reads as empty afterwards.
// Calling Release more than once is harmless.
func (r *Result) Release() {
	if r == nil {
		return
	}
	r.coeffs = nil
	r.points = 0
}

// FrequencyForBin maps bin i of an n-point transform to its signed frequency:
// i when i <= n/2, i-n above that.
func FrequencyForBin(i, n int) int {
	if i <= n/2 {
		return i
	}
	return i - n
}

// Analyzer ranks transform bins into epicycle coefficients.
type Analyzer struct {
	logger     *zap.Logger
	maxSamples int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithMaxSamples sets the largest sample count Analyze accepts.
func WithMaxSamples(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.maxSamples = n
		}
	}
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		logger:     zap.NewNop(),
		maxSamples: DefaultMaxSamples,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var defaultAnalyzer = NewAnalyzer()

// Analyze is shorthand for NewAnalyzer().Analyze.
func Analyze(samples []complex128, k int) (*Result, error) {
	return defaultAnalyzer.Analyze(samples, k)
}

// Analyze transforms samples once and returns the k largest coefficients
// ordered by amplitude, largest first. Equal amplitudes keep ascending bin
// order. k is clamped to len(samples); an empty input or k <= 0 yields an
// empty Result and no error.
func (a *Analyzer) Analyze(samples []complex128, k int) (*Result, error) {
	n := len(samples)
	if n == 0 || k <= 0 {
		return &Result{}, nil
	}
	if n > a.maxSamples {
		return nil, fmt.Errorf("%w: %d samples exceeds limit of %d", ErrAllocation, n, a.maxSamples)
	}
	k = min(k, n)

	bins := Transform(samples)

	all := make([]Coefficient, n)
	for i, x := range bins {
		all[i] = Coefficient{
			Amplitude: Abs(x),
			Frequency: FrequencyForBin(i, n),
			Phase:     Arg(x),
			Bin:       i,
		}
	}

	slices.SortStableFunc(all, func(x, y Coefficient) int {
		return cmp.Compare(y.Amplitude, x.Amplitude)
	})

	// Copy out so the result does not pin the n-sized scratch slice.
	kept := make([]Coefficient, k)
	copy(kept, all[:k])

	a.logger.Debug("analyzed path",
		zap.Int("points", n),
		zap.Int("kept", k),
		zap.Stringer("strategy", StrategyFor(n)),
		zap.Float64("largest_amplitude", kept[0].Amplitude),
	)

	return &Result{coeffs: kept, points: n}, nil
}
