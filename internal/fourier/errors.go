package fourier

import "errors"

// ErrAllocation is returned by Analyze when the scratch buffers for a sample
// sequence cannot be obtained.
var ErrAllocation = errors.New("fourier: cannot allocate analysis buffers")
