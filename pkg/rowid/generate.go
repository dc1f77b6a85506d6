package rowid

import "time"

// GenerateResult reports the outcome of Generate. Result is empty and Err
// is set when Success is false.
type GenerateResult struct {
	Success bool
	Result  string
	Err     error
}

// GenerateOption configures a single Generate call.
type GenerateOption func(*generateOptions)

type generateOptions struct {
	randomnessLength int
}

// WithRandomnessLength overrides the default randomness length for one call.
func WithRandomnessLength(n int) GenerateOption {
	return func(o *generateOptions) {
		o.randomnessLength = n
	}
}

// Generate builds an ID for t. Failures are reported in the result instead
// of being returned, so callers generating many IDs can keep going.
func (r *RowID) Generate(t time.Time, opts ...GenerateOption) GenerateResult {
	encoded, err := r.Encode(t)
	if err != nil {
		return GenerateResult{Err: err}
	}
	return r.withRandomness(encoded, opts)
}

// GenerateTimestamp is Generate for milliseconds since the Unix epoch.
func (r *RowID) GenerateTimestamp(ms uint64, opts ...GenerateOption) GenerateResult {
	encoded, err := r.EncodeTimestamp(ms)
	if err != nil {
		return GenerateResult{Err: err}
	}
	return r.withRandomness(encoded, opts)
}

func (r *RowID) withRandomness(encoded string, opts []GenerateOption) GenerateResult {
	o := generateOptions{randomnessLength: r.randomnessLength}
	for _, opt := range opts {
		opt(&o)
	}
	return GenerateResult{
		Success: true,
		Result:  encoded + r.alphabet.randomness(o.randomnessLength),
	}
}
