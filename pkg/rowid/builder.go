package rowid

import "time"

const (
	// DefaultAlphabet is Crockford's base32 alphabet.
	DefaultAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

	// DefaultRandomnessLength gives 32-character IDs with DefaultAlphabet.
	DefaultRandomnessLength = 22

	// TimestampLength is the number of characters used for the timestamp prefix.
	TimestampLength = 10

	// MinAlphabetLength is the smallest number of distinct characters Finalize accepts.
	MinAlphabetLength = 28
)

// Builder collects the configuration of a RowID. Each With method returns a
// modified copy, so a Builder can be shared as a template.
type Builder struct {
	alphabet         string
	randomnessLength int
	clock            func() time.Time
}

// NewBuilder returns a Builder with DefaultAlphabet and DefaultRandomnessLength.
func NewBuilder() Builder {
	return Builder{
		alphabet:         DefaultAlphabet,
		randomnessLength: DefaultRandomnessLength,
		clock:            time.Now,
	}
}

// WithAlphabet sets the characters used for both the timestamp digits and the randomness.
func (b Builder) WithAlphabet(alphabet string) Builder {
	b.alphabet = alphabet
	return b
}

// WithDefaultRandomnessLength sets the suffix length used by New and by
// Generate calls without WithRandomnessLength. Negative values are treated as 0.
func (b Builder) WithDefaultRandomnessLength(n int) Builder {
	b.randomnessLength = n
	return b
}

// WithClock replaces time.Now as the source of the current time.
func (b Builder) WithClock(now func() time.Time) Builder {
	b.clock = now
	return b
}

// Finalize validates the configuration and returns an immutable RowID.
// The alphabet needs at least MinAlphabetLength characters, none repeated and
// none that upper-casing changes, so that every encoded value decodes.
func (b Builder) Finalize() (*RowID, error) {
	a := newAlphabet(b.alphabet)
	if err := a.validate(); err != nil {
		return nil, err
	}

	clock := b.clock
	if clock == nil {
		clock = time.Now
	}

	return &RowID{
		alphabet:         a,
		randomnessLength: max(b.randomnessLength, 0),
		now:              clock,
	}, nil
}
