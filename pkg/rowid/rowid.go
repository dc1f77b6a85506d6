package rowid

import "time"

// RowID generates, encodes and verifies IDs for one alphabet and default
// randomness length. Build it with NewBuilder.
type RowID struct {
	alphabet         alphabet
	randomnessLength int
	now              func() time.Time
}

// Alphabet returns the configured alphabet.
func (r *RowID) Alphabet() string { return r.alphabet.raw }

// DefaultRandomnessLength returns the configured suffix length.
func (r *RowID) DefaultRandomnessLength() int { return r.randomnessLength }

// Now returns the current time according to the configured clock.
func (r *RowID) Now() time.Time { return r.now() }

// New returns an ID for the current time with the default randomness length.
func (r *RowID) New() string {
	ts := TimeToTimestamp(r.now())
	return r.alphabet.encode(ts) + r.alphabet.randomness(r.randomnessLength)
}

// Encode returns the TimestampLength-character encoding of t.
// It fails with ErrInvalidTimestamp if t is before the Unix epoch.
func (r *RowID) Encode(t time.Time) (string, error) {
	if t.Before(epoch) {
		return "", ErrInvalidTimestamp
	}
	return r.EncodeTimestamp(TimeToTimestamp(t))
}

// EncodeTimestamp returns the TimestampLength-character encoding of ms,
// milliseconds since the Unix epoch. It fails with ErrTimestampOverflow if
// ms does not fit in TimestampLength digits.
func (r *RowID) EncodeTimestamp(ms uint64) (string, error) {
	return r.alphabet.encodeChecked(ms)
}

// Decode returns the time stored in the first TimestampLength characters of encoded.
func (r *RowID) Decode(encoded string) (time.Time, error) {
	ms, err := r.DecodeTimestamp(encoded)
	if err != nil {
		return time.Time{}, err
	}
	return TimestampToTime(ms), nil
}

// DecodeTimestamp returns the milliseconds stored in the first
// TimestampLength characters of encoded. The input is upper-cased before
// lookup and trailing characters are ignored.
func (r *RowID) DecodeTimestamp(encoded string) (uint64, error) {
	return r.alphabet.decode(encoded)
}

// Randomness returns n characters drawn uniformly from the alphabet.
func (r *RowID) Randomness(n int) string {
	return r.alphabet.randomness(n)
}
