package rowid

import "time"

// std uses DefaultAlphabet and DefaultRandomnessLength. It is never modified.
var std = mustFinalize(NewBuilder())

func mustFinalize(b Builder) *RowID {
	r, err := b.Finalize()
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the RowID used by the package-level functions.
func Default() *RowID { return std }

// New returns a 32-character ID for the current time.
func New() string { return std.New() }

// Encode encodes t with the default configuration.
func Encode(t time.Time) (string, error) { return std.Encode(t) }

// EncodeTimestamp encodes ms with the default configuration.
func EncodeTimestamp(ms uint64) (string, error) { return std.EncodeTimestamp(ms) }

// Decode decodes encoded with the default configuration.
func Decode(encoded string) (time.Time, error) { return std.Decode(encoded) }

// DecodeTimestamp decodes encoded with the default configuration.
func DecodeTimestamp(encoded string) (uint64, error) { return std.DecodeTimestamp(encoded) }

// Generate builds an ID for t with the default configuration.
func Generate(t time.Time, opts ...GenerateOption) GenerateResult { return std.Generate(t, opts...) }

// GenerateTimestamp builds an ID for ms with the default configuration.
func GenerateTimestamp(ms uint64, opts ...GenerateOption) GenerateResult {
	return std.GenerateTimestamp(ms, opts...)
}

// Verify verifies encoded with the default configuration.
func Verify(encoded string) VerifyResult { return std.Verify(encoded) }

// Randomness returns n random characters from DefaultAlphabet.
func Randomness(n int) string { return std.Randomness(n) }
