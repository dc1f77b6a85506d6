package generator

import "github.com/weiawesome/rowid/pkg/rowid"

// Generator defines ID generation, validation and parsing as exposed by the
// transports.
type Generator interface {
	Generate() (string, error)
	GenerateAt(timestampMs *uint64, randomnessLength *int) rowid.GenerateResult
	GenerateBatch(count int) ([]string, error)
	Encode(timestampMs uint64) (string, error)
	Randomness(length int) (string, error)
	Verify(id string) rowid.VerifyResult
	Validate(id string) (bool, string) // (valid, reason)
	Parse(id string) (*ParseResult, error)
}

// ParseResult holds the parsed fields from an ID.
type ParseResult struct {
	TimestampMs uint64
	Natural     bool
	RandomPart  string
	IDLength    int
	Alphabet    string
}
