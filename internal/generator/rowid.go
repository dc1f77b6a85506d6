package generator

import (
	"errors"
	"fmt"

	"github.com/weiawesome/rowid/pkg/rowid"
)

const (
	DefaultMaxBatchCount = 1000
	MaxRandomnessLength  = 1024
)

var (
	ErrInvalidCount  = errors.New("invalid batch count")
	ErrInvalidLength = errors.New("invalid randomness length")
)

// RowIDGenerator serves IDs from a finalized rowid.RowID.
type RowIDGenerator struct {
	ids      *rowid.RowID
	maxBatch int
}

// NewRowIDGenerator creates a RowIDGenerator. maxBatch bounds GenerateBatch
// and must be at least 1.
func NewRowIDGenerator(ids *rowid.RowID, maxBatch int) (*RowIDGenerator, error) {
	if ids == nil {
		return nil, errors.New("rowid generator requires a finalized RowID")
	}
	if maxBatch < 1 {
		return nil, fmt.Errorf("max batch count must be at least 1, got %d", maxBatch)
	}
	return &RowIDGenerator{
		ids:      ids,
		maxBatch: maxBatch,
	}, nil
}

func (g *RowIDGenerator) Generate() (string, error) {
	return g.ids.New(), nil
}

// GenerateAt builds an ID for timestampMs, or for the current time when it
// is nil. A nil randomnessLength uses the configured default.
func (g *RowIDGenerator) GenerateAt(timestampMs *uint64, randomnessLength *int) rowid.GenerateResult {
	var opts []rowid.GenerateOption
	if randomnessLength != nil {
		if err := checkLength(*randomnessLength); err != nil {
			return rowid.GenerateResult{Err: err}
		}
		opts = append(opts, rowid.WithRandomnessLength(*randomnessLength))
	}

	if timestampMs == nil {
		return g.ids.Generate(g.ids.Now(), opts...)
	}
	return g.ids.GenerateTimestamp(*timestampMs, opts...)
}

func (g *RowIDGenerator) GenerateBatch(count int) ([]string, error) {
	if count < 1 || count > g.maxBatch {
		return nil, fmt.Errorf("%w: must be between 1 and %d, got %d", ErrInvalidCount, g.maxBatch, count)
	}
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, g.ids.New())
	}
	return ids, nil
}

func (g *RowIDGenerator) Encode(timestampMs uint64) (string, error) {
	return g.ids.EncodeTimestamp(timestampMs)
}

func (g *RowIDGenerator) Randomness(length int) (string, error) {
	if err := checkLength(length); err != nil {
		return "", err
	}
	return g.ids.Randomness(length), nil
}

func (g *RowIDGenerator) Verify(id string) rowid.VerifyResult {
	return g.ids.Verify(id)
}

func (g *RowIDGenerator) Validate(id string) (bool, string) {
	res := g.ids.Verify(id)
	if !res.Success {
		return false, res.Err.Error()
	}
	if !res.Natural {
		return false, "timestamp is in the future"
	}
	return true, ""
}

func (g *RowIDGenerator) Parse(id string) (*ParseResult, error) {
	res := g.ids.Verify(id)
	if !res.Success {
		return nil, fmt.Errorf("invalid rowid: %w", res.Err)
	}

	runes := []rune(id)
	return &ParseResult{
		TimestampMs: res.Timestamp,
		Natural:     res.Natural,
		RandomPart:  string(runes[rowid.TimestampLength:]),
		IDLength:    len(runes),
		Alphabet:    g.ids.Alphabet(),
	}, nil
}

func checkLength(n int) error {
	if n < 0 || n > MaxRandomnessLength {
		return fmt.Errorf("%w: must be between 0 and %d, got %d", ErrInvalidLength, MaxRandomnessLength, n)
	}
	return nil
}
