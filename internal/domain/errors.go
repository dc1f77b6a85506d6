package domain

import (
	"errors"

	"github.com/weiawesome/rowid/internal/generator"
	"github.com/weiawesome/rowid/pkg/rowid"
)

// Error codes shared by the HTTP and gRPC transports.
const (
	CodeInvalidTimestamp  = "INVALID_TIMESTAMP"
	CodeEncodedTooShort   = "ENCODED_TOO_SHORT"
	CodeInvalidCharacter  = "INVALID_CHARACTER"
	CodeTimestampOverflow = "TIMESTAMP_OVERFLOW"
	CodeInvalidCount      = "INVALID_COUNT"
	CodeInvalidLength     = "INVALID_LENGTH"
	CodeInternal          = "INTERNAL_ERROR"
)

var codes = []struct {
	err  error
	code string
}{
	{rowid.ErrInvalidTimestamp, CodeInvalidTimestamp},
	{rowid.ErrEncodedTooShort, CodeEncodedTooShort},
	{rowid.ErrInvalidCharacter, CodeInvalidCharacter},
	{rowid.ErrTimestampOverflow, CodeTimestampOverflow},
	{generator.ErrInvalidCount, CodeInvalidCount},
	{generator.ErrInvalidLength, CodeInvalidLength},
}

// ErrorCode maps err to a transport error code. Unknown errors map to CodeInternal.
func ErrorCode(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeInternal
}

// IsInvalidInput reports whether err was caused by the caller's input.
func IsInvalidInput(err error) bool {
	return err != nil && ErrorCode(err) != CodeInternal
}
