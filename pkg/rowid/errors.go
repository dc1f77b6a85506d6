package rowid

import "errors"

var (
	// ErrInvalidTimestamp is returned when a time.Time before the Unix epoch is encoded.
	ErrInvalidTimestamp = errors.New("rowid: time must not be before the Unix epoch")

	// ErrEncodedTooShort is returned when a value shorter than TimestampLength is decoded.
	ErrEncodedTooShort = errors.New("rowid: encoded value is not long enough to be decoded")

	// ErrInvalidCharacter is returned when the timestamp prefix contains a character
	// outside the alphabet.
	ErrInvalidCharacter = errors.New("rowid: encoded value contains a character outside the alphabet")

	// ErrAlphabetTooShort is returned by Builder.Finalize when the alphabet has fewer
	// than MinAlphabetLength distinct characters.
	ErrAlphabetTooShort = errors.New("rowid: alphabet must contain at least 28 distinct characters")

	// ErrDuplicateCharacter is returned by Builder.Finalize when a character
	// appears more than once in the alphabet.
	ErrDuplicateCharacter = errors.New("rowid: alphabet contains a repeated character")

	// ErrLowercaseCharacter is returned by Builder.Finalize when upper-casing an
	// alphabet character changes it. Decode upper-cases its input, so such a
	// digit could never be read back.
	ErrLowercaseCharacter = errors.New("rowid: alphabet contains a character that changes when upper-cased")

	// ErrTimestampOverflow is returned when a timestamp does not fit in TimestampLength
	// digits of the alphabet's radix, or a decoded prefix does not fit in a uint64.
	ErrTimestampOverflow = errors.New("rowid: timestamp out of range")
)
