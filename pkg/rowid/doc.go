// Package rowid generates sortable, time-ordered unique identifiers.
//
// # Format
//
// An ID is a fixed-width, 10-character encoding of a millisecond Unix
// timestamp followed by a random suffix:
//
//	01HF3Y8Z9Q 7N4K0C2W8X9D1M5R6T3V2Z
//	|________| |____________________|
//	 timestamp    randomness (22 by default)
//
// The timestamp is written most significant digit first in radix
// len(alphabet), left padded with the first character of the alphabet.
// When the alphabet is in ascending code point order, as the default is, IDs
// compare lexicographically in creation order. The default alphabet is
// Crockford's base32 (no I, L, O or U), which makes the timestamp prefix of
// a default ID identical to the timestamp prefix of a ULID.
//
// # Usage
//
//	id := rowid.New()
//
//	ids, err := rowid.NewBuilder().
//		WithAlphabet("0123456789ABCDEFGHJKMNPQRSTVWXYZ").
//		WithDefaultRandomnessLength(6).
//		Finalize()
//	if err != nil {
//		return err
//	}
//	short := ids.New()
//
// A finalized *RowID is immutable and safe for concurrent use.
package rowid
