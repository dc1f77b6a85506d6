package rowid

import (
	"fmt"
	"math/bits"
	"math/rand"
	"unicode"
	"unicode/utf8"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// alphabet holds the digit symbols of the radix encoding. A character's
// position is its digit value.
type alphabet struct {
	raw   string
	chars []rune
	index map[rune]int

	// capacity is radix^TimestampLength. It is only meaningful when bounded;
	// radixes above 84 can hold every uint64.
	capacity uint64
	bounded  bool
}

func newAlphabet(s string) alphabet {
	chars := []rune(s)
	index := make(map[rune]int, len(chars))
	for i, c := range chars {
		if _, ok := index[c]; !ok {
			index[c] = i
		}
	}

	a := alphabet{
		raw:      string(chars),
		chars:    chars,
		index:    index,
		capacity: 1,
		bounded:  true,
	}
	radix := a.radix()
	for i := 0; i < TimestampLength; i++ {
		hi, lo := bits.Mul64(a.capacity, radix)
		if hi != 0 {
			a.bounded = false
			break
		}
		a.capacity = lo
	}
	return a
}

func (a alphabet) radix() uint64 { return uint64(len(a.chars)) }

func (a alphabet) distinct() int { return len(a.index) }

// validate checks that every digit decodes back to its own position.
func (a alphabet) validate() error {
	if n := a.distinct(); n < MinAlphabetLength {
		return fmt.Errorf("%w: got %d", ErrAlphabetTooShort, n)
	}
	for i, c := range a.chars {
		if first := a.index[c]; first != i {
			return fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateCharacter, c, first, i)
		}
		if unicode.ToUpper(c) != c {
			return fmt.Errorf("%w: %q at position %d", ErrLowercaseCharacter, c, i)
		}
	}
	return nil
}

// encode writes ts as TimestampLength digits. Digits above the width are dropped.
func (a alphabet) encode(ts uint64) string {
	var buf [TimestampLength]rune
	radix := a.radix()
	for i := TimestampLength - 1; i >= 0; i-- {
		buf[i] = a.chars[ts%radix]
		ts /= radix
	}
	return string(buf[:])
}

func (a alphabet) encodeChecked(ts uint64) (string, error) {
	if a.bounded && ts >= a.capacity {
		return "", fmt.Errorf("%w: %d needs more than %d digits in radix %d",
			ErrTimestampOverflow, ts, TimestampLength, len(a.chars))
	}
	return a.encode(ts), nil
}

// decode parses the first TimestampLength characters of encoded. Anything
// after them is ignored, so a full ID can be passed as is.
func (a alphabet) decode(encoded string) (uint64, error) {
	if utf8.RuneCountInString(encoded) < TimestampLength {
		return 0, ErrEncodedTooShort
	}

	var digits [TimestampLength]uint64
	i := 0
	for _, c := range encoded {
		if i == TimestampLength {
			break
		}
		d, ok := a.index[unicode.ToUpper(c)]
		if !ok {
			return 0, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, c, i)
		}
		digits[i] = uint64(d)
		i++
	}

	var ts uint64
	radix := a.radix()
	for _, d := range digits {
		hi, lo := bits.Mul64(ts, radix)
		sum, carry := bits.Add64(lo, d, 0)
		if hi != 0 || carry != 0 {
			return 0, fmt.Errorf("%w: %q exceeds 64 bits", ErrTimestampOverflow, string([]rune(encoded)[:TimestampLength]))
		}
		ts = sum
	}
	return ts, nil
}

// randomness draws n characters uniformly and independently from the alphabet.
// nanoid only handles alphabets up to 255 characters; larger ones use math/rand.
func (a alphabet) randomness(n int) string {
	if n <= 0 {
		return ""
	}
	if s, err := gonanoid.Generate(a.raw, n); err == nil {
		return s
	}

	out := make([]rune, n)
	for i := range out {
		out[i] = a.chars[rand.Intn(len(a.chars))]
	}
	return string(out)
}
