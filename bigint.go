package decnum

import (
	"bytes"
	"fmt"
	"math/big"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// BigInt is an arbitrary-precision signed integer stored as base-10 digits.
//
// The zero value is 0. BigInt is a value type: no method modifies the
// receiver or its arguments, so BigInts may be copied and shared between
// goroutines freely.
type BigInt struct {
	// digits holds digit values (not ASCII), most significant first, with no
	// leading zeros. nil means zero.
	digits []byte

	// neg is never set for zero.
	neg bool
}

// newBigInt builds a canonical BigInt from digits, which must be owned by
// the caller and never written to again.
func newBigInt(digits []byte, neg bool) BigInt {
	digits = trimZeros(digits)
	if len(digits) == 1 && digits[0] == 0 {
		return BigInt{}
	}
	return BigInt{digits: digits, neg: neg}
}

// BigIntFromString creates a BigInt from a string containing an optional
// leading '-' followed by one or more ASCII decimal digits. Leading zeros are
// accepted and discarded, and "-0" is 0.
//
// Any other input returns a *ParseError which wraps ErrInvalidFormat.
func BigIntFromString(s string) (out BigInt, err error) {
	if len(s) == 0 {
		return out, &ParseError{Input: s, Kind: ParseEmpty}
	}

	var neg bool
	start := 0
	if s[0] == '-' {
		neg = true
		start++
	}
	if start == len(s) {
		return out, &ParseError{Input: s, Kind: ParseNoDigits}
	}

	digits := make([]byte, len(s)-start)
	for i := start; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return out, &ParseError{Input: s, Kind: ParseBadChar, Pos: i}
		}
		digits[i-start] = c - '0'
	}
	return newBigInt(digits, neg), nil
}

// MustBigIntFromString is like BigIntFromString but panics if s can not be
// parsed. It is intended for constants and tests.
func MustBigIntFromString(s string) BigInt {
	v, err := BigIntFromString(s)
	if err != nil {
		panic(fmt.Sprintf("MustBigIntFromString(%q) failed: %v", s, err))
	}
	return v
}

// BigIntFrom64 creates a BigInt from the decimal text of v.
func BigIntFrom64(v int64) BigInt {
	return MustBigIntFromString(strconv.FormatInt(v, 10))
}

func BigIntFrom32(v int32) BigInt   { return BigIntFrom64(int64(v)) }
func BigIntFrom16(v int16) BigInt   { return BigIntFrom64(int64(v)) }
func BigIntFrom8(v int8) BigInt     { return BigIntFrom64(int64(v)) }
func BigIntFromInt(v int) BigInt    { return BigIntFrom64(int64(v)) }
func BigIntFromU64(v uint64) BigInt { return MustBigIntFromString(strconv.FormatUint(v, 10)) }

// BigIntFromBigInt creates a BigInt with the same value as v.
func BigIntFromBigInt(v *big.Int) BigInt {
	return MustBigIntFromString(v.Text(10))
}

// mag returns the magnitude of i. The returned slice must not be modified.
func (i BigInt) mag() []byte {
	if len(i.digits) == 0 {
		return zeroDigits
	}
	return i.digits
}

func (i BigInt) IsZero() bool { return len(i.digits) == 0 }

func (i BigInt) Sign() int {
	if i.IsZero() {
		return 0
	} else if i.neg {
		return -1
	}
	return 1
}

// Digits returns a copy of the digit values of |i|, most significant first.
// Zero is []byte{0}.
func (i BigInt) Digits() []byte {
	m := i.mag()
	out := make([]byte, len(m))
	copy(out, m)
	return out
}

// NumDigits returns the number of decimal digits in |i|. Zero has one digit.
func (i BigInt) NumDigits() int { return len(i.mag()) }

func (i BigInt) String() string {
	m := i.mag()
	n := len(m)
	if i.neg {
		n++
	}
	out := make([]byte, 0, n)
	if i.neg {
		out = append(out, '-')
	}
	for _, d := range m {
		out = append(out, d+'0')
	}
	return string(out)
}

// Format implements fmt.Formatter by way of math/big, so every verb and flag
// big.Int understands (%d, %x, %o, %b, width, padding) works here too.
func (i BigInt) Format(s fmt.State, c rune) {
	i.AsBigInt().Format(s, c)
}

// IntoBigInt copies this BigInt into a big.Int, allowing you to retain and
// recycle memory.
func (i BigInt) IntoBigInt(b *big.Int) {
	if _, ok := b.SetString(i.String(), 10); !ok {
		panic(fmt.Errorf("decnum: big.Int rejected %q", i.String()))
	}
}

// AsBigInt allocates a new big.Int and copies this BigInt into it.
func (i BigInt) AsBigInt() *big.Int {
	b := new(big.Int)
	i.IntoBigInt(b)
	return b
}

// AsInt64 truncates the BigInt to fit in an int64. Values outside the range
// wrap around as they would with Go's integer conversions. See IsInt64 if you
// want to check before you convert.
func (i BigInt) AsInt64() int64 {
	var u uint64
	for _, d := range i.mag() {
		u = u*10 + uint64(d)
	}
	if i.neg {
		u = -u
	}
	return int64(u)
}

// IsInt64 reports whether i can be represented as an int64.
func (i BigInt) IsInt64() bool {
	if i.neg {
		return cmpAbs(i.mag(), minInt64AbsDigits) <= 0
	}
	return cmpAbs(i.mag(), maxInt64Digits) <= 0
}

// Neg returns -i. The negation of zero is zero.
func (i BigInt) Neg() BigInt {
	if i.IsZero() {
		return zeroBigInt
	}
	return BigInt{digits: i.Digits(), neg: !i.neg}
}

func (i BigInt) Abs() BigInt {
	if !i.neg {
		return i
	}
	return BigInt{digits: i.Digits()}
}

// Add returns i + n.
func (i BigInt) Add(n BigInt) BigInt {
	a, b := i.mag(), n.mag()

	if i.neg == n.neg {
		return newBigInt(addAbs(a, b), i.neg)
	}

	// Signs differ: take the smaller magnitude away from the larger one, the
	// result takes the sign of the larger.
	switch cmpAbs(a, b) {
	case 1:
		return newBigInt(subAbs(a, b), i.neg)
	case -1:
		return newBigInt(subAbs(b, a), n.neg)
	default:
		return zeroBigInt
	}
}

// Sub returns i - n.
func (i BigInt) Sub(n BigInt) BigInt {
	return i.Add(n.Neg())
}

func (i BigInt) Inc() BigInt { return i.Add(oneBigInt) }
func (i BigInt) Dec() BigInt { return i.Sub(oneBigInt) }

// Mul returns the product of two BigInts.
func (i BigInt) Mul(n BigInt) BigInt {
	return newBigInt(mulAbs(i.mag(), n.mag()), i.neg != n.neg)
}

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
func (i BigInt) Cmp(n BigInt) int {
	if i.neg != n.neg {
		if i.neg {
			return -1
		}
		return 1
	}
	c := cmpAbs(i.mag(), n.mag())
	if i.neg {
		return -c
	}
	return c
}

// CmpAbs compares |i| to |n|, with the same results as Cmp.
func (i BigInt) CmpAbs(n BigInt) int {
	return cmpAbs(i.mag(), n.mag())
}

// Equal reports whether i and n hold the same value.
func (i BigInt) Equal(n BigInt) bool {
	return i.neg == n.neg && bytes.Equal(i.mag(), n.mag())
}

func (i BigInt) GreaterThan(n BigInt) bool      { return i.Cmp(n) > 0 }
func (i BigInt) GreaterOrEqualTo(n BigInt) bool { return i.Cmp(n) >= 0 }
func (i BigInt) LessThan(n BigInt) bool         { return i.Cmp(n) < 0 }
func (i BigInt) LessOrEqualTo(n BigInt) bool    { return i.Cmp(n) <= 0 }

// Hash returns a 64-bit hash of i. If a.Equal(b) then a.Hash() == b.Hash().
func (i BigInt) Hash() uint64 {
	h := xxhash.New()
	if i.neg {
		_, _ = h.Write([]byte{'-'})
	}
	_, _ = h.Write(i.mag())
	return h.Sum64()
}

func (i BigInt) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *BigInt) UnmarshalText(bts []byte) (err error) {
	v, err := BigIntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i BigInt) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

// UnmarshalJSON accepts either a quoted string or a bare JSON integer.
func (i *BigInt) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("decnum: bigint invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := BigIntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
