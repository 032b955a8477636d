package decnum

// The helpers in this file work on magnitudes: slices of digit values in
// [0, 9], most significant digit first. Inputs are never written to; every
// helper that produces digits allocates the slice it returns.

// cmpAbs compares two canonical magnitudes and returns:
//
//	-1 if a <  b
//	 0 if a == b
//	+1 if a >  b
//
// Canonical magnitudes have no leading zeros, so a longer slice is always
// the larger number.
func cmpAbs(a, b []byte) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			continue
		}
		if a[i] < b[i] {
			return -1
		}
		return 1
	}
	return 0
}

// addAbs returns a + b. The result has one more digit than the longer
// operand to absorb the final carry, so it will usually need trimming.
func addAbs(a, b []byte) []byte {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]byte, n+1)

	var carry byte
	for k := 1; k <= n; k++ {
		s := carry
		if k <= len(a) {
			s += a[len(a)-k]
		}
		if k <= len(b) {
			s += b[len(b)-k]
		}
		out[len(out)-k] = s % 10
		carry = s / 10
	}
	out[0] = carry
	return out
}

// subAbs returns a - b. a must not be smaller than b; cmpAbs(a, b) >= 0.
//
// The borrow is carried in a local rather than decremented into a, so
// neither operand is touched.
func subAbs(a, b []byte) []byte {
	out := make([]byte, len(a))

	borrow := 0
	for k := 1; k <= len(a); k++ {
		d := int(a[len(a)-k]) - borrow
		if k <= len(b) {
			d -= int(b[len(b)-k])
		}
		borrow = 0
		if d < 0 {
			d += 10
			borrow = 1
		}
		out[len(out)-k] = byte(d)
	}

	if borrow != 0 || len(b) > len(a) {
		panic("decnum: subtrahend larger than minuend")
	}
	return out
}

// mulAbs returns a * b using the schoolbook method. The accumulator holds
// len(a)+len(b)+1 slots; the product of a[i] and b[j] lands in slot i+j+2,
// which is the slot for place value 10^(placeOf(i)+placeOf(j)).
func mulAbs(a, b []byte) []byte {
	acc := make([]int, len(a)+len(b)+1)

	for i := len(a) - 1; i >= 0; i-- {
		if a[i] == 0 {
			continue
		}
		for j := len(b) - 1; j >= 0; j-- {
			acc[i+j+2] += int(a[i]) * int(b[j])
		}
	}

	out := make([]byte, len(acc))
	carry := 0
	for p := len(acc) - 1; p >= 0; p-- {
		v := acc[p] + carry
		out[p] = byte(v % 10)
		carry = v / 10
	}
	if carry != 0 {
		panic("decnum: carry out of multiplication accumulator")
	}
	return out
}

// trimZeros strips leading zero digits from d, leaving a single zero if d
// is all zeros or empty. The result may share d's backing array.
func trimZeros(d []byte) []byte {
	i := 0
	for i < len(d)-1 && d[i] == 0 {
		i++
	}
	if i >= len(d) {
		return zeroDigits
	}
	return d[i:]
}
