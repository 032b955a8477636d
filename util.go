package decnum

type RandSource interface {
	Uint64() uint64
}

// RandBigInt generates a BigInt with between 1 and maxDigits digits and a
// random sign from an external source. maxDigits < 1 is treated as 1.
func RandBigInt(source RandSource, maxDigits int) BigInt {
	if maxDigits < 1 {
		maxDigits = 1
	}
	n := int(source.Uint64()%uint64(maxDigits)) + 1
	digits := make([]byte, n)
	for i := range digits {
		digits[i] = byte(source.Uint64() % 10)
	}
	return newBigInt(digits, source.Uint64()&1 == 1)
}

// DifferenceBigInt subtracts the smaller of a and b from the larger.
func DifferenceBigInt(a, b BigInt) BigInt {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func LargerBigInt(a, b BigInt) BigInt {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

func SmallerBigInt(a, b BigInt) BigInt {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}
