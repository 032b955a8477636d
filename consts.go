package decnum

var (
	// zeroDigits is the canonical magnitude of zero. It is shared, so nothing
	// may ever write into it.
	zeroDigits = []byte{0}

	zeroBigInt BigInt
	oneBigInt  = BigInt{digits: []byte{1}}

	// Magnitudes of math.MaxInt64 and -math.MinInt64, used by IsInt64:
	maxInt64Digits    = []byte{9, 2, 2, 3, 3, 7, 2, 0, 3, 6, 8, 5, 4, 7, 7, 5, 8, 0, 7}
	minInt64AbsDigits = []byte{9, 2, 2, 3, 3, 7, 2, 0, 3, 6, 8, 5, 4, 7, 7, 5, 8, 0, 8}
)
