package decnum

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

// digs converts a string of ASCII digits to digit values without any
// canonicalisation, so tests can feed leading zeros to the helpers.
func digs(s string) []byte {
	out := make([]byte, len(s))
	for i := range s {
		out[i] = s[i] - '0'
	}
	return out
}

func undigs(d []byte) string {
	out := make([]byte, len(d))
	for i := range d {
		out[i] = d[i] + '0'
	}
	return string(out)
}

func TestCmpAbs(t *testing.T) {
	for _, tc := range []struct {
		a, b   string
		result int
	}{
		{"0", "0", 0},
		{"1", "0", 1},
		{"0", "1", -1},
		{"10", "9", 1},
		{"9", "10", -1},
		{"123", "123", 0},
		{"123", "124", -1},
		{"124", "123", 1},
		{"200", "199", 1},
		{"1000000000000000000000", "999999999999999999999", 1},
	} {
		t.Run(fmt.Sprintf("%s<=>%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.result, cmpAbs(digs(tc.a), digs(tc.b)))
			tt.MustEqual(-tc.result, cmpAbs(digs(tc.b), digs(tc.a)))
		})
	}
}

func TestAddAbs(t *testing.T) {
	for _, tc := range []struct {
		a, b, out string
	}{
		{"0", "0", "00"},
		{"1", "2", "03"},
		{"5", "5", "10"},
		{"99", "1", "100"},
		{"1", "99", "100"},
		{"999", "999", "1998"},
		{"123", "4567", "04690"},
	} {
		t.Run(fmt.Sprintf("%s+%s=%s", tc.a, tc.b, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			a, b := digs(tc.a), digs(tc.b)
			tt.MustEqual(tc.out, undigs(addAbs(a, b)))
			tt.MustEqual(tc.a, undigs(a))
			tt.MustEqual(tc.b, undigs(b))
		})
	}
}

func TestSubAbs(t *testing.T) {
	for _, tc := range []struct {
		a, b, out string
	}{
		{"0", "0", "0"},
		{"5", "5", "0"},
		{"10", "1", "09"},
		{"1000", "1", "0999"},
		{"1000", "999", "0001"},
		{"5000", "4999", "0001"},
		{"1010", "909", "0101"},
		{"100000000000000000000", "1", "099999999999999999999"},
	} {
		t.Run(fmt.Sprintf("%s-%s=%s", tc.a, tc.b, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			a, b := digs(tc.a), digs(tc.b)
			tt.MustEqual(tc.out, undigs(subAbs(a, b)))

			// The minuend must survive a borrow chain untouched:
			tt.MustEqual(tc.a, undigs(a))
			tt.MustEqual(tc.b, undigs(b))
		})
	}
}

func TestSubAbsPanicsWhenSubtrahendLarger(t *testing.T) {
	for _, tc := range []struct{ a, b string }{
		{"1", "2"},
		{"99", "100"},
	} {
		t.Run(fmt.Sprintf("%s-%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			defer func() {
				tt.MustAssert(recover() != nil)
			}()
			subAbs(digs(tc.a), digs(tc.b))
		})
	}
}

func TestMulAbs(t *testing.T) {
	for _, tc := range []struct {
		a, b, out string
	}{
		{"0", "0", "000"},
		{"1", "1", "001"},
		{"9", "9", "081"},
		{"12", "12", "00144"},
		{"99", "99", "09801"},
		{"123", "45", "005535"},
		{"999", "0", "00000"},
	} {
		t.Run(fmt.Sprintf("%s*%s=%s", tc.a, tc.b, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			a, b := digs(tc.a), digs(tc.b)
			out := mulAbs(a, b)
			tt.MustEqual(len(a)+len(b)+1, len(out))
			tt.MustEqual(tc.out, undigs(out))
		})
	}
}

func TestMulAbsLongRuns(t *testing.T) {
	tt := assert.WrapTB(t)

	// A long run of nines puts the most pressure on the accumulator:
	for n := 1; n <= 300; n += 37 {
		nines := make([]byte, n)
		for i := range nines {
			nines[i] = 9
		}
		out := trimZeros(mulAbs(nines, nines))

		// (10^n - 1)^2 == 9..98 0..01, with n-1 nines and n-1 zeros.
		want := make([]byte, 0, 2*n)
		for i := 0; i < n-1; i++ {
			want = append(want, 9)
		}
		want = append(want, 8)
		for i := 0; i < n-1; i++ {
			want = append(want, 0)
		}
		want = append(want, 1)
		tt.MustEqual(undigs(want), undigs(out), "n=%d", n)
	}
}

func TestTrimZeros(t *testing.T) {
	for _, tc := range []struct {
		in, out string
	}{
		{"", "0"},
		{"0", "0"},
		{"000", "0"},
		{"007", "7"},
		{"100", "100"},
		{"0100", "100"},
		{"1", "1"},
	} {
		t.Run(fmt.Sprintf("%q=%s", tc.in, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, undigs(trimZeros(digs(tc.in))))
		})
	}
}

func BenchmarkMulAbs(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1))
			x, y := make([]byte, n), make([]byte, n)
			for i := 0; i < n; i++ {
				x[i], y[i] = byte(rng.Intn(10)), byte(rng.Intn(10))
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				BenchDigitsResult = mulAbs(x, y)
			}
		})
	}
}
