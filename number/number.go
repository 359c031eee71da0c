package number

import (
	"cmp"
	"math"
	"math/big"
	"strconv"

	"github.com/signadot/jvalue/token"

	"github.com/cockroachdb/apd/v2"
)

// Number is an immutable exact decimal.
type Number struct {
	d *apd.Decimal
}

var (
	zero    apd.Decimal
	bigTen  = big.NewInt(10)
	bigFive = big.NewInt(5)
)

func (n Number) dec() *apd.Decimal {
	if n.d == nil {
		return &zero
	}
	return n.d
}

func FromInt64(i int64) Number {
	return Number{d: apd.New(i, 0)}
}

func FromUint64(u uint64) Number {
	return Number{d: apd.NewWithBigInt(new(big.Int).SetUint64(u), 0)}
}

// FromDecimal copies d.
func FromDecimal(d *apd.Decimal) Number {
	if d == nil {
		return Number{}
	}
	return Number{d: new(apd.Decimal).Set(d)}
}

// Parse parses a JSON number literal. The literal must match the JSON number
// grammar in full; anything else is a *SyntaxError.
func Parse(s string) (Number, error) {
	n, _, err := token.ScanNumber([]byte(s))
	if err != nil {
		return Number{}, &SyntaxError{Text: s, Err: err}
	}
	if n != len(s) {
		return Number{}, &SyntaxError{Text: s}
	}
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Number{}, &SyntaxError{Text: s, Err: err}
	}
	return Number{d: d}, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// FromFloat64 returns the exact decimal value of f: 0.1 becomes
// 0.1000000000000000055511151231257827021181583404541015625, not 0.1.
// NaN and infinities are kept as non-finite Numbers.
func FromFloat64(f float64) Number {
	switch {
	case math.IsNaN(f):
		return Number{d: &apd.Decimal{Form: apd.NaN}}
	case math.IsInf(f, 0):
		return Number{d: &apd.Decimal{Form: apd.Infinite, Negative: f < 0}}
	case f == 0:
		return Number{d: &apd.Decimal{Negative: math.Signbit(f)}}
	}
	mant, exp := math.Frexp(math.Abs(f))
	coeff := big.NewInt(int64(mant * (1 << 53)))
	e := exp - 53
	d := &apd.Decimal{}
	if e >= 0 {
		d.Coeff.Lsh(coeff, uint(e))
	} else {
		// m * 2^e == m * 5^-e * 10^e
		five := new(big.Int).Exp(bigFive, big.NewInt(int64(-e)), nil)
		d.Coeff.Mul(coeff, five)
		d.Exponent = int32(e)
		reduce(d)
	}
	d.Negative = f < 0
	return Number{d: d}
}

// reduce strips trailing zeros from a fractional coefficient.
func reduce(d *apd.Decimal) {
	q, r := new(big.Int), new(big.Int)
	for d.Exponent < 0 {
		q.QuoRem(&d.Coeff, bigTen, r)
		if r.Sign() != 0 {
			return
		}
		d.Coeff.Set(q)
		d.Exponent++
	}
}

// IsFinite reports whether n is neither NaN nor infinite.
func (n Number) IsFinite() bool {
	return n.dec().Form == apd.Finite
}

// IsInteger reports whether n is a finite whole number.
func (n Number) IsInteger() bool {
	d := n.dec()
	if d.Form != apd.Finite {
		return false
	}
	if d.Exponent >= 0 || d.IsZero() {
		return true
	}
	var integ, frac apd.Decimal
	d.Modf(&integ, &frac)
	return frac.IsZero()
}

// Int64 returns n as an int64 if n is an exact whole number within range.
func (n Number) Int64() (int64, bool) {
	d := n.dec()
	if d.Form != apd.Finite {
		return 0, false
	}
	if d.IsZero() {
		return 0, true
	}
	// anything with more than 19 integral digits cannot fit
	if int64(d.Exponent)+d.NumDigits() > 19 {
		return 0, false
	}
	i, err := d.Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}

// Int32 returns n as an int32 if n is an exact whole number within range.
func (n Number) Int32() (int32, bool) {
	i, ok := n.Int64()
	if !ok || i < math.MinInt32 || i > math.MaxInt32 {
		return 0, false
	}
	return int32(i), true
}

// Int returns n as an int if n is an exact whole number within range.
func (n Number) Int() (int, bool) {
	i, ok := n.Int64()
	if !ok || int64(int(i)) != i {
		return 0, false
	}
	return int(i), true
}

// Uint64 returns n as a uint64 if n is an exact non-negative whole number
// within range.
func (n Number) Uint64() (uint64, bool) {
	d := n.dec()
	if !n.IsInteger() {
		return 0, false
	}
	if d.IsZero() {
		return 0, true
	}
	if d.Negative || int64(d.Exponent)+d.NumDigits() > 20 {
		return 0, false
	}
	var integ, frac apd.Decimal
	d.Modf(&integ, &frac)
	b := new(big.Int).Set(&integ.Coeff)
	if integ.Exponent > 0 {
		b.Mul(b, new(big.Int).Exp(bigTen, big.NewInt(int64(integ.Exponent)), nil))
	}
	if !b.IsUint64() {
		return 0, false
	}
	return b.Uint64(), true
}

// Float64 returns the nearest float64. Values beyond the float64 range
// become infinities; precision beyond 53 bits is dropped silently.
func (n Number) Float64() float64 {
	f, _ := strconv.ParseFloat(n.dec().String(), 64)
	return f
}

// Float32 returns the nearest float32, with the same lossy semantics as
// Float64.
func (n Number) Float32() float32 {
	f, _ := strconv.ParseFloat(n.dec().String(), 32)
	return float32(f)
}

// Decimal returns a copy of the underlying decimal.
func (n Number) Decimal() *apd.Decimal {
	return new(apd.Decimal).Set(n.dec())
}

// Sign returns -1, 0 or +1. NaN has sign 0.
func (n Number) Sign() int {
	d := n.dec()
	switch d.Form {
	case apd.Finite:
		return d.Sign()
	case apd.Infinite:
		if d.Negative {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// String returns decimal text which Parse accepts for every finite Number.
// Non-finite numbers render as NaN, Infinity or -Infinity.
func (n Number) String() string {
	return n.dec().String()
}

// Cmp compares numerically. NaN sorts below everything and equals NaN, so
// Cmp is a total order.
func (n Number) Cmp(o Number) int {
	a, b := n.dec(), o.dec()
	ra, rb := formRank(a), formRank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	if ra != 2 {
		return 0
	}
	return a.Cmp(b)
}

func formRank(d *apd.Decimal) int {
	switch d.Form {
	case apd.Finite:
		return 2
	case apd.Infinite:
		if d.Negative {
			return 1
		}
		return 3
	default:
		return 0
	}
}

func (n Number) Equal(o Number) bool {
	return n.Cmp(o) == 0
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.IsFinite() {
		return nil, ErrNonFinite
	}
	return []byte(n.String()), nil
}

func (n *Number) UnmarshalJSON(d []byte) error {
	v, err := Parse(string(d))
	if err != nil {
		return err
	}
	*n = v
	return nil
}
