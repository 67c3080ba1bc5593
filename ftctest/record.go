package ftctest

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Magic is the literal tag carried in the first column of every sample line.
const Magic = "ftctest"

// numFields is the number of CSV columns a sample line must carry.
const numFields = 6

// Record is one parsed ftctest sample, with every time expressed as an
// integer count of microseconds.
type Record struct {
	// Orig is the origin timestamp the clock was started from.
	Orig int64
	// ScaleNum and ScaleDen hold the time scaling factor as the exact
	// rational value of its binary floating-point representation.
	// ScaleDen is always positive.
	ScaleNum *big.Int
	ScaleDen *big.Int
	// Offset is the configured time offset.
	Offset int64
	// Input is the real timestamp the clock sampled.
	Input int64
	// Output is the scaled timestamp the clock reported.
	Output int64
}

// TimeMicros converts a decimal seconds string of the form
// "<integer>.<fraction>" into integer microseconds. The fractional part is
// right-padded with zeros and truncated to six digits, never rounded, so
// "5.1" yields 5100000 and "5.25" yields 5250000. The fraction is added to
// the scaled integer part even when the seconds value is negative, matching
// the clock's own fixed-point conversion.
func TimeMicros(s string) (int64, error) {
	sec, frac, ok := strings.Cut(s, ".")
	if !ok {
		// Well-formed clock output always carries a decimal point;
		// kept as a harmless fallback rather than an error.
		return 0, nil
	}

	t, err := strconv.ParseInt(sec, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid seconds %q", s)
	}
	t *= 1000000

	frac += "00000"
	if len(frac) > 6 {
		frac = frac[:6]
	}
	us, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid fraction %q", s)
	}
	return t + us, nil
}

// scaleRatio decomposes a decimal scale factor string into the exact
// numerator/denominator pair of its float64 value. The decomposition goes
// through the binary representation, not the decimal text, so a factor like
// 1.1 yields the same 2476979795053773/2251799813685248 ratio the clock's
// floating-point arithmetic works with.
func scaleRatio(s string) (num, den *big.Int, err error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "invalid scale %q", s)
	}
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		return nil, nil, errors.Errorf("scale %q is not finite", s)
	}
	return r.Num(), r.Denom(), nil
}

// offsetMicros converts a decimal seconds offset string into microseconds,
// rounded to the nearest integer with ties going to even.
func offsetMicros(s string) (int64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid offset %q", s)
	}
	return int64(math.RoundToEven(f * 1e6)), nil
}

// parseRecord builds a Record from the first numFields CSV columns of a
// sample line. Extra columns, such as the error column a previous analysis
// run appended, are ignored.
func parseRecord(cols []string) (*Record, error) {
	rec := &Record{}
	var err error

	if rec.Orig, err = TimeMicros(cols[1]); err != nil {
		return nil, err
	}
	if rec.ScaleNum, rec.ScaleDen, err = scaleRatio(cols[2]); err != nil {
		return nil, err
	}
	if rec.Offset, err = offsetMicros(cols[3]); err != nil {
		return nil, err
	}
	if rec.Input, err = TimeMicros(cols[4]); err != nil {
		return nil, err
	}
	if rec.Output, err = TimeMicros(cols[5]); err != nil {
		return nil, err
	}
	return rec, nil
}

// Expected recomputes the output timestamp the clock should have reported:
// the elapsed time since origin, scaled by the exact rational with
// round-half-up integer division, plus offset and origin. The intermediate
// product is formed in arbitrary precision since the exact denominator of an
// innocuous looking scale factor can reach 2^52.
func (r *Record) Expected() int64 {
	v := new(big.Int).Mul(big.NewInt(r.Input-r.Orig), r.ScaleNum)
	v.Add(v, new(big.Int).Rsh(r.ScaleDen, 1))
	// Div floors for a positive divisor, and a Rat denominator is
	// always positive.
	v.Div(v, r.ScaleDen)
	return v.Int64() + r.Offset + r.Orig
}

// Err returns the signed difference between the reported and the expected
// output timestamp, in microseconds.
func (r *Record) Err() int64 {
	return r.Output - r.Expected()
}
