package ftctest

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Jaxartes/jaxartes-misc/utils"
)

// Summary accumulates the error statistics of one analysis run.
type Summary struct {
	// Samples is the number of matching lines analyzed.
	Samples int
	// WorstErr is the largest absolute error seen, in microseconds.
	WorstErr int64

	// sum of squared errors; arbitrary precision so a handful of wildly
	// wrong samples cannot overflow the accumulator
	sumErr2 *big.Int
}

// add folds one sample error into the summary.
func (s *Summary) add(err int64) {
	s.WorstErr = utils.Max(s.WorstErr, utils.Abs(err))
	e := big.NewInt(err)
	s.sumErr2.Add(s.sumErr2, e.Mul(e, e))
	s.Samples++
}

// RMS returns the root-mean-square of the sample errors in microseconds,
// or 0 when no samples were seen.
func (s *Summary) RMS() float64 {
	if s.Samples == 0 {
		return 0
	}
	mean, _ := new(big.Rat).SetFrac(s.sumErr2, big.NewInt(int64(s.Samples))).Float64()
	return math.Sqrt(mean)
}

// Report writes the trailing summary lines: sample count, worst absolute
// error and RMS error, each prefixed with "#".
func (s *Summary) Report(w io.Writer) error {
	_, err := fmt.Fprintf(w, "# %d samples.\n# %d usec worst error.\n# %s usec RMS error.\n",
		s.Samples, s.WorstErr, formatFloat(s.RMS()))
	return err
}

// formatFloat renders a float in its shortest round-trip decimal form,
// keeping a ".0" tail on integral values.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Analyze consumes ftctest sample lines from r until end of stream and
// writes each matching line back to w with its signed error appended as one
// more CSV column. Lines not tagged with the Magic prefix and tagged lines
// with too few columns pass through silently, with no output and no effect
// on the summary. A tagged, well-shaped line with an unparsable numeric
// field aborts the whole run: the returned summary covers the lines
// processed so far but no summary output has been produced.
func Analyze(r io.Reader, w io.Writer) (*Summary, error) {
	sum := &Summary{sumErr2: new(big.Int)}

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()

		if !strings.HasPrefix(line, Magic+",") {
			continue
		}
		cols := strings.Split(line, ",")
		if len(cols) < numFields {
			continue
		}

		rec, err := parseRecord(cols)
		if err != nil {
			return sum, errors.Wrapf(err, "line %d", lineno)
		}

		e := rec.Err()
		sum.add(e)

		if _, err := fmt.Fprintf(w, "%s,%d\n", line, e); err != nil {
			return sum, err
		}
	}
	if err := scanner.Err(); err != nil {
		return sum, errors.Wrap(err, "reading input")
	}
	return sum, nil
}
