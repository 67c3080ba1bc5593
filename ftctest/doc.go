/*
Package ftctest validates the fake-time clock test output produced by the
terminal clock's ftctest() routine.

The clock logs one CSV line per sample, carrying the origin time, the time
scaling factor and offset it was configured with, and the input/output
timestamp pair it produced. This package recomputes each output timestamp
independently in integer microseconds, appends the signed error to every
matching line and accumulates worst and RMS error figures over the run:

	summary, err := ftctest.Analyze(os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	summary.Report(os.Stdout)

All time arithmetic is carried out in fixed-point integer microseconds, with
the scale factor decomposed into its exact binary rational, so the computed
reference matches the clock's own arithmetic bit for bit.
*/
package ftctest
