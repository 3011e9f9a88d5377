package main

import (
	"fmt"
	"io"
	"time"

	"mozuku/internal/checkrun"
	"mozuku/internal/driver"
)

func printCheckTimings(out io.Writer, reports []driver.FileReport) {
	if out == nil {
		return
	}
	for _, report := range reports {
		fmt.Fprintf(out, "%s: extract %.1f ms, tokenize %.1f ms, grammar %.1f ms\n",
			report.Path,
			toMillis(report.Timings.Duration(checkrun.StageExtract)),
			toMillis(report.Timings.Duration(checkrun.StageTokenize)),
			toMillis(report.Timings.Duration(checkrun.StageGrammar)))
	}
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
