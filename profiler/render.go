// SPDX-License-Identifier: MIT

package profiler

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Fixed-column layout of the doubling-test report. Durations are
// right-aligned milliseconds with three decimals, N a plain integer,
// the ratio column filled from the second row onward.
const (
	analysisHeader = "%10s   %12s   %8s   %s\n"
	analysisRow    = "%10d   %12.3f   %8s   %s\n"
)

// Render writes the doubling-test table and the final verdict to w:
//
//	         N       time(ms)      ratio   class
//	    ------       --------      -----   -----
//	       500         12.375          -   -
//	      1000         49.812      4.025   O(N^2)
//
//	verdict: O(N^2) (ratio 4.02)
//
// The first row never shows a ratio (no predecessor); later rows show
// "-" with class "inconclusive" where a zero duration left the ratio
// undefined. All business logic lives upstream: this renders exactly
// what the RoundResults and Verdict already carry.
func Render(w io.Writer, rounds []RoundResult, v Verdict) error {
	if _, err := fmt.Fprintf(w, analysisHeader, "N", "time(ms)", "ratio", "class"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, analysisHeader, "------", "--------", "-----", "-----"); err != nil {
		return err
	}

	for i, r := range rounds {
		ratio, class := "-", "-"
		if i > 0 {
			class = r.Class.String()
			if r.Ratio > 0 {
				ratio = fmt.Sprintf("%.3f", r.Ratio)
			}
		}
		ms := float64(r.Duration) / float64(time.Millisecond)
		if _, err := fmt.Fprintf(w, analysisRow, r.N, ms, ratio, class); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\nverdict: %s\n", v)
	return err
}

// RenderString is Render into a string, for callers without a handy
// io.Writer.
func RenderString(rounds []RoundResult, v Verdict) string {
	var b strings.Builder
	_ = Render(&b, rounds, v) // strings.Builder writes cannot fail
	return b.String()
}
