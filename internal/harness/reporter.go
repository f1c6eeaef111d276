package harness

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/funvibe/refinedtype/internal/config"
	"github.com/funvibe/refinedtype/internal/value"
	"github.com/mattn/go-isatty"
)

// ConsoleReporter prints one line per scenario, followed by actual and
// expected values for failures.
type ConsoleReporter struct {
	out  io.Writer
	pass *color.Color
	fail *color.Color
	dim  *color.Color
}

func NewConsoleReporter(out io.Writer, colorize bool) *ConsoleReporter {
	r := &ConsoleReporter{
		out:  out,
		pass: color.New(color.FgGreen),
		fail: color.New(color.FgRed, color.Bold),
		dim:  color.New(color.Faint),
	}
	for _, c := range []*color.Color{r.pass, r.fail, r.dim} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func (r *ConsoleReporter) Report(res Result) {
	if res.Passed {
		fmt.Fprintf(r.out, "%s %s\n", r.pass.Sprint("PASS"), res.Scenario.Name)
		return
	}

	fmt.Fprintf(r.out, "%s %s\n", r.fail.Sprint("FAIL"), res.Scenario.Name)
	if res.Err != nil {
		fmt.Fprintf(r.out, "  %s %v\n", r.dim.Sprint("error:   "), res.Err)
		return
	}
	fmt.Fprintf(r.out, "  %s %s\n", r.dim.Sprint("actual:  "), value.Inspect(res.Actual))
	fmt.Fprintf(r.out, "  %s %s\n", r.dim.Sprint("expected:"), value.Inspect(res.Scenario.Expected))
}

func (r *ConsoleReporter) Summarize(sum Summary) {
	status := r.pass.Sprint("ok")
	if sum.Failed > 0 {
		status = r.fail.Sprint("FAILED")
	}
	fmt.Fprintf(r.out, "\n%s: %d passed, %d failed, %d total\n", status, sum.Passed, sum.Failed, sum.Total)
}

// ColorEnabled reports whether output to f should be coloured: f must be a
// terminal, NO_COLOR unset and TERM not dumb.
func ColorEnabled(f *os.File) bool {
	if _, ok := os.LookupEnv(config.NoColorEnv); ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}
