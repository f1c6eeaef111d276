package harness

import (
	"errors"
	"fmt"

	"github.com/funvibe/refinedtype/internal/deepequal"
	"github.com/funvibe/refinedtype/internal/value"
	"go.uber.org/zap"
)

// ErrFailed is returned by Runner.Run when at least one scenario fails.
var ErrFailed = errors.New("scenarios failed")

// Result is the outcome of one scenario.
type Result struct {
	Scenario Scenario
	Actual   value.Value
	Passed   bool
	Err      error
}

// Summary counts outcomes over a suite.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// Reporter receives results as they are produced.
type Reporter interface {
	Report(Result)
	Summarize(Summary)
}

// Runner executes suites and feeds a Reporter.
type Runner struct {
	reporter Reporter
	logger   *zap.Logger
}

type Option func(*Runner)

// WithLogger sets the logger used for per-scenario debug records.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewRunner(reporter Reporter, opts ...Option) *Runner {
	r := &Runner{reporter: reporter, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every scenario in order. A scenario passes when its actual
// result deep-equals the expected one. The error wraps ErrFailed if any
// scenario failed or could not run.
func (r *Runner) Run(suite *Suite) (Summary, error) {
	var sum Summary
	for _, sc := range suite.Scenarios {
		res := r.runOne(sc)
		sum.Total++
		if res.Passed {
			sum.Passed++
		} else {
			sum.Failed++
		}
		r.reporter.Report(res)
	}
	r.reporter.Summarize(sum)

	r.logger.Info("suite finished",
		zap.Int("total", sum.Total),
		zap.Int("passed", sum.Passed),
		zap.Int("failed", sum.Failed))

	if sum.Failed > 0 {
		return sum, fmt.Errorf("%w: %d of %d", ErrFailed, sum.Failed, sum.Total)
	}
	return sum, nil
}

func (r *Runner) runOne(sc Scenario) Result {
	actual, err := sc.Run()
	if err != nil {
		r.logger.Warn("scenario error", zap.String("scenario", sc.Name), zap.Error(err))
		return Result{Scenario: sc, Err: err}
	}

	passed := deepequal.Equal(actual, sc.Expected)
	r.logger.Debug("scenario",
		zap.String("scenario", sc.Name),
		zap.String("op", sc.Op),
		zap.String("actual", value.Inspect(actual)),
		zap.String("expected", value.Inspect(sc.Expected)),
		zap.Bool("passed", passed))
	return Result{Scenario: sc, Actual: actual, Passed: passed}
}
