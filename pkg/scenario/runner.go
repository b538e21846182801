package scenario

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// Runner plays whole scenarios.
type Runner struct {
	Logger *log.Logger

	// FailFast stops at the first failed step.
	FailFast bool
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Report summarizes a run.
type Report struct {
	Name     string
	Steps    []StepResult
	Findings []Finding

	// Solves is the number of batches the host received.
	Solves int
	// Active lists the active native constraints after the last step.
	Active   []string
	Duration time.Duration
}

// Failures returns the failed steps.
func (r *Report) Failures() []StepResult {
	var out []StepResult
	for _, s := range r.Steps {
		if s.Failed() {
			out = append(out, s)
		}
	}
	return out
}

// Passed reports whether every step succeeded.
func (r *Report) Passed() bool { return len(r.Failures()) == 0 }

// Run plays every step of s. Failed steps are recorded in the report and do
// not stop the run unless FailFast is set. The error is non-nil only when s is
// invalid or ctx is done.
func (r *Runner) Run(ctx context.Context, s *Scenario) (*Report, error) {
	start := time.Now()
	pb, err := NewPlayback(s, r.Logger)
	if err != nil {
		return nil, err
	}

	report := &Report{Name: s.Name, Findings: Lint(s)}
	for _, f := range report.Findings {
		r.Logger.Warn("lint", "step", f.Step+1, "view", f.View, "finding", f.Message)
	}

	r.Logger.Info("playing scenario", "name", s.Name, "steps", len(s.Steps))
	for !pb.Done() {
		res, err := pb.Next(ctx)
		if err != nil {
			return report, err
		}
		report.Steps = append(report.Steps, res)
		if res.Failed() && r.FailFast {
			break
		}
	}

	report.Solves = pb.Host().Solves()
	for _, c := range pb.Host().Active() {
		report.Active = append(report.Active, c.String())
	}
	report.Duration = time.Since(start)

	r.Logger.Info("scenario finished",
		"name", s.Name,
		"steps", len(report.Steps),
		"failures", len(report.Failures()),
		"solves", report.Solves,
		"active", len(report.Active))
	return report, nil
}
