package bootstrap

import (
	"context"
	"fmt"
	"io"

	"github.com/docker/go-units"
	"github.com/gookit/color"
)

var (
	colError   = color.Error
	colSuccess = color.Success
)

// Reporter prints the outcome of a run as human-readable lines.
type Reporter struct {
	Out io.Writer // Success line.
	Err io.Writer // Failure lines.
}

// Success prints the location of the installed executable.
func (r Reporter) Success(res *Result) {
	fmt.Fprintln(r.Out, colSuccess.Sprintf("%s installed -> %s (%s)",
		res.Program, res.Path, units.HumanSize(float64(res.Size))))
}

// Failure prints the message of err.
func (r Reporter) Failure(err error) {
	fmt.Fprintln(r.Err, colError.Sprint(err.Error()))
}

// Execute runs o, reports the outcome and returns the process exit code:
// 0 on success and 1 on any failure.
func Execute(ctx context.Context, o *Orchestrator, r Reporter) int {
	res, err := o.Run(ctx)
	if err != nil {
		r.Failure(err)
		return 1
	}

	r.Success(res)
	return 0
}
