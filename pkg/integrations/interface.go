package integrations

import "context"

// Runner starts an external program and waits for it to exit.
// A non-zero exit is reported through the exit code, not the error; the
// error is reserved for programs that could not be started at all.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (int, error)
}
