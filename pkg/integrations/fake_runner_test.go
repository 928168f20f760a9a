package integrations

import (
	"context"
	"strings"
)

type call struct {
	name string
	args []string
}

type fakeRunner struct {
	calls []call
	code  int
	err   error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (int, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	return f.code, f.err
}

func (c call) String() string {
	return strings.Join(append([]string{c.name}, c.args...), " ")
}
