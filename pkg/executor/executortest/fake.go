// Package executortest provides a recording Executor for tests.
package executortest

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
)

// Call is one recorded Execute invocation.
type Call struct {
	Name string
	Args []string
}

// Line renders the call as a shell-like command line.
func (c Call) Line() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Fake records every call. Handler, when set, decides the outcome; otherwise
// the last argument is created as an empty file so tools look like they wrote
// their output.
type Fake struct {
	Handler func(name string, args []string) (string, error)
	Missing map[string]bool

	mu    sync.Mutex
	calls []Call
}

func (f *Fake) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, Call{Name: name, Args: append([]string(nil), args...)})
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.Handler != nil {
		return f.Handler(name, args)
	}
	return "", TouchLast(args)
}

func (f *Fake) LookPath(name string) error {
	if f.Missing[name] {
		return fmt.Errorf("find %s: not found", name)
	}
	return nil
}

// Calls returns a copy of the recorded calls.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// TouchLast creates the file named by the last argument.
func TouchLast(args []string) error {
	if len(args) == 0 {
		return nil
	}
	return os.WriteFile(args[len(args)-1], nil, 0644)
}

// ArgAfter returns the value following flag in args.
func ArgAfter(args []string, flag string) string {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag {
			return args[i+1]
		}
	}
	return ""
}
