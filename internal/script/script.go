// Package script lets an operator register additional text->text repair
// rules beyond the built-in T1-T20 catalogue, written in Starlark and
// loaded at startup. Like internal/history, it lives outside Repair's
// call graph: a caller loads a script once and passes the resulting
// function to jsonmend.WithCustomTransform.
package script

import (
	"context"
	"fmt"
	"time"

	"go.starlark.net/starlark"
)

// entryPoint is the Starlark function name a custom-transform script
// must define: def repair(text): ... returning a string, or a
// (string, list-of-string) tuple when it also wants to contribute
// diagnostics.
const entryPoint = "repair"

// Transform is the function shape a loaded script produces — structurally
// identical to jsonmend.CustomTransform, so a caller can pass it directly
// to jsonmend.WithCustomTransform without this package importing the
// root package.
type Transform func(text string) (string, []string)

// Load reads a Starlark source file defining a top-level `repair(text)`
// function and returns a Transform that calls it, cancelling the
// Starlark thread if a single invocation runs past timeout.
func Load(path string, timeout time.Duration) (Transform, error) {
	thread := &starlark.Thread{Name: "jsonmend-script:" + path}

	globals, err := starlark.ExecFile(thread, path, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", path, err)
	}

	fn, ok := globals[entryPoint]
	if !ok {
		return nil, fmt.Errorf("script: %s does not define a top-level %q function", path, entryPoint)
	}
	callable, ok := fn.(starlark.Callable)
	if !ok {
		return nil, fmt.Errorf("script: %s's %q is not callable", path, entryPoint)
	}

	return func(text string) (string, []string) {
		return callWithTimeout(path, callable, text, timeout)
	}, nil
}

func callWithTimeout(path string, callable starlark.Callable, text string, timeout time.Duration) (string, []string) {
	callThread := &starlark.Thread{Name: "jsonmend-script:" + path}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			callThread.Cancel("script exceeded its time budget")
		case <-done:
		}
	}()

	result, err := starlark.Call(callThread, callable, starlark.Tuple{starlark.String(text)}, nil)
	close(done)
	if err != nil {
		return text, []string{fmt.Sprintf("script %s failed: %v", path, err)}
	}

	return decodeResult(text, result)
}

func decodeResult(original string, result starlark.Value) (string, []string) {
	switch v := result.(type) {
	case starlark.String:
		return string(v), nil
	case starlark.Tuple:
		if len(v) == 0 {
			return original, nil
		}
		s, ok := v[0].(starlark.String)
		if !ok {
			return original, nil
		}
		var diags []string
		if len(v) > 1 {
			if list, ok := v[1].(*starlark.List); ok {
				iter := list.Iterate()
				defer iter.Done()
				var item starlark.Value
				for iter.Next(&item) {
					if s, ok := item.(starlark.String); ok {
						diags = append(diags, string(s))
					}
				}
			}
		}
		return string(s), diags
	default:
		return original, nil
	}
}
