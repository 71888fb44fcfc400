package interp

import (
	"fmt"

	"gbcc/internal/ir"
)

// Expectation is the fluent post-state assertion surface for a single
// variable, the Go shape of the harness's `expect(name).toEqual(...)` verbs.
type Expectation struct {
	name string
	v    Value
	ok   bool
}

// Expect returns an Expectation bound to a variable's current value.
func (in *Interpreter) Expect(name string) Expectation {
	v, ok := in.Store.Get(name)
	return Expectation{name: name, v: v, ok: ok}
}

// ToEqual asserts the variable's raw value equals want.
func (e Expectation) ToEqual(want int64) error {
	if !e.ok {
		return fmt.Errorf("interp: expect(%q): variable not declared", e.name)
	}
	if e.v.Raw != want {
		return fmt.Errorf("interp: expect(%q).toEqual(%d): got %d", e.name, want, e.v.Raw)
	}
	return nil
}

// ToBeGreaterThan asserts the variable's raw value exceeds want.
func (e Expectation) ToBeGreaterThan(want int64) error {
	if !e.ok {
		return fmt.Errorf("interp: expect(%q): variable not declared", e.name)
	}
	if e.v.Raw <= want {
		return fmt.Errorf("interp: expect(%q).toBeGreaterThan(%d): got %d", e.name, want, e.v.Raw)
	}
	return nil
}

// ToBeLessThan asserts the variable's raw value is below want.
func (e Expectation) ToBeLessThan(want int64) error {
	if !e.ok {
		return fmt.Errorf("interp: expect(%q): variable not declared", e.name)
	}
	if e.v.Raw >= want {
		return fmt.Errorf("interp: expect(%q).toBeLessThan(%d): got %d", e.name, want, e.v.Raw)
	}
	return nil
}

// SetVariable installs a variable directly, bypassing statement execution —
// the harness's `setVariable(name, v)` verb for arranging initial state.
func (in *Interpreter) SetVariable(name string, raw int64, typ ir.ValueType) {
	in.Store.Set(name, raw, typ)
}

// ValueOf returns a variable's raw value, or an error if undeclared — the
// harness's `valueOf(name)` verb.
func (in *Interpreter) ValueOf(name string) (int64, error) {
	v, ok := in.Store.Get(name)
	if !ok {
		return 0, fmt.Errorf("interp: valueOf(%q): variable not declared", name)
	}
	return v.Raw, nil
}

// Emitted returns every statement recorded so far, in execution order.
func (in *Interpreter) Emitted() []ir.Stmt {
	return in.emitted
}

// AssertCount asserts exactly n statements have been recorded.
func (in *Interpreter) AssertCount(n int) error {
	if len(in.emitted) != n {
		return fmt.Errorf("interp: assertCount(%d): got %d", n, len(in.emitted))
	}
	return nil
}

// AssertAtLeast asserts at least n statements have been recorded.
func (in *Interpreter) AssertAtLeast(n int) error {
	if len(in.emitted) < n {
		return fmt.Errorf("interp: assertAtLeast(%d): got %d", n, len(in.emitted))
	}
	return nil
}

// Filter returns every recorded statement of type T, the Go shape of the
// harness's generic `filter<T>()` verb.
func Filter[T ir.Stmt](in *Interpreter) []T {
	var out []T
	for _, s := range in.emitted {
		if t, ok := s.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// First returns the first recorded statement of type T, the Go shape of
// `first<T>()`.
func First[T ir.Stmt](in *Interpreter) (T, bool) {
	for _, s := range in.emitted {
		if t, ok := s.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// AssertEmitted asserts at least one recorded statement has type T.
func AssertEmitted[T ir.Stmt](in *Interpreter) error {
	if _, ok := First[T](in); !ok {
		return fmt.Errorf("interp: assertEmitted: no statement of the requested type was recorded")
	}
	return nil
}

// AssertNotEmitted asserts no recorded statement has type T.
func AssertNotEmitted[T ir.Stmt](in *Interpreter) error {
	if _, ok := First[T](in); ok {
		return fmt.Errorf("interp: assertNotEmitted: a statement of the requested type was recorded")
	}
	return nil
}

// AssertFirst asserts the first recorded statement has type T.
func AssertFirst[T ir.Stmt](in *Interpreter) error {
	if len(in.emitted) == 0 {
		return fmt.Errorf("interp: assertFirst: nothing recorded")
	}
	if _, ok := in.emitted[0].(T); !ok {
		return fmt.Errorf("interp: assertFirst: first recorded statement is %T, not the requested type", in.emitted[0])
	}
	return nil
}

// ToList returns every recorded statement, the Go shape of `toList()`.
func (in *Interpreter) ToList() []ir.Stmt {
	return in.emitted
}
