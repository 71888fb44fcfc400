package ir

import "reflect"

// Equal reports whether two IR nodes (Expr or Stmt) are structurally equal.
// No example in the retrieval pack implements AST equality via a bespoke
// visitor; reflect.DeepEqual is the idiomatic stdlib tool for comparing
// these closed, field-only sum types and is used instead of hand-rolling a
// comparator per variant.
func Equal(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
