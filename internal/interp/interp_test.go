package interp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gbcc/internal/ir"
)

func TestCompoundAssignAppliesToStore(t *testing.T) {
	store := NewStore()
	store.Set("counter", 10, ir.TypeU8)
	in := New(store)

	err := in.Execute([]ir.Stmt{
		&ir.CompoundAssign{
			Target: &ir.VarRef{Name: "counter"},
			Op:     ir.CompoundAdd,
			Value:  &ir.Literal{Type: ir.TypeU8, Value: 5},
		},
	})
	require.NoError(t, err)
	require.NoError(t, in.Expect("counter").ToEqual(15))
}

func TestAssertEmittedAndNotEmitted(t *testing.T) {
	store := NewStore()
	store.Set("counter", 10, ir.TypeU8)
	in := New(store)

	require.NoError(t, in.Execute([]ir.Stmt{
		&ir.CompoundAssign{
			Target: &ir.VarRef{Name: "counter"},
			Op:     ir.CompoundAdd,
			Value:  &ir.Literal{Type: ir.TypeU8, Value: 5},
		},
	}))

	require.NoError(t, AssertEmitted[*ir.CompoundAssign](in))
	require.Error(t, AssertEmitted[*ir.SceneChange](in))
	require.NoError(t, AssertNotEmitted[*ir.SceneChange](in))
	require.NoError(t, in.AssertCount(1))
	require.Error(t, in.AssertCount(5))
}

func TestIfDispatchesOnNonZeroCondition(t *testing.T) {
	store := NewStore()
	store.Set("hp", 0, ir.TypeU8)
	store.Set("flag", 1, ir.TypeU8)
	in := New(store)

	err := in.Execute([]ir.Stmt{
		&ir.If{
			Cond: ir.Condition{Expr: &ir.VarRef{Name: "flag"}},
			Then: []ir.Stmt{
				&ir.Assign{Target: &ir.VarRef{Name: "hp"}, Value: &ir.Literal{Type: ir.TypeU8, Value: 99}},
			},
			Else: []ir.Stmt{
				&ir.Assign{Target: &ir.VarRef{Name: "hp"}, Value: &ir.Literal{Type: ir.TypeU8, Value: 1}},
			},
		},
	})
	require.NoError(t, err)
	require.NoError(t, in.Expect("hp").ToEqual(99))
}

func TestU8WrapOnAssignHonoursStoredType(t *testing.T) {
	store := NewStore()
	store.Set("life", 250, ir.TypeU8)
	in := New(store)

	err := in.Execute([]ir.Stmt{
		&ir.CompoundAssign{
			Target: &ir.VarRef{Name: "life"},
			Op:     ir.CompoundAdd,
			Value:  &ir.Literal{Type: ir.TypeU8, Value: 10},
		},
	})
	require.NoError(t, err)
	require.NoError(t, in.Expect("life").ToEqual(4)) // 250+10=260 wraps to 4 mod 256
}

func TestRecordModeCapturesWithoutExecuting(t *testing.T) {
	store := NewStore()
	store.Set("counter", 10, ir.TypeU8)
	in := New(store)
	in.Record()

	require.NoError(t, in.Execute([]ir.Stmt{
		&ir.CompoundAssign{
			Target: &ir.VarRef{Name: "counter"},
			Op:     ir.CompoundAdd,
			Value:  &ir.Literal{Type: ir.TypeU8, Value: 5},
		},
		&ir.SceneChange{Name: "gameover"},
	}))

	require.NoError(t, in.Expect("counter").ToEqual(10)) // unchanged, recorded only
	require.NoError(t, in.AssertCount(2))
	sc, ok := First[*ir.SceneChange](in)
	require.True(t, ok)
	require.Equal(t, "gameover", sc.Name)
}

func TestBinaryComparisonOperators(t *testing.T) {
	store := NewStore()
	store.Set("a", 5, ir.TypeU8)
	store.Set("b", 3, ir.TypeU8)
	store.Set("result", 0, ir.TypeU8)
	in := New(store)

	err := in.Execute([]ir.Stmt{
		&ir.Assign{
			Target: &ir.VarRef{Name: "result"},
			Value: &ir.Binary{
				Op:    ir.OpGt,
				Left:  &ir.VarRef{Name: "a"},
				Right: &ir.VarRef{Name: "b"},
			},
		},
	})
	require.NoError(t, err)
	require.NoError(t, in.Expect("result").ToEqual(1))
}

func TestDivisionByZeroIsAnError(t *testing.T) {
	store := NewStore()
	store.Set("a", 5, ir.TypeU8)
	in := New(store)

	err := in.Execute([]ir.Stmt{
		&ir.Assign{
			Target: &ir.VarRef{Name: "a"},
			Value: &ir.Binary{
				Op:    ir.OpDiv,
				Left:  &ir.VarRef{Name: "a"},
				Right: &ir.Literal{Type: ir.TypeU8, Value: 0},
			},
		},
	})
	require.Error(t, err)
}
