// Package validate checks a built game.Game against hardware constraints,
// producing structured diagnostics (never panicking, never throwing on its
// own) per the category taxonomy in Category.
package validate

import (
	"fmt"

	"gbcc/internal/game"
	"gbcc/internal/ir"
)

// Category is the closed tag set callers key diagnostics off of — never by
// string-matching the message.
type Category string

const (
	CategoryOAMLimit      Category = "OAM_LIMIT"
	CategoryStateMachine  Category = "STATE_MACHINE"
	CategoryDuplicateName Category = "DUPLICATE_NAME"
	CategoryGBCColor      Category = "GBC_COLOR"
	CategoryPhysics       Category = "PHYSICS"
	CategoryTween         Category = "TWEEN"
	CategoryArrayBounds   Category = "ARRAY_BOUNDS"
	CategoryAsset         Category = "ASSET"
	CategoryTilemap       Category = "TILEMAP"
	CategoryPalette       Category = "PALETTE"
)

// Diag is a single validation finding.
type Diag struct {
	Category Category
	Message  string
	Location string // optional, e.g. an entity/scene/sprite name
}

// Result is the full diagnostic set from one validate() call.
type Result struct {
	Errors   []Diag
	Warnings []Diag
}

// IsValid reports whether Errors is empty (warnings do not block codegen).
func (r Result) IsValid() bool { return len(r.Errors) == 0 }

func (r *Result) addError(cat Category, loc, format string, args ...any) {
	r.Errors = append(r.Errors, Diag{Category: cat, Message: fmt.Sprintf(format, args...), Location: loc})
}

func (r *Result) addWarning(cat Category, loc, format string, args ...any) {
	r.Warnings = append(r.Warnings, Diag{Category: cat, Message: fmt.Sprintf(format, args...), Location: loc})
}

// Validate runs every hardware-constraint check against g and returns the
// full diagnostic set. It never throws.
func Validate(g *game.Game) Result {
	var r Result
	checkOAM(g, &r)
	checkDuplicateNames(g, &r)
	checkStateMachines(g, &r)
	checkPalettes(g, &r)
	checkPhysics(g, &r)
	checkTweens(g, &r)
	checkArrayBounds(g, &r)
	return r
}

// defaultOAMBudget is the hardware OAM slot count enforced when a Game's
// Config doesn't override it (game.GameConfig.OAMBudget <= 0).
const defaultOAMBudget = 40

func checkOAM(g *game.Game, r *Result) {
	budget := g.Config.OAMBudget
	if budget <= 0 {
		budget = defaultOAMBudget
	}

	total := 0
	for _, p := range g.Pools {
		if p.Count > budget {
			r.addError(CategoryOAMLimit, p.Name, "pool %q alone reserves %d slots and exceeds OAM limit of %d", p.Name, p.Count, budget)
		}
		total += p.Count
	}
	total += len(g.Sprites)

	switch {
	case total > budget:
		names := offendingOAMNames(g)
		r.addError(CategoryOAMLimit, "", "OAM budget of %d slots exceeds with %d slots used (%s)", budget, total, names)
	case total == budget:
		r.addWarning(CategoryOAMLimit, "", "at OAM limit (%d/%d slots used)", total, budget)
	case total >= budget-5:
		r.addWarning(CategoryOAMLimit, "", "approaching OAM limit (%d/%d slots used)", total, budget)
	}
}

func offendingOAMNames(g *game.Game) string {
	names := ""
	for i, c := range g.AllOAMConsumers() {
		if i > 0 {
			names += ", "
		}
		names += c.Name
	}
	return names
}

func checkDuplicateNames(g *game.Game, r *Result) {
	seenVars := map[string]bool{}
	for _, v := range g.Variables {
		if seenVars[v.Name] {
			r.addError(CategoryDuplicateName, v.Name, "duplicate variable name %q", v.Name)
		}
		seenVars[v.Name] = true
	}

	seenSprites := map[string]bool{}
	seenSlots := map[int]bool{}
	for _, s := range g.Sprites {
		if seenSprites[s.Name] {
			r.addError(CategoryDuplicateName, s.Name, "duplicate sprite name %q", s.Name)
		}
		seenSprites[s.Name] = true
		if seenSlots[s.OAMSlot] {
			r.addError(CategoryDuplicateName, s.Name, "duplicate OAM slot %d for sprite %q", s.OAMSlot, s.Name)
		}
		seenSlots[s.OAMSlot] = true
	}
}

func checkStateMachines(g *game.Game, r *Result) {
	for _, sm := range g.StateMachines {
		if len(sm.States) == 0 {
			r.addError(CategoryStateMachine, sm.Owner, "state machine for %q has no states", sm.Owner)
			continue
		}

		declared := map[string]bool{}
		for _, s := range sm.States {
			declared[s.Name] = true
		}
		for _, s := range sm.States {
			for _, t := range s.Transitions {
				if !declared[t.Target] {
					r.addError(CategoryStateMachine, sm.Owner, "state %q transitions to undeclared state %q", s.Name, t.Target)
				}
			}
		}

		start := sm.States[0].Name
		for _, e := range g.Entities {
			if e.Name == sm.Owner && e.StartState != "" {
				start = e.StartState
			}
		}

		reachable := reachableStates(sm, start)
		for _, s := range sm.States {
			if !reachable[s.Name] {
				r.addWarning(CategoryStateMachine, sm.Owner, "state %q is unreachable from start state %q", s.Name, start)
			}
		}
	}
}

func reachableStates(sm game.StateMachine, start string) map[string]bool {
	byName := map[string]*game.State{}
	for _, s := range sm.States {
		byName[s.Name] = s
	}
	reachable := map[string]bool{}
	queue := []string{start}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if reachable[name] {
			continue
		}
		reachable[name] = true
		s, ok := byName[name]
		if !ok {
			continue
		}
		for _, t := range s.Transitions {
			if !reachable[t.Target] {
				queue = append(queue, t.Target)
			}
		}
	}
	return reachable
}

func checkPalettes(g *game.Game, r *Result) {
	for _, p := range g.Palettes {
		if len(p.Colors) != 4 {
			r.addError(CategoryPalette, p.Name, "palette %q must have exactly 4 colours, got %d", p.Name, len(p.Colors))
			continue
		}
		for _, c := range p.Colors {
			if c.ToInt() < 0 || c.ToInt() > 0x7FFF {
				r.addError(CategoryGBCColor, p.Name, "palette %q has colour %d out of range 0..=0x7FFF", p.Name, c.ToInt())
			}
		}
	}
}

func checkPhysics(g *game.Game, r *Result) {
	for _, e := range g.Entities {
		if e.Physics == nil {
			continue
		}
		p := e.Physics
		if p.Mass <= 0 {
			r.addError(CategoryPhysics, e.Name, "entity %q physics mass %.3f must be > 0", e.Name, p.Mass)
		}
		if abs(p.MaxVelocity.X) > 127 || abs(p.MaxVelocity.Y) > 127 {
			r.addWarning(CategoryPhysics, e.Name, "entity %q max velocity (%.2f, %.2f) exceeds +/-127", e.Name, p.MaxVelocity.X, p.MaxVelocity.Y)
		}
		if p.Friction < 0 || p.Friction > 1.5 {
			r.addWarning(CategoryPhysics, e.Name, "entity %q friction %.3f outside 0..=1.5", e.Name, p.Friction)
		}
		if p.Gravity < -2.0 || p.Gravity > 2.0 {
			r.addWarning(CategoryPhysics, e.Name, "entity %q gravity %.3f outside -2.0..=2.0", e.Name, p.Gravity)
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func checkTweens(g *game.Game, r *Result) {
	for _, t := range g.Tweens {
		if t.Duration < 1 {
			r.addError(CategoryTween, t.Name, "tween %q duration %d must be >= 1 frame", t.Name, t.Duration)
		}

		v, ok := g.VarByName(t.Target)
		if !ok {
			r.addError(CategoryTween, t.Name, "tween %q targets undeclared variable %q", t.Name, t.Target)
			continue
		}

		from, fromOK := literalValue(t.From)
		to, toOK := literalValue(t.To)
		if !fromOK || !toOK {
			continue // non-literal bounds cannot be range-checked at validation time
		}

		lo, hi := domainOf(v.Type.Kind)
		if from < lo || from > hi {
			r.addError(CategoryTween, t.Name, "tween %q from value %d outside %q domain", t.Name, from, v.Name)
		}
		if to < lo || to > hi {
			r.addError(CategoryTween, t.Name, "tween %q to value %d outside %q domain", t.Name, to, v.Name)
		}
		if v.Type.Kind == game.KindU8 {
			diff := to - from
			if diff < 0 {
				diff = -diff
			}
			if diff > 200 {
				r.addWarning(CategoryTween, t.Name, "tween %q jumps %d on a u8 variable, risking visual jumpiness", t.Name, diff)
			}
		}
	}
}

func literalValue(e ir.Expr) (int64, bool) {
	if lit, ok := e.(*ir.Literal); ok {
		return lit.Value, true
	}
	return 0, false
}

func domainOf(k game.VarKind) (int64, int64) {
	switch k {
	case game.KindU8:
		return 0, 255
	case game.KindU16:
		return 0, 65535
	case game.KindI8:
		return -128, 127
	case game.KindI16:
		return -32768, 32767
	default:
		return 0, 0
	}
}

// checkArrayBounds verifies that an index expression whose index is a
// literal stays within the target array's declared length. Only literal
// indices are checked: no constant propagation is done, so an index built
// from variables or arithmetic is not evaluated or reported here.
func checkArrayBounds(g *game.Game, r *Result) {
	arrayLen := map[string]int{}
	for _, v := range g.Variables {
		if v.Type.Kind == game.KindArray {
			arrayLen[v.Name] = v.Type.Len
		}
	}
	walkStatements(g, func(s ir.Stmt) {
		checkIndexExpr(stmtExprs(s), arrayLen, r)
	})
}

func checkIndexExpr(exprs []ir.Expr, arrayLen map[string]int, r *Result) {
	for _, e := range exprs {
		walkExpr(e, func(sub ir.Expr) {
			idx, ok := sub.(*ir.Index)
			if !ok {
				return
			}
			ref, ok := idx.Array.(*ir.VarRef)
			if !ok {
				return
			}
			length, known := arrayLen[ref.Name]
			if !known {
				return
			}
			lit, ok := literalValue(idx.Idx)
			if !ok {
				return
			}
			if lit < 0 || lit >= int64(length) {
				r.addError(CategoryArrayBounds, ref.Name, "index %d out of bounds for array %q of length %d", lit, ref.Name, length)
			}
		})
	}
}

func walkExpr(e ir.Expr, visit func(ir.Expr)) {
	if e == nil {
		return
	}
	visit(e)
	switch n := e.(type) {
	case *ir.Unary:
		walkExpr(n.Operand, visit)
	case *ir.Binary:
		walkExpr(n.Left, visit)
		walkExpr(n.Right, visit)
	case *ir.Coerce:
		walkExpr(n.Expr, visit)
	case *ir.Index:
		walkExpr(n.Array, visit)
		walkExpr(n.Idx, visit)
	}
}

// stmtExprs extracts the expression operands directly referenced by a
// statement (not recursing into nested statement bodies — callers combine
// this with walkStatements for full-tree coverage).
func stmtExprs(s ir.Stmt) []ir.Expr {
	switch n := s.(type) {
	case *ir.Assign:
		return []ir.Expr{n.Target, n.Value}
	case *ir.CompoundAssign:
		return []ir.Expr{n.Target, n.Value}
	case *ir.If:
		return []ir.Expr{n.Cond.Expr}
	case *ir.CallFunction:
		return n.Args
	case *ir.SpriteMove:
		return []ir.Expr{n.X, n.Y}
	case *ir.Tween:
		return []ir.Expr{n.From, n.To}
	case *ir.CameraSnap:
		return []ir.Expr{n.X, n.Y}
	default:
		return nil
	}
}

// walkStatements visits every statement reachable from scenes and state
// machines, including nested If bodies and camera-transition callbacks.
func walkStatements(g *game.Game, visit func(ir.Stmt)) {
	var walkList func([]ir.Stmt)
	walkList = func(stmts []ir.Stmt) {
		for _, s := range stmts {
			visit(s)
			switch n := s.(type) {
			case *ir.If:
				walkList(n.Then)
				walkList(n.Else)
			case *ir.CameraTransition:
				walkList(n.Callback)
			}
		}
	}
	for _, name := range g.SceneOrder {
		scene := g.Scenes[name]
		walkList(scene.OnEnter)
		walkList(scene.OnFrame)
		walkList(scene.OnExit)
	}
	for _, sm := range g.StateMachines {
		for _, s := range sm.States {
			walkList(s.OnEnter)
			walkList(s.OnTick)
			walkList(s.OnExit)
		}
	}
}
