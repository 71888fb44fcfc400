package codegen

import (
	"fmt"
	"strings"

	"gbcc/internal/game"
)

// emitEntityUpdates emits one <entity>_update(void) per entity that owns a
// state machine, in declaration order (§4.6 emission layer 5): an enter
// switch gated on _changed, a tick switch on the current state, a
// transition switch evaluating guards in declaration order (first match
// wins), and an exit switch gated on a pending state change.
func (g *generator) emitEntityUpdates() {
	for _, e := range g.game.Entities {
		sm, ok := g.game.StateMachineByOwner(e.Name)
		if !ok {
			continue
		}
		g.emitEntityUpdate(e.Name, sm)
	}
}

func (g *generator) emitEntityUpdate(owner string, sm *game.StateMachine) {
	up := strings.ToUpper(owner)
	fmt.Fprintf(g.buf, "void %s_update(void) {\n", owner)

	fmt.Fprintf(g.buf, "    if (_%s_changed) {\n", owner)
	fmt.Fprintf(g.buf, "        switch (_%s_state) {\n", owner)
	for _, s := range sm.States {
		if len(s.OnEnter) == 0 {
			continue
		}
		fmt.Fprintf(g.buf, "        case STATE_%s_%s:\n", up, strings.ToUpper(s.Name))
		g.buf.WriteString(g.stmts(s.OnEnter, 3))
		fmt.Fprintln(g.buf, "            break;")
	}
	fmt.Fprintln(g.buf, "        }")
	fmt.Fprintf(g.buf, "        _%s_changed = 0;\n", owner)
	fmt.Fprintln(g.buf, "    }")

	fmt.Fprintf(g.buf, "    switch (_%s_state) {\n", owner)
	for _, s := range sm.States {
		if len(s.OnTick) == 0 {
			continue
		}
		fmt.Fprintf(g.buf, "    case STATE_%s_%s:\n", up, strings.ToUpper(s.Name))
		g.buf.WriteString(g.stmts(s.OnTick, 2))
		fmt.Fprintln(g.buf, "        break;")
	}
	fmt.Fprintln(g.buf, "    }")

	fmt.Fprintf(g.buf, "    switch (_%s_state) {\n", owner)
	for _, s := range sm.States {
		if len(s.Transitions) == 0 {
			continue
		}
		fmt.Fprintf(g.buf, "    case STATE_%s_%s:\n", up, strings.ToUpper(s.Name))
		for _, t := range s.Transitions {
			fmt.Fprintf(g.buf, "        if (%s) { _%s_next = STATE_%s_%s; _%s_changed = 1; break; }\n",
				g.expr(t.Guard.Expr), owner, up, strings.ToUpper(t.Target), owner)
		}
		fmt.Fprintln(g.buf, "        break;")
	}
	fmt.Fprintln(g.buf, "    }")

	fmt.Fprintf(g.buf, "    if (_%s_next != _%s_state) {\n", owner, owner)
	fmt.Fprintf(g.buf, "        switch (_%s_state) {\n", owner)
	for _, s := range sm.States {
		if len(s.OnExit) == 0 {
			continue
		}
		fmt.Fprintf(g.buf, "        case STATE_%s_%s:\n", up, strings.ToUpper(s.Name))
		g.buf.WriteString(g.stmts(s.OnExit, 3))
		fmt.Fprintln(g.buf, "            break;")
	}
	fmt.Fprintln(g.buf, "        }")
	fmt.Fprintf(g.buf, "        _%s_state = _%s_next;\n", owner, owner)
	fmt.Fprintln(g.buf, "    }")

	fmt.Fprintln(g.buf, "}")
	fmt.Fprintln(g.buf)
}
