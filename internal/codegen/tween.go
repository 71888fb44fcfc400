package codegen

import "fmt"

// emitEasingConstants emits the EASE_* macros consumed by tween_start call
// sites (stmt.go) and the ease switch in _tween_ease below. Declared early
// (alongside the state/scene enums) since statement emission that
// references these names happens well before emitTweenDriver runs.
func (g *generator) emitEasingConstants() {
	fmt.Fprintln(g.buf, "#define EASE_LINEAR 0")
	fmt.Fprintln(g.buf, "#define EASE_IN_QUAD 1")
	fmt.Fprintln(g.buf, "#define EASE_OUT_QUAD 2")
	fmt.Fprintln(g.buf, "#define EASE_IN_OUT_QUAD 3")
	fmt.Fprintln(g.buf)
}

// emitTweenDriver emits the shared tween record array plus start/update
// routines (§4.6 emission layer 12). Every declared and inline tween shares
// one TweenState slot array; tween_start installs {from, to, duration,
// easing, target} and resets phase, and _tween_update advances phase by
// one frame per tick and recomputes the target's value as
// v = from + (to-from)*ease(phase/duration), all in the same 8.8
// fixed-point scale toFixed88 uses for constants elsewhere in this package.
func (g *generator) emitTweenDriver() {
	total := g.nextInlineTweenID

	fmt.Fprintln(g.buf, "typedef struct {")
	fmt.Fprintln(g.buf, "    UINT16 phase;")
	fmt.Fprintln(g.buf, "    UINT16 duration;")
	fmt.Fprintln(g.buf, "    INT16 from;")
	fmt.Fprintln(g.buf, "    INT16 to;")
	fmt.Fprintln(g.buf, "    UINT8 easing;")
	fmt.Fprintln(g.buf, "    UINT8 active;")
	fmt.Fprintln(g.buf, "    INT16 *target;")
	fmt.Fprintln(g.buf, "} TweenState;")
	fmt.Fprintln(g.buf)
	fmt.Fprintf(g.buf, "static TweenState _tweens[%d];\n", total)
	for i, t := range g.game.Tweens {
		fmt.Fprintf(g.buf, "// _tweens[%d] = %s\n", i, t.Name)
	}
	fmt.Fprintln(g.buf)

	fmt.Fprintln(g.buf, "void tween_start(TweenState *t, INT16 *target, INT16 from, INT16 to, UINT16 duration, UINT8 easing) {")
	fmt.Fprintln(g.buf, "    t->target = target;")
	fmt.Fprintln(g.buf, "    t->from = from;")
	fmt.Fprintln(g.buf, "    t->to = to;")
	fmt.Fprintln(g.buf, "    t->duration = duration;")
	fmt.Fprintln(g.buf, "    t->easing = easing;")
	fmt.Fprintln(g.buf, "    t->phase = 0;")
	fmt.Fprintln(g.buf, "    t->active = 1;")
	fmt.Fprintln(g.buf, "}")
	fmt.Fprintln(g.buf)

	// _tween_ease returns ease(phase/duration) as an 8.8 fixed-point
	// fraction in [0, 256], the same scale toFixed88 packs Go-side floats
	// into for physics/tween constants.
	fmt.Fprintln(g.buf, "static INT16 _tween_ease(UINT8 easing, UINT16 phase, UINT16 duration) {")
	fmt.Fprintln(g.buf, "    INT16 t = (INT16)(((INT32)phase << 8) / duration);")
	fmt.Fprintln(g.buf, "    switch (easing) {")
	fmt.Fprintln(g.buf, "    case EASE_LINEAR:")
	fmt.Fprintln(g.buf, "        return t;")
	fmt.Fprintln(g.buf, "    case EASE_IN_QUAD:")
	fmt.Fprintln(g.buf, "        return (INT16)(((INT32)t * t) >> 8);")
	fmt.Fprintln(g.buf, "    case EASE_OUT_QUAD:")
	fmt.Fprintln(g.buf, "        return (INT16)((2 * (INT32)t * 256 - (INT32)t * t) >> 8);")
	fmt.Fprintln(g.buf, "    case EASE_IN_OUT_QUAD:")
	fmt.Fprintln(g.buf, "        if (t < 128) {")
	fmt.Fprintln(g.buf, "            return (INT16)((2 * (INT32)t * t) >> 8);")
	fmt.Fprintln(g.buf, "        } else {")
	fmt.Fprintln(g.buf, "            INT16 u = 256 - t;")
	fmt.Fprintln(g.buf, "            return (INT16)(256 - ((2 * (INT32)u * u) >> 8));")
	fmt.Fprintln(g.buf, "        }")
	fmt.Fprintln(g.buf, "    default:")
	fmt.Fprintln(g.buf, "        return t;")
	fmt.Fprintln(g.buf, "    }")
	fmt.Fprintln(g.buf, "}")
	fmt.Fprintln(g.buf)

	fmt.Fprintln(g.buf, "void _tween_update(void) {")
	fmt.Fprintf(g.buf, "    for (UINT8 i = 0; i < %d; i++) {\n", total)
	fmt.Fprintln(g.buf, "        TweenState *t = &_tweens[i];")
	fmt.Fprintln(g.buf, "        if (!t->active) {")
	fmt.Fprintln(g.buf, "            continue;")
	fmt.Fprintln(g.buf, "        }")
	fmt.Fprintln(g.buf, "        t->phase++;")
	fmt.Fprintln(g.buf, "        INT16 ease = _tween_ease(t->easing, t->phase, t->duration);")
	fmt.Fprintln(g.buf, "        *t->target = t->from + (INT16)(((INT32)(t->to - t->from) * ease) >> 8);")
	fmt.Fprintln(g.buf, "        if (t->phase >= t->duration) {")
	fmt.Fprintln(g.buf, "            t->active = 0;")
	fmt.Fprintln(g.buf, "        }")
	fmt.Fprintln(g.buf, "    }")
	fmt.Fprintln(g.buf, "}")
	fmt.Fprintln(g.buf)
}
