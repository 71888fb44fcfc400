package codegen

import (
	"fmt"
	"strings"
)

// emitAnimations emits a frame table plus an ANIM_<NAME> index constant and
// an on-complete callback function per declared animation. The callback
// runs whatever statements the animation's onComplete carries (e.g. a
// SceneChange) — the sole place those statements are reachable from the
// emitted translation unit.
func (g *generator) emitAnimations() {
	for i, a := range g.game.Animations {
		name := strings.ToUpper(sanitizeName(a.Name))
		fmt.Fprintf(g.buf, "#define ANIM_%s %d\n", name, i)
		frames := make([]string, len(a.Frames))
		for j, f := range a.Frames {
			frames[j] = fmt.Sprintf("%d", f)
		}
		fmt.Fprintf(g.buf, "static const UINT8 ANIM_%s_FRAMES[%d] = {%s};\n", name, len(a.Frames), strings.Join(frames, ", "))
		fmt.Fprintf(g.buf, "#define ANIM_%s_FPS %d\n", name, a.FPS)
		loop := 0
		if a.Loop {
			loop = 1
		}
		fmt.Fprintf(g.buf, "#define ANIM_%s_LOOP %d\n", name, loop)

		if len(a.OnComplete) > 0 {
			fmt.Fprintf(g.buf, "void anim_%s_on_complete(void) {\n", strings.ToLower(sanitizeName(a.Name)))
			g.buf.WriteString(g.stmts(a.OnComplete, 1))
			fmt.Fprintln(g.buf, "}")
		}
	}
	if len(g.game.Animations) > 0 {
		fmt.Fprintln(g.buf)
	}
}
